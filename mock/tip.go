package mock

import (
	"context"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

var _ cmdlib.TipService = (*TipService)(nil)

// TipService is a mock implementation of cmdlib.TipService.
type TipService struct {
	RandomTipFn func(ctx context.Context) (*cmdlib.Tip, error)
}

func (s *TipService) RandomTip(ctx context.Context) (*cmdlib.Tip, error) {
	return s.RandomTipFn(ctx)
}
