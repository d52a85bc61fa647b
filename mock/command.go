// Package mock provides hand-written mock implementations of the cmdlib
// service interfaces for tests.
package mock

import (
	"context"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

var _ cmdlib.CommandService = (*CommandService)(nil)

// CommandService is a mock implementation of cmdlib.CommandService.
type CommandService struct {
	FindCommandByIDFn func(ctx context.Context, id int64) (*cmdlib.CommandDetail, error)
	FindCommandsFn    func(ctx context.Context) ([]*cmdlib.Command, error)
	SearchCommandsFn  func(ctx context.Context, q string, limit int) ([]*cmdlib.Command, error)
	SuggestCommandsFn func(ctx context.Context, q string, limit int) ([]string, error)
	PopularCommandsFn func(ctx context.Context, names []string) ([]*cmdlib.Command, error)
}

func (s *CommandService) FindCommandByID(ctx context.Context, id int64) (*cmdlib.CommandDetail, error) {
	return s.FindCommandByIDFn(ctx, id)
}

func (s *CommandService) FindCommands(ctx context.Context) ([]*cmdlib.Command, error) {
	return s.FindCommandsFn(ctx)
}

func (s *CommandService) SearchCommands(ctx context.Context, q string, limit int) ([]*cmdlib.Command, error) {
	return s.SearchCommandsFn(ctx, q, limit)
}

func (s *CommandService) SuggestCommands(ctx context.Context, q string, limit int) ([]string, error) {
	return s.SuggestCommandsFn(ctx, q, limit)
}

func (s *CommandService) PopularCommands(ctx context.Context, names []string) ([]*cmdlib.Command, error) {
	return s.PopularCommandsFn(ctx, names)
}
