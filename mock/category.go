package mock

import (
	"context"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

var _ cmdlib.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of cmdlib.CategoryService.
type CategoryService struct {
	CategoryTitlesFn         func(ctx context.Context) ([]string, error)
	DetailedCategoriesFn     func(ctx context.Context) ([]*cmdlib.BasicCategory, error)
	FindCommandsByCategoryFn func(ctx context.Context, title string) ([]*cmdlib.Command, error)
	StatsFn                  func(ctx context.Context) (*cmdlib.Stats, error)
}

func (s *CategoryService) CategoryTitles(ctx context.Context) ([]string, error) {
	return s.CategoryTitlesFn(ctx)
}

func (s *CategoryService) DetailedCategories(ctx context.Context) ([]*cmdlib.BasicCategory, error) {
	return s.DetailedCategoriesFn(ctx)
}

func (s *CategoryService) FindCommandsByCategory(ctx context.Context, title string) ([]*cmdlib.Command, error) {
	return s.FindCommandsByCategoryFn(ctx, title)
}

func (s *CategoryService) Stats(ctx context.Context) (*cmdlib.Stats, error) {
	return s.StatsFn(ctx)
}
