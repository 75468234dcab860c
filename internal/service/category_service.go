package service

import (
	"context"
	"strings"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"
)

// CreateCategoryInput carries the fields of a new category
type CreateCategoryInput struct {
	Name   string
	Image  string
	Banner string
}

// UpdateCategoryInput carries a partial category update. Nil, empty and
// blank values leave the stored field unchanged.
type UpdateCategoryInput struct {
	Name   *string
	Image  *string
	Banner *string
}

// CategoryService manages categories
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
	opts options
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(repo repository.CategoryRepository, opts ...Option) CategoryService {
	return &categoryService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new category. A taken name is reported by the store as
// repository.ErrCategoryAlreadyExists.
func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	now := s.opts.timestamp()
	category := &domain.Category{
		Name:      strings.TrimSpace(input.Name),
		Image:     strings.TrimSpace(input.Image),
		Banner:    strings.TrimSpace(input.Banner),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error) {
	patch := domain.CategoryPatch{
		Name:      nonEmpty(input.Name),
		Image:     nonEmpty(input.Image),
		Banner:    nonEmpty(input.Banner),
		UpdatedAt: s.opts.timestamp(),
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *categoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.Delete(ctx, id)
}
