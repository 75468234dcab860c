package service

import (
	"context"
	"strings"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"
)

// CreateBannerInput carries the fields of a new banner. A nil IsActive
// defaults to true.
type CreateBannerInput struct {
	Image       string
	Title       string
	Description string
	IsActive    *bool
}

// UpdateBannerInput carries a partial banner update. Title, Description
// and IsActive apply whenever present, even when empty or false. Image is
// ignored when blank.
type UpdateBannerInput struct {
	Image       *string
	Title       *string
	Description *string
	IsActive    *bool
}

// BannerService manages banners
type BannerService interface {
	List(ctx context.Context) ([]*domain.Banner, error)
	ListActive(ctx context.Context) ([]*domain.Banner, error)
	Get(ctx context.Context, id string) (*domain.Banner, error)
	Create(ctx context.Context, input CreateBannerInput) (*domain.Banner, error)
	Update(ctx context.Context, id string, input UpdateBannerInput) (*domain.Banner, error)
	Delete(ctx context.Context, id string) (*domain.Banner, error)
}

type bannerService struct {
	repo repository.BannerRepository
	opts options
}

// NewBannerService creates a new instance of BannerService
func NewBannerService(repo repository.BannerRepository, opts ...Option) BannerService {
	return &bannerService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

func (s *bannerService) List(ctx context.Context) ([]*domain.Banner, error) {
	return s.repo.List(ctx, domain.BannerFilter{})
}

func (s *bannerService) ListActive(ctx context.Context) ([]*domain.Banner, error) {
	return s.repo.List(ctx, domain.BannerFilter{ActiveOnly: true})
}

func (s *bannerService) Get(ctx context.Context, id string) (*domain.Banner, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *bannerService) Create(ctx context.Context, input CreateBannerInput) (*domain.Banner, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := s.opts.timestamp()
	banner := &domain.Banner{
		Image:       strings.TrimSpace(input.Image),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) Update(ctx context.Context, id string, input UpdateBannerInput) (*domain.Banner, error) {
	patch := domain.BannerPatch{
		Image:       nonEmpty(input.Image),
		Title:       trimmed(input.Title),
		Description: trimmed(input.Description),
		IsActive:    input.IsActive,
		UpdatedAt:   s.opts.timestamp(),
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *bannerService) Delete(ctx context.Context, id string) (*domain.Banner, error) {
	return s.repo.Delete(ctx, id)
}
