package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

var ErrBannerNotFound = errors.New("banner not found")

// BannerRepository defines the interface for banner data access
type BannerRepository interface {
	List(ctx context.Context, filter domain.BannerFilter) ([]*domain.Banner, error)
	FindByID(ctx context.Context, id string) (*domain.Banner, error)
	Create(ctx context.Context, banner *domain.Banner) error
	Update(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error)
	Delete(ctx context.Context, id string) (*domain.Banner, error)
}

type bannerRepository struct {
	db *sql.DB
}

// NewBannerRepository creates a postgres backed BannerRepository
func NewBannerRepository(db *sql.DB) BannerRepository {
	return &bannerRepository{db: db}
}

const bannerColumns = "id, image, title, description, is_active, created_at, updated_at"

func scanBanner(row interface{ Scan(...any) error }) (*domain.Banner, error) {
	banner := &domain.Banner{}
	err := row.Scan(
		&banner.ID,
		&banner.Image,
		&banner.Title,
		&banner.Description,
		&banner.IsActive,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return banner, nil
}

// List retrieves banners matching the filter, newest first
func (r *bannerRepository) List(ctx context.Context, filter domain.BannerFilter) ([]*domain.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if filter.ActiveOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	banners := []*domain.Banner{}
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, banner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banners: %w", err)
	}

	return banners, nil
}

// FindByID retrieves a banner by ID
func (r *bannerRepository) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	bannerID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`

	banner, err := scanBanner(r.db.QueryRowContext(ctx, query, bannerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to find banner by ID: %w", err)
	}

	return banner, nil
}

// Create inserts a new banner
func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}

	query := `
		INSERT INTO banners (id, image, title, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		banner.ID,
		banner.Image,
		banner.Title,
		banner.Description,
		banner.IsActive,
		banner.CreatedAt,
		banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}

	return nil
}

// Update applies a partial update and returns the stored result
func (r *bannerRepository) Update(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error) {
	bannerID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	set := newSetClause()
	set.add("image", patch.Image)
	set.add("title", patch.Title)
	set.add("description", patch.Description)
	set.add("is_active", patch.IsActive)
	set.add("updated_at", modifiedAt(patch.UpdatedAt, time.Now))

	query := `UPDATE banners SET ` + set.String() +
		` WHERE id = $` + set.next() + ` RETURNING ` + bannerColumns

	banner, err := scanBanner(r.db.QueryRowContext(ctx, query, append(set.args, bannerID)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}

	return banner, nil
}

// Delete removes a banner and returns the removed row
func (r *bannerRepository) Delete(ctx context.Context, id string) (*domain.Banner, error) {
	bannerID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM banners WHERE id = $1 RETURNING ` + bannerColumns

	banner, err := scanBanner(r.db.QueryRowContext(ctx, query, bannerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to delete banner: %w", err)
	}

	return banner, nil
}
