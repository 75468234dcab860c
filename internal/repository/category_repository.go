package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
)

// uniqueViolation is the SQLSTATE postgres reports for a duplicate key
const uniqueViolation = "23505"

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a postgres backed CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = "id, name, image, banner, created_at, updated_at"

func scanCategory(row interface{ Scan(...any) error }) (*domain.Category, error) {
	category := &domain.Category{}
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Image,
		&category.Banner,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// List retrieves all categories, newest first
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by ID
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	categoryID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

// Create inserts a new category. The name column carries a UNIQUE
// constraint, a duplicate surfaces as ErrCategoryAlreadyExists.
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	query := `
		INSERT INTO categories (id, name, image, banner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.Name,
		category.Image,
		category.Banner,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// Update applies a partial update and returns the stored result
func (r *categoryRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	categoryID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	set := newSetClause()
	set.add("name", patch.Name)
	set.add("image", patch.Image)
	set.add("banner", patch.Banner)
	set.add("updated_at", modifiedAt(patch.UpdatedAt, time.Now))

	query := `UPDATE categories SET ` + set.String() +
		` WHERE id = $` + set.next() + ` RETURNING ` + categoryColumns

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, append(set.args, categoryID)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes a category and returns the removed row
func (r *categoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	categoryID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM categories WHERE id = $1 RETURNING ` + categoryColumns

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return category, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// setClause accumulates "column = $n" assignments for an UPDATE.
// Nil pointers are skipped.
type setClause struct {
	columns []string
	args    []any
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) add(column string, value any) {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return
		}
		value = *v
	case *bool:
		if v == nil {
			return
		}
		value = *v
	}
	s.args = append(s.args, value)
	s.columns = append(s.columns, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// next returns the placeholder index following the assignments
func (s *setClause) next() string {
	return fmt.Sprint(len(s.args) + 1)
}

func (s *setClause) String() string {
	return strings.Join(s.columns, ", ")
}
