package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend describes one store implementation for the shared contract tests
type backend struct {
	categories CategoryRepository
	banners    BannerRepository
	// missingID returns a well-formed identifier that is not stored
	missingID func() string
	reset     func(t *testing.T)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newCategory(name string, offset int) *domain.Category {
	ts := baseTime.Add(time.Duration(offset) * time.Second)
	return &domain.Category{Name: name, Image: name + ".png", Banner: name + "-banner.png", CreatedAt: ts, UpdatedAt: ts}
}

func newBanner(image string, active bool, offset int) *domain.Banner {
	ts := baseTime.Add(time.Duration(offset) * time.Second)
	return &domain.Banner{Image: image, Title: "title " + image, IsActive: active, CreatedAt: ts, UpdatedAt: ts}
}

func runCategoryContract(t *testing.T, b *backend) {
	ctx := context.Background()

	t.Run("create then find returns the same record", func(t *testing.T) {
		b.reset(t)
		created := newCategory("Shoes", 0)
		require.NoError(t, b.categories.Create(ctx, created))
		require.NotEmpty(t, created.ID)

		found, err := b.categories.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Shoes", found.Name)
		assert.Equal(t, "Shoes.png", found.Image)
		assert.Equal(t, "Shoes-banner.png", found.Banner)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		b.reset(t)
		require.NoError(t, b.categories.Create(ctx, newCategory("Hats", 0)))
		err := b.categories.Create(ctx, newCategory("Hats", 1))
		assert.ErrorIs(t, err, ErrCategoryAlreadyExists)

		all, err := b.categories.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		b.reset(t)
		require.NoError(t, b.categories.Create(ctx, newCategory("Bags", 0)))
		assert.NoError(t, b.categories.Create(ctx, newCategory("bags", 1)))
	})

	t.Run("list is newest first", func(t *testing.T) {
		b.reset(t)
		names := []string{"A", "B", "C", "D"}
		for i, name := range names {
			require.NoError(t, b.categories.Create(ctx, newCategory(name, i)))
		}

		all, err := b.categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(names))
		for i, category := range all {
			assert.Equal(t, names[len(names)-1-i], category.Name)
		}
	})

	t.Run("list of empty store is empty, not nil", func(t *testing.T) {
		b.reset(t)
		all, err := b.categories.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("update changes only supplied fields", func(t *testing.T) {
		b.reset(t)
		created := newCategory("Coats", 0)
		require.NoError(t, b.categories.Create(ctx, created))

		updated, err := b.categories.Update(ctx, created.ID, domain.CategoryPatch{Image: strPtr("new.png")})
		require.NoError(t, err)
		assert.Equal(t, "Coats", updated.Name)
		assert.Equal(t, "new.png", updated.Image)
		assert.Equal(t, created.Banner, updated.Banner)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("update records the stamped modification time", func(t *testing.T) {
		b.reset(t)
		created := newCategory("Scarves", 0)
		require.NoError(t, b.categories.Create(ctx, created))

		stamp := baseTime.Add(time.Hour + 250*time.Millisecond)
		updated, err := b.categories.Update(ctx, created.ID, domain.CategoryPatch{Name: strPtr("Wraps"), UpdatedAt: stamp})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.Equal(stamp), "got %v", updated.UpdatedAt)

		found, err := b.categories.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, found.UpdatedAt.Equal(stamp), "got %v", found.UpdatedAt)
		assert.True(t, found.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("update onto an existing name conflicts", func(t *testing.T) {
		b.reset(t)
		first := newCategory("One", 0)
		second := newCategory("Two", 1)
		require.NoError(t, b.categories.Create(ctx, first))
		require.NoError(t, b.categories.Create(ctx, second))

		_, err := b.categories.Update(ctx, second.ID, domain.CategoryPatch{Name: strPtr("One")})
		assert.ErrorIs(t, err, ErrCategoryAlreadyExists)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		b.reset(t)
		_, err := b.categories.FindByID(ctx, b.missingID())
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		_, err = b.categories.Update(ctx, b.missingID(), domain.CategoryPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		_, err = b.categories.Delete(ctx, b.missingID())
		assert.ErrorIs(t, err, ErrCategoryNotFound)

		for _, malformed := range []string{"", "not-an-id", "123"} {
			_, err = b.categories.FindByID(ctx, malformed)
			assert.ErrorIs(t, err, ErrInvalidID, malformed)
			_, err = b.categories.Update(ctx, malformed, domain.CategoryPatch{})
			assert.ErrorIs(t, err, ErrInvalidID, malformed)
			_, err = b.categories.Delete(ctx, malformed)
			assert.ErrorIs(t, err, ErrInvalidID, malformed)
		}
	})

	t.Run("delete returns the record and removes it", func(t *testing.T) {
		b.reset(t)
		created := newCategory("Gone", 0)
		require.NoError(t, b.categories.Create(ctx, created))

		deleted, err := b.categories.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gone", deleted.Name)

		_, err = b.categories.FindByID(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrCategoryNotFound))
	})
}

func runBannerContract(t *testing.T, b *backend) {
	ctx := context.Background()

	t.Run("create then find returns the same record", func(t *testing.T) {
		b.reset(t)
		created := newBanner("hero.png", true, 0)
		require.NoError(t, b.banners.Create(ctx, created))

		found, err := b.banners.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "hero.png", found.Image)
		assert.Equal(t, "title hero.png", found.Title)
		assert.True(t, found.IsActive)
	})

	t.Run("active filter and ordering", func(t *testing.T) {
		b.reset(t)
		require.NoError(t, b.banners.Create(ctx, newBanner("a.png", true, 0)))
		require.NoError(t, b.banners.Create(ctx, newBanner("b.png", false, 1)))
		require.NoError(t, b.banners.Create(ctx, newBanner("c.png", true, 2)))

		all, err := b.banners.List(ctx, domain.BannerFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "c.png", all[0].Image)
		assert.Equal(t, "b.png", all[1].Image)
		assert.Equal(t, "a.png", all[2].Image)

		active, err := b.banners.List(ctx, domain.BannerFilter{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "c.png", active[0].Image)
		assert.Equal(t, "a.png", active[1].Image)
	})

	t.Run("update can clear title and deactivate", func(t *testing.T) {
		b.reset(t)
		created := newBanner("x.png", true, 0)
		require.NoError(t, b.banners.Create(ctx, created))

		updated, err := b.banners.Update(ctx, created.ID, domain.BannerPatch{Title: strPtr(""), IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Title)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "x.png", updated.Image)

		active, err := b.banners.List(ctx, domain.BannerFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("update records the stamped modification time", func(t *testing.T) {
		b.reset(t)
		created := newBanner("stamp.png", true, 0)
		require.NoError(t, b.banners.Create(ctx, created))

		stamp := baseTime.Add(2*time.Hour + 750*time.Millisecond)
		updated, err := b.banners.Update(ctx, created.ID, domain.BannerPatch{IsActive: boolPtr(false), UpdatedAt: stamp})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.Equal(stamp), "got %v", updated.UpdatedAt)
		assert.False(t, updated.IsActive)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		b.reset(t)
		_, err := b.banners.FindByID(ctx, b.missingID())
		assert.ErrorIs(t, err, ErrBannerNotFound)
		_, err = b.banners.Update(ctx, b.missingID(), domain.BannerPatch{})
		assert.ErrorIs(t, err, ErrBannerNotFound)
		_, err = b.banners.Delete(ctx, b.missingID())
		assert.ErrorIs(t, err, ErrBannerNotFound)

		_, err = b.banners.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("delete then find is not found", func(t *testing.T) {
		b.reset(t)
		created := newBanner("d.png", true, 0)
		require.NoError(t, b.banners.Create(ctx, created))

		_, err := b.banners.Delete(ctx, created.ID)
		require.NoError(t, err)
		_, err = b.banners.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrBannerNotFound)
	})
}
