package domain

import "time"

// Banner represents a promotional banner
type Banner struct {
	ID          string    `json:"id" db:"id"`
	Image       string    `json:"image" db:"image"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// BannerFilter narrows a banner listing
type BannerFilter struct {
	ActiveOnly bool
}

// Matches reports whether b passes the filter
func (f BannerFilter) Matches(b *Banner) bool {
	return !f.ActiveOnly || b.IsActive
}

// BannerPatch holds the fields of a partial banner update.
// A nil field is left unchanged. UpdatedAt is the modification time to
// record; stores fall back to their own clock when it is zero.
type BannerPatch struct {
	Image       *string
	Title       *string
	Description *string
	IsActive    *bool
	UpdatedAt   time.Time
}

// Empty reports whether the patch changes nothing
func (p BannerPatch) Empty() bool {
	return p.Image == nil && p.Title == nil && p.Description == nil && p.IsActive == nil
}

// Apply copies the set fields of the patch onto b
func (p BannerPatch) Apply(b *Banner) {
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}
