package domain

import "time"

// Category represents a storefront category
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image" db:"image"`
	Banner    string    `json:"banner" db:"banner"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryPatch holds the fields of a partial category update.
// A nil field is left unchanged. UpdatedAt is the modification time to
// record; stores fall back to their own clock when it is zero.
type CategoryPatch struct {
	Name      *string
	Image     *string
	Banner    *string
	UpdatedAt time.Time
}

// Empty reports whether the patch changes nothing
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Image == nil && p.Banner == nil
}

// Apply copies the set fields of the patch onto c
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Banner != nil {
		c.Banner = *p.Banner
	}
}
