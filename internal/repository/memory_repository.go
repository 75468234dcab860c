package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront-admin/internal/domain"

	"github.com/google/uuid"
)

// record pairs a stored value with its insertion sequence so listings stay
// deterministic when timestamps collide.
type record[T any] struct {
	seq   uint64
	value T
}

type memoryCategoryRepository struct {
	mu      sync.RWMutex
	seq     uint64
	records map[string]record[domain.Category]
	now     func() time.Time
}

// NewMemoryCategoryRepository creates an in-process CategoryRepository.
// Names are kept unique under the repository lock.
func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepository{
		records: make(map[string]record[domain.Category]),
		now:     time.Now,
	}
}

func (r *memoryCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]record[domain.Category], 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return newer(recs[i].value.CreatedAt, recs[i].seq, recs[j].value.CreatedAt, recs[j].seq)
	})

	categories := make([]*domain.Category, 0, len(recs))
	for _, rec := range recs {
		category := rec.value
		categories = append(categories, &category)
	}
	return categories, nil
}

func (r *memoryCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	category := rec.value
	return &category, nil
}

func (r *memoryCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(category.Name, "") {
		return ErrCategoryAlreadyExists
	}

	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	r.seq++
	r.records[category.ID] = record[domain.Category]{seq: r.seq, value: *category}
	return nil
}

func (r *memoryCategoryRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	if patch.Name != nil && r.nameTaken(*patch.Name, id) {
		return nil, ErrCategoryAlreadyExists
	}

	patch.Apply(&rec.value)
	rec.value.UpdatedAt = modifiedAt(patch.UpdatedAt, r.now)
	r.records[id] = rec

	category := rec.value
	return &category, nil
}

func (r *memoryCategoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	delete(r.records, id)

	category := rec.value
	return &category, nil
}

// nameTaken must be called with the lock held
func (r *memoryCategoryRepository) nameTaken(name, exceptID string) bool {
	for id, rec := range r.records {
		if id != exceptID && rec.value.Name == name {
			return true
		}
	}
	return false
}

type memoryBannerRepository struct {
	mu      sync.RWMutex
	seq     uint64
	records map[string]record[domain.Banner]
	now     func() time.Time
}

// NewMemoryBannerRepository creates an in-process BannerRepository
func NewMemoryBannerRepository() BannerRepository {
	return &memoryBannerRepository{
		records: make(map[string]record[domain.Banner]),
		now:     time.Now,
	}
}

func (r *memoryBannerRepository) List(ctx context.Context, filter domain.BannerFilter) ([]*domain.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]record[domain.Banner], 0, len(r.records))
	for _, rec := range r.records {
		if filter.Matches(&rec.value) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return newer(recs[i].value.CreatedAt, recs[i].seq, recs[j].value.CreatedAt, recs[j].seq)
	})

	banners := make([]*domain.Banner, 0, len(recs))
	for _, rec := range recs {
		banner := rec.value
		banners = append(banners, &banner)
	}
	return banners, nil
}

func (r *memoryBannerRepository) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrBannerNotFound
	}
	banner := rec.value
	return &banner, nil
}

func (r *memoryBannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}
	r.seq++
	r.records[banner.ID] = record[domain.Banner]{seq: r.seq, value: *banner}
	return nil
}

func (r *memoryBannerRepository) Update(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrBannerNotFound
	}

	patch.Apply(&rec.value)
	rec.value.UpdatedAt = modifiedAt(patch.UpdatedAt, r.now)
	r.records[id] = rec

	banner := rec.value
	return &banner, nil
}

func (r *memoryBannerRepository) Delete(ctx context.Context, id string) (*domain.Banner, error) {
	if _, err := parseUUID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, ErrBannerNotFound
	}
	delete(r.records, id)

	banner := rec.value
	return &banner, nil
}

// newer orders by creation time descending, then by insertion descending
func newer(aTime time.Time, aSeq uint64, bTime time.Time, bSeq uint64) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return aSeq > bSeq
}
