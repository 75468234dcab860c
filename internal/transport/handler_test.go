package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-admin/internal/domain"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("connection refused")

// failingCategoryRepository fails every call with errStoreDown
type failingCategoryRepository struct{}

func (failingCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return nil, errStoreDown
}

func (failingCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return nil, errStoreDown
}

func (failingCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return errStoreDown
}

func (failingCategoryRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	return nil, errStoreDown
}

func (failingCategoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	return nil, errStoreDown
}

type failingBannerRepository struct{}

func (failingBannerRepository) List(ctx context.Context, filter domain.BannerFilter) ([]*domain.Banner, error) {
	return nil, errStoreDown
}

func (failingBannerRepository) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	return nil, errStoreDown
}

func (failingBannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	return errStoreDown
}

func (failingBannerRepository) Update(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error) {
	return nil, errStoreDown
}

func (failingBannerRepository) Delete(ctx context.Context, id string) (*domain.Banner, error) {
	return nil, errStoreDown
}

func newCategoryRouter(repo repository.CategoryRepository) http.Handler {
	r := chi.NewRouter()
	NewCategoryHandler(service.NewCategoryService(repo), zap.NewNop()).RegisterRoutes(r)
	return r
}

func newBannerRouter(repo repository.BannerRepository) http.Handler {
	r := chi.NewRouter()
	NewBannerHandler(service.NewBannerService(repo), zap.NewNop()).RegisterRoutes(r)
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope is the {message, data} body of writes
type envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
