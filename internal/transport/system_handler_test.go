package transport

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newSystemRouter(p Pinger) http.Handler {
	r := chi.NewRouter()
	NewSystemHandler(p, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		ping     error
		database string
	}{
		{"store reachable", nil, "Connected"},
		{"store down", errors.New("no reachable servers"), "Disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSystemRouter(pingerFunc(func(context.Context) error { return tt.ping }))

			rec := serve(h, http.MethodGet, "/api/health", "")
			require.Equal(t, http.StatusOK, rec.Code)

			health := decodeBody[HealthResponse](t, rec)
			assert.Equal(t, "OK", health.Status)
			assert.Equal(t, tt.database, health.Database)
			assert.NotEmpty(t, health.Timestamp)
		})
	}
}

func TestNotFound(t *testing.T) {
	h := newSystemRouter(pingerFunc(func(context.Context) error { return nil }))

	rec := serve(h, http.MethodPost, "/nowhere?page=2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Endpoint not found","path":"/nowhere?page=2"}`, rec.Body.String())

	rec = serve(h, http.MethodDelete, "/api/health", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoot(t *testing.T) {
	h := newSystemRouter(pingerFunc(func(context.Context) error { return nil }))

	rec := serve(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message":"Storefront Admin API",
		"version":"1.0.0",
		"endpoints":{"categories":"/api/categories","banners":"/api/banners","health":"/api/health"}
	}`, rec.Body.String())
}
