package transport

import (
	"context"
	"net/http"
	"time"

	"storefront-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIVersion is reported by the root document
const APIVersion = "1.0.0"

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// SystemHandler serves the health check, the API description document
// and the catch-all 404
type SystemHandler struct {
	store  Pinger
	logger *zap.Logger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store Pinger, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{store: store, logger: logger}
}

// RegisterRoutes registers the system routes and the not-found handlers
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/api/health", h.Health)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)
}

// Health handles GET /api/health. It always answers 200 and reports the
// store state in the database field.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	database := "Connected"
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Database ping failed", zap.Error(err))
		database = "Disconnected"
	}

	middleware.RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Storefront Admin API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  database,
	})
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Storefront Admin API",
		"version": APIVersion,
		"endpoints": map[string]string{
			"categories": "/api/categories",
			"banners":    "/api/banners",
			"health":     "/api/health",
		},
	})
}

// NotFound answers any unmatched method and path
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusNotFound, middleware.ErrorResponse{
		Message: "Endpoint not found",
		Path:    r.URL.RequestURI(),
	})
}
