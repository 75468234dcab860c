package transport

import (
	"errors"
	"net/http"
	"strings"

	"storefront-admin/internal/middleware"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateBannerRequest represents the banner creation payload
type CreateBannerRequest struct {
	Image       string `json:"image" validate:"required"`
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (r *CreateBannerRequest) Normalize() {
	r.Image = strings.TrimSpace(r.Image)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateBannerRequest) ValidationMessages() map[string]string {
	return bannerMessages
}

// UpdateBannerRequest represents the banner update payload
type UpdateBannerRequest struct {
	Image       *string `json:"image"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateBannerRequest) Normalize() {
	trimPtr(r.Image)
	trimPtr(r.Title)
	trimPtr(r.Description)
}

func (r *UpdateBannerRequest) ValidationMessages() map[string]string {
	return bannerMessages
}

var bannerMessages = map[string]string{
	"image.required":   "Banner image is required",
	"image.type":       "Banner image must be a string",
	"title.max":        "Banner title cannot exceed 200 characters",
	"title.type":       "Banner title must be a string",
	"description.max":  "Banner description cannot exceed 500 characters",
	"description.type": "Banner description must be a string",
	"isActive.type":    "isActive must be a boolean",
}

// BannerHandler handles HTTP requests for banners
type BannerHandler struct {
	bannerService service.BannerService
	logger        *zap.Logger
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService service.BannerService, logger *zap.Logger) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
		logger:        logger,
	}
}

// RegisterRoutes registers all banner routes
func (h *BannerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/banners", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/active", h.ListActive)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/banners
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.List(r.Context())
	if err != nil {
		h.respondError(w, err, "Error fetching banners")
		return
	}

	h.logger.Info("Found banners", zap.Int("count", len(banners)))
	middleware.RespondWithJSON(w, http.StatusOK, banners)
}

// ListActive handles GET /api/banners/active
func (h *BannerHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.ListActive(r.Context())
	if err != nil {
		h.respondError(w, err, "Error fetching active banners")
		return
	}

	h.logger.Info("Found active banners", zap.Int("count", len(banners)))
	middleware.RespondWithJSON(w, http.StatusOK, banners)
}

// Get handles GET /api/banners/{id}
func (h *BannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	banner, err := h.bannerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "Error fetching banner")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, banner)
}

// Create handles POST /api/banners
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBannerRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	banner, err := h.bannerService.Create(r.Context(), service.CreateBannerInput{
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondError(w, err, "Error creating banner")
		return
	}

	h.logger.Info("Banner created successfully", zap.String("banner_id", banner.ID))
	middleware.RespondWithData(w, http.StatusCreated, "Banner created successfully", banner)
}

// Update handles PUT /api/banners/{id}
func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBannerRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	banner, err := h.bannerService.Update(r.Context(), chi.URLParam(r, "id"), service.UpdateBannerInput{
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondError(w, err, "Error updating banner")
		return
	}

	h.logger.Info("Banner updated successfully", zap.String("banner_id", banner.ID))
	middleware.RespondWithData(w, http.StatusOK, "Banner updated successfully", banner)
}

// Delete handles DELETE /api/banners/{id}
func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	banner, err := h.bannerService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "Error deleting banner")
		return
	}

	h.logger.Info("Banner deleted successfully", zap.String("banner_id", banner.ID))
	middleware.RespondWithData(w, http.StatusOK, "Banner deleted successfully", banner)
}

func (h *BannerHandler) respondError(w http.ResponseWriter, err error, failure string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		respondInvalidID(w, "banner")
	case errors.Is(err, repository.ErrBannerNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "Banner not found")
	default:
		h.logger.Error(failure, zap.Error(err))
		middleware.RespondWithErrorDetail(w, http.StatusInternalServerError, failure, err)
	}
}
