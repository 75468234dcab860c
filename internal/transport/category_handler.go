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

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Image  string `json:"image" validate:"required"`
	Banner string `json:"banner" validate:"required"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Image = strings.TrimSpace(r.Image)
	r.Banner = strings.TrimSpace(r.Banner)
}

func (r *CreateCategoryRequest) ValidationMessages() map[string]string {
	return categoryMessages
}

// UpdateCategoryRequest represents the category update payload. Blank
// values are accepted and leave the field unchanged.
type UpdateCategoryRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Image  *string `json:"image"`
	Banner *string `json:"banner"`
}

func (r *UpdateCategoryRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Image)
	trimPtr(r.Banner)
}

func (r *UpdateCategoryRequest) ValidationMessages() map[string]string {
	return categoryMessages
}

var categoryMessages = map[string]string{
	"name.required":   "Category name is required",
	"name.max":        "Category name cannot exceed 100 characters",
	"name.type":       "Category name must be a string",
	"image.required":  "Category image is required",
	"image.type":      "Category image must be a string",
	"banner.required": "Category banner is required",
	"banner.type":     "Category banner must be a string",
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		h.respondError(w, err, "Error fetching categories")
		return
	}

	h.logger.Info("Found categories", zap.Int("count", len(categories)))
	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Get handles GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "Error fetching category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), service.CreateCategoryInput{
		Name:   req.Name,
		Image:  req.Image,
		Banner: req.Banner,
	})
	if err != nil {
		h.respondError(w, err, "Error creating category")
		return
	}

	h.logger.Info("Category created successfully", zap.String("category_id", category.ID))
	middleware.RespondWithData(w, http.StatusCreated, "Category created successfully", category)
}

// Update handles PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), chi.URLParam(r, "id"), service.UpdateCategoryInput{
		Name:   req.Name,
		Image:  req.Image,
		Banner: req.Banner,
	})
	if err != nil {
		h.respondError(w, err, "Error updating category")
		return
	}

	h.logger.Info("Category updated successfully", zap.String("category_id", category.ID))
	middleware.RespondWithData(w, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "Error deleting category")
		return
	}

	h.logger.Info("Category deleted successfully", zap.String("category_id", category.ID))
	middleware.RespondWithData(w, http.StatusOK, "Category deleted successfully", category)
}

// respondError maps service errors to responses. failure is the message
// used for unexpected store errors.
func (h *CategoryHandler) respondError(w http.ResponseWriter, err error, failure string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		respondInvalidID(w, "category")
	case errors.Is(err, repository.ErrCategoryNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, repository.ErrCategoryAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, "Category with this name already exists")
	default:
		h.logger.Error(failure, zap.Error(err))
		middleware.RespondWithErrorDetail(w, http.StatusInternalServerError, failure, err)
	}
}
