package transport

import (
	"errors"
	"net/http"

	"storefront-admin/internal/middleware"

	"go.uber.org/zap"
)

// decodeRequest decodes and validates the body into v. On failure it
// writes the response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	err := middleware.DecodeAndValidate(r, v)
	if err == nil {
		return true
	}

	var validationErrors middleware.ValidationErrors
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &validationErrors):
		logger.Debug("Validation errors",
			zap.String("path", r.URL.Path),
			zap.Any("errors", validationErrors),
		)
		middleware.RespondWithValidationErrors(w, validationErrors)
	case errors.As(err, &tooLarge):
		middleware.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request entity too large")
	default:
		logger.Debug("Request body decode failed", zap.Error(err))
		middleware.RespondWithErrorDetail(w, http.StatusBadRequest, "Invalid JSON payload", err)
	}
	return false
}

// respondInvalidID reports a malformed path identifier as a field error
func respondInvalidID(w http.ResponseWriter, resource string) {
	middleware.RespondWithValidationErrors(w, []middleware.ValidationError{{
		Field:   "id",
		Message: "Invalid " + resource + " ID",
	}})
}
