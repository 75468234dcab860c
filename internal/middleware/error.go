package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Path    string            `json:"path,omitempty"`
	Stack   string            `json:"stack,omitempty"`
}

// DataResponse wraps the record affected by a write
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithData sends {message, data}
func RespondWithData(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	RespondWithJSON(w, statusCode, DataResponse{Message: message, Data: data})
}

// RespondWithError sends {message}
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message})
}

// RespondWithErrorDetail sends {message, error} where error carries the
// underlying cause
func RespondWithErrorDetail(w http.ResponseWriter, statusCode int, message string, err error) {
	response := ErrorResponse{Message: message}
	if err != nil {
		response.Error = err.Error()
	}
	RespondWithJSON(w, statusCode, response)
}

// RespondWithValidationErrors sends a 400 with every field error
func RespondWithValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: "Validation failed",
		Errors:  errors,
	})
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors.
// With includeStack the stack trace is returned to the client.
func ErrorHandlingMiddleware(logger *zap.Logger, includeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				logger.Error("Panic recovered",
					zap.Any("error", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.ByteString("stack", stack),
				)

				response := ErrorResponse{Message: fmt.Sprint(rec)}
				if response.Message == "" {
					response.Message = "Internal Server Error"
				}
				if includeStack {
					response.Stack = string(stack)
				}

				RespondWithJSON(w, http.StatusInternalServerError, response)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
