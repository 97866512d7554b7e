package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as sanitized JSON messages
//   - Mapped to HTTP status codes by error type

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondError logs the technical error server-side and writes a JSON error
// response with a status code derived from the error type.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)

	// Get request ID for correlation
	requestID := middleware.GetReqID(r.Context())

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", code,
		"request_id", requestID,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// classifyError maps pipeline errors to HTTP status codes and stable
// machine-readable codes.
func classifyError(err error) (status int, code string) {
	var ipe *core.InvalidPayloadError
	var tne *core.TrekNormalizationError

	switch {
	case errors.As(err, &ipe):
		return http.StatusBadRequest, "invalid_payload"
	case errors.As(err, &tne):
		return http.StatusUnprocessableEntity, "trek_rejected"
	case errors.Is(err, core.ErrRunNotFound):
		return http.StatusNotFound, "run_not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// writeError writes a JSON error response with a fixed message.
// Used where there is no pipeline error to classify (bad requests, limits).
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	requestID := middleware.GetReqID(r.Context())
	slog.Warn("request rejected",
		"path", r.URL.Path,
		"status", status,
		"reason", message,
		"request_id", requestID,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
