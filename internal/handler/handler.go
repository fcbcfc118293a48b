// Package handler provides the HTTP handlers of the mock data API.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/handler/dto"
	"github.com/promodesk/promodesk/internal/metrics"
	"github.com/promodesk/promodesk/internal/middleware"
)

// Handler serves the loaded dataset as read-only JSON collections.
type Handler struct {
	ds      *dataset.Dataset
	metrics metrics.Recorder
	logger  *slog.Logger
}

// New creates a new Handler instance. A nil recorder disables metrics.
func New(ds *dataset.Dataset, recorder metrics.Recorder, logger *slog.Logger) *Handler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		ds:      ds,
		metrics: recorder,
		logger:  logger.With("component", "handler"),
	}
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "resource not found", dto.CodeNotFound)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", dto.CodeMethodNotAllowed)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg, code string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:     msg,
		Code:      code,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}
