package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/handler/dto"
)

// Index lists every collection kind with its row count.
//
// GET /api/v1/datasets
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	counts := h.ds.Counts()
	resp := dto.DatasetIndexResponse{Data: make([]dto.DatasetInfo, 0, len(dataset.Kinds))}
	for _, kind := range dataset.Kinds {
		resp.Data = append(resp.Data, dto.DatasetInfo{
			Kind:  kind,
			Count: counts[kind],
			Href:  "/api/v1/datasets/" + kind,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one whole collection as a JSON array. Query parameters are
// ignored: filtering and paging happen in the console.
//
// GET /api/v1/datasets/{kind}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	coll, err := h.ds.Collection(kind)
	if err != nil {
		if errors.Is(err, dataset.ErrUnknownKind) {
			writeError(w, r, http.StatusNotFound, "unknown dataset kind", dto.CodeUnknownKind)
			return
		}
		h.logger.Error("collection lookup failed", slog.String("kind", kind), slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "internal server error", dto.CodeInternal)
		return
	}

	// An unloaded collection is served as [] rather than null.
	if h.ds.Counts()[kind] == 0 {
		coll = []struct{}{}
	}

	h.metrics.IncDatasetServed(kind)
	writeJSON(w, http.StatusOK, coll)
}
