package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/handler/dto"
	"github.com/promodesk/promodesk/internal/metrics"
	"github.com/promodesk/promodesk/internal/model"
	"github.com/promodesk/promodesk/internal/testutil"
)

func newTestRouter(t *testing.T, ds *dataset.Dataset, rec metrics.Recorder) http.Handler {
	t.Helper()
	h := New(ds, rec, testutil.QuietLogger())
	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Get("/api/v1/datasets", h.Index)
	r.Get("/api/v1/datasets/{kind}", h.Get)
	return r
}

func TestHandler_Index(t *testing.T) {
	ds := testutil.Fixtures(t)
	router := newTestRouter(t, ds, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.DatasetIndexResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, len(dataset.Kinds))
	assert.Equal(t, dataset.KindActivities, resp.Data[0].Kind)
	assert.Equal(t, len(ds.Activities), resp.Data[0].Count)
	assert.Equal(t, "/api/v1/datasets/activities", resp.Data[0].Href)
}

func TestHandler_GetCollection(t *testing.T) {
	ds := testutil.Fixtures(t)
	mem := metrics.NewInMemory()
	router := newTestRouter(t, ds, mem)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/coupons?status=issuing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var coupons []model.Coupon
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&coupons))
	assert.Len(t, coupons, len(ds.Coupons), "query parameters never filter")
	assert.Equal(t, uint64(1), mem.Snapshot().DatasetsServed)
}

func TestHandler_GetEmptyCollection(t *testing.T) {
	router := newTestRouter(t, &dataset.Dataset{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/merchants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_GetUnknownKind(t *testing.T) {
	router := newTestRouter(t, &dataset.Dataset{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/users", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.CodeUnknownKind, resp.Code)
}

func TestHandler_NotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &dataset.Dataset{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), dto.CodeNotFound)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/datasets", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), dto.CodeMethodNotAllowed)
}
