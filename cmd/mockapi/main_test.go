package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promodesk/promodesk/internal/config"
	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/handler"
	"github.com/promodesk/promodesk/internal/metrics"
	"github.com/promodesk/promodesk/internal/model"
	"github.com/promodesk/promodesk/internal/testutil"
)

func readyz(t *testing.T, ds *dataset.Dataset) (int, handler.HealthResponse) {
	t.Helper()
	r := setupRouter(ds, metrics.NewNoop(), &config.Config{}, testutil.QuietLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var resp handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestReadyz_Fixtures(t *testing.T) {
	code, resp := readyz(t, testutil.Fixtures(t))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Checks["dataset"])
}

func TestReadyz_MissingViewCollections(t *testing.T) {
	ds := &dataset.Dataset{Activities: []model.Activity{{ID: "a1"}}}

	code, resp := readyz(t, ds)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "error: empty collections: coupons, retailers, products, monitoringTasks", resp.Checks["dataset"])
}

func TestRouter_ServesDatasets(t *testing.T) {
	r := setupRouter(testutil.Fixtures(t), metrics.NewNoop(), &config.Config{}, testutil.QuietLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/retailers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
