package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(s).Register(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "FlashBot Dashboard", body["service"])
}

func TestGetStatus_AbsentReturnsUnknown(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodGet, "/api/status", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unknown", body["status"])
}

func TestUpdateStatus_MergesIntoSingleton(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodPut, "/api/status", map[string]any{
		"status":  "scanning",
		"network": "base",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	// Second update merges; untouched fields survive
	rec, _ = doRequest(t, router, http.MethodPut, "/api/status", map[string]any{
		"scans_count": 42,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = doRequest(t, router, http.MethodGet, "/api/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "scanning", body["status"])
	assert.Equal(t, "base", body["network"])
	assert.Equal(t, float64(42), body["scans_count"])
}

func TestGetSettings_AbsentReturns404(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodGet, "/api/settings", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errInfo["code"])
	assert.Equal(t, "Settings not found", errInfo["message"])
}

func TestUpdateSettings_PartialMergeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.UpsertSingleton(ctx, model.CollectionSettings, store.Document{
		"max_gas_price_gwei": 0.1,
		"scan_interval_ms":   4000,
		"bot_active":         true,
		"updated_at":         "2025-01-01T00:00:00.000000Z",
	}))
	router := newTestRouter(s)

	rec, body := doRequest(t, router, http.MethodPut, "/api/settings", map[string]any{
		"max_gas_price_gwei": 0.2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Response carries the full updated document
	assert.Equal(t, 0.2, body["max_gas_price_gwei"])
	assert.Equal(t, float64(4000), body["scan_interval_ms"])
	assert.Equal(t, true, body["bot_active"])
	assert.Greater(t, body["updated_at"].(string), "2025-01-01T00:00:00.000000Z",
		"updated_at must advance")

	rec, body = doRequest(t, router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.2, body["max_gas_price_gwei"])
	assert.Equal(t, true, body["bot_active"])
}

func TestUpdateSettings_UnknownFieldsIgnored(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodPut, "/api/settings", map[string]any{
		"bot_active": false,
		"surprise":   "ignored",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["bot_active"])
	assert.NotContains(t, body, "surprise")
}

func TestListOpportunities_SortFilterLimit(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	_, err := s.InsertMany(ctx, model.CollectionOpportunities, []store.Document{
		{"detected_at": "2025-01-01T08:00:00.000000Z", "status": "detected"},
		{"detected_at": "2025-01-01T12:00:00.000000Z", "status": "profitable"},
		{"detected_at": "2025-01-01T10:00:00.000000Z", "status": "profitable"},
	})
	require.NoError(t, err)
	router := newTestRouter(s)

	rec, body := doRequest(t, router, http.MethodGet, "/api/opportunities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["count"])

	opps := body["opportunities"].([]any)
	require.Len(t, opps, 3)
	timestamps := make([]string, 0, len(opps))
	for _, o := range opps {
		doc := o.(map[string]any)
		assert.NotEmpty(t, doc["id"])
		timestamps = append(timestamps, doc["detected_at"].(string))
	}
	for i := 1; i < len(timestamps); i++ {
		assert.GreaterOrEqual(t, timestamps[i-1], timestamps[i],
			"detected_at must be non-increasing")
	}

	rec, body = doRequest(t, router, http.MethodGet, "/api/opportunities?status=profitable&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
	opp := body["opportunities"].([]any)[0].(map[string]any)
	assert.Equal(t, "2025-01-01T12:00:00.000000Z", opp["detected_at"])
}

func TestListOpportunities_InvalidLimit(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	rec, body := doRequest(t, router, http.MethodGet, "/api/opportunities?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_QUERY", errInfo["code"])
}

func TestCreateOpportunity_StampsDetectedAt(t *testing.T) {
	s := store.NewMemory()
	router := newTestRouter(s)

	rec, body := doRequest(t, router, http.MethodPost, "/api/opportunities", map[string]any{
		"path":             "WETH -> USDC -> DAI -> WETH",
		"estimated_profit": "0.01",
		"detected_at":      "1999-01-01T00:00:00.000000Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	docs, err := s.Find(context.Background(), model.CollectionOpportunities, nil, store.FindOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Greater(t, docs[0]["detected_at"].(string), "2000-01-01",
		"client-supplied detected_at must be overwritten")
}

func TestTrades_CreateAndList(t *testing.T) {
	s := store.NewMemory()
	router := newTestRouter(s)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/trades", map[string]any{
		"profit": "0.1",
		"status": "success",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doRequest(t, router, http.MethodGet, "/api/trades", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
	trade := body["trades"].([]any)[0].(map[string]any)
	assert.Equal(t, "0.1", trade["profit"])
	assert.NotEmpty(t, trade["executed_at"])
}

func TestLogs_CreateFilterAndClear(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	for _, level := range []string{"INFO", "ERROR", "INFO"} {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/logs", map[string]any{
			"level":   level,
			"message": "test entry",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := doRequest(t, router, http.MethodGet, "/api/logs?level=INFO", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])

	rec, body = doRequest(t, router, http.MethodDelete, "/api/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Logs cleared", body["message"])

	rec, body = doRequest(t, router, http.MethodGet, "/api/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["logs"])
}

func TestStatsEndpoint(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	_, err := s.InsertMany(ctx, model.CollectionTrades, []store.Document{
		{"profit": "0.1", "profit_usd": "250", "gas_cost": "0.001", "status": "success", "path": "p"},
		{"profit": "-0.02", "profit_usd": "-50", "gas_cost": "0.001", "status": "reverted", "path": "q"},
	})
	require.NoError(t, err)
	router := newTestRouter(s)

	rec, body := doRequest(t, router, http.MethodGet, "/api/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total_trades"])
	assert.Equal(t, float64(1), body["successful_trades"])
	assert.Equal(t, 50.0, body["win_rate"])
	assert.InDelta(t, 0.098, body["net_profit_eth"].(float64), 1e-9)
	assert.Equal(t, "-0.02", body["worst_trade_profit"])
}
