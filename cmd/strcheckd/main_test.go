package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/config"
	"github.com/dmitrymomot/strcheck/pkg/httpserver"
	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/messages"
	"github.com/dmitrymomot/strcheck/pkg/requestid"
)

func testConfig(t *testing.T, env map[string]string) appConfig {
	t.Helper()
	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(env)))
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := testConfig(t, map[string]string{})
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "en", cfg.DefaultLang)
	assert.Equal(t, 100, cfg.MaxBatchItems)
}

func TestRouter(t *testing.T) {
	cfg := testConfig(t, map[string]string{"DEFAULT_LANG": "zh", "MAX_BATCH_ITEMS": "2"})
	catalog, err := messages.New(messages.WithDefaultLanguage(cfg.DefaultLang))
	require.NoError(t, err)
	var serving atomic.Bool
	h := newRouter(catalog, cfg, logger.Discard(), func(context.Context) error {
		if !serving.Load() {
			return httpserver.ErrNotReady
		}
		return nil
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("readiness follows the server state", func(t *testing.T) {
		rec := get("/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())

		rec = get("/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())

		serving.Store(true)
		rec = get("/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("api is mounted under v1 with the configured language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"kind":"digit","value":"12a"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(requestid.Header, "trace-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-1", rec.Header().Get(requestid.Header))
		assert.Equal(t, "zh", rec.Header().Get("Content-Language"))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["valid"])
		assert.Equal(t, "digit只能包含数字", resp["message"])
	})

	t.Run("batch limit comes from config", func(t *testing.T) {
		item := `{"kind":"digit","value":"1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/check/batch",
			strings.NewReader(`{"items":[`+item+`,`+item+`,`+item+`]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig(t, map[string]string{"APP_ENV": "production", "LOG_LEVEL": "error"})
	log := newLogger(cfg)
	require.NotNil(t, log)
	assert.False(t, log.Enabled(t.Context(), -4))
	assert.True(t, log.Enabled(t.Context(), 8))
}
