package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/config"
	"github.com/koheiarai-crypto/ai-proxy/handler"
	"github.com/koheiarai-crypto/ai-proxy/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ListenAddress: "127.0.0.1:0",
		LogLevel:      "info",
		LogFormat:     "text",
		Mode:          "release",
		MetricsPath:   "/metrics",
	}
}

func TestRouter(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	var gotAuth, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1"}`))
	}))
	defer upstream.Close()

	chat := handler.ChatCompletion
	chat.URL = upstream.URL
	router := NewRouter(testConfig(), backend.NewBackendClient(), metrics.NewRecorder(nil), map[string]handler.Upstream{
		"/api/openai": chat,
	})

	t.Run("proxies post", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/openai", strings.NewReader(`{"model":"gpt-4o-mini"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"id":"chatcmpl-1"}`, rec.Body.String())
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, `{"model":"gpt-4o-mini"}`, gotBody)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("proxy answers 405", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/openai", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, `{"error":"Only POST"}`, rec.Body.String())
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `ai_proxy_relayed_total{status="200",upstream="chat"} 1`)
	})
}

func TestDefaultRoutes(t *testing.T) {
	assert.Equal(t, handler.ImageGeneration.URL, Routes["/api/gemini"].URL)
	assert.Equal(t, handler.ChatCompletion.URL, Routes["/api/openai"].URL)
}
