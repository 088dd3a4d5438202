package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelance-radar-api/api/middleware"
	"freelance-radar-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	assert.NotNil(t, api)
	assert.NotNil(t, router)
}

func TestNewAPI_HasCorrectTitleAndVersion(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	assert.Equal(t, "Freelance Radar API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.oai.openapi+json", resp.Header.Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{CORSOrigins: []string{"https://radar.example.fr"}})

	req := httptest.NewRequest(http.MethodOptions, "/openapi.json", nil)
	req.Header.Set("Origin", "https://radar.example.fr")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://radar.example.fr", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_RateLimiterApplied(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1, time.Minute)
	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:      interfaces.NopLogger{},
		RateLimiter: limiter,
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
