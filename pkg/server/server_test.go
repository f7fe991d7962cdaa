package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/config"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/pages"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *HTTPServer {
	t.Helper()

	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "imagens"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "imagens", "logo_topo.png"), []byte("png"), 0o644))

	cfg := config.Default()
	cfg.Server.AssetsDir = assets
	cfg.Server.EnableSwagger = true
	if mutate != nil {
		mutate(cfg)
	}

	s, err := NewHTTPServer(context.Background(), &Config{Config: cfg})
	require.NoError(t, err)
	s.HandlerService().SetSender(leadform.SenderFunc(func(context.Context, *leadform.Payload) error {
		return nil
	}))
	return s
}

func do(s *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestRoutesRegistered(t *testing.T) {
	s := newTestServer(t, nil)

	registered := map[string]bool{}
	for _, r := range s.engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, d := range pages.Routes() {
		assert.True(t, registered["GET "+d.Route], d.Route)
	}
	for _, want := range []string{
		"GET /health",
		"GET /sitemap.xml",
		"GET /robots.txt",
		"POST /forms/:kind",
		"GET /carousel/:name/stream",
		"GET /api/v1/status",
		"GET /api/v1/cities",
		"GET /api/v1/reference",
		"GET /api/v1/organization",
		"GET /api/v1/pages",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSwaggerDisabled(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.Server.EnableSwagger = false })

	w := do(s, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/cities"`)
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(s, httptest.NewRequest(http.MethodGet, "/imagens/logo_topo.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

func TestCORSOnAPI(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cities?state=SP", nil)
	req.Header.Set("Origin", "https://partner.example.com")
	w := do(s, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.AllowedOrigins = []string{"https://frotainstasolutions.com.br"}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference", nil)
	req.Header.Set("Origin", "https://frotainstasolutions.com.br")
	w := do(s, req)
	assert.Equal(t, "https://frotainstasolutions.com.br", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reference", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	w = do(s, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFormRateLimit(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerMinute = 1
		cfg.RateLimit.Burst = 2
	})

	submit := func() *httptest.ResponseRecorder {
		body := url.Values{
			leadform.HiddenToken: {leadform.NewToken()},
			leadform.FieldEmail:  {"frota@example.com"},
		}
		req := httptest.NewRequest(http.MethodPost, "/forms/contact", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "198.51.100.7:4321"
		return do(s, req)
	}

	assert.Equal(t, http.StatusSeeOther, submit().Code)
	assert.Equal(t, http.StatusSeeOther, submit().Code)

	w := submit()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "frota@example.com")

	assert.Len(t, s.Pruners(), 2)
}

func TestFormRateLimitDisabled(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) { cfg.RateLimit.Enabled = false })

	assert.Len(t, s.Pruners(), 1)
}
