package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/i18n"
	"frotaweb/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, c.GetString(ContextKeyRequestID), logger.RequestIDFrom(c.Request.Context()))
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, strings.Repeat("x", 65))
	w = serve(r, req)
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestLocale(t *testing.T) {
	r := gin.New()
	r.Use(Locale(i18n.Portuguese))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LocaleFrom(c).String())
	})

	tests := []struct {
		name       string
		query      string
		cookie     string
		accept     string
		want       string
		wantCookie bool
	}{
		{name: "default", want: "pt"},
		{name: "query wins", query: "?lang=en", cookie: "pt", accept: "pt-BR", want: "en", wantCookie: true},
		{name: "cookie over header", cookie: "en", accept: "pt-BR", want: "en"},
		{name: "accept language", accept: "en-US,en;q=0.9", want: "en"},
		{name: "unsupported query", query: "?lang=fr", want: "pt", wantCookie: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieLocale, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			w := serve(r, req)
			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.wantCookie, strings.Contains(w.Header().Get("Set-Cookie"), CookieLocale+"="))
			assert.NotContains(t, w.Header().Get("Set-Cookie"), "Max-Age")
		})
	}
}

func TestLocaleFrom_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, i18n.Default, LocaleFrom(c))
}

func TestClientLimiter(t *testing.T) {
	l := NewClientLimiter(60, 2)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "budgets are per client")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refills per second at 60/min")
	assert.Equal(t, 2, l.Len())

	now = now.Add(idleLimiterTTL + time.Second)
	assert.Equal(t, 2, l.Prune())
	assert.Zero(t, l.Len())
}

func TestRateLimit(t *testing.T) {
	rendered := 0
	render := func(c *gin.Context, status int) {
		rendered++
		c.String(status, "slow down")
	}

	r := gin.New()
	r.Use(RequestID(), RateLimit(NewClientLimiter(1, 1), render))
	r.POST("/forms/contact", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/forms/contact", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/forms/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "slow down", w.Body.String())
	assert.Equal(t, 1, rendered)

	req := httptest.NewRequest(http.MethodPost, "/forms/contact", nil)
	req.Header.Set("Accept", "application/json")
	w = serve(r, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":429`)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestRecovery(t *testing.T) {
	var got int
	render := func(c *gin.Context, status int) {
		got = status
		c.String(status, "failure page")
	}

	r := gin.New()
	r.Use(RequestID(), Recovery(render))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/api/v1/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failure page", w.Body.String())
	assert.Equal(t, http.StatusInternalServerError, got)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"request_id"`)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(nil))
	r.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(errors.New("broken"))
	})
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("broken"))
		c.String(http.StatusBadGateway, "already answered")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/unwritten", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":500`)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "already answered", w.Body.String())
}

func TestGinZapLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(GinZapLogger(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	assert.Equal(t, http.StatusTeapot, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}
