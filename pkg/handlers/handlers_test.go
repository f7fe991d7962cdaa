package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/config"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/middleware"
	"frotaweb/pkg/pages"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSender struct {
	mu       sync.Mutex
	err      error
	payloads []*leadform.Payload
}

func (s *recordingSender) Send(_ context.Context, p *leadform.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return s.err
}

func (s *recordingSender) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

func newTestRouter(t *testing.T, sender leadform.Sender) (*HandlerService, *gin.Engine) {
	t.Helper()

	cfg := config.Default()
	cfg.Site.DefaultLocale = "pt"
	h, err := NewHandlerService(context.Background(), cfg)
	require.NoError(t, err)
	h.SetSender(sender)
	h.tickInterval = 10 * time.Millisecond

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(h.RenderFailure),
		middleware.ErrorHandler(h.RenderFailure),
		middleware.Locale(h.DefaultLocale()),
	)
	r.GET("/health", h.HealthCheck)
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/robots.txt", h.Robots)
	for _, d := range pages.Routes() {
		r.GET(d.Route, h.ServePage)
	}
	r.POST("/forms/:kind", h.SubmitForm)
	r.GET("/carousel/:name/stream", h.StreamCarousel)

	api := r.Group("/api/v1")
	api.GET("/status", h.GetStatus)
	api.GET("/cities", h.GetCities)
	api.GET("/reference", h.GetReference)
	api.GET("/organization", h.GetOrganization)
	api.GET("/pages", h.GetPages)
	r.NoRoute(h.NotFound)

	return h, r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func post(r http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details string          `json:"details"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestServePage_Home(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc := document(t, w)
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "pt-BR", lang)
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.True(t, strings.HasPrefix(canonical, "https://"), canonical)
	assert.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestServePage_English(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/sobre?lang=en")
	require.Equal(t, http.StatusOK, w.Code)

	lang, _ := document(t, w).Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
}

func TestServePage_AccreditationType(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	tests := []struct {
		name   string
		target string
		typ    string
		field  string
	}{
		{"default", pages.RouteAccreditation, "postos", leadform.FieldFuelBrand},
		{"automotive", pages.RouteAccreditation + "?tipo=linha", "linha", leadform.FieldPartnerSegment},
		{"unknown keeps default", pages.RouteAccreditation + "?tipo=barcos", "postos", leadform.FieldFuelBrand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			doc := document(t, w)
			form := doc.Find(`form[data-leadform="accreditation"]`)
			require.Equal(t, 1, form.Length())

			typ, _ := form.Find(`input[name="Tipo"]`).Attr("value")
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, 1, form.Find(`select[name="`+tt.field+`"]`).Length())
			token, _ := form.Find(`input[name="_token"]`).Attr("value")
			assert.NotEmpty(t, token)
		})
	}
}

func TestNotFound(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/nao-existe")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = get(r, "/api/v1/nothing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, decodeEnvelope(t, w).Code)
}

func TestSubmitForm_ContactRedirects(t *testing.T) {
	sender := &recordingSender{}
	_, r := newTestRouter(t, sender)

	w := post(r, "/forms/contact", url.Values{
		leadform.HiddenToken: {leadform.NewToken()},
		leadform.FieldEmail:  {"frota@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, pages.RouteThanks, w.Header().Get("Location"))
	require.Equal(t, 1, sender.calls())

	next, ok := sender.payloads[0].Get(leadform.HiddenNext)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(next, pages.RouteThanks), next)
}

func TestSubmitForm_AccreditationShowsConfirmation(t *testing.T) {
	sender := &recordingSender{}
	_, r := newTestRouter(t, sender)

	w := post(r, "/forms/accreditation", url.Values{
		leadform.HiddenToken:    {leadform.NewToken()},
		leadform.HiddenType:     {"linha"},
		leadform.FieldCNPJ:      {"12.345.678/0001-90"},
		leadform.FieldLegalName: {"Auto Peças Ltda"},
		leadform.FieldTradeName: {"Auto Peças"},
		leadform.FieldState:     {"RJ"},
		leadform.FieldCity:      {"Niterói"},
		leadform.FieldEmail:     {"parceiro@example.com"},
		leadform.FieldTerms:     {"on"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	doc := document(t, w)
	refresh, _ := doc.Find(`meta[http-equiv="refresh"]`).Attr("content")
	assert.Equal(t, "6;url=/", refresh)
	assert.Equal(t, 1, doc.Find(".notice-success").Length())
	assert.Equal(t, 0, doc.Find("form.form-grid").Length())

	require.Equal(t, 1, sender.calls())
	p := sender.payloads[0]
	typ, _ := p.Get(leadform.HiddenType)
	assert.Equal(t, "linha", typ)
	city, _ := p.Get(leadform.FieldCity)
	assert.Equal(t, "Niterói", city)
	_, hasTerms := p.Get(leadform.FieldTerms)
	assert.False(t, hasTerms)
}

func TestSubmitForm_ValidationError(t *testing.T) {
	sender := &recordingSender{}
	_, r := newTestRouter(t, sender)

	w := post(r, "/forms/client", url.Values{
		leadform.HiddenToken: {leadform.NewToken()},
		leadform.FieldEmail:  {"not-an-email"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, sender.calls())

	doc := document(t, w)
	assert.Equal(t, 1, doc.Find(".notice-error").Length())
	invalid := doc.Find(".field.invalid")
	assert.GreaterOrEqual(t, invalid.Length(), 4)
	email, _ := doc.Find(`input[name="Email"]`).Attr("value")
	assert.Equal(t, "not-an-email", email)
}

func TestSubmitForm_RelayFailureKeepsValues(t *testing.T) {
	sender := &recordingSender{err: errors.New("connection refused")}
	_, r := newTestRouter(t, sender)
	token := leadform.NewToken()

	values := url.Values{
		leadform.HiddenToken: {token},
		leadform.FieldEmail:  {"frota@example.com"},
		leadform.FieldMobile: {"11 99999-0000"},
	}
	w := post(r, "/forms/contact", values)
	require.Equal(t, http.StatusBadGateway, w.Code)

	doc := document(t, w)
	assert.Equal(t, 1, doc.Find(".notice-error").Length())
	mobile, _ := doc.Find(`input[name="DDD_Celular"]`).Attr("value")
	assert.Equal(t, "11 99999-0000", mobile)
	kept, _ := doc.Find(`input[name="_token"]`).Attr("value")
	assert.Equal(t, token, kept)

	// a failed token can be retried
	sender.mu.Lock()
	sender.err = nil
	sender.mu.Unlock()
	w = post(r, "/forms/contact", values)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 2, sender.calls())
}

func TestSubmitForm_DuplicateToken(t *testing.T) {
	sender := &recordingSender{}
	_, r := newTestRouter(t, sender)

	values := url.Values{
		leadform.HiddenToken: {leadform.NewToken()},
		leadform.FieldEmail:  {"frota@example.com"},
	}
	require.Equal(t, http.StatusSeeOther, post(r, "/forms/contact", values).Code)

	w := post(r, "/forms/contact", values)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, sender.calls())
	refresh, _ := document(t, w).Find(`meta[http-equiv="refresh"]`).Attr("content")
	assert.Contains(t, refresh, "url="+pages.RouteThanks)
}

func TestSubmitForm_Rejected(t *testing.T) {
	sender := &recordingSender{}
	_, r := newTestRouter(t, sender)

	w := post(r, "/forms/contact", url.Values{leadform.FieldEmail: {"frota@example.com"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/forms/newsletter", url.Values{leadform.HiddenToken: {leadform.NewToken()}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, sender.calls())
}

func TestGetCities(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/api/v1/cities?state=sp")
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var data struct {
		State  string   `json:"state"`
		Known  bool     `json:"known"`
		Cities []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "SP", data.State)
	assert.True(t, data.Known)
	assert.Contains(t, data.Cities, "Campinas")

	w = get(r, "/api/v1/cities?state=XX")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.False(t, data.Known)
	assert.Equal(t, []string{"Cidade"}, data.Cities)

	w = get(r, "/api/v1/cities")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Details, "state is required")
}

func TestGetPages(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/api/v1/pages?lang=en")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Locale string `json:"locale"`
		Count  int    `json:"count"`
		Pages  []struct {
			Route string `json:"route"`
			Form  string `json:"form"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.Equal(t, "en", data.Locale)
	assert.Equal(t, len(pages.Routes()), data.Count)

	forms := map[string]string{}
	for _, p := range data.Pages {
		if p.Form != "" {
			forms[p.Route] = p.Form
		}
	}
	assert.Equal(t, "contact", forms[pages.RouteContact])
	assert.Equal(t, "accreditation", forms[pages.RouteAccreditation])
}

func TestHealthCheck(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status string `json:"status"`
		Checks map[string]struct {
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["renderer"].Status)
	assert.Equal(t, "unknown", health.Checks["relay"].Status)
}

func TestGetStatus(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Service string `json:"service"`
		Forms   struct {
			Kinds []string `json:"kinds"`
		} `json:"forms"`
		Scheduler json.RawMessage `json:"scheduler"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.Equal(t, ServiceName, data.Service)
	assert.ElementsMatch(t, []string{"accreditation", "client", "contact"}, data.Forms.Kinds)
	assert.Empty(t, data.Scheduler, "no scheduler attached")
}

func TestSitemapAndRobots(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<urlset")

	w = get(r, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: ")
}

func TestStreamCarousel(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/carousel/home-dashboard/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	var indexes []int
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && len(indexes) < 5 {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		var tick Tick
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(strings.TrimPrefix(line, "data:"))), &tick))
		indexes = append(indexes, tick.Index)
	}
	cancel()

	assert.Equal(t, []int{0, 1, 2, 0, 1}, indexes)
}

func TestStreamCarousel_UnknownSet(t *testing.T) {
	_, r := newTestRouter(t, &recordingSender{})

	w := get(r, "/carousel/nope/stream")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
