package web

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/i18n"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/seo"
)

func render(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func resolve(t *testing.T, route string, locale i18n.Locale) *pages.View {
	t.Helper()
	v, err := pages.NewResolver(pages.Options{}).Resolve(route, locale)
	require.NoError(t, err)
	return v
}

func TestRender_HomeHead(t *testing.T) {
	doc := render(t, Page{View: resolve(t, pages.RouteHome, i18n.Portuguese)})

	assert.Equal(t, "pt-BR", doc.Find("html").AttrOr("lang", ""))
	assert.Contains(t, doc.Find("title").Text(), seo.DefaultOrgName)
	assert.Equal(t, seo.DefaultDomain, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.NotEmpty(t, doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.NotEmpty(t, doc.Find(`meta[name="keywords"]`).AttrOr("content", ""))
	assert.Zero(t, doc.Find(`meta[name="robots"]`).Length())

	raw := doc.Find(`script[type="application/ld+json"]`).Text()
	var org seo.OrganizationSchema
	require.NoError(t, json.Unmarshal([]byte(raw), &org))
	assert.Equal(t, seo.DefaultDomain, org.URL)
	require.Len(t, org.ContactPoint, 1)
	assert.Equal(t, seo.DefaultEmail, org.ContactPoint[0].Email)
}

func TestRender_CarouselStartsAtFirstImage(t *testing.T) {
	doc := render(t, Page{View: resolve(t, pages.RouteHome, i18n.English)})

	c := doc.Find(`[data-carousel="home-dashboard"]`)
	require.Equal(t, 1, c.Length())
	assert.Equal(t, "/carousel/home-dashboard/stream", c.AttrOr("data-stream", ""))
	assert.Equal(t, "3000", c.AttrOr("data-interval", ""))
	assert.Equal(t, 3, c.Find(".carousel-slide").Length())
	assert.Equal(t, "0", c.Find(".carousel-slide.active").AttrOr("data-index", ""))
	assert.Equal(t, 1, c.Find(".carousel-slide.active").Length())
}

func TestRender_SolutionsTabs(t *testing.T) {
	doc := render(t, Page{View: resolve(t, pages.RouteSolutions, i18n.Portuguese)})
	assert.Equal(t, 3, doc.Find("[data-tab]").Length())
	assert.Equal(t, 3, doc.Find("[data-carousel]").Length())
	assert.Equal(t, "maintenance", doc.Find(".tab-panel.active").AttrOr("data-tab", ""))
}

func TestRender_ThanksIsNoIndex(t *testing.T) {
	doc := render(t, Page{View: resolve(t, pages.RouteThanks, i18n.Portuguese)})
	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	assert.Equal(t, "Obrigado!", strings.TrimSpace(doc.Find("main h1").Text()))
}

func TestRender_AccreditationForm(t *testing.T) {
	v := resolve(t, pages.RouteAccreditation, i18n.Portuguese)
	schema, err := leadform.SchemaFor(leadform.KindAccreditation)
	require.NoError(t, err)
	session := leadform.NewSession(schema, seo.NewBuilder(seo.Builder{}))

	form := NewFormView(session, v.T, "tok-1", leadform.ValidationErrors{leadform.FieldEmail: leadform.MsgEmail})
	doc := render(t, Page{View: v, Form: form})

	f := doc.Find(`form[data-leadform="accreditation"]`)
	require.Equal(t, 1, f.Length())
	assert.Equal(t, "/forms/accreditation", f.AttrOr("action", ""))
	assert.Equal(t, "tok-1", f.Find(`input[name="_token"]`).AttrOr("value", ""))
	assert.Equal(t, "postos", f.Find(`input[name="Tipo"]`).AttrOr("value", ""))
	assert.Equal(t, 1, f.Find(`select[name="Bandeira"]`).Length())
	assert.Zero(t, f.Find(`select[name="Segmento de atuação"]`).Length())
	assert.Equal(t, "SP", f.Find(`select[data-state-select] option[selected]`).AttrOr("value", ""))
	assert.Greater(t, f.Find(`select[data-city-select] option`).Length(), 1)
	assert.Equal(t, 1, f.Find(`input[type="checkbox"][name="termos"]`).Length())

	assert.Equal(t, 1, doc.Find(".field.invalid").Length())
	assert.Equal(t, 1, doc.Find(".notice-error").Length())
	assert.Equal(t, 2, doc.Find(".leadform .tab-button").Length())
	assert.Equal(t, "/parceiros/credenciar?tipo=postos", doc.Find(".leadform .tab-button.active").AttrOr("href", ""))
}

func TestRender_FormSuccess(t *testing.T) {
	v := resolve(t, pages.RouteClientSignup, i18n.English)
	schema, err := leadform.SchemaFor(leadform.KindClient)
	require.NoError(t, err)
	session := leadform.NewSession(schema, seo.NewBuilder(seo.Builder{}))

	form := NewFormView(session, v.T, "tok", nil).WithSuccess(v.T, schema.Completion)
	doc := render(t, Page{View: v, Form: form})

	notice := doc.Find(".notice-success")
	require.Equal(t, 1, notice.Length())
	assert.Equal(t, "/", notice.AttrOr("data-redirect", ""))
	assert.Equal(t, "6000", notice.AttrOr("data-delay", ""))
	assert.Zero(t, doc.Find("form[data-leadform]").Length())
}

func TestRender_ContactCard(t *testing.T) {
	v := resolve(t, pages.RouteContact, i18n.Portuguese)
	schema, err := leadform.SchemaFor(leadform.KindContact)
	require.NoError(t, err)
	session := leadform.NewSession(schema, seo.NewBuilder(seo.Builder{}))
	doc := render(t, Page{View: v, Form: NewFormView(session, v.T, "t", nil)})

	assert.Contains(t, doc.Find(".contact .card").Text(), pages.HQAddress)
	assert.Equal(t, 1, doc.Find(`a[href="mailto:`+pages.DefaultFinanceEmail+`"]`).Length())
	assert.Equal(t, 1, doc.Find(`form[data-leadform="contact"]`).Length())
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	err = r.Render(&bytes.Buffer{}, Page{View: &pages.View{Template: "nope"}})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"site.js", "site.css"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

func TestRefreshSeconds(t *testing.T) {
	assert.Equal(t, 6, RefreshSeconds(leadform.RedirectDelay))
	assert.Equal(t, 0, RefreshSeconds(0))
}
