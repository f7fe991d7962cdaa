package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/i18n"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/middleware"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/web"
)

const contentTypeHTML = "text/html; charset=utf-8"

// ServePage renders the page registered under the matched route. Form pages get
// a fresh session and submission token; ?tipo= preselects the accreditation type.
func (h *HandlerService) ServePage(c *gin.Context) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	locale := middleware.LocaleFrom(c)

	view, err := h.resolver.Resolve(route, locale)
	if errors.Is(err, pages.ErrPageNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		h.RenderFailure(c, http.StatusInternalServerError)
		return
	}

	page := web.Page{View: view}
	if view.Form != "" {
		session, err := h.newSession(view.Form)
		if err != nil {
			_ = c.Error(err)
			h.RenderFailure(c, http.StatusInternalServerError)
			return
		}
		if raw := c.Query("tipo"); raw != "" && session.Schema().Typed {
			// unknown types keep the default
			if t, err := leadform.ParseType(raw); err == nil {
				_ = session.SetType(t)
			}
		}
		page.Form = web.NewFormView(session, view.T, leadform.NewToken(), nil)
	}

	h.render(c, http.StatusOK, page)
}

// NotFound renders the 404 page, or a JSON error for API clients.
func (h *HandlerService) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		HandleError(c, NewNotFoundError("Resource not found", ErrResourceNotFound))
		return
	}
	view := h.resolver.NotFound(c.Request.URL.Path, middleware.LocaleFrom(c))
	h.render(c, http.StatusNotFound, web.Page{View: view})
}

// RenderFailure renders the error page for status. It is the failure renderer
// of the recovery, error and rate limit middleware.
func (h *HandlerService) RenderFailure(c *gin.Context, status int) {
	locale := middleware.LocaleFrom(c)

	switch {
	case status == http.StatusNotFound:
		h.render(c, status, web.Page{View: h.resolver.NotFound(c.Request.URL.Path, locale)})
		return
	case status == http.StatusTooManyRequests && c.Request.Method == http.MethodPost:
		if kind, err := leadform.ParseKind(c.Param("kind")); err == nil {
			h.renderRateLimited(c, kind, locale)
			return
		}
	}

	h.render(c, status, web.Page{View: h.resolver.Failure(c.Request.URL.Path, locale)})
}

// renderRateLimited shows the form again, with the posted values, and a notice
// asking the visitor to wait.
func (h *HandlerService) renderRateLimited(c *gin.Context, kind leadform.Kind, locale i18n.Locale) {
	session, err := h.newSession(kind)
	if err != nil {
		h.render(c, http.StatusTooManyRequests, web.Page{View: h.resolver.Failure(c.Request.URL.Path, locale)})
		return
	}
	view, err := h.resolver.Resolve(session.Schema().Route, locale)
	if err != nil {
		h.render(c, http.StatusTooManyRequests, web.Page{View: h.resolver.Failure(c.Request.URL.Path, locale)})
		return
	}
	if err := c.Request.ParseForm(); err == nil {
		_ = session.Fill(c.Request.PostForm)
	}
	form := web.NewFormView(session, view.T, c.Request.PostFormValue(leadform.HiddenToken), nil).
		WithNotice("error", view.T("form.error.rateLimited"))
	h.render(c, http.StatusTooManyRequests, web.Page{View: view, Form: form})
}

// Sitemap serves sitemap.xml
func (h *HandlerService) Sitemap(c *gin.Context) {
	body, err := h.resolver.Sitemap()
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots serves robots.txt
func (h *HandlerService) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.resolver.Robots())
}

func (h *HandlerService) newSession(kind leadform.Kind) (*leadform.Session, error) {
	schema, err := leadform.SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	return leadform.NewSession(schema, h.resolver.SEO()), nil
}

// render buffers the page so that a template error can still turn into a 500.
func (h *HandlerService) render(c *gin.Context, status int, page web.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		logger.FromContext(c.Request.Context()).Error("Failed to render page",
			zap.String("route", page.Route),
			zap.String("template", page.Template),
			zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, contentTypeHTML, buf.Bytes())
}
