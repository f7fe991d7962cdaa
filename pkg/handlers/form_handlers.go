package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/leadform"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/middleware"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/web"
)

// SubmitForm relays one lead form submission.
//
// The posted values drive a fresh session. Invalid values re-render the form
// with 422; a relay failure re-renders it with the values kept and a dismissible
// notice (502); a token already in flight is refused with 409. On success the
// contact form redirects to its thank-you page and the other forms show the
// confirmation that navigates home after the redirect delay.
func (h *HandlerService) SubmitForm(c *gin.Context) {
	kind, err := leadform.ParseKind(c.Param("kind"))
	if err != nil {
		h.NotFound(c)
		return
	}
	session, err := h.newSession(kind)
	if err != nil {
		h.NotFound(c)
		return
	}
	schema := session.Schema()
	locale := middleware.LocaleFrom(c)

	ctx := logger.WithFormKind(c.Request.Context(), string(kind))
	log := logger.FromContext(ctx)

	view, err := h.resolver.Resolve(schema.Route, locale)
	if err != nil {
		_ = c.Error(err)
		h.RenderFailure(c, http.StatusInternalServerError)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		log.Warn("Unreadable form body", zap.Error(err))
		h.renderForm(c, http.StatusBadRequest, view, web.NewFormView(session, view.T, leadform.NewToken(), nil).
			WithNotice("error", view.T("form.error.send")))
		return
	}
	values := c.Request.PostForm
	token := values.Get(leadform.HiddenToken)

	if err := session.Fill(values); err != nil {
		// only an unknown Tipo gets here; the fields are filled under the default type
		log.Debug("Ignoring invalid form input", zap.Error(err))
	}
	session.Observe(func(from, to leadform.State) {
		log.Debug("Form state changed", zap.Stringer("from", from), zap.Stringer("to", to))
	})

	if err := h.guard.Acquire(token); err != nil {
		h.rejectSubmission(c, view, session, token, err)
		return
	}

	start := time.Now()
	completion, err := session.Submit(ctx, h.sender)
	h.guard.Release(token, err == nil)

	var invalid leadform.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		log.Info("Form validation failed", zap.Int("invalid_fields", len(invalid)))
		h.renderForm(c, http.StatusUnprocessableEntity, view, web.NewFormView(session, view.T, token, invalid))

	case err != nil:
		log.Error("Form relay failed",
			zap.Error(err),
			zap.Int("attempts", session.Attempts()),
			zap.Duration("duration", time.Since(start)))
		h.renderForm(c, http.StatusBadGateway, view, web.NewFormView(session, view.T, token, nil).
			WithNotice("error", view.T("form.error.send")))

	default:
		log.Info("Form relayed",
			zap.String("state", session.State().String()),
			zap.Duration("duration", time.Since(start)))
		h.completeSubmission(c, view, session, token, completion)
	}
}

func (h *HandlerService) completeSubmission(c *gin.Context, view *pages.View, session *leadform.Session, token string, completion leadform.Completion) {
	if completion.Delay <= 0 {
		c.Redirect(http.StatusSeeOther, completion.Redirect)
		return
	}
	view.Refresh = &pages.Refresh{URL: completion.Redirect, Seconds: web.RefreshSeconds(completion.Delay)}
	form := web.NewFormView(session, view.T, token, nil).WithSuccess(view.T, completion)
	h.renderForm(c, http.StatusOK, view, form)
}

// rejectSubmission answers a token the guard refused without calling the relay.
func (h *HandlerService) rejectSubmission(c *gin.Context, view *pages.View, session *leadform.Session, token string, err error) {
	log := logger.FromContext(c.Request.Context())
	schema := session.Schema()

	switch {
	case errors.Is(err, leadform.ErrAlreadySubmitted):
		log.Info("Duplicate submission of a relayed form", zap.String("form_kind", string(schema.Kind)))
		delay := schema.Completion.Delay
		if delay <= 0 {
			delay = leadform.RedirectDelay
		}
		notice := h.resolver.Notice(schema.Route, view.Locale, "meta.formSent.title", "form.success.title",
			view.T(schema.Completion.MessageKey),
			&pages.Refresh{URL: schema.Completion.Redirect, Seconds: web.RefreshSeconds(delay)})
		h.render(c, http.StatusConflict, web.Page{View: notice})

	case errors.Is(err, leadform.ErrAlreadySubmitting):
		log.Warn("Submission already in flight", zap.String("form_kind", string(schema.Kind)))
		h.renderForm(c, http.StatusConflict, view, web.NewFormView(session, view.T, token, nil).
			WithNotice("error", view.T("form.error.duplicate")))

	default:
		log.Warn("Submission refused", zap.String("form_kind", string(schema.Kind)), zap.Error(err))
		h.renderForm(c, http.StatusBadRequest, view, web.NewFormView(session, view.T, leadform.NewToken(), nil).
			WithNotice("error", view.T("form.error.send")))
	}
}

func (h *HandlerService) renderForm(c *gin.Context, status int, view *pages.View, form *web.FormView) {
	h.render(c, status, web.Page{View: view, Form: form})
}
