package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frotaweb/pkg/i18n"
)

const (
	// ContextKeyLocale is the gin context key holding the active i18n.Locale.
	ContextKeyLocale = "Locale"

	// CookieLocale remembers an explicit language choice for the browser session.
	CookieLocale = "lang"
)

// Locale resolves the visitor language from ?lang=, then the lang cookie, then
// Accept-Language. An explicit ?lang= is remembered in a session cookie so the
// choice follows page navigation and is gone once the browser closes.
func Locale(fallback i18n.Locale) gin.HandlerFunc {
	if !fallback.Valid() {
		fallback = i18n.Default
	}
	return func(c *gin.Context) {
		locale := fallback

		if raw := c.Query("lang"); raw != "" {
			locale = i18n.ParseLocale(raw)
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieLocale, locale.String(), 0, "/", "", false, false)
		} else if raw, err := c.Cookie(CookieLocale); err == nil && raw != "" {
			locale = i18n.ParseLocale(raw)
		} else if raw := c.GetHeader("Accept-Language"); raw != "" {
			locale = i18n.MatchAcceptLanguage(raw)
		}

		c.Set(ContextKeyLocale, string(locale))
		c.Next()
	}
}

// LocaleFrom returns the locale chosen by the Locale middleware.
func LocaleFrom(c *gin.Context) i18n.Locale {
	if raw := c.GetString(ContextKeyLocale); raw != "" {
		return i18n.Locale(raw)
	}
	return i18n.Default
}
