// Package i18n holds the two-locale string table used by every rendered page.
//
// Lookups never fail: a key missing from the table is returned verbatim so that a
// forgotten translation shows up on screen instead of breaking the render.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the supported languages.
type Locale string

const (
	Portuguese Locale = "pt"
	English    Locale = "en"

	// Default is used whenever no locale was requested or the request is unsupported.
	Default = Portuguese
)

// Supported lists the locales in preference order.
var Supported = []Locale{Portuguese, English}

var matcher = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese,
	language.English,
})

// ParseLocale maps a user supplied language tag ("en", "pt-BR", "EN-us") onto a
// supported locale. Empty, malformed or unsupported tags yield Default.
func ParseLocale(raw string) Locale {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Default
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}
	return Supported[idx]
}

// MatchAcceptLanguage picks the supported locale that best fits an
// Accept-Language header.
func MatchAcceptLanguage(header string) Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[idx]
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return l == Portuguese || l == English
}

// HTMLLang is the value for the document lang attribute.
func (l Locale) HTMLLang() string {
	if l == English {
		return "en"
	}
	return "pt-BR"
}

// Other returns the locale offered by the language toggle.
func (l Locale) Other() Locale {
	if l == English {
		return Portuguese
	}
	return English
}

func (l Locale) String() string { return string(l) }

// Table maps (locale, key) to a display string. It is immutable after construction.
type Table struct {
	entries map[Locale]map[string]string
}

// NewTable builds a table from per-locale maps. The maps are copied.
func NewTable(entries map[Locale]map[string]string) *Table {
	t := &Table{entries: make(map[Locale]map[string]string, len(entries))}
	for loc, kv := range entries {
		m := make(map[string]string, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		t.entries[loc] = m
	}
	return t
}

// Lookup returns the string for key and whether it was found. Empty values count as
// missing.
func (t *Table) Lookup(locale Locale, key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[locale][key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Translate returns the string for key, or key itself when it is not in the table.
func (t *Table) Translate(locale Locale, key string) string {
	if v, ok := t.Lookup(locale, key); ok {
		return v
	}
	return key
}

// Keys returns the sorted keys defined for locale.
func (t *Table) Keys(locale Locale) []string {
	keys := make([]string, 0, len(t.entries[locale]))
	for k := range t.entries[locale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bind returns a Translator fixed to locale.
func (t *Table) Bind(locale Locale) Translator {
	if !locale.Valid() {
		locale = Default
	}
	return Translator{table: t, locale: locale}
}

// Translator is a Table bound to the locale of the current request.
type Translator struct {
	table  *Table
	locale Locale
}

// T translates key in the bound locale.
func (tr Translator) T(key string) string {
	return tr.table.Translate(tr.locale, key)
}

// Locale returns the bound locale.
func (tr Translator) Locale() Locale {
	return tr.locale
}

var defaultTable = NewTable(map[Locale]map[string]string{
	Portuguese: portuguese,
	English:    english,
})

// Site returns the table with every string used by the site.
func Site() *Table {
	return defaultTable
}

// Translate looks key up in the site table.
func Translate(locale Locale, key string) string {
	return defaultTable.Translate(locale, key)
}
