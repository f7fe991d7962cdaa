// Package seo builds canonical URLs and the organization structured data record.
package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

const (
	DefaultDomain      = "https://frotainstasolutions.com.br"
	DefaultOrgName     = "InstaSolutions Produtos e Gestão Empresarial"
	DefaultEmail       = "comercial@instasolutions.com.br"
	DefaultPhone       = "+55-11-3336-6941"
	DefaultContactType = "customer service"
	DefaultLogoPath    = "/logo.png"
)

// Builder holds the site identity used for canonical links and JSON-LD.
type Builder struct {
	Domain      string
	OrgName     string
	Email       string
	Phone       string
	LogoPath    string
	ContactType string
}

// NewBuilder returns a Builder with every empty field set to its default. A trailing
// slash on the domain is dropped so that CanonicalURL never produces "//".
func NewBuilder(b Builder) *Builder {
	if b.Domain == "" {
		b.Domain = DefaultDomain
	}
	b.Domain = strings.TrimRight(b.Domain, "/")
	if b.OrgName == "" {
		b.OrgName = DefaultOrgName
	}
	if b.Email == "" {
		b.Email = DefaultEmail
	}
	if b.Phone == "" {
		b.Phone = DefaultPhone
	}
	if b.LogoPath == "" {
		b.LogoPath = DefaultLogoPath
	}
	if b.ContactType == "" {
		b.ContactType = DefaultContactType
	}
	return &b
}

// CanonicalURL returns the absolute URL for path. The root path maps to the bare
// domain, without a trailing slash.
func (b *Builder) CanonicalURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/" {
		return b.Domain
	}
	return b.Domain + path
}

// ContactPoint is a schema.org ContactPoint.
type ContactPoint struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone"`
	ContactType string `json:"contactType"`
	Email       string `json:"email"`
}

// OrganizationSchema is the schema.org Organization record embedded on the home page.
type OrganizationSchema struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	URL          string         `json:"url"`
	Logo         string         `json:"logo"`
	ContactPoint []ContactPoint `json:"contactPoint"`
}

// Organization builds the organization record. The result depends only on the
// builder fields.
func (b *Builder) Organization() OrganizationSchema {
	return OrganizationSchema{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    b.OrgName,
		URL:     b.Domain,
		Logo:    b.CanonicalURL(b.LogoPath),
		ContactPoint: []ContactPoint{{
			Type:        "ContactPoint",
			Telephone:   b.Phone,
			ContactType: b.ContactType,
			Email:       b.Email,
		}},
	}
}

// OrganizationJSONLD marshals the organization record for a
// <script type="application/ld+json"> element.
func (b *Builder) OrganizationJSONLD() (template.JS, error) {
	raw, err := json.Marshal(b.Organization())
	if err != nil {
		return "", fmt.Errorf("failed to marshal organization schema: %w", err)
	}
	return template.JS(raw), nil
}
