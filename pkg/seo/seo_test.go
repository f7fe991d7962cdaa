package seo

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalURL(t *testing.T) {
	b := NewBuilder(Builder{})
	tests := map[string]string{
		"/":                     "https://frotainstasolutions.com.br",
		"":                      "https://frotainstasolutions.com.br",
		"/solucoes":             "https://frotainstasolutions.com.br/solucoes",
		"contato":               "https://frotainstasolutions.com.br/contato",
		"/parceiros/credenciar": "https://frotainstasolutions.com.br/parceiros/credenciar",
	}
	for in, want := range tests {
		assert.Equal(t, want, b.CanonicalURL(in), "CanonicalURL(%q)", in)
	}
}

func TestCanonicalURL_TrailingSlashDomain(t *testing.T) {
	b := NewBuilder(Builder{Domain: "https://example.test/"})
	assert.Equal(t, "https://example.test", b.CanonicalURL("/"))
	assert.Equal(t, "https://example.test/rede", b.CanonicalURL("/rede"))
}

func TestOrganization(t *testing.T) {
	b := NewBuilder(Builder{})
	want := OrganizationSchema{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    "InstaSolutions Produtos e Gestão Empresarial",
		URL:     "https://frotainstasolutions.com.br",
		Logo:    "https://frotainstasolutions.com.br/logo.png",
		ContactPoint: []ContactPoint{{
			Type:        "ContactPoint",
			Telephone:   "+55-11-3336-6941",
			ContactType: "customer service",
			Email:       "comercial@instasolutions.com.br",
		}},
	}
	if diff := cmp.Diff(want, b.Organization()); diff != "" {
		t.Errorf("Organization() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, b.Organization(), b.Organization())
}

func TestOrganizationJSONLD(t *testing.T) {
	b := NewBuilder(Builder{OrgName: "Acme Frotas", Email: "ops@acme.test"})
	js, err := b.OrganizationJSONLD()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &decoded))
	assert.Equal(t, "https://schema.org", decoded["@context"])
	assert.Equal(t, "Organization", decoded["@type"])
	assert.Equal(t, "Acme Frotas", decoded["name"])

	points, ok := decoded["contactPoint"].([]any)
	require.True(t, ok)
	require.Len(t, points, 1)
	assert.Equal(t, "ops@acme.test", points[0].(map[string]any)["email"])
}
