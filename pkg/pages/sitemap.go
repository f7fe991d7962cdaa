package pages

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders sitemap.xml with the canonical URL of every indexable page.
func (r *Resolver) Sitemap() ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, d := range Routes() {
		if d.NoIndex {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: r.seo.CanonicalURL(d.Route)})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func (r *Resolver) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, d := range Routes() {
		if d.NoIndex {
			fmt.Fprintf(&b, "Disallow: %s\n", d.Route)
		}
	}
	b.WriteString("Allow: /\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", r.seo.CanonicalURL("/sitemap.xml"))
	return b.String()
}
