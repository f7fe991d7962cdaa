// Package pages maps site routes to their localized content: metadata, body
// sections, navigation and the lead form or carousels a page embeds.
package pages

import (
	"errors"
	"sort"
	"strings"

	"frotaweb/pkg/carousel"
	"frotaweb/pkg/leadform"
)

var ErrPageNotFound = errors.New("page not found")

// Site routes.
const (
	RouteHome           = "/"
	RouteSolutions      = "/solucoes"
	RouteAccreditation  = "/parceiros/credenciar"
	RouteSuppliers      = "/parceiros/fornecedores"
	RoutePartnerFinance = "/parceiros/financeiro"
	RouteClientSignup   = "/clientes/queroser"
	RouteClientAccess   = "/clientes/acesso"
	RouteClientFinance  = "/clientes/financeiro"
	RouteNetwork        = "/rede"
	RouteAbout          = "/sobre"
	RouteStory          = "/quem-somos"
	RouteContact        = "/contato"
	RouteThanks         = "/obrigado"
)

// External systems linked from the access pages.
const (
	SystemURL     = "https://app.frotainstasolutions.com.br/"
	FuelSystemURL = "https://front.instasolutionscomb.com.br/login"
)

// Templates used to render a page body.
const (
	TemplatePage   = "page"
	TemplateStatus = "status"
)

// Descriptor is the static definition of one route.
type Descriptor struct {
	Route          string
	TitleKey       string
	DescriptionKey string
	Template       string
	StructuredData bool
	NoIndex        bool
	Form           leadform.Kind
	Carousels      []string
	Banner         *Banner
	Sections       []Section
}

// Banner is the full-width heading strip shown above some pages.
type Banner struct {
	TitleKey    string
	SubtitleKey string
	Image       string
}

// Layouts a section may use.
const (
	LayoutHero      = "hero"
	LayoutSplit     = "split"
	LayoutText      = "text"
	LayoutCards     = "cards"
	LayoutTabs      = "tabs"
	LayoutAccess    = "access"
	LayoutLocations = "locations"
	LayoutContact   = "contact"
	LayoutForm      = "form"
)

// Section is an untranslated body block. Fields holding keys are resolved
// against the locale table; Src, Href, City and Value are literal.
type Section struct {
	ID             string
	Layout         string
	BadgeKey       string
	HeadingKey     string
	Paragraphs     []string
	Items          []string
	ClosingLeadKey string
	ClosingKey     string
	Image          *Image
	Reverse        bool
	Carousel       string
	Links          []Link
	Stats          []Stat
	Locations      []Location
	Children       []Section
}

// Image is a static picture.
type Image struct {
	Src    string
	AltKey string
}

// Link is a call to action. External links open the customer systems.
type Link struct {
	LabelKey string
	Href     string
	External bool
	Outline  bool
}

// Stat is a short figure shown below the home carousel.
type Stat struct {
	LabelKey string
	Value    string
	ValueKey string
}

// Location is an office on the network page.
type Location struct {
	LabelKey  string
	City      string
	DetailKey string
}

var descriptors = map[string]Descriptor{}

func register(d Descriptor) {
	if d.Template == "" {
		d.Template = TemplatePage
	}
	descriptors[d.Route] = d
}

// Lookup returns the descriptor of route after normalizing it.
func Lookup(route string) (Descriptor, bool) {
	d, ok := descriptors[NormalizeRoute(route)]
	return d, ok
}

// Routes lists every descriptor ordered by route.
func Routes() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

// NormalizeRoute drops the query string and any trailing slash and makes the
// path absolute. An empty route is the home page.
func NormalizeRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = strings.TrimSpace(route)
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
		if route == "" {
			route = "/"
		}
	}
	return route
}

// CarouselSets returns the image sets a descriptor embeds.
func (d Descriptor) CarouselSets() []carousel.Set {
	sets := make([]carousel.Set, 0, len(d.Carousels))
	for _, name := range d.Carousels {
		if s, err := carousel.Lookup(name); err == nil {
			sets = append(sets, s)
		}
	}
	return sets
}

// HasCarousel reports whether the page shows the named set.
func (d Descriptor) HasCarousel(name string) bool {
	for _, n := range d.Carousels {
		if n == name {
			return true
		}
	}
	return false
}
