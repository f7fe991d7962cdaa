package pages

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"frotaweb/pkg/carousel"
	"frotaweb/pkg/i18n"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/seo"
)

// DefaultFinanceEmail is the billing mailbox shown on the contact card.
const DefaultFinanceEmail = "financeiro@instasolutions.com.br"

// View is a fully localized page ready for rendering.
type View struct {
	Route          string
	Template       string
	Locale         i18n.Locale
	Lang           string
	Title          string
	Description    string
	Keywords       string
	Canonical      string
	NoIndex        bool
	StructuredData template.JS
	Refresh        *Refresh
	Banner         *BannerView
	Blocks         []Block
	Nav            []NavItem
	Footer         []NavGroup
	Form           leadform.Kind
	Carousels      []carousel.Set
	SwitchLabel    string
	SwitchHref     string
	OrgName        string
	Email          string
	FinanceEmail   string
	Phone          string
	Address        string
	Year           int

	tr func(string) string
}

// T translates key in the view locale. Templates call it for labels not
// carried by a block.
func (v *View) T(key string) string {
	if v.tr == nil {
		return key
	}
	return v.tr(key)
}

// Refresh makes the browser navigate after Seconds.
type Refresh struct {
	URL     string
	Seconds int
}

// BannerView is a localized Banner.
type BannerView struct {
	Title    string
	Subtitle string
	Image    string
}

// Block is a localized Section.
type Block struct {
	ID          string
	Layout      string
	Badge       string
	Heading     string
	Paragraphs  []string
	Items       []string
	ClosingLead string
	Closing     string
	Image       *ImageView
	Reverse     bool
	Carousel    *CarouselView
	Links       []LinkView
	Stats       []StatView
	Locations   []LocationView
	Children    []Block
}

type ImageView struct {
	Src string
	Alt string
}

// CarouselView carries everything the rotation script needs.
type CarouselView struct {
	Name           string
	Alt            string
	Images         []string
	IntervalMillis int64
	Fit            carousel.Fit
	StreamURL      string
}

type LinkView struct {
	Label    string
	Href     string
	External bool
	Outline  bool
}

type StatView struct {
	Label string
	Value string
}

type LocationView struct {
	Label  string
	City   string
	Detail string
}

// NavItem is a header entry; entries with children render as dropdowns.
type NavItem struct {
	Label    string
	Href     string
	Active   bool
	Children []NavItem
}

// NavGroup is a footer column.
type NavGroup struct {
	Title string
	Links []NavItem
}

// Options configures a Resolver.
type Options struct {
	SEO          *seo.Builder
	Table        *i18n.Table
	FinanceEmail string
	Address      string
	Now          func() time.Time
}

// Resolver turns descriptors into views. It holds no mutable state.
type Resolver struct {
	seo          *seo.Builder
	table        *i18n.Table
	financeEmail string
	address      string
	now          func() time.Time
}

// NewResolver returns a Resolver with every empty option set to its default.
func NewResolver(opts Options) *Resolver {
	if opts.SEO == nil {
		opts.SEO = seo.NewBuilder(seo.Builder{})
	}
	if opts.Table == nil {
		opts.Table = i18n.Site()
	}
	if opts.FinanceEmail == "" {
		opts.FinanceEmail = DefaultFinanceEmail
	}
	if opts.Address == "" {
		opts.Address = HQAddress
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Resolver{
		seo:          opts.SEO,
		table:        opts.Table,
		financeEmail: opts.FinanceEmail,
		address:      opts.Address,
		now:          opts.Now,
	}
}

// SEO exposes the canonical URL builder.
func (r *Resolver) SEO() *seo.Builder {
	return r.seo
}

// Translate looks key up and substitutes the organization name.
func (r *Resolver) Translate(locale i18n.Locale, key string) string {
	return strings.ReplaceAll(r.table.Translate(locale, key), "{org}", r.seo.OrgName)
}

// Resolve builds the view of route in locale.
func (r *Resolver) Resolve(route string, locale i18n.Locale) (*View, error) {
	route = NormalizeRoute(route)
	d, ok := descriptors[route]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, route)
	}
	return r.build(d, route, locale)
}

// NotFound builds the 404 view shown for an unknown route.
func (r *Resolver) NotFound(route string, locale i18n.Locale) *View {
	v, _ := r.build(notFound, NormalizeRoute(route), locale)
	v.Canonical = ""
	return v
}

// Failure builds the generic error view.
func (r *Resolver) Failure(route string, locale i18n.Locale) *View {
	v, _ := r.build(failure, NormalizeRoute(route), locale)
	v.Canonical = ""
	return v
}

// Notice builds a status view with a single message, used to confirm form
// submissions made without scripts.
func (r *Resolver) Notice(route string, locale i18n.Locale, titleKey, headingKey, message string, refresh *Refresh) *View {
	d := Descriptor{
		TitleKey:       titleKey,
		DescriptionKey: headingKey,
		Template:       TemplateStatus,
		NoIndex:        true,
	}
	v, _ := r.build(d, NormalizeRoute(route), locale)
	v.Canonical = ""
	v.Refresh = refresh
	v.Blocks = []Block{{
		ID:         "notice",
		Layout:     LayoutText,
		Heading:    r.Translate(locale, headingKey),
		Paragraphs: []string{message},
		Links:      []LinkView{{Label: r.Translate(locale, "button.backHome"), Href: RouteHome}},
	}}
	return v
}

func (r *Resolver) build(d Descriptor, route string, locale i18n.Locale) (*View, error) {
	if !locale.Valid() {
		locale = i18n.Default
	}
	t := func(key string) string { return r.Translate(locale, key) }

	v := &View{
		Route:        route,
		Template:     d.Template,
		Locale:       locale,
		Lang:         locale.HTMLLang(),
		Title:        t(d.TitleKey),
		Description:  t(d.DescriptionKey),
		Keywords:     t("meta.keywords"),
		Canonical:    r.seo.CanonicalURL(route),
		NoIndex:      d.NoIndex,
		Form:         d.Form,
		Carousels:    d.CarouselSets(),
		Nav:          r.nav(route, t),
		Footer:       r.footer(t),
		SwitchLabel:  t("nav.switchLanguage"),
		SwitchHref:   route + "?lang=" + locale.Other().String(),
		OrgName:      r.seo.OrgName,
		Email:        r.seo.Email,
		FinanceEmail: r.financeEmail,
		Phone:        r.seo.Phone,
		Address:      r.address,
		Year:         r.now().Year(),
		tr:           t,
	}
	if v.Template == "" {
		v.Template = TemplatePage
	}

	if d.StructuredData {
		js, err := r.seo.OrganizationJSONLD()
		if err != nil {
			return nil, err
		}
		v.StructuredData = js
	}

	if d.Banner != nil {
		v.Banner = &BannerView{
			Title:    t(d.Banner.TitleKey),
			Subtitle: optional(t, d.Banner.SubtitleKey),
			Image:    d.Banner.Image,
		}
	}

	v.Blocks = make([]Block, 0, len(d.Sections))
	for _, s := range d.Sections {
		v.Blocks = append(v.Blocks, r.block(s, t))
	}
	return v, nil
}

func optional(t func(string) string, key string) string {
	if key == "" {
		return ""
	}
	return t(key)
}

func translateAll(t func(string) string, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = t(k)
	}
	return out
}

func (r *Resolver) block(s Section, t func(string) string) Block {
	b := Block{
		ID:          s.ID,
		Layout:      s.Layout,
		Badge:       optional(t, s.BadgeKey),
		Heading:     optional(t, s.HeadingKey),
		Paragraphs:  translateAll(t, s.Paragraphs),
		Items:       translateAll(t, s.Items),
		ClosingLead: optional(t, s.ClosingLeadKey),
		Closing:     optional(t, s.ClosingKey),
		Reverse:     s.Reverse,
	}
	if s.Image != nil {
		b.Image = &ImageView{Src: s.Image.Src, Alt: t(s.Image.AltKey)}
	}
	if s.Carousel != "" {
		if set, err := carousel.Lookup(s.Carousel); err == nil {
			b.Carousel = &CarouselView{
				Name:           set.Name,
				Alt:            t(set.AltKey),
				Images:         set.Images,
				IntervalMillis: set.IntervalMillis(),
				Fit:            set.Fit,
				StreamURL:      "/carousel/" + set.Name + "/stream",
			}
		}
	}
	for _, l := range s.Links {
		b.Links = append(b.Links, LinkView{Label: t(l.LabelKey), Href: l.Href, External: l.External, Outline: l.Outline})
	}
	for _, st := range s.Stats {
		value := st.Value
		if st.ValueKey != "" {
			value = t(st.ValueKey)
		}
		b.Stats = append(b.Stats, StatView{Label: t(st.LabelKey), Value: value})
	}
	for _, loc := range s.Locations {
		b.Locations = append(b.Locations, LocationView{Label: t(loc.LabelKey), City: loc.City, Detail: optional(t, loc.DetailKey)})
	}
	for _, c := range s.Children {
		b.Children = append(b.Children, r.block(c, t))
	}
	return b
}

func (r *Resolver) nav(route string, t func(string) string) []NavItem {
	item := func(key, href string) NavItem {
		return NavItem{Label: t(key), Href: href, Active: href == route}
	}
	group := func(key string, children ...NavItem) NavItem {
		g := NavItem{Label: t(key), Children: children}
		for _, c := range children {
			g.Active = g.Active || c.Active
		}
		return g
	}
	return []NavItem{
		item("nav.home", RouteHome),
		item("nav.solutions", RouteSolutions),
		group("nav.partners",
			item("nav.partners.accredit", RouteAccreditation),
			item("nav.partners.access", RouteSuppliers),
			item("nav.partners.finance", RoutePartnerFinance),
		),
		group("nav.clients",
			item("nav.clients.signup", RouteClientSignup),
			item("nav.clients.access", RouteClientAccess),
			item("nav.clients.finance", RouteClientFinance),
		),
		item("nav.network", RouteNetwork),
		item("nav.about", RouteAbout),
		item("nav.contact", RouteContact),
	}
}

func (r *Resolver) footer(t func(string) string) []NavGroup {
	link := func(key, href string) NavItem { return NavItem{Label: t(key), Href: href} }
	return []NavGroup{
		{Title: t("footer.institutional"), Links: []NavItem{
			link("footer.about", RouteAbout),
			link("footer.story", RouteStory),
			link("footer.network", RouteNetwork),
		}},
		{Title: t("footer.solutions"), Links: []NavItem{
			link("footer.overview", RouteSolutions),
		}},
		{Title: t("footer.partners"), Links: []NavItem{
			link("footer.accredit", RouteAccreditation),
			link("footer.access", RouteSuppliers),
		}},
		{Title: t("footer.contact"), Links: []NavItem{
			link("footer.contact", RouteContact),
		}},
	}
}
