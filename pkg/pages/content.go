package pages

import (
	"strconv"

	"frotaweb/pkg/carousel"
	"frotaweb/pkg/leadform"
)

// HQAddress is printed on the contact card.
const HQAddress = "Alameda Rio Negro, 1030, Edifício Stadium Corporate Alphaville, Escritório 2304 - Alphaville, Barueri/SP"

// numbered returns prefix.1 through prefix.n.
func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + "." + strconv.Itoa(i+1)
	}
	return out
}

var constructionBanner = &Banner{TitleKey: "construction.banner"}

func init() {
	register(Descriptor{
		Route:          RouteHome,
		TitleKey:       "meta.home.title",
		DescriptionKey: "meta.home.description",
		StructuredData: true,
		Carousels:      []string{carousel.HomeDashboard},
		Sections: []Section{
			{
				ID:         "hero",
				Layout:     LayoutHero,
				BadgeKey:   "home.badge",
				HeadingKey: "home.title",
				Paragraphs: []string{"home.subtitle"},
				Items:      numbered("home.highlight", 3),
				Carousel:   carousel.HomeDashboard,
				Links: []Link{
					{LabelKey: "button.seeSolutions", Href: RouteSolutions},
					{LabelKey: "button.requestDemo", Href: RouteContact, Outline: true},
				},
				Stats: []Stat{
					{LabelKey: "home.stat.workshops", Value: "500+"},
					{LabelKey: "home.stat.coverage", ValueKey: "home.stat.coverage.value"},
					{LabelKey: "home.stat.integrations", Value: "> 30 APIs"},
				},
			},
			{
				ID:     "modules",
				Layout: LayoutCards,
				Links: []Link{
					{LabelKey: "button.credential", Href: RouteAccreditation},
					{LabelKey: "button.knowSolutions", Href: RouteSolutions},
				},
				Children: []Section{
					{ID: "maintenance", HeadingKey: "module.maintenance", Items: numbered("module.maintenance", 3)},
					{ID: "fuel", HeadingKey: "module.fuel", Items: numbered("module.fuel", 3)},
					{ID: "tracking", HeadingKey: "module.tracking", Items: numbered("module.tracking", 3)},
				},
			},
			{
				ID:         "value",
				Layout:     LayoutSplit,
				HeadingKey: "home.value.title",
				Paragraphs: numbered("home.value", 2),
				Image:      &Image{Src: "/imagens/home_custo-beneficio.png", AltKey: "home.value.alt"},
			},
			{
				ID:         "workshops",
				Layout:     LayoutSplit,
				HeadingKey: "home.workshops.title",
				Paragraphs: numbered("home.workshops", 3),
				Image:      &Image{Src: "/imagens/home_Oficinas parceiras.png", AltKey: "home.workshops.alt"},
				Reverse:    true,
			},
			{
				ID:         "mobile",
				Layout:     LayoutSplit,
				HeadingKey: "home.mobile.title",
				Paragraphs: numbered("home.mobile", 2),
				Image:      &Image{Src: "/imagens/home_Mobile e alertas.png", AltKey: "home.mobile.alt"},
			},
			{
				ID:         "who",
				Layout:     LayoutText,
				HeadingKey: "home.who.title",
				Paragraphs: numbered("home.who", 3),
			},
		},
	})

	register(Descriptor{
		Route:          RouteSolutions,
		TitleKey:       "meta.solutions.title",
		DescriptionKey: "meta.solutions.description",
		Carousels:      []string{carousel.SolutionsMaintenance, carousel.SolutionsFuel, carousel.SolutionsTracking},
		Sections: []Section{{
			ID:         "solutions",
			Layout:     LayoutTabs,
			HeadingKey: "solutions.heading",
			Children: []Section{
				{
					ID:         "maintenance",
					HeadingKey: "solutions.maintenance.title",
					Items:      numbered("solutions.maintenance", 13),
					Carousel:   carousel.SolutionsMaintenance,
				},
				{
					ID:         "fuel",
					HeadingKey: "solutions.fuel.title",
					Items:      numbered("solutions.fuel", 14),
					Carousel:   carousel.SolutionsFuel,
				},
				{
					ID:         "tracking",
					HeadingKey: "solutions.tracking.title",
					Items:      numbered("solutions.tracking", 11),
					Carousel:   carousel.SolutionsTracking,
				},
			},
		}},
	})

	register(Descriptor{
		Route:          RouteAccreditation,
		TitleKey:       "meta.accreditation.title",
		DescriptionKey: "meta.accreditation.description",
		Form:           leadform.KindAccreditation,
		Banner: &Banner{
			TitleKey:    "partners.banner.title",
			SubtitleKey: "partners.banner.subtitle",
			Image:       "/imagens/rede-01.png",
		},
		Sections: []Section{{ID: "form", Layout: LayoutForm}},
	})

	register(Descriptor{
		Route:          RouteSuppliers,
		TitleKey:       "meta.suppliers.title",
		DescriptionKey: "meta.suppliers.description",
		Banner:         &Banner{TitleKey: "access.suppliers.banner"},
		Sections: []Section{{
			ID:         "access",
			Layout:     LayoutAccess,
			Paragraphs: []string{"access.intro"},
			Links: []Link{
				{LabelKey: "access.general", Href: SystemURL, External: true},
				{LabelKey: "access.fuel", Href: FuelSystemURL, External: true},
			},
			Image: &Image{Src: "/imagens/acesso_fornecedores.png", AltKey: "access.suppliers.alt"},
		}},
	})

	register(Descriptor{
		Route:          RoutePartnerFinance,
		TitleKey:       "meta.partnerFinance.title",
		DescriptionKey: "meta.partnerFinance.description",
		Banner:         constructionBanner,
	})

	register(Descriptor{
		Route:          RouteClientSignup,
		TitleKey:       "meta.clientSignup.title",
		DescriptionKey: "meta.clientSignup.description",
		Form:           leadform.KindClient,
		Sections: []Section{
			{
				ID:         "pitch",
				Layout:     LayoutSplit,
				HeadingKey: "clients.heading",
				Paragraphs: numbered("clients", 3),
				ClosingKey: "clients.closing",
				Image:      &Image{Src: "/imagens/contato_foto.png", AltKey: "clients.alt"},
			},
			{ID: "form", Layout: LayoutForm},
		},
	})

	register(Descriptor{
		Route:          RouteClientAccess,
		TitleKey:       "meta.clientAccess.title",
		DescriptionKey: "meta.clientAccess.description",
		Banner:         &Banner{TitleKey: "access.clients.banner"},
		Sections: []Section{{
			ID:         "access",
			Layout:     LayoutAccess,
			Paragraphs: []string{"access.intro"},
			Links: []Link{
				{LabelKey: "access.maintTracking", Href: SystemURL, External: true},
				{LabelKey: "access.fuel", Href: FuelSystemURL, External: true},
			},
			Image: &Image{Src: "/imagens/acesso_clientes.png", AltKey: "access.clients.alt"},
		}},
	})

	register(Descriptor{
		Route:          RouteClientFinance,
		TitleKey:       "meta.clientFinance.title",
		DescriptionKey: "meta.clientFinance.description",
		Banner:         constructionBanner,
	})

	register(Descriptor{
		Route:          RouteNetwork,
		TitleKey:       "meta.network.title",
		DescriptionKey: "meta.network.description",
		Sections: []Section{
			{
				ID:         "network",
				Layout:     LayoutSplit,
				HeadingKey: "network.heading",
				Paragraphs: numbered("network", 3),
				ClosingKey: "network.closing",
				Image:      &Image{Src: "/imagens/rede-01.png", AltKey: "network.alt"},
			},
			{
				ID:         "where",
				Layout:     LayoutLocations,
				HeadingKey: "network.where",
				Locations: []Location{
					{LabelKey: "network.hq.label", City: "Barueri/SP", DetailKey: "network.hq.detail"},
					{LabelKey: "network.branches.label", City: "Port. St. Lucie - Florida - US", DetailKey: "network.branches.detail"},
				},
			},
			{
				ID:         "highlight",
				Layout:     LayoutLocations,
				HeadingKey: "network.highlight",
				Locations: []Location{
					{LabelKey: "network.branch.label", City: "Campo Grande/MS", DetailKey: "network.branch.detail"},
				},
				Image: &Image{Src: "/imagens/rede-02.png", AltKey: "network.coverage.alt"},
			},
		},
	})

	register(Descriptor{
		Route:          RouteAbout,
		TitleKey:       "meta.about.title",
		DescriptionKey: "meta.about.description",
		Carousels:      []string{carousel.AboutOperation},
		Sections: []Section{{
			ID:             "about",
			Layout:         LayoutSplit,
			BadgeKey:       "about.badge",
			HeadingKey:     "about.heading",
			Paragraphs:     numbered("about", 5),
			ClosingLeadKey: "about.closing.lead",
			ClosingKey:     "about.closing",
			Carousel:       carousel.AboutOperation,
		}},
	})

	register(Descriptor{
		Route:          RouteStory,
		TitleKey:       "meta.story.title",
		DescriptionKey: "meta.story.description",
		Sections: []Section{{
			ID:         "story",
			Layout:     LayoutText,
			HeadingKey: "story.heading",
			Paragraphs: numbered("story", 7),
			ClosingKey: "story.closing",
		}},
	})

	register(Descriptor{
		Route:          RouteContact,
		TitleKey:       "meta.contact.title",
		DescriptionKey: "meta.contact.description",
		Form:           leadform.KindContact,
		Sections: []Section{{
			ID:         "contact",
			Layout:     LayoutContact,
			HeadingKey: "contact.heading",
			Paragraphs: []string{"contact.subtitle"},
			Image:      &Image{Src: "/imagens/contato_foto.png", AltKey: "contact.alt"},
		}},
	})

	register(Descriptor{
		Route:          RouteThanks,
		TitleKey:       "meta.thanks.title",
		DescriptionKey: "meta.thanks.description",
		Template:       TemplateStatus,
		NoIndex:        true,
		Sections: []Section{{
			ID:         "thanks",
			Layout:     LayoutText,
			HeadingKey: "thanks.heading",
			Paragraphs: []string{"thanks.message"},
			Links:      []Link{{LabelKey: "button.backHome", Href: RouteHome}},
		}},
	})
}

var notFound = Descriptor{
	TitleKey:       "meta.notFound.title",
	DescriptionKey: "meta.notFound.description",
	Template:       TemplateStatus,
	NoIndex:        true,
	Sections: []Section{{
		ID:         "not-found",
		Layout:     LayoutText,
		HeadingKey: "notFound.heading",
		Paragraphs: []string{"notFound.message"},
		Links:      []Link{{LabelKey: "button.backHome", Href: RouteHome}},
	}},
}

var failure = Descriptor{
	TitleKey:       "error.heading",
	DescriptionKey: "error.message",
	Template:       TemplateStatus,
	NoIndex:        true,
	Sections: []Section{{
		ID:         "error",
		Layout:     LayoutText,
		HeadingKey: "error.heading",
		Paragraphs: []string{"error.message"},
		Links:      []Link{{LabelKey: "button.backHome", Href: RouteHome}},
	}},
}
