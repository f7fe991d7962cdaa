package i18n

var english = map[string]string{
	// head
	"meta.keywords":                "fleet management, maintenance, fueling, tracking, fleet, accredited workshops",
	"meta.home.title":              "{org} | Fleet Management System",
	"meta.home.description":        "Fleet management systems with integrated maintenance, fueling and tracking. 500+ accredited workshops and nationwide coverage in Brazil.",
	"meta.solutions.title":         "Solutions | InstaSolutions — Maintenance, Fueling and Tracking",
	"meta.solutions.description":   "Integrated modules with dashboards and SLAs.",
	"meta.accreditation.title":     "Partners | Accreditation",
	"meta.accreditation.description": "Accredit your workshop, store or fuel station in the InstaSolutions partner network.",
	"meta.suppliers.title":         "Partners | System access",
	"meta.suppliers.description":   "InstaSolutions system access for accredited suppliers.",
	"meta.partnerFinance.title":    "Partners | Financial Portal",
	"meta.partnerFinance.description": "Financial portal for InstaSolutions partners.",
	"meta.clientSignup.title":      "I'm a client | Become a client",
	"meta.clientSignup.description": "Request a proposal and simplify your fleet management with InstaSolutions.",
	"meta.clientAccess.title":      "I'm a client | System access",
	"meta.clientAccess.description": "InstaSolutions system access for clients.",
	"meta.clientFinance.title":     "I'm a client | Financial Portal",
	"meta.clientFinance.description": "Financial portal for InstaSolutions clients.",
	"meta.network.title":           "Network | InstaSolutions — Nationwide coverage",
	"meta.network.description":     "National network with 500+ accredited workshops and partner fuel stations.",
	"meta.about.title":             "About | InstaSolutions — Products and Business Management",
	"meta.about.description":       "Full integration of maintenance, fueling and tracking.",
	"meta.story.title":             "Who we are | InstaSolutions — Our Story",
	"meta.story.description":       "Discover the InstaSolutions journey since 2022 and our mission to transform fleet management in Brazil.",
	"meta.contact.title":           "Contact | InstaSolutions — Talk to our team",
	"meta.contact.description":     "Request a demo or send us a message. We will get back to you shortly.",
	"meta.thanks.title":            "Thank you | InstaSolutions",
	"meta.thanks.description":      "We received your message and will get back to you shortly.",
	"meta.notFound.title":          "Page not found | InstaSolutions",
	"meta.notFound.description":    "The requested address does not exist.",
	"meta.formSent.title":          "Form sent | InstaSolutions",

	// navigation
	"nav.home":             "Home",
	"nav.solutions":        "Solutions",
	"nav.partners":         "Partners",
	"nav.partners.accredit": "Become a partner",
	"nav.partners.access":  "System access - Suppliers",
	"nav.partners.finance": "Financial Portal",
	"nav.clients":          "I'm a client",
	"nav.clients.signup":   "Become a client",
	"nav.clients.access":   "System access - Clients",
	"nav.clients.finance":  "Financial Portal",
	"nav.network":          "Network",
	"nav.about":            "About",
	"nav.contact":          "Contact",
	"nav.talkToTeam":       "Talk to the team",
	"nav.switchLanguage":   "Mudar para Português",

	// buttons
	"button.seeSolutions":  "See solutions",
	"button.requestDemo":   "Request demo",
	"button.credential":    "I want to be accredited",
	"button.knowSolutions": "Know our solutions",
	"button.submit":        "Send",
	"button.sending":       "Sending...",
	"button.access":        "Access",
	"button.backHome":      "Back to home page",
	"button.dismiss":       "Close",

	// footer
	"footer.rights":        "All rights reserved.",
	"footer.institutional": "Company",
	"footer.about":         "About",
	"footer.story":         "Who we are",
	"footer.network":       "Network",
	"footer.solutions":     "Solutions",
	"footer.overview":      "Overview",
	"footer.partners":      "Partners",
	"footer.accredit":      "Become a partner",
	"footer.access":        "System access",
	"footer.contact":       "Contact",

	// home
	"home.badge":                 "Complete fleet management",
	"home.title":                 "Corporate platform for fleet management with integrated modules",
	"home.subtitle":              "Maintenance with workshop network, fuel with gas station network and tracking — all in one place.",
	"home.highlight.1":           "500+ Partners and Suppliers",
	"home.highlight.2":           "Integrated fuel station network",
	"home.highlight.3":           "Real-time dashboards",
	"home.carousel.alt":          "Fleet dashboard",
	"home.stat.workshops":        "Workshops",
	"home.stat.coverage":         "Coverage",
	"home.stat.coverage.value":   "All of Brazil",
	"home.stat.integrations":     "Integrations",
	"module.maintenance":         "Maintenance",
	"module.maintenance.1":       "Digital work orders",
	"module.maintenance.2":       "Quotes, auditing and approval",
	"module.maintenance.3":       "Accredited workshop network",
	"module.fuel":                "Fueling",
	"module.fuel.1":              "Integrated fuel station network",
	"module.fuel.2":              "Consumption & fraud control",
	"module.fuel.3":              "Reports per cost center",
	"module.tracking":            "Tracking",
	"module.tracking.1":          "Real-time location",
	"module.tracking.2":          "Alerts and geofences",
	"module.tracking.3":          "Driving and route analysis",
	"home.value.title":           "Excellent value for money",
	"home.value.1":               "InstaSolutions brokers the contracting of automotive services and parts for companies and public institutions.",
	"home.value.2":               "Through its own software and app, it gives clients access to a network of accredited providers offering services and products at competitive prices. The accredited network, in turn, pays the platform a fee for each contracted service.",
	"home.value.alt":             "Value for money",
	"home.workshops.title":       "Services and products from the best workshops on the market",
	"home.workshops.1":           "With a fleet management system connected to the best workshops on the market, you get complete, high-quality service.",
	"home.workshops.2":           "From preventive and corrective maintenance to specialized services such as alignment, balancing, parts replacement, electrical and mechanical checks, plus reliable products, everything is designed to keep your fleet running.",
	"home.workshops.3":           "Enjoy the convenience and benefits of an agreement that brings efficiency, savings and excellence to the care of your vehicles.",
	"home.workshops.alt":         "Workshops",
	"home.mobile.title":          "Stay up to date anywhere",
	"home.mobile.1":              "With our fleet management system you follow everything that happens to your vehicles in real time, wherever you are. Get notifications about maintenance, performance reports and service status at our partners.",
	"home.mobile.2":              "Keep full control of your fleet with convenience and technology in the palm of your hand.",
	"home.mobile.alt":            "Up to date",
	"home.who.title":             "Who are we?",
	"home.who.1":                 "InstaSolutions was born to be a young, innovative and transparent company serving public institutions and private companies. Starting operations on September 16, 2022 in Campo Grande (MS), the company began in the automotive sector selling parts. It soon expanded with a maintenance management system that connects clients to an accredited workshop network, enabling quotes and favorable conditions for parts and services.",
	"home.who.2":                 "In just two years InstaSolutions grew significantly, moving its headquarters to Barueri (SP) while keeping branches in Campo Grande (MS) and Fortaleza (CE). Today it serves more than 20 public and private clients in six states and operates a network of more than 500 accredited workshops and fuel stations.",
	"home.who.3":                 "Committed to expanding its presence across the country, the company keeps innovating and strengthening its position in fleet management and automotive maintenance.",

	// solutions
	"solutions.heading":            "Solutions",
	"solutions.maintenance.title":  "Maintenance",
	"solutions.maintenance.alt":    "Maintenance",
	"solutions.maintenance.1":      "Modern software with 24/7 access",
	"solutions.maintenance.2":      "Balance control",
	"solutions.maintenance.3":      "Multiple users",
	"solutions.maintenance.4":      "Custom reports",
	"solutions.maintenance.5":      "Support team",
	"solutions.maintenance.6":      "Real-time quote approval and auditing",
	"solutions.maintenance.7":      "Complete history of services and parts used",
	"solutions.maintenance.8":      "National network with more than 500 approved workshops",
	"solutions.maintenance.9":      "Work order management with automated flows",
	"solutions.maintenance.10":     "Performance and cost indicators per vehicle or cost center",
	"solutions.maintenance.11":     "Supplier registry and warranty control",
	"solutions.maintenance.12":     "Automatic price and lead time comparison",
	"solutions.maintenance.13":     "Integrated photo and document records",
	"solutions.fuel.title":         "Fueling",
	"solutions.fuel.alt":           "Fueling",
	"solutions.fuel.1":             "Multiple users",
	"solutions.fuel.2":             "Custom reports",
	"solutions.fuel.3":             "Support team",
	"solutions.fuel.4":             "Modern software with 24/7 access",
	"solutions.fuel.5":             "Partner fuel stations all over Brazil",
	"solutions.fuel.6":             "Consumption and variation monitoring per vehicle",
	"solutions.fuel.7":             "Active fueling fraud prevention",
	"solutions.fuel.8":             "Detailed reports by period, station, driver or vehicle",
	"solutions.fuel.9":             "Automatic fueling reconciliation",
	"solutions.fuel.10":            "Invoice import and ERP integration",
	"solutions.fuel.11":            "Cost center control and custom rules",
	"solutions.fuel.12":            "Unified fuel expense dashboard",
	"solutions.fuel.13":            "App with instant records and geographic validation",
	"solutions.fuel.14":            "Savings",
	"solutions.tracking.title":     "Tracking",
	"solutions.tracking.alt":       "Tracking",
	"solutions.tracking.1":         "Real-time monitoring with continuous updates",
	"solutions.tracking.2":         "Automatic speed, route and driving behavior alerts",
	"solutions.tracking.3":         "Configurable geofences for area entry and exit",
	"solutions.tracking.4":         "Complete history of trips, events and movements",
	"solutions.tracking.5":         "Telemetry reports and driving analysis",
	"solutions.tracking.6":         "Idle time and operational deviation detection",
	"solutions.tracking.7":         "Mileage-based preventive maintenance dashboard",
	"solutions.tracking.8":         "Integration with apps and management systems",
	"solutions.tracking.9":         "Approved trackers and specialized technical support",
	"solutions.tracking.10":        "Stronger security with authentication and control layers",
	"solutions.tracking.11":        "Smart preventive maintenance alerts",

	// partners
	"partners.banner.title":    "Join the fastest growing partner network in Brazil.",
	"partners.banner.subtitle": "Fill in the details below to get accredited.",
	"partners.tab.postos":      "Fuel stations",
	"partners.tab.linha":       "Automotive line",

	// system access
	"access.intro":            "To access our system click the \"Access\" button below and you will be redirected to our site.",
	"access.suppliers.banner": "Welcome, Supplier",
	"access.suppliers.alt":    "System access - Suppliers",
	"access.clients.banner":   "Welcome, Client",
	"access.clients.alt":      "System access - Clients",
	"access.general":          "General system access",
	"access.fuel":             "Fuel system access",
	"access.maintTracking":    "Maintenance & tracking access",
	"construction.banner":     "Page under construction. Launching soon!",

	// clients
	"clients.heading": "Become InstaSolutions and simplify your fleet management!",
	"clients.1":       "Managing a fleet does not have to be complex. With InstaSolutions you connect your operation to a complete platform that brings maintenance, fueling and tracking into a single system, with full control and fast data-driven decisions.",
	"clients.2":       "Our national network of more than 500 accredited workshops and fuel stations guarantees standardized, economical and reliable service in any region of Brazil. All of it with smart dashboards, automated processes and full cost transparency.",
	"clients.3":       "By choosing InstaSolutions you cut expenses, increase fleet availability and simplify your team's routine with a modern, secure solution built for companies and institutions that demand efficiency and performance.",
	"clients.closing": "Be InstaSolutions and take your fleet management to a new level.",
	"clients.alt":     "Your fleet up to date",

	// network
	"network.heading":         "National service network",
	"network.1":               "InstaSolutions connects your fleet to a national network of more than 500 accredited workshops and fuel stations, ensuring fast, standardized, quality service in any region of Brazil. Every partner is carefully selected and audited for technical skill, reliability and competitive commercial terms.",
	"network.2":               "Our network works integrated with the fleet management system, so maintenance, fueling and services are recorded in real time with full transparency, governance and cost control. This reduces risk, speeds up decisions and increases fleet availability.",
	"network.3":               "For companies and public bodies this means convenience, savings and safety in every service. For our partners it is the opportunity to grow their business and serve qualified clients.",
	"network.closing":         "With InstaSolutions your fleet has support all over Brazil — with efficiency, technology and trust.",
	"network.alt":             "Service network",
	"network.coverage.alt":    "Network coverage",
	"network.where":           "Where we are",
	"network.highlight":       "Featured branch",
	"network.hq.label":        "Headquarters - Brazil",
	"network.hq.detail":       "Nationwide service",
	"network.branches.label":  "Branches",
	"network.branches.detail": "Regional operation and support",
	"network.branch.label":    "Branch - Brazil",
	"network.branch.detail":   "Midwest regional operation",

	// about
	"about.badge":        "Who we are",
	"about.heading":      "Corporate technology for fast and safe decisions",
	"about.1":            "In an increasingly dynamic, competitive and data-driven environment, companies that run fleets face daily challenges: keeping vehicles available, controlling costs, ensuring transparency, following performance in real time and, above all, making fast and accurate decisions. That is exactly where InstaSolutions stands out, combining technology, operational intelligence and a national accredited network to transform how organizations manage their vehicles.",
	"about.2":            "Our mission is clear: make fleet management simpler, smarter, cheaper and more efficient. To do so we built a complete platform that integrates maintenance, fueling and tracking in a single digital ecosystem, connecting managers, suppliers and operations in real time. With intuitive dashboards, advanced analytics and automated processes we provide a complete view of the operation, so every decision is based on reliable, up-to-date data.",
	"about.3":            "InstaSolutions technology was built for agility, security and governance, serving public institutions and private companies that demand high performance and full compliance. Our system cuts costs, eliminates rework, standardizes processes and finds improvement opportunities across the whole operation — from opening a work order to completing a fueling or following up on a telemetry alert.",
	"about.4":            "Another key differentiator is our network of more than 500 accredited workshops and partner fuel stations, carefully selected and audited for quality, lead time and competitive commercial terms. On our platform the client gets immediate access to this network, with transparency, agility and safety at every step. Every contracted service generates data that flows back to the manager as reports, insights and indicators, reinforcing the fleet's continuous improvement cycle.",
	"about.5":            "We are driven by innovation and by closeness to our clients. That is why we have a team specialized in onboarding, support and expansion, ready to follow each partner with care and excellence. Whether a city hall, a transport company, a rental company or a small fleet starting its digital journey, we offer a complete, reliable and scalable experience.",
	"about.closing.lead": "InstaSolutions was born to be more than software:",
	"about.closing":      "we are a corporate solution that connects people, technology and results. And we keep evolving so every manager can act with maximum confidence, a broad view of the operation and full security — today and in the future.",
	"about.carousel.alt": "InstaSolutions operation",

	// story
	"story.heading": "Our Story",
	"story.1":       "The InstaSolutions story starts with a question: why was fleet management, so essential for companies and public institutions, still marked by slow processes, lack of transparency and decisions made \"in the dark\"? Watching that reality in the automotive sector every day created the urge to do things differently.",
	"story.2":       "On September 16, 2022, in Campo Grande (MS), the company took its first steps as a young venture selling parts. From the start, however, there was something bigger behind the scenes: the conviction that technology could completely change how fleets were run in Brazil.",
	"story.3":       "Following the challenges of clients and partners, we realized the problem was not only the supply of parts — it was the lack of integration, the absence of reliable data, the difficulty of tracking services, the red tape and the high cost many faced without even noticing. That led to our first big turning point: building our own maintenance management system connecting companies and public institutions to an accredited workshop network in a simple, fast and transparent way.",
	"story.4":       "The idea grew, took shape and gained strength. In two years, what started as a small project with a big purpose became a solid, innovative company expanding nationwide. We moved our headquarters to Barueri (SP), one of the most strategic business hubs in the country, and took our young, collaborative culture to other regions with branches in Campo Grande (MS) and Fortaleza (CE).",
	"story.5":       "Today we serve more than 20 clients in six states, connecting them to a network of more than 500 accredited workshops and partner fuel stations. More than numbers, what really matters is the impact: every work order opened, every maintenance approved, every fueling recorded and every fleet optimized means time and money saved and safer, more efficient operations.",
	"story.6":       "InstaSolutions was born from the restlessness of a few but grew with the effort of many. It grew because it listened to its clients, learned from the market and believed in the power of innovation. It grew because it understood that technology only makes sense when it brings simplicity, clarity and real results.",
	"story.7":       "And we keep moving. We keep expanding our presence, growing our network, improving our products and earning every day the trust of those who put their fleet in our hands.",
	"story.closing": "We are InstaSolutions — a young, innovative company committed to continuous evolution. And this is only the first chapter of a story that still has a lot to grow, together with every client who trusts our purpose.",

	// contact
	"contact.heading":  "Let's talk",
	"contact.subtitle": "Fill in the form and we will get back to you to schedule a demo.",
	"contact.card":     "Contacts",
	"contact.hq":       "Headquarters address",
	"contact.reach":    "Get in touch",
	"contact.email":    "E-mail",
	"contact.alt":      "Contact InstaSolutions",

	// thanks / errors
	"thanks.heading":   "Thank you!",
	"thanks.message":   "We received your message and will get back to you shortly.",
	"notFound.heading": "Page not found",
	"notFound.message": "The address you tried to open does not exist or was removed.",
	"error.heading":    "Something went wrong",
	"error.message":    "We could not complete your request. Please try again shortly.",

	// forms
	"form.cnpj":           "CNPJ (company tax ID)",
	"form.legalName":      "Legal name",
	"form.tradeName":      "Trade name",
	"form.district":       "District",
	"form.address":        "Address with number",
	"form.state":          "State",
	"form.city":           "City",
	"form.email":          "E-mail",
	"form.manager":        "Person in charge",
	"form.document":       "CPF/ID",
	"form.mobile":         "Mobile (area code)",
	"form.landline":       "Landline (area code)",
	"form.fuelBrand":      "Fuel brand",
	"form.partnerSegment": "Business segment",
	"form.clientSegment":  "Business segment",
	"form.fleetSize":      "Number of vehicles",
	"form.solution":       "Which solution would you like to hire?",
	"form.message":        "Message",
	"form.terms":          "I agree to the InstaSolutions accreditation terms and process.",

	"form.success.title":         "Form sent",
	"form.success.accreditation": "Form sent successfully. Our team will contact you within 24 hours to complete the accreditation, please watch the phone and e-mail you provided",
	"form.success.client":        "Form sent successfully. Our team will contact you within 24 hours to schedule a meeting, please watch the phone and e-mail you provided",
	"form.success.contact":       "Message sent successfully! We will contact you shortly.",
	"form.redirecting":           "You will be redirected to the home page in a moment.",
	"form.error.send":            "Failed to send. Please try again.",
	"form.error.validation":      "Please check the highlighted fields.",
	"form.error.required":        "Required field",
	"form.error.email":           "Enter a valid e-mail address",
	"form.error.terms":           "You must accept the accreditation terms",
	"form.error.option":          "Select a valid option",
	"form.error.duplicate":       "This form is already being sent. Please wait.",
	"form.error.rateLimited":     "Too many attempts in a short time. Please wait a moment and try again.",
}
