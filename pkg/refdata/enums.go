package refdata

// PartnerSegments are the business segments offered to workshop partners.
var PartnerSegments = []string{
	"Aquisição de peças",
	"Aquisição de pneu",
	"Auto peças & Distribuidora",
	"Auto elétrica",
	"Ar-condicionado",
	"Borracharia",
	"Consessionária",
	"Despachante ou Comércio de placas",
	"Funilaria e pintura",
	"Lavagem automotiva",
	"Troca de óleo Express",
	"Oficina mecânica",
	"Centro Automotivo",
	"Vidros em geral",
	"Reforma de pneu",
	"Guincho",
	"Tapeçaria",
	"Vistoria veicular e Inspeção veicular",
	"Chaveiro",
	"Posto de Molas",
	"Outro",
}

// FuelBrands are the fuel station flags offered to fuel station partners.
var FuelBrands = []string{"SHELL", "ALE", "IPIRANGA", "PROPRIA", "PETROBAS", "RAÍZEN", "OUTROS"}

// ClientSegments are the segments a prospective client can pick.
var ClientSegments = []string{"Transportadora", "Órgão Público", "Locadora", "Microempresa", "Outro"}

// FleetSizes are the fleet size buckets.
var FleetSizes = []string{"1-25", "26-100", "101-500", "500+"}

// Solutions are the products a lead can ask for.
var Solutions = []string{"Manutenção", "Combustível", "Rastreamento", "Sistema completo", "Personalizado"}

// Catalog groups every enumeration, used by the reference data API.
type Catalog struct {
	States          []string            `json:"states"`
	Cities          map[string][]string `json:"cities"`
	PartnerSegments []string            `json:"partner_segments"`
	FuelBrands      []string            `json:"fuel_brands"`
	ClientSegments  []string            `json:"client_segments"`
	FleetSizes      []string            `json:"fleet_sizes"`
	Solutions       []string            `json:"solutions"`
}

// NewCatalog returns a copy of all reference tables.
func NewCatalog() *Catalog {
	cities := make(map[string][]string, len(States))
	for _, uf := range States {
		cities[uf] = CitiesFor(uf)
	}
	return &Catalog{
		States:          clone(States),
		Cities:          cities,
		PartnerSegments: clone(PartnerSegments),
		FuelBrands:      clone(FuelBrands),
		ClientSegments:  clone(ClientSegments),
		FleetSizes:      clone(FleetSizes),
		Solutions:       clone(Solutions),
	}
}

// Contains reports whether value is one of options.
func Contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
