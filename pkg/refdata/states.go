package refdata

// PlaceholderCity is the single entry returned for unknown state codes.
const PlaceholderCity = "Cidade"

// DefaultState is the state preselected on every lead form.
const DefaultState = "SP"

// States lists the Brazilian federative units in display order.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RO", "RS", "RR", "SC", "SE", "SP", "TO",
}

// citiesByState holds representative cities per state. Order is preserved in the
// select boxes, so the first city doubles as the default selection.
var citiesByState = map[string][]string{
	"AC": {"Rio Branco", "Cruzeiro do Sul", "Sena Madureira", "Tarauacá", "Feijó"},
	"AL": {"Maceió", "Arapiraca", "Palmeira dos Índios", "Rio Largo", "Penedo"},
	"AP": {"Macapá", "Santana", "Laranjal do Jari", "Oiapoque", "Mazagão"},
	"AM": {"Manaus", "Parintins", "Itacoatiara", "Manacapuru", "Coari"},
	"BA": {"Salvador", "Feira de Santana", "Vitória da Conquista", "Camaçari", "Itabuna", "Juazeiro", "Lauro de Freitas", "Ilhéus", "Jequié", "Teixeira de Freitas"},
	"CE": {"Fortaleza", "Caucaia", "Juazeiro do Norte", "Maracanaú", "Sobral", "Crato", "Itapipoca", "Maranguape", "Iguatu", "Quixadá"},
	"DF": {"Brasília", "Taguatinga", "Ceilândia", "Samambaia", "Planaltina"},
	"ES": {"Vitória", "Vila Velha", "Serra", "Cariacica", "Viana", "Cachoeiro de Itapemirim", "Linhares", "São Mateus", "Colatina", "Guarapari"},
	"GO": {"Goiânia", "Aparecida de Goiânia", "Anápolis", "Rio Verde", "Luziânia", "Águas Lindas de Goiás", "Valparaíso de Goiás", "Trindade", "Formosa", "Novo Gama"},
	"MA": {"São Luís", "Imperatriz", "São José de Ribamar", "Timon", "Caxias", "Codó", "Paço do Lumiar", "Açailândia", "Bacabal", "Balsas"},
	"MT": {"Cuiabá", "Várzea Grande", "Rondonópolis", "Sinop", "Tangará da Serra", "Cáceres", "Sorriso", "Lucas do Rio Verde", "Barra do Garças", "Primavera do Leste"},
	"MS": {"Campo Grande", "Dourados", "Três Lagoas", "Corumbá", "Ponta Porã", "Sidrolândia", "Aquidauana", "Nova Andradina", "Maracaju", "Naviraí"},
	"MG": {"Belo Horizonte", "Uberlândia", "Contagem", "Juiz de Fora", "Betim", "Montes Claros", "Ribeirão das Neves", "Uberaba", "Governador Valadares", "Ipatinga"},
	"PA": {"Belém", "Ananindeua", "Santarém", "Marabá", "Castanhal", "Parauapebas", "Itaituba", "Cametá", "Bragança", "Abaetetuba"},
	"PB": {"João Pessoa", "Campina Grande", "Santa Rita", "Patos", "Bayeux", "Sousa", "Cajazeiras", "Guarabira", "Mamanguape", "Cabedelo"},
	"PR": {"Curitiba", "Londrina", "Maringá", "Ponta Grossa", "Cascavel", "São José dos Pinhais", "Foz do Iguaçu", "Colombo", "Guarapuava", "Paranaguá"},
	"PE": {"Recife", "Jaboatão dos Guararapes", "Olinda", "Caruaru", "Petrolina", "Paulista", "Cabo de Santo Agostinho", "Camaragibe", "Garanhuns", "Vitória de Santo Antão"},
	"PI": {"Teresina", "Parnaíba", "Picos", "Piripiri", "Floriano", "Campo Maior", "Barras", "Altos", "Esperantina", "Pedro II"},
	"RJ": {"Rio de Janeiro", "São Gonçalo", "Duque de Caxias", "Nova Iguaçu", "Niterói", "Belford Roxo", "Campos dos Goytacazes", "São João de Meriti", "Petrópolis", "Volta Redonda"},
	"RN": {"Natal", "Mossoró", "Parnamirim", "São Gonçalo do Amarante", "Macaíba", "Ceará-Mirim", "Caicó", "Assu", "Currais Novos", "Nova Cruz"},
	"RS": {"Porto Alegre", "Caxias do Sul", "Pelotas", "Canoas", "Santa Maria", "Gravataí", "Viamão", "Novo Hamburgo", "São Leopoldo", "Rio Grande"},
	"RO": {"Porto Velho", "Ji-Paraná", "Ariquemes", "Vilhena", "Cacoal", "Jaru", "Rolim de Moura", "Guajará-Mirim", "Pimenta Bueno", "Buritis"},
	"RR": {"Boa Vista", "Rorainópolis", "Caracaraí", "Alto Alegre", "Mucajaí"},
	"SC": {"Florianópolis", "Joinville", "Blumenau", "São José", "Chapecó", "Criciúma", "Itajaí", "Jaraguá do Sul", "Lages", "Palhoça"},
	"SE": {"Aracaju", "Nossa Senhora do Socorro", "Lagarto", "Itabaiana", "Estância", "São Cristóvão", "Tobias Barreto", "Simão Dias", "Propriá", "Barra dos Coqueiros"},
	"SP": {"São Paulo", "Guarulhos", "Campinas", "São Bernardo do Campo", "Santo André", "Osasco", "São José dos Campos", "Ribeirão Preto", "Sorocaba", "Santos", "Barueri", "Mauá", "São José do Rio Preto", "Mogi das Cruzes", "Diadema"},
	"TO": {"Palmas", "Araguaína", "Gurupi", "Porto Nacional", "Paraíso do Tocantins", "Colinas do Tocantins", "Guaraí", "Araguatins", "Miracema do Tocantins", "Tocantinópolis"},
}

// CitiesFor returns the cities registered for a state code. Unknown codes yield a
// single placeholder entry. The result is always a fresh slice.
func CitiesFor(code string) []string {
	cities, ok := citiesByState[code]
	if !ok || len(cities) == 0 {
		return []string{PlaceholderCity}
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// HasState reports whether code is one of the known state codes.
func HasState(code string) bool {
	_, ok := citiesByState[code]
	return ok
}

// ContainsCity reports whether city belongs to the list returned for code.
func ContainsCity(code, city string) bool {
	for _, c := range CitiesFor(code) {
		if c == city {
			return true
		}
	}
	return false
}
