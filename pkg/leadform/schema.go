// Package leadform implements the lead capture forms: their field schemas, the
// editing/submitting session and the payload handed to the relay.
package leadform

import (
	"time"

	"frotaweb/pkg/refdata"
)

// Kind identifies one of the lead forms.
type Kind string

const (
	KindAccreditation Kind = "accreditation"
	KindClient        Kind = "client"
	KindContact       Kind = "contact"
)

// ParseKind validates a kind coming from a URL.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := schemas[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// AccreditationType is the partner category picked on the accreditation form.
type AccreditationType string

const (
	TypeFuelStation AccreditationType = "postos"
	TypeAutomotive  AccreditationType = "linha"
)

// ParseType validates an accreditation type. Empty input selects TypeFuelStation.
func ParseType(s string) (AccreditationType, error) {
	switch AccreditationType(s) {
	case "", TypeFuelStation:
		return TypeFuelStation, nil
	case TypeAutomotive:
		return TypeAutomotive, nil
	}
	return "", ErrInvalidType
}

// Control is the input widget used for a field.
type Control int

const (
	ControlText Control = iota
	ControlEmail
	ControlSelect
	ControlState
	ControlCity
	ControlCheckbox
)

// Relay field names. They are part of the relay mapping and must stay stable.
const (
	FieldCNPJ           = "CNPJ"
	FieldLegalName      = "Razao Social"
	FieldTradeName      = "Nome Fantasia"
	FieldDistrict       = "Bairro"
	FieldAddress        = "Endereco"
	FieldState          = "Estado"
	FieldCity           = "Cidade"
	FieldEmail          = "Email"
	FieldManager        = "Responsavel"
	FieldDocument       = "CPF_RG"
	FieldMobile         = "DDD_Celular"
	FieldLandline       = "DDD_Fixo"
	FieldFuelBrand      = "Bandeira"
	FieldPartnerSegment = "Segmento de atuação"
	FieldClientSegment  = "Segmento de atuacao"
	FieldFleetSize      = "Quantidade de veiculos"
	FieldSolution       = "Solucao"
	FieldTerms          = "termos"

	HiddenSubject  = "_subject"
	HiddenNext     = "_next"
	HiddenCaptcha  = "_captcha"
	HiddenTemplate = "_template"
	HiddenType     = "Tipo"
	HiddenToken    = "_token"
)

// Field describes one visible form input.
type Field struct {
	Name     string
	LabelKey string
	Control  Control
	Required bool
	Options  []string
	// Wide fields span both grid columns.
	Wide bool
	// OnlyFor restricts the field to one accreditation type.
	OnlyFor AccreditationType
	// Transient fields are validated but never sent to the relay.
	Transient bool
}

// ActiveFor reports whether the field is shown for the given accreditation type.
func (f Field) ActiveFor(t AccreditationType) bool {
	return f.OnlyFor == "" || f.OnlyFor == t
}

// Completion describes what happens after a successful submission.
type Completion struct {
	MessageKey string
	// Redirect is the route the visitor is sent to.
	Redirect string
	// Delay before the redirect. Zero means an immediate redirect.
	Delay time.Duration
}

// Schema is the static definition of a lead form.
type Schema struct {
	Kind    Kind
	Route   string
	Subject string
	// Typed forms carry the Tipo hidden field.
	Typed      bool
	Fields     []Field
	Completion Completion
}

// ActiveFields returns the fields shown for accreditation type t.
func (s *Schema) ActiveFields(t AccreditationType) []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.ActiveFor(t) {
			out = append(out, f)
		}
	}
	return out
}

// Field looks a field up by relay name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RedirectDelay is the pause before leaving the confirmation view.
const RedirectDelay = 6000 * time.Millisecond

func companyFields(required bool) []Field {
	return []Field{
		{Name: FieldCNPJ, LabelKey: "form.cnpj", Required: required},
		{Name: FieldLegalName, LabelKey: "form.legalName", Required: required},
		{Name: FieldTradeName, LabelKey: "form.tradeName", Required: required},
		{Name: FieldDistrict, LabelKey: "form.district"},
		{Name: FieldAddress, LabelKey: "form.address", Wide: true},
		{Name: FieldState, LabelKey: "form.state", Control: ControlState, Options: refdata.States},
		{Name: FieldCity, LabelKey: "form.city", Control: ControlCity},
		{Name: FieldEmail, LabelKey: "form.email", Control: ControlEmail, Required: true},
		{Name: FieldManager, LabelKey: "form.manager"},
	}
}

func prospectFields(required bool) []Field {
	fields := companyFields(required)
	return append(fields,
		Field{Name: FieldClientSegment, LabelKey: "form.clientSegment", Control: ControlSelect, Options: refdata.ClientSegments},
		Field{Name: FieldFleetSize, LabelKey: "form.fleetSize", Control: ControlSelect, Options: refdata.FleetSizes},
		Field{Name: FieldMobile, LabelKey: "form.mobile"},
		Field{Name: FieldLandline, LabelKey: "form.landline"},
		Field{Name: FieldSolution, LabelKey: "form.solution", Control: ControlSelect, Options: refdata.Solutions, Wide: true},
	)
}

var schemas = map[Kind]*Schema{
	KindAccreditation: {
		Kind:    KindAccreditation,
		Route:   "/parceiros/credenciar",
		Subject: "[Credenciamento] Novo parceiro",
		Typed:   true,
		Fields: append(companyFields(true),
			Field{Name: FieldDocument, LabelKey: "form.document"},
			Field{Name: FieldMobile, LabelKey: "form.mobile"},
			Field{Name: FieldLandline, LabelKey: "form.landline"},
			Field{Name: FieldFuelBrand, LabelKey: "form.fuelBrand", Control: ControlSelect, Options: refdata.FuelBrands, Wide: true, OnlyFor: TypeFuelStation},
			Field{Name: FieldPartnerSegment, LabelKey: "form.partnerSegment", Control: ControlSelect, Options: refdata.PartnerSegments, Wide: true, OnlyFor: TypeAutomotive},
			Field{Name: FieldTerms, LabelKey: "form.terms", Control: ControlCheckbox, Required: true, Wide: true, Transient: true},
		),
		Completion: Completion{MessageKey: "form.success.accreditation", Redirect: "/", Delay: RedirectDelay},
	},
	KindClient: {
		Kind:       KindClient,
		Route:      "/clientes/queroser",
		Subject:    "[Cliente] Quero ser Cliente",
		Fields:     prospectFields(true),
		Completion: Completion{MessageKey: "form.success.client", Redirect: "/", Delay: RedirectDelay},
	},
	KindContact: {
		Kind:       KindContact,
		Route:      "/contato",
		Subject:    "[Site] Novo contato",
		Fields:     prospectFields(false),
		Completion: Completion{MessageKey: "form.success.contact", Redirect: "/obrigado"},
	},
}

// SchemaFor returns the schema of kind.
func SchemaFor(kind Kind) (*Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return s, nil
}

// Kinds lists the registered form kinds.
func Kinds() []Kind {
	return []Kind{KindAccreditation, KindClient, KindContact}
}
