package leadform

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/seo"
)

type recordingSender struct {
	mu       sync.Mutex
	payloads []*Payload
	err      error
}

func (r *recordingSender) Send(_ context.Context, p *Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return r.err
}

func (r *recordingSender) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func newSession(t *testing.T, kind Kind) *Session {
	t.Helper()
	schema, err := SchemaFor(kind)
	require.NoError(t, err)
	return NewSession(schema, seo.NewBuilder(seo.Builder{}))
}

func fillAccreditation(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.Set(FieldCNPJ, "12.345.678/0001-90"))
	require.NoError(t, s.Set(FieldLegalName, "Auto Peças Ltda"))
	require.NoError(t, s.Set(FieldTradeName, "Auto Peças"))
	require.NoError(t, s.Set(FieldEmail, "contato@autopecas.com.br"))
	require.NoError(t, s.Set(FieldTerms, "on"))
}

func TestSession_Defaults(t *testing.T) {
	s := newSession(t, KindAccreditation)
	assert.Equal(t, Editing, s.State())
	assert.Equal(t, TypeFuelStation, s.Type())
	assert.Equal(t, "SP", s.Value(FieldState))
	assert.Equal(t, "São Paulo", s.Value(FieldCity))
	assert.Equal(t, "SHELL", s.Value(FieldFuelBrand))
	assert.Equal(t, "Aquisição de peças", s.Value(FieldPartnerSegment))
}

func TestSession_AccreditationHappyPath(t *testing.T) {
	s := newSession(t, KindAccreditation)
	fillAccreditation(t, s)

	var transitions []string
	s.Observe(func(from, to State) { transitions = append(transitions, from.String()+">"+to.String()) })

	sender := &recordingSender{}
	done, err := s.Submit(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, Succeeded, s.State())
	assert.Equal(t, "/", done.Redirect)
	assert.Equal(t, 6000*time.Millisecond, done.Delay)
	assert.Equal(t, "form.success.accreditation", done.MessageKey)
	assert.Equal(t, []string{"editing>submitting", "submitting>succeeded"}, transitions)

	require.Equal(t, 1, sender.calls())
	p := sender.payloads[0]

	subject, _ := p.Get(HiddenSubject)
	assert.Equal(t, "[Credenciamento] Novo parceiro", subject)
	typ, _ := p.Get(HiddenType)
	assert.Equal(t, "postos", typ)
	next, _ := p.Get(HiddenNext)
	assert.Equal(t, "https://frotainstasolutions.com.br", next)
	brand, ok := p.Get(FieldFuelBrand)
	assert.True(t, ok)
	assert.Equal(t, "SHELL", brand)

	_, hasSegment := p.Get(FieldPartnerSegment)
	assert.False(t, hasSegment)
	_, hasTerms := p.Get(FieldTerms)
	assert.False(t, hasTerms)

	district, ok := p.Get(FieldDistrict)
	assert.True(t, ok, "empty optional field must be present")
	assert.Equal(t, "", district)
}

func TestSession_AutomotiveType(t *testing.T) {
	s := newSession(t, KindAccreditation)
	require.NoError(t, s.SetType(TypeAutomotive))
	fillAccreditation(t, s)
	require.NoError(t, s.Set(FieldPartnerSegment, "Guincho"))

	p := s.Payload()
	typ, _ := p.Get(HiddenType)
	assert.Equal(t, "linha", typ)
	seg, _ := p.Get(FieldPartnerSegment)
	assert.Equal(t, "Guincho", seg)
	_, hasBrand := p.Get(FieldFuelBrand)
	assert.False(t, hasBrand)

	assert.ErrorIs(t, s.SetType("outro"), ErrInvalidType)
}

func TestSession_NetworkFailureKeepsEditing(t *testing.T) {
	s := newSession(t, KindAccreditation)
	fillAccreditation(t, s)

	var transitions []State
	s.Observe(func(_, to State) { transitions = append(transitions, to) })

	boom := errors.New("connection refused")
	sender := &recordingSender{err: boom}
	_, err := s.Submit(context.Background(), sender)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, Editing, s.State())
	assert.ErrorIs(t, s.LastError(), boom)
	assert.Equal(t, []State{Submitting, Failed, Editing}, transitions)
	assert.Equal(t, "Auto Peças", s.Value(FieldTradeName))
	assert.Equal(t, 1, sender.calls(), "no automatic retry")

	sender.err = nil
	_, err = s.Submit(context.Background(), sender)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Attempts())
	assert.NoError(t, s.LastError())
}

func TestSession_Validation(t *testing.T) {
	s := newSession(t, KindAccreditation)
	sender := &recordingSender{}

	_, err := s.Submit(context.Background(), sender)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, MsgRequired, verrs[FieldCNPJ])
	assert.Equal(t, MsgRequired, verrs[FieldLegalName])
	assert.Equal(t, MsgRequired, verrs[FieldTradeName])
	assert.Equal(t, MsgRequired, verrs[FieldEmail])
	assert.Equal(t, MsgTerms, verrs[FieldTerms])
	assert.NotContains(t, verrs, FieldDistrict)
	assert.Zero(t, sender.calls())
	assert.Equal(t, Editing, s.State())
}

func TestSession_ValidationDetails(t *testing.T) {
	s := newSession(t, KindAccreditation)
	fillAccreditation(t, s)

	require.NoError(t, s.Set(FieldEmail, "not-an-email"))
	require.NoError(t, s.Set(FieldFuelBrand, "BP"))
	require.NoError(t, s.Set(FieldCity, "Lisboa"))
	verrs := s.Validate()
	assert.Equal(t, MsgEmail, verrs[FieldEmail])
	assert.Equal(t, MsgOption, verrs[FieldFuelBrand])
	assert.Equal(t, MsgOption, verrs[FieldCity])

	require.NoError(t, s.Set(FieldEmail, "ok@example.com"))
	require.NoError(t, s.Set(FieldFuelBrand, "IPIRANGA"))
	require.NoError(t, s.Set(FieldCity, "Campinas"))
	assert.Nil(t, s.Validate())
}

func TestSession_ContactOnlyNeedsEmail(t *testing.T) {
	s := newSession(t, KindContact)
	assert.Equal(t, MsgRequired, s.Validate()[FieldEmail])
	require.NoError(t, s.Set(FieldEmail, "frota@cliente.com"))
	assert.Nil(t, s.Validate())

	done, err := s.Submit(context.Background(), &recordingSender{})
	require.NoError(t, err)
	assert.Equal(t, "/obrigado", done.Redirect)
	assert.Zero(t, done.Delay)

	p := s.Payload()
	next, _ := p.Get(HiddenNext)
	assert.Equal(t, "https://frotainstasolutions.com.br/obrigado", next)
	_, typed := p.Get(HiddenType)
	assert.False(t, typed)
	solution, _ := p.Get(FieldSolution)
	assert.Equal(t, "Manutenção", solution)
}

func TestSession_StateCascade(t *testing.T) {
	s := newSession(t, KindClient)

	cities, err := s.SetState("SP")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", cities[0])
	assert.Contains(t, cities, "Campinas")

	require.NoError(t, s.Set(FieldCity, "Campinas"))
	_, err = s.SetState("SP")
	require.NoError(t, err)
	assert.Equal(t, "Campinas", s.Value(FieldCity), "city kept when still valid")

	cities, err = s.SetState("XX")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cidade"}, cities)
	assert.Equal(t, "Cidade", s.Value(FieldCity))

	require.NoError(t, s.Set(FieldState, "MS"))
	assert.Equal(t, "Campo Grande", s.Value(FieldCity))
	assert.Equal(t, "Campo Grande", s.Cities()[0])
}

func TestSession_DoubleSubmit(t *testing.T) {
	s := newSession(t, KindContact)
	require.NoError(t, s.Set(FieldEmail, "a@b.co"))

	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := SenderFunc(func(ctx context.Context, _ *Payload) error {
		close(entered)
		<-release
		return nil
	})

	errc := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), blocking)
		errc <- err
	}()

	<-entered
	assert.Equal(t, Submitting, s.State())
	_, err := s.Submit(context.Background(), &recordingSender{})
	assert.ErrorIs(t, err, ErrAlreadySubmitting)
	assert.ErrorIs(t, s.Set(FieldEmail, "x@y.z"), ErrNotEditing)

	close(release)
	require.NoError(t, <-errc)

	_, err = s.Submit(context.Background(), &recordingSender{})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, s.Attempts())
}

func TestSession_Fill(t *testing.T) {
	s := newSession(t, KindAccreditation)
	form := url.Values{
		HiddenType:           {"linha"},
		FieldCNPJ:            {" 11.222.333/0001-44 "},
		FieldLegalName:       {"Oficina Central"},
		FieldTradeName:       {"Central"},
		FieldState:           {"RJ"},
		FieldCity:            {"Niterói"},
		FieldEmail:           {"central@oficina.com"},
		FieldPartnerSegment:  {"Oficina mecânica"},
		FieldTerms:           {"on"},
		"unexpected-extra":   {"ignored"},
	}
	require.NoError(t, s.Fill(form))
	assert.Nil(t, s.Validate())
	assert.Equal(t, TypeAutomotive, s.Type())
	assert.Equal(t, "11.222.333/0001-44", s.Value(FieldCNPJ))
	assert.Equal(t, "Niterói", s.Value(FieldCity))

	bad := newSession(t, KindAccreditation)
	assert.ErrorIs(t, bad.Fill(url.Values{HiddenType: {"barco"}}), ErrInvalidType)
}

func TestSession_FillUnknownTypeKeepsValues(t *testing.T) {
	s := newSession(t, KindAccreditation)
	err := s.Fill(url.Values{
		HiddenType:     {"bogus"},
		FieldCNPJ:      {"11.222.333/0001-44"},
		FieldLegalName: {"Posto Central"},
		FieldEmail:     {"a@b.co"},
	})
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.Equal(t, TypeFuelStation, s.Type())
	assert.Equal(t, "11.222.333/0001-44", s.Value(FieldCNPJ))
	assert.Equal(t, "Posto Central", s.Value(FieldLegalName))
	assert.Equal(t, "a@b.co", s.Value(FieldEmail))
}

func TestSession_UnknownField(t *testing.T) {
	s := newSession(t, KindClient)
	assert.ErrorIs(t, s.Set("Senha", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetType(TypeAutomotive), ErrInvalidType)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("newsletter")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
