package leadform

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"frotaweb/pkg/refdata"
)

// State is the lifecycle position of a form session.
type State int

const (
	Editing State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Sender delivers a payload to the relay. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, p *Payload) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, p *Payload) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, p *Payload) error { return f(ctx, p) }

// URLBuilder turns a site path into an absolute URL.
type URLBuilder interface {
	CanonicalURL(path string) string
}

// mirrors the browser's type=email check
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Session holds the values of one form instance and drives it through
// Editing -> Submitting -> Succeeded, falling back to Editing when the relay fails.
type Session struct {
	mu       sync.Mutex
	schema   *Schema
	urls     URLBuilder
	state    State
	typ      AccreditationType
	values   map[string]string
	cities   []string
	lastErr  error
	attempts int
	observer func(from, to State)
}

// NewSession starts a session in Editing with default selections: state SP, its
// first city, and the first option of every select.
func NewSession(schema *Schema, urls URLBuilder) *Session {
	s := &Session{
		schema: schema,
		urls:   urls,
		typ:    TypeFuelStation,
		values: make(map[string]string, len(schema.Fields)),
	}
	for _, f := range schema.Fields {
		if f.Control == ControlSelect && len(f.Options) > 0 {
			s.values[f.Name] = f.Options[0]
		}
	}
	s.setStateLocked(refdata.DefaultState)
	return s
}

// Observe registers fn to be called on every state transition.
func (s *Session) Observe(fn func(from, to State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

func (s *Session) transitionLocked(to State) {
	from := s.state
	s.state = to
	if s.observer != nil {
		s.observer(from, to)
	}
}

// Schema returns the form definition.
func (s *Session) Schema() *Schema { return s.schema }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Type returns the selected accreditation type.
func (s *Session) Type() AccreditationType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typ
}

// LastError returns the error of the most recent failed submission.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Attempts returns how many times the relay was called.
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// Value returns the current value of a field.
func (s *Session) Value(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[name]
}

// Cities returns the city options for the selected state.
func (s *Session) Cities() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cities...)
}

// SetType switches the accreditation type. Only typed forms accept it.
func (s *Session) SetType(t AccreditationType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return ErrNotEditing
	}
	if !s.schema.Typed || (t != TypeFuelStation && t != TypeAutomotive) {
		return ErrInvalidType
	}
	s.typ = t
	return nil
}

// Set edits a field. Setting the state field refreshes the city options.
func (s *Session) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return ErrNotEditing
	}
	if _, ok := s.schema.Field(name); !ok {
		return ErrUnknownField
	}
	if name == FieldState {
		s.setStateLocked(value)
		return nil
	}
	s.values[name] = value
	return nil
}

// SetState selects a state code and returns the refreshed city options. The
// selected city is reset to the first option when it is not in the new list.
func (s *Session) SetState(code string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return nil, ErrNotEditing
	}
	s.setStateLocked(code)
	return append([]string(nil), s.cities...), nil
}

func (s *Session) setStateLocked(code string) {
	s.values[FieldState] = code
	s.cities = refdata.CitiesFor(code)
	if !refdata.Contains(s.cities, s.values[FieldCity]) {
		s.values[FieldCity] = s.cities[0]
	}
}

// Fill copies posted form values into the session, type first, then fields in
// schema order so that the state is set before the city. Fields absent from
// values are set to the empty string, except selects which keep their default.
// An unknown type falls back to TypeFuelStation; the fields are still copied
// and the type error is returned afterwards.
func (s *Session) Fill(values url.Values) error {
	var typeErr error
	if s.schema.Typed {
		t, err := ParseType(values.Get(HiddenType))
		if err != nil {
			typeErr = err
			t = TypeFuelStation
		}
		if err := s.SetType(t); err != nil {
			return err
		}
	}
	for _, f := range s.schema.Fields {
		if !f.ActiveFor(s.Type()) {
			continue
		}
		v, present := values[f.Name]
		if !present && (f.Control == ControlSelect || f.Control == ControlState) {
			continue
		}
		var value string
		if len(v) > 0 {
			value = strings.TrimSpace(v[0])
		}
		if err := s.Set(f.Name, value); err != nil {
			return err
		}
	}
	return typeErr
}

// Validate checks required flags, email shape and select options of the active
// fields. It returns nil when the form is valid.
func (s *Session) Validate() ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *Session) validateLocked() ValidationErrors {
	errs := ValidationErrors{}
	for _, f := range s.schema.ActiveFields(s.typ) {
		v := strings.TrimSpace(s.values[f.Name])
		switch {
		case f.Control == ControlCheckbox:
			if f.Required && !checked(v) {
				errs[f.Name] = MsgTerms
			}
		case v == "":
			if f.Required {
				errs[f.Name] = MsgRequired
			}
		case f.Control == ControlEmail:
			if !emailPattern.MatchString(v) {
				errs[f.Name] = MsgEmail
			}
		case f.Control == ControlSelect:
			if !refdata.Contains(f.Options, v) {
				errs[f.Name] = MsgOption
			}
		case f.Control == ControlState:
			if !refdata.HasState(v) {
				errs[f.Name] = MsgOption
			}
		case f.Control == ControlCity:
			if !refdata.Contains(s.cities, v) {
				errs[f.Name] = MsgOption
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Payload assembles the submission: hidden metadata first, then every active
// visible field in schema order. Empty optional fields are included as "".
func (s *Session) Payload() *Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloadLocked()
}

func (s *Session) payloadLocked() *Payload {
	p := &Payload{}
	p.Add(HiddenSubject, s.schema.Subject)
	if s.schema.Typed {
		p.Add(HiddenType, string(s.typ))
	}
	p.Add(HiddenCaptcha, "false")
	p.Add(HiddenTemplate, "table")
	p.Add(HiddenNext, s.urls.CanonicalURL(s.schema.Completion.Redirect))
	for _, f := range s.schema.ActiveFields(s.typ) {
		if f.Transient {
			continue
		}
		p.Add(f.Name, s.values[f.Name])
	}
	return p
}

// Submit validates the form and hands the payload to sender exactly once. On
// success the session ends in Succeeded and the completion is returned. When the
// sender fails the session passes through Failed back to Editing, keeping every
// value so the visitor can try again.
func (s *Session) Submit(ctx context.Context, sender Sender) (Completion, error) {
	s.mu.Lock()
	switch s.state {
	case Submitting:
		s.mu.Unlock()
		return Completion{}, ErrAlreadySubmitting
	case Succeeded:
		s.mu.Unlock()
		return Completion{}, ErrAlreadySubmitted
	}
	if errs := s.validateLocked(); errs != nil {
		s.mu.Unlock()
		return Completion{}, errs
	}
	payload := s.payloadLocked()
	s.attempts++
	s.transitionLocked(Submitting)
	s.mu.Unlock()

	err := sender.Send(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		s.transitionLocked(Failed)
		s.transitionLocked(Editing)
		return Completion{}, err
	}
	s.lastErr = nil
	s.transitionLocked(Succeeded)
	return s.schema.Completion, nil
}
