package web

import (
	"strings"
	"time"

	"frotaweb/pkg/leadform"
)

// FieldView is one rendered input.
type FieldView struct {
	Name     string
	ID       string
	Label    string
	Value    string
	Control  string
	Required bool
	Wide     bool
	Checked  bool
	Options  []string
	Error    string
}

// TabView is an accreditation type switch.
type TabView struct {
	Label  string
	Href   string
	Value  string
	Active bool
}

// Notice is the dismissible message shown above the form.
type Notice struct {
	Kind    string
	Message string
}

// Success replaces the form once the relay accepted a submission.
type Success struct {
	Title       string
	Message     string
	Redirect    string
	DelayMillis int64
	Redirecting string
}

// FormView is everything the form partial needs.
type FormView struct {
	Kind    string
	Action  string
	Token   string
	Type    string
	Tabs    []TabView
	Fields  []FieldView
	Submit  string
	Sending string
	Dismiss string
	Notice  *Notice
	Success *Success
}

func controlName(c leadform.Control) string {
	switch c {
	case leadform.ControlEmail:
		return "email"
	case leadform.ControlSelect:
		return "select"
	case leadform.ControlState:
		return "state"
	case leadform.ControlCity:
		return "city"
	case leadform.ControlCheckbox:
		return "checkbox"
	}
	return "text"
}

func fieldID(name string) string {
	r := strings.NewReplacer(" ", "-", "_", "-")
	return "f-" + strings.ToLower(r.Replace(name))
}

// NewFormView describes the session fields in their current state. errs may be
// nil; t translates label and message keys.
func NewFormView(s *leadform.Session, t func(string) string, token string, errs leadform.ValidationErrors) *FormView {
	schema := s.Schema()
	fv := &FormView{
		Kind:    string(schema.Kind),
		Action:  "/forms/" + string(schema.Kind),
		Token:   token,
		Submit:  t("button.submit"),
		Sending: t("button.sending"),
		Dismiss: t("button.dismiss"),
	}

	typ := s.Type()
	if schema.Typed {
		fv.Type = string(typ)
		for _, tab := range []struct {
			value leadform.AccreditationType
			key   string
		}{
			{leadform.TypeFuelStation, "partners.tab.postos"},
			{leadform.TypeAutomotive, "partners.tab.linha"},
		} {
			fv.Tabs = append(fv.Tabs, TabView{
				Label:  t(tab.key),
				Href:   schema.Route + "?tipo=" + string(tab.value),
				Value:  string(tab.value),
				Active: tab.value == typ,
			})
		}
	}

	for _, f := range schema.ActiveFields(typ) {
		view := FieldView{
			Name:     f.Name,
			ID:       fieldID(f.Name),
			Label:    t(f.LabelKey),
			Value:    s.Value(f.Name),
			Control:  controlName(f.Control),
			Required: f.Required,
			Wide:     f.Wide,
			Options:  f.Options,
		}
		switch f.Control {
		case leadform.ControlCity:
			view.Options = s.Cities()
		case leadform.ControlCheckbox:
			view.Checked = view.Value != ""
		}
		if key, bad := errs[f.Name]; bad {
			view.Error = t(key)
		}
		fv.Fields = append(fv.Fields, view)
	}

	if len(errs) > 0 {
		fv.Notice = &Notice{Kind: "error", Message: t("form.error.validation")}
	}
	return fv
}

// WithNotice sets the message above the form.
func (f *FormView) WithNotice(kind, message string) *FormView {
	f.Notice = &Notice{Kind: kind, Message: message}
	return f
}

// WithSuccess swaps the form for the confirmation view.
func (f *FormView) WithSuccess(t func(string) string, c leadform.Completion) *FormView {
	f.Success = &Success{
		Title:       t("form.success.title"),
		Message:     t(c.MessageKey),
		Redirect:    c.Redirect,
		DelayMillis: c.Delay.Milliseconds(),
		Redirecting: t("form.redirecting"),
	}
	return f
}

// RefreshSeconds rounds the confirmation delay up to whole seconds.
func RefreshSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
