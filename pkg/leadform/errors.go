package leadform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Define sentinel errors using errors.New to create immutable error instances
var (
	// ErrUnknownKind indicates a form kind that is not registered
	ErrUnknownKind = errors.New("unknown form kind")

	// ErrUnknownField indicates a field name not present in the form schema
	ErrUnknownField = errors.New("unknown form field")

	// ErrInvalidType indicates an accreditation type other than postos or linha
	ErrInvalidType = errors.New("invalid accreditation type")

	// ErrNotEditing indicates the session no longer accepts edits
	ErrNotEditing = errors.New("form is not editable")

	// ErrAlreadySubmitting indicates a second submit while one is in flight
	ErrAlreadySubmitting = errors.New("form submission already in progress")

	// ErrAlreadySubmitted indicates a submission token that already succeeded
	ErrAlreadySubmitted = errors.New("form already submitted")

	// ErrMissingToken indicates a submission without a token
	ErrMissingToken = errors.New("missing submission token")

	// ErrValidation indicates the form values failed validation
	ErrValidation = errors.New("form validation failed")

	// ErrEncodePayload indicates the multipart body could not be written
	ErrEncodePayload = errors.New("failed to encode form payload")
)

// Message keys attached to invalid fields.
const (
	MsgRequired = "form.error.required"
	MsgEmail    = "form.error.email"
	MsgTerms    = "form.error.terms"
	MsgOption   = "form.error.option"
)

// ValidationErrors maps a field name to the message key explaining what is wrong.
type ValidationErrors map[string]string

// Error implements the error interface
func (v ValidationErrors) Error() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, v[name]))
	}
	return fmt.Sprintf("%s (%s)", ErrValidation.Error(), strings.Join(parts, ", "))
}

// Is lets errors.Is(err, ErrValidation) match.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
