package leadform

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// Entry is one name/value pair of a submission.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Payload is the ordered field set sent to the relay. Names may repeat; order is
// preserved on the wire.
type Payload struct {
	entries []Entry
}

// Add appends a field. Empty values are kept.
func (p *Payload) Add(name, value string) {
	p.entries = append(p.entries, Entry{Name: name, Value: value})
}

// Get returns the first value stored under name.
func (p *Payload) Get(name string) (string, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Entries returns a copy of the fields in submission order.
func (p *Payload) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of fields.
func (p *Payload) Len() int {
	return len(p.entries)
}

// Encode writes the payload as a multipart/form-data body and returns it together
// with the matching Content-Type header value.
func (p *Payload) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, e := range p.entries {
		if err := w.WriteField(e.Name, e.Value); err != nil {
			return nil, "", fmt.Errorf("%w: field %q: %v", ErrEncodePayload, e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrEncodePayload, err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
