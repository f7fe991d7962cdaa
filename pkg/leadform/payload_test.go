package leadform

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_EncodeKeepsOrderAndEmptyValues(t *testing.T) {
	p := &Payload{}
	p.Add(HiddenSubject, "[Site] Novo contato")
	p.Add(FieldCNPJ, "")
	p.Add(FieldState, "SP")
	p.Add("Segmento de atuação", "Guincho")

	body, contentType, err := p.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	var got []Entry
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		value, err := io.ReadAll(part)
		require.NoError(t, err)
		got = append(got, Entry{Name: part.FormName(), Value: string(value)})
	}

	if diff := cmp.Diff(p.Entries(), got); diff != "" {
		t.Errorf("decoded payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPayload_EntriesIsCopy(t *testing.T) {
	p := &Payload{}
	p.Add("a", "1")
	entries := p.Entries()
	entries[0].Value = "2"
	v, _ := p.Get("a")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, p.Len())
}

func TestGuard(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGuard(10 * time.Minute)
	g.now = func() time.Time { return now }

	assert.ErrorIs(t, g.Acquire(""), ErrMissingToken)

	token := NewToken()
	require.NoError(t, g.Acquire(token))
	assert.ErrorIs(t, g.Acquire(token), ErrAlreadySubmitting)
	assert.Equal(t, 1, g.InFlight())

	g.Release(token, false)
	require.NoError(t, g.Acquire(token), "failed submissions may be retried")

	g.Release(token, true)
	assert.ErrorIs(t, g.Acquire(token), ErrAlreadySubmitted)
	assert.Zero(t, g.Prune())

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 1, g.Prune())
	assert.NoError(t, g.Acquire(token))
}

func TestNewToken_Unique(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
	assert.Len(t, NewToken(), 36)
}
