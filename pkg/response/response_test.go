package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/x", nil)
	c.Set(ContextKeyRequestID, "req-1")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	c, w := newContext()
	OK(c, map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, 200, env.Code)
	assert.Equal(t, "req-1", env.RequestID)
	assert.Equal(t, map[string]any{"n": float64(1)}, env.Data)
}

func TestFail_ClientErrorCarriesDetails(t *testing.T) {
	c, w := newContext()
	Fail(c, http.StatusBadRequest, "bad state", errors.New("state XX unknown"))

	assert.True(t, c.IsAborted())
	env := decode(t, w)
	assert.Equal(t, http.StatusBadRequest, env.Code)
	assert.Equal(t, "state XX unknown", env.Details)
}

func TestFail_ServerErrorHidesDetails(t *testing.T) {
	c, w := newContext()
	Fail(c, http.StatusBadGateway, "relay down", errors.New("dial tcp: secret host"))

	env := decode(t, w)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, env.Details)
	assert.Nil(t, env.Data)
}
