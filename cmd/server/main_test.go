package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frotaweb/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	path := filepath.Join(t.TempDir(), "config.yaml")
	c := config.Default()
	c.Server.Port = 9191
	c.Relay.Email = "leads@example.com"
	require.NoError(t, config.SaveConfig(c, path))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigPrintJSON(t *testing.T) {
	out, err := execute(t, "config", "print", "--format", "json")
	require.NoError(t, err)

	var printed config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	assert.Equal(t, 9191, printed.Server.Port)
	assert.Equal(t, "leads@example.com", printed.Relay.Email)
}

func TestConfigPrintUnknownFormat(t *testing.T) {
	_, err := execute(t, "config", "print", "--format", "toml")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	out, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration ok")
}

func TestRoutes(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "/forms/:kind")
	assert.Contains(t, out, "/api/v1/cities")
	assert.Contains(t, out, "/parceiros/credenciar")
}
