package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.ServerEndpointAddr)
	assert.Equal(t, "cli", cfg.DeviceName)
}

func TestParseFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"cmd", "-a", "http://example.com:9090", "-n", "workstation"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://example.com:9090", cfg.ServerEndpointAddr)
	assert.Equal(t, "workstation", cfg.DeviceName)
}

func TestParseJson(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(JsonConfig{ServerEndpointAddr: "http://example.com:9090", DeviceName: "laptop"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://example.com:9090", cfg.ServerEndpointAddr)
	assert.Equal(t, "laptop", cfg.DeviceName)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:8080", cfg.ServerEndpointAddr)
}
