package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	in := DefaultConfig()
	in.Port = 9999
	in.Codec.Compression = "lz4"
	in.Codec.WideIntegers = true

	require.NoError(t, SaveConfig(in, path))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBootstrapConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := BootstrapConfig(path)
	require.NoError(t, err)
	assert.NotEqual(t, "auto", cfg.Security.APIKey)
	assert.Len(t, cfg.Security.APIKey, 64, "32 random bytes hex encoded")
	assert.True(t, ConfigExists(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Security.APIKey, loaded.Security.APIKey)
}

func TestGenerateSecureKey_Unique(t *testing.T) {
	a, err := GenerateSecureKey(16)
	require.NoError(t, err)
	b, err := GenerateSecureKey(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
