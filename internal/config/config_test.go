package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/textsign/internal/constants"
)

func TestDefaultConfig_ReturnsValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "blake3", cfg.Crypto.Scheme)
	assert.Equal(t, "base64url", cfg.Crypto.Encoding)
	assert.Equal(t, ".", cfg.Keys.Dir)
	assert.True(t, cfg.Logging.File)
	assert.Empty(t, cfg.Logging.Path)
	assert.Equal(t, constants.LogMaxSizeMB, cfg.Logging.MaxSizeMB)
	assert.Equal(t, constants.LogMaxBackups, cfg.Logging.MaxBackups)
	assert.Equal(t, constants.LogMaxAgeDays, cfg.Logging.MaxAgeDays)

	require.NoError(t, Validate(cfg))
}

func TestConfig_YAMLSerialization(t *testing.T) {
	original := DefaultConfig()
	original.Crypto.Scheme = "ed25519"
	original.Keys.Dir = "/tmp/keys"

	data, err := yaml.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scheme: ed25519")
	assert.Contains(t, string(data), "max_size_mb:")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}
