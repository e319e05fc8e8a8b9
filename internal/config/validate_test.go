package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	err := Validate(nil)
	require.ErrorIs(t, err, errors.ErrConfigNil)
}

func TestValidate_DefaultConfig(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		sentinel error
		contains string
	}{
		{
			name:     "unknown scheme",
			modify:   func(c *Config) { c.Crypto.Scheme = "rsa" },
			sentinel: errors.ErrConfigInvalidCrypto,
			contains: "crypto.scheme",
		},
		{
			name:     "empty scheme",
			modify:   func(c *Config) { c.Crypto.Scheme = "" },
			sentinel: errors.ErrConfigInvalidCrypto,
			contains: "crypto.scheme",
		},
		{
			name:     "unknown encoding",
			modify:   func(c *Config) { c.Crypto.Encoding = "hex" },
			sentinel: errors.ErrConfigInvalidCrypto,
			contains: "crypto.encoding",
		},
		{
			name:     "empty keys dir",
			modify:   func(c *Config) { c.Keys.Dir = "  " },
			sentinel: errors.ErrConfigInvalidKeys,
			contains: "keys.dir",
		},
		{
			name:     "zero max size",
			modify:   func(c *Config) { c.Logging.MaxSizeMB = 0 },
			sentinel: errors.ErrConfigInvalidLogging,
			contains: "max_size_mb",
		},
		{
			name:     "negative backups",
			modify:   func(c *Config) { c.Logging.MaxBackups = -1 },
			sentinel: errors.ErrConfigInvalidLogging,
			contains: "max_backups",
		},
		{
			name:     "negative age",
			modify:   func(c *Config) { c.Logging.MaxAgeDays = -5 },
			sentinel: errors.ErrConfigInvalidLogging,
			contains: "max_age_days",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(cfg)

			err := Validate(cfg)
			require.ErrorIs(t, err, tc.sentinel)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestValidate_AcceptsEveryName(t *testing.T) {
	for _, scheme := range []string{"blake3", "ed25519"} {
		for _, enc := range []string{"base64url", "base58"} {
			cfg := DefaultConfig()
			cfg.Crypto.Scheme = scheme
			cfg.Crypto.Encoding = enc
			assert.NoError(t, Validate(cfg), "%s/%s", scheme, enc)
		}
	}
}

func TestValidate_ZeroRetentionAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.MaxBackups = 0
	cfg.Logging.MaxAgeDays = 0

	require.NoError(t, Validate(cfg))
}
