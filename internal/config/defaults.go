package config

import "github.com/mrz1836/textsign/internal/constants"

// DefaultConfig returns a new Config with default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Crypto: CryptoConfig{
			Scheme:   constants.DefaultScheme,
			Encoding: constants.DefaultEncoding,
		},
		Keys: KeysConfig{
			// Dir: keys land next to the caller unless configured otherwise.
			Dir: ".",
		},
		Logging: LoggingConfig{
			File:       true,
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
	}
}
