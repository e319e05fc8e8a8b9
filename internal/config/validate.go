package config

import (
	"slices"
	"strings"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - crypto.scheme must name a signing scheme
//   - crypto.encoding must name a signature encoding
//   - keys.dir must not be empty
//   - logging rotation values must be positive
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateCryptoConfig(&cfg.Crypto); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Keys.Dir) == "" {
		return errors.Wrap(errors.ErrConfigInvalidKeys, "keys.dir must not be empty")
	}

	return validateLoggingConfig(&cfg.Logging)
}

// validateCryptoConfig checks the scheme and encoding names.
func validateCryptoConfig(cfg *CryptoConfig) error {
	schemes := []string{constants.SchemeNameBlake3, constants.SchemeNameEd25519}
	if !slices.Contains(schemes, cfg.Scheme) {
		return errors.Wrapf(errors.ErrConfigInvalidCrypto,
			"crypto.scheme must be one of %s, got %q", strings.Join(schemes, ", "), cfg.Scheme)
	}

	encodings := []string{constants.EncodingNameBase64URL, constants.EncodingNameBase58}
	if !slices.Contains(encodings, cfg.Encoding) {
		return errors.Wrapf(errors.ErrConfigInvalidCrypto,
			"crypto.encoding must be one of %s, got %q", strings.Join(encodings, ", "), cfg.Encoding)
	}

	return nil
}

// validateLoggingConfig checks rotation settings.
func validateLoggingConfig(cfg *LoggingConfig) error {
	if cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_backups cannot be negative, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_age_days cannot be negative, got %d", cfg.MaxAgeDays)
	}
	return nil
}
