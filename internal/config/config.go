// Package config provides configuration management for textsign with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TEXTSIGN_* prefix)
//  3. Project config (.textsign/config.yaml)
//  4. Global config (~/.textsign/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/crypto or other internal packages.
package config

// Config is the root configuration structure for textsign.
type Config struct {
	// Crypto selects the default signing scheme and signature encoding.
	Crypto CryptoConfig `yaml:"crypto" json:"crypto" mapstructure:"crypto"`

	// Keys contains settings for key file storage.
	Keys KeysConfig `yaml:"keys" json:"keys" mapstructure:"keys"`

	// Logging contains settings for the rotating log file.
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// KeysConfig contains settings for where generated keys are written.
type KeysConfig struct {
	// Dir is the directory `text generate` writes key files into.
	// Default: "." (the current directory)
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
}

// LoggingConfig controls the rotating log file under ~/.textsign/logs.
// Console logging is controlled by the --verbose and --quiet flags instead.
type LoggingConfig struct {
	// File enables the rotating JSON log file.
	// Default: true
	File bool `yaml:"file" json:"file" mapstructure:"file"`

	// Path overrides the log file location. Empty means
	// ~/.textsign/logs/textsign.log.
	Path string `yaml:"path" json:"path" mapstructure:"path"`

	// MaxSizeMB is the size in megabytes at which the log file rotates.
	MaxSizeMB int `yaml:"max_size_mb" json:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups" json:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `yaml:"max_age_days" json:"max_age_days" mapstructure:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" json:"compress" mapstructure:"compress"`
}
