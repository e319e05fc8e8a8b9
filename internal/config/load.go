package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// newViperInstance creates a new Viper instance with standard textsign configuration.
// This includes environment variable prefix (TEXTSIGN_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TEXTSIGN_* prefix)
//  2. Project config (.textsign/config.yaml)
//  3. Global config (~/.textsign/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("crypto.scheme", cfg.Crypto.Scheme).
		Str("crypto.encoding", cfg.Crypto.Encoding).
		Str("keys.dir", cfg.Keys.Dir).
		Bool("logging.file", cfg.Logging.File).
		Msg("configuration loaded")

	return cfg, nil
}

// loadGlobalConfig attempts to load the global config file (~/.textsign/config.yaml).
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil || !fileExists(globalConfigPath) {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.textsign/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	return ApplyOverrides(cfg, overrides)
}

// ApplyOverrides returns a copy of cfg with the non-zero values of overrides
// applied, validated as a whole. cfg itself is not modified.
func ApplyOverrides(cfg, overrides *Config) (*Config, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}

	merged := *cfg
	if overrides != nil {
		applyOverrides(&merged, overrides)
	}

	if err := Validate(&merged); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return &merged, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// setDefaults configures all default values on the Viper instance.
// Every key needs a default so AutomaticEnv can resolve TEXTSIGN_* for it.
// IMPORTANT: Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("crypto.scheme", d.Crypto.Scheme)
	v.SetDefault("crypto.encoding", d.Crypto.Encoding)

	v.SetDefault("keys.dir", d.Keys.Dir)

	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.path", d.Logging.Path)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.compress", d.Logging.Compress)
}

// applyOverrides merges non-zero override values into the config.
//
// Boolean fields cannot be overridden to false here because the zero value
// is indistinguishable from "not set". The CLI handles those through
// cmd.Flags().Changed.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Crypto.Scheme != "" {
		cfg.Crypto.Scheme = overrides.Crypto.Scheme
	}
	if overrides.Crypto.Encoding != "" {
		cfg.Crypto.Encoding = overrides.Crypto.Encoding
	}
	if overrides.Keys.Dir != "" {
		cfg.Keys.Dir = overrides.Keys.Dir
	}
	if overrides.Logging.Path != "" {
		cfg.Logging.Path = overrides.Logging.Path
	}
	if overrides.Logging.MaxSizeMB != 0 {
		cfg.Logging.MaxSizeMB = overrides.Logging.MaxSizeMB
	}
	if overrides.Logging.MaxBackups != 0 {
		cfg.Logging.MaxBackups = overrides.Logging.MaxBackups
	}
	if overrides.Logging.MaxAgeDays != 0 {
		cfg.Logging.MaxAgeDays = overrides.Logging.MaxAgeDays
	}
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// Environment variables always arrive as strings, so numeric and boolean
// fields are converted before decoding.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			normalizeNameHook(),
			mapstructure.StringToBasicTypeHookFunc(),
		),
	)
}

// normalizeNameHook lowercases and trims scheme and encoding names so
// "ED25519 " in a config file means the same as "ed25519".
func normalizeNameHook() mapstructure.DecodeHookFuncType {
	return func(_, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(CryptoConfig{}) {
			return data, nil
		}
		m, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}
		for _, k := range []string{"scheme", "encoding"} {
			if s, ok := m[k].(string); ok {
				m[k] = strings.ToLower(strings.TrimSpace(s))
			}
		}
		return m, nil
	}
}
