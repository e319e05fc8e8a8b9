package cli

import (
	"context"
	"strings"

	"github.com/mrz1836/textsign/internal/config"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
)

// configContextKey is the context key for the loaded configuration.
type configContextKey struct{}

// withConfig returns a copy of ctx carrying cfg.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// configFromContext returns the configuration stored by the root command,
// or the built-in defaults when a command runs without it (as in tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configContextKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

// engineSettings is the scheme, encoding and key directory a command runs
// with after flags are layered over the configuration.
type engineSettings struct {
	Scheme   crypto.Scheme
	Encoding crypto.Encoding
	KeysDir  string
}

// resolveEngineSettings applies non-empty flag values over the configuration
// in ctx. Unknown names are reported as invalid input.
func resolveEngineSettings(ctx context.Context, schemeFlag, encodingFlag, dirFlag string) (engineSettings, error) {
	overrides := &config.Config{
		Crypto: config.CryptoConfig{
			Scheme:   normalizeName(schemeFlag),
			Encoding: normalizeName(encodingFlag),
		},
		Keys: config.KeysConfig{Dir: strings.TrimSpace(dirFlag)},
	}

	if overrides.Crypto.Scheme != "" {
		if _, err := crypto.ParseScheme(overrides.Crypto.Scheme); err != nil {
			return engineSettings{}, errors.NewExitCode2Error(err)
		}
	}
	if overrides.Crypto.Encoding != "" {
		if _, err := crypto.ParseEncoding(overrides.Crypto.Encoding); err != nil {
			return engineSettings{}, errors.NewExitCode2Error(err)
		}
	}

	cfg, err := config.ApplyOverrides(configFromContext(ctx), overrides)
	if err != nil {
		return engineSettings{}, err
	}

	scheme, err := crypto.ParseScheme(cfg.Crypto.Scheme)
	if err != nil {
		return engineSettings{}, err
	}
	encoding, err := crypto.ParseEncoding(cfg.Crypto.Encoding)
	if err != nil {
		return engineSettings{}, err
	}

	return engineSettings{Scheme: scheme, Encoding: encoding, KeysDir: cfg.Keys.Dir}, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
