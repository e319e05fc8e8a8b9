package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config files leak into the test.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_GlobalThenProject(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(home, ".textsign", "config.yaml"), `
crypto:
  scheme: ed25519
  encoding: base58
keys:
  dir: /global/keys
`)
	writeFile(t, filepath.Join(wd, ".textsign", "config.yaml"), `
crypto:
  encoding: base64url
`)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ed25519", cfg.Crypto.Scheme, "global value should persist")
	assert.Equal(t, "base64url", cfg.Crypto.Encoding, "project should override global")
	assert.Equal(t, "/global/keys", cfg.Keys.Dir)
}

func TestLoad_EnvVarOverridesConfigFile(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, ".textsign", "config.yaml"), `
crypto:
  scheme: blake3
logging:
  max_size_mb: 20
`)
	t.Setenv("TEXTSIGN_CRYPTO_SCHEME", "ed25519")
	t.Setenv("TEXTSIGN_LOGGING_MAX_SIZE_MB", "50")
	t.Setenv("TEXTSIGN_LOGGING_FILE", "false")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ed25519", cfg.Crypto.Scheme)
	assert.Equal(t, 50, cfg.Logging.MaxSizeMB)
	assert.False(t, cfg.Logging.File)
}

func TestLoad_NormalizesNames(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, ".textsign", "config.yaml"), `
crypto:
  scheme: " ED25519 "
  encoding: Base58
`)

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ed25519", cfg.Crypto.Scheme)
	assert.Equal(t, "base58", cfg.Crypto.Encoding)
}

func TestLoad_InvalidConfig(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, ".textsign", "config.yaml"), `
crypto:
  scheme: rsa
`)

	_, err := Load(context.Background())
	require.ErrorIs(t, err, errors.ErrConfigInvalidCrypto)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, ".textsign", "config.yaml"), "crypto: [unclosed\n")

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestLoadFromPaths_ProjectConfigOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	globalConfig := filepath.Join(dir, "global.yaml")
	projectConfig := filepath.Join(dir, "project.yaml")
	writeFile(t, globalConfig, `
crypto:
  scheme: ed25519
logging:
  max_backups: 7
`)
	writeFile(t, projectConfig, `
crypto:
  scheme: blake3
`)

	cfg, err := LoadFromPaths(context.Background(), projectConfig, globalConfig)
	require.NoError(t, err)

	assert.Equal(t, "blake3", cfg.Crypto.Scheme)
	assert.Equal(t, 7, cfg.Logging.MaxBackups)
}

func TestLoadFromPaths_MissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPaths(context.Background(),
		filepath.Join(dir, "missing-project.yaml"),
		filepath.Join(dir, "missing-global.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Crypto, cfg.Crypto)
}

func TestLoadWithOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(context.Background(), &Config{
		Crypto: CryptoConfig{Encoding: "base58"},
		Keys:   KeysConfig{Dir: "out"},
	})
	require.NoError(t, err)

	assert.Equal(t, "blake3", cfg.Crypto.Scheme, "unset override keeps the loaded value")
	assert.Equal(t, "base58", cfg.Crypto.Encoding)
	assert.Equal(t, "out", cfg.Keys.Dir)
}

func TestLoadWithOverrides_InvalidOverride(t *testing.T) {
	isolate(t)

	_, err := LoadWithOverrides(context.Background(), &Config{
		Crypto: CryptoConfig{Scheme: "rsa"},
	})
	require.ErrorIs(t, err, errors.ErrConfigInvalidCrypto)
}

func TestLoadWithOverrides_Nil(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyOverrides_DoesNotMutateInput(t *testing.T) {
	base := DefaultConfig()

	merged, err := ApplyOverrides(base, &Config{Crypto: CryptoConfig{Scheme: "ed25519"}})
	require.NoError(t, err)

	assert.Equal(t, "ed25519", merged.Crypto.Scheme)
	assert.Equal(t, "blake3", base.Crypto.Scheme)
}

func TestApplyOverrides_NilConfig(t *testing.T) {
	_, err := ApplyOverrides(nil, &Config{})
	require.ErrorIs(t, err, errors.ErrConfigNil)
}
