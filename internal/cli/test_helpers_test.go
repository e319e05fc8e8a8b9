package cli

// This file contains test utilities for the CLI tests.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/keystore"
)

// isolateEnv points HOME and the working directory at fresh temp dirs so
// no real config or log files are read or written. Tests using it cannot
// run in parallel.
func isolateEnv(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
	return home
}

// executeRoot runs the root command with args and stdin and returns what it
// wrote to stdout and stderr.
func executeRoot(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(CloseLogFile)

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// generateKeyFiles writes a fresh key set for scheme into dir and returns
// the paths in artifact order.
func generateKeyFiles(t *testing.T, dir string, scheme crypto.Scheme) []string {
	t.Helper()

	caps, err := crypto.Resolve(scheme)
	require.NoError(t, err)
	keys, err := crypto.Generate(context.Background(), scheme, nil)
	require.NoError(t, err)

	paths, err := keystore.New(dir).Write(context.Background(), caps, keys, false)
	require.NoError(t, err)
	return paths
}

// writeFile writes content into dir/name and returns the path.
func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// stubConfirmOverwrite replaces the overwrite prompt for the duration of
// the test and counts how often it was shown.
func stubConfirmOverwrite(t *testing.T, answer bool, err error) *int {
	t.Helper()
	calls := 0
	original := confirmOverwrite
	confirmOverwrite = func([]string) (bool, error) {
		calls++
		return answer, err
	}
	t.Cleanup(func() { confirmOverwrite = original })
	return &calls
}
