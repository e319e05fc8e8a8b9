package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
)

// signWith signs message with the key file at path and returns the
// base64url signature.
func signWith(t *testing.T, scheme, path, message string) string {
	t.Helper()

	var out bytes.Buffer
	err := runTextSign(context.Background(), strings.NewReader(message), &out, OutputText, &textSignOptions{
		textSchemeFlags: textSchemeFlags{Scheme: scheme},
		Input:           "-",
		KeyPath:         path,
	})
	require.NoError(t, err)
	return strings.TrimSpace(out.String())
}

func TestRunTextVerify_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme    crypto.Scheme
		signIdx   int
		verifyIdx int
	}{
		{crypto.SchemeBlake3, 0, 0},
		{crypto.SchemeEd25519, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.scheme.String(), func(t *testing.T) {
			t.Parallel()

			paths := generateKeyFiles(t, t.TempDir(), tc.scheme)
			sig := signWith(t, tc.scheme.String(), paths[tc.signIdx], "hello world")

			var out bytes.Buffer
			err := runTextVerify(context.Background(), strings.NewReader("hello world"), &out, OutputText, &textVerifyOptions{
				textSchemeFlags: textSchemeFlags{Scheme: tc.scheme.String()},
				Input:           "-",
				KeyPath:         paths[tc.verifyIdx],
				Signature:       sig,
			})
			require.NoError(t, err)
			assert.Contains(t, out.String(), "Signature verified")
		})
	}
}

func TestRunTextVerify_MismatchExitsNonZero(t *testing.T) {
	t.Parallel()

	paths := generateKeyFiles(t, t.TempDir(), crypto.SchemeEd25519)
	other := generateKeyFiles(t, t.TempDir(), crypto.SchemeEd25519)
	sig := signWith(t, "ed25519", paths[0], "hello world")

	var out bytes.Buffer
	err := runTextVerify(context.Background(), strings.NewReader("hello world"), &out, OutputJSON, &textVerifyOptions{
		textSchemeFlags: textSchemeFlags{Scheme: "ed25519"},
		Input:           "-",
		KeyPath:         other[1],
		Signature:       sig,
	})
	require.ErrorIs(t, err, errors.ErrSignatureMismatch)
	assert.Equal(t, ExitError, ExitCodeForError(err))

	var result textVerifyResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, textVerifyResult{Scheme: "ed25519", Valid: false}, result)
}

func TestRunTextVerify_TamperedMessage(t *testing.T) {
	t.Parallel()

	paths := generateKeyFiles(t, t.TempDir(), crypto.SchemeBlake3)
	sig := signWith(t, "blake3", paths[0], "hello world")

	err := runTextVerify(context.Background(), strings.NewReader("hello world!"), &bytes.Buffer{}, OutputText, &textVerifyOptions{
		textSchemeFlags: textSchemeFlags{Scheme: "blake3"},
		Input:           "-",
		KeyPath:         paths[0],
		Signature:       sig,
	})
	require.ErrorIs(t, err, errors.ErrSignatureMismatch)
}

func TestRunTextVerify_BadSignatureText(t *testing.T) {
	t.Parallel()

	paths := generateKeyFiles(t, t.TempDir(), crypto.SchemeBlake3)

	tests := []struct {
		name      string
		signature string
		want      error
	}{
		{"not base64url", "ab+/", errors.ErrTransportDecode},
		{"padded", "YQ==", errors.ErrTransportDecode},
		{"ten bytes", crypto.Encode(make([]byte, 10)), errors.ErrSignatureLength},
		{"ed25519 length for blake3", crypto.Encode(make([]byte, 64)), errors.ErrSignatureLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := runTextVerify(context.Background(), strings.NewReader("hello"), &bytes.Buffer{}, OutputText, &textVerifyOptions{
				textSchemeFlags: textSchemeFlags{Scheme: "blake3"},
				Input:           "-",
				KeyPath:         paths[0],
				Signature:       tc.signature,
			})
			require.ErrorIs(t, err, tc.want)
			assert.NotErrorIs(t, err, errors.ErrSignatureMismatch)
		})
	}
}

func TestRunTextVerify_SigningKeyRejected(t *testing.T) {
	t.Parallel()

	paths := generateKeyFiles(t, t.TempDir(), crypto.SchemeEd25519)
	sig := signWith(t, "ed25519", paths[0], "hello")

	// The seed either fails the point check or verifies as a different key.
	err := runTextVerify(context.Background(), strings.NewReader("hello"), &bytes.Buffer{}, OutputText, &textVerifyOptions{
		textSchemeFlags: textSchemeFlags{Scheme: "ed25519"},
		Input:           "-",
		KeyPath:         paths[0],
		Signature:       sig,
	})
	require.Error(t, err)
}

func TestTextCmd_SignThenVerifyEndToEnd(t *testing.T) {
	home := isolateEnv(t)
	paths := generateKeyFiles(t, home, crypto.SchemeEd25519)

	stdout, _, err := executeRoot(t, "end to end", "text", "sign", "-f", "ed25519", "-k", paths[0])
	require.NoError(t, err)
	sig := strings.TrimSpace(stdout)

	stdout, _, err = executeRoot(t, "end to end", "text", "verify", "-f", "ed25519", "-k", paths[1], "-S", sig)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signature verified")

	_, _, err = executeRoot(t, "end to end?", "text", "verify", "-f", "ed25519", "-k", paths[1], "-S", sig)
	require.ErrorIs(t, err, errors.ErrSignatureMismatch)
}

func TestTextCmd_SchemeFromEnvironment(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv("TEXTSIGN_CRYPTO_SCHEME", "ed25519")
	paths := generateKeyFiles(t, home, crypto.SchemeEd25519)

	stdout, _, err := executeRoot(t, "hello", "-o", "json", "text", "sign", "-k", paths[0])
	require.NoError(t, err)

	var result textSignResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "ed25519", result.Scheme)
	assert.Equal(t, "base64url", result.Encoding)
}
