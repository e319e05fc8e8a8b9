// Package crypto is the textsign signing engine.
//
// It puts a BLAKE3 keyed-hash MAC and Ed25519 signatures behind one contract:
// resolve a Scheme, load or generate KeyMaterial, then Sign or Verify a byte
// stream. Each call is independent and the package holds no mutable state.
//
// Verification reports a mismatch as (false, nil). Errors are reserved for
// problems that prevent a comparison: short keys, wrong signature lengths,
// invalid curve points and read failures.
package crypto

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/textsign/internal/errors"
)

// Signer produces signatures over byte streams.
// Implementations must be deterministic: signing the same input twice
// produces the same signature.
type Signer interface {
	// Sign reads r to completion and returns its signature.
	Sign(ctx context.Context, r io.Reader) ([]byte, error)
}

// Verifier checks signatures over byte streams.
type Verifier interface {
	// Verify reads r to completion and reports whether signature is valid for it.
	// A mismatch returns false with a nil error.
	Verify(ctx context.Context, r io.Reader, signature []byte) (bool, error)
}

// Sign signs the content of r with key.
// key must be a blake3 key or an ed25519 signing key.
func Sign(ctx context.Context, key KeyMaterial, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		sig []byte
		n   int64
		err error
	)
	switch key.kind {
	case KindSymmetric:
		sig, n, err = blake3MAC(&key.key, r)
	case KindEd25519Signing:
		sig, n, err = ed25519Sign(&key.key, r)
	case KindEd25519Verifying:
		return nil, errors.Wrap(errors.ErrKeyKindMismatch, "cannot sign with an ed25519 verifying key")
	default:
		return nil, errors.Wrapf(errors.ErrUnknownScheme, "key %s", key.kind)
	}
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", key.Scheme().String()).
		Int64("input_bytes", n).
		Int("signature_bytes", len(sig)).
		Msg("input signed")
	return sig, nil
}

// Verify checks signature against the content of r under key.
// key must be a blake3 key or an ed25519 verifying key. A signature whose
// length does not match the scheme fails with ErrSignatureLength before any
// input is read.
func Verify(ctx context.Context, key KeyMaterial, r io.Reader, signature []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var (
		ok  bool
		n   int64
		err error
	)
	switch key.kind {
	case KindSymmetric:
		ok, n, err = blake3Verify(&key.key, r, signature)
	case KindEd25519Verifying:
		ok, n, err = ed25519Verify(&key.key, r, signature)
	case KindEd25519Signing:
		return false, errors.Wrap(errors.ErrKeyKindMismatch, "cannot verify with an ed25519 signing key")
	default:
		return false, errors.Wrapf(errors.ErrUnknownScheme, "key %s", key.kind)
	}
	if err != nil {
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", key.Scheme().String()).
		Int64("input_bytes", n).
		Bool("valid", ok).
		Msg("signature checked")
	return ok, nil
}

// keySigner binds KeyMaterial to the Signer and Verifier interfaces.
type keySigner struct {
	key KeyMaterial
}

// NewSigner returns a Signer bound to key.
// key must be a blake3 key or an ed25519 signing key.
func NewSigner(key KeyMaterial) (Signer, error) {
	switch key.kind {
	case KindSymmetric, KindEd25519Signing:
		return keySigner{key: key}, nil
	case KindEd25519Verifying:
		return nil, errors.Wrap(errors.ErrKeyKindMismatch, "cannot sign with an ed25519 verifying key")
	default:
		return nil, errors.Wrapf(errors.ErrUnknownScheme, "key %s", key.kind)
	}
}

// NewVerifier returns a Verifier bound to key.
// key must be a blake3 key or an ed25519 verifying key.
func NewVerifier(key KeyMaterial) (Verifier, error) {
	switch key.kind {
	case KindSymmetric, KindEd25519Verifying:
		return keySigner{key: key}, nil
	case KindEd25519Signing:
		return nil, errors.Wrap(errors.ErrKeyKindMismatch, "cannot verify with an ed25519 signing key")
	default:
		return nil, errors.Wrapf(errors.ErrUnknownScheme, "key %s", key.kind)
	}
}

// Sign implements Signer.
func (s keySigner) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	return Sign(ctx, s.key, r)
}

// Verify implements Verifier.
func (s keySigner) Verify(ctx context.Context, r io.Reader, signature []byte) (bool, error) {
	return Verify(ctx, s.key, r, signature)
}
