package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// KeyKind identifies which variant a KeyMaterial holds.
type KeyKind int

const (
	// KindSymmetric is a shared BLAKE3 MAC key.
	KindSymmetric KeyKind = iota + 1

	// KindEd25519Signing is an Ed25519 private seed.
	KindEd25519Signing

	// KindEd25519Verifying is an Ed25519 public key.
	KindEd25519Verifying
)

// String returns a short human-readable name for the kind.
func (k KeyKind) String() string {
	switch k {
	case KindSymmetric:
		return "blake3 key"
	case KindEd25519Signing:
		return "ed25519 signing key"
	case KindEd25519Verifying:
		return "ed25519 verifying key"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Scheme returns the scheme the kind belongs to, or 0 for an unknown kind.
func (k KeyKind) Scheme() Scheme {
	switch k {
	case KindSymmetric:
		return SchemeBlake3
	case KindEd25519Signing, KindEd25519Verifying:
		return SchemeEd25519
	default:
		return 0
	}
}

// KeyMaterial is an immutable, fixed-size key of one KeyKind.
// The zero value is not a valid key. Values are safe to share between
// goroutines; nothing mutates them after construction.
type KeyMaterial struct {
	kind KeyKind
	key  [constants.KeySize]byte
}

// Kind returns the key's variant.
func (k KeyMaterial) Kind() KeyKind {
	return k.kind
}

// Scheme returns the scheme the key belongs to.
func (k KeyMaterial) Scheme() Scheme {
	return k.kind.Scheme()
}

// Bytes returns a copy of the raw key bytes.
func (k KeyMaterial) Bytes() []byte {
	out := make([]byte, constants.KeySize)
	copy(out, k.key[:])
	return out
}

// IsZero reports whether k is the zero value.
func (k KeyMaterial) IsZero() bool {
	return k.kind == 0
}

// LoadKey builds key material of the given kind from raw bytes.
//
// Only the first 32 bytes are used; anything after them is ignored. This
// leniency matches the key files in the wild, which sometimes carry a
// trailing newline. A buffer shorter than 32 bytes fails with ErrKeyFormat.
// Verifying keys must also decode to a curve point, otherwise ErrCryptoOperation.
func LoadKey(kind KeyKind, data []byte) (KeyMaterial, error) {
	if kind.Scheme() == 0 {
		return KeyMaterial{}, errors.Wrapf(errors.ErrUnknownScheme, "key %s", kind)
	}
	if len(data) < constants.KeySize {
		return KeyMaterial{}, errors.Wrapf(errors.ErrKeyFormat,
			"%s needs %d bytes, got %d", kind, constants.KeySize, len(data))
	}

	km := KeyMaterial{kind: kind}
	copy(km.key[:], data[:constants.KeySize])

	if kind == KindEd25519Verifying {
		if err := checkEd25519Point(&km.key); err != nil {
			return KeyMaterial{}, err
		}
	}
	return km, nil
}

// LoadSigningKey loads the key a scheme signs with: the shared key for
// blake3, the private seed for ed25519.
func LoadSigningKey(s Scheme, data []byte) (KeyMaterial, error) {
	caps, err := Resolve(s)
	if err != nil {
		return KeyMaterial{}, err
	}
	return LoadKey(caps.SigningKind, data)
}

// LoadVerifyingKey loads the key a scheme verifies with: the shared key for
// blake3, the public key for ed25519.
func LoadVerifyingKey(s Scheme, data []byte) (KeyMaterial, error) {
	caps, err := Resolve(s)
	if err != nil {
		return KeyMaterial{}, err
	}
	return LoadKey(caps.VerifyingKind, data)
}

// Generate creates fresh key material for a scheme, drawing randomness from
// random. A nil random uses crypto/rand.Reader.
//
// The returned slice follows Capabilities.Artifacts order: one shared key for
// blake3; the private seed then the public key for ed25519.
func Generate(ctx context.Context, s Scheme, random io.Reader) ([]KeyMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}

	var (
		keys []KeyMaterial
		err  error
	)
	switch s {
	case SchemeBlake3:
		keys, err = generateBlake3(random)
	case SchemeEd25519:
		keys, err = generateEd25519(random)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownScheme, "%s", s)
	}
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", s.String()).
		Int("artifacts", len(keys)).
		Msg("generated key material")
	return keys, nil
}
