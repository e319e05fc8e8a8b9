package crypto

import (
	"crypto/ed25519"
	"io"

	"filippo.io/edwards25519"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// generateEd25519 returns the private seed followed by the public key.
func generateEd25519(random io.Reader) ([]KeyMaterial, error) {
	pub, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ed25519 key pair")
	}

	signing := KeyMaterial{kind: KindEd25519Signing}
	copy(signing.key[:], priv.Seed())
	verifying := KeyMaterial{kind: KindEd25519Verifying}
	copy(verifying.key[:], pub)

	return []KeyMaterial{signing, verifying}, nil
}

// checkEd25519Point rejects public key bytes that are not a valid curve point.
func checkEd25519Point(pub *[constants.KeySize]byte) error {
	if _, err := new(edwards25519.Point).SetBytes(pub[:]); err != nil {
		return errors.Mark(errors.ErrCryptoOperation, err)
	}
	return nil
}

// ed25519Sign reads the whole message and signs it with the seed.
func ed25519Sign(seed *[constants.KeySize]byte, r io.Reader) ([]byte, int64, error) {
	msg, err := io.ReadAll(r)
	if err != nil {
		return nil, int64(len(msg)), errors.Mark(errors.ErrStreamRead, err)
	}
	priv := ed25519.NewKeyFromSeed(seed[:])
	return ed25519.Sign(priv, msg), int64(len(msg)), nil
}

// ed25519Verify checks the signature length before reading r, then verifies.
// A well-formed but wrong signature is a false result, not an error.
func ed25519Verify(pub *[constants.KeySize]byte, r io.Reader, signature []byte) (bool, int64, error) {
	if len(signature) != ed25519.SignatureSize {
		return false, 0, errors.Wrapf(errors.ErrSignatureLength,
			"ed25519 expects %d bytes, got %d", ed25519.SignatureSize, len(signature))
	}
	msg, err := io.ReadAll(r)
	if err != nil {
		return false, int64(len(msg)), errors.Mark(errors.ErrStreamRead, err)
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, signature), int64(len(msg)), nil
}
