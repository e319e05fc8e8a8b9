package crypto

import (
	"crypto/subtle"
	"io"

	"lukechampine.com/blake3"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// generateBlake3 draws a 32-byte MAC key straight from random.
func generateBlake3(random io.Reader) ([]KeyMaterial, error) {
	km := KeyMaterial{kind: KindSymmetric}
	if _, err := io.ReadFull(random, km.key[:]); err != nil {
		return nil, errors.Wrap(err, "failed to draw random blake3 key")
	}
	return []KeyMaterial{km}, nil
}

// blake3MAC hashes r incrementally under key. The digest is identical to a
// one-shot keyed hash over the full content.
func blake3MAC(key *[constants.KeySize]byte, r io.Reader) ([]byte, int64, error) {
	h := blake3.New(constants.Blake3SignatureSize, key[:])
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, n, errors.Mark(errors.ErrStreamRead, err)
	}
	return h.Sum(nil), n, nil
}

// blake3Verify recomputes the MAC and compares it in constant time.
func blake3Verify(key *[constants.KeySize]byte, r io.Reader, signature []byte) (bool, int64, error) {
	if len(signature) != constants.Blake3SignatureSize {
		return false, 0, errors.Wrapf(errors.ErrSignatureLength,
			"blake3 expects %d bytes, got %d", constants.Blake3SignatureSize, len(signature))
	}
	mac, n, err := blake3MAC(key, r)
	if err != nil {
		return false, n, err
	}
	return subtle.ConstantTimeCompare(mac, signature) == 1, n, nil
}
