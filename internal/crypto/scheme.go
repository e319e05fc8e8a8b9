package crypto

import (
	"fmt"
	"strings"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Scheme selects a signing algorithm family. The set is closed: adding a
// scheme means adding a constant here and an arm to each dispatch switch.
type Scheme int

const (
	// SchemeBlake3 is the BLAKE3 keyed-hash MAC.
	SchemeBlake3 Scheme = iota + 1

	// SchemeEd25519 is the Ed25519 asymmetric signature scheme.
	SchemeEd25519

	// SchemeSymmetricCipher is reserved for an encrypt/decrypt extension.
	// It has no implementation and Resolve rejects it.
	SchemeSymmetricCipher
)

// ParseScheme converts a scheme name ("blake3", "ed25519") into a Scheme.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.SchemeNameBlake3:
		return SchemeBlake3, nil
	case constants.SchemeNameEd25519:
		return SchemeEd25519, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnknownScheme, "%q", name)
	}
}

// String returns the scheme's command-line name.
func (s Scheme) String() string {
	switch s {
	case SchemeBlake3:
		return constants.SchemeNameBlake3
	case SchemeEd25519:
		return constants.SchemeNameEd25519
	case SchemeSymmetricCipher:
		return "symmetric-cipher"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Schemes returns every resolvable scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{SchemeBlake3, SchemeEd25519}
}

// SchemeNames returns the command-line names of every resolvable scheme.
func SchemeNames() []string {
	schemes := Schemes()
	names := make([]string, 0, len(schemes))
	for _, s := range schemes {
		names = append(names, s.String())
	}
	return names
}

// KeyArtifact describes one persisted output of key generation.
type KeyArtifact struct {
	// Kind is the kind of key stored in the artifact.
	Kind KeyKind
	// FileName is the conventional file name for the artifact.
	FileName string
}

// Capabilities describes what a scheme needs and produces.
type Capabilities struct {
	// Scheme is the resolved scheme.
	Scheme Scheme
	// KeySize is the length of every key of this scheme, in bytes.
	KeySize int
	// SignatureSize is the exact length of a signature, in bytes.
	SignatureSize int
	// SigningKind is the key kind accepted by Sign.
	SigningKind KeyKind
	// VerifyingKind is the key kind accepted by Verify.
	VerifyingKind KeyKind
	// Artifacts lists generated keys in the order Generate returns them.
	Artifacts []KeyArtifact
}

// Resolve returns the capability descriptor for a scheme.
// Only tags outside the implemented set produce an error.
func Resolve(s Scheme) (Capabilities, error) {
	switch s {
	case SchemeBlake3:
		return Capabilities{
			Scheme:        s,
			KeySize:       constants.KeySize,
			SignatureSize: constants.Blake3SignatureSize,
			SigningKind:   KindSymmetric,
			VerifyingKind: KindSymmetric,
			Artifacts: []KeyArtifact{
				{Kind: KindSymmetric, FileName: constants.Blake3KeyFileName},
			},
		}, nil
	case SchemeEd25519:
		return Capabilities{
			Scheme:        s,
			KeySize:       constants.KeySize,
			SignatureSize: constants.Ed25519SignatureSize,
			SigningKind:   KindEd25519Signing,
			VerifyingKind: KindEd25519Verifying,
			Artifacts: []KeyArtifact{
				{Kind: KindEd25519Signing, FileName: constants.Ed25519SigningKeyFileName},
				{Kind: KindEd25519Verifying, FileName: constants.Ed25519VerifyingKeyFileName},
			},
		}, nil
	default:
		return Capabilities{}, errors.Wrapf(errors.ErrUnknownScheme, "%s", s)
	}
}
