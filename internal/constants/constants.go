// Package constants provides centralized constant values used throughout textsign.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Key and signature sizes, in bytes.
const (
	// KeySize is the length of every key variant: BLAKE3 MAC keys,
	// Ed25519 private seeds and Ed25519 public keys.
	KeySize = 32

	// Blake3SignatureSize is the length of a BLAKE3 keyed-hash digest.
	Blake3SignatureSize = 32

	// Ed25519SignatureSize is the length of an Ed25519 signature (R || S).
	Ed25519SignatureSize = 64
)

// Scheme and encoding names accepted on the command line and in config.
const (
	// SchemeNameBlake3 selects the BLAKE3 keyed-hash MAC.
	SchemeNameBlake3 = "blake3"

	// SchemeNameEd25519 selects Ed25519 signatures.
	SchemeNameEd25519 = "ed25519"

	// EncodingNameBase64URL selects unpadded URL-safe base64 transport encoding.
	EncodingNameBase64URL = "base64url"

	// EncodingNameBase58 selects base58 (Bitcoin alphabet) transport encoding.
	EncodingNameBase58 = "base58"

	// DefaultScheme is the scheme used when none is configured.
	DefaultScheme = SchemeNameBlake3

	// DefaultEncoding is the transport encoding used when none is configured.
	DefaultEncoding = EncodingNameBase64URL
)

// Key file names written by 'text generate'.
const (
	// Blake3KeyFileName holds the raw 32-byte BLAKE3 key.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519SigningKeyFileName holds the raw 32-byte Ed25519 seed.
	Ed25519SigningKeyFileName = "ed25519.sk"

	// Ed25519VerifyingKeyFileName holds the raw 32-byte Ed25519 public key.
	Ed25519VerifyingKeyFileName = "ed25519.pk"

	// KeyLockFileName is the advisory lock file held while keys are written.
	KeyLockFileName = ".textsign.lock"

	// KeyTempFilePattern names key files staged before being renamed into place.
	KeyTempFilePattern = ".textsign-key-*.tmp"
)

// File permissions for key storage.
const (
	// KeyDirPerm is the permission mode for directories created to hold keys.
	KeyDirPerm = 0o700

	// KeyFilePerm is the permission mode for key files.
	KeyFilePerm = 0o600
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// Password generation defaults.
const (
	// DefaultPasswordLength is the length used by 'genpass' when none is given.
	DefaultPasswordLength = 16

	// MaxPasswordLength caps 'genpass' output.
	MaxPasswordLength = 255
)
