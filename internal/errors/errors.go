// Package errors provides centralized error handling for textsign.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for the signing engine.
// Verification mismatches are not errors; these cover failures that prevent
// a comparison from being attempted at all.
var (
	// ErrKeyFormat indicates the key byte source is shorter than the
	// scheme's required key length.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrSignatureLength indicates the supplied signature does not match the
	// scheme's fixed signature length.
	ErrSignatureLength = errors.New("invalid signature length")

	// ErrStreamRead indicates the underlying input source failed
	// (missing file, permission denied, read error).
	ErrStreamRead = errors.New("stream read failed")

	// ErrTransportDecode indicates the text signature is not valid
	// transport-encoded data.
	ErrTransportDecode = errors.New("transport decode failed")

	// ErrCryptoOperation indicates key or signature bytes have the right length
	// but are semantically invalid, such as a malformed curve point.
	ErrCryptoOperation = errors.New("crypto operation failed")

	// ErrUnknownScheme indicates the scheme tag is not one the engine implements.
	ErrUnknownScheme = errors.New("unknown signing scheme")

	// ErrUnknownEncoding indicates the transport encoding name is not recognized.
	ErrUnknownEncoding = errors.New("unknown transport encoding")

	// ErrKeyKindMismatch indicates key material of the wrong kind was passed
	// to an operation (for example a verifying key to a signer).
	ErrKeyKindMismatch = errors.New("key kind mismatch")
)

// Sentinel errors for the CLI and supporting layers.
var (
	// ErrSignatureMismatch indicates a signature was checked and found invalid.
	// The engine reports this as a false result; the CLI converts it into an
	// error so the process exits non-zero.
	ErrSignatureMismatch = errors.New("signature does not match")

	// ErrKeyExists indicates a key file already exists at the target path.
	ErrKeyExists = errors.New("key file already exists")

	// ErrKeyDirLocked indicates another process is writing keys into the
	// same directory.
	ErrKeyDirLocked = errors.New("key directory is locked")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidCrypto indicates an invalid crypto configuration value.
	ErrConfigInvalidCrypto = errors.New("invalid crypto configuration")

	// ErrConfigInvalidKeys indicates an invalid keys configuration value.
	ErrConfigInvalidKeys = errors.New("invalid keys configuration")

	// ErrConfigInvalidLogging indicates an invalid logging configuration value.
	ErrConfigInvalidLogging = errors.New("invalid logging configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrUnsupportedOutputFormat indicates that an unsupported output format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrNoCharacterClasses indicates every password character class was disabled.
	ErrNoCharacterClasses = errors.New("no character classes enabled")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
