package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Keys & Signatures
	// ===================
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key file is too short for the selected scheme.",
			Action:  "Regenerate the key with 'textsign text generate' and check the --format flag.",
		},
	},
	{
		err: ErrSignatureLength,
		info: ErrorInfo{
			Message: "The signature has the wrong length for the selected scheme.",
			Action:  "Check that --format matches the scheme the signature was produced with.",
		},
	},
	{
		err: ErrTransportDecode,
		info: ErrorInfo{
			Message: "The signature text could not be decoded.",
			Action:  "Pass the signature exactly as printed by 'textsign text sign' and check --encoding.",
		},
	},
	{
		err: ErrCryptoOperation,
		info: ErrorInfo{
			Message: "The key bytes are not a valid key for the selected scheme.",
			Action:  "Make sure the public key file was produced by 'textsign text generate --format ed25519'.",
		},
	},
	{
		err: ErrKeyKindMismatch,
		info: ErrorInfo{
			Message: "The key is the wrong kind for this operation.",
			Action:  "Sign with the private key (.sk) and verify with the public key (.pk).",
		},
	},
	{
		err: ErrSignatureMismatch,
		info: ErrorInfo{
			Message: "Signature verification failed.",
			Action:  "",
		},
	},
	{
		err: ErrStreamRead,
		info: ErrorInfo{
			Message: "Could not read the input or key source.",
			Action:  "Check that the path exists and is readable, or use '-' for standard input.",
		},
	},
	{
		err: ErrKeyExists,
		info: ErrorInfo{
			Message: "A key file already exists at the output location.",
			Action:  "Use --force to overwrite it or choose another directory with --dir.",
		},
	},

	// ===================
	// Selection
	// ===================
	{
		err: ErrUnknownScheme,
		info: ErrorInfo{
			Message: "Unknown signing scheme.",
			Action:  "Use one of: blake3, ed25519.",
		},
	},
	{
		err: ErrUnknownEncoding,
		info: ErrorInfo{
			Message: "Unknown signature encoding.",
			Action:  "Use one of: base64url, base58.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
			Action:  "",
		},
	},
	{
		err: ErrConfigInvalidCrypto,
		info: ErrorInfo{
			Message: "Invalid crypto configuration.",
			Action:  "Check the crypto section of your config file or TEXTSIGN_CRYPTO_* variables.",
		},
	},
	{
		err: ErrConfigInvalidKeys,
		info: ErrorInfo{
			Message: "Invalid keys configuration.",
			Action:  "Check the keys section of your config file.",
		},
	},
	{
		err: ErrConfigInvalidLogging,
		info: ErrorInfo{
			Message: "Invalid logging configuration.",
			Action:  "Check the logging section of your config file.",
		},
	},

	// ===================
	// User Input
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported output format.",
			Action:  "Check the command help for supported formats.",
		},
	},
	{
		err: ErrKeyDirLocked,
		info: ErrorInfo{
			Message: "Another textsign process is writing keys into this directory.",
			Action:  "Wait for it to finish and try again.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but the session is not interactive.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
			Action:  "",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "A value is outside the allowed range.",
			Action:  "Check the command help for valid ranges.",
		},
	},
	{
		err: ErrNoCharacterClasses,
		info: ErrorInfo{
			Message: "All password character classes are disabled.",
			Action:  "Enable at least one of upper, lower, number or symbol characters.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
