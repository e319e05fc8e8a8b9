// Package logging provides logging utilities including sensitive data filtering.
// This package contains hooks and utilities for zerolog that help ensure
// key material and passwords are never written to log files.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// redaction pairs a pattern with its replacement template.
type redaction struct {
	pattern     *regexp.Regexp
	replacement string
}

// sensitivePatterns detects key material and secrets in log output.
// Signatures are public and deliberately not matched.
var sensitivePatterns = []redaction{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// JSON fields that carry key material or passwords. The field name is kept.
	{
		regexp.MustCompile(`"(key|seed|signing_key|private_key|secret_key|password|passphrase)"\s*:\s*"[^"]*"`),
		`"$1":"` + RedactedValue + `"`,
	},

	// key=value and key: value forms in free text.
	{
		regexp.MustCompile(`(?i)\b(seed|signing[_-]?key|private[_-]?key|secret[_-]?key|password|passphrase)\s*[:=]\s*["']?[^\s"',}]{8,}["']?`),
		`$1=` + RedactedValue,
	},

	// Raw 32-byte keys dumped as hex. Anything 64 hex digits or longer.
	{
		regexp.MustCompile(`\b[0-9a-fA-F]{64,}\b`),
		RedactedValue,
	},

	// PEM private key headers.
	{
		regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
		RedactedValue,
	},
}

// sensitiveFieldNames contains field names that should always have their values redacted.
// Case-insensitive matching is performed.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"seed",
	"signing_key",
	"signingkey",
	"signing-key",
	"private_key",
	"privatekey",
	"private-key",
	"secret_key",
	"secretkey",
	"mac_key",
	"password",
	"passphrase",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// looks like it carries key material.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
// zerolog does not allow a hook to rewrite the message, so the hook marks the
// event and FilteringWriter does the actual redaction on the way out.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData checks if a string contains any sensitive data patterns.
func ContainsSensitiveData(s string) bool {
	for _, r := range sensitivePatterns {
		if r.pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, r := range sensitivePatterns {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// IsSensitiveFieldName checks if a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns [REDACTED] if the field name indicates sensitive data,
// otherwise the value with sensitive patterns filtered out.
//
// Usage:
//
//	log.Debug().Str("key_path", logging.SafeValue("key_path", path)).Msg("loading key")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and filters sensitive data from output.
// It wraps the log file writer so key material never reaches disk.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps the given writer.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering sensitive data before writing.
// It reports len(p) on success so callers do not see a short write when
// redaction changes the length.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
