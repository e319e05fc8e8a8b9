// Package testutil provides testing utilities for textsign.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockFileNotFound indicates a mock file was not found (used in tests).
	ErrMockFileNotFound = errors.New("file not found")

	// ErrMockReadFailed indicates a mock reader failed mid-stream (used in tests).
	ErrMockReadFailed = errors.New("read failed")

	// ErrMockRandomExhausted indicates a mock entropy source ran dry (used in tests).
	ErrMockRandomExhausted = errors.New("random source exhausted")
)
