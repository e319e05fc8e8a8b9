package tui

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestActionableError_Error(t *testing.T) {
	err := NewActionableError("key file exists", "pass --force")
	assert.Equal(t, "key file exists", err.Error())

	err = err.WithContext("keys/blake3.txt")
	assert.Equal(t, "key file exists (keys/blake3.txt)", err.Error())
}

func TestActionableFromError(t *testing.T) {
	assert.Nil(t, ActionableFromError(nil))

	wrapped := fmt.Errorf("keys/blake3.txt: %w", errors.ErrKeyExists)
	ae := ActionableFromError(wrapped)
	require.NotNil(t, ae)

	assert.Contains(t, ae.Message, "already exists")
	assert.Contains(t, ae.Suggestion, "--force")
	assert.Equal(t, wrapped.Error(), ae.Context)
	require.ErrorIs(t, ae, errors.ErrKeyExists)
}

func TestActionableFromError_UnknownError(t *testing.T) {
	plain := stderrors.New("disk on fire")
	ae := ActionableFromError(plain)

	assert.Equal(t, "disk on fire", ae.Message)
	assert.Empty(t, ae.Suggestion)
	assert.Empty(t, ae.Context, "context is dropped when it repeats the message")
}
