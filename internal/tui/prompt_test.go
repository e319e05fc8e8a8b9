package tui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

// stubPrompt replaces the terminal check and form runner for one test.
func stubPrompt(t *testing.T, interactive bool, run func(*huh.Form) error) {
	t.Helper()
	origCheck, origRun := terminalCheck, confirmRunner
	t.Cleanup(func() {
		terminalCheck, confirmRunner = origCheck, origRun
	})
	terminalCheck = func() bool { return interactive }
	confirmRunner = run
}

func TestConfirm_NonInteractive(t *testing.T) {
	stubPrompt(t, false, func(*huh.Form) error {
		t.Fatal("form must not run without a terminal")
		return nil
	})

	ok, err := Confirm("Overwrite?", true)
	require.ErrorIs(t, err, errors.ErrNonInteractiveMode)
	assert.False(t, ok)
	assert.False(t, IsInteractive())
}

func TestConfirm_DefaultAnswer(t *testing.T) {
	stubPrompt(t, true, func(*huh.Form) error { return nil })

	ok, err := Confirm("Overwrite?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirm_Aborted(t *testing.T) {
	stubPrompt(t, true, func(*huh.Form) error { return huh.ErrUserAborted })

	_, err := Confirm("Overwrite?", false)
	require.ErrorIs(t, err, errors.ErrOperationCanceled)
}

func TestConfirm_RunFailure(t *testing.T) {
	stubPrompt(t, true, func(*huh.Form) error { return assert.AnError })

	_, err := Confirm("Overwrite?", false)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "confirm prompt failed")
}

func TestTheme(t *testing.T) {
	require.NotNil(t, Theme())
}
