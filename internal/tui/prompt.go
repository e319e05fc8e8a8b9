package tui

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/textsign/internal/errors"
)

// terminalCheck reports whether stdin is a terminal.
// Tests replace it to exercise the non-interactive path.
//
//nolint:gochecknoglobals // Test seam for terminal detection
var terminalCheck = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // G115: file descriptors fit in int on all supported platforms
}

// confirmRunner runs a prepared huh form. Tests replace it to avoid a TTY.
//
//nolint:gochecknoglobals // Test seam for form execution
var confirmRunner = func(form *huh.Form) error {
	return form.Run()
}

// IsInteractive reports whether prompts can be shown.
func IsInteractive() bool {
	return terminalCheck()
}

// Confirm presents a yes/no prompt and returns the answer.
//
// It returns ErrNonInteractiveMode when stdin is not a terminal and
// ErrOperationCanceled when the user aborts the prompt.
func Confirm(title string, defaultYes bool) (bool, error) {
	if !terminalCheck() {
		return false, errors.ErrNonInteractiveMode
	}

	CheckNoColor()

	confirmed := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)).WithTheme(Theme())

	if err := confirmRunner(form); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, errors.ErrOperationCanceled
		}
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return confirmed, nil
}

// Theme returns the huh theme built from the textsign palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)

	return t
}
