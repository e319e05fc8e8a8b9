package cli

import (
	"io"
	"os"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// openInput opens the text to sign or verify. The path "-" (or an empty
// path) reads from stdin, which is never closed by the returned closer.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == constants.StdinPath {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path) //#nosec G304 -- input path is chosen by the user
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(errors.ErrStreamRead, err), "opening input %s", path)
	}
	return f, nil
}
