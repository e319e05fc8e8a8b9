package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/keystore"
	"github.com/mrz1836/textsign/internal/tui"
)

// textGenerateOptions holds flags for the text generate command.
type textGenerateOptions struct {
	// Scheme selects the key type; empty means crypto.scheme.
	Scheme string
	// Dir is the output directory; empty means keys.dir.
	Dir string
	// Force overwrites existing key files without asking.
	Force bool
}

// generatedFile is one written key file in the JSON result.
type generatedFile struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// textGenerateResult is the JSON shape of a generate result.
type textGenerateResult struct {
	Scheme string          `json:"scheme"`
	Files  []generatedFile `json:"files"`
}

// confirmOverwrite asks whether existing key files may be replaced.
// Tests replace it to simulate answers.
//
//nolint:gochecknoglobals // Test seam for the overwrite prompt
var confirmOverwrite = func(paths []string) (bool, error) {
	return tui.Confirm(fmt.Sprintf("Overwrite %s?", strings.Join(paths, ", ")), false)
}

// addTextGenerateCmd adds the generate subcommand to the text command.
func addTextGenerateCmd(parent *cobra.Command, global *GlobalFlags) {
	opts := &textGenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key files",
		Long: `Generate fresh keys and write them with owner-only permissions.

  blake3   writes blake3.txt (shared key)
  ed25519  writes ed25519.sk (signing) and ed25519.pk (verifying)

Existing files are only replaced after confirmation, or with --force.

Examples:
  textsign text generate
  textsign text generate -f ed25519 -d ~/.keys
  textsign text generate -f blake3 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd.Context(), cmd.OutOrStdout(), global.Output, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Scheme, "format", "f", "", "key scheme (blake3|ed25519), defaults to crypto.scheme")
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "output directory, defaults to keys.dir")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite existing key files without asking")

	parent.AddCommand(cmd)
}

// runTextGenerate creates keys for the selected scheme and stores them.
func runTextGenerate(ctx context.Context, w io.Writer, output string, opts *textGenerateOptions) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	settings, err := resolveEngineSettings(ctx, opts.Scheme, "", opts.Dir)
	if err != nil {
		return err
	}

	caps, err := crypto.Resolve(settings.Scheme)
	if err != nil {
		return err
	}

	store := keystore.New(settings.KeysDir)
	force, err := allowOverwrite(store.Existing(caps), opts.Force, output)
	if err != nil {
		return err
	}

	keys, err := crypto.Generate(ctx, settings.Scheme, nil)
	if err != nil {
		return err
	}

	paths, err := store.Write(ctx, caps, keys, force)
	if err != nil {
		return err
	}

	return renderGenerated(w, output, caps, paths)
}

// allowOverwrite decides whether existing key files may be replaced.
// JSON mode never prompts.
func allowOverwrite(existing []string, force bool, output string) (bool, error) {
	if force || len(existing) == 0 {
		return force, nil
	}

	exists := errors.Wrap(errors.ErrKeyExists, strings.Join(existing, ", "))
	if output == OutputJSON {
		return false, exists
	}

	confirmed, err := confirmOverwrite(existing)
	switch {
	case stderrors.Is(err, errors.ErrNonInteractiveMode):
		return false, exists
	case err != nil:
		return false, err
	case !confirmed:
		return false, errors.ErrOperationCanceled
	}
	return true, nil
}

func renderGenerated(w io.Writer, output string, caps crypto.Capabilities, paths []string) error {
	files := make([]generatedFile, 0, len(paths))
	for i, p := range paths {
		files = append(files, generatedFile{Kind: caps.Artifacts[i].Kind.String(), Path: p})
	}

	out := tui.NewOutput(w, output)
	if output == OutputJSON {
		return out.JSON(textGenerateResult{Scheme: caps.Scheme.String(), Files: files})
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{f.Kind, f.Path})
	}
	out.Table([]string{"KIND", "PATH"}, rows)
	out.Success(fmt.Sprintf("Generated %s keys", caps.Scheme))
	return nil
}
