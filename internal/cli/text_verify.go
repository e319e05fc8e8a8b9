package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/keystore"
	"github.com/mrz1836/textsign/internal/tui"
)

// textVerifyOptions holds flags for the text verify command.
type textVerifyOptions struct {
	textSchemeFlags

	// Input is the file to verify, or "-" for stdin.
	Input string
	// KeyPath is the verifying key file (the shared key for blake3).
	KeyPath string
	// Signature is the encoded signature to check.
	Signature string
}

// textVerifyResult is the JSON shape of a verify result.
type textVerifyResult struct {
	Scheme string `json:"scheme"`
	Valid  bool   `json:"valid"`
}

// addTextVerifyCmd adds the verify subcommand to the text command.
func addTextVerifyCmd(parent *cobra.Command, global *GlobalFlags) {
	opts := &textVerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a text signature",
		Long: `Check an encoded signature against the contents of a file, or stdin.

The command exits 0 when the signature matches and 1 when it does not.
A signature of the wrong length, or one that cannot be decoded, is an error
rather than a mismatch.

Examples:
  textsign text verify -k blake3.txt -i message.txt -S <signature>
  cat message.txt | textsign text verify -f ed25519 -k ed25519.pk -S <signature>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), global.Output, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", constants.StdinPath, "file to verify (- for stdin)")
	cmd.Flags().StringVarP(&opts.KeyPath, "key", "k", "", "verifying key file")
	cmd.Flags().StringVarP(&opts.Signature, "signature", "S", "", "encoded signature")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")

	parent.AddCommand(cmd)
}

// runTextVerify checks the signature and reports the result on w.
// A mismatch is reported and then returned as ErrSignatureMismatch so the
// process exits non-zero.
func runTextVerify(ctx context.Context, stdin io.Reader, w io.Writer, output string, opts *textVerifyOptions) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	settings, err := resolveEngineSettings(ctx, opts.Scheme, opts.Encoding, "")
	if err != nil {
		return err
	}

	signature, err := crypto.DecodeWith(settings.Encoding, opts.Signature)
	if err != nil {
		return err
	}

	key, err := keystore.LoadVerifyingKey(settings.Scheme, opts.KeyPath)
	if err != nil {
		return err
	}

	in, err := openInput(opts.Input, stdin)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	valid, err := crypto.Verify(ctx, key, in, signature)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", settings.Scheme.String()).
		Str("input", opts.Input).
		Bool("valid", valid).
		Msg("text verified")

	out := tui.NewOutput(w, output)
	if output == OutputJSON {
		if err := out.JSON(textVerifyResult{Scheme: settings.Scheme.String(), Valid: valid}); err != nil {
			return err
		}
	} else if valid {
		out.Success("Signature verified")
	} else {
		out.Warning("Signature not verified")
	}

	if !valid {
		return errors.ErrSignatureMismatch
	}
	return nil
}
