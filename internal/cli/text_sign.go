package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/keystore"
	"github.com/mrz1836/textsign/internal/tui"
)

// textSignOptions holds flags for the text sign command.
type textSignOptions struct {
	textSchemeFlags

	// Input is the file to sign, or "-" for stdin.
	Input string
	// KeyPath is the signing key file.
	KeyPath string
}

// textSignResult is the JSON shape of a sign result.
type textSignResult struct {
	Scheme    string `json:"scheme"`
	Encoding  string `json:"encoding"`
	Signature string `json:"signature"`
}

// addTextSignCmd adds the sign subcommand to the text command.
func addTextSignCmd(parent *cobra.Command, global *GlobalFlags) {
	opts := &textSignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign text with a key file",
		Long: `Sign the contents of a file, or stdin, and print the encoded signature.

Examples:
  textsign text sign -k blake3.txt -i message.txt
  echo -n "hello" | textsign text sign -f ed25519 -k ed25519.sk
  textsign text sign -k blake3.txt -i message.txt --encoding base58`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), global.Output, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", constants.StdinPath, "file to sign (- for stdin)")
	cmd.Flags().StringVarP(&opts.KeyPath, "key", "k", "", "signing key file")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("key")

	parent.AddCommand(cmd)
}

// runTextSign signs the input and writes the encoded signature to w.
func runTextSign(ctx context.Context, stdin io.Reader, w io.Writer, output string, opts *textSignOptions) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	settings, err := resolveEngineSettings(ctx, opts.Scheme, opts.Encoding, "")
	if err != nil {
		return err
	}

	key, err := keystore.LoadSigningKey(settings.Scheme, opts.KeyPath)
	if err != nil {
		return err
	}

	in, err := openInput(opts.Input, stdin)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	signature, err := crypto.Sign(ctx, key, in)
	if err != nil {
		return err
	}

	encoded, err := crypto.EncodeWith(settings.Encoding, signature)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", settings.Scheme.String()).
		Str("input", opts.Input).
		Msg("text signed")

	if output == OutputJSON {
		return tui.NewOutput(w, output).JSON(textSignResult{
			Scheme:    settings.Scheme.String(),
			Encoding:  settings.Encoding.String(),
			Signature: encoded,
		})
	}

	_, err = fmt.Fprintln(w, encoded)
	return err
}
