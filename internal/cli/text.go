package cli

import (
	"github.com/spf13/cobra"
)

// newTextCmd creates the parent text command.
func newTextCmd(global *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text",
		Long: `Commands for producing and checking detached text signatures.

Keys come from "text generate". Signatures are printed and accepted as
URL-safe base64 without padding unless --encoding says otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addTextSignCmd(cmd, global)
	addTextVerifyCmd(cmd, global)
	addTextGenerateCmd(cmd, global)

	return cmd
}

// AddTextCommand adds the text command tree to the root command.
func AddTextCommand(parent *cobra.Command, global *GlobalFlags) {
	parent.AddCommand(newTextCmd(global))
}

// textSchemeFlags are the scheme and encoding selectors shared by sign and verify.
type textSchemeFlags struct {
	Scheme   string
	Encoding string
}

func (f *textSchemeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Scheme, "format", "f", "", "signing scheme (blake3|ed25519), defaults to crypto.scheme")
	cmd.Flags().StringVar(&f.Encoding, "encoding", "", "signature encoding (base64url|base58), defaults to crypto.encoding")
}
