package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/genpass"
	"github.com/mrz1836/textsign/internal/tui"
)

// genpassFlags holds flags for the genpass command. The class switches are
// negative so every class is on by default.
type genpassFlags struct {
	Length   int
	NoUpper  bool
	NoLower  bool
	NoNumber bool
	NoSymbol bool
}

func (f *genpassFlags) options() genpass.Options {
	return genpass.Options{
		Length: f.Length,
		Upper:  !f.NoUpper,
		Lower:  !f.NoLower,
		Number: !f.NoNumber,
		Symbol: !f.NoSymbol,
	}
}

// newGenpassCmd creates the genpass command.
func newGenpassCmd(global *GlobalFlags) *cobra.Command {
	flags := &genpassFlags{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password with at least one character from every
enabled class. Characters that are easy to confuse (I, O, i, 0) are
never used.

Examples:
  textsign genpass
  textsign genpass -l 32 --no-symbol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenpass(cmd.Context(), cmd.OutOrStdout(), global.Output, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.Length, "length", "l", constants.DefaultPasswordLength, "password length")
	cmd.Flags().BoolVar(&flags.NoUpper, "no-upper", false, "leave out uppercase letters")
	cmd.Flags().BoolVar(&flags.NoLower, "no-lower", false, "leave out lowercase letters")
	cmd.Flags().BoolVar(&flags.NoNumber, "no-number", false, "leave out digits")
	cmd.Flags().BoolVar(&flags.NoSymbol, "no-symbol", false, "leave out symbols")

	return cmd
}

// AddGenpassCommand adds the genpass command to the root command.
func AddGenpassCommand(parent *cobra.Command, global *GlobalFlags) {
	parent.AddCommand(newGenpassCmd(global))
}

// runGenpass prints one password. Text mode prints it alone on a line so
// it can be redirected into a file.
func runGenpass(ctx context.Context, w io.Writer, output string, flags *genpassFlags) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	password, err := genpass.Generate(nil, flags.options())
	if err != nil {
		return err
	}

	if output == OutputJSON {
		return tui.NewOutput(w, output).JSON(map[string]any{
			"password": password,
			"length":   len(password),
		})
	}

	_, err = fmt.Fprintln(w, password)
	return err
}
