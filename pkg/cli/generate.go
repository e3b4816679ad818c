package cli

import (
	"fmt"

	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/generator"
	"github.com/hatchdotlol/cipherpass/pkg/strength"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	opts := generator.Default
	var (
		words int
		hash  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password or passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if words > 0 {
				phrase, bits, err := generator.Passphrase(words)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, phrase)
				fmt.Fprintf(out, "Entropy: %s\n", strength.EntropyText(float64(bits)))
				return nil
			}

			password, err := generator.Generate(opts)
			if err != nil {
				return err
			}

			est, _ := loadEstimator(cmd.Context())
			defer db.CloseDB()

			fmt.Fprintln(out, password)
			fmt.Fprintln(out, describe(est, password))

			if hash {
				h, err := generator.Hash(password)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "bcrypt: %s\n", h)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", generator.DefaultLength, "password length")
	cmd.Flags().BoolVar(&opts.Lower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.Upper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.Numbers, "numbers", true, "include numbers")
	cmd.Flags().BoolVar(&opts.Symbols, "symbols", true, "include symbols")
	cmd.Flags().IntVarP(&words, "words", "w", 0, "generate a BIP-39 passphrase of this many words instead")
	cmd.Flags().BoolVar(&hash, "hash", false, "also print a bcrypt hash of the password")
	return cmd
}

// describe mirrors what the page shows under a generated password.
func describe(est *strength.Estimator, password string) string {
	r := est.Check(password)
	return fmt.Sprintf("Entropy: %s, GPU crack time: %s", r.EntropyText, r.CrackTimes.GPU)
}
