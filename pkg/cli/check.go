package cli

import (
	"fmt"

	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Estimate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, _ := loadEstimator(cmd.Context())
			defer db.CloseDB()

			r := est.Check(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Entropy:      %s\n", r.EntropyText)
			fmt.Fprintf(out, "Score:        %d/100 (%s)\n", r.Score, r.Rating)
			fmt.Fprintf(out, "Compromised:  %t\n", r.Compromised)
			fmt.Fprintf(out, "zxcvbn:       %d/4\n", r.ZxcvbnScore)
			fmt.Fprintf(out, "Online:       %s\n", r.CrackTimes.Online)
			fmt.Fprintf(out, "GPU:          %s\n", r.CrackTimes.GPU)
			fmt.Fprintf(out, "Botnet:       %s\n", r.CrackTimes.Botnet)
			fmt.Fprintf(out, "Nation state: %s\n", r.CrackTimes.Nation)
			if r.Feedback != "" {
				fmt.Fprintf(out, "\n%s\n", r.Feedback)
			}
			return nil
		},
	}
}
