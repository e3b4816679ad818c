package cli

import (
	"errors"
	"fmt"

	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/util"
	"github.com/hatchdotlol/cipherpass/pkg/wordlist"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Load a wordlist file into the sqlite index at $DB_PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if util.Config.DBPath == "" {
				return errors.New("DB_PATH is not set")
			}

			set, err := wordlist.FromFile(args[0])
			if err != nil {
				return err
			}

			if err := db.InitDB(util.Config.DBPath); err != nil {
				return err
			}
			defer db.CloseDB()

			added, err := db.ImportPasswords(set.Entries())
			if err != nil {
				return err
			}

			total, err := db.CountPasswords()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new passwords (%d read, %d indexed)\n", added, set.Len(), total)
			return nil
		},
	}
}
