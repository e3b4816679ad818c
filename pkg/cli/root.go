package cli

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/strength"
	"github.com/hatchdotlol/cipherpass/pkg/util"
	"github.com/hatchdotlol/cipherpass/pkg/wordlist"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cipherpass",
		Short:        "Password strength checker and generator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			godotenv.Load()
			util.InitConfig()
		},
	}

	root.AddCommand(serveCmd(), checkCmd(), generateCmd(), importCmd())
	return root
}

// loadEstimator opens the optional wordlist backends and loads the list once.
// A backend that fails to open is logged and left out.
func loadEstimator(ctx context.Context) (*strength.Estimator, *wordlist.List) {
	opts := wordlist.Options{
		Path: util.Config.WordlistPath,
		URL:  util.Config.WordlistURL,
	}

	if util.Config.DBPath != "" {
		if err := db.InitDB(util.Config.DBPath); err != nil {
			sentry.CaptureException(err)
			slog.Warn("Failed to open wordlist index", "path", util.Config.DBPath, "err", err)
		} else {
			opts.Index = db.Compromised{}
		}
	}

	if m := util.Config.Minio; m != nil {
		if err := db.InitS3(m.Endpoint, m.AccessKey, m.SecretKey, m.Secure, m.Bucket); err != nil {
			sentry.CaptureException(err)
			slog.Warn("Failed to create MinIO client", "endpoint", m.Endpoint, "err", err)
		} else {
			opts.Bucket = m.Bucket
			opts.Object = m.Object
		}
	}

	list := wordlist.Load(ctx, opts)

	return strength.NewEstimator(list, util.Config.MinEntropy), list
}
