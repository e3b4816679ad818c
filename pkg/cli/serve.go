package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/cipherpass/pkg/api"
	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/util"
	"github.com/spf13/cobra"
)

const (
	serverShutdownWait = 5 * time.Second
	serverTimeout      = 30 * time.Second
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and browser page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = util.Config.Port
			}
			return serve(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default $PORT or 8080)")
	return cmd
}

func serve(ctx context.Context, port string) error {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     os.Getenv("SENTRY_DSN"),
		Release: util.Config.Version,
	}); err != nil {
		log.Fatal(err)
	}
	defer sentry.Flush(serverShutdownWait)

	est, list := loadEstimator(ctx)
	defer db.CloseDB()

	s := &http.Server{
		Addr:         ":" + port,
		Handler:      api.Router(est),
		ReadTimeout:  serverTimeout,
		WriteTimeout: serverTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			log.Fatal(err)
		}
	}()

	util.LogMessage(fmt.Sprintf("Starting CipherPass %s with %d known passwords", util.Config.Version, list.Len()))
	slog.Info("Starting server", "address", s.Addr)

	<-done

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownWait)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down server", "err", err)
		return err
	}

	return nil
}
