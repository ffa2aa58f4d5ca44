package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/server"
)

func serveCmd(opts *options) *cobra.Command {
	var (
		addr    string
		fixture string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo data API (local-only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, closeLog, err := setupLogging(cmd.ErrOrStderr(), "", false, opts.verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			if fixture == "" {
				fixture = cfg.Server.Fixture
			}
			f, err := server.LoadFixture(fixture)
			if err != nil {
				return err
			}
			srv := server.New(cfg.API.Endpoint, f, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				// A second interrupt should kill the process.
				stop()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "hellofetch API listening on %s%s\n", addr, srv.Endpoint())
			if err := srv.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP bind address (default from config)")
	cmd.Flags().StringVar(&fixture, "fixture", "", "YAML fixture to serve")
	return cmd
}
