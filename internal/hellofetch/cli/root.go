// Package cli wires config, logging, the API client and the views into the
// hellofetch command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/api"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/config"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/tui"
)

type options struct {
	configPath string
	baseURL    string
	verbose    bool
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.API.BaseURL,
		api.WithEndpoint(cfg.API.Endpoint),
		api.WithTimeout(cfg.API.Timeout.Duration),
	)
}

// Execute runs the root command.
func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store := fetch.NewMemoryStore()
	orch := fetch.NewOrchestrator(store, newClient(cfg), fetch.WithLogger(logger))
	m := tui.New(store, orch, tui.WithTitle(cfg.UI.Title), tui.WithContext(ctx))

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))
	p := tea.NewProgram(m, progOpts...)

	stop := tui.Watch(store, p.Send)
	defer stop()

	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "hellofetch",
		Short:         "Fetch data from an API and watch the request lifecycle",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, closeLog, err := setupLogging(cmd.ErrOrStderr(), cfg.UI.LogFile, true, opts.verbose)
			if err != nil {
				return err
			}
			defer closeLog()
			logger.Info("starting tui", "url", newClient(cfg).URL())
			return runTUI(cmd.Context(), cfg, logger)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Override the API base URL")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		fetchCmd(opts),
		serveCmd(opts),
		configCmd(),
	)
	return root
}
