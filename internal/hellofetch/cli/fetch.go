package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/tui"
)

func fetchCmd(opts *options) *cobra.Command {
	var (
		asJSON bool
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one fetch cycle and print the result",
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

			rec := fetch.NewRecorder(fetch.NewMemoryStore())
			if trace {
				unsubscribe := rec.Subscribe(func(s fetch.State) {
					logger.Info("state", "phase", s.Phase().String(), "items", len(s.Items))
				})
				defer unsubscribe()
			}
			orch := fetch.NewOrchestrator(rec, newClient(cfg), fetch.WithLogger(logger))
			fetchErr := orch.Fetch(cmd.Context())

			if trace {
				for i, a := range rec.Actions() {
					raw, _ := json.Marshal(a)
					logger.Info("dispatched", "seq", i, "action", string(raw))
				}
			}

			state := rec.State()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(state); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, tui.Render(cfg.UI.Title, state))
			}
			return fetchErr
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final state as JSON")
	cmd.Flags().BoolVar(&trace, "trace", false, "Log every dispatched action")
	return cmd
}
