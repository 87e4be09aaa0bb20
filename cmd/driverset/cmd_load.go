package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdLoad resolves and loads the drivers the environment requires,
// prints the aggregated report, and exits non-zero when any required
// driver failed or any active key is unknown.
func newCmdLoad() *cobra.Command {
	var journalURL string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the drivers the environment's active databases require",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			env, err := environmentName(cmd)
			if err != nil {
				return err
			}
			journal, err := buildJournal(journalURL)
			if err != nil {
				return err
			}

			out := buildUseCase().Load(cmd.Context(), cfg, env)
			journalOutcome(cmd.Context(), journal, out)
			fmt.Fprint(cmd.OutOrStdout(), out.Report())
			if !out.Clean() {
				return fmt.Errorf("%d driver(s) failed, %d unknown key(s)", len(out.Failed), len(out.Unknown))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&journalURL, "journal", "", "Journal URL for recording outcomes (sqlite:/path/to.db)")
	return cmd
}
