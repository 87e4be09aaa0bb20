package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdValidate performs the same analysis as load with the capability
// probe instead of live loading, for pre-merge and CI gates. Safe to run
// repeatedly; mutates no process state.
func newCmdValidate() *cobra.Command {
	var journalURL string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check driver availability for an environment without loading anything",
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

			out := buildUseCase().Validate(cmd.Context(), cfg, env)
			journalOutcome(cmd.Context(), journal, out)
			fmt.Fprint(cmd.OutOrStdout(), out.Report())
			if !out.Clean() {
				return fmt.Errorf("%d driver(s) unavailable, %d unknown key(s)", len(out.Failed), len(out.Unknown))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&journalURL, "journal", "", "Journal URL for recording outcomes (sqlite:/path/to.db)")
	return cmd
}
