package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdHistory prints recent journaled outcomes, newest first.
func newCmdHistory() *cobra.Command {
	var journalURL string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled load/validate outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if journalURL == "" {
				return fmt.Errorf("--journal is required")
			}
			journal, err := buildJournal(journalURL)
			if err != nil {
				return err
			}
			env, _ := cmd.Flags().GetString("env")

			outcomes, err := journal.List(cmd.Context(), env, limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, o := range outcomes {
				fmt.Fprintf(w, "%s\t%s\t%s\tsuccess=%v\tloaded=%d\tfailed=%d\tunknown=%d\n",
					o.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
					o.Environment, o.Mode, o.Success, len(o.Loaded), len(o.Failed), len(o.Unknown))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&journalURL, "journal", "", "Journal URL to read (sqlite:/path/to.db)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of outcomes to show")
	return cmd
}
