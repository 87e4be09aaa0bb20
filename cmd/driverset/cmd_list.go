package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdList prints the drivers an environment requires and any active
// keys without a registry entry, without probing or loading.
func newCmdList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the drivers an environment requires",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			env, err := environmentName(cmd)
			if err != nil {
				return err
			}

			required, unknown := buildUseCase().ListRequiredDrivers(cmd.Context(), cfg, env)
			w := cmd.OutOrStdout()
			for _, e := range required {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.ConfigKey, e.DriverID, e.Coordinate)
			}
			for _, k := range unknown {
				fmt.Fprintf(w, "%s\t(unknown)\n", k)
			}
			return nil
		},
	}
}
