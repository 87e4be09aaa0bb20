package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driverset/driverset/registry"
)

// newCmdRegistry prints the full supported-driver table.
func newCmdRegistry() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Print the supported config key to driver mapping",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, e := range registry.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.ConfigKey, e.DriverID, e.Coordinate)
			}
		},
	}
}
