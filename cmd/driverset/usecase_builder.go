package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/driverset/driverset/adapters/drivers"
	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/registry"
	"github.com/driverset/driverset/usecase/driverload"
)

// driversRuntime adapts the adapters/drivers package functions to the
// engine's Runtime port.
type driversRuntime struct{}

func (driversRuntime) Resolvable(driverID string) bool { return drivers.Resolvable(driverID) }
func (driversRuntime) Activate(driverID string) error  { return drivers.Activate(driverID) }

// buildUseCase creates the driver load use case over the compiled-in
// registry and the real runtime.
func buildUseCase() *driverload.UseCase {
	return driverload.New(&driverload.Ports{
		Lookup:  registry.Lookup,
		Runtime: driversRuntime{},
	})
}

// findFlag walks up the command hierarchy to locate a flag declared on
// any ancestor.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// loadConfig reads and validates the config file resolved from the
// --config flag, DRIVERSET_CONFIG, or the default path.
func loadConfig(cmd *cobra.Command) (*driverscfg.Root, error) {
	var path string
	if f := findFlag(cmd, "config"); f != nil {
		path = f.Value.String()
	}
	cfg, err := driverscfg.Load(driverscfg.ConfigPath(path))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environmentName resolves the target environment from the --env flag or
// DRIVERSET_ENV.
func environmentName(cmd *cobra.Command) (string, error) {
	env, _ := cmd.Flags().GetString("env")
	if env == "" {
		env = os.Getenv("DRIVERSET_ENV")
	}
	if env == "" {
		return "", fmt.Errorf("environment is required (--env or DRIVERSET_ENV)")
	}
	return env, nil
}
