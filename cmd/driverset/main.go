package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/driverset/driverset/adapters/drivers/chai"
	_ "github.com/driverset/driverset/adapters/drivers/duckdb"
	_ "github.com/driverset/driverset/adapters/drivers/genji"
	_ "github.com/driverset/driverset/adapters/drivers/postgres"
	_ "github.com/driverset/driverset/adapters/drivers/sqlite"
	"github.com/driverset/driverset/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "driverset",
		Short:   "Resolve and load the database drivers an environment needs",
		Long:    "driverset inspects a declarative environment configuration and loads exactly the database drivers its active databases require.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to driverset.yml (env DRIVERSET_CONFIG)")
	cmd.PersistentFlags().StringP("env", "e", "", "Environment name (env DRIVERSET_ENV)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env DRIVERSET_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("DRIVERSET_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		level, err := parseLevel(c)
		if err != nil {
			return err
		}
		l, err := logging.New(format, level)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdLoad())
	cmd.AddCommand(newCmdValidate())
	cmd.AddCommand(newCmdList())
	cmd.AddCommand(newCmdRegistry())
	cmd.AddCommand(newCmdHistory())
	return cmd
}

func parseLevel(c *cobra.Command) (slog.Level, error) {
	s, _ := c.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Error(ctx, "failed", "error", err)
		os.Exit(1)
	}
}
