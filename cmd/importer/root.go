package main

import (
	"github.com/Rabbit1992/salary-query/internal/config"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var dbFlag string

	rootCmd := &cobra.Command{
		Use:           "importer",
		Short:         "Spreadsheet importers for the salary store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "",
		"Path to the SQLite database file (overrides SALARY_DB_PATH)")

	rootCmd.AddCommand(newEmployeesCommand(&dbFlag))
	rootCmd.AddCommand(newSalariesCommand(&dbFlag))

	return rootCmd
}

// resolveConfig applies the --db override on top of the environment config.
func resolveConfig(dbFlag *string) config.Config {
	cfg := config.Load()
	if dbFlag != nil && *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	return cfg
}
