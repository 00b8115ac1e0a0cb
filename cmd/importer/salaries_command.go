package main

import (
	"fmt"

	"github.com/Rabbit1992/salary-query/internal/employee"
	"github.com/Rabbit1992/salary-query/internal/salary"
	"github.com/Rabbit1992/salary-query/internal/sheet"
	"github.com/Rabbit1992/salary-query/internal/shared/connection"
	"github.com/Rabbit1992/salary-query/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSalariesCommand(dbFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "salaries <file.xlsx>",
		Short: "Import monthly salary records from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(dbFlag)

			table, err := sheet.Read(args[0])
			if err != nil {
				return err
			}

			db, err := connection.OpenSQLite(cfg.DBPath)
			if err != nil {
				return err
			}
			defer connection.Close(db)

			svc := salary.NewImportService(db, salary.NewRepository(db), employee.NewRepository(db))
			ctx := contextutil.WithRunID(cmd.Context(), uuid.NewString())

			report, err := svc.Run(ctx, table)
			report.Summary(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !report.Ok() {
				return fmt.Errorf("%d salary record(s) failed to import", report.Failed)
			}
			return nil
		},
	}
}
