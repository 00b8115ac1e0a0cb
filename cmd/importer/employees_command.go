package main

import (
	"fmt"

	"github.com/Rabbit1992/salary-query/internal/employee"
	"github.com/Rabbit1992/salary-query/internal/sheet"
	"github.com/Rabbit1992/salary-query/internal/shared/connection"
	"github.com/Rabbit1992/salary-query/internal/shared/contextutil"
	"github.com/Rabbit1992/salary-query/internal/shared/hash"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newEmployeesCommand(dbFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "employees <file.xlsx>",
		Short: "Import the employee roster from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(dbFlag)

			table, err := sheet.Read(args[0])
			if err != nil {
				return err
			}

			hasher, err := hash.New(cfg.PasswordHash)
			if err != nil {
				return err
			}

			db, err := connection.OpenSQLite(cfg.DBPath)
			if err != nil {
				return err
			}
			defer connection.Close(db)

			svc := employee.NewImportService(db, employee.NewRepository(db), hasher)
			ctx := contextutil.WithRunID(cmd.Context(), uuid.NewString())

			report, err := svc.Run(ctx, table)
			report.Summary(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !report.Ok() {
				return fmt.Errorf("%d employee record(s) failed to import", report.Failed)
			}
			return nil
		},
	}
}
