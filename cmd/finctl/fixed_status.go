package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	fixedexpense "github.com/finanzas-pro/backend/internal/application/usecase/fixed_expense"
	"github.com/finanzas-pro/backend/internal/integration/adapters"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
	"github.com/finanzas-pro/backend/internal/integration/persistence"
)

func fixedStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed-status [YYYY-MM]",
		Short: "List fixed expenses and whether they are paid in a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var month string
			if len(args) == 1 {
				month = args[0]
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			uc := fixedexpense.NewGetMonthStatusUseCase(
				persistence.NewFixedExpenseRepository(database.DB()),
				persistence.NewTransactionRepository(database.DB()),
				adapters.NewSystemClock(),
			)
			status, err := uc.Execute(cmd.Context(), fixedexpense.GetMonthStatusInput{Month: month})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToMonthStatusResponse(status))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tEXPECTED\tPAID\tLAST MONTH")
			for _, item := range status.Items {
				paid := "-"
				if item.Payment != nil {
					paid = item.Payment.Amount.StringFixed(2)
				}
				last := "-"
				if item.LastMonthAmount != nil {
					last = item.LastMonthAmount.StringFixed(2)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					item.ScheduledDate, item.Template.Description, item.Template.Amount.StringFixed(2), paid, last)
			}
			fmt.Fprintf(w, "\t\t%s\t%s\t\n", status.ExpectedTotal.StringFixed(2), status.PaidTotal.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}
