package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	fixedexpense "github.com/finanzas-pro/backend/internal/application/usecase/fixed_expense"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	processor "github.com/finanzas-pro/backend/internal/domain/fixedexpense"
	"github.com/finanzas-pro/backend/internal/integration/adapters"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
	"github.com/finanzas-pro/backend/internal/integration/persistence"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary and fixed expense status",
		Long: `Computes the same metrics as GET /api/v1/dashboard/summary for a range
(default: current month) together with the fixed expense status of the
range's first month.`,
		RunE: runSummary,
	}

	cmd.Flags().String("start", "", "range start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "range end date (YYYY-MM-DD)")
	cmd.Flags().String("preset", "", "range preset (this_month, last_month, last_3_months, this_year)")
	cmd.Flags().Bool("json", false, "print JSON instead of text")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	preset, _ := cmd.Flags().GetString("preset")
	asJSON, _ := cmd.Flags().GetBool("json")

	database, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	clock := adapters.NewSystemClock()
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	fixedExpenseRepo := persistence.NewFixedExpenseRepository(database.DB())

	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, nil, clock)
	statusUseCase := fixedexpense.NewGetMonthStatusUseCase(fixedExpenseRepo, transactionRepo, clock)

	var (
		metrics *aggregation.Metrics
		status  *processor.MonthStatus
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		metrics, err = summaryUseCase.Execute(ctx, dashboard.GetSummaryInput{
			Range: dashboard.RangeInput{StartDate: start, EndDate: end, Preset: entity.RangePreset(preset)},
		})
		return err
	})
	g.Go(func() error {
		var month string
		if len(start) >= 7 {
			month = start[:7]
		}
		var err error
		status, err = statusUseCase.Execute(ctx, fixedexpense.GetMonthStatusInput{Month: month})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, map[string]any{
			"summary":        dto.ToSummaryResponse(metrics),
			"fixed_expenses": dto.ToMonthStatusResponse(status),
		})
	}

	fmt.Fprintf(out, "Range:             %s .. %s\n", metrics.Range.StartDate, metrics.Range.EndDate)
	fmt.Fprintf(out, "Balance:           %s\n", metrics.Balance.StringFixed(2))
	fmt.Fprintf(out, "Projected balance: %s\n", metrics.ProjectedBalance.StringFixed(2))
	fmt.Fprintf(out, "Income:            %s (pending %s, %s%% vs previous)\n",
		metrics.Period.Income.StringFixed(2), metrics.Period.PendingIncome.StringFixed(2), metrics.IncomeChange.StringFixed(1))
	fmt.Fprintf(out, "Expenses:          %s (pending %s, %s%% vs previous)\n",
		metrics.Period.Expenses.StringFixed(2), metrics.Period.PendingExpenses.StringFixed(2), metrics.ExpenseChange.StringFixed(1))
	fmt.Fprintf(out, "Savings rate:      %s%%\n", metrics.SavingsRate.StringFixed(1))
	fmt.Fprintf(out, "Fixed expenses %s: %s of %s paid, %d pending\n",
		status.Month, status.PaidTotal.StringFixed(2), status.ExpectedTotal.StringFixed(2), status.PendingCount)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
