package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter/adaptertest"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTx(txType entity.TransactionType, amount, date, category string, status entity.TransactionStatus, method *string) *entity.Transaction {
	return entity.NewTransaction("movimiento", decimal.RequireFromString(amount), txType, date, category, status, method, nil)
}

func strPtr(s string) *string { return &s }

func fixture() *adaptertest.TransactionRepository {
	return adaptertest.NewTransactionRepository(
		newTx(entity.TransactionTypeIncome, "1000", "2024-03-01", "Servicios", entity.TransactionStatusPaid, strPtr("Efectivo")),
		newTx(entity.TransactionTypeIncome, "500", "2024-03-10", "Cursos", entity.TransactionStatusPaid, strPtr("Transferencia")),
		newTx(entity.TransactionTypeIncome, "200", "2024-03-20", "Cursos", entity.TransactionStatusPending, nil),
		newTx(entity.TransactionTypeExpense, "300", "2024-03-05", "Alquiler", entity.TransactionStatusPaid, nil),
		newTx(entity.TransactionTypeExpense, "100", "2024-03-25", "Marketing", entity.TransactionStatusPending, nil),
		newTx(entity.TransactionTypeIncome, "800", "2024-02-10", "Servicios", entity.TransactionStatusPaid, nil),
		newTx(entity.TransactionTypeExpense, "400", "2024-02-12", "Alquiler", entity.TransactionStatusPaid, nil),
		newTx(entity.TransactionTypeIncome, "900", "2023-03-10", "Servicios", entity.TransactionStatusPaid, nil),
	)
}

func dashboardErrorCode(t *testing.T, err error) domainerror.DashboardErrorCode {
	t.Helper()
	var dshErr *domainerror.DashboardError
	if !errors.As(err, &dshErr) {
		t.Fatalf("expected DashboardError, got %v", err)
	}
	return dshErr.Code
}

// memoryCache is a MetricsCache that round-trips values through JSON like the Redis cache.
type memoryCache struct {
	entries map[string][]byte
	version int64
	gets    int
}

func (c *memoryCache) Version(_ context.Context) (int64, error) {
	return c.version, nil
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

// writeDuringLoadRepository commits write and bumps the cache version right
// after the first FindAll has read its rows, like a concurrent mutation would.
type writeDuringLoadRepository struct {
	*adaptertest.TransactionRepository
	cache *memoryCache
	write *entity.Transaction
	done  bool
}

func (r *writeDuringLoadRepository) FindAll(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	transactions, err := r.TransactionRepository.FindAll(ctx, filter)
	if err != nil || r.done {
		return transactions, err
	}
	r.done = true
	if err := r.TransactionRepository.Create(ctx, r.write); err != nil {
		return nil, err
	}
	r.cache.version++
	return transactions, nil
}

func TestResolveRange(t *testing.T) {
	clock := adaptertest.NewClock(testNow)

	tests := []struct {
		name      string
		input     RangeInput
		wantStart string
		wantEnd   string
		wantCode  domainerror.DashboardErrorCode
	}{
		{"defaults to current month", RangeInput{}, "2024-03-01", "2024-03-31", ""},
		{"explicit dates", RangeInput{StartDate: "2024-01-01", EndDate: "2024-02-15"}, "2024-01-01", "2024-02-15", ""},
		{"explicit dates win over preset", RangeInput{StartDate: "2024-01-01", EndDate: "2024-01-31", Preset: entity.PresetThisYear}, "2024-01-01", "2024-01-31", ""},
		{"last month preset", RangeInput{Preset: entity.PresetLastMonth}, "2024-02-01", "2024-02-29", ""},
		{"last 3 months preset", RangeInput{Preset: entity.PresetLast3Months}, "2024-01-01", "2024-03-31", ""},
		{"missing end", RangeInput{StartDate: "2024-01-01"}, "", "", domainerror.ErrCodeMissingEndDate},
		{"missing start", RangeInput{EndDate: "2024-01-01"}, "", "", domainerror.ErrCodeMissingStartDate},
		{"bad format", RangeInput{StartDate: "2024/01/01", EndDate: "2024-01-31"}, "", "", domainerror.ErrCodeInvalidDateFormat},
		{"unknown preset", RangeInput{Preset: "forever"}, "", "", domainerror.ErrCodeInvalidPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolveRange(tt.input, clock)
			if tt.wantCode != "" {
				if code := dashboardErrorCode(t, err); code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.StartDate != tt.wantStart || r.EndDate != tt.wantEnd {
				t.Errorf("expected %s..%s, got %s", tt.wantStart, tt.wantEnd, r)
			}
		})
	}
}

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	clock := adaptertest.NewClock(testNow)

	t.Run("computes metrics for the current month", func(t *testing.T) {
		metrics, err := NewGetSummaryUseCase(fixture(), nil, clock).Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !metrics.Period.Income.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected period income 1500, got %s", metrics.Period.Income)
		}
		if !metrics.Period.Expenses.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected period expenses 300, got %s", metrics.Period.Expenses)
		}
		if !metrics.Period.PendingIncome.Equal(decimal.NewFromInt(200)) || !metrics.Period.PendingExpenses.Equal(decimal.NewFromInt(100)) {
			t.Errorf("unexpected pending totals %s / %s", metrics.Period.PendingIncome, metrics.Period.PendingExpenses)
		}
		// Paid history across every range: 1000+500+800+900 - 300-400
		if !metrics.Balance.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected balance 2500, got %s", metrics.Balance)
		}
		if !metrics.ProjectedBalance.Equal(decimal.NewFromInt(2600)) {
			t.Errorf("expected projected balance 2600, got %s", metrics.ProjectedBalance)
		}
		if metrics.Evolution == nil || len(metrics.Evolution.Points) != 31 {
			t.Errorf("expected a daily series of 31 points, got %+v", metrics.Evolution)
		}
	})

	t.Run("serves the second call from cache", func(t *testing.T) {
		repo := fixture()
		cache := &memoryCache{entries: map[string][]byte{}}
		uc := NewGetSummaryUseCase(repo, cache, clock)

		first, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A failing store proves the second call does not read it
		repo.Err = adaptertest.ErrForced
		second, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("expected cached metrics, got %v", err)
		}
		if !second.Balance.Equal(first.Balance) || second.Range != first.Range {
			t.Errorf("cached metrics differ: %+v vs %+v", second, first)
		}
		if cache.gets != 2 {
			t.Errorf("expected 2 cache reads, got %d", cache.gets)
		}
	})

	t.Run("a write during the load does not pin stale metrics", func(t *testing.T) {
		cache := &memoryCache{entries: map[string][]byte{}}
		repo := &writeDuringLoadRepository{
			TransactionRepository: fixture(),
			cache:                 cache,
			write:                 newTx(entity.TransactionTypeIncome, "10000", "2024-03-12", "Servicios", entity.TransactionStatusPaid, nil),
		}
		uc := NewGetSummaryUseCase(repo, cache, clock)

		first, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Period.Income.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected the pre-write income 1500, got %s", first.Period.Income)
		}

		second, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Period.Income.Equal(decimal.NewFromInt(11500)) {
			t.Errorf("expected income 11500 after the write, got %s", second.Period.Income)
		}
	})

	t.Run("propagates range errors", func(t *testing.T) {
		_, err := NewGetSummaryUseCase(fixture(), nil, clock).Execute(ctx, GetSummaryInput{Range: RangeInput{StartDate: "2024-01-01"}})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeMissingEndDate {
			t.Errorf("expected missing end date, got %s", code)
		}
	})
}

func TestGetEvolutionUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewGetEvolutionUseCase(fixture(), adaptertest.NewClock(testNow))

	output, err := uc.Execute(ctx, GetEvolutionInput{Range: RangeInput{StartDate: "2024-01-01", EndDate: "2024-03-31"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Series.Granularity != aggregation.GranularityMonthly {
		t.Fatalf("expected monthly granularity, got %s", output.Series.Granularity)
	}
	if len(output.Series.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(output.Series.Points))
	}
	february := output.Series.Points[1]
	if !february.Income.Equal(decimal.NewFromInt(800)) || !february.Profit.Equal(decimal.NewFromInt(400)) {
		t.Errorf("unexpected february point %+v", february)
	}
	if !output.Series.Points[0].Income.IsZero() {
		t.Error("expected an empty january bucket")
	}
}

func TestGetBreakdownUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewGetBreakdownUseCase(fixture(), adaptertest.NewClock(testNow))

	t.Run("expense by category is the default", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetBreakdownInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Slices) != 1 || output.Slices[0].Name != "Alquiler" {
			t.Errorf("expected only the paid rent, got %+v", output.Slices)
		}
		if !output.Total.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected total 300, got %s", output.Total)
		}
	})

	t.Run("income by cash split", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetBreakdownInput{Type: entity.TransactionTypeIncome, GroupBy: GroupByCash})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Slices) != 2 {
			t.Fatalf("expected 2 slices, got %+v", output.Slices)
		}
		if !output.Slices[0].Value.Equal(decimal.NewFromInt(1000)) || !output.Slices[1].Value.Equal(decimal.NewFromInt(500)) {
			t.Errorf("unexpected cash split %+v", output.Slices)
		}
	})

	t.Run("income by method", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetBreakdownInput{Type: entity.TransactionTypeIncome, GroupBy: GroupByMethod})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Slices) != 2 || output.Slices[0].Name != aggregation.CashPaymentMethod {
			t.Errorf("unexpected method slices %+v", output.Slices)
		}
	})

	t.Run("rejects unknown grouping and type", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetBreakdownInput{GroupBy: "weekday"})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidGrouping {
			t.Errorf("expected invalid grouping, got %s", code)
		}
		_, err = uc.Execute(ctx, GetBreakdownInput{Type: "savings"})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidType {
			t.Errorf("expected invalid type, got %s", code)
		}
	})
}

func TestGetCalendarUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewGetCalendarUseCase(fixture(), adaptertest.NewClock(testNow))

	calendar, err := uc.Execute(ctx, GetCalendarInput{Month: "2024-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calendar.Days) != 29 {
		t.Fatalf("expected 29 days in february 2024, got %d", len(calendar.Days))
	}
	if !calendar.Days[9].Income.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected 800 income on the 10th, got %s", calendar.Days[9].Income)
	}

	current, err := uc.Execute(ctx, GetCalendarInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Month != "2024-03" {
		t.Errorf("expected current month, got %s", current.Month)
	}
	// Pending entries show on their day
	if !current.Days[24].Expense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 pending expense on the 25th, got %s", current.Days[24].Expense)
	}

	_, err = uc.Execute(ctx, GetCalendarInput{Month: "2024-3"})
	if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidDateFormat {
		t.Errorf("expected invalid format, got %s", code)
	}
}

func TestComparePeriodsUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewComparePeriodsUseCase(fixture(), adaptertest.NewClock(testNow))

	comparison, err := uc.Execute(ctx, ComparePeriodsInput{
		PeriodA: aggregation.PeriodSpec{Kind: aggregation.PeriodMonth, Value: "2024-02"},
		PeriodB: aggregation.PeriodSpec{Kind: aggregation.PeriodMonth, Value: "2024-03"},
		Metric:  "total_income",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !comparison.ValueA.Equal(decimal.NewFromInt(800)) || !comparison.ValueB.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("unexpected values %s / %s", comparison.ValueA, comparison.ValueB)
	}
	if !comparison.Difference.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected difference 700, got %s", comparison.Difference)
	}
	if !comparison.PercentChange.Equal(decimal.RequireFromString("87.5")) {
		t.Errorf("expected 87.5%%, got %s", comparison.PercentChange)
	}

	t.Run("rejects bad metric and period", func(t *testing.T) {
		_, err := uc.Execute(ctx, ComparePeriodsInput{Metric: "profit_margin"})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidMetric {
			t.Errorf("expected invalid metric, got %s", code)
		}
		_, err = uc.Execute(ctx, ComparePeriodsInput{
			PeriodA: aggregation.PeriodSpec{Kind: aggregation.PeriodMonth, Value: "2024"},
			PeriodB: aggregation.PeriodSpec{Kind: aggregation.PeriodYear, Value: "2024"},
			Metric:  "net_income",
		})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidPeriod {
			t.Errorf("expected invalid period, got %s", code)
		}
	})
}

func TestGetYearOverYearUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewGetYearOverYearUseCase(fixture())

	output, err := uc.Execute(ctx, GetYearOverYearInput{Years: []int{2024, 2023}, Metric: "total_income"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Series) != 2 || output.Series[0].Year != 2023 {
		t.Fatalf("expected oldest year first, got %+v", output.Series)
	}
	if !output.Series[0].Points[2].Value.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected march 2023 income 900, got %s", output.Series[0].Points[2].Value)
	}
	if !output.Series[1].Total.Equal(decimal.NewFromInt(2300)) {
		t.Errorf("expected 2024 total 2300, got %s", output.Series[1].Total)
	}

	_, err = uc.Execute(ctx, GetYearOverYearInput{Metric: "total_income"})
	if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidYears {
		t.Errorf("expected invalid years, got %s", code)
	}
	_, err = uc.Execute(ctx, GetYearOverYearInput{Years: []int{24}, Metric: "total_income"})
	if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeInvalidYears {
		t.Errorf("expected invalid years, got %s", code)
	}
}

type fakeDashboardRepo struct {
	dateRange *DateRange
	err       error
}

func (r *fakeDashboardRepo) GetDateRange(context.Context) (*DateRange, error) {
	return r.dateRange, r.err
}

func TestGetDataRangeUseCase(t *testing.T) {
	ctx := context.Background()

	output, err := NewGetDataRangeUseCase(&fakeDashboardRepo{dateRange: &DateRange{
		OldestDate:        strPtr("2023-03-10"),
		NewestDate:        strPtr("2024-03-25"),
		TotalTransactions: 8,
	}}).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.HasData || output.TotalTransactions != 8 || *output.OldestDate != "2023-03-10" {
		t.Errorf("unexpected output %+v", output)
	}

	empty, err := NewGetDataRangeUseCase(&fakeDashboardRepo{dateRange: &DateRange{}}).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.HasData {
		t.Error("expected no data")
	}

	_, err = NewGetDataRangeUseCase(&fakeDashboardRepo{err: adaptertest.ErrForced}).Execute(ctx)
	if !errors.Is(err, adaptertest.ErrForced) {
		t.Errorf("expected forced error, got %v", err)
	}
}
