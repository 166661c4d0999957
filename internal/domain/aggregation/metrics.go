package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// DefaultTopExpenses is the size of the largest-expenses list.
const DefaultTopExpenses = 5

// Config selects the optional parts of Aggregate.
type Config struct {
	TopExpenses   int // <= 0 means DefaultTopExpenses
	IncludeSeries bool
}

// DefaultConfig returns the configuration used by the dashboard.
func DefaultConfig() Config {
	return Config{TopExpenses: DefaultTopExpenses, IncludeSeries: true}
}

// PeriodTotals are the status-aware sums of one range.
type PeriodTotals struct {
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	PendingIncome   decimal.Decimal
	PendingExpenses decimal.Decimal
	Net             decimal.Decimal
}

// PreviousTotals are the paid sums of the window preceding the current range.
type PreviousTotals struct {
	Range    entity.DateRange
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Metrics is everything the dashboard derives from one snapshot and range.
type Metrics struct {
	Range              entity.DateRange
	Balance            decimal.Decimal
	ProjectedBalance   decimal.Decimal
	Period             PeriodTotals
	Previous           PreviousTotals
	IncomeChange       decimal.Decimal
	ExpenseChange      decimal.Decimal
	ExpensesByCategory []Slice
	IncomeByCategory   []Slice
	IncomeByMethod     []Slice
	IncomeCashSplit    CashSplit
	Evolution          *Series
	TopExpenses        []*entity.Transaction
	BusinessDays       int
	AvgDailyIncome     decimal.Decimal
	AvgDailyExpense    decimal.Decimal
	Savings            decimal.Decimal
	SavingsRate        decimal.Decimal
}

// Aggregate computes Metrics for the range. Global balances ignore the range.
func Aggregate(transactions []*entity.Transaction, r entity.DateRange, cfg Config) Metrics {
	topN := cfg.TopExpenses
	if topN <= 0 {
		topN = DefaultTopExpenses
	}

	inRange := FilterByRange(transactions, r)

	period := PeriodTotals{
		Income:          roundMoney(PeriodIncome(inRange, r)),
		Expenses:        roundMoney(PeriodExpenses(inRange, r)),
		PendingIncome:   roundMoney(PeriodPendingIncome(inRange, r)),
		PendingExpenses: roundMoney(PeriodPendingExpenses(inRange, r)),
	}
	period.Net = period.Income.Sub(period.Expenses)

	previousRange := PreviousPeriod(r)
	previous := PreviousTotals{
		Range:    previousRange,
		Income:   roundMoney(PeriodIncome(transactions, previousRange)),
		Expenses: roundMoney(PeriodExpenses(transactions, previousRange)),
	}

	metrics := Metrics{
		Range:              r,
		Balance:            roundMoney(Balance(transactions)),
		ProjectedBalance:   roundMoney(ProjectedBalance(transactions)),
		Period:             period,
		Previous:           previous,
		IncomeChange:       ChangePercent(period.Income, previous.Income),
		ExpenseChange:      ChangePercent(period.Expenses, previous.Expenses),
		ExpensesByCategory: CategoryBreakdown(inRange, r, entity.TransactionTypeExpense),
		IncomeByCategory:   CategoryBreakdown(inRange, r, entity.TransactionTypeIncome),
		IncomeByMethod:     MethodBreakdown(inRange, r, entity.TransactionTypeIncome),
		IncomeCashSplit:    SplitByCash(inRange, r, entity.TransactionTypeIncome),
		TopExpenses:        TopExpenses(inRange, r, topN),
		BusinessDays:       BusinessDays(r),
		AvgDailyIncome:     BusinessDayAverage(period.Income, r),
		AvgDailyExpense:    BusinessDayAverage(period.Expenses, r),
		Savings:            period.Net,
		SavingsRate:        SavingsRate(period.Income, period.Expenses),
	}

	if cfg.IncludeSeries {
		series := EvolutionSeries(inRange, r)
		metrics.Evolution = &series
	}

	return metrics
}
