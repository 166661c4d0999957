package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

func januaryScenario() []*entity.Transaction {
	return []*entity.Transaction{
		income("100", "2024-01-05"),
		expense("40", "2024-01-10"),
		tx("20", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-01-15"),
	}
}

func TestBalance(t *testing.T) {
	t.Run("scenario balances", func(t *testing.T) {
		txs := januaryScenario()
		january := dateRange("2024-01-01", "2024-01-31")

		assertDecimal(t, "60", Balance(txs))
		assertDecimal(t, "80", ProjectedBalance(txs))
		assertDecimal(t, "100", PeriodIncome(txs, january))
		assertDecimal(t, "20", PeriodPendingIncome(txs, january))
		assertDecimal(t, "40", PeriodExpenses(txs, january))
		assertDecimal(t, "0", PeriodPendingExpenses(txs, january))
	})

	t.Run("pending entries never change the balance", func(t *testing.T) {
		txs := januaryScenario()
		before := Balance(txs)

		txs = append(txs,
			tx("999", entity.TransactionTypeExpense, entity.TransactionStatusPending, "2024-01-20"),
			tx("555", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2023-12-01"),
		)

		assert.True(t, before.Equal(Balance(txs)))
	})

	t.Run("projected balance can be below the balance", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("100", "2024-01-05"),
			tx("70", entity.TransactionTypeExpense, entity.TransactionStatusPending, "2024-01-06"),
		}

		assertDecimal(t, "100", Balance(txs))
		assertDecimal(t, "30", ProjectedBalance(txs))
		assert.True(t, ProjectedBalance(txs).LessThan(Balance(txs)))
	})

	t.Run("projected balance can be above the balance", func(t *testing.T) {
		txs := januaryScenario()
		assert.True(t, ProjectedBalance(txs).GreaterThan(Balance(txs)))
	})

	t.Run("global balances ignore dates", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("10", "1999-01-01"),
			expense("3", "2099-12-31"),
		}
		assertDecimal(t, "7", Balance(txs))
	})

	t.Run("empty input is zero", func(t *testing.T) {
		assert.True(t, Balance(nil).IsZero())
		assert.True(t, ProjectedBalance([]*entity.Transaction{}).IsZero())
		assert.True(t, PeriodIncome(nil, dateRange("2024-01-01", "2024-01-31")).IsZero())
	})
}

func TestPaidAndPendingPartitionInRange(t *testing.T) {
	txs := []*entity.Transaction{
		income("100", "2024-03-01"),
		tx("50.25", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-03-15"),
		income("10", "2024-03-31"),
		income("1000", "2024-04-01"),
		tx("7", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-02-29"),
	}
	r := dateRange("2024-03-01", "2024-03-31")

	total := decimal.Zero
	for _, item := range FilterByRange(txs, r) {
		if item.IsIncome() {
			total = total.Add(item.Amount)
		}
	}

	assertDecimal(t, "160.25", total)
	assert.True(t, PeriodIncome(txs, r).Add(PeriodPendingIncome(txs, r)).Equal(total))
}

func TestFilterByRange(t *testing.T) {
	txs := []*entity.Transaction{
		income("1", "2024-01-01"),
		income("2", "2024-01-31"),
		income("3", "2023-12-31"),
		income("4", "2024-02-01"),
		nil,
	}

	t.Run("both bounds are inclusive", func(t *testing.T) {
		filtered := FilterByRange(txs, dateRange("2024-01-01", "2024-01-31"))
		assert.Len(t, filtered, 2)
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		assert.Empty(t, FilterByRange(txs, dateRange("2024-01-31", "2024-01-01")))
	})

	t.Run("single day range", func(t *testing.T) {
		filtered := FilterByRange(txs, dateRange("2024-02-01", "2024-02-01"))
		assert.Len(t, filtered, 1)
		assertDecimal(t, "4", filtered[0].Amount)
	})
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name          string
		current       entity.DateRange
		expectedStart string
		expectedEnd   string
	}{
		{"leap february", dateRange("2024-02-01", "2024-02-29"), "2024-01-03", "2024-01-31"},
		{"january", dateRange("2024-01-01", "2024-01-31"), "2023-12-01", "2023-12-31"},
		{"single day", dateRange("2024-03-10", "2024-03-10"), "2024-03-09", "2024-03-09"},
		{"crosses year", dateRange("2024-01-01", "2024-01-07"), "2023-12-25", "2023-12-31"},
		{"spans centuries", dateRange("1700-01-01", "2024-12-31"), "1375-01-01", "1699-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := PreviousPeriod(tt.current)
			assert.Equal(t, tt.expectedStart, prev.StartDate)
			assert.Equal(t, tt.expectedEnd, prev.EndDate)
			assert.Equal(t, tt.current.Days(), prev.Days())
		})
	}

	t.Run("leap february previous period is 29 days", func(t *testing.T) {
		prev := PreviousPeriod(dateRange("2024-02-01", "2024-02-29"))
		assert.Equal(t, 29, prev.Days())
		assert.Equal(t, "2024-01-31", prev.EndDate)
	})

	t.Run("previous sums use paid entries only", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("30", "2024-01-15"),
			tx("5", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-01-16"),
			expense("12", "2024-01-20"),
			income("99", "2024-02-10"),
		}
		feb := dateRange("2024-02-01", "2024-02-29")

		assertDecimal(t, "30", PreviousPeriodIncome(txs, feb))
		assertDecimal(t, "12", PreviousPeriodExpenses(txs, feb))
	})

	t.Run("reversed range does not panic", func(t *testing.T) {
		prev := PreviousPeriod(dateRange("2024-02-10", "2024-02-01"))
		assert.True(t, prev.IsReversed())
		assert.True(t, PeriodIncome([]*entity.Transaction{income("1", "2024-02-05")}, prev).IsZero())
	})
}

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		expected string
	}{
		{"growth", "120", "100", "20"},
		{"decline", "50", "200", "-75"},
		{"from zero to positive", "10", "0", "100"},
		{"both zero", "0", "0", "0"},
		{"rounded to cents", "1", "3", "-66.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, ChangePercent(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous)))
		})
	}
}

func TestSavingsRate(t *testing.T) {
	assertDecimal(t, "25", SavingsRate(decimal.NewFromInt(200), decimal.NewFromInt(150)))
	assertDecimal(t, "0", SavingsRate(decimal.Zero, decimal.NewFromInt(150)))
	assertDecimal(t, "-50", SavingsRate(decimal.NewFromInt(100), decimal.NewFromInt(150)))
}
