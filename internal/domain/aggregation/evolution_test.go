package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

func TestEvolutionSeries(t *testing.T) {
	t.Run("january has 31 zero daily buckets", func(t *testing.T) {
		series := EvolutionSeries(nil, dateRange("2024-01-01", "2024-01-31"))

		assert.Equal(t, GranularityDaily, series.Granularity)
		require.Len(t, series.Points, 31)
		for _, p := range series.Points {
			assert.True(t, p.Income.IsZero())
			assert.True(t, p.Expense.IsZero())
			assert.True(t, p.Profit.IsZero())
		}
		assert.Equal(t, "2024-01-01", series.Points[0].Key)
		assert.Equal(t, "01 ene", series.Points[0].Label)
		assert.Equal(t, "2024-01-31", series.Points[30].Key)
	})

	t.Run("daily buckets sum paid entries only", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("100.005", "2024-01-05"),
			expense("40", "2024-01-05"),
			tx("20", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-01-05"),
		}

		series := EvolutionSeries(txs, dateRange("2024-01-01", "2024-01-31"))
		day := series.Points[4]

		assert.Equal(t, "2024-01-05", day.Key)
		assertDecimal(t, "100.01", day.Income)
		assertDecimal(t, "40", day.Expense)
		assertDecimal(t, "60.01", day.Profit)
	})

	t.Run("sixty days stays daily", func(t *testing.T) {
		r := dateRange("2024-01-01", "2024-03-01")
		require.Equal(t, 60, r.Duration())

		series := EvolutionSeries(nil, r)
		assert.Equal(t, GranularityDaily, series.Granularity)
		assert.Len(t, series.Points, 61)
	})

	t.Run("sixty one days switches to monthly", func(t *testing.T) {
		r := dateRange("2024-01-01", "2024-03-02")
		require.Equal(t, 61, r.Duration())

		series := EvolutionSeries(nil, r)
		assert.Equal(t, GranularityMonthly, series.Granularity)
		require.Len(t, series.Points, 3)
		assert.Equal(t, "2024-01", series.Points[0].Key)
		assert.Equal(t, "ene 2024", series.Points[0].Label)
		assert.Equal(t, "mar 2024", series.Points[2].Label)
	})

	t.Run("fifty nine days is daily", func(t *testing.T) {
		assert.Equal(t, GranularityDaily, GranularityFor(dateRange("2024-01-01", "2024-02-29")))
	})

	t.Run("monthly buckets only count entries inside the range", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("10", "2024-01-10"),
			income("30", "2024-01-20"),
			expense("5", "2024-04-30"),
			expense("7", "2024-04-16"),
		}

		series := EvolutionSeries(txs, dateRange("2024-01-15", "2024-04-20"))
		require.Len(t, series.Points, 4)
		assertDecimal(t, "30", series.Points[0].Income)
		assertDecimal(t, "7", series.Points[3].Expense)
		assertDecimal(t, "-7", series.Points[3].Profit)
		assert.True(t, series.Points[1].Income.IsZero())
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		series := EvolutionSeries([]*entity.Transaction{income("1", "2024-01-05")}, dateRange("2024-01-31", "2024-01-01"))
		assert.Empty(t, series.Points)
	})

	t.Run("identical input gives identical output", func(t *testing.T) {
		txs := januaryScenario()
		r := dateRange("2023-11-01", "2024-02-15")
		assert.Equal(t, EvolutionSeries(txs, r), EvolutionSeries(txs, r))
	})
}

func TestGeneratePeriodSeries(t *testing.T) {
	t.Run("monthly series crosses years", func(t *testing.T) {
		periods := GeneratePeriodSeries(dateRange("2023-11-20", "2024-02-03"), GranularityMonthly)
		require.Len(t, periods, 4)
		assert.Equal(t, "2023-11", periods[0].Key)
		assert.Equal(t, "2023-11-01", periods[0].PeriodStart)
		assert.Equal(t, "2024-02-29", periods[3].PeriodEnd)
	})

	t.Run("malformed dates give no periods", func(t *testing.T) {
		assert.Empty(t, GeneratePeriodSeries(dateRange("2024-1-1", "2024-01-31"), GranularityDaily))
	})
}
