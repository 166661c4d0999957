package aggregation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input    string
		expected Metric
	}{
		{"total_income", Metric{Kind: MetricTotalIncome}},
		{"total_expense", Metric{Kind: MetricTotalExpense}},
		{"net_income", Metric{Kind: MetricNetIncome}},
		{"category_expense:Alquiler", Metric{Kind: MetricCategoryExpense, Category: "Alquiler"}},
		{"category_income:Servicios Públicos", Metric{Kind: MetricCategoryIncome, Category: "Servicios Públicos"}},
		{"cat_exp_Marketing", Metric{Kind: MetricCategoryExpense, Category: "Marketing"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			metric, err := ParseMetric(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, metric)
		})
	}

	t.Run("unknown metric", func(t *testing.T) {
		for _, input := range []string{"", "profit", "category_expense:", "cat_exp_"} {
			_, err := ParseMetric(input)

			var dashErr *domainerror.DashboardError
			require.True(t, errors.As(err, &dashErr), input)
			assert.Equal(t, domainerror.ErrCodeInvalidMetric, dashErr.Code)
		}
	})
}

func TestPeriodSpecResolve(t *testing.T) {
	asOf := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		spec     PeriodSpec
		expected entity.DateRange
	}{
		{"month", PeriodSpec{Kind: PeriodMonth, Value: "2024-02"}, dateRange("2024-02-01", "2024-02-29")},
		{"year", PeriodSpec{Kind: PeriodYear, Value: "2023"}, dateRange("2023-01-01", "2023-12-31")},
		{"ytd", PeriodSpec{Kind: PeriodYTD, Value: "2023"}, dateRange("2023-01-01", "2023-03-15")},
		{"custom", PeriodSpec{Kind: PeriodCustom, Range: dateRange("2024-01-10", "2024-01-20")}, dateRange("2024-01-10", "2024-01-20")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.spec.Resolve(asOf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}

	t.Run("ytd clamps leap day", func(t *testing.T) {
		leap := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		r, err := PeriodSpec{Kind: PeriodYTD, Value: "2023"}.Resolve(leap)
		require.NoError(t, err)
		assert.Equal(t, "2023-02-28", r.EndDate)
	})

	t.Run("invalid specs", func(t *testing.T) {
		for _, spec := range []PeriodSpec{
			{Kind: PeriodMonth, Value: "2024-13"},
			{Kind: PeriodYear, Value: "24"},
			{Kind: PeriodYTD, Value: "abcd"},
			{Kind: PeriodCustom, Range: dateRange("2024/01/01", "2024-01-02")},
			{Kind: "quarter", Value: "2024-Q1"},
		} {
			_, err := spec.Resolve(asOf)
			assert.Error(t, err, spec)
		}
	})
}

func TestCompare(t *testing.T) {
	txs := []*entity.Transaction{
		income("100", "2024-01-10"),
		income("120", "2024-02-10"),
		withCategory(expense("500", "2024-01-01"), "Alquiler"),
		withCategory(expense("520", "2024-02-01"), "Alquiler"),
		withCategory(expense("80", "2024-02-05"), "Marketing"),
		tx("1000", entity.TransactionTypeIncome, entity.TransactionStatusPending, "2024-02-20"),
	}
	jan := PeriodSpec{Kind: PeriodMonth, Value: "2024-01"}
	feb := PeriodSpec{Kind: PeriodMonth, Value: "2024-02"}
	asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("total income", func(t *testing.T) {
		cmp, err := Compare(txs, jan, feb, Metric{Kind: MetricTotalIncome}, asOf)
		require.NoError(t, err)
		assertDecimal(t, "100", cmp.ValueA)
		assertDecimal(t, "120", cmp.ValueB)
		assertDecimal(t, "20", cmp.Difference)
		assertDecimal(t, "20", cmp.PercentChange)
		assert.Equal(t, "2024-01", cmp.LabelA)
	})

	t.Run("net income", func(t *testing.T) {
		cmp, err := Compare(txs, jan, feb, Metric{Kind: MetricNetIncome}, asOf)
		require.NoError(t, err)
		assertDecimal(t, "-400", cmp.ValueA)
		assertDecimal(t, "-480", cmp.ValueB)
		assertDecimal(t, "-80", cmp.Difference)
	})

	t.Run("category expense from zero", func(t *testing.T) {
		cmp, err := Compare(txs, jan, feb, Metric{Kind: MetricCategoryExpense, Category: "Marketing"}, asOf)
		require.NoError(t, err)
		assertDecimal(t, "0", cmp.ValueA)
		assertDecimal(t, "80", cmp.ValueB)
		assertDecimal(t, "100", cmp.PercentChange)
	})

	t.Run("both zero", func(t *testing.T) {
		cmp, err := Compare(txs, jan, feb, Metric{Kind: MetricCategoryIncome, Category: "Cursos"}, asOf)
		require.NoError(t, err)
		assertDecimal(t, "0", cmp.PercentChange)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := Compare(txs, PeriodSpec{Kind: PeriodMonth, Value: "nope"}, feb, Metric{Kind: MetricTotalIncome}, asOf)
		assert.Error(t, err)
	})
}

func TestYearOverYear(t *testing.T) {
	txs := []*entity.Transaction{
		income("10", "2023-02-28"),
		income("20", "2024-02-29"),
		income("5", "2024-12-31"),
	}

	series := YearOverYear(txs, []int{2023, 2024}, Metric{Kind: MetricTotalIncome})

	require.Len(t, series, 2)
	for _, ys := range series {
		require.Len(t, ys.Points, 12)
		assert.Equal(t, time.January, ys.Points[0].Month)
		assert.Equal(t, "dic", ys.Points[11].Label)
	}
	assertDecimal(t, "10", series[0].Points[1].Value)
	assertDecimal(t, "20", series[1].Points[1].Value)
	assertDecimal(t, "5", series[1].Points[11].Value)
	assertDecimal(t, "25", series[1].Total)
}
