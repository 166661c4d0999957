package aggregation

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// MetricKind identifies what a comparison measures.
type MetricKind string

const (
	MetricTotalIncome     MetricKind = "total_income"
	MetricTotalExpense    MetricKind = "total_expense"
	MetricNetIncome       MetricKind = "net_income"
	MetricCategoryIncome  MetricKind = "category_income"
	MetricCategoryExpense MetricKind = "category_expense"
)

// Legacy metric prefixes still sent by older clients.
const (
	legacyCategoryExpensePrefix = "cat_exp_"
	legacyCategoryIncomePrefix  = "cat_inc_"
)

// Metric is a comparable quantity. Category is set for the category kinds only.
type Metric struct {
	Kind     MetricKind
	Category string
}

// ParseMetric accepts "total_income", "total_expense", "net_income",
// "category_income:<name>" and "category_expense:<name>".
func ParseMetric(value string) (Metric, error) {
	switch MetricKind(value) {
	case MetricTotalIncome, MetricTotalExpense, MetricNetIncome:
		return Metric{Kind: MetricKind(value)}, nil
	}

	if name, ok := strings.CutPrefix(value, legacyCategoryExpensePrefix); ok && name != "" {
		return Metric{Kind: MetricCategoryExpense, Category: name}, nil
	}
	if name, ok := strings.CutPrefix(value, legacyCategoryIncomePrefix); ok && name != "" {
		return Metric{Kind: MetricCategoryIncome, Category: name}, nil
	}

	kind, name, found := strings.Cut(value, ":")
	if found && name != "" && (MetricKind(kind) == MetricCategoryIncome || MetricKind(kind) == MetricCategoryExpense) {
		return Metric{Kind: MetricKind(kind), Category: name}, nil
	}

	return Metric{}, domainerror.NewDashboardError(domainerror.ErrCodeInvalidMetric, "unknown metric "+strconv.Quote(value), domainerror.ErrInvalidMetric)
}

// String returns the wire form of the metric.
func (m Metric) String() string {
	if m.Category != "" {
		return string(m.Kind) + ":" + m.Category
	}
	return string(m.Kind)
}

// Evaluate computes the metric over paid transactions in range, rounded to cents.
func (m Metric) Evaluate(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	switch m.Kind {
	case MetricTotalIncome:
		return roundMoney(PeriodIncome(transactions, r))
	case MetricTotalExpense:
		return roundMoney(PeriodExpenses(transactions, r))
	case MetricNetIncome:
		return roundMoney(PeriodIncome(transactions, r).Sub(PeriodExpenses(transactions, r)))
	case MetricCategoryIncome, MetricCategoryExpense:
		txType := entity.TransactionTypeExpense
		if m.Kind == MetricCategoryIncome {
			txType = entity.TransactionTypeIncome
		}
		return roundMoney(sumWhere(transactions, func(t *entity.Transaction) bool {
			return t.IsPaid() && t.Type == txType && t.CategoryOrDefault() == m.Category && r.Contains(t.Date)
		}))
	default:
		return decimal.Zero
	}
}

// PeriodKind tells how a comparison period is expressed.
type PeriodKind string

const (
	PeriodMonth  PeriodKind = "month"
	PeriodYear   PeriodKind = "year"
	PeriodYTD    PeriodKind = "ytd"
	PeriodCustom PeriodKind = "custom"
)

// PeriodSpec is one side of a comparison. Value holds "YYYY-MM" for months and
// "YYYY" for years; Range is used for custom periods.
type PeriodSpec struct {
	Kind  PeriodKind
	Value string
	Range entity.DateRange
}

// Resolve turns the period into a concrete range. asOf bounds year-to-date periods.
func (p PeriodSpec) Resolve(asOf time.Time) (entity.DateRange, error) {
	switch p.Kind {
	case PeriodMonth:
		ym, err := valueobject.ParseYearMonth(p.Value)
		if err != nil {
			return entity.DateRange{}, invalidPeriod(err)
		}
		return entity.MonthRange(ym), nil

	case PeriodYear, PeriodYTD:
		year, err := parseYear(p.Value)
		if err != nil {
			return entity.DateRange{}, invalidPeriod(err)
		}
		if p.Kind == PeriodYear {
			return entity.YearRange(year), nil
		}
		through := valueobject.YearMonth{Year: year, Month: asOf.Month()}
		return entity.DateRange{
			StartDate: entity.YearRange(year).StartDate,
			EndDate:   through.Day(asOf.Day()),
		}, nil

	case PeriodCustom:
		return entity.NewDateRange(p.Range.StartDate, p.Range.EndDate)

	default:
		return entity.DateRange{}, invalidPeriod(nil)
	}
}

// Label is a short human-readable name for the period.
func (p PeriodSpec) Label() string {
	switch p.Kind {
	case PeriodYTD:
		return p.Value + " YTD"
	case PeriodCustom:
		return p.Range.String()
	default:
		return p.Value
	}
}

// Comparison holds a metric evaluated over two periods.
type Comparison struct {
	Metric        Metric
	PeriodA       entity.DateRange
	PeriodB       entity.DateRange
	LabelA        string
	LabelB        string
	ValueA        decimal.Decimal
	ValueB        decimal.Decimal
	Difference    decimal.Decimal
	PercentChange decimal.Decimal
}

// Compare evaluates metric over a and b independently. Difference is B - A and
// the percent change uses A as its base.
func Compare(transactions []*entity.Transaction, a, b PeriodSpec, metric Metric, asOf time.Time) (Comparison, error) {
	rangeA, err := a.Resolve(asOf)
	if err != nil {
		return Comparison{}, err
	}
	rangeB, err := b.Resolve(asOf)
	if err != nil {
		return Comparison{}, err
	}

	valueA := metric.Evaluate(transactions, rangeA)
	valueB := metric.Evaluate(transactions, rangeB)

	return Comparison{
		Metric:        metric,
		PeriodA:       rangeA,
		PeriodB:       rangeB,
		LabelA:        a.Label(),
		LabelB:        b.Label(),
		ValueA:        valueA,
		ValueB:        valueB,
		Difference:    valueB.Sub(valueA),
		PercentChange: ChangePercent(valueB, valueA),
	}, nil
}

// MonthPoint is one month-of-year value of a year-over-year series.
type MonthPoint struct {
	Month time.Month
	Label string
	Value decimal.Decimal
}

// YearSeries is one year of a year-over-year overlay.
type YearSeries struct {
	Year   int
	Points []MonthPoint // Always twelve, January first
	Total  decimal.Decimal
}

// YearOverYear evaluates metric for each calendar month of every year.
// Points are aligned by month of year regardless of each year's day count.
func YearOverYear(transactions []*entity.Transaction, years []int, metric Metric) []YearSeries {
	series := make([]YearSeries, 0, len(years))
	for _, year := range years {
		ys := YearSeries{Year: year, Points: make([]MonthPoint, 0, 12), Total: decimal.Zero}
		for month := time.January; month <= time.December; month++ {
			value := metric.Evaluate(transactions, entity.MonthRange(valueobject.YearMonth{Year: year, Month: month}))
			ys.Points = append(ys.Points, MonthPoint{Month: month, Label: monthAbbreviations[month], Value: value})
			ys.Total = ys.Total.Add(value)
		}
		series = append(series, ys)
	}
	return series
}

func parseYear(value string) (int, error) {
	if len(value) != 4 {
		return 0, domainerror.ErrInvalidPeriod
	}
	return strconv.Atoi(value)
}

func invalidPeriod(err error) error {
	if err == nil {
		err = domainerror.ErrInvalidPeriod
	}
	return domainerror.NewDashboardError(domainerror.ErrCodeInvalidPeriod, "period cannot be resolved", err)
}
