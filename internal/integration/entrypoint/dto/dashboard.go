package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// DateRangeResponse represents an inclusive date window.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SliceResponse is one group of a breakdown.
type SliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CashSplitResponse separates cash from every other method.
type CashSplitResponse struct {
	Cash  float64 `json:"cash"`
	Other float64 `json:"other"`
}

// PeriodTotalsResponse holds the status-aware sums of the selected range.
type PeriodTotalsResponse struct {
	Income          float64 `json:"income"`
	Expenses        float64 `json:"expenses"`
	PendingIncome   float64 `json:"pending_income"`
	PendingExpenses float64 `json:"pending_expenses"`
	Net             float64 `json:"net"`
}

// PreviousTotalsResponse holds the paid sums of the preceding window.
type PreviousTotalsResponse struct {
	Range    DateRangeResponse `json:"range"`
	Income   float64           `json:"income"`
	Expenses float64           `json:"expenses"`
}

// SeriesPointResponse is one bucket of an evolution series.
type SeriesPointResponse struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// SeriesResponse is an evolution series.
type SeriesResponse struct {
	Granularity string                `json:"granularity"`
	Points      []SeriesPointResponse `json:"points"`
}

// SummaryResponse represents the response for GET /dashboard/summary.
type SummaryResponse struct {
	Range              DateRangeResponse      `json:"range"`
	Balance            float64                `json:"balance"`
	ProjectedBalance   float64                `json:"projected_balance"`
	Period             PeriodTotalsResponse   `json:"period"`
	Previous           PreviousTotalsResponse `json:"previous"`
	IncomeChange       float64                `json:"income_change"`
	ExpenseChange      float64                `json:"expense_change"`
	ExpensesByCategory []SliceResponse        `json:"expenses_by_category"`
	IncomeByCategory   []SliceResponse        `json:"income_by_category"`
	IncomeByMethod     []SliceResponse        `json:"income_by_method"`
	IncomeCashSplit    CashSplitResponse      `json:"income_cash_split"`
	Evolution          *SeriesResponse        `json:"evolution,omitempty"`
	TopExpenses        []TransactionResponse  `json:"top_expenses"`
	BusinessDays       int                    `json:"business_days"`
	AvgDailyIncome     float64                `json:"avg_daily_income"`
	AvgDailyExpense    float64                `json:"avg_daily_expense"`
	Savings            float64                `json:"savings"`
	SavingsRate        float64                `json:"savings_rate"`
}

// EvolutionResponse represents the response for GET /dashboard/evolution.
type EvolutionResponse struct {
	Range  DateRangeResponse `json:"range"`
	Series SeriesResponse    `json:"series"`
}

// BreakdownResponse represents the response for GET /dashboard/breakdown.
type BreakdownResponse struct {
	Range   DateRangeResponse `json:"range"`
	Type    string            `json:"type"`
	GroupBy string            `json:"group_by"`
	Slices  []SliceResponse   `json:"slices"`
	Total   float64           `json:"total"`
}

// CalendarDayResponse is one day of a calendar month.
type CalendarDayResponse struct {
	Date         string                `json:"date"`
	Weekday      int                   `json:"weekday"`
	Income       float64               `json:"income"`
	Expense      float64               `json:"expense"`
	Balance      float64               `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// CalendarResponse represents the response for GET /dashboard/calendar.
type CalendarResponse struct {
	Month   string                `json:"month"`
	Days    []CalendarDayResponse `json:"days"`
	Income  float64               `json:"income"`
	Expense float64               `json:"expense"`
	Balance float64               `json:"balance"`
}

// PeriodRequest is one side of a comparison. Value is YYYY-MM for months and
// YYYY for years; custom periods use StartDate and EndDate.
type PeriodRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=month year ytd custom"`
	Value     string `json:"value,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CompareRequest represents the request body for POST /dashboard/compare.
type CompareRequest struct {
	PeriodA PeriodRequest `json:"period_a" binding:"required"`
	PeriodB PeriodRequest `json:"period_b" binding:"required"`
	Metric  string        `json:"metric" binding:"required"`
}

// ComparisonResponse represents the response for POST /dashboard/compare.
type ComparisonResponse struct {
	Metric        string            `json:"metric"`
	PeriodA       DateRangeResponse `json:"period_a"`
	PeriodB       DateRangeResponse `json:"period_b"`
	LabelA        string            `json:"label_a"`
	LabelB        string            `json:"label_b"`
	ValueA        float64           `json:"value_a"`
	ValueB        float64           `json:"value_b"`
	Difference    float64           `json:"difference"`
	PercentChange float64           `json:"percent_change"`
}

// MonthPointResponse is one month of a year series.
type MonthPointResponse struct {
	Month int     `json:"month"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// YearSeriesResponse is one year of the overlay.
type YearSeriesResponse struct {
	Year   int                  `json:"year"`
	Points []MonthPointResponse `json:"points"`
	Total  float64              `json:"total"`
}

// YearOverYearResponse represents the response for GET /dashboard/year-over-year.
type YearOverYearResponse struct {
	Metric string               `json:"metric"`
	Series []YearSeriesResponse `json:"series"`
}

// DataRangeResponse represents the response for GET /dashboard/data-range.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func toDateRangeResponse(r entity.DateRange) DateRangeResponse {
	return DateRangeResponse{StartDate: r.StartDate, EndDate: r.EndDate}
}

func toSliceResponses(slices []aggregation.Slice) []SliceResponse {
	responses := make([]SliceResponse, len(slices))
	for i, s := range slices {
		responses[i] = SliceResponse{Name: s.Name, Value: toFloat(s.Value)}
	}
	return responses
}

func toSeriesResponse(series aggregation.Series) SeriesResponse {
	points := make([]SeriesPointResponse, len(series.Points))
	for i, p := range series.Points {
		points[i] = SeriesPointResponse{
			Key:     p.Key,
			Label:   p.Label,
			Income:  toFloat(p.Income),
			Expense: toFloat(p.Expense),
			Profit:  toFloat(p.Profit),
		}
	}
	return SeriesResponse{
		Granularity: string(series.Granularity),
		Points:      points,
	}
}

// ToSummaryResponse converts aggregated metrics to their DTO.
func ToSummaryResponse(m *aggregation.Metrics) SummaryResponse {
	response := SummaryResponse{
		Range:            toDateRangeResponse(m.Range),
		Balance:          toFloat(m.Balance),
		ProjectedBalance: toFloat(m.ProjectedBalance),
		Period: PeriodTotalsResponse{
			Income:          toFloat(m.Period.Income),
			Expenses:        toFloat(m.Period.Expenses),
			PendingIncome:   toFloat(m.Period.PendingIncome),
			PendingExpenses: toFloat(m.Period.PendingExpenses),
			Net:             toFloat(m.Period.Net),
		},
		Previous: PreviousTotalsResponse{
			Range:    toDateRangeResponse(m.Previous.Range),
			Income:   toFloat(m.Previous.Income),
			Expenses: toFloat(m.Previous.Expenses),
		},
		IncomeChange:       toFloat(m.IncomeChange),
		ExpenseChange:      toFloat(m.ExpenseChange),
		ExpensesByCategory: toSliceResponses(m.ExpensesByCategory),
		IncomeByCategory:   toSliceResponses(m.IncomeByCategory),
		IncomeByMethod:     toSliceResponses(m.IncomeByMethod),
		IncomeCashSplit: CashSplitResponse{
			Cash:  toFloat(m.IncomeCashSplit.Cash),
			Other: toFloat(m.IncomeCashSplit.Other),
		},
		TopExpenses:     ToTransactionResponses(m.TopExpenses),
		BusinessDays:    m.BusinessDays,
		AvgDailyIncome:  toFloat(m.AvgDailyIncome),
		AvgDailyExpense: toFloat(m.AvgDailyExpense),
		Savings:         toFloat(m.Savings),
		SavingsRate:     toFloat(m.SavingsRate),
	}

	if m.Evolution != nil {
		series := toSeriesResponse(*m.Evolution)
		response.Evolution = &series
	}

	return response
}

// ToEvolutionResponse converts the evolution output to its DTO.
func ToEvolutionResponse(output *dashboard.GetEvolutionOutput) EvolutionResponse {
	return EvolutionResponse{
		Range:  toDateRangeResponse(output.Range),
		Series: toSeriesResponse(output.Series),
	}
}

// ToBreakdownResponse converts the breakdown output to its DTO.
func ToBreakdownResponse(output *dashboard.GetBreakdownOutput) BreakdownResponse {
	return BreakdownResponse{
		Range:   toDateRangeResponse(output.Range),
		Type:    string(output.Type),
		GroupBy: string(output.GroupBy),
		Slices:  toSliceResponses(output.Slices),
		Total:   toFloat(output.Total),
	}
}

// ToCalendarResponse converts a calendar month to its DTO.
func ToCalendarResponse(calendar *aggregation.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, len(calendar.Days))
	for i, day := range calendar.Days {
		days[i] = CalendarDayResponse{
			Date:         day.Date,
			Weekday:      int(day.Weekday),
			Income:       toFloat(day.Income),
			Expense:      toFloat(day.Expense),
			Balance:      toFloat(day.Balance),
			Transactions: ToTransactionResponses(day.Transactions),
		}
	}
	return CalendarResponse{
		Month:   calendar.Month,
		Days:    days,
		Income:  toFloat(calendar.Income),
		Expense: toFloat(calendar.Expense),
		Balance: toFloat(calendar.Balance),
	}
}

// ToPeriodSpec converts a period request to the aggregation form.
func ToPeriodSpec(req PeriodRequest) aggregation.PeriodSpec {
	return aggregation.PeriodSpec{
		Kind:  aggregation.PeriodKind(req.Kind),
		Value: req.Value,
		Range: entity.DateRange{StartDate: req.StartDate, EndDate: req.EndDate},
	}
}

// ToComparisonResponse converts a comparison to its DTO.
func ToComparisonResponse(c *aggregation.Comparison) ComparisonResponse {
	return ComparisonResponse{
		Metric:        c.Metric.String(),
		PeriodA:       toDateRangeResponse(c.PeriodA),
		PeriodB:       toDateRangeResponse(c.PeriodB),
		LabelA:        c.LabelA,
		LabelB:        c.LabelB,
		ValueA:        toFloat(c.ValueA),
		ValueB:        toFloat(c.ValueB),
		Difference:    toFloat(c.Difference),
		PercentChange: toFloat(c.PercentChange),
	}
}

// ToYearOverYearResponse converts the overlay to its DTO.
func ToYearOverYearResponse(output *dashboard.GetYearOverYearOutput) YearOverYearResponse {
	series := make([]YearSeriesResponse, len(output.Series))
	for i, s := range output.Series {
		points := make([]MonthPointResponse, len(s.Points))
		for j, p := range s.Points {
			points[j] = MonthPointResponse{
				Month: int(p.Month),
				Label: p.Label,
				Value: toFloat(p.Value),
			}
		}
		series[i] = YearSeriesResponse{
			Year:   s.Year,
			Points: points,
			Total:  toFloat(s.Total),
		}
	}
	return YearOverYearResponse{
		Metric: output.Metric.String(),
		Series: series,
	}
}

// ToDataRangeResponse converts the data range output to its DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		OldestDate:        output.OldestDate,
		NewestDate:        output.NewestDate,
		TotalTransactions: output.TotalTransactions,
		HasData:           output.HasData,
	}
}
