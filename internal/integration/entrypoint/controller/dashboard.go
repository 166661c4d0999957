package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase      *dashboard.GetSummaryUseCase
	evolutionUseCase    *dashboard.GetEvolutionUseCase
	breakdownUseCase    *dashboard.GetBreakdownUseCase
	calendarUseCase     *dashboard.GetCalendarUseCase
	compareUseCase      *dashboard.ComparePeriodsUseCase
	yearOverYearUseCase *dashboard.GetYearOverYearUseCase
	dataRangeUseCase    *dashboard.GetDataRangeUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	evolutionUseCase *dashboard.GetEvolutionUseCase,
	breakdownUseCase *dashboard.GetBreakdownUseCase,
	calendarUseCase *dashboard.GetCalendarUseCase,
	compareUseCase *dashboard.ComparePeriodsUseCase,
	yearOverYearUseCase *dashboard.GetYearOverYearUseCase,
	dataRangeUseCase *dashboard.GetDataRangeUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:      summaryUseCase,
		evolutionUseCase:    evolutionUseCase,
		breakdownUseCase:    breakdownUseCase,
		calendarUseCase:     calendarUseCase,
		compareUseCase:      compareUseCase,
		yearOverYearUseCase: yearOverYearUseCase,
		dataRangeUseCase:    dataRangeUseCase,
	}
}

// rangeFromQuery reads start_date, end_date and preset.
func rangeFromQuery(ctx *gin.Context) dashboard.RangeInput {
	return dashboard.RangeInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Preset:    entity.RangePreset(ctx.Query("preset")),
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	metrics, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		Range: rangeFromQuery(ctx),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(metrics))
}

// GetEvolution handles GET /dashboard/evolution requests.
func (c *DashboardController) GetEvolution(ctx *gin.Context) {
	output, err := c.evolutionUseCase.Execute(ctx.Request.Context(), dashboard.GetEvolutionInput{
		Range: rangeFromQuery(ctx),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvolutionResponse(output))
}

// GetBreakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) GetBreakdown(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetBreakdownInput{
		Range:   rangeFromQuery(ctx),
		Type:    entity.TransactionType(ctx.Query("type")),
		GroupBy: dashboard.Grouping(ctx.Query("group_by")),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}

// GetCalendar handles GET /dashboard/calendar requests.
func (c *DashboardController) GetCalendar(ctx *gin.Context) {
	calendar, err := c.calendarUseCase.Execute(ctx.Request.Context(), dashboard.GetCalendarInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(calendar))
}

// Compare handles POST /dashboard/compare requests.
func (c *DashboardController) Compare(ctx *gin.Context) {
	var req dto.CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPeriod), err)
		return
	}

	comparison, err := c.compareUseCase.Execute(ctx.Request.Context(), dashboard.ComparePeriodsInput{
		PeriodA: dto.ToPeriodSpec(req.PeriodA),
		PeriodB: dto.ToPeriodSpec(req.PeriodB),
		Metric:  req.Metric,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(comparison))
}

// GetYearOverYear handles GET /dashboard/year-over-year requests.
// years is a comma-separated list, e.g. years=2023,2024.
func (c *DashboardController) GetYearOverYear(ctx *gin.Context) {
	var years []int
	for _, part := range strings.Split(ctx.Query("years"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			badRequest(ctx, "years must be a comma-separated list of YYYY values", string(domainerror.ErrCodeInvalidYears), nil)
			return
		}
		years = append(years, year)
	}

	output, err := c.yearOverYearUseCase.Execute(ctx.Request.Context(), dashboard.GetYearOverYearInput{
		Years:  years,
		Metric: ctx.Query("metric"),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearOverYearResponse(output))
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	output, err := c.dataRangeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}
