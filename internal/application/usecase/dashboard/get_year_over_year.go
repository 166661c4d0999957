package dashboard

import (
	"context"
	"sort"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// MaxYearOverYearSeries bounds the number of overlaid years.
const MaxYearOverYearSeries = 10

// GetYearOverYearInput represents the years and metric to overlay.
type GetYearOverYearInput struct {
	Years  []int
	Metric string
}

// GetYearOverYearOutput is one twelve-point series per year, oldest first.
type GetYearOverYearOutput struct {
	Metric aggregation.Metric
	Series []aggregation.YearSeries
}

// GetYearOverYearUseCase overlays a metric month by month across years.
type GetYearOverYearUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetYearOverYearUseCase creates a new GetYearOverYearUseCase instance.
func NewGetYearOverYearUseCase(transactionRepo adapter.TransactionRepository) *GetYearOverYearUseCase {
	return &GetYearOverYearUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the overlay.
func (uc *GetYearOverYearUseCase) Execute(ctx context.Context, input GetYearOverYearInput) (*GetYearOverYearOutput, error) {
	if len(input.Years) == 0 || len(input.Years) > MaxYearOverYearSeries {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidYears, "between 1 and 10 years are required", domainerror.ErrInvalidYears)
	}
	for _, year := range input.Years {
		if year < 1000 || year > 9999 {
			return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidYears, "years must have four digits", domainerror.ErrInvalidYears)
		}
	}

	metric, err := aggregation.ParseMetric(input.Metric)
	if err != nil {
		return nil, err
	}

	years := append([]int(nil), input.Years...)
	sort.Ints(years)

	transactions, err := loadAll(ctx, uc.transactionRepo)
	if err != nil {
		return nil, err
	}

	return &GetYearOverYearOutput{
		Metric: metric,
		Series: aggregation.YearOverYear(transactions, years, metric),
	}, nil
}
