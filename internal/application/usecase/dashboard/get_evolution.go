package dashboard

import (
	"context"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// GetEvolutionInput represents the input for the evolution series.
type GetEvolutionInput struct {
	Range RangeInput
}

// GetEvolutionOutput is the series with the range it covers.
type GetEvolutionOutput struct {
	Range  entity.DateRange
	Series aggregation.Series
}

// GetEvolutionUseCase builds the income/expense/profit series of a range.
type GetEvolutionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetEvolutionUseCase creates a new GetEvolutionUseCase instance.
func NewGetEvolutionUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetEvolutionUseCase {
	return &GetEvolutionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute builds the series. Granularity follows the range length.
func (uc *GetEvolutionUseCase) Execute(ctx context.Context, input GetEvolutionInput) (*GetEvolutionOutput, error) {
	r, err := resolveRange(input.Range, uc.clock)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, entity.TransactionFilter{StartDate: r.StartDate, EndDate: r.EndDate})
	if err != nil {
		return nil, err
	}

	return &GetEvolutionOutput{
		Range:  r,
		Series: aggregation.EvolutionSeries(transactions, r),
	}, nil
}
