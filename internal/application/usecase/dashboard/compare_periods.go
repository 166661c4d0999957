package dashboard

import (
	"context"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
)

// ComparePeriodsInput represents two periods and the metric to compare.
type ComparePeriodsInput struct {
	PeriodA aggregation.PeriodSpec
	PeriodB aggregation.PeriodSpec
	Metric  string
}

// ComparePeriodsUseCase compares a metric across two arbitrary periods.
type ComparePeriodsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewComparePeriodsUseCase creates a new ComparePeriodsUseCase instance.
func NewComparePeriodsUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *ComparePeriodsUseCase {
	return &ComparePeriodsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute evaluates the metric over both periods.
func (uc *ComparePeriodsUseCase) Execute(ctx context.Context, input ComparePeriodsInput) (*aggregation.Comparison, error) {
	metric, err := aggregation.ParseMetric(input.Metric)
	if err != nil {
		return nil, err
	}

	// Resolve both periods before touching the store
	asOf := now(uc.clock)
	if _, err := input.PeriodA.Resolve(asOf); err != nil {
		return nil, err
	}
	if _, err := input.PeriodB.Resolve(asOf); err != nil {
		return nil, err
	}

	transactions, err := loadAll(ctx, uc.transactionRepo)
	if err != nil {
		return nil, err
	}

	comparison, err := aggregation.Compare(transactions, input.PeriodA, input.PeriodB, metric, asOf)
	if err != nil {
		return nil, err
	}
	return &comparison, nil
}
