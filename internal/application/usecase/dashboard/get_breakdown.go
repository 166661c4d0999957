package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// Grouping selects how a breakdown groups transactions.
type Grouping string

const (
	GroupByCategory     Grouping = "category"
	GroupByMethod       Grouping = "method"
	GroupByKnownMethods Grouping = "known_methods"
	GroupByCash         Grouping = "cash"
)

// GetBreakdownInput represents the input for a breakdown.
type GetBreakdownInput struct {
	Range   RangeInput
	Type    entity.TransactionType
	GroupBy Grouping
}

// GetBreakdownOutput holds the slices and their total.
// For cash grouping the slices are "Efectivo" and "Otros".
type GetBreakdownOutput struct {
	Range   entity.DateRange
	Type    entity.TransactionType
	GroupBy Grouping
	Slices  []aggregation.Slice
	Total   decimal.Decimal
}

// GetBreakdownUseCase groups paid transactions of a range.
type GetBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute computes the breakdown. Type defaults to expense and grouping to category.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
	// Validate input
	if input.Type == "" {
		input.Type = entity.TransactionTypeExpense
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidType, "type must be 'income' or 'expense'", domainerror.ErrInvalidTransactionType)
	}
	if input.GroupBy == "" {
		input.GroupBy = GroupByCategory
	}

	r, err := resolveRange(input.Range, uc.clock)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, entity.TransactionFilter{StartDate: r.StartDate, EndDate: r.EndDate})
	if err != nil {
		return nil, err
	}

	var slices []aggregation.Slice
	switch input.GroupBy {
	case GroupByCategory:
		slices = aggregation.CategoryBreakdown(transactions, r, input.Type)
	case GroupByMethod:
		slices = aggregation.MethodBreakdown(transactions, r, input.Type)
	case GroupByKnownMethods:
		slices = aggregation.KnownMethodBreakdown(transactions, r, input.Type)
	case GroupByCash:
		split := aggregation.SplitByCash(transactions, r, input.Type)
		slices = []aggregation.Slice{
			{Name: aggregation.CashPaymentMethod, Value: split.Cash},
			{Name: entity.DefaultCategory, Value: split.Other},
		}
	default:
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidGrouping, "unknown grouping", domainerror.ErrInvalidGrouping)
	}

	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}

	return &GetBreakdownOutput{
		Range:   r,
		Type:    input.Type,
		GroupBy: input.GroupBy,
		Slices:  slices,
		Total:   total,
	}, nil
}
