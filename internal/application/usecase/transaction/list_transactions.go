package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter entity.TransactionFilter
}

// ListTransactionsOutput represents the listed transactions and their totals.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions. Totals cover every listed entry regardless of status.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: transactions,
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, t := range transactions {
		if t.IsIncome() {
			output.IncomeTotal = output.IncomeTotal.Add(t.Amount)
		} else {
			output.ExpenseTotal = output.ExpenseTotal.Add(t.Amount)
		}
	}
	output.NetTotal = output.IncomeTotal.Sub(output.ExpenseTotal)

	return output, nil
}

func validateFilter(filter entity.TransactionFilter) error {
	if filter.StartDate != "" && !valueobject.IsISODate(filter.StartDate) {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionDate, "start_date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidTransactionDate)
	}
	if filter.EndDate != "" && !valueobject.IsISODate(filter.EndDate) {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionDate, "end_date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidTransactionDate)
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionType, "type must be 'income' or 'expense'", domainerror.ErrInvalidTransactionType)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionStatus, "status must be 'paid' or 'pending'", domainerror.ErrInvalidTransactionStatus)
	}
	return nil
}
