package fixedexpense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	processor "github.com/finanzas-pro/backend/internal/domain/fixedexpense"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// PayFixedExpenseInput confirms a payment. Amount defaults to the template
// amount; Date defaults to the template day in Month, and Month to the current month.
type PayFixedExpenseInput struct {
	ID     uuid.UUID
	Month  string
	Amount *decimal.Decimal
	Date   string
}

// PayFixedExpenseOutput holds the generated transaction.
type PayFixedExpenseOutput struct {
	Transaction *entity.Transaction
}

// PayFixedExpenseUseCase moves a template from unpaid to paid for one month.
type PayFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	transactionRepo  adapter.TransactionRepository
	notifier         adapter.ChangeNotifier
	clock            adapter.Clock
}

// NewPayFixedExpenseUseCase creates a new PayFixedExpenseUseCase instance.
func NewPayFixedExpenseUseCase(
	fixedExpenseRepo adapter.FixedExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
	clock adapter.Clock,
) *PayFixedExpenseUseCase {
	return &PayFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		transactionRepo:  transactionRepo,
		notifier:         notifier,
		clock:            clock,
	}
}

// Execute processes the template and stores the resulting transaction.
// A month that already has a matching payment is refused.
func (uc *PayFixedExpenseUseCase) Execute(ctx context.Context, input PayFixedExpenseInput) (*PayFixedExpenseOutput, error) {
	template, err := findFixedExpense(ctx, uc.fixedExpenseRepo, input.ID)
	if err != nil {
		return nil, err
	}

	// Resolve the month from the explicit date first
	var ym valueobject.YearMonth
	if input.Date != "" {
		if !valueobject.IsISODate(input.Date) {
			return nil, domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidPaymentDate, "date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidTransactionDate)
		}
		ym, _ = valueobject.ParseYearMonth(input.Date[:7])
	} else {
		if ym, err = resolveMonth(input.Month, uc.clock); err != nil {
			return nil, err
		}
		input.Date = processor.ScheduledDate(template, ym)
	}

	amount := template.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}

	monthTransactions, err := uc.transactionRepo.FindAll(ctx, entity.TransactionFilter{
		StartDate: ym.FirstDay(),
		EndDate:   ym.LastDay(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if existing := processor.PaymentStatus(template, ym, monthTransactions); existing != nil {
		return nil, domainerror.NewFixedExpenseError(domainerror.ErrCodeFixedExpenseAlreadyPaid, "fixed expense already paid for "+ym.String(), domainerror.ErrFixedExpenseAlreadyPaid)
	}

	transaction, err := processor.Process(template, amount, input.Date)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create fixed expense payment: %w", err)
	}

	slog.Info("fixed expense paid",
		"fixed_expense_id", template.ID,
		"transaction_id", transaction.ID,
		"month", ym.String(),
		"amount", amount.String(),
	)

	notify.Publish(ctx, uc.notifier, adapter.CollectionTransactions, adapter.OperationCreate, transaction.ID.String())

	return &PayFixedExpenseOutput{Transaction: transaction}, nil
}
