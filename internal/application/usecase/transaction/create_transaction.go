// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Description    string
	Amount         decimal.Decimal
	Type           entity.TransactionType
	Date           string
	Category       string
	Status         entity.TransactionStatus // Defaults to paid
	PaymentMethod  *string
	FixedExpenseID *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier adapter.ChangeNotifier) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction := entity.NewTransaction(
		input.Description,
		input.Amount,
		input.Type,
		input.Date,
		input.Category,
		input.Status,
		input.PaymentMethod,
		input.FixedExpenseID,
	)

	// Validate before anything is stored
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionTransactions, adapter.OperationCreate, transaction.ID.String())

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
