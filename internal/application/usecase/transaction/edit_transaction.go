package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// EditTransactionInput is the full replacement record. Every field is written.
type EditTransactionInput struct {
	ID             uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Type           entity.TransactionType
	Date           string
	Category       string
	Status         entity.TransactionStatus
	PaymentMethod  *string
	FixedExpenseID *uuid.UUID
}

// EditTransactionOutput represents the output of a transaction edit.
type EditTransactionOutput struct {
	Transaction *entity.Transaction
}

// EditTransactionUseCase replaces a transaction by id.
type EditTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewEditTransactionUseCase creates a new EditTransactionUseCase instance.
func NewEditTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier adapter.ChangeNotifier) *EditTransactionUseCase {
	return &EditTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the replacement.
func (uc *EditTransactionUseCase) Execute(ctx context.Context, input EditTransactionInput) (*EditTransactionOutput, error) {
	existing, err := findTransaction(ctx, uc.transactionRepo, input.ID)
	if err != nil {
		return nil, err
	}

	replacement := entity.NewTransaction(
		input.Description,
		input.Amount,
		input.Type,
		input.Date,
		input.Category,
		input.Status,
		input.PaymentMethod,
		input.FixedExpenseID,
	)
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	// Validate the whole record, nothing is merged from the previous version
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Replace(ctx, replacement); err != nil {
		return nil, fmt.Errorf("failed to replace transaction: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionTransactions, adapter.OperationUpdate, replacement.ID.String())

	return &EditTransactionOutput{Transaction: replacement}, nil
}

// ToggleTransactionStatusInput identifies the transaction to flip.
type ToggleTransactionStatusInput struct {
	ID uuid.UUID
}

// ToggleTransactionStatusUseCase flips a transaction between paid and pending.
type ToggleTransactionStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewToggleTransactionStatusUseCase creates a new ToggleTransactionStatusUseCase instance.
func NewToggleTransactionStatusUseCase(transactionRepo adapter.TransactionRepository, notifier adapter.ChangeNotifier) *ToggleTransactionStatusUseCase {
	return &ToggleTransactionStatusUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute writes the record back with the opposite status.
func (uc *ToggleTransactionStatusUseCase) Execute(ctx context.Context, input ToggleTransactionStatusInput) (*EditTransactionOutput, error) {
	transaction, err := findTransaction(ctx, uc.transactionRepo, input.ID)
	if err != nil {
		return nil, err
	}

	transaction.Status = transaction.Status.Toggle()
	if strings.TrimSpace(transaction.Category) == "" {
		transaction.Category = entity.DefaultCategory
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Replace(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to toggle transaction status: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionTransactions, adapter.OperationUpdate, transaction.ID.String())

	return &EditTransactionOutput{Transaction: transaction}, nil
}

func findTransaction(ctx context.Context, repo adapter.TransactionRepository, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return transaction, nil
}
