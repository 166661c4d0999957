package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier adapter.ChangeNotifier) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction deletion.
// Deleting the transaction linked to a fixed expense returns that month to unpaid.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	// Find the existing transaction
	if _, err := findTransaction(ctx, uc.transactionRepo, input.TransactionID); err != nil {
		return nil, err
	}

	// Delete the transaction (hard delete, there is no history)
	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionTransactions, adapter.OperationDelete, input.TransactionID.String())

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
