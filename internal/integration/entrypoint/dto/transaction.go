package dto

import (
	"time"

	"github.com/finanzas-pro/backend/internal/application/usecase/transaction"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// TransactionRequest is the body of POST /transactions and PUT /transactions/:id.
// PUT replaces every field, so omitted optional values are cleared.
type TransactionRequest struct {
	Description    string  `json:"description" binding:"required,max=255"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Type           string  `json:"type" binding:"required,oneof=expense income"`
	Date           string  `json:"date" binding:"required"`
	Category       string  `json:"category" binding:"max=50"`
	Status         string  `json:"status,omitempty" binding:"omitempty,oneof=paid pending"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	FixedExpenseID *string `json:"fixed_expense_id,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	Amount         string    `json:"amount"`
	Type           string    `json:"type"`
	Date           string    `json:"date"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	PaymentMethod  *string   `json:"payment_method,omitempty"`
	FixedExpenseID *string   `json:"fixed_expense_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TransactionTotalsResponse holds the sums of a listing.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for GET /transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ExportSheetResponse is one tab of an export.
type ExportSheetResponse struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ExportResponse represents the JSON form of GET /transactions/export.
type ExportResponse struct {
	FileName string                `json:"file_name"`
	Sheets   []ExportSheetResponse `json:"sheets"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:            txn.ID.String(),
		Description:   txn.Description,
		Amount:        txn.Amount.StringFixed(2),
		Type:          string(txn.Type),
		Date:          txn.Date,
		Category:      txn.CategoryOrDefault(),
		Status:        string(txn.Status),
		PaymentMethod: txn.PaymentMethod,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}

	if txn.FixedExpenseID != nil {
		fixedExpenseID := txn.FixedExpenseID.String()
		response.FixedExpenseID = &fixedExpenseID
	}

	return response
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// ToTransactionListResponse converts the list output to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.IncomeTotal.StringFixed(2),
			ExpenseTotal: output.ExpenseTotal.StringFixed(2),
			NetTotal:     output.NetTotal.StringFixed(2),
		},
	}
}

// ToExportResponse converts the export workbook to its DTO.
func ToExportResponse(output *transaction.ExportTransactionsOutput) ExportResponse {
	sheets := make([]ExportSheetResponse, len(output.Sheets))
	for i, sheet := range output.Sheets {
		sheets[i] = ExportSheetResponse{
			Name:    sheet.Name,
			Headers: sheet.Headers,
			Rows:    sheet.Rows,
		}
	}
	return ExportResponse{
		FileName: output.FileName,
		Sheets:   sheets,
	}
}
