package dto

import (
	"time"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/fixedexpense"
)

// CreateFixedExpenseRequest represents the request body for template creation.
type CreateFixedExpenseRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Day         *int    `json:"day,omitempty" binding:"omitempty,min=1,max=31"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=50"`
}

// UpdateFixedExpenseRequest represents a partial template update.
type UpdateFixedExpenseRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Day         *int     `json:"day,omitempty" binding:"omitempty,min=1,max=31"`
	ClearDay    bool     `json:"clear_day,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=50"`
}

// PayFixedExpenseRequest represents the confirmation of a template payment.
// Every field is optional.
type PayFixedExpenseRequest struct {
	Month  string   `json:"month,omitempty"`
	Amount *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date   string   `json:"date,omitempty"`
}

// FixedExpenseResponse represents a template in API responses.
type FixedExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Day         *int      `json:"day,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FixedExpenseStatusResponse is one template's state in a month.
type FixedExpenseStatusResponse struct {
	FixedExpense    FixedExpenseResponse `json:"fixed_expense"`
	Paid            bool                 `json:"paid"`
	Payment         *TransactionResponse `json:"payment,omitempty"`
	LastMonthAmount *string              `json:"last_month_amount,omitempty"`
	ScheduledDate   string               `json:"scheduled_date"`
}

// MonthStatusResponse represents the response for GET /fixed-expenses/status.
type MonthStatusResponse struct {
	Month         string                       `json:"month"`
	Items         []FixedExpenseStatusResponse `json:"items"`
	ExpectedTotal string                       `json:"expected_total"`
	PaidTotal     string                       `json:"paid_total"`
	PendingCount  int                          `json:"pending_count"`
}

// ToFixedExpenseResponse converts a domain FixedExpense to its DTO.
func ToFixedExpenseResponse(f *entity.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:          f.ID.String(),
		Description: f.Description,
		Amount:      f.Amount.StringFixed(2),
		Day:         f.Day,
		Category:    f.CategoryOrDefault(),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ToFixedExpenseResponses converts a slice of templates.
func ToFixedExpenseResponses(templates []*entity.FixedExpense) []FixedExpenseResponse {
	responses := make([]FixedExpenseResponse, len(templates))
	for i, f := range templates {
		responses[i] = ToFixedExpenseResponse(f)
	}
	return responses
}

// ToMonthStatusResponse converts a month status to its DTO.
func ToMonthStatusResponse(status *fixedexpense.MonthStatus) MonthStatusResponse {
	items := make([]FixedExpenseStatusResponse, len(status.Items))
	for i, item := range status.Items {
		items[i] = FixedExpenseStatusResponse{
			FixedExpense:  ToFixedExpenseResponse(item.Template),
			Paid:          item.IsPaid(),
			ScheduledDate: item.ScheduledDate,
		}
		if item.Payment != nil {
			payment := ToTransactionResponse(item.Payment)
			items[i].Payment = &payment
		}
		if item.LastMonthAmount != nil {
			amount := item.LastMonthAmount.StringFixed(2)
			items[i].LastMonthAmount = &amount
		}
	}

	return MonthStatusResponse{
		Month:         status.Month,
		Items:         items,
		ExpectedTotal: status.ExpectedTotal.StringFixed(2),
		PaidTotal:     status.PaidTotal.StringFixed(2),
		PendingCount:  status.PendingCount,
	}
}
