package aggregation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

func tx(amount string, txType entity.TransactionType, status entity.TransactionStatus, date string) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		Description: "test",
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
		Date:        date,
		Category:    entity.DefaultCategory,
		Status:      status,
	}
}

func income(amount, date string) *entity.Transaction {
	return tx(amount, entity.TransactionTypeIncome, entity.TransactionStatusPaid, date)
}

func expense(amount, date string) *entity.Transaction {
	return tx(amount, entity.TransactionTypeExpense, entity.TransactionStatusPaid, date)
}

func withCategory(t *entity.Transaction, category string) *entity.Transaction {
	t.Category = category
	return t
}

func withMethod(t *entity.Transaction, method string) *entity.Transaction {
	t.PaymentMethod = &method
	return t
}

func dateRange(start, end string) entity.DateRange {
	return entity.DateRange{StartDate: start, EndDate: end}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
