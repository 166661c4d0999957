package fixedexpense

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// TemplateStatus is the derived state of one template in a month.
type TemplateStatus struct {
	Template        *entity.FixedExpense
	Payment         *entity.Transaction // nil while unpaid
	LastMonthAmount *decimal.Decimal
	ScheduledDate   string
}

// IsPaid reports whether a matching transaction exists.
func (s TemplateStatus) IsPaid() bool {
	return s.Payment != nil
}

// MonthStatus summarizes every template for one month.
type MonthStatus struct {
	Month         string
	Items         []TemplateStatus
	ExpectedTotal decimal.Decimal
	PaidTotal     decimal.Decimal
	PendingCount  int
}

// BuildMonthStatus derives the payment status of each template in ym, keeping template order.
func BuildMonthStatus(templates []*entity.FixedExpense, ym valueobject.YearMonth, transactions []*entity.Transaction) MonthStatus {
	status := MonthStatus{
		Month:         ym.String(),
		Items:         make([]TemplateStatus, 0, len(templates)),
		ExpectedTotal: decimal.Zero,
		PaidTotal:     decimal.Zero,
	}

	for _, template := range templates {
		item := TemplateStatus{
			Template:        template,
			Payment:         PaymentStatus(template, ym, transactions),
			LastMonthAmount: LastMonthReference(template, ym, transactions),
			ScheduledDate:   ScheduledDate(template, ym),
		}

		status.ExpectedTotal = status.ExpectedTotal.Add(template.Amount)
		if item.IsPaid() {
			status.PaidTotal = status.PaidTotal.Add(item.Payment.Amount)
		} else {
			status.PendingCount++
		}
		status.Items = append(status.Items, item)
	}

	return status
}
