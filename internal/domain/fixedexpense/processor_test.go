package fixedexpense

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

func rentTemplate() *entity.FixedExpense {
	day := 1
	return &entity.FixedExpense{
		ID:          uuid.New(),
		Description: "Alquiler local",
		Amount:      decimal.NewFromInt(500),
		Day:         &day,
	}
}

func month(year int, m time.Month) valueobject.YearMonth {
	return valueobject.YearMonth{Year: year, Month: m}
}

func TestProcess(t *testing.T) {
	template := rentTemplate()

	t.Run("rent paid with a different amount", func(t *testing.T) {
		paid, err := Process(template, decimal.NewFromInt(520), "2024-03-01")
		require.NoError(t, err)

		assert.True(t, paid.Amount.Equal(decimal.NewFromInt(520)))
		require.NotNil(t, paid.FixedExpenseID)
		assert.Equal(t, template.ID, *paid.FixedExpenseID)
		assert.Equal(t, entity.TransactionStatusPaid, paid.Status)
		assert.Equal(t, entity.TransactionTypeExpense, paid.Type)
		assert.Equal(t, "2024-03-01", paid.Date)
		assert.Equal(t, entity.FixedExpenseCategory, paid.Category)
		assert.Equal(t, template.Description, paid.Description)
		assert.NotEqual(t, uuid.Nil, paid.ID)
		assert.NoError(t, paid.Validate())

		txs := []*entity.Transaction{paid}
		assert.Same(t, paid, PaymentStatus(template, month(2024, time.March), txs))
		assert.Nil(t, PaymentStatus(template, month(2024, time.April), txs))
	})

	t.Run("template category is kept", func(t *testing.T) {
		category := "Alquiler"
		withCategory := rentTemplate()
		withCategory.Category = &category

		paid, err := Process(withCategory, decimal.NewFromInt(500), "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, "Alquiler", paid.Category)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := Process(template, decimal.Zero, "2024-03-01")
		var fxErr *domainerror.FixedExpenseError
		require.True(t, errors.As(err, &fxErr))
		assert.Equal(t, domainerror.ErrCodeInvalidFixedExpenseAmount, fxErr.Code)

		_, err = Process(template, decimal.NewFromInt(10), "01/03/2024")
		require.True(t, errors.As(err, &fxErr))
		assert.Equal(t, domainerror.ErrCodeInvalidPaymentDate, fxErr.Code)
	})
}

func TestPaymentStatus(t *testing.T) {
	template := rentTemplate()
	march := month(2024, time.March)

	legacy := &entity.Transaction{
		ID:          uuid.New(),
		Description: "Alquiler local",
		Amount:      decimal.NewFromInt(500),
		Type:        entity.TransactionTypeExpense,
		Date:        "2024-03-02",
		Status:      entity.TransactionStatusPaid,
	}

	t.Run("legacy match by description and amount", func(t *testing.T) {
		assert.Same(t, legacy, PaymentStatus(template, march, []*entity.Transaction{legacy}))
	})

	t.Run("legacy match needs the same amount", func(t *testing.T) {
		changed := *legacy
		changed.Amount = decimal.NewFromInt(510)
		assert.Nil(t, PaymentStatus(template, march, []*entity.Transaction{&changed}))
	})

	t.Run("linked transaction wins over an earlier legacy one", func(t *testing.T) {
		linked, err := Process(template, decimal.NewFromInt(530), "2024-03-20")
		require.NoError(t, err)

		assert.Same(t, linked, PaymentStatus(template, march, []*entity.Transaction{legacy, linked}))
	})

	t.Run("first legacy match wins", func(t *testing.T) {
		second := *legacy
		second.ID = uuid.New()
		assert.Same(t, legacy, PaymentStatus(template, march, []*entity.Transaction{legacy, &second}))
	})

	t.Run("link to another template does not match", func(t *testing.T) {
		other := rentTemplate()
		linked, err := Process(other, decimal.NewFromInt(99), "2024-03-05")
		require.NoError(t, err)
		assert.Nil(t, PaymentStatus(template, march, []*entity.Transaction{linked}))
	})

	t.Run("deleting the payment returns to unpaid", func(t *testing.T) {
		assert.Nil(t, PaymentStatus(template, march, nil))
	})
}

func TestLastMonthReference(t *testing.T) {
	template := rentTemplate()

	t.Run("relaxed description match surfaces a changed amount", func(t *testing.T) {
		previous := &entity.Transaction{
			ID:          uuid.New(),
			Description: "Alquiler local",
			Amount:      decimal.NewFromInt(480),
			Type:        entity.TransactionTypeExpense,
			Date:        "2024-02-01",
			Status:      entity.TransactionStatusPaid,
		}

		amount := LastMonthReference(template, month(2024, time.March), []*entity.Transaction{previous})
		require.NotNil(t, amount)
		assert.True(t, amount.Equal(decimal.NewFromInt(480)))
	})

	t.Run("crosses the year boundary", func(t *testing.T) {
		paid, err := Process(template, decimal.NewFromInt(505), "2023-12-01")
		require.NoError(t, err)

		amount := LastMonthReference(template, month(2024, time.January), []*entity.Transaction{paid})
		require.NotNil(t, amount)
		assert.True(t, amount.Equal(decimal.NewFromInt(505)))
	})

	t.Run("nothing last month", func(t *testing.T) {
		assert.Nil(t, LastMonthReference(template, month(2024, time.March), nil))
	})
}

func TestScheduledDate(t *testing.T) {
	day := 31
	template := rentTemplate()
	template.Day = &day

	assert.Equal(t, "2024-02-29", ScheduledDate(template, month(2024, time.February)))
	assert.Equal(t, "2023-02-28", ScheduledDate(template, month(2023, time.February)))
	assert.Equal(t, "2024-03-31", ScheduledDate(template, month(2024, time.March)))

	template.Day = nil
	assert.Equal(t, "2024-03-01", ScheduledDate(template, month(2024, time.March)))
}

func TestBuildMonthStatus(t *testing.T) {
	rent := rentTemplate()
	internet := &entity.FixedExpense{ID: uuid.New(), Description: "Internet", Amount: decimal.NewFromInt(40)}

	paid, err := Process(rent, decimal.NewFromInt(520), "2024-03-01")
	require.NoError(t, err)

	status := BuildMonthStatus([]*entity.FixedExpense{rent, internet}, month(2024, time.March), []*entity.Transaction{paid})

	assert.Equal(t, "2024-03", status.Month)
	require.Len(t, status.Items, 2)
	assert.True(t, status.Items[0].IsPaid())
	assert.False(t, status.Items[1].IsPaid())
	assert.Equal(t, "2024-03-01", status.Items[1].ScheduledDate)
	assert.True(t, status.ExpectedTotal.Equal(decimal.NewFromInt(540)))
	assert.True(t, status.PaidTotal.Equal(decimal.NewFromInt(520)))
	assert.Equal(t, 1, status.PendingCount)
}
