package transaction

import (
	"context"
	"fmt"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// Sheet names of the export workbook.
const (
	SheetAll     = "Todos"
	SheetIncome  = "Ingresos"
	SheetExpense = "Gastos"
)

// ExportHeaders are the localized column headers, one per exported field.
var ExportHeaders = []string{"Fecha", "Descripción", "Categoría", "Método de pago", "Tipo", "Estado", "Importe"}

const uncategorizedLabel = "Sin Categoría"

// ExportSheet is one tab of the export.
type ExportSheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ExportTransactionsInput selects the exported range.
type ExportTransactionsInput struct {
	Range entity.DateRange
}

// ExportTransactionsOutput is the workbook with its suggested base file name.
type ExportTransactionsOutput struct {
	FileName string
	Sheets   []ExportSheet
}

// Sheet returns the sheet with the given name.
func (o *ExportTransactionsOutput) Sheet(name string) (ExportSheet, bool) {
	for _, sheet := range o.Sheets {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return ExportSheet{}, false
}

// ExportTransactionsUseCase builds the all/income/expense tabular dump of a range.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the workbook.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.Range.StartDate == "" || input.Range.EndDate == "" {
		return nil, domainerror.NewTransactionError(domainerror.ErrCodeMissingTransactionFields, "start_date and end_date are required", nil)
	}

	filter := entity.TransactionFilter{
		StartDate: input.Range.StartDate,
		EndDate:   input.Range.EndDate,
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	all := ExportSheet{Name: SheetAll, Headers: ExportHeaders, Rows: [][]string{}}
	incomes := ExportSheet{Name: SheetIncome, Headers: ExportHeaders, Rows: [][]string{}}
	expenses := ExportSheet{Name: SheetExpense, Headers: ExportHeaders, Rows: [][]string{}}

	for _, t := range transactions {
		row := exportRow(t)
		all.Rows = append(all.Rows, row)
		if t.IsIncome() {
			incomes.Rows = append(incomes.Rows, row)
		} else {
			expenses.Rows = append(expenses.Rows, row)
		}
	}

	return &ExportTransactionsOutput{
		FileName: fmt.Sprintf("Finanzas_Pro_%s_%s", input.Range.StartDate, input.Range.EndDate),
		Sheets:   []ExportSheet{all, incomes, expenses},
	}, nil
}

func exportRow(t *entity.Transaction) []string {
	category := t.Category
	if category == "" {
		category = uncategorizedLabel
	}

	kind := "Gasto"
	if t.IsIncome() {
		kind = "Ingreso"
	}

	status := "Pendiente"
	if t.IsPaid() {
		status = "Pagado"
	}

	return []string{
		t.Date,
		t.Description,
		category,
		t.PaymentMethodValue(),
		kind,
		status,
		t.Amount.StringFixed(2),
	}
}
