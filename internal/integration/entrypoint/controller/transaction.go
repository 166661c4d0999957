// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/usecase/transaction"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	editUseCase   *transaction.EditTransactionUseCase
	toggleUseCase *transaction.ToggleTransactionStatusUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	editUseCase *transaction.EditTransactionUseCase,
	toggleUseCase *transaction.ToggleTransactionStatusUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		editUseCase:   editUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Filter: entity.TransactionFilter{
			StartDate: ctx.Query("start_date"),
			EndDate:   ctx.Query("end_date"),
			Type:      entity.TransactionType(ctx.Query("type")),
			Status:    entity.TransactionStatus(ctx.Query("status")),
			Category:  ctx.Query("category"),
		},
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingTransactionFields), err)
		return
	}

	fixedExpenseID, ok := parseOptionalID(ctx, req.FixedExpenseID)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Description:    req.Description,
		Amount:         decimal.NewFromFloat(req.Amount),
		Type:           entity.TransactionType(req.Type),
		Date:           req.Date,
		Category:       req.Category,
		Status:         entity.TransactionStatus(req.Status),
		PaymentMethod:  req.PaymentMethod,
		FixedExpenseID: fixedExpenseID,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests. The body replaces the whole record.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingTransactionFields), err)
		return
	}

	fixedExpenseID, ok := parseOptionalID(ctx, req.FixedExpenseID)
	if !ok {
		return
	}

	status := entity.TransactionStatus(req.Status)
	if status == "" {
		status = entity.TransactionStatusPaid
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), transaction.EditTransactionInput{
		ID:             id,
		Description:    req.Description,
		Amount:         decimal.NewFromFloat(req.Amount),
		Type:           entity.TransactionType(req.Type),
		Date:           req.Date,
		Category:       req.Category,
		Status:         status,
		PaymentMethod:  req.PaymentMethod,
		FixedExpenseID: fixedExpenseID,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// ToggleStatus handles PATCH /transactions/:id/toggle-status requests.
func (c *TransactionController) ToggleStatus(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), transaction.ToggleTransactionStatusInput{ID: id})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: id}); err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /transactions/export requests.
// format=csv streams a single sheet (Todos by default); otherwise the whole workbook is returned as JSON.
func (c *TransactionController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		Range: entity.DateRange{
			StartDate: ctx.Query("start_date"),
			EndDate:   ctx.Query("end_date"),
		},
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	if ctx.DefaultQuery("format", "json") != "csv" {
		ctx.JSON(http.StatusOK, dto.ToExportResponse(output))
		return
	}

	sheetName := ctx.DefaultQuery("sheet", transaction.SheetAll)
	sheet, found := output.Sheet(sheetName)
	if !found {
		badRequest(ctx, fmt.Sprintf("sheet must be %s, %s or %s", transaction.SheetAll, transaction.SheetIncome, transaction.SheetExpense),
			string(domainerror.ErrCodeMissingTransactionFields), nil)
		return
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s.csv"`, output.FileName, sheet.Name))
	ctx.Status(http.StatusOK)

	writer := csv.NewWriter(ctx.Writer)
	_ = writer.Write(sheet.Headers)
	_ = writer.WriteAll(sheet.Rows)
}

func parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid transaction ID format", string(domainerror.ErrCodeTransactionNotFound), nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalID(ctx *gin.Context, value *string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		badRequest(ctx, "Invalid fixed expense ID format", string(domainerror.ErrCodeMissingTransactionFields), nil)
		return nil, false
	}
	return &id, true
}
