package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	fixedexpense "github.com/finanzas-pro/backend/internal/application/usecase/fixed_expense"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// FixedExpenseController handles fixed expense template endpoints.
type FixedExpenseController struct {
	listUseCase   *fixedexpense.ListFixedExpensesUseCase
	createUseCase *fixedexpense.CreateFixedExpenseUseCase
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase
	statusUseCase *fixedexpense.GetMonthStatusUseCase
	payUseCase    *fixedexpense.PayFixedExpenseUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
	statusUseCase *fixedexpense.GetMonthStatusUseCase,
	payUseCase *fixedexpense.PayFixedExpenseUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statusUseCase: statusUseCase,
		payUseCase:    payUseCase,
	}
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	templates, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponses(templates))
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidFixedExpenseAmount), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedexpense.CreateFixedExpenseInput{
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Day:         req.Day,
		Category:    req.Category,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Update handles PATCH /fixed-expenses/:id requests.
func (c *FixedExpenseController) Update(ctx *gin.Context) {
	id, ok := parseFixedExpenseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidFixedExpenseAmount), err)
		return
	}

	update := entity.FixedExpenseUpdate{
		Description: req.Description,
		Day:         req.Day,
		ClearDay:    req.ClearDay,
		Category:    req.Category,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		update.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fixedexpense.UpdateFixedExpenseInput{
		ID:     id,
		Update: update,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Delete handles DELETE /fixed-expenses/:id requests.
// Transactions already generated from the template are kept.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	id, ok := parseFixedExpenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{ID: id}); err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Status handles GET /fixed-expenses/status requests.
func (c *FixedExpenseController) Status(ctx *gin.Context) {
	status, err := c.statusUseCase.Execute(ctx.Request.Context(), fixedexpense.GetMonthStatusInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthStatusResponse(status))
}

// Pay handles POST /fixed-expenses/:id/pay requests. An empty body pays
// the template amount on its scheduled date of the current month.
func (c *FixedExpenseController) Pay(ctx *gin.Context) {
	id, ok := parseFixedExpenseID(ctx)
	if !ok {
		return
	}

	var req dto.PayFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidFixedExpenseAmount), err)
		return
	}

	input := fixedexpense.PayFixedExpenseInput{
		ID:    id,
		Month: req.Month,
		Date:  req.Date,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeFixedExpenseInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

func parseFixedExpenseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid fixed expense ID format", string(domainerror.ErrCodeFixedExpenseNotFound), nil)
		return uuid.Nil, false
	}
	return id, true
}
