package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// handleError maps coded domain errors to their HTTP status. Anything else
// is logged and answered with a 500 carrying internalCode.
func handleError(ctx *gin.Context, err error, internalCode string) {
	var (
		txnErr   *domainerror.TransactionError
		fxeErr   *domainerror.FixedExpenseError
		catErr   *domainerror.CategoryError
		dshErr   *domainerror.DashboardError
		status   int
		response dto.ErrorResponse
	)

	switch {
	case errors.As(err, &txnErr):
		status = statusForTransactionError(txnErr.Code)
		response = dto.ErrorResponse{Error: txnErr.Message, Code: string(txnErr.Code)}
	case errors.As(err, &fxeErr):
		status = statusForFixedExpenseError(fxeErr.Code)
		response = dto.ErrorResponse{Error: fxeErr.Message, Code: string(fxeErr.Code)}
	case errors.As(err, &catErr):
		status = statusForCategoryError(catErr.Code)
		response = dto.ErrorResponse{Error: catErr.Message, Code: string(catErr.Code)}
	case errors.As(err, &dshErr):
		status = statusForDashboardError(dshErr.Code)
		response = dto.ErrorResponse{Error: dshErr.Message, Code: string(dshErr.Code)}
	default:
		status = http.StatusInternalServerError
		response = dto.ErrorResponse{Error: "An internal error occurred", Code: internalCode}
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		if response.Code == "" {
			response.Code = internalCode
		}
	}

	ctx.JSON(status, response)
}

// badRequest answers a malformed body or query.
func badRequest(ctx *gin.Context, message, code string, err error) {
	response := dto.ErrorResponse{Error: message, Code: code}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionStatus,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForFixedExpenseError(code domainerror.FixedExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeFixedExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFixedExpenseAlreadyPaid:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFixedExpenseAmount,
		domainerror.ErrCodeInvalidFixedExpenseDay,
		domainerror.ErrCodeInvalidYearMonth,
		domainerror.ErrCodeFixedExpenseEmptyDescription,
		domainerror.ErrCodeFixedExpenseDescriptionTooLong,
		domainerror.ErrCodeInvalidPaymentDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeInvalidCategoryType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidPreset,
		domainerror.ErrCodeInvalidMetric,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidYears,
		domainerror.ErrCodeInvalidGrouping,
		domainerror.ErrCodeInvalidType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
