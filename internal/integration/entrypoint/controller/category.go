package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pro/backend/internal/application/usecase/category"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category label endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	addUseCase    *category.AddCategoryUseCase
	removeUseCase *category.RemoveCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	addUseCase *category.AddCategoryUseCase,
	removeUseCase *category.RemoveCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	set, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySetResponse(set))
}

// Add handles POST /categories requests.
func (c *CategoryController) Add(ctx *gin.Context) {
	var req dto.AddCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeCategoryNameRequired), err)
		return
	}

	set, err := c.addUseCase.Execute(ctx.Request.Context(), category.AddCategoryInput{
		Type: entity.TransactionType(req.Type),
		Name: req.Name,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategorySetResponse(set))
}

// Remove handles DELETE /categories/:type/:name requests.
func (c *CategoryController) Remove(ctx *gin.Context) {
	set, err := c.removeUseCase.Execute(ctx.Request.Context(), category.RemoveCategoryInput{
		Type: entity.TransactionType(ctx.Param("type")),
		Name: ctx.Param("name"),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySetResponse(set))
}
