package dto

import "github.com/finanzas-pro/backend/internal/domain/entity"

// AddCategoryRequest represents the request body for POST /categories.
type AddCategoryRequest struct {
	Type string `json:"type" binding:"required,oneof=expense income"`
	Name string `json:"name" binding:"required"`
}

// CategorySetResponse represents both ordered label lists.
type CategorySetResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// ToCategorySetResponse converts a domain CategorySet to its DTO.
func ToCategorySetResponse(set *entity.CategorySet) CategorySetResponse {
	response := CategorySetResponse{
		Income:  []string{},
		Expense: []string{},
	}
	if set == nil {
		return response
	}
	response.Income = append(response.Income, set.Income...)
	response.Expense = append(response.Expense, set.Expense...)
	return response
}
