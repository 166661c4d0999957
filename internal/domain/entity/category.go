package entity

import (
	"strings"

	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// MaxCategoryNameLength is the longest category label accepted.
const MaxCategoryNameLength = 50

// Default category labels used when nothing is stored yet.
var (
	DefaultIncomeCategories  = []string{"Servicios", "Productos", "Cursos", "Otros"}
	DefaultExpenseCategories = []string{"Alquiler", "Insumos", "Marketing", "Impuestos", "Servicios Públicos", "Personal", "Otros"}
)

// CategorySet holds the ordered income and expense category labels.
// Labels are not tied to transactions: removing one never touches transactions using it.
type CategorySet struct {
	Income  []string
	Expense []string
}

// DefaultCategorySet returns a fresh copy of the default labels.
func DefaultCategorySet() *CategorySet {
	return &CategorySet{
		Income:  append([]string(nil), DefaultIncomeCategories...),
		Expense: append([]string(nil), DefaultExpenseCategories...),
	}
}

// List returns the labels for a type.
func (s *CategorySet) List(categoryType TransactionType) []string {
	if categoryType == TransactionTypeIncome {
		return s.Income
	}
	return s.Expense
}

// Add appends a label. Duplicates are allowed.
func (s *CategorySet) Add(categoryType TransactionType, name string) error {
	name, err := ValidateCategory(categoryType, name)
	if err != nil {
		return err
	}

	if categoryType == TransactionTypeIncome {
		s.Income = append(s.Income, name)
	} else {
		s.Expense = append(s.Expense, name)
	}
	return nil
}

// Remove drops every label equal to name. It reports whether anything was removed.
func (s *CategorySet) Remove(categoryType TransactionType, name string) bool {
	list := s.List(categoryType)
	kept := make([]string, 0, len(list))
	for _, label := range list {
		if label != name {
			kept = append(kept, label)
		}
	}

	if categoryType == TransactionTypeIncome {
		s.Income = kept
	} else {
		s.Expense = kept
	}
	return len(kept) != len(list)
}

// ValidateCategory checks a type and label pair and returns the trimmed label.
func ValidateCategory(categoryType TransactionType, name string) (string, error) {
	if !categoryType.IsValid() {
		return "", domainerror.NewCategoryError(domainerror.ErrCodeInvalidCategoryType, "type must be 'income' or 'expense'", domainerror.ErrInvalidCategoryType)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(domainerror.ErrCodeCategoryNameRequired, "name is required", domainerror.ErrCategoryNameRequired)
	}
	if len([]rune(name)) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(domainerror.ErrCodeCategoryNameTooLong, "name must be 50 characters or less", domainerror.ErrCategoryNameTooLong)
	}
	return name, nil
}
