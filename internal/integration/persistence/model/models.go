package model

// All returns every model managed by AutoMigrate.
func All() []any {
	return []any{
		&TransactionModel{},
		&FixedExpenseModel{},
		&CategoryModel{},
	}
}
