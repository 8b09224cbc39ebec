package transaction

import (
	"errors"
	"time"

	"moneytrack/internal/money"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether the type is one of the known enumeration values.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Fixed category sets. A category is only acceptable for the matching
// transaction type; stored rows are never revalidated if the sets change.
var (
	ExpenseCategories = []string{"food", "transport", "bills", "shopping", "fun", "other"}
	IncomeCategories  = []string{"salary", "freelance", "gift", "business", "other"}
)

// CategoriesFor returns the allowed categories for the given type,
// or nil if the type itself is invalid.
func CategoriesFor(t Type) []string {
	switch t {
	case TypeExpense:
		return ExpenseCategories
	case TypeIncome:
		return IncomeCategories
	default:
		return nil
	}
}

// ValidCategory reports whether category is allowed for the given type.
func ValidCategory(t Type, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}

	return false
}

var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
)

// Transaction represents a single recorded income or expense event.
// Once created it is never updated or deleted.
type Transaction struct {
	ID          int64
	Type        Type
	Amount      money.Amount
	Date        time.Time // calendar day, midnight UTC
	Category    string
	Description string
	CreatedAt   time.Time
}
