package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Default categories used by the quick-entry actions
const (
	DefaultIncomeCategory  = "Income"
	DefaultExpenseCategory = "Expense"
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxCategoryLength    = 100
)

// Transaction is a single income or expense entry. Transactions are never
// mutated once recorded.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
}

// SignedAmount returns the amount with expenses negated
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
