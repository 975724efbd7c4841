package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSnapshotKey is the fixed key the snapshot blob is stored under
const DefaultSnapshotKey = "wealthflow_data"

// FinanceSnapshot is the aggregate root: the whole state of the tracker,
// persisted as one unit.
type FinanceSnapshot struct {
	Transactions  []Transaction    `json:"transactions"`
	Portfolio     []PortfolioAsset `json:"portfolio"`
	SavingsGoals  []SavingsGoal    `json:"savingsGoals"`
	MonthlyIncome decimal.Decimal  `json:"monthlyIncome"`
}

// Clone returns a deep copy of the snapshot
func (s *FinanceSnapshot) Clone() *FinanceSnapshot {
	c := &FinanceSnapshot{
		Transactions:  make([]Transaction, len(s.Transactions)),
		Portfolio:     make([]PortfolioAsset, len(s.Portfolio)),
		SavingsGoals:  make([]SavingsGoal, len(s.SavingsGoals)),
		MonthlyIncome: s.MonthlyIncome,
	}
	copy(c.Transactions, s.Transactions)
	copy(c.Portfolio, s.Portfolio)
	copy(c.SavingsGoals, s.SavingsGoals)
	return c
}

// FindAsset returns the index of the asset with the given id, or -1
func (s *FinanceSnapshot) FindAsset(id string) int {
	for i := range s.Portfolio {
		if s.Portfolio[i].ID == id {
			return i
		}
	}
	return -1
}

// FindGoal returns the index of the goal with the given id, or -1
func (s *FinanceSnapshot) FindGoal(id string) int {
	for i := range s.SavingsGoals {
		if s.SavingsGoals[i].ID == id {
			return i
		}
	}
	return -1
}

// HasTransaction reports whether a transaction with the given id exists
func (s *FinanceSnapshot) HasTransaction(id string) bool {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return true
		}
	}
	return false
}

// Validate checks the collection invariants: unique identifiers and
// non-negative amounts, quantities and prices.
func (s *FinanceSnapshot) Validate() error {
	seen := make(map[string]bool, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.ID == "" || seen[t.ID] {
			return fmt.Errorf("%w: transaction id %q", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
		if !t.Type.IsValid() {
			return fmt.Errorf("%w: transaction %s", ErrInvalidTransactionType, t.ID)
		}
		if !InRange(t.Amount) {
			return fmt.Errorf("%w: transaction %s", ErrAmountOutOfRange, t.ID)
		}
		if t.Amount.IsNegative() {
			return fmt.Errorf("%w: transaction %s", ErrInvalidAmount, t.ID)
		}
	}

	seen = make(map[string]bool, len(s.Portfolio))
	for _, a := range s.Portfolio {
		if a.ID == "" || seen[a.ID] {
			return fmt.Errorf("%w: asset id %q", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = true
		if !a.Type.IsValid() {
			return fmt.Errorf("%w: asset %s", ErrInvalidAssetType, a.ID)
		}
		if !InRange(a.Quantity) || !InRange(a.PurchasePrice) || !InRange(a.CurrentPrice) {
			return fmt.Errorf("%w: asset %s", ErrAmountOutOfRange, a.ID)
		}
		if a.Quantity.IsNegative() {
			return fmt.Errorf("%w: asset %s", ErrInvalidQuantity, a.ID)
		}
		if a.PurchasePrice.IsNegative() || a.CurrentPrice.IsNegative() {
			return fmt.Errorf("%w: asset %s", ErrInvalidPrice, a.ID)
		}
	}

	seen = make(map[string]bool, len(s.SavingsGoals))
	for _, g := range s.SavingsGoals {
		if g.ID == "" || seen[g.ID] {
			return fmt.Errorf("%w: goal id %q", ErrDuplicateID, g.ID)
		}
		seen[g.ID] = true
		if !InRange(g.TargetAmount) || !InRange(g.CurrentAmount) {
			return fmt.Errorf("%w: goal %s", ErrAmountOutOfRange, g.ID)
		}
		if !g.TargetAmount.IsPositive() {
			return fmt.Errorf("%w: goal %s", ErrInvalidTarget, g.ID)
		}
		if g.CurrentAmount.IsNegative() {
			return fmt.Errorf("%w: goal %s", ErrInvalidAmount, g.ID)
		}
	}

	if !InRange(s.MonthlyIncome) {
		return fmt.Errorf("%w: monthly income", ErrAmountOutOfRange)
	}
	if s.MonthlyIncome.IsNegative() {
		return fmt.Errorf("%w: monthly income", ErrInvalidAmount)
	}
	return nil
}

// DefaultSnapshot returns the seed data used when nothing has been stored
// yet or the stored blob cannot be read. Seed transactions are dated now.
func DefaultSnapshot(now time.Time) *FinanceSnapshot {
	now = now.UTC()
	return &FinanceSnapshot{
		Transactions: []Transaction{
			{ID: "1", Date: now, Amount: decimal.NewFromInt(5000), Category: "Salary", Type: TransactionTypeIncome, Description: "Monthly Salary"},
			{ID: "2", Date: now, Amount: decimal.NewFromInt(1500), Category: "Rent", Type: TransactionTypeExpense, Description: "Apartment Rent"},
			{ID: "3", Date: now, Amount: decimal.NewFromInt(200), Category: "Food", Type: TransactionTypeExpense, Description: "Grocery shopping"},
		},
		Portfolio: []PortfolioAsset{
			{ID: "p1", Name: "Bitcoin", Symbol: "BTC", Quantity: decimal.RequireFromString("0.25"), PurchasePrice: decimal.NewFromInt(45000), CurrentPrice: decimal.NewFromInt(62000), Type: AssetTypeCrypto},
			{ID: "p2", Name: "Apple Inc.", Symbol: "AAPL", Quantity: decimal.NewFromInt(15), PurchasePrice: decimal.NewFromInt(150), CurrentPrice: decimal.NewFromInt(185), Type: AssetTypeStock},
			{ID: "p3", Name: "Vanguard S&P 500", Symbol: "VOO", Quantity: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(380), CurrentPrice: decimal.NewFromInt(440), Type: AssetTypeETF},
		},
		SavingsGoals: []SavingsGoal{
			{ID: "s1", Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(15000), CurrentAmount: decimal.NewFromInt(8500), Deadline: NewDate(2025, time.December, 31)},
			{ID: "s2", Name: "Europe Summer Trip", TargetAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.NewFromInt(1200), Deadline: NewDate(2025, time.June, 1)},
		},
		MonthlyIncome: decimal.NewFromInt(5000),
	}
}

// SnapshotRepository is a key-value string store holding serialized snapshots
type SnapshotRepository interface {
	// Get returns the blob stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Put replaces the blob stored under key
	Put(ctx context.Context, key string, value string) error
}
