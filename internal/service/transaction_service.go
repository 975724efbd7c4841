package service

import (
	"context"
	"strings"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	snapshots      *SnapshotService
	eventPublisher websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(snapshots *SnapshotService) *TransactionService {
	return &TransactionService{
		snapshots: snapshots,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	ID          string
	Date        *time.Time
	Amount      decimal.Decimal
	Category    string
	Type        domain.TransactionType
	Description string
}

// CreateTransaction validates and appends a transaction to the history
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	description, err := requireText(input.Description, domain.MaxDescriptionLength, domain.ErrDescriptionRequired, domain.ErrDescriptionTooLong)
	if err != nil {
		return nil, err
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultCategory(input.Type)
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}

	// Default date to now if not provided
	date := s.snapshots.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := domain.Transaction{
		ID:          newID(input.ID),
		Date:        date,
		Amount:      input.Amount,
		Category:    category,
		Type:        input.Type,
		Description: description,
	}

	_, err = s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		if draft.HasTransaction(transaction.ID) {
			return domain.ErrDuplicateID
		}
		draft.Transactions = append(draft.Transactions, transaction)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("transaction_id", transaction.ID).
		Str("type", string(transaction.Type)).
		Str("amount", transaction.Amount.String()).
		Msg("Transaction recorded")

	s.publishEvent(websocket.TransactionCreated(transaction))
	return &transaction, nil
}

// RecordQuickEntry records an income or expense from free-text input, the
// way the dashboard's quick-entry buttons do: the amount must parse as a
// non-negative number, the category is the type's default and the date is
// now.
func (s *TransactionService) RecordQuickEntry(ctx context.Context, txType domain.TransactionType, amountText, description string) (*domain.Transaction, error) {
	if !txType.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return nil, err
	}
	return s.CreateTransaction(ctx, CreateTransactionInput{
		Amount:      amount,
		Category:    defaultCategory(txType),
		Type:        txType,
		Description: description,
	})
}

// GetTransactions returns the transaction history in insertion order
func (s *TransactionService) GetTransactions() []domain.Transaction {
	return s.snapshots.View().Transactions
}

// RecentTransactions returns up to n of the most recently recorded
// transactions, oldest first
func RecentTransactions(txs []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	if len(txs) <= n {
		return txs
	}
	return txs[len(txs)-n:]
}

func defaultCategory(txType domain.TransactionType) string {
	if txType == domain.TransactionTypeIncome {
		return domain.DefaultIncomeCategory
	}
	return domain.DefaultExpenseCategory
}
