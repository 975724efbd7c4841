package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// timestampFormat is the ISO-8601 layout with milliseconds used for transaction dates
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	ID          string  `json:"id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

// QuickEntryRequest is the body of the record-income and record-expense actions
type QuickEntryRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := service.ParseAmount(req.Amount)
	if err != nil {
		return invalidNumber(c, "amount")
	}

	var date *time.Time
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		parsed, err := parseTimestamp(*req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
			})
		}
		date = &parsed
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), service.CreateTransactionInput{
		ID:          req.ID,
		Date:        date,
		Amount:      amount,
		Category:    req.Category,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err, "create transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// RecordIncome handles POST /api/v1/transactions/income
func (h *TransactionHandler) RecordIncome(c echo.Context) error {
	return h.recordQuickEntry(c, domain.TransactionTypeIncome)
}

// RecordExpense handles POST /api/v1/transactions/expense
func (h *TransactionHandler) RecordExpense(c echo.Context) error {
	return h.recordQuickEntry(c, domain.TransactionTypeExpense)
}

func (h *TransactionHandler) recordQuickEntry(c echo.Context, txType domain.TransactionType) error {
	var req QuickEntryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	transaction, err := h.transactionService.RecordQuickEntry(c.Request().Context(), txType, req.Amount, req.Description)
	if err != nil {
		return serviceError(c, err, "record "+string(txType))
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions handles GET /api/v1/transactions
// Accepts an optional limit query param returning only the most recent entries
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	transactions := h.transactionService.GetTransactions()

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		var limit int32
		if _, err := parseIntParam(limitStr, &limit); err != nil || limit < 1 {
			return NewValidationError(c, "Invalid limit", []ValidationError{
				{Field: "limit", Message: "Must be a positive integer"},
			})
		}
		transactions = service.RecentTransactions(transactions, int(limit))
	}

	resp := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		resp[i] = toTransactionResponse(&transactions[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.UTC().Format(timestampFormat),
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		Type:        string(t.Type),
		Description: t.Description,
	}
}

// parseTimestamp accepts an RFC 3339 timestamp or a bare calendar date,
// which is taken as midnight UTC
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Midnight(time.UTC), nil
}

// parseIntParam parses an optional integer query parameter
func parseIntParam(s string, out *int32) (bool, error) {
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return false, errors.New("invalid integer")
	}
	*out = int32(v)
	return true, nil
}
