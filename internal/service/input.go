package service

import (
	"strings"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseAmount parses user-entered numeric text. Blank, non-numeric,
// negative and out of range values are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !domain.InRange(amount) {
		return decimal.Zero, domain.ErrAmountOutOfRange
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

// newID returns the caller-supplied id, or a fresh UUID when it is blank
func newID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.New().String()
	}
	return id
}

// requireText trims s and checks it against the given limits
func requireText(s string, maxLen int, errRequired, errTooLong error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errRequired
	}
	if len(s) > maxLen {
		return "", errTooLong
	}
	return s, nil
}
