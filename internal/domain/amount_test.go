package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"1.50", true},
		{"-5", true},
		{"100000000000000", true},
		{"999999999999999.99999999", true},
		{"0.00000001", true},
		{"1000000000000000", false},
		{"1e15", false},
		{"0.000000001", false},
		{"1e50000000", false},
		{"1e-50000000", false},
		{"0e50000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, InRange(decimal.RequireFromString(tt.input)))
		})
	}
}
