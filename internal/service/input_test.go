package service

import (
	"errors"
	"testing"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  error
	}{
		{"42.5", "42.5", nil},
		{"  7 ", "7", nil},
		{"0", "0", nil},
		{"999999999999999.99", "999999999999999.99", nil},
		{"", "", domain.ErrInvalidAmount},
		{"ten", "", domain.ErrInvalidAmount},
		{"-1", "", domain.ErrInvalidAmount},
		{"1e50000000", "", domain.ErrAmountOutOfRange},
		{"-1e50000000", "", domain.ErrAmountOutOfRange},
		{"1000000000000000", "", domain.ErrAmountOutOfRange},
		{"0.123456789", "", domain.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}
