package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotApplicable is the display form of a percentage that has no meaning,
// such as the return on a zero-cost holding.
const NotApplicable = "N/A"

// Percent is a percentage that may be undefined. The zero value is N/A.
type Percent struct {
	Value decimal.Decimal
	Valid bool
}

// NewPercent returns a defined percentage
func NewPercent(v decimal.Decimal) Percent {
	return Percent{Value: v, Valid: true}
}

// PercentOf returns part / whole x 100, or N/A when whole is zero
func PercentOf(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return Percent{}
	}
	return NewPercent(part.Div(whole).Mul(decimal.NewFromInt(100)))
}

// Round returns the percentage rounded to places decimals
func (p Percent) Round(places int32) Percent {
	if !p.Valid {
		return p
	}
	return NewPercent(p.Value.Round(places))
}

// String formats the percentage with two decimals, or N/A
func (p Percent) String() string {
	if !p.Valid {
		return NotApplicable
	}
	return p.Value.StringFixed(2) + "%"
}

// SignedString is like String but always prints the sign
func (p Percent) SignedString() string {
	if !p.Valid {
		return NotApplicable
	}
	if p.Value.IsNegative() {
		return p.String()
	}
	return "+" + p.String()
}

// MarshalJSON writes the value with two decimals, or null when undefined
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value.StringFixed(2))
}

var _ json.Marshaler = Percent{}
