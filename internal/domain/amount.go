package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Bounds on any number stored in the snapshot
const (
	MaxIntegerDigits = 15
	MaxDecimalPlaces = 8
)

// InRange reports whether d has at most MaxIntegerDigits integer digits and
// at most MaxDecimalPlaces decimal places. It only looks at the exponent and
// the coefficient, so it stays cheap for inputs such as 1e50000000.
func InRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -MaxDecimalPlaces || exp > MaxIntegerDigits {
		return false
	}
	coef := d.Coefficient()
	digits := len(new(big.Int).Abs(coef).String())
	return digits+exp <= MaxIntegerDigits
}
