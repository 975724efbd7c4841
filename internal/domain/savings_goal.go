package domain

import "github.com/shopspring/decimal"

const MaxGoalNameLength = 255

// SavingsGoal tracks contributions towards a target amount. Goals are never
// capped or closed automatically; CurrentAmount may exceed TargetAmount.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      Date            `json:"deadline"`
}
