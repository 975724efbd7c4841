package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowDays is the length of the trailing cash-flow window
const CashFlowDays = 7

// DashboardSummary contains the headline figures of the overview dashboard
type DashboardSummary struct {
	NetBalance      decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	PortfolioValue  decimal.Decimal
	PortfolioCost   decimal.Decimal
	PortfolioGain   decimal.Decimal
	PortfolioReturn Percent
	ActiveGoals     int
	MonthlyIncome   decimal.Decimal
	CashFlow        []CashFlowPoint
	Allocation      []AllocationSlice
}

// CashFlowPoint is the signed total of one calendar day
type CashFlowPoint struct {
	Label string
	Date  Date
	Total decimal.Decimal
}

// AllocationSlice is one holding's share of the portfolio value
type AllocationSlice struct {
	AssetID string
	Symbol  string
	Value   decimal.Decimal
	Share   Percent
}

// AssetPerformance holds the derived figures of one holding
type AssetPerformance struct {
	Asset  PortfolioAsset
	Cost   decimal.Decimal
	Value  decimal.Decimal
	Profit decimal.Decimal
	Return Percent
}

// GoalStatus describes where a savings goal stands against its deadline
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusComplete   GoalStatus = "complete"
	GoalStatusPassed     GoalStatus = "passed"
)

// GoalProgress holds the derived figures of one savings goal.
// DaysRemaining is nil once the deadline has passed.
type GoalProgress struct {
	Goal          SavingsGoal
	Progress      Percent
	Remaining     decimal.Decimal
	DaysRemaining *int
	Status        GoalStatus
	DeadlineAt    time.Time
}
