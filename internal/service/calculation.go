package service

import (
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums the amounts of income transactions
func TotalIncome(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == domain.TransactionTypeIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpenses sums the amounts of expense transactions
func TotalExpenses(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == domain.TransactionTypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// NetBalance returns income minus expenses over the whole history
func NetBalance(txs []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}

// PortfolioValue sums currentPrice x quantity over all holdings
func PortfolioValue(assets []domain.PortfolioAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Value())
	}
	return total
}

// PortfolioCost sums purchasePrice x quantity over all holdings
func PortfolioCost(assets []domain.PortfolioAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Cost())
	}
	return total
}

// PortfolioGain sums (currentPrice - purchasePrice) x quantity; it is
// negative when the portfolio trades below its cost basis
func PortfolioGain(assets []domain.PortfolioAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.CurrentPrice.Sub(a.PurchasePrice).Mul(a.Quantity))
	}
	return total
}

// Performance computes cost, value, profit and return of one holding.
// Return is N/A when the cost basis is zero.
func Performance(a domain.PortfolioAsset) domain.AssetPerformance {
	cost := a.Cost()
	value := a.Value()
	profit := value.Sub(cost)
	return domain.AssetPerformance{
		Asset:  a,
		Cost:   cost,
		Value:  value,
		Profit: profit,
		Return: domain.PercentOf(profit, cost),
	}
}

// Performances returns Performance for every holding, in portfolio order
func Performances(assets []domain.PortfolioAsset) []domain.AssetPerformance {
	result := make([]domain.AssetPerformance, 0, len(assets))
	for _, a := range assets {
		result = append(result, Performance(a))
	}
	return result
}

// Allocation returns each holding's current value and share of the total.
// An empty portfolio yields an empty, non-nil slice.
func Allocation(assets []domain.PortfolioAsset) []domain.AllocationSlice {
	total := PortfolioValue(assets)
	slices := make([]domain.AllocationSlice, 0, len(assets))
	for _, a := range assets {
		value := a.Value()
		slices = append(slices, domain.AllocationSlice{
			AssetID: a.ID,
			Symbol:  a.Symbol,
			Value:   value,
			Share:   domain.PercentOf(value, total),
		})
	}
	return slices
}

// CashFlowSeries returns the signed daily totals of the trailing
// domain.CashFlowDays calendar days, oldest first and ending today. Both the
// transactions and now are truncated to calendar days in loc, so a
// transaction belongs to the day it happened on in that zone.
func CashFlowSeries(txs []domain.Transaction, now time.Time, loc *time.Location) []domain.CashFlowPoint {
	today := domain.DateOf(now, loc)
	first := today.AddDays(-(domain.CashFlowDays - 1))

	totals := make(map[domain.Date]decimal.Decimal, domain.CashFlowDays)
	for _, t := range txs {
		day := domain.DateOf(t.Date, loc)
		if day.Before(first) || day.After(today) {
			continue
		}
		totals[day] = totals[day].Add(t.SignedAmount())
	}

	series := make([]domain.CashFlowPoint, 0, domain.CashFlowDays)
	for i := 0; i < domain.CashFlowDays; i++ {
		day := first.AddDays(i)
		total, ok := totals[day]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, domain.CashFlowPoint{
			Label: day.Weekday().String()[:3],
			Date:  day,
			Total: total,
		})
	}
	return series
}

// DaysUntil returns the number of days from now until midnight of the
// deadline in loc, rounded up. It is zero or negative once the deadline has
// been reached.
func DaysUntil(deadline domain.Date, now time.Time, loc *time.Location) int {
	diff := deadline.Midnight(loc).Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// GoalProgress computes progress towards a savings goal. Progress is
// clamped to [0, 100]; it is N/A for a goal without a positive target.
// A goal whose deadline has been reached reports no day count.
func GoalProgress(g domain.SavingsGoal, now time.Time, loc *time.Location) domain.GoalProgress {
	progress := domain.Percent{}
	if g.TargetAmount.IsPositive() {
		pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		if pct.IsNegative() {
			pct = decimal.Zero
		}
		progress = domain.NewPercent(pct)
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	result := domain.GoalProgress{
		Goal:       g,
		Progress:   progress,
		Remaining:  remaining,
		DeadlineAt: g.Deadline.Midnight(loc),
	}

	days := DaysUntil(g.Deadline, now, loc)
	if days > 0 {
		result.DaysRemaining = &days
	}

	switch {
	case progress.Valid && progress.Value.Equal(hundred):
		result.Status = domain.GoalStatusComplete
	case days <= 0:
		result.Status = domain.GoalStatusPassed
	default:
		result.Status = domain.GoalStatusInProgress
	}
	return result
}

// GoalsProgress returns GoalProgress for every goal, in snapshot order
func GoalsProgress(goals []domain.SavingsGoal, now time.Time, loc *time.Location) []domain.GoalProgress {
	result := make([]domain.GoalProgress, 0, len(goals))
	for _, g := range goals {
		result = append(result, GoalProgress(g, now, loc))
	}
	return result
}

// Summarize computes the dashboard figures of a snapshot
func Summarize(snapshot *domain.FinanceSnapshot, now time.Time, loc *time.Location) *domain.DashboardSummary {
	cost := PortfolioCost(snapshot.Portfolio)
	gain := PortfolioGain(snapshot.Portfolio)
	return &domain.DashboardSummary{
		NetBalance:      NetBalance(snapshot.Transactions),
		TotalIncome:     TotalIncome(snapshot.Transactions),
		TotalExpenses:   TotalExpenses(snapshot.Transactions),
		PortfolioValue:  PortfolioValue(snapshot.Portfolio),
		PortfolioCost:   cost,
		PortfolioGain:   gain,
		PortfolioReturn: domain.PercentOf(gain, cost),
		ActiveGoals:     len(snapshot.SavingsGoals),
		MonthlyIncome:   snapshot.MonthlyIncome,
		CashFlow:        CashFlowSeries(snapshot.Transactions, now, loc),
		Allocation:      Allocation(snapshot.Portfolio),
	}
}
