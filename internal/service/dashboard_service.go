package service

import (
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
)

// DashboardService serves the overview dashboard figures
type DashboardService struct {
	snapshots *SnapshotService
	loc       *time.Location
}

// NewDashboardService creates a new DashboardService; calendar days are
// evaluated in loc
func NewDashboardService(snapshots *SnapshotService, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		snapshots: snapshots,
		loc:       loc,
	}
}

// Location returns the time zone used for day bucketing
func (s *DashboardService) Location() *time.Location {
	return s.loc
}

// GetSummary returns the dashboard summary for the current snapshot
func (s *DashboardService) GetSummary() *domain.DashboardSummary {
	return Summarize(s.snapshots.View(), s.snapshots.Now(), s.loc)
}

// GetCashFlow returns the trailing 7-day cash-flow series
func (s *DashboardService) GetCashFlow() []domain.CashFlowPoint {
	return CashFlowSeries(s.snapshots.View().Transactions, s.snapshots.Now(), s.loc)
}

// GetAllocation returns the portfolio allocation breakdown
func (s *DashboardService) GetAllocation() []domain.AllocationSlice {
	return Allocation(s.snapshots.View().Portfolio)
}
