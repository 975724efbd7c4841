package handler

import (
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// CashFlowPointResponse is one day of the cash-flow chart
type CashFlowPointResponse struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Total string `json:"total"`
}

// AllocationSliceResponse is one slice of the allocation chart
type AllocationSliceResponse struct {
	AssetID      string         `json:"assetId"`
	Symbol       string         `json:"symbol"`
	Value        string         `json:"value"`
	Share        domain.Percent `json:"share"`
	ShareDisplay string         `json:"shareDisplay"`
}

// AllocationResponse wraps the allocation slices; Empty tells renderers to
// show a "no holdings" state instead of an empty chart
type AllocationResponse struct {
	Empty  bool                      `json:"empty"`
	Total  string                    `json:"total"`
	Slices []AllocationSliceResponse `json:"slices"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	NetBalance      string                  `json:"netBalance"`
	TotalIncome     string                  `json:"totalIncome"`
	TotalExpenses   string                  `json:"totalExpenses"`
	PortfolioValue  string                  `json:"portfolioValue"`
	PortfolioCost   string                  `json:"portfolioCost"`
	PortfolioGain   string                  `json:"portfolioGain"`
	PortfolioReturn domain.Percent          `json:"portfolioReturn"`
	ActiveGoals     int                     `json:"activeGoals"`
	MonthlyIncome   string                  `json:"monthlyIncome"`
	CashFlow        []CashFlowPointResponse `json:"cashFlow"`
	Allocation      AllocationResponse      `json:"allocation"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.dashboardService.GetSummary()

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		NetBalance:      summary.NetBalance.StringFixed(2),
		TotalIncome:     summary.TotalIncome.StringFixed(2),
		TotalExpenses:   summary.TotalExpenses.StringFixed(2),
		PortfolioValue:  summary.PortfolioValue.StringFixed(2),
		PortfolioCost:   summary.PortfolioCost.StringFixed(2),
		PortfolioGain:   summary.PortfolioGain.StringFixed(2),
		PortfolioReturn: summary.PortfolioReturn,
		ActiveGoals:     summary.ActiveGoals,
		MonthlyIncome:   summary.MonthlyIncome.StringFixed(2),
		CashFlow:        toCashFlowResponse(summary.CashFlow),
		Allocation:      toAllocationResponse(summary.Allocation),
	})
}

// GetCashFlow handles GET /api/v1/dashboard/cash-flow
func (h *DashboardHandler) GetCashFlow(c echo.Context) error {
	return c.JSON(http.StatusOK, toCashFlowResponse(h.dashboardService.GetCashFlow()))
}

// GetAllocation handles GET /api/v1/dashboard/allocation
func (h *DashboardHandler) GetAllocation(c echo.Context) error {
	return c.JSON(http.StatusOK, toAllocationResponse(h.dashboardService.GetAllocation()))
}

func toCashFlowResponse(points []domain.CashFlowPoint) []CashFlowPointResponse {
	resp := make([]CashFlowPointResponse, len(points))
	for i, p := range points {
		resp[i] = CashFlowPointResponse{
			Label: p.Label,
			Date:  p.Date.String(),
			Total: p.Total.StringFixed(2),
		}
	}
	return resp
}

func toAllocationResponse(slices []domain.AllocationSlice) AllocationResponse {
	resp := AllocationResponse{
		Empty:  len(slices) == 0,
		Slices: make([]AllocationSliceResponse, len(slices)),
	}
	total := decimal.Zero
	for i, s := range slices {
		total = total.Add(s.Value)
		resp.Slices[i] = AllocationSliceResponse{
			AssetID:      s.AssetID,
			Symbol:       s.Symbol,
			Value:        s.Value.StringFixed(2),
			Share:        s.Share,
			ShareDisplay: s.Share.String(),
		}
	}
	resp.Total = total.StringFixed(2)
	return resp
}
