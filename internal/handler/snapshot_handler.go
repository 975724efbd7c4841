package handler

import (
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// SnapshotHandler handles export, import, reset and settings of the whole snapshot
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// MonthlyIncomeRequest represents the update monthly income request body
type MonthlyIncomeRequest struct {
	MonthlyIncome string `json:"monthlyIncome"`
}

// MonthlyIncomeResponse represents the monthly income setting
type MonthlyIncomeResponse struct {
	MonthlyIncome string `json:"monthlyIncome"`
}

// Export handles GET /api/v1/snapshot
func (h *SnapshotHandler) Export(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshotService.View())
}

// Import handles PUT /api/v1/snapshot
func (h *SnapshotHandler) Import(c echo.Context) error {
	var snapshot domain.FinanceSnapshot
	if err := c.Bind(&snapshot); err != nil {
		return NewValidationError(c, "Invalid snapshot", nil)
	}

	updated, err := h.snapshotService.Replace(c.Request().Context(), &snapshot)
	if err != nil {
		return serviceError(c, err, "import snapshot")
	}

	return c.JSON(http.StatusOK, updated)
}

// Reset handles POST /api/v1/snapshot/reset
func (h *SnapshotHandler) Reset(c echo.Context) error {
	updated, err := h.snapshotService.Reset(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "reset snapshot")
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateMonthlyIncome handles PUT /api/v1/settings/monthly-income
func (h *SnapshotHandler) UpdateMonthlyIncome(c echo.Context) error {
	var req MonthlyIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := service.ParseAmount(req.MonthlyIncome)
	if err != nil {
		return invalidNumber(c, "monthlyIncome")
	}

	updated, err := h.snapshotService.SetMonthlyIncome(c.Request().Context(), amount)
	if err != nil {
		return serviceError(c, err, "update monthly income")
	}

	return c.JSON(http.StatusOK, MonthlyIncomeResponse{MonthlyIncome: updated.MonthlyIncome.StringFixed(2)})
}
