package handler

import (
	"fmt"
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoalRequest represents the create goal request body
type CreateGoalRequest struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount,omitempty"`
	Deadline      string `json:"deadline"`
}

// ContributionRequest represents the contribute-to-goal request body
type ContributionRequest struct {
	Amount string `json:"amount"`
}

// GoalResponse represents a savings goal with its progress
type GoalResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	TargetAmount    string         `json:"targetAmount"`
	CurrentAmount   string         `json:"currentAmount"`
	RemainingAmount string         `json:"remainingAmount"`
	Deadline        string         `json:"deadline"`
	Progress        domain.Percent `json:"progress"`
	ProgressDisplay string         `json:"progressDisplay"`
	DaysRemaining   *int           `json:"daysRemaining,omitempty"`
	DeadlineLabel   string         `json:"deadlineLabel"`
	Status          string         `json:"status"`
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	goals := h.goalService.GetGoals()

	resp := make([]GoalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toGoalResponse(g)
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	target, err := service.ParseAmount(req.TargetAmount)
	if err != nil {
		return invalidNumber(c, "targetAmount")
	}
	current := decimal.Zero
	if req.CurrentAmount != "" {
		current, err = service.ParseAmount(req.CurrentAmount)
		if err != nil {
			return invalidNumber(c, "currentAmount")
		}
	}
	deadline, err := domain.ParseDate(req.Deadline)
	if err != nil {
		return NewValidationError(c, "Invalid deadline", []ValidationError{
			{Field: "deadline", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), service.CreateGoalInput{
		ID:            req.ID,
		Name:          req.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
	})
	if err != nil {
		return serviceError(c, err, "create goal")
	}

	// Re-read so the response carries the computed progress
	for _, g := range h.goalService.GetGoals() {
		if g.Goal.ID == goal.ID {
			return c.JSON(http.StatusCreated, toGoalResponse(g))
		}
	}
	return NewInternalError(c, "Failed to create goal")
}

// Contribute handles POST /api/v1/goals/:id/contributions
func (h *GoalHandler) Contribute(c echo.Context) error {
	var req ContributionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := service.ParseAmount(req.Amount)
	if err != nil {
		return invalidNumber(c, "amount")
	}

	progress, err := h.goalService.Contribute(c.Request().Context(), c.Param("id"), amount)
	if err != nil {
		return serviceError(c, err, "record contribution")
	}

	return c.JSON(http.StatusOK, toGoalResponse(*progress))
}

func toGoalResponse(p domain.GoalProgress) GoalResponse {
	return GoalResponse{
		ID:              p.Goal.ID,
		Name:            p.Goal.Name,
		TargetAmount:    p.Goal.TargetAmount.StringFixed(2),
		CurrentAmount:   p.Goal.CurrentAmount.StringFixed(2),
		RemainingAmount: p.Remaining.StringFixed(2),
		Deadline:        p.Goal.Deadline.String(),
		Progress:        p.Progress,
		ProgressDisplay: p.Progress.String(),
		DaysRemaining:   p.DaysRemaining,
		DeadlineLabel:   deadlineLabel(p),
		Status:          string(p.Status),
	}
}

func deadlineLabel(p domain.GoalProgress) string {
	if p.DaysRemaining == nil {
		return "Deadline passed"
	}
	if *p.DaysRemaining == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", *p.DaysRemaining)
}
