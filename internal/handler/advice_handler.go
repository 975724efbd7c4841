package handler

import (
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// AdviceHandler handles advice requests
type AdviceHandler struct {
	adviceService *service.AdviceService
}

// NewAdviceHandler creates a new AdviceHandler
func NewAdviceHandler(adviceService *service.AdviceService) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
	}
}

// GetAdvice handles POST /api/v1/advice. Generation failures still answer
// 200 with the fallback text and fallback=true.
func (h *AdviceHandler) GetAdvice(c echo.Context) error {
	return c.JSON(http.StatusOK, h.adviceService.GetAdvice(c.Request().Context()))
}
