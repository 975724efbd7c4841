package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Transaction *TransactionHandler
	Portfolio   *PortfolioHandler
	Goal        *GoalHandler
	Dashboard   *DashboardHandler
	Snapshot    *SnapshotHandler
	Advice      *AdviceHandler
	WebSocket   *WebSocketHandler
}

// RegisterRoutes sets up all API routes. adviceLimit guards the advice
// route, which calls out to a paid text-generation provider.
func RegisterRoutes(e *echo.Echo, h Handlers, adviceLimit echo.MiddlewareFunc) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.POST("/income", h.Transaction.RecordIncome)
	transactions.POST("/expense", h.Transaction.RecordExpense)

	// Portfolio routes
	portfolio := api.Group("/portfolio")
	portfolio.GET("", h.Portfolio.GetPortfolio)
	portfolio.POST("", h.Portfolio.AddAsset)
	portfolio.DELETE("/:id", h.Portfolio.RemoveAsset)
	portfolio.PUT("/:id/price", h.Portfolio.UpdatePrice)

	// Savings goal routes
	goals := api.Group("/goals")
	goals.GET("", h.Goal.GetGoals)
	goals.POST("", h.Goal.CreateGoal)
	goals.POST("/:id/contributions", h.Goal.Contribute)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.GetSummary)
	dashboard.GET("/cash-flow", h.Dashboard.GetCashFlow)
	dashboard.GET("/allocation", h.Dashboard.GetAllocation)

	// Snapshot and settings routes
	api.GET("/snapshot", h.Snapshot.Export)
	api.PUT("/snapshot", h.Snapshot.Import)
	api.POST("/snapshot/reset", h.Snapshot.Reset)
	api.PUT("/settings/monthly-income", h.Snapshot.UpdateMonthlyIncome)

	// Advice route
	if adviceLimit != nil {
		api.POST("/advice", h.Advice.GetAdvice, adviceLimit)
	} else {
		api.POST("/advice", h.Advice.GetAdvice)
	}

	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}
}
