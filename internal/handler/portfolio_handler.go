package handler

import (
	"net/http"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// CreateAssetRequest represents the add asset request body
type CreateAssetRequest struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Quantity      string `json:"quantity"`
	PurchasePrice string `json:"purchasePrice"`
	CurrentPrice  string `json:"currentPrice"`
	Type          string `json:"type"`
}

// UpdatePriceRequest represents the overwrite price request body
type UpdatePriceRequest struct {
	CurrentPrice string `json:"currentPrice"`
}

// AssetResponse represents a holding with its derived performance
type AssetResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Symbol        string         `json:"symbol"`
	Type          string         `json:"type"`
	Quantity      string         `json:"quantity"`
	PurchasePrice string         `json:"purchasePrice"`
	CurrentPrice  string         `json:"currentPrice"`
	Cost          string         `json:"cost"`
	Value         string         `json:"value"`
	Profit        string         `json:"profit"`
	Return        domain.Percent `json:"returnPercent"`
	ReturnDisplay string         `json:"returnDisplay"`
}

// GetPortfolio handles GET /api/v1/portfolio
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	performances := h.portfolioService.GetPortfolio()

	resp := make([]AssetResponse, len(performances))
	for i, p := range performances {
		resp[i] = toAssetResponse(p)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddAsset handles POST /api/v1/portfolio
func (h *PortfolioHandler) AddAsset(c echo.Context) error {
	var req CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	quantity, err := service.ParseAmount(req.Quantity)
	if err != nil {
		return invalidNumber(c, "quantity")
	}
	purchasePrice, err := service.ParseAmount(req.PurchasePrice)
	if err != nil {
		return invalidNumber(c, "purchasePrice")
	}
	// Current price defaults to the purchase price for a fresh holding
	currentPrice := purchasePrice
	if req.CurrentPrice != "" {
		currentPrice, err = service.ParseAmount(req.CurrentPrice)
		if err != nil {
			return invalidNumber(c, "currentPrice")
		}
	}

	asset, err := h.portfolioService.AddAsset(c.Request().Context(), service.CreateAssetInput{
		ID:            req.ID,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
		Type:          domain.AssetType(req.Type),
	})
	if err != nil {
		return serviceError(c, err, "add asset")
	}

	return c.JSON(http.StatusCreated, toAssetResponse(service.Performance(*asset)))
}

// RemoveAsset handles DELETE /api/v1/portfolio/:id
func (h *PortfolioHandler) RemoveAsset(c echo.Context) error {
	if err := h.portfolioService.RemoveAsset(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "remove asset")
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdatePrice handles PUT /api/v1/portfolio/:id/price
func (h *PortfolioHandler) UpdatePrice(c echo.Context) error {
	var req UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	price, err := service.ParseAmount(req.CurrentPrice)
	if err != nil {
		return invalidNumber(c, "currentPrice")
	}

	asset, err := h.portfolioService.UpdatePrice(c.Request().Context(), c.Param("id"), price)
	if err != nil {
		return serviceError(c, err, "update price")
	}

	return c.JSON(http.StatusOK, toAssetResponse(service.Performance(*asset)))
}

func toAssetResponse(p domain.AssetPerformance) AssetResponse {
	return AssetResponse{
		ID:            p.Asset.ID,
		Name:          p.Asset.Name,
		Symbol:        p.Asset.Symbol,
		Type:          string(p.Asset.Type),
		Quantity:      quantityString(p.Asset.Quantity),
		PurchasePrice: p.Asset.PurchasePrice.StringFixed(2),
		CurrentPrice:  p.Asset.CurrentPrice.StringFixed(2),
		Cost:          p.Cost.StringFixed(2),
		Value:         p.Value.StringFixed(2),
		Profit:        p.Profit.StringFixed(2),
		Return:        p.Return,
		ReturnDisplay: p.Return.SignedString(),
	}
}

// quantityString keeps fractional quantities exact
func quantityString(q decimal.Decimal) string {
	return q.String()
}
