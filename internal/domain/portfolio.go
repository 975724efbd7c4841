package domain

import "github.com/shopspring/decimal"

// AssetType is the categorical tag on a portfolio holding
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeETF    AssetType = "etf"
	AssetTypeBond   AssetType = "bond"
)

// IsValid reports whether a is one of the known asset classes
func (a AssetType) IsValid() bool {
	switch a {
	case AssetTypeStock, AssetTypeCrypto, AssetTypeETF, AssetTypeBond:
		return true
	}
	return false
}

const (
	MaxAssetNameLength = 255
	MaxSymbolLength    = 20
)

// PortfolioAsset is a single holding. CurrentPrice is never refreshed
// automatically; callers overwrite it.
type PortfolioAsset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Type          AssetType       `json:"type"`
}

// Value returns currentPrice x quantity
func (a PortfolioAsset) Value() decimal.Decimal {
	return a.CurrentPrice.Mul(a.Quantity)
}

// Cost returns purchasePrice x quantity
func (a PortfolioAsset) Cost() decimal.Decimal {
	return a.PurchasePrice.Mul(a.Quantity)
}
