package service

import (
	"context"
	"strings"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PortfolioService handles the investment holdings
type PortfolioService struct {
	snapshots      *SnapshotService
	eventPublisher websocket.EventPublisher
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(snapshots *SnapshotService) *PortfolioService {
	return &PortfolioService{
		snapshots: snapshots,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *PortfolioService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *PortfolioService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateAssetInput holds the input for adding a holding
type CreateAssetInput struct {
	ID            string
	Name          string
	Symbol        string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Type          domain.AssetType
}

// AddAsset validates and adds a holding to the portfolio
func (s *PortfolioService) AddAsset(ctx context.Context, input CreateAssetInput) (*domain.PortfolioAsset, error) {
	name, err := requireText(input.Name, domain.MaxAssetNameLength, domain.ErrNameRequired, domain.ErrNameTooLong)
	if err != nil {
		return nil, err
	}
	symbol, err := requireText(input.Symbol, domain.MaxSymbolLength, domain.ErrSymbolRequired, domain.ErrSymbolTooLong)
	if err != nil {
		return nil, err
	}
	if input.Quantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	if input.PurchasePrice.IsNegative() || input.CurrentPrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidAssetType
	}

	asset := domain.PortfolioAsset{
		ID:            newID(input.ID),
		Name:          name,
		Symbol:        strings.ToUpper(symbol),
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		CurrentPrice:  input.CurrentPrice,
		Type:          input.Type,
	}

	_, err = s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		if draft.FindAsset(asset.ID) >= 0 {
			return domain.ErrDuplicateID
		}
		draft.Portfolio = append(draft.Portfolio, asset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("asset_id", asset.ID).Str("symbol", asset.Symbol).Msg("Asset added")
	s.publishEvent(websocket.AssetCreated(asset))
	return &asset, nil
}

// RemoveAsset deletes a holding by id
func (s *PortfolioService) RemoveAsset(ctx context.Context, id string) error {
	_, err := s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		idx := draft.FindAsset(id)
		if idx < 0 {
			return domain.ErrAssetNotFound
		}
		draft.Portfolio = append(draft.Portfolio[:idx], draft.Portfolio[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("asset_id", id).Msg("Asset removed")
	s.publishEvent(websocket.AssetDeleted(map[string]string{"id": id}))
	return nil
}

// UpdatePrice overwrites the current market price of a holding
func (s *PortfolioService) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*domain.PortfolioAsset, error) {
	if price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	var updated domain.PortfolioAsset
	_, err := s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		idx := draft.FindAsset(id)
		if idx < 0 {
			return domain.ErrAssetNotFound
		}
		draft.Portfolio[idx].CurrentPrice = price
		updated = draft.Portfolio[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.AssetUpdated(updated))
	return &updated, nil
}

// GetPortfolio returns every holding with its derived performance
func (s *PortfolioService) GetPortfolio() []domain.AssetPerformance {
	return Performances(s.snapshots.View().Portfolio)
}
