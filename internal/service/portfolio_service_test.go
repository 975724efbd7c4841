package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_AddAsset(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	svc := NewPortfolioService(snapshots)
	publisher := testutil.NewRecordingPublisher()
	svc.SetEventPublisher(publisher)

	asset, err := svc.AddAsset(context.Background(), CreateAssetInput{
		Name:          "Ethereum",
		Symbol:        "eth",
		Quantity:      dec("1.5"),
		PurchasePrice: dec("2000"),
		CurrentPrice:  dec("3000"),
		Type:          domain.AssetTypeCrypto,
	})
	require.NoError(t, err)
	assert.Equal(t, "ETH", asset.Symbol)
	assert.NotEmpty(t, asset.ID)

	portfolio := svc.GetPortfolio()
	require.Len(t, portfolio, 4)
	assert.True(t, portfolio[3].Profit.Equal(dec("1500")))
	assert.Equal(t, "50.00%", portfolio[3].Return.String())

	require.Len(t, publisher.Events(), 1)
	assert.Equal(t, "asset.created", publisher.Events()[0].Type)
}

func TestPortfolioService_AddAssetValidation(t *testing.T) {
	valid := CreateAssetInput{
		Name: "Bond", Symbol: "BND", Quantity: dec("1"),
		PurchasePrice: dec("100"), CurrentPrice: dec("100"), Type: domain.AssetTypeBond,
	}

	tests := []struct {
		name    string
		mutate  func(*CreateAssetInput)
		wantErr error
	}{
		{"blank name", func(in *CreateAssetInput) { in.Name = " " }, domain.ErrNameRequired},
		{"blank symbol", func(in *CreateAssetInput) { in.Symbol = "" }, domain.ErrSymbolRequired},
		{"long symbol", func(in *CreateAssetInput) { in.Symbol = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" }, domain.ErrSymbolTooLong},
		{"negative quantity", func(in *CreateAssetInput) { in.Quantity = dec("-1") }, domain.ErrInvalidQuantity},
		{"negative price", func(in *CreateAssetInput) { in.CurrentPrice = dec("-0.01") }, domain.ErrInvalidPrice},
		{"unknown type", func(in *CreateAssetInput) { in.Type = "nft" }, domain.ErrInvalidAssetType},
		{"duplicate id", func(in *CreateAssetInput) { in.ID = "p1" }, domain.ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots, _ := newTestSnapshotService(t)
			svc := NewPortfolioService(snapshots)

			input := valid
			tt.mutate(&input)
			_, err := svc.AddAsset(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, snapshots.View().Portfolio, 3)
		})
	}
}

func TestPortfolioService_RemoveAsset(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	svc := NewPortfolioService(snapshots)
	ctx := context.Background()

	require.NoError(t, svc.RemoveAsset(ctx, "p2"))
	portfolio := snapshots.View().Portfolio
	require.Len(t, portfolio, 2)
	assert.Equal(t, "p1", portfolio[0].ID)
	assert.Equal(t, "p3", portfolio[1].ID)

	assert.ErrorIs(t, svc.RemoveAsset(ctx, "p2"), domain.ErrAssetNotFound)
}

func TestPortfolioService_RemoveAssetPersistFailure(t *testing.T) {
	snapshots, repo := newTestSnapshotService(t)
	svc := NewPortfolioService(snapshots)
	repo.SetPutError(errors.New("unavailable"))

	err := svc.RemoveAsset(context.Background(), "p1")
	require.Error(t, err)
	assert.Len(t, snapshots.View().Portfolio, 3)
}

func TestPortfolioService_UpdatePrice(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	svc := NewPortfolioService(snapshots)
	ctx := context.Background()

	updated, err := svc.UpdatePrice(ctx, "p1", dec("40000"))
	require.NoError(t, err)
	assert.True(t, updated.CurrentPrice.Equal(dec("40000")))
	assert.True(t, updated.PurchasePrice.Equal(dec("45000")))

	perf := svc.GetPortfolio()[0]
	assert.True(t, perf.Profit.Equal(dec("-1250")))

	_, err = svc.UpdatePrice(ctx, "missing", dec("1"))
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	_, err = svc.UpdatePrice(ctx, "p1", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}
