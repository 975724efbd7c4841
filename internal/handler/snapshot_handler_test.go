package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importedSnapshot = `{
	"transactions": [{"id":"t1","date":"2025-03-01T10:00:00.000Z","amount":42.5,"category":"Food","type":"expense","description":"Lunch"}],
	"portfolio": [],
	"savingsGoals": [{"id":"g1","name":"Car","targetAmount":10000,"currentAmount":2500,"deadline":"2026-01-31"}],
	"monthlyIncome": 4200
}`

func TestExportSnapshot(t *testing.T) {
	svc := newTestServices(t)
	h := NewSnapshotHandler(svc.snapshots)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/snapshot", "")
	require.NoError(t, h.Export(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Len(t, resp["transactions"], 3)
	assert.Len(t, resp["portfolio"], 3)
	assert.Len(t, resp["savingsGoals"], 2)
	assert.Contains(t, resp, "monthlyIncome")
}

func TestImportSnapshot(t *testing.T) {
	svc := newTestServices(t)
	h := NewSnapshotHandler(svc.snapshots)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/snapshot", importedSnapshot)
	require.NoError(t, h.Import(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	snap := svc.snapshots.View()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "Lunch", snap.Transactions[0].Description)
	assert.Empty(t, snap.Portfolio)
	require.Len(t, snap.SavingsGoals, 1)
	assert.Equal(t, domain.NewDate(2026, 1, 31), snap.SavingsGoals[0].Deadline)

	// The import was persisted
	_, stored := svc.repo.Blob(domain.DefaultSnapshotKey)
	assert.True(t, stored)
}

func TestImportSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"transactions": [`},
		{"negative amount", `{"transactions":[{"id":"1","date":"2025-01-01T00:00:00Z","amount":-5,"type":"income","description":"x"}]}`},
		{"huge exponent", `{"transactions":[{"id":"1","date":"2025-01-01T00:00:00Z","amount":1e50000000,"type":"income","description":"x"}]}`},
		{"duplicate goal ids", `{"savingsGoals":[{"id":"g","name":"A","targetAmount":1,"currentAmount":0,"deadline":"2025-12-31"},{"id":"g","name":"B","targetAmount":1,"currentAmount":0,"deadline":"2025-12-31"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(t)
			h := NewSnapshotHandler(svc.snapshots)

			c, rec := newJSONContext(http.MethodPut, "/api/v1/snapshot", tt.body)
			require.NoError(t, h.Import(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Len(t, svc.snapshots.View().Transactions, 3)
			assert.Equal(t, 0, svc.repo.PutCalls)
		})
	}
}

func TestResetSnapshot(t *testing.T) {
	svc := newTestServices(t)
	h := NewSnapshotHandler(svc.snapshots)

	require.NoError(t, svc.portfolio.RemoveAsset(context.Background(), "p1"))
	require.Len(t, svc.snapshots.View().Portfolio, 2)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/snapshot/reset", "")
	require.NoError(t, h.Reset(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, svc.snapshots.View().Portfolio, 3)
}

func TestUpdateMonthlyIncome(t *testing.T) {
	svc := newTestServices(t)
	h := NewSnapshotHandler(svc.snapshots)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/settings/monthly-income", `{"monthlyIncome":"6250.5"}`)
	require.NoError(t, h.UpdateMonthlyIncome(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, "6250.50", resp["monthlyIncome"])
	assert.Equal(t, "6250.5", svc.snapshots.View().MonthlyIncome.String())
}

func TestUpdateMonthlyIncome_Invalid(t *testing.T) {
	svc := newTestServices(t)
	h := NewSnapshotHandler(svc.snapshots)

	for _, v := range []string{"", "-1", "plenty"} {
		c, rec := newJSONContext(http.MethodPut, "/api/v1/settings/monthly-income", `{"monthlyIncome":"`+v+`"}`)
		require.NoError(t, h.UpdateMonthlyIncome(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "value %q", v)
	}
	assert.Equal(t, "5000", svc.snapshots.View().MonthlyIncome.String())
}
