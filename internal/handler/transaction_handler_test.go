package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_Success(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"id":"t-100","date":"2025-03-10","amount":"42.50","category":"Food","type":"expense","description":"Dinner"}`)

	err := h.CreateTransaction(c)
	require.NoError(t, err)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	resp := decodeMap(t, rec)
	assert.Equal(t, "t-100", resp["id"])
	assert.Equal(t, "2025-03-10T00:00:00.000Z", resp["date"])
	assert.Equal(t, "42.50", resp["amount"])
	assert.Equal(t, "Food", resp["category"])
	assert.Equal(t, "expense", resp["type"])

	assert.Len(t, svc.transaction.GetTransactions(), 4)
}

func TestCreateTransaction_DefaultsDateToNow(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"amount":"10","type":"income","description":"Gift"}`)

	require.NoError(t, h.CreateTransaction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, "2025-03-14T12:00:00.000Z", resp["date"])
	assert.NotEmpty(t, resp["id"])
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"negative amount", `{"amount":"-5","type":"expense","description":"x"}`, "amount"},
		{"non numeric amount", `{"amount":"abc","type":"expense","description":"x"}`, "amount"},
		{"bad type", `{"amount":"5","type":"transfer","description":"x"}`, "type"},
		{"missing description", `{"amount":"5","type":"expense","description":"  "}`, "description"},
		{"bad date", `{"date":"14/03/2025","amount":"5","type":"expense","description":"x"}`, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(t)
			h := NewTransactionHandler(svc.transaction)

			c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions", tt.body)
			require.NoError(t, h.CreateTransaction(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			problem := decodeProblem(t, rec)
			assert.Equal(t, ErrorTypeValidation, problem.Type)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.field, problem.Errors[0].Field)

			// Nothing was stored
			assert.Len(t, svc.transaction.GetTransactions(), 3)
			assert.Equal(t, 0, svc.repo.PutCalls)
		})
	}
}

func TestCreateTransaction_DuplicateID(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"id":"1","amount":"5","type":"expense","description":"again"}`)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateTransaction_PersistFailure(t *testing.T) {
	svc := newTestServices(t)
	svc.repo.SetPutError(assert.AnError)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"amount":"5","type":"expense","description":"Coffee"}`)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, svc.transaction.GetTransactions(), 3)
}

func TestRecordIncomeAndExpense(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions/income", `{"amount":"250","description":"Freelance"}`)
	require.NoError(t, h.RecordIncome(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	income := decodeMap(t, rec)
	assert.Equal(t, "income", income["type"])
	assert.Equal(t, "250.00", income["amount"])

	c, rec = newJSONContext(http.MethodPost, "/api/v1/transactions/expense", `{"amount":"12.3","description":"Snacks"}`)
	require.NoError(t, h.RecordExpense(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	expense := decodeMap(t, rec)
	assert.Equal(t, "expense", expense["type"])
	assert.Equal(t, "12.30", expense["amount"])

	assert.Len(t, svc.transaction.GetTransactions(), 5)
}

func TestRecordExpense_InvalidAmountIsRejected(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	for _, amount := range []string{"", "ten", "-1", "1e50000000", "0.000000001"} {
		c, rec := newJSONContext(http.MethodPost, "/api/v1/transactions/expense",
			`{"amount":"`+amount+`","description":"Snacks"}`)
		require.NoError(t, h.RecordExpense(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "amount %q", amount)
	}
	assert.Len(t, svc.transaction.GetTransactions(), 3)
}

func TestGetTransactions(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/transactions", "")
	require.NoError(t, h.GetTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 3)

	c, rec = newJSONContext(http.MethodGet, "/api/v1/transactions?limit=2", "")
	require.NoError(t, h.GetTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0]["id"])
	assert.Equal(t, "3", list[1]["id"])
}

func TestGetTransactions_InvalidLimit(t *testing.T) {
	svc := newTestServices(t)
	h := NewTransactionHandler(svc.transaction)

	for _, limit := range []string{"0", "-3", "many"} {
		c, rec := newJSONContext(http.MethodGet, "/api/v1/transactions?limit="+limit, "")
		require.NoError(t, h.GetTransactions(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}
