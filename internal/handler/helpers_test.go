package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// testServices wires every service over an in-memory repository seeded
// with the default snapshot
type testServices struct {
	repo        *testutil.MockSnapshotRepository
	generator   *testutil.MockTextGenerator
	snapshots   *service.SnapshotService
	transaction *service.TransactionService
	portfolio   *service.PortfolioService
	goal        *service.GoalService
	dashboard   *service.DashboardService
	advice      *service.AdviceService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	repo := testutil.NewMockSnapshotRepository()
	snapshots := service.NewSnapshotService(repo, "")
	snapshots.SetClock(testutil.FixedClock(testNow))
	require.NoError(t, snapshots.Load(context.Background()))

	generator := &testutil.MockTextGenerator{Text: "Keep saving."}

	return &testServices{
		repo:        repo,
		generator:   generator,
		snapshots:   snapshots,
		transaction: service.NewTransactionService(snapshots),
		portfolio:   service.NewPortfolioService(snapshots),
		goal:        service.NewGoalService(snapshots, time.UTC),
		dashboard:   service.NewDashboardService(snapshots, time.UTC),
		advice:      service.NewAdviceService(snapshots, generator, time.Second),
	}
}

// newJSONContext builds an echo context for a request with a JSON body
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}
