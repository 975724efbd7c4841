package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdvicePrompt(t *testing.T) {
	prompt := BuildAdvicePrompt(domain.DefaultSnapshot(testNow))

	assert.Contains(t, prompt, "- Total Cash Balance: $3300.00\n")
	assert.Contains(t, prompt, "- Portfolio Value: $22675.00\n")
	assert.Contains(t, prompt, "- Active Savings Goals: 2\n")
	assert.Contains(t, prompt, "- Assets: Bitcoin (BTC), Apple Inc. (AAPL), Vanguard S&P 500 (VOO)\n")
	assert.Contains(t, prompt, "- Monthly Recurring Income Target: $5000\n")
	assert.Contains(t, prompt, "- 2025-03-14T12:00:00.000Z: Monthly Salary ($5000 income)")
	assert.Contains(t, prompt, "- 2025-03-14T12:00:00.000Z: Grocery shopping ($200 expense)")
}

func TestBuildAdvicePrompt_OnlyFiveMostRecent(t *testing.T) {
	snapshot := &domain.FinanceSnapshot{}
	for i := 1; i <= 7; i++ {
		entry := tx(string(rune('0'+i)), testNow, "1", domain.TransactionTypeExpense)
		entry.Description = "entry-" + string(rune('0'+i))
		snapshot.Transactions = append(snapshot.Transactions, entry)
	}

	prompt := BuildAdvicePrompt(snapshot)
	assert.NotContains(t, prompt, "entry-1")
	assert.NotContains(t, prompt, "entry-2")
	for i := 3; i <= 7; i++ {
		assert.Contains(t, prompt, "entry-"+string(rune('0'+i)))
	}
	assert.Less(t, strings.Index(prompt, "entry-3"), strings.Index(prompt, "entry-7"))
	assert.Contains(t, prompt, "- Assets: \n")
}

func TestAdviceService_ReturnsGeneratedText(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	gen := &testutil.MockTextGenerator{Text: "  Diversify your holdings.  "}
	svc := NewAdviceService(snapshots, gen, time.Second)

	advice := svc.GetAdvice(context.Background())
	assert.Equal(t, "Diversify your holdings.", advice.Text)
	assert.False(t, advice.Fallback)
	assert.Equal(t, testNow, advice.GeneratedAt)
	assert.Contains(t, gen.Prompt(), "Total Cash Balance: $3300.00")
}

func TestAdviceService_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		gen  domain.TextGenerator
	}{
		{"generator error", &testutil.MockTextGenerator{Err: errors.New("quota exceeded")}},
		{"empty text", &testutil.MockTextGenerator{Text: "   "}},
		{"timeout", &testutil.MockTextGenerator{Text: "too late", Delay: time.Second}},
		{"no generator", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots, _ := newTestSnapshotService(t)
			svc := NewAdviceService(snapshots, tt.gen, 20*time.Millisecond)

			advice := svc.GetAdvice(context.Background())
			assert.Equal(t, domain.AdviceFallback, advice.Text)
			assert.True(t, advice.Fallback)
		})
	}
}

func TestAdviceService_CollapsesConcurrentRequests(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	release := make(chan struct{})
	gen := &testutil.MockTextGenerator{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			<-release
			return "shared answer", nil
		},
	}
	svc := NewAdviceService(snapshots, gen, 5*time.Second)

	const callers = 5
	results := make([]*domain.Advice, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.GetAdvice(context.Background())
		}(i)
	}

	// Let every caller join the in-flight generation before releasing it
	require.Eventually(t, func() bool { return gen.Calls() == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, gen.Calls())
	for _, r := range results {
		assert.Equal(t, "shared answer", r.Text)
	}

	// A later request starts a fresh generation
	svc.GetAdvice(context.Background())
	assert.Equal(t, 2, gen.Calls())
}

func TestAdviceService_CallerCancellationDoesNotAbortGeneration(t *testing.T) {
	snapshots, _ := newTestSnapshotService(t)
	gen := &testutil.MockTextGenerator{Text: "done", Delay: 20 * time.Millisecond}
	svc := NewAdviceService(snapshots, gen, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	advice := svc.GetAdvice(ctx)
	assert.Equal(t, "done", advice.Text)
}
