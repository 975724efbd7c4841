package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// DefaultAdviceTimeout bounds a single advice generation
const DefaultAdviceTimeout = 30 * time.Second

// isoMillis matches the timestamps the dashboard wrote into its prompt
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// AdviceService asks a text generator for a narrative summary of the
// snapshot. It never returns an error: every failure degrades to
// domain.AdviceFallback.
type AdviceService struct {
	snapshots *SnapshotService
	generator domain.TextGenerator
	timeout   time.Duration
	group     singleflight.Group
}

// NewAdviceService creates a new AdviceService. A nil generator makes every
// request return the fallback text.
func NewAdviceService(snapshots *SnapshotService, generator domain.TextGenerator, timeout time.Duration) *AdviceService {
	if timeout <= 0 {
		timeout = DefaultAdviceTimeout
	}
	return &AdviceService{
		snapshots: snapshots,
		generator: generator,
		timeout:   timeout,
	}
}

// GetAdvice generates advice for the current snapshot. Concurrent callers
// share a single in-flight generation and all receive its result.
func (s *AdviceService) GetAdvice(ctx context.Context) *domain.Advice {
	// The shared call must outlive any single caller that gives up
	callCtx := context.WithoutCancel(ctx)

	v, _, shared := s.group.Do("advice", func() (interface{}, error) {
		return s.generate(callCtx), nil
	})
	advice := v.(*domain.Advice)
	if shared {
		log.Debug().Msg("Advice request joined an in-flight generation")
	}
	return advice
}

func (s *AdviceService) generate(ctx context.Context) *domain.Advice {
	if s.generator == nil {
		log.Warn().Msg("No advice provider configured")
		return s.fallback()
	}

	prompt := BuildAdvicePrompt(s.snapshots.View())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Dur("latency", time.Since(start)).Msg("Advice generation failed")
		return s.fallback()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Error().Dur("latency", time.Since(start)).Msg("Advice generation returned no text")
		return s.fallback()
	}

	log.Info().Dur("latency", time.Since(start)).Int("length", len(text)).Msg("Advice generated")
	return &domain.Advice{
		Text:        text,
		GeneratedAt: s.snapshots.Now().UTC(),
	}
}

func (s *AdviceService) fallback() *domain.Advice {
	return &domain.Advice{
		Text:        domain.AdviceFallback,
		Fallback:    true,
		GeneratedAt: s.snapshots.Now().UTC(),
	}
}

// BuildAdvicePrompt renders the advisor prompt for a snapshot
func BuildAdvicePrompt(snapshot *domain.FinanceSnapshot) string {
	assets := make([]string, 0, len(snapshot.Portfolio))
	for _, a := range snapshot.Portfolio {
		assets = append(assets, fmt.Sprintf("%s (%s)", a.Name, a.Symbol))
	}

	recent := RecentTransactions(snapshot.Transactions, domain.RecentTransactionsInPrompt)
	lines := make([]string, 0, len(recent))
	for _, t := range recent {
		lines = append(lines, fmt.Sprintf("- %s: %s ($%s %s)",
			t.Date.UTC().Format(isoMillis), t.Description, t.Amount.String(), t.Type))
	}

	var b strings.Builder
	b.WriteString("As a world-class financial advisor, analyze this user's data and provide actionable advice.\n\n")
	b.WriteString("User Overview:\n")
	fmt.Fprintf(&b, "- Total Cash Balance: $%s\n", NetBalance(snapshot.Transactions).StringFixed(2))
	fmt.Fprintf(&b, "- Portfolio Value: $%s\n", PortfolioValue(snapshot.Portfolio).StringFixed(2))
	fmt.Fprintf(&b, "- Active Savings Goals: %d\n", len(snapshot.SavingsGoals))
	fmt.Fprintf(&b, "- Assets: %s\n", strings.Join(assets, ", "))
	fmt.Fprintf(&b, "- Monthly Recurring Income Target: $%s\n\n", snapshot.MonthlyIncome.String())
	b.WriteString("Recent Transactions:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString("Please provide a response with:\n")
	b.WriteString("1. A summary of their financial health.\n")
	b.WriteString("2. Specific tips to optimize their portfolio.\n")
	b.WriteString("3. Strategy to reach their savings goals faster.\n")
	b.WriteString("4. One warning or risk they should be aware of.\n\n")
	b.WriteString("Keep the tone professional, encouraging, and concise.\n")
	return b.String()
}
