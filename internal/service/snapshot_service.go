package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SnapshotService owns the in-memory FinanceSnapshot. All mutations go
// through Update, which applies a change to a private copy, persists the
// whole snapshot and only then makes it visible to readers.
type SnapshotService struct {
	repo           domain.SnapshotRepository
	key            string
	now            func() time.Time
	eventPublisher websocket.EventPublisher

	mu       sync.RWMutex
	snapshot *domain.FinanceSnapshot
}

// NewSnapshotService creates a SnapshotService persisting under key. The
// service starts with the default snapshot until Load is called.
func NewSnapshotService(repo domain.SnapshotRepository, key string) *SnapshotService {
	if key == "" {
		key = domain.DefaultSnapshotKey
	}
	return &SnapshotService{
		repo:     repo,
		key:      key,
		now:      time.Now,
		snapshot: domain.DefaultSnapshot(time.Now()),
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SnapshotService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the clock used for defaults and timestamps
func (s *SnapshotService) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the service clock's current instant
func (s *SnapshotService) Now() time.Time {
	return s.now()
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *SnapshotService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// Load reads the stored snapshot. A missing key, an unparseable blob or a
// blob that breaks the snapshot invariants all fall back to the default
// snapshot; only a failing store is reported as an error.
func (s *SnapshotService) Load(ctx context.Context) error {
	blob, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Info().Str("key", s.key).Msg("No stored snapshot, using default data")
			s.setSnapshot(domain.DefaultSnapshot(s.now()))
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}

	snapshot, err := DecodeSnapshot([]byte(blob))
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("Stored snapshot is unreadable, using default data")
		s.setSnapshot(domain.DefaultSnapshot(s.now()))
		return nil
	}

	s.setSnapshot(snapshot)
	log.Info().
		Str("key", s.key).
		Int("transactions", len(snapshot.Transactions)).
		Int("assets", len(snapshot.Portfolio)).
		Int("goals", len(snapshot.SavingsGoals)).
		Msg("Loaded snapshot")
	return nil
}

func (s *SnapshotService) setSnapshot(snapshot *domain.FinanceSnapshot) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// View returns a copy of the current snapshot
func (s *SnapshotService) View() *domain.FinanceSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Update applies fn to a copy of the snapshot, validates and persists the
// result and then swaps it in. If fn, validation or persistence fails the
// current snapshot is left untouched.
func (s *SnapshotService) Update(ctx context.Context, fn func(*domain.FinanceSnapshot) error) (*domain.FinanceSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.snapshot.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	blob, err := EncodeSnapshot(draft)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.repo.Put(ctx, s.key, string(blob)); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Failed to persist snapshot")
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.snapshot = draft
	return draft.Clone(), nil
}

// Replace swaps the whole snapshot for an imported one
func (s *SnapshotService) Replace(ctx context.Context, snapshot *domain.FinanceSnapshot) (*domain.FinanceSnapshot, error) {
	if snapshot == nil {
		return nil, domain.ErrInvalidSnapshot
	}
	normalizeSnapshot(snapshot)
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}

	updated, err := s.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		*draft = *snapshot.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.SnapshotReplaced(counts(updated)))
	return updated, nil
}

// Reset restores the default snapshot
func (s *SnapshotService) Reset(ctx context.Context) (*domain.FinanceSnapshot, error) {
	updated, err := s.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		*draft = *domain.DefaultSnapshot(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.SnapshotReset(counts(updated)))
	return updated, nil
}

// EncodeSnapshot serializes a snapshot to its stored form
func EncodeSnapshot(snapshot *domain.FinanceSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

// DecodeSnapshot parses a stored blob and checks the snapshot invariants
func DecodeSnapshot(blob []byte) (*domain.FinanceSnapshot, error) {
	var snapshot domain.FinanceSnapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	normalizeSnapshot(&snapshot)
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

// normalizeSnapshot replaces nil collections with empty ones so a snapshot
// always serializes with arrays
func normalizeSnapshot(snapshot *domain.FinanceSnapshot) {
	if snapshot.Transactions == nil {
		snapshot.Transactions = []domain.Transaction{}
	}
	if snapshot.Portfolio == nil {
		snapshot.Portfolio = []domain.PortfolioAsset{}
	}
	if snapshot.SavingsGoals == nil {
		snapshot.SavingsGoals = []domain.SavingsGoal{}
	}
}

// SyncEvent builds the snapshot.sync event a dashboard receives when it
// connects: collection sizes and the monthly income target.
func (s *SnapshotService) SyncEvent() websocket.Event {
	snapshot := s.View()
	return websocket.SnapshotSync(map[string]interface{}{
		"counts":        counts(snapshot),
		"monthlyIncome": snapshot.MonthlyIncome.StringFixed(2),
	})
}

func counts(snapshot *domain.FinanceSnapshot) map[string]int {
	return map[string]int{
		"transactions": len(snapshot.Transactions),
		"assets":       len(snapshot.Portfolio),
		"goals":        len(snapshot.SavingsGoals),
	}
}

// SetMonthlyIncome updates the monthly income target
func (s *SnapshotService) SetMonthlyIncome(ctx context.Context, amount decimal.Decimal) (*domain.FinanceSnapshot, error) {
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	updated, err := s.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		draft.MonthlyIncome = amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.SettingsUpdated(map[string]string{"monthlyIncome": amount.String()}))
	return updated, nil
}
