package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
)

// MockSnapshotRepository is a mock implementation of domain.SnapshotRepository
type MockSnapshotRepository struct {
	mu       sync.Mutex
	Blobs    map[string]string
	GetErr   error
	PutErr   error
	PutCalls int
}

// NewMockSnapshotRepository creates a new MockSnapshotRepository
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		Blobs: make(map[string]string),
	}
}

// Get returns the blob stored under key
func (m *MockSnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	value, ok := m.Blobs[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// Put stores value under key
func (m *MockSnapshotRepository) Put(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Blobs[key] = value
	return nil
}

// SetPutError makes subsequent Put calls fail with err (nil clears it)
func (m *MockSnapshotRepository) SetPutError(err error) {
	m.mu.Lock()
	m.PutErr = err
	m.mu.Unlock()
}

// Blob returns the stored value for key
func (m *MockSnapshotRepository) Blob(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.Blobs[key]
	return value, ok
}

// MockTextGenerator is a mock implementation of domain.TextGenerator
type MockTextGenerator struct {
	Text  string
	Err   error
	Delay time.Duration
	// GenerateFn overrides Text/Err when set
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	calls      atomic.Int32
	mu         sync.Mutex
	LastPrompt string
}

// Generate returns the configured text after the configured delay. A delay
// longer than the context deadline yields the context error.
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.LastPrompt = prompt
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// Calls returns how many times Generate ran
func (m *MockTextGenerator) Calls() int {
	return int(m.calls.Load())
}

// Prompt returns the most recent prompt
func (m *MockTextGenerator) Prompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastPrompt
}

// RecordingPublisher is a websocket.EventPublisher that keeps every event
type RecordingPublisher struct {
	mu     sync.Mutex
	events []websocket.Event
}

// NewRecordingPublisher creates a new RecordingPublisher
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// Publish records the event
func (p *RecordingPublisher) Publish(event websocket.Event) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []websocket.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]websocket.Event, len(p.events))
	copy(out, p.events)
	return out
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var (
	_ domain.SnapshotRepository = (*MockSnapshotRepository)(nil)
	_ domain.TextGenerator      = (*MockTextGenerator)(nil)
	_ websocket.EventPublisher  = (*RecordingPublisher)(nil)
)
