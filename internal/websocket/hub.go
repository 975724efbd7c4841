package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrClientClosed is returned when attempting to send to a closed client
	ErrClientClosed = errors.New("client is closed")
	// ErrClientTooSlow is returned when a client's outbox is full
	ErrClientTooSlow = errors.New("client outbox is full")
)

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	Send(data []byte) error
	Close() error
}

// Hub keeps track of connected dashboards and fans snapshot events out to
// them. It is safe for concurrent use.
type Hub struct {
	clients    map[string]ClientInterface
	syncSource func() Event
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]ClientInterface),
	}
}

// SetSyncSource sets the builder of the snapshot.sync event that a
// dashboard receives when it connects or asks to resync
func (h *Hub) SetSyncSource(source func() Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.syncSource = source
}

// Register adds a client to the hub and sends it the current sync event
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	h.clients[client.ID()] = client
	h.mu.Unlock()

	log.Debug().
		Str("client_id", client.ID()).
		Msg("WebSocket client registered")

	h.Sync(client)
}

// Sync sends the current snapshot.sync event to one client. It does nothing
// when no sync source is set.
func (h *Hub) Sync(client ClientInterface) {
	h.mu.RLock()
	source := h.syncSource
	h.mu.RUnlock()
	if source == nil {
		return
	}

	event := source()
	data, err := event.ToJSON()
	if err != nil {
		log.Error().Err(err).Str("event_type", event.Type).Msg("Failed to serialize event")
		return
	}
	if err := client.Send(data); err != nil {
		log.Warn().Err(err).Str("client_id", client.ID()).Msg("Failed to sync client")
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.ID()]; exists {
		delete(h.clients, client.ID())
		log.Debug().
			Str("client_id", client.ID()).
			Msg("WebSocket client unregistered")
	}
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	if len(h.clients) == 0 {
		h.mu.RUnlock()
		return
	}

	// Copy clients to avoid holding lock during send
	clientsCopy := make([]ClientInterface, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.mu.RUnlock()

	// Send only enqueues, so calling it in line keeps each client's events in order
	for _, c := range clientsCopy {
		if err := c.Send(data); err != nil {
			log.Warn().
				Err(err).
				Str("client_id", c.ID()).
				Msg("Failed to send to client")
		}
	}

	log.Debug().
		Str("event_type", event.Type).
		Int("client_count", len(clientsCopy)).
		Msg("Broadcast event")
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
