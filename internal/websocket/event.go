package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated     EventType = "created"
	EventTypeUpdated     EventType = "updated"
	EventTypeDeleted     EventType = "deleted"
	EventTypeContributed EventType = "contributed"
	EventTypeReplaced    EventType = "replaced"
	EventTypeReset       EventType = "reset"
	EventTypeSync        EventType = "sync"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeAsset       EntityType = "asset"
	EntityTypeGoal        EntityType = "goal"
	EntityTypeSettings    EntityType = "settings"
	EntityTypeSnapshot    EntityType = "snapshot"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "transaction"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionCreated creates a transaction.created event
func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

// AssetCreated creates an asset.created event
func AssetCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeAsset, payload)
}

// AssetUpdated creates an asset.updated event
func AssetUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeAsset, payload)
}

// AssetDeleted creates an asset.deleted event
func AssetDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeAsset, payload)
}

// GoalCreated creates a goal.created event
func GoalCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeGoal, payload)
}

// GoalContributed creates a goal.contributed event
func GoalContributed(payload interface{}) Event {
	return NewEvent(EventTypeContributed, EntityTypeGoal, payload)
}

// SettingsUpdated creates a settings.updated event
func SettingsUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSettings, payload)
}

// SnapshotReplaced creates a snapshot.replaced event
func SnapshotReplaced(payload interface{}) Event {
	return NewEvent(EventTypeReplaced, EntityTypeSnapshot, payload)
}

// SnapshotReset creates a snapshot.reset event
func SnapshotReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeSnapshot, payload)
}

// SyncEventType is the type of the event that brings a dashboard up to date.
// Dashboards send {"type":"snapshot.sync"} to ask for it again.
const SyncEventType = string(EntityTypeSnapshot) + "." + string(EventTypeSync)

// SnapshotSync creates a snapshot.sync event
func SnapshotSync(payload interface{}) Event {
	return NewEvent(EventTypeSync, EntityTypeSnapshot, payload)
}
