// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Session event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	PlayerLinked   Type = "player_linked"
	PlayerReleased Type = "player_released"
	PlayerDied     Type = "player_died"
	BodyCollision  Type = "body_collision"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// LinkEvent reports the player attaching to or releasing a planet
type LinkEvent struct {
	BaseEvent
	PlayerID uint64
	PlanetID uint64
}

// NewLinkEvent creates a new link event
func NewLinkEvent(eventType Type, source interface{}, playerID, planetID uint64) *LinkEvent {
	return &LinkEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		PlayerID: playerID,
		PlanetID: planetID,
	}
}

// DeathEvent reports the player being destroyed by a danger zone
type DeathEvent struct {
	BaseEvent
	PlayerID uint64
	ZoneID   uint64
	X, Y     float64
	Elapsed  float64 // seconds since the session started
}

// NewDeathEvent creates a new death event
func NewDeathEvent(source interface{}, playerID, zoneID uint64, x, y, elapsed float64) *DeathEvent {
	return &DeathEvent{
		BaseEvent: BaseEvent{
			EventType: PlayerDied,
			Source:    source,
		},
		PlayerID: playerID,
		ZoneID:   zoneID,
		X:        x,
		Y:        y,
		Elapsed:  elapsed,
	}
}

// CollisionEvent contains information about body collisions
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	Impulse float64 // relative speed along the line of centres
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64, impulse float64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BodyCollision,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		Impulse: impulse,
	}
}
