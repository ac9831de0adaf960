// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// ID is a unique identifier for an entity
type ID uint64

var nextID atomic.Uint64

// GenerateID returns a new process-unique entity ID. IDs start at 1 so the
// zero value can mean "none".
func GenerateID() ID {
	return ID(nextID.Add(1))
}

// Entity is the base interface for all simulated objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetVelocity() physics.Vector2D
	Draw(r render.Renderer, camera *render.Camera)
}

// Collidable is an entity with a circular body that takes part in elastic
// collisions. Kinematics exposes the body for in-place resolution.
type Collidable interface {
	Entity
	GetCollider() physics.Circle
	Kinematics() *physics.Body
}

// BaseEntity contains common functionality for circular entities
type BaseEntity struct {
	ID ID
	physics.Body
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetVelocity returns the entity's velocity
func (e *BaseEntity) GetVelocity() physics.Vector2D {
	return e.Velocity
}

// GetCollider returns the entity's collision shape
func (e *BaseEntity) GetCollider() physics.Circle {
	return e.Collider()
}

// Kinematics returns the entity's body for collision resolution
func (e *BaseEntity) Kinematics() *physics.Body {
	return &e.Body
}

// Move integrates position from velocity and returns the displacement.
func (e *BaseEntity) Move(deltaTime float64) physics.Vector2D {
	delta := e.Velocity.Scale(deltaTime)
	e.Position = e.Position.Add(delta)
	return delta
}

// Bounds returns the axis-aligned box enclosing the entity's circle.
func (e *BaseEntity) Bounds() physics.Rect {
	return physics.Rect{Center: e.Position, Width: 2 * e.Radius, Height: 2 * e.Radius}
}
