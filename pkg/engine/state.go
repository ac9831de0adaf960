// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// GameState represents a snapshot of the session
type GameState struct {
	Tick        uint64
	Status      GameStatus
	ElapsedTime float64
	Player      PlayerState
	Planets     []PlanetState
	Zones       []ZoneState
}

// PlayerState represents a snapshot of the player
type PlayerState struct {
	ID       entity.ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
	Linked   bool
	LinkedTo entity.ID
	Dead     bool
}

// PlanetState represents a snapshot of a planet
type PlanetState struct {
	ID       entity.ID
	Ref      entity.Ref
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// ZoneState represents a snapshot of a danger zone
type ZoneState struct {
	ID       entity.ID
	Edge     entity.Edge
	Bounds   physics.Rect
	Velocity physics.Vector2D
	Impacted bool
}

// GetGameState returns a snapshot of the current session
func (g *Game) GetGameState() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return &GameState{
		Tick:        g.CurrentTick,
		Status:      g.Status,
		ElapsedTime: g.ElapsedTime,
		Player:      g.getPlayerState(),
		Planets:     g.getPlanetStates(),
		Zones:       g.getZoneStates(),
	}
}

func (g *Game) getPlayerState() PlayerState {
	p := g.Player
	state := PlayerState{
		ID:       p.ID,
		Position: p.Position,
		Velocity: p.Velocity,
		Radius:   p.Radius,
		Dead:     p.IsDead(),
	}
	if ref, linked := p.LinkedRef(); linked {
		if anchor, ok := g.Planets.Get(ref); ok {
			state.Linked = true
			state.LinkedTo = anchor.ID
		}
	}
	return state
}

func (g *Game) getPlanetStates() []PlanetState {
	states := make([]PlanetState, 0, g.Planets.Len())
	g.Planets.Each(func(ref entity.Ref, p *entity.Planet) {
		states = append(states, PlanetState{
			ID:       p.ID,
			Ref:      ref,
			Position: p.Position,
			Velocity: p.Velocity,
			Radius:   p.Radius,
		})
	})
	return states
}

func (g *Game) getZoneStates() []ZoneState {
	states := make([]ZoneState, 0, len(g.Zones))
	for _, z := range g.Zones {
		states = append(states, ZoneState{
			ID:       z.ID,
			Edge:     z.Edge,
			Bounds:   z.Bounds(),
			Velocity: z.Velocity,
			Impacted: z.Impacted(),
		})
	}
	return states
}
