// pkg/entity/player.go
package entity

import (
	"github.com/opd-ai/go-orbit/pkg/particle"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// DeathBurst is the number of effect particles released on death.
const DeathBurst = 48

// PlayerTuning groups the player's movement constants.
type PlayerTuning struct {
	Thrust            physics.ThrustParams
	Orbit             physics.OrbitParams
	DebugControls     bool
	DebugAcceleration float64
}

// DefaultPlayerTuning returns the standard arcade handling.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Thrust:            physics.DefaultThrustParams(),
		Orbit:             physics.DefaultOrbitParams(),
		DebugAcceleration: 400,
	}
}

// Controls is the input sampled for one tick.
type Controls struct {
	Thrust bool
	// Debug is a direction from the debug keys, only honoured when
	// PlayerTuning.DebugControls is set.
	Debug physics.Vector2D
}

// Player is the controlled body. It is Free or Linked to a planet while
// alive, and Dead is terminal.
type Player struct {
	BaseEntity
	Trail   *particle.System
	Effects *particle.System
	Tuning  PlayerTuning

	link   Ref
	linked bool
	dead   bool
}

// NewPlayer creates a free, living player at rest.
func NewPlayer(id ID, position physics.Vector2D, radius float64, tuning PlayerTuning, rng random.Source) *Player {
	return &Player{
		BaseEntity: BaseEntity{
			ID: id,
			Body: physics.Body{
				Position: position,
				Radius:   radius,
			},
		},
		Trail: particle.NewSystem(particle.Emitter{
			TimePerParticle: 0.01,
			InitialSpeed:    0.5 * radius,
			InitialRadius:   0.3 * radius,
			InitialColor:    render.Red.WithAlpha(0.3),
			Lifespan:        0.4,
		}, rng),
		Effects: particle.NewSystem(particle.Emitter{
			TimePerParticle: 0.005,
			InitialSpeed:    6 * radius,
			InitialRadius:   0.25 * radius,
			InitialColor:    render.Color{R: 1, G: 0.6, B: 0.1, A: 0.8},
			Lifespan:        0.3,
		}, rng),
		Tuning: tuning,
	}
}

// Update advances the player by one tick. anchor must be the planet the
// player is linked to, or nil; a linked player given no anchor drops the
// link. The first zone that touches the player kills it and nothing else
// moves this tick.
func (p *Player) Update(deltaTime float64, controls Controls, anchor *Planet, zones []*DangerZone) {
	if p.dead {
		p.advanceParticles(deltaTime)
		return
	}

	for _, z := range zones {
		if z.CheckAndHandlePlayerCollision(p) {
			p.advanceParticles(deltaTime)
			return
		}
	}

	thrust := 0.0
	if controls.Thrust {
		thrust = 1
	}
	p.Velocity = physics.ApplyThrust(p.Velocity, deltaTime, thrust, p.Tuning.Thrust)

	if p.Tuning.DebugControls {
		p.Velocity = p.Velocity.Add(controls.Debug.Scale(p.Tuning.DebugAcceleration * deltaTime))
	}

	var carry physics.Vector2D
	if p.linked {
		if anchor == nil {
			p.linked = false
		} else {
			p.Velocity = physics.OrbitSteer(p.Position, p.Velocity, anchor.Position, deltaTime, p.Tuning.Orbit)
			carry = anchor.Velocity.Scale(deltaTime)
		}
	}

	p.Trail.Update(deltaTime, p.Position)
	if controls.Thrust {
		p.Effects.Update(deltaTime, p.Position)
	} else {
		p.Effects.Advance(deltaTime)
	}

	delta := p.Move(deltaTime).Add(carry)
	p.Position = p.Position.Add(carry)
	p.Trail.InheritMovement(delta)
	p.Effects.InheritMovement(delta)
}

func (p *Player) advanceParticles(deltaTime float64) {
	p.Trail.Advance(deltaTime)
	p.Effects.Advance(deltaTime)
}

// Link attaches the player to the planet behind ref. A dead player cannot
// link.
func (p *Player) Link(ref Ref) bool {
	if p.dead {
		return false
	}
	p.link = ref
	p.linked = true
	return true
}

// LetGoOfPlanet releases the link, keeping the anchor's velocity as
// momentum. anchor may be nil when the planet no longer exists.
func (p *Player) LetGoOfPlanet(anchor *Planet) bool {
	if !p.linked {
		return false
	}
	if anchor != nil {
		p.Velocity = p.Velocity.Add(anchor.Velocity)
	}
	p.linked = false
	return true
}

// ClearLink drops the link without transferring momentum.
func (p *Player) ClearLink() {
	p.linked = false
}

// LinkedRef returns the linked planet's ref.
func (p *Player) LinkedRef() (Ref, bool) {
	return p.link, p.linked
}

// IsLinked reports whether the player is steering around a planet.
func (p *Player) IsLinked() bool {
	return p.linked
}

// Die kills the player. Calling it again has no effect.
func (p *Player) Die() {
	if p.dead {
		return
	}
	p.dead = true
	p.linked = false
	p.Effects.Burst(p.Position, DeathBurst)
}

// IsDead reports whether the player has died.
func (p *Player) IsDead() bool {
	return p.dead
}

// Draw renders the particles and, while alive, the player body.
func (p *Player) Draw(r render.Renderer, camera *render.Camera) {
	p.Trail.Draw(r, camera)
	p.Effects.Draw(r, camera)
	if !p.dead {
		r.DrawCircle(camera.ToScreen(p.Position), p.Radius, render.Red)
	}
}
