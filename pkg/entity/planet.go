// pkg/entity/planet.go
package entity

import (
	"github.com/opd-ai/go-orbit/pkg/particle"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// Trail emitter tuning, scaled by planet radius where noted.
const (
	PlanetTrailPeriod      = 0.003
	PlanetTrailSpeedScale  = 1.2 // times radius
	PlanetTrailRadiusScale = 0.4 // times radius
	PlanetTrailLifespan    = 0.5
)

// PlanetTrailColor is the colour of freshly emitted trail particles.
var PlanetTrailColor = render.Color{R: 0, G: 0, B: 1, A: 0.3}

// Planet is a circular body in linear motion, drawn only through its trail.
type Planet struct {
	BaseEntity
	Trail *particle.System
}

// NewPlanet creates a planet whose trail is sized from its radius.
func NewPlanet(id ID, position, velocity physics.Vector2D, radius float64, rng random.Source) *Planet {
	return &Planet{
		BaseEntity: BaseEntity{
			ID: id,
			Body: physics.Body{
				Position: position,
				Velocity: velocity,
				Radius:   radius,
			},
		},
		Trail: particle.NewSystem(particle.Emitter{
			TimePerParticle: PlanetTrailPeriod,
			InitialSpeed:    PlanetTrailSpeedScale * radius,
			InitialRadius:   PlanetTrailRadiusScale * radius,
			InitialColor:    PlanetTrailColor,
			Lifespan:        PlanetTrailLifespan,
		}, rng),
	}
}

// Update emits from the current position, moves the planet and carries the
// whole trail along so it tracks the body exactly.
func (p *Planet) Update(deltaTime float64) {
	p.Trail.Update(deltaTime, p.Position)
	delta := p.Move(deltaTime)
	p.Trail.InheritMovement(delta)
}

// Draw renders the trail unless the planet is entirely off screen.
func (p *Planet) Draw(r render.Renderer, camera *render.Camera) {
	if !camera.Visible(p.drawBounds()) {
		return
	}
	p.Trail.Draw(r, camera)
}

// drawBounds covers the body plus the reach of its trail particles.
func (p *Planet) drawBounds() physics.Rect {
	b := p.Bounds()
	if trail, ok := p.Trail.Bounds(); ok {
		b = physics.RectFromBounds(
			physics.Vector2D{X: min(b.Min().X, trail.Min().X), Y: min(b.Min().Y, trail.Min().Y)},
			physics.Vector2D{X: max(b.Max().X, trail.Max().X), Y: max(b.Max().Y, trail.Max().Y)},
		)
	}
	return b
}
