// pkg/entity/dangerzone.go
package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-orbit/pkg/particle"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// Edge selects which side of the play field a zone guards.
type Edge int

const (
	EdgeBottom Edge = iota
	EdgeLeft
	EdgeRight
	// EdgeThreshold is a bottom zone whose hit test is a horizontal line.
	EdgeThreshold
)

var edgeNames = map[Edge]string{
	EdgeBottom:    "bottom",
	EdgeLeft:      "left",
	EdgeRight:     "right",
	EdgeThreshold: "threshold",
}

func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// ParseEdge converts a config name into an Edge.
func ParseEdge(name string) (Edge, error) {
	for edge, n := range edgeNames {
		if strings.EqualFold(name, n) {
			return edge, nil
		}
	}
	return 0, fmt.Errorf("unknown zone edge %q", name)
}

// vertical reports whether the zone advances along y.
func (e Edge) vertical() bool {
	return e == EdgeBottom || e == EdgeThreshold
}

// Zone visuals and impact tuning.
const (
	ZoneParticleScale = 0.03 // particle speed and radius, times the larger side
	ZoneLifespan      = 3.0
	ZoneColorFade     = 0.4 // red lost per second
	ImpactLifespan    = 20.0
)

// ZoneColor is the colour of freshly emitted zone particles.
var ZoneColor = render.Color{R: 0.8, G: 0.1, B: 0.1, A: 0.7}

// ZoneParams configures a new danger zone.
type ZoneParams struct {
	Edge       Edge
	Position   physics.Vector2D // rect centre in world space
	Size       physics.Vector2D
	Speed      float64 // initial advance speed toward the play field
	GrowthRate float64 // fractional speed gain per second
	EmitPeriod float64
}

// DangerZone is an axis-aligned region advancing from one edge of the
// field with exponentially growing speed. Touching it is fatal.
type DangerZone struct {
	ID         ID
	Edge       Edge
	Position   physics.Vector2D
	Size       physics.Vector2D
	Velocity   physics.Vector2D
	GrowthRate float64
	Particles  *particle.System

	impacted bool
}

// NewDangerZone creates a zone moving inward from its edge.
func NewDangerZone(id ID, params ZoneParams, rng random.Source) *DangerZone {
	var velocity physics.Vector2D
	switch params.Edge {
	case EdgeLeft:
		velocity.X = params.Speed
	case EdgeRight:
		velocity.X = -params.Speed
	default:
		velocity.Y = -params.Speed
	}

	scale := ZoneParticleScale * math.Max(params.Size.X, params.Size.Y)
	return &DangerZone{
		ID:         id,
		Edge:       params.Edge,
		Position:   params.Position,
		Size:       params.Size,
		Velocity:   velocity,
		GrowthRate: params.GrowthRate,
		Particles: particle.NewSystem(particle.Emitter{
			TimePerParticle: params.EmitPeriod,
			InitialSpeed:    scale,
			InitialRadius:   scale,
			InitialColor:    ZoneColor,
			Lifespan:        ZoneLifespan,
		}, rng),
	}
}

// NewThresholdZone creates a bottom zone whose upper edge is the line y.
func NewThresholdZone(id ID, y float64, params ZoneParams, rng random.Source) *DangerZone {
	params.Edge = EdgeThreshold
	params.Position.Y = y + params.Size.Y/2
	return NewDangerZone(id, params, rng)
}

// GetID returns the zone's unique identifier
func (z *DangerZone) GetID() ID {
	return z.ID
}

// GetPosition returns the centre of the zone
func (z *DangerZone) GetPosition() physics.Vector2D {
	return z.Position
}

// GetVelocity returns the zone's velocity
func (z *DangerZone) GetVelocity() physics.Vector2D {
	return z.Velocity
}

// Impacted reports whether the zone has already hit the player.
func (z *DangerZone) Impacted() bool {
	return z.impacted
}

// Bounds returns the zone rect in world space.
func (z *DangerZone) Bounds() physics.Rect {
	return physics.Rect{Center: z.Position, Width: z.Size.X, Height: z.Size.Y}
}

// Update speeds the zone up, keeps it centred on follow along the axis it
// does not advance on, moves it and emits particles over its area.
func (z *DangerZone) Update(deltaTime float64, follow physics.Vector2D) {
	z.Velocity = z.Velocity.Scale(1 + z.GrowthRate*deltaTime)

	if z.Edge.vertical() {
		z.Position.X = follow.X
	} else {
		z.Position.Y = follow.Y
	}
	z.Position = z.Position.Add(z.Velocity.Scale(deltaTime))

	b := z.Bounds()
	z.Particles.UpdateWithRange(deltaTime, b.Min(), b.Max())
	z.Particles.ShiftColor(-ZoneColorFade*deltaTime, 0, 0, 0)
}

// Collides reports whether a circle overlaps the zone. A threshold zone
// only compares the circle's lowest point against its upper edge.
func (z *DangerZone) Collides(c physics.Circle) bool {
	if z.Edge == EdgeThreshold {
		return c.Center.Y+c.Radius > z.Bounds().Min().Y
	}
	return z.Bounds().IntersectsCircle(c)
}

// CheckAndHandlePlayerCollision kills the player on contact. The first hit
// also switches the zone into its long-lived impact display and sends it
// back the way it came; this cannot be undone.
func (z *DangerZone) CheckAndHandlePlayerCollision(p *Player) bool {
	if !z.Collides(p.GetCollider()) {
		return false
	}
	p.Die()

	if !z.impacted {
		z.impacted = true
		z.Particles.Lifespan = ImpactLifespan
		if z.Edge.vertical() {
			z.Velocity.Y = -z.Velocity.Y
		} else {
			z.Velocity.X = -z.Velocity.X
		}
	}
	return true
}

// Draw renders the zone's particles.
func (z *DangerZone) Draw(r render.Renderer, camera *render.Camera) {
	z.Particles.Draw(r, camera)
}
