// Package particle implements the decaying point sprites used for body
// trails, thrust and death effects and danger-zone visuals. Particles are
// decorative: they never collide with anything.
package particle

import (
	"math"

	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// Particle is a single fading point sprite.
type Particle struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
	Color    render.Color
	TimeLeft float64
}

// update advances the particle and fades its alpha so it reaches zero
// together with its remaining lifetime.
func (p *Particle) update(deltaTime float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
	p.TimeLeft -= deltaTime
	if p.TimeLeft < p.Color.A {
		p.Color.A = p.TimeLeft
	}
}

// Emitter configures a particle System.
type Emitter struct {
	TimePerParticle float64 // seconds between spawns; <= 0 disables emission
	InitialSpeed    float64
	InitialRadius   float64
	InitialColor    render.Color
	Lifespan        float64
}

// System owns a set of particles and spawns new ones on a fixed period.
type System struct {
	Particles       []Particle
	SpawnTimer      float64
	TimePerParticle float64
	InitialSpeed    float64
	InitialRadius   float64
	InitialColor    render.Color
	Lifespan        float64

	rng random.Source
}

// NewSystem creates an empty system. The first particle is emitted one full
// period after creation.
func NewSystem(emitter Emitter, rng random.Source) *System {
	return &System{
		Particles:       make([]Particle, 0, 64),
		SpawnTimer:      emitter.TimePerParticle,
		TimePerParticle: emitter.TimePerParticle,
		InitialSpeed:    emitter.InitialSpeed,
		InitialRadius:   emitter.InitialRadius,
		InitialColor:    emitter.InitialColor,
		Lifespan:        emitter.Lifespan,
		rng:             rng,
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.Particles)
}

// Spawn emits one particle at point heading in a uniformly random direction.
func (s *System) Spawn(point physics.Vector2D) {
	s.Particles = append(s.Particles, s.newParticle(point))
}

// SpawnInRange emits one particle at a uniformly random point inside the
// rectangle spanned by min and max.
func (s *System) SpawnInRange(min, max physics.Vector2D) {
	point := physics.Vector2D{
		X: s.rng.Uniform(min.X, max.X),
		Y: s.rng.Uniform(min.Y, max.Y),
	}
	s.Particles = append(s.Particles, s.newParticle(point))
}

// Burst emits n particles at point at once.
func (s *System) Burst(point physics.Vector2D, n int) {
	for i := 0; i < n; i++ {
		s.Spawn(point)
	}
}

func (s *System) newParticle(point physics.Vector2D) Particle {
	angle := s.rng.Uniform(0, 2*math.Pi)
	return Particle{
		Position: point,
		Velocity: physics.FromAngle(angle, s.InitialSpeed),
		Radius:   s.InitialRadius,
		Color:    s.InitialColor,
		TimeLeft: s.Lifespan,
	}
}

// Update advances all particles, drops expired ones and emits at point.
// Every emission period that elapsed during deltaTime produces a particle,
// so long frames do not starve the emitter.
func (s *System) Update(deltaTime float64, point physics.Vector2D) {
	s.Advance(deltaTime)
	s.emit(deltaTime, func() { s.Spawn(point) })
}

// UpdateWithRange is Update with emission spread over a rectangle.
func (s *System) UpdateWithRange(deltaTime float64, min, max physics.Vector2D) {
	s.Advance(deltaTime)
	s.emit(deltaTime, func() { s.SpawnInRange(min, max) })
}

// Advance moves and ages particles and drops expired ones without emitting.
func (s *System) Advance(deltaTime float64) {
	live := s.Particles[:0]
	for i := range s.Particles {
		p := s.Particles[i]
		p.update(deltaTime)
		if p.TimeLeft > 0 {
			live = append(live, p)
		}
	}
	clear(s.Particles[len(live):])
	s.Particles = live
}

func (s *System) emit(deltaTime float64, spawn func()) {
	if s.TimePerParticle <= 0 {
		return
	}
	s.SpawnTimer -= deltaTime
	for s.SpawnTimer <= 0 {
		s.SpawnTimer += s.TimePerParticle
		spawn()
	}
}

// InheritMovement translates every particle by delta so the cloud moves
// rigidly with its emitter.
func (s *System) InheritMovement(delta physics.Vector2D) {
	for i := range s.Particles {
		s.Particles[i].Position = s.Particles[i].Position.Add(delta)
	}
}

// ShiftColor adds to every particle's colour channels, clamping to [0, 1].
func (s *System) ShiftColor(r, g, b, a float64) {
	for i := range s.Particles {
		c := s.Particles[i].Color
		s.Particles[i].Color = render.Color{R: c.R + r, G: c.G + g, B: c.B + b, A: c.A + a}.Clamped()
	}
}

// Bounds returns the world-space rect enclosing every particle. ok is false
// for an empty system.
func (s *System) Bounds() (bounds physics.Rect, ok bool) {
	if len(s.Particles) == 0 {
		return physics.Rect{}, false
	}
	min := physics.Vector2D{X: math.Inf(1), Y: math.Inf(1)}
	max := physics.Vector2D{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range s.Particles {
		min.X = math.Min(min.X, p.Position.X-p.Radius)
		min.Y = math.Min(min.Y, p.Position.Y-p.Radius)
		max.X = math.Max(max.X, p.Position.X+p.Radius)
		max.Y = math.Max(max.Y, p.Position.Y+p.Radius)
	}
	return physics.RectFromBounds(min, max), true
}

// Draw renders every particle as a filled circle. It does not change state.
func (s *System) Draw(r render.Renderer, camera *render.Camera) {
	for _, p := range s.Particles {
		r.DrawCircle(camera.ToScreen(p.Position), p.Radius, p.Color)
	}
}
