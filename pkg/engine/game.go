// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// GameStatus is the session state. Dead is terminal.
type GameStatus int

const (
	GameStatusPlaying GameStatus = iota
	GameStatusDead
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusPlaying:
		return "playing"
	case GameStatusDead:
		return "dead"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

var (
	// ErrNoPlanets is returned when a link is requested with no planet left.
	ErrNoPlanets = errors.New("no planet to link to")
	// ErrSessionOver is returned for player actions after death.
	ErrSessionOver = errors.New("session is over")
)

// Drawing constants
const (
	LinkLineWidth = 10
	EndMessage    = "YOU DIED..."
	EndTextSize   = 50
)

// Input is the control state sampled once per frame.
type Input struct {
	Thrust       bool
	LinkPressed  bool
	LinkReleased bool
	Debug        physics.Vector2D
}

// Game represents the core session state and per-tick orchestration
type Game struct {
	Config      *config.GameConfig
	Player      *entity.Player
	Planets     *entity.PlanetSet
	Zones       []*entity.DangerZone
	Camera      *render.Camera
	EventBus    *event.Bus
	EntityLock  sync.RWMutex
	Status      GameStatus
	CurrentTick uint64
	ElapsedTime float64 // seconds survived

	rng    random.Source
	logger *logging.Logger
	ctx    context.Context
}

// NewGame validates the configuration and generates a new world. A nil bus
// or logger is replaced with a private bus or a discarding logger.
func NewGame(cfg *config.GameConfig, rng random.Source, bus *event.Bus, logger *logging.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if rng == nil {
		rng = random.NewFromTime()
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	game := &Game{
		Config:   cfg,
		Camera:   render.NewCamera(float64(cfg.Display.Width), float64(cfg.Display.Height)),
		EventBus: bus,
		Status:   GameStatusPlaying,
		rng:      rng,
		logger:   logger,
		ctx:      logging.WithSessionID(context.Background(), logging.GenerateSessionID()),
	}

	game.initPlanets()
	game.initPlayer()
	if err := game.initZones(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	game.Camera.Follow(game.Player.Position, game.Player.Velocity)

	return game, nil
}

// Start announces the session.
func (g *Game) Start() {
	g.logger.Info(g.ctx, "session started",
		"planets", g.Planets.Len(),
		"zones", len(g.Zones),
	)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// Stop announces the end of the session, whether or not the player died.
func (g *Game) Stop() {
	g.EntityLock.RLock()
	elapsed, status := g.ElapsedTime, g.Status
	g.EntityLock.RUnlock()

	g.logger.Info(g.ctx, "session stopped", "status", status.String(), "elapsed", elapsed)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}

// Context carries the session ID for log correlation.
func (g *Game) Context() context.Context {
	return g.ctx
}

// Update advances the session by deltaTime seconds. Link input is applied
// first, then the camera follows the player and the world is stepped in
// slices no longer than Simulation.MaxStep. Negative, NaN and infinite
// deltas count as zero; a frame longer than Simulation.MaxFrame is cut to
// that length and the rest of the stall is dropped.
func (g *Game) Update(deltaTime float64, input Input) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) || deltaTime < 0 {
		deltaTime = 0
	}
	if maxFrame := g.Config.Simulation.MaxFrame; deltaTime > maxFrame {
		g.logger.Debug(g.ctx, "frame clamped", "delta", deltaTime, "dropped", deltaTime-maxFrame)
		deltaTime = maxFrame
	}

	if input.LinkPressed {
		if _, err := g.linkNearest(); err != nil {
			g.logger.Debug(g.ctx, "link ignored", "reason", err.Error())
		}
	}
	if input.LinkReleased {
		g.letGo()
	}

	g.Camera.Follow(g.Player.Position, g.Player.Velocity)

	controls := entity.Controls{Thrust: input.Thrust, Debug: input.Debug}
	maxStep := g.Config.Simulation.MaxStep
	for remaining := deltaTime; remaining > 0; {
		step := math.Min(remaining, maxStep)
		g.step(step, controls)
		remaining -= step
	}
	g.CurrentTick++
}

// step runs one integration slice: player, zones, planets, then
// collisions.
func (g *Game) step(deltaTime float64, controls entity.Controls) {
	wasDead := g.Player.IsDead()

	g.Player.Update(deltaTime, controls, g.resolveAnchor(), g.Zones)
	for _, z := range g.Zones {
		z.Update(deltaTime, g.Player.Position)
	}
	g.Planets.Each(func(_ entity.Ref, p *entity.Planet) {
		p.Update(deltaTime)
	})
	g.processCollisions()

	if wasDead {
		return
	}
	if g.Player.IsDead() {
		g.handlePlayerDeath()
		return
	}
	g.ElapsedTime += deltaTime
}

// resolveAnchor returns the linked planet, dropping links whose planet has
// been removed.
func (g *Game) resolveAnchor() *entity.Planet {
	ref, linked := g.Player.LinkedRef()
	if !linked {
		return nil
	}
	anchor, ok := g.Planets.Get(ref)
	if !ok {
		g.Player.ClearLink()
		g.publishLink(event.PlayerReleased, 0)
		return nil
	}
	return anchor
}

// processCollisions resolves contacts in a fixed order: the player against
// each planet in ascending slot order, then planet pairs (i, j) with i < j
// in lexicographic order. Each resolution sees the results of the ones
// before it.
func (g *Game) processCollisions() {
	planets := g.Planets.Planets()

	if !g.Player.IsDead() {
		for _, p := range planets {
			if g.Player.Overlaps(p.Kinematics()) {
				g.collide(g.Player, p)
			}
		}
	}

	for i := 0; i < len(planets); i++ {
		for j := i + 1; j < len(planets); j++ {
			if planets[i].Overlaps(planets[j].Kinematics()) {
				g.collide(planets[i], planets[j])
			}
		}
	}
}

func (g *Game) collide(a, b entity.Collidable) {
	ka, kb := a.Kinematics(), b.Kinematics()
	normal := ka.Position.Sub(kb.Position).Normalize()
	impulse := math.Abs(ka.Velocity.Sub(kb.Velocity).Dot(normal))

	physics.ResolveCollision(ka, kb)

	g.EventBus.Publish(event.NewCollisionEvent(g, uint64(a.GetID()), uint64(b.GetID()), impulse))
}

func (g *Game) handlePlayerDeath() {
	g.Status = GameStatusDead

	var zoneID entity.ID
	for _, z := range g.Zones {
		if z.Impacted() {
			zoneID = z.ID
			break
		}
	}

	pos := g.Player.Position
	g.logger.Info(g.ctx, "player died",
		"zone_id", uint64(zoneID),
		"x", pos.X,
		"y", pos.Y,
		"elapsed", g.ElapsedTime,
	)
	g.EventBus.Publish(event.NewDeathEvent(g, uint64(g.Player.ID), uint64(zoneID), pos.X, pos.Y, g.ElapsedTime))
}

// LinkNearest links the player to the closest planet.
func (g *Game) LinkNearest() (entity.Ref, error) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.linkNearest()
}

func (g *Game) linkNearest() (entity.Ref, error) {
	if g.Player.IsDead() {
		return entity.Ref{}, ErrSessionOver
	}
	ref, ok := g.Planets.Nearest(g.Player.Position)
	if !ok {
		return entity.Ref{}, ErrNoPlanets
	}

	g.Player.Link(ref)
	planet, _ := g.Planets.Get(ref)
	g.publishLink(event.PlayerLinked, planet.ID)
	return ref, nil
}

// LetGo releases the player's link, keeping the planet's momentum. It
// reports whether the player was linked.
func (g *Game) LetGo() bool {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.letGo()
}

func (g *Game) letGo() bool {
	ref, linked := g.Player.LinkedRef()
	if !linked {
		return false
	}

	anchor, _ := g.Planets.Get(ref)
	g.Player.LetGoOfPlanet(anchor)

	var planetID entity.ID
	if anchor != nil {
		planetID = anchor.ID
	}
	g.publishLink(event.PlayerReleased, planetID)
	return true
}

// RemovePlanet despawns a planet. A player linked to it is released
// without inheriting its momentum.
func (g *Game) RemovePlanet(ref entity.Ref) bool {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	planet, ok := g.Planets.Get(ref)
	if !ok {
		return false
	}
	if linked, isLinked := g.Player.LinkedRef(); isLinked && linked == ref {
		g.Player.ClearLink()
		g.publishLink(event.PlayerReleased, planet.ID)
	}
	g.Planets.Remove(ref)
	g.logger.Debug(g.ctx, "planet removed", "planet_id", uint64(planet.ID))
	return true
}

func (g *Game) publishLink(eventType event.Type, planetID entity.ID) {
	g.EventBus.Publish(event.NewLinkEvent(eventType, g, uint64(g.Player.ID), uint64(planetID)))
}

// Resize changes the screen size the camera centres the player in.
func (g *Game) Resize(width, height float64) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.Camera.Resize(width, height)
	g.Camera.Follow(g.Player.Position, g.Player.Velocity)
}

// Draw renders one frame: the link line, planets, zones, the player and,
// after death, the end message.
func (g *Game) Draw(r render.Renderer) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	cam := g.Camera
	r.Clear()

	if ref, linked := g.Player.LinkedRef(); linked {
		if anchor, ok := g.Planets.Get(ref); ok {
			r.DrawLine(cam.ToScreen(g.Player.Position), cam.ToScreen(anchor.Position), LinkLineWidth, render.Green)
		}
	}

	g.Planets.Each(func(_ entity.Ref, p *entity.Planet) {
		p.Draw(r, cam)
	})
	for _, z := range g.Zones {
		z.Draw(r, cam)
	}
	g.Player.Draw(r, cam)

	if g.Status == GameStatusDead {
		at := physics.Vector2D{
			X: cam.Width/2 - float64(len(EndMessage))*EndTextSize/4,
			Y: cam.Height/2 - EndTextSize/2,
		}
		r.DrawText(EndMessage, at, EndTextSize, render.White)
	}

	r.Present()
}
