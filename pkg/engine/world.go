// pkg/engine/world.go
package engine

import (
	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
)

// splitter is implemented by sources that can hand out child streams.
type splitter interface {
	Split() *random.Rand
}

// particleSource gives each emitter its own stream when the world source
// supports it, so emission never shifts world generation.
func (g *Game) particleSource() random.Source {
	if s, ok := g.rng.(splitter); ok {
		return s.Split()
	}
	return g.rng
}

// initPlanets scatters planets in rows above the player's start.
func (g *Game) initPlanets() {
	w := g.Config.World
	g.Planets = entity.NewPlanetSet(w.PlanetCount)

	for i := 0; i < w.PlanetCount; i++ {
		position := physics.Vector2D{
			X: g.rng.Uniform(-w.SpawnWidth/2, w.SpawnWidth/2),
			Y: float64(i+1) * -g.rng.Uniform(w.RowSpacingMin, w.RowSpacingMax),
		}
		velocity := physics.Vector2D{
			X: g.rng.Uniform(-w.PlanetSpeed, w.PlanetSpeed),
			Y: g.rng.Uniform(-w.PlanetSpeed, w.PlanetSpeed),
		}
		radius := g.rng.Uniform(w.RadiusMin, w.RadiusMax)

		g.Planets.Add(entity.NewPlanet(entity.GenerateID(), position, velocity, radius, g.particleSource()))
	}
}

// initPlayer places a resting player at the origin.
func (g *Game) initPlayer() {
	g.Player = entity.NewPlayer(
		entity.GenerateID(),
		physics.Vector2D{},
		g.Config.Player.Radius,
		playerTuning(g.Config.Player),
		g.particleSource(),
	)
}

func playerTuning(pc config.PlayerConfig) entity.PlayerTuning {
	tuning := entity.DefaultPlayerTuning()
	tuning.Thrust.Deceleration = pc.Deceleration
	tuning.Thrust.Power = pc.ThrustPower
	tuning.Orbit.MaxTurnRate = pc.MaxTurnRate
	tuning.Orbit.RadialCorrection = pc.RadialCorrection
	tuning.DebugControls = pc.DebugControls
	tuning.DebugAcceleration = pc.DebugAcceleration
	return tuning
}

// initZones creates one zone per configured edge, Offset away from the
// player's start.
func (g *Game) initZones() error {
	g.Zones = make([]*entity.DangerZone, 0, len(g.Config.Zones))

	for _, zc := range g.Config.Zones {
		edge, err := entity.ParseEdge(zc.Edge)
		if err != nil {
			return err
		}

		params := entity.ZoneParams{
			Edge:       edge,
			Size:       physics.Vector2D{X: zc.Width, Y: zc.Height},
			Speed:      zc.Speed,
			GrowthRate: zc.GrowthRate,
			EmitPeriod: zc.EmitPeriod,
		}

		var zone *entity.DangerZone
		switch edge {
		case entity.EdgeThreshold:
			zone = entity.NewThresholdZone(entity.GenerateID(), zc.Offset, params, g.particleSource())
		case entity.EdgeLeft:
			params.Position = physics.Vector2D{X: -(zc.Offset + zc.Width/2)}
			zone = entity.NewDangerZone(entity.GenerateID(), params, g.particleSource())
		case entity.EdgeRight:
			params.Position = physics.Vector2D{X: zc.Offset + zc.Width/2}
			zone = entity.NewDangerZone(entity.GenerateID(), params, g.particleSource())
		default:
			params.Position = physics.Vector2D{Y: zc.Offset + zc.Height/2}
			zone = entity.NewDangerZone(entity.GenerateID(), params, g.particleSource())
		}
		g.Zones = append(g.Zones, zone)
	}
	return nil
}
