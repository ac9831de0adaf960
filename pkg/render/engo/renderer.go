// pkg/render/engo/renderer.go
package engo

import (
	"context"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// shapeSystem is the part of common.RenderSystem the renderer needs.
type shapeSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// shape is one pooled drawable entity.
type shape struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// Renderer implements render.Renderer on top of engo's retained render
// system. Each frame's draw calls claim entities from a pool in order; the
// ones left unclaimed at Present are hidden.
type Renderer struct {
	system shapeSystem
	assets *AssetManager
	logger *logging.Logger

	pool       []*shape
	used       int
	fontFailed bool
}

// NewRenderer creates a renderer that registers its entities with system.
func NewRenderer(system shapeSystem, assets *AssetManager, logger *logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Renderer{
		system: system,
		assets: assets,
		logger: logger,
	}
}

// Clear releases every pooled entity for reuse.
func (r *Renderer) Clear() {
	r.used = 0
}

// DrawCircle implements render.Renderer
func (r *Renderer) DrawCircle(center physics.Vector2D, radius float64, c color.Color) {
	s := r.next()
	s.Drawable = common.Circle{}
	s.Color = c
	s.Position = engo.Point{X: float32(center.X - radius), Y: float32(center.Y - radius)}
	s.Width = float32(2 * radius)
	s.Height = float32(2 * radius)
	s.Rotation = 0
}

// DrawLine draws a filled rectangle of the given width centred on the
// segment. Engo rotates a space component about its top-left corner, so
// the corner is shifted half a width along the segment's normal.
func (r *Renderer) DrawLine(from, to physics.Vector2D, width float64, c color.Color) {
	delta := to.Sub(from)
	angle := delta.Angle()
	normal := physics.FromAngle(angle+math.Pi/2, width/2)
	corner := from.Sub(normal)

	s := r.next()
	s.Drawable = common.Rectangle{}
	s.Color = c
	s.Position = engo.Point{X: float32(corner.X), Y: float32(corner.Y)}
	s.Width = float32(delta.Length())
	s.Height = float32(width)
	s.Rotation = float32(angle * 180 / math.Pi)
}

// DrawText implements render.Renderer. Text is dropped when the font is
// unavailable; the failure is logged once.
func (r *Renderer) DrawText(text string, at physics.Vector2D, size float64, c color.Color) {
	font, err := r.assets.Font(size)
	if err != nil {
		if !r.fontFailed {
			r.logger.Warn(context.Background(), "text skipped", "text", text, "error", err.Error())
			r.fontFailed = true
		}
		return
	}

	s := r.next()
	s.Drawable = common.Text{Font: font, Text: text}
	s.Color = c
	s.Position = engo.Point{X: float32(at.X), Y: float32(at.Y)}
	s.Width = 0
	s.Height = 0
	s.Rotation = 0
}

// Present hides the entities this frame did not claim.
func (r *Renderer) Present() {
	for _, s := range r.pool[r.used:] {
		s.Hidden = true
	}
}

// Close removes every pooled entity from the render system.
func (r *Renderer) Close() {
	for _, s := range r.pool {
		r.system.Remove(s.BasicEntity)
	}
	r.pool = nil
	r.used = 0
}

// Drawn returns the number of entities claimed since the last Clear.
func (r *Renderer) Drawn() int {
	return r.used
}

// next claims the next pooled entity, growing the pool when needed. Later
// claims get a higher z index so draw order is preserved.
func (r *Renderer) next() *shape {
	if r.used == len(r.pool) {
		s := &shape{BasicEntity: ecs.NewBasic()}
		s.Scale = engo.Point{X: 1, Y: 1}
		r.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		r.pool = append(r.pool, s)
	}

	s := r.pool[r.used]
	r.used++
	s.Hidden = false
	s.SetZIndex(float32(r.used))
	return s
}
