// pkg/render/renderer.go
package render

import (
	"context"
	"image/color"

	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Renderer is the drawing surface the simulation draws onto. All positions
// are screen coordinates: callers convert from world space with a Camera.
type Renderer interface {
	Clear()
	DrawCircle(center physics.Vector2D, radius float64, c color.Color)
	DrawLine(from, to physics.Vector2D, width float64, c color.Color)
	DrawText(text string, at physics.Vector2D, size float64, c color.Color)
	Present()
}

// NullRenderer is a Renderer that only logs and counts draw calls.
type NullRenderer struct {
	logger *logging.Logger

	Circles int
	Lines   int
	Texts   []string
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{
		logger: logger,
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.Circles = 0
	d.Lines = 0
	d.Texts = d.Texts[:0]
	d.logger.Debug(context.Background(), "Clear called")
}

// DrawCircle implements Renderer.
func (d *NullRenderer) DrawCircle(center physics.Vector2D, radius float64, c color.Color) {
	d.Circles++
}

// DrawLine implements Renderer.
func (d *NullRenderer) DrawLine(from, to physics.Vector2D, width float64, c color.Color) {
	d.Lines++
	d.logger.Debug(context.Background(), "DrawLine called",
		"from_x", from.X, "from_y", from.Y,
		"to_x", to.X, "to_y", to.Y,
	)
}

// DrawText implements Renderer.
func (d *NullRenderer) DrawText(text string, at physics.Vector2D, size float64, c color.Color) {
	d.Texts = append(d.Texts, text)
	d.logger.Debug(context.Background(), "DrawText called", "text", text)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called",
		"circles", d.Circles,
		"lines", d.Lines,
	)
}
