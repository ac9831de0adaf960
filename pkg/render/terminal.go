package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// TerminalRenderer draws onto a tcell screen. Each column covers scale
// screen pixels horizontally and each row twice that vertically.
type TerminalRenderer struct {
	screen tcell.Screen
	scale  float64
}

// NewTerminalRenderer creates a renderer over an initialised screen.
func NewTerminalRenderer(screen tcell.Screen, scale float64) *TerminalRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &TerminalRenderer{
		screen: screen,
		scale:  scale,
	}
}

// Size returns the drawable area in screen pixels.
func (r *TerminalRenderer) Size() (width, height float64) {
	cols, rows := r.screen.Size()
	return float64(cols) * r.scale, float64(rows) * r.scale * cellAspect
}

// cell converts a screen pixel position to a terminal cell.
func (r *TerminalRenderer) cell(p physics.Vector2D) (int, int) {
	return int(math.Floor(p.X / r.scale)), int(math.Floor(p.Y / (r.scale * cellAspect)))
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// DrawCircle implements Renderer. Circles smaller than a cell occupy the
// cell containing their centre; translucency maps to lighter shade glyphs.
func (r *TerminalRenderer) DrawCircle(center physics.Vector2D, radius float64, c color.Color) {
	glyph, style, ok := shade(c)
	if !ok {
		return
	}

	cx, cy := r.cell(center)
	if radius < r.scale {
		r.set(cx, cy, glyph, style)
		return
	}

	min := physics.Vector2D{X: center.X - radius, Y: center.Y - radius}
	max := physics.Vector2D{X: center.X + radius, Y: center.Y + radius}
	x0, y0 := r.cell(min)
	x1, y1 := r.cell(max)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := physics.Vector2D{
				X: (float64(x) + 0.5) * r.scale,
				Y: (float64(y) + 0.5) * r.scale * cellAspect,
			}
			if mid.DistanceSquared(center) <= radius*radius {
				r.set(x, y, glyph, style)
			}
		}
	}
	r.set(cx, cy, glyph, style)
}

// DrawLine implements Renderer. Width is ignored; lines are one cell thick.
func (r *TerminalRenderer) DrawLine(from, to physics.Vector2D, width float64, c color.Color) {
	_, style, ok := shade(c)
	if !ok {
		return
	}

	delta := to.Sub(from)
	steps := int(math.Ceil(math.Max(math.Abs(delta.X)/r.scale, math.Abs(delta.Y)/(r.scale*cellAspect))))
	if steps == 0 {
		x, y := r.cell(from)
		r.set(x, y, '·', style)
		return
	}
	for i := 0; i <= steps; i++ {
		x, y := r.cell(from.Add(delta.Scale(float64(i) / float64(steps))))
		r.set(x, y, '·', style)
	}
}

// DrawText implements Renderer. The text starts at the given position.
func (r *TerminalRenderer) DrawText(text string, at physics.Vector2D, size float64, c color.Color) {
	_, style, ok := shade(c)
	if !ok {
		return
	}
	x, y := r.cell(at)
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// shade picks a block glyph for the colour's opacity. Fully transparent
// colours are not drawn.
func shade(c color.Color) (rune, tcell.Style, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return ' ', tcell.StyleDefault, false
	}

	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
	switch {
	case n.A >= 192:
		return '█', style, true
	case n.A >= 128:
		return '▓', style, true
	case n.A >= 64:
		return '▒', style, true
	default:
		return '░', style, true
	}
}
