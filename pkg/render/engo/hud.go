// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/render"
)

// HUD layout
const (
	HUDTextSize = 20
	HUDMargin   = 10
)

// HUD overlays the survival clock and link status on every frame. It only
// needs a render.Renderer, so the terminal frontend uses it too.
type HUD struct {
	Color render.Color

	state *engine.GameState
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{Color: render.White}
}

// UpdateGameState sets the snapshot the next frame displays.
func (hud *HUD) UpdateGameState(state *engine.GameState) {
	hud.state = state
}

// Draw renders the overlay lines top-left.
func (hud *HUD) Draw(r render.Renderer) {
	if hud.state == nil {
		return
	}

	lines := []string{fmt.Sprintf("%.1fs", hud.state.ElapsedTime)}
	if hud.state.Player.Linked {
		lines = append(lines, "LINKED")
	}

	for i, line := range lines {
		at := physics.Vector2D{X: HUDMargin, Y: HUDMargin + float64(i)*HUDTextSize*1.2}
		r.DrawText(line, at, HUDTextSize, hud.Color)
	}
}

// Wrap returns a renderer that draws the overlay just before presenting.
func (hud *HUD) Wrap(r render.Renderer) render.Renderer {
	return &hudFrame{Renderer: r, hud: hud}
}

type hudFrame struct {
	render.Renderer
	hud *HUD
}

func (f *hudFrame) Present() {
	f.hud.Draw(f.Renderer)
	f.Renderer.Present()
}
