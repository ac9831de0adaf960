// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Button names registered with engo.Input
const (
	ButtonLink       = "link"
	ButtonThrust     = "thrust"
	ButtonDebugLeft  = "debugLeft"
	ButtonDebugRight = "debugRight"
	ButtonDebugUp    = "debugUp"
	ButtonDebugDown  = "debugDown"
	ButtonQuit       = "quit"
)

// SetupInputBindings sets up the key bindings for the game. Space links
// on press, releases on release and thrusts while held.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonLink, engo.KeySpace)
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW)

	engo.Input.RegisterButton(ButtonDebugLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonDebugRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonDebugUp, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonDebugDown, engo.KeyArrowDown)

	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape, engo.KeyQ)
}

// buttonReader queries named buttons.
type buttonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
	JustReleased(name string) bool
}

type engoButtons struct{}

func (engoButtons) Down(name string) bool         { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool  { return engo.Input.Button(name).JustPressed() }
func (engoButtons) JustReleased(name string) bool { return engo.Input.Button(name).JustReleased() }

// Controls turns button state into per-frame session input.
type Controls struct {
	buttons buttonReader
}

// NewControls creates controls reading engo's global input.
func NewControls() *Controls {
	return &Controls{buttons: engoButtons{}}
}

// Poll samples the buttons once. Call it exactly once per frame: link
// presses and releases are edge-triggered.
func (c *Controls) Poll() engine.Input {
	b := c.buttons
	return engine.Input{
		Thrust:       b.Down(ButtonLink) || b.Down(ButtonThrust),
		LinkPressed:  b.JustPressed(ButtonLink),
		LinkReleased: b.JustReleased(ButtonLink),
		Debug: physics.Vector2D{
			X: axis(b.Down(ButtonDebugLeft), b.Down(ButtonDebugRight)),
			Y: axis(b.Down(ButtonDebugUp), b.Down(ButtonDebugDown)),
		},
	}
}

// QuitRequested reports whether a quit key went down this frame.
func (c *Controls) QuitRequested() bool {
	return c.buttons.JustPressed(ButtonQuit)
}

func axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
