// cmd/orbit/terminal.go
package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/render"
	engorender "github.com/opd-ai/go-orbit/pkg/render/engo"
)

// keyHold is how long a key counts as held after its last event.
// Terminals report presses and auto-repeat but never releases.
const keyHold = 150 * time.Millisecond

// terminalInput turns tcell key events into per-frame session input.
// Space toggles the link, since a release cannot be observed.
type terminalInput struct {
	hold        time.Duration
	toggle      bool
	thrustUntil time.Time
	debug       physics.Vector2D
	debugUntil  time.Time
}

func newTerminalInput() *terminalInput {
	return &terminalInput{hold: keyHold}
}

// HandleKey records a key event and reports whether it asks to quit.
func (in *terminalInput) HandleKey(ev *tcell.EventKey, now time.Time) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.pushDebug(physics.Vector2D{Y: -1}, now)
	case tcell.KeyDown:
		in.pushDebug(physics.Vector2D{Y: 1}, now)
	case tcell.KeyLeft:
		in.pushDebug(physics.Vector2D{X: -1}, now)
	case tcell.KeyRight:
		in.pushDebug(physics.Vector2D{X: 1}, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			in.toggle = true
		case 'w', 'W':
			in.thrustUntil = now.Add(in.hold)
		}
	}
	return false
}

func (in *terminalInput) pushDebug(dir physics.Vector2D, now time.Time) {
	if now.After(in.debugUntil) {
		in.debug = physics.Vector2D{}
	}
	in.debug = physics.Vector2D{
		X: physics.Clamp(in.debug.X+dir.X, -1, 1),
		Y: physics.Clamp(in.debug.Y+dir.Y, -1, 1),
	}
	in.debugUntil = now.Add(in.hold)
}

// Poll returns the input for the frame at now. linked is the player's
// current link state, which decides what a space press means.
func (in *terminalInput) Poll(now time.Time, linked bool) engine.Input {
	input := engine.Input{
		Thrust: now.Before(in.thrustUntil),
	}
	if now.Before(in.debugUntil) {
		input.Debug = in.debug
	}
	if in.toggle {
		input.LinkPressed = !linked
		input.LinkReleased = linked
		in.toggle = false
	}
	return input
}

// runTerminal plays a session on the terminal until the player quits.
func runTerminal(a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	r := render.NewTerminalRenderer(screen, a.cfg.Display.TerminalScale)
	w, h := r.Size()
	a.cfg.Display.Width, a.cfg.Display.Height = int(w), int(h)

	game, err := a.newGame()
	if err != nil {
		return err
	}
	game.Start()
	defer game.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	hud := engorender.NewHUD()
	input := newTerminalInput()
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Display.TargetFPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.HandleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				game.Resize(r.Size())
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			linked := game.GetGameState().Player.Linked
			game.Update(dt, input.Poll(now, linked))
			hud.UpdateGameState(game.GetGameState())
			game.Draw(hud.Wrap(r))
		}
	}
}
