// pkg/render/engo/scene.go
package engo

import (
	"image/color"
	"sync"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/logging"
)

// WindowTitle is shown in the window's title bar
const WindowTitle = "Orbit"

// GameScene runs a session inside an engo window
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger

	assets   *AssetManager
	controls *Controls
	hud      *HUD
	renderer *Renderer

	stopOnce sync.Once
}

// NewGameScene creates a new game scene
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		game:     game,
		logger:   logger,
		assets:   NewAssetManager(),
		controls: NewControls(),
		hud:      NewHUD(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload registers the bundled font (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(scene.game.Context(), "failed to load assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	scene.renderer = NewRenderer(renderSystem, scene.assets, scene.logger)

	SetupInputBindings()
	world.AddSystem(&sessionSystem{scene: scene})

	scene.game.Start()
}

// Frame advances the session by dt seconds and draws it.
func (scene *GameScene) Frame(dt float64) {
	if scene.controls.QuitRequested() {
		engo.Exit()
		return
	}

	scene.game.Update(dt, scene.controls.Poll())
	scene.hud.UpdateGameState(scene.game.GetGameState())
	scene.game.Draw(scene.hud.Wrap(scene.renderer))
}

// Exit is called when the window closes (required by Engo)
func (scene *GameScene) Exit() {
	scene.stopOnce.Do(scene.game.Stop)
	if scene.renderer != nil {
		scene.renderer.Close()
	}
}

// sessionSystem drives the scene from engo's update loop.
type sessionSystem struct {
	scene *GameScene
}

func (s *sessionSystem) Update(dt float32) {
	s.scene.Frame(float64(dt))
}

func (s *sessionSystem) Remove(ecs.BasicEntity) {}

// Run opens a window and plays game until it is closed.
func Run(game *engine.Game, display config.DisplayConfig, logger *logging.Logger) {
	scene := NewGameScene(game, logger)
	engo.Run(engo.RunOptions{
		Title:    WindowTitle,
		Width:    display.Width,
		Height:   display.Height,
		FPSLimit: display.TargetFPS,
		VSync:    true,
	}, scene)
	scene.stopOnce.Do(game.Stop)
}
