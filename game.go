package gamebyte

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts the application core to ebiten's per-frame callbacks.
type game struct {
	app *App
}

// Update advances the active scene by one tick.
func (g *game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS reports -1.
		tps = ebiten.DefaultTPS
	}
	g.app.scenes.Update(1.0 / float64(tps))
	return nil
}

// Draw renders the active scene and, in debug mode, the FPS overlay.
func (g *game) Draw(screen *ebiten.Image) {
	g.app.scenes.Render(screen)
	if g.app.cfg.App.Debug {
		DrawFPS(screen)
	}
}

// Layout reports the logical resolution from the window config.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.cfg.Window.Width, g.app.cfg.Window.Height
}

// runGame configures the window from the app config and blocks inside
// ebiten's game loop until the window closes.
func runGame(app *App) error {
	win := app.cfg.Window
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	return ebiten.RunGame(&game{app: app})
}
