package gamebyte

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawFPS prints the current FPS and TPS in the screen's top-left corner.
// Drawn automatically each frame when the app runs with App.Debug set.
func DrawFPS(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}
