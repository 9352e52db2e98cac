package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leonelquinteros/gotext"
)

// drawHUD prints the status lines and the message log. Strings go through
// gotext so they pick up translations when a catalog is installed.
func (a *App) drawHUD(screen *ebiten.Image) {
	y := 8

	ebitenutil.DebugPrintAt(screen, gotext.Get("Level %d", a.game.Level), 8, y)
	y += 16

	if p := a.game.Players.Active(); p != nil {
		ebitenutil.DebugPrintAt(screen, gotext.Get("Health %d", p.Health), 8, y)
		y += 16
		if p.Weapon != nil {
			ebitenutil.DebugPrintAt(screen, gotext.Get("%s, ammo %d", p.Weapon.String(), p.Ammo), 8, y)
			y += 16
		}
	}

	if n := a.game.Hostiles.Count(); n > 0 {
		ebitenutil.DebugPrintAt(screen, gotext.Get("Hostiles remaining: %d", n), 8, y)
		y += 16
	}

	y += 8
	for _, msg := range a.game.Messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, y)
		y += 16
	}

	if a.game.GameOver {
		ebitenutil.DebugPrintAt(screen, gotext.Get("You died. Press Escape to quit."), screenWidth/2-100, screenHeight/2)
	}
}
