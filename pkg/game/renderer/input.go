package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridfall/pkg/engine/input"
)

// pollIntent reads the keyboard into a movement intent. WASD moves, the
// left and right arrows turn; positive turn is counterclockwise.
func pollIntent() input.Intent {
	var in input.Intent

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn -= 1
	}

	return in
}
