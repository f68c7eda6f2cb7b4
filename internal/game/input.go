package game

import (
	"arena-lab/internal/shared/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ReadIntent samples the devices into a world-space control intent. The
// camera keeps the player at the screen center, so the aim direction is just
// cursor minus center.
func ReadIntent() input.Intent {
	var in input.Intent

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}

	sw, sh := ebiten.WindowSize()
	cx, cy := ebiten.CursorPosition()
	in.AimX = float64(cx - sw/2)
	in.AimY = float64(cy - sh/2)

	in.Firing = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyJ)

	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)

	in.Ultra = inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	return in
}
