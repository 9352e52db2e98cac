// Package renderer draws a top-down view of the running session with Ebiten.
// Walls, doors, pickups and units are drawn as flat shapes at world scale;
// the camera follows the player across level boundaries.
package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/entities"
	"gridfall/pkg/game/level"
	"gridfall/pkg/game/scene"
	"gridfall/pkg/game/state"
)

const (
	screenWidth  = 960
	screenHeight = 720

	// pixelsPerUnit maps world units to screen pixels.
	pixelsPerUnit = 3.0

	// tickDuration is the fixed simulation step, matching Ebiten's default
	// 60 ticks per second.
	tickDuration = 1.0 / 60.0
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorFloor      = color.RGBA{30, 30, 42, 255}
	colorWall       = color.RGBA{110, 110, 120, 255}
	colorDoorLocked = color.RGBA{180, 60, 60, 255}
	colorDoorClosed = color.RGBA{190, 170, 60, 255}
	colorDoorOpen   = color.RGBA{70, 180, 90, 255}
	colorPickup     = color.RGBA{190, 110, 230, 255}
	colorHostile    = color.RGBA{220, 70, 70, 255}
	colorPlayer     = color.RGBA{80, 220, 120, 255}
)

// App runs the session inside Ebiten's game loop: one simulation tick per
// engine update, then a full redraw.
type App struct {
	game *state.Game
}

// New wraps a session for the Ebiten loop.
func New(g *state.Game) *App {
	return &App{game: g}
}

// Run opens the window and runs the game loop until the window is closed or
// the player quits.
func Run(g *state.Game) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Gridfall")
	return ebiten.RunGame(New(g))
}

// Update advances the simulation by one fixed tick.
func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.game.Tick(pollIntent(), tickDuration)
	return nil
}

// Draw renders the scene and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cam := a.game.Players.Pos()

	// Floors first so everything else layers on top of them.
	a.game.Scene.Each(func(e *scene.Entity) {
		if e.Kind == scene.KindFloor {
			a.drawFloor(screen, cam, e)
		}
	})
	a.game.Scene.Each(func(e *scene.Entity) {
		x, y := a.toScreen(cam, e.Pos)
		switch e.Kind {
		case scene.KindWall:
			half := float32(level.CellSize / 2 * pixelsPerUnit)
			vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, colorWall, false)
		case scene.KindDoor:
			a.drawDoor(screen, x, y, e)
		case scene.KindPickup:
			vector.DrawFilledCircle(screen, x, y, 1.5*pixelsPerUnit, colorPickup, true)
		case scene.KindHostile:
			vector.DrawFilledCircle(screen, x, y, 2*pixelsPerUnit, colorHostile, true)
		case scene.KindPlayer:
			a.drawPlayer(screen, x, y)
		case scene.KindFloor, scene.KindLight:
		}
	})

	a.drawHUD(screen)
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// toScreen converts a world position to screen pixels with the camera at the
// screen center. World +Y points up the screen.
func (a *App) toScreen(cam, pos geom.Vec3) (float32, float32) {
	x := (pos.X-cam.X)*pixelsPerUnit + screenWidth/2
	y := -(pos.Y-cam.Y)*pixelsPerUnit + screenHeight/2
	return float32(x), float32(y)
}

func (a *App) drawFloor(screen *ebiten.Image, cam geom.Vec3, e *scene.Entity) {
	x, y := a.toScreen(cam, e.Pos)
	half := float32(level.LevelSize / 2 * pixelsPerUnit)
	vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, colorFloor, false)
}

func (a *App) drawDoor(screen *ebiten.Image, x, y float32, e *scene.Entity) {
	door, ok := e.Data.(*entities.Door)
	if !ok {
		return
	}

	clr := colorDoorClosed
	switch door.State() {
	case world.DoorLocked:
		clr = colorDoorLocked
	case world.DoorOpen, world.DoorTemporaryOpen:
		clr = colorDoorOpen
	case world.DoorOpening, world.DoorClosing, world.DoorClosed:
	}

	// The leaf shrinks along the door's axis as it opens.
	along := float32(level.CellSize / 2 * pixelsPerUnit * (1 - door.Openness))
	across := float32(level.DoorThickness / 2 * pixelsPerUnit)
	if along < 1 {
		along = 1
	}
	halfW, halfH := along, across
	switch door.Info.Side {
	case world.Left, world.Right:
		halfW, halfH = across, along
	case world.Top, world.Bottom:
	}
	vector.DrawFilledRect(screen, x-halfW, y-halfH, 2*halfW, 2*halfH, clr, false)
}

func (a *App) drawPlayer(screen *ebiten.Image, x, y float32) {
	vector.DrawFilledCircle(screen, x, y, entities.PlayerCapsuleRadius*pixelsPerUnit+2, colorPlayer, true)

	if p := a.game.Players.Active(); p != nil {
		f := p.Facing()
		const reach = 4 * pixelsPerUnit
		vector.StrokeLine(screen, x, y, x+float32(f.X)*reach, y-float32(f.Y)*reach, 2, colorPlayer, true)
	}
}
