// Package generator builds level layouts: a bordered square grid with one
// door per side, random wall strips carved through the interior, and pickup,
// hostile and player spawn markers. Generation is a pure function of its
// inputs; all randomness comes from the rng handle passed in, so tests can
// seed it deterministically.
package generator

import (
	"math/rand"

	"gridfall/pkg/engine/world"
)

// Default generation parameters, matching a 200-unit level at 5 units per
// cell.
const (
	DefaultGridSize   = 40
	DefaultFillAmount = 0.02
	DefaultStripLen   = 3

	// LevelWeaponSpawns and LevelEnemies are the per-level content counts.
	LevelWeaponSpawns = 4
	LevelEnemies      = 1
)

// maxPlacementAttempts bounds the rejection-sampling loops for pickup and
// hostile placement. When the budget is exhausted (pathological fill
// parameters), placement falls back to a row-major scan for the first Empty
// interior cell so the requested count is still honored.
const maxPlacementAttempts = 1000

// Config carries the generation parameters. Tests use small grids; the game
// uses DefaultConfig.
type Config struct {
	GridSize     int
	FillAmount   float64
	StripLength  int
	WeaponSpawns int
	Hostiles     int
}

// DefaultConfig returns the parameters used for real levels.
func DefaultConfig() Config {
	return Config{
		GridSize:     DefaultGridSize,
		FillAmount:   DefaultFillAmount,
		StripLength:  DefaultStripLen,
		WeaponSpawns: LevelWeaponSpawns,
		Hostiles:     LevelEnemies,
	}
}

// Generate produces a level grid. If prev is non-nil it is the door the
// player just exited the previous level through: the door on the opposite
// side is forced to the same position and starts open so the player walks in
// exactly where they left. If prev is nil (first level of a run), a player
// spawn is placed one row inward from the top door instead.
//
// Random draws happen in a fixed order: door positions (top, bottom, left,
// right), wall strips, then pickup and hostile placement. The continuity and
// border guarantees depend on that order staying put.
func Generate(cfg Config, prev *world.DoorInfo, tutorial bool, rng *rand.Rand) *world.Grid {
	n := cfg.GridSize
	grid := world.NewGrid(n)

	stampBorder(grid)

	// Candidate door positions, one per side, default locked.
	pos := make(map[world.Side]int, 4)
	state := make(map[world.Side]world.DoorState, 4)
	for _, side := range world.AllSides() {
		pos[side] = randInterior(rng, n)
		state[side] = world.DoorLocked
	}

	if prev != nil {
		// Door continuity: mirror the exit door onto the opposite side.
		opp := prev.Side.Opposite()
		pos[opp] = prev.Pos
		state[opp] = world.DoorTemporaryOpen
	} else {
		grid.SetKind(1, pos[world.Top], world.PlayerSpawn)
	}

	for _, side := range world.AllSides() {
		grid.SetDoor(world.DoorInfo{Side: side, State: state[side], Pos: pos[side]})
	}

	carveStrips(grid, cfg, rng)
	fillPockets(grid)

	placeContent(grid, world.PickupSpawn, cfg.WeaponSpawns, rng)
	placeContent(grid, world.HostileSpawn, cfg.Hostiles, rng)

	if tutorial {
		carveTutorialPen(grid)
	}

	return grid
}

// stampBorder walls the outer ring.
func stampBorder(g *world.Grid) {
	n := g.Size()
	for i := 0; i < n; i++ {
		g.SetKind(0, i, world.Wall)
		g.SetKind(n-1, i, world.Wall)
		g.SetKind(i, 0, world.Wall)
		g.SetKind(i, n-1, world.Wall)
	}
}

// randInterior draws a uniform position in [2, n-2).
func randInterior(rng *rand.Rand, n int) int {
	return 2 + rng.Intn(n-4)
}

// carveStrips fills the interior with short random-walk wall strips until the
// fill budget is spent. A walk ends early if it has no in-bounds neighbor
// left to step to.
func carveStrips(g *world.Grid, cfg Config, rng *rand.Rand) {
	if cfg.StripLength <= 0 {
		return
	}
	n := g.Size()
	fillCells := int(float64(n*n) * cfg.FillAmount)
	numStrips := fillCells / cfg.StripLength

	for s := 0; s < numStrips; s++ {
		col := randInterior(rng, n)
		row := randInterior(rng, n)
		g.SetKind(row, col, world.Wall)

		for step := 0; step < cfg.StripLength; step++ {
			var candidates [][2]int
			for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nr, nc := row+d[0], col+d[1]
				if g.IsInteriorPosition(nr, nc) {
					candidates = append(candidates, [2]int{nr, nc})
				}
			}
			if len(candidates) == 0 {
				break
			}
			next := candidates[rng.Intn(len(candidates))]
			row, col = next[0], next[1]
			g.SetKind(row, col, world.Wall)
		}
	}
}

// fillPockets converts interior Empty cells with walls on all four sides to
// Wall. This only removes single-cell pockets; larger enclosed pockets are a
// documented limitation, not a guarantee.
func fillPockets(g *world.Grid) {
	n := g.Size()
	for row := 2; row < n-2; row++ {
		for col := 2; col < n-2; col++ {
			if g.KindAt(row, col) != world.Empty {
				continue
			}
			if g.KindAt(row-1, col) == world.Wall &&
				g.KindAt(row+1, col) == world.Wall &&
				g.KindAt(row, col-1) == world.Wall &&
				g.KindAt(row, col+1) == world.Wall {
				g.SetKind(row, col, world.Wall)
			}
		}
	}
}

// placeContent stamps count cells of the given kind onto Empty interior
// cells, rejection-sampling uniform positions. After maxPlacementAttempts
// misses it falls back to the first Empty interior cell in row-major order.
func placeContent(g *world.Grid, kind world.CellKind, count int, rng *rand.Rand) {
	n := g.Size()
	for i := 0; i < count; i++ {
		placed := false
		for a := 0; a < maxPlacementAttempts; a++ {
			col := randInterior(rng, n)
			row := randInterior(rng, n)
			if g.KindAt(row, col) == world.Empty {
				g.SetKind(row, col, kind)
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		for row := 2; row < n-2 && !placed; row++ {
			for col := 2; col < n-2 && !placed; col++ {
				if g.KindAt(row, col) == world.Empty {
					g.SetKind(row, col, kind)
					placed = true
				}
			}
		}
	}
}

// carveTutorialPen strips all non-player content from the interior, moves the
// player spawn three rows further from the top door, and walls off a pen
// around it on three sides, leaving the way back toward the top door open.
func carveTutorialPen(g *world.Grid) {
	n := g.Size()

	playerRow, playerCol := -1, -1
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			if g.KindAt(row, col) == world.PlayerSpawn {
				playerRow, playerCol = row, col
			} else {
				g.SetKind(row, col, world.Empty)
			}
		}
	}
	if playerRow < 0 {
		// No player spawn in this grid (it was entered through a door);
		// nothing to pen in.
		return
	}

	g.SetKind(playerRow, playerCol, world.Empty)
	playerRow += 3
	g.SetKind(playerRow, playerCol, world.PlayerSpawn)

	for row := 0; row < n; row++ {
		g.SetKind(row, playerCol-2, world.Wall)
		g.SetKind(row, playerCol+2, world.Wall)
	}
	for col := 0; col < n; col++ {
		g.SetKind(playerRow+2, col, world.Wall)
	}
}
