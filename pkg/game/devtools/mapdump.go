package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"gridfall/pkg/game/entities"
	"gridfall/pkg/game/scene"
	"gridfall/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// DumpLevelToFile writes a full debug dump to map.txt: metadata, legend, the
// current level's layout, and the live entities with world coordinates.
// Format is human- and LLM-readable (sections, key: value, consistent
// structure).
func DumpLevelToFile(g *state.Game) (string, error) {
	grid := g.Controller.Grid()
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	offset := g.Controller.Offset()

	fmt.Fprintln(f, "=== LEVEL DUMP DEBUG (layout and live entities) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "level: %d\n", g.Level)
	fmt.Fprintf(f, "grid_size: %d\n", grid.Size())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row 0 = top border)\n")
	fmt.Fprintf(f, "level_offset: %.1f,%.1f\n", offset.X, offset.Y)
	fmt.Fprintf(f, "cleared: %v\n", g.Controller.Cleared())
	fmt.Fprintf(f, "pending_teardown_entities: %d\n", g.Controller.PendingRemoval())
	fmt.Fprintf(f, "live_entities: %d\n", g.Scene.Len())
	fmt.Fprintf(f, "hostiles: %d\n", g.Hostiles.Count())
	fmt.Fprintf(f, "pickups: %d\n", g.Pickups.Count())
	fmt.Fprintf(f, "game_over: %v\n", g.GameOver)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = empty  # = wall  D = door  O = temporary-open door  w = weapon spawn  h = hostile spawn  @ = player spawn")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (current level layout) ---")
	for row := 0; row < grid.Size(); row++ {
		for col := 0; col < grid.Size(); col++ {
			fmt.Fprint(f, cellSymbol(grid.At(row, col)))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Entities (all with world x,y and state) ---")

	fmt.Fprintln(f, "Doors:")
	g.Scene.Each(func(e *scene.Entity) {
		door, ok := e.Data.(*entities.Door)
		if !ok {
			return
		}
		fmt.Fprintf(f, "  x: %.1f y: %.1f side: %s state: %s openness: %.2f\n",
			e.Pos.X, e.Pos.Y, door.Info.Side, door.State(), door.Openness)
	})
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Pickups:")
	g.Scene.Each(func(e *scene.Entity) {
		pick, ok := e.Data.(*entities.Pickup)
		if !ok {
			return
		}
		fmt.Fprintf(f, "  x: %.1f y: %.1f weapon: %s\n", e.Pos.X, e.Pos.Y, pick.Kind)
	})
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Hostiles:")
	g.Scene.Each(func(e *scene.Entity) {
		unit, ok := e.Data.(*entities.Hostile)
		if !ok {
			return
		}
		fmt.Fprintf(f, "  x: %.1f y: %.1f health: %d\n", e.Pos.X, e.Pos.Y, unit.Health)
	})
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Player:")
	if p := g.Players.Active(); p != nil {
		pos := g.Players.Pos()
		weapon := "none"
		if p.Weapon != nil {
			weapon = p.Weapon.String()
		}
		fmt.Fprintf(f, "  x: %.1f y: %.1f health: %d weapon: %s ammo: %d\n",
			pos.X, pos.Y, p.Health, weapon, p.Ammo)
	} else {
		fmt.Fprintln(f, "  (none)")
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END LEVEL DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
