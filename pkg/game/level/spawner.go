// Package level turns generated grids into live world content and manages
// the lifecycle of consecutive levels: where each level sits in world space,
// when a level counts as cleared, and when the previous level's geometry may
// finally be torn down.
package level

import (
	"math"
	"math/rand"

	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/scene"
)

// World-scale constants: a 200-unit level of 5-unit cells.
const (
	LevelSize     = 200.0
	CellSize      = 5.0
	WallHeight    = 10.0
	DoorThickness = 2.0
)

// TagLevelGeometry marks every entity belonging to the current level so the
// progression controller can enumerate and delete a whole level as a batch.
const TagLevelGeometry = "level-geometry"

// Light is the per-level directional light, stored as scene entity data.
type Light struct {
	Color      [3]float64
	RotX, RotZ float64
}

var lightColors = [][3]float64{
	{1, 1, 1},    // white
	{0, 0, 1},    // blue
	{1, 0.27, 0}, // orange red
}

// Collaborator subsystems. The spawner hands out world transforms; the
// subsystems own everything else about their entities.
type (
	// DoorSubsystem spawns a door with its open/close state machine.
	DoorSubsystem interface {
		SpawnDoor(info world.DoorInfo, pos geom.Vec3) scene.Handle
	}
	// PickupSubsystem spawns a floating weapon pickup.
	PickupSubsystem interface {
		SpawnPickup(pos geom.Vec3) scene.Handle
	}
	// HostileSubsystem spawns one hostile unit.
	HostileSubsystem interface {
		SpawnHostile(pos geom.Vec3) scene.Handle
	}
	// PlayerSubsystem spawns the player body.
	PlayerSubsystem interface {
		SpawnPlayer(pos geom.Vec3) scene.Handle
	}
)

// Spawner walks a generated grid and emits one placement per non-empty cell,
// plus the level floor and a randomized directional light.
type Spawner struct {
	Scene    *scene.Scene
	Space    *physics.Space
	Doors    DoorSubsystem
	Pickups  PickupSubsystem
	Hostiles HostileSubsystem
	Player   PlayerSubsystem
	Rng      *rand.Rand
}

// Spawn instantiates the grid. offset is the world offset of the level the
// player is coming from; the new level is placed one full level step away
// from the door they entered through, so consecutive levels tile without
// overlapping. It returns the new level's world offset.
//
// Every emitted entity except the player is tagged as level geometry.
func (s *Spawner) Spawn(grid *world.Grid, prev *world.DoorInfo, offset geom.Vec3) geom.Vec3 {
	span := float64(grid.Size()) * CellSize

	if prev != nil {
		dx, dy := prev.Side.Step()
		offset = offset.Add(geom.Vec3{X: dx * span, Y: dy * span})
	}

	grid.ForEachCell(func(row, col int, c world.Cell) {
		pos := cellToWorld(grid.Size(), row, col).Add(offset)
		switch c.Kind {
		case world.Empty:
		case world.Wall:
			s.spawnWall(pos)
		case world.DoorCell:
			h := s.Doors.SpawnDoor(c.Door, pos)
			s.Scene.Tag(h, TagLevelGeometry)
		case world.PickupSpawn:
			h := s.Pickups.SpawnPickup(pos)
			s.Scene.Tag(h, TagLevelGeometry)
		case world.HostileSpawn:
			h := s.Hostiles.SpawnHostile(pos)
			s.Scene.Tag(h, TagLevelGeometry)
		case world.PlayerSpawn:
			// The player is not level geometry: it walks between levels and
			// must survive teardown.
			s.Player.SpawnPlayer(pos)
		}
	})

	s.spawnFloor(offset)
	s.spawnLight(offset)

	return offset
}

// cellToWorld converts a grid coordinate to a world position centered under
// the level footprint. Row 0 is the +Y edge.
func cellToWorld(size, row, col int) geom.Vec3 {
	span := float64(size) * CellSize
	return geom.Vec3{
		X: -span/2 + CellSize*float64(col) + CellSize/2,
		Y: span/2 - CellSize*float64(row) - CellSize/2,
		Z: WallHeight / 2,
	}
}

func (s *Spawner) spawnWall(pos geom.Vec3) {
	h := s.Scene.Spawn(scene.KindWall, pos)
	s.Space.Add(&physics.Body{
		Owner:       uint64(h),
		Rect:        geom.RectAt(pos.X, pos.Y, CellSize/2, CellSize/2),
		Memberships: physics.GroupLevel,
		Filter:      physics.GroupPlayer | physics.GroupEnemy | physics.GroupProjectile,
	})
	s.Scene.Tag(h, TagLevelGeometry)
}

func (s *Spawner) spawnFloor(offset geom.Vec3) {
	// The floor sits under the whole footprint and never blocks ground
	// movement, so it gets no body.
	h := s.Scene.Spawn(scene.KindFloor, offset)
	s.Scene.Tag(h, TagLevelGeometry)
}

func (s *Spawner) spawnLight(offset geom.Vec3) {
	color := lightColors[s.Rng.Intn(len(lightColors))]
	rotX := randRange(s.Rng, math.Pi/8, 2/math.Pi)
	rotZ := randRange(s.Rng, math.Pi/8, 2/math.Pi)

	h := s.Scene.Spawn(scene.KindLight, offset.Add(geom.Vec3{Y: 2}))
	if e := s.Scene.Get(h); e != nil {
		e.Data = &Light{Color: color, RotX: -rotX, RotZ: -rotZ}
	}
	s.Scene.Tag(h, TagLevelGeometry)
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
