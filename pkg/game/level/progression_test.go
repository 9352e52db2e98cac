package level

import (
	"math/rand"
	"testing"

	"gridfall/pkg/engine/event"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/generator"
	"gridfall/pkg/game/scene"
)

func testController() (*Controller, *scene.Scene, *physics.Space, *event.Queue) {
	sc := scene.New()
	sp := physics.NewSpace()
	events := event.NewQueue()
	s, _, _, _, _ := testSpawner(sc, sp)
	cfg := generator.Config{
		GridSize:     8,
		FillAmount:   0,
		StripLength:  3,
		WeaponSpawns: 1,
		Hostiles:     1,
	}
	c := NewController(s, sc, sp, events, cfg, rand.New(rand.NewSource(1)))
	return c, sc, sp, events
}

func TestController_SpawnInitial(t *testing.T) {
	c, sc, _, _ := testController()
	c.SpawnInitial(false)

	if c.Grid() == nil {
		t.Fatal("Grid = nil after SpawnInitial")
	}
	if !c.Offset().IsZero() {
		t.Errorf("Offset = %v, want origin", c.Offset())
	}
	if c.Cleared() {
		t.Error("Cleared = true on a fresh level")
	}
	if sc.Len() == 0 {
		t.Error("no entities spawned")
	}
}

func TestController_LevelFinishedFiresExactlyOnce(t *testing.T) {
	c, _, _, events := testController()
	c.SpawnInitial(false)

	c.UpdateProgress(2)
	if events.Len() != 0 {
		t.Fatalf("events = %d with hostiles alive, want 0", events.Len())
	}

	c.UpdateProgress(0)
	if !c.Cleared() {
		t.Error("Cleared = false after hostile count reached zero")
	}
	got := events.Drain()
	if len(got) != 1 || got[0].Type != event.LevelFinished {
		t.Fatalf("events = %v, want one LevelFinished", got)
	}

	// Staying at zero must not re-fire.
	c.UpdateProgress(0)
	if events.Len() != 0 {
		t.Errorf("events = %d on repeat zero, want 0", events.Len())
	}
}

func TestController_SwitchLevelDefersTeardown(t *testing.T) {
	c, sc, sp, _ := testController()
	c.SpawnInitial(false)

	oldTagged := sc.Tagged(TagLevelGeometry)
	oldCount := len(oldTagged)
	oldEntities := sc.Len()
	oldBodies := sp.Len()

	exit := world.DoorInfo{Side: world.Bottom, State: world.DoorOpen, Pos: 3}
	c.SwitchLevel(exit)

	// Both levels coexist until the transition door closes.
	if c.PendingRemoval() != oldCount {
		t.Errorf("PendingRemoval = %d, want %d (the whole old batch)", c.PendingRemoval(), oldCount)
	}
	if sc.Len() <= oldEntities {
		t.Errorf("entities = %d after switch, want more than %d", sc.Len(), oldEntities)
	}
	if sp.Len() <= oldBodies {
		t.Errorf("bodies = %d after switch, want more than %d", sp.Len(), oldBodies)
	}
	if c.Cleared() {
		t.Error("Cleared = true on the fresh level")
	}

	// The tag now covers only the new level.
	old := make(map[scene.Handle]bool, len(oldTagged))
	for _, h := range oldTagged {
		old[h] = true
	}
	for _, h := range sc.Tagged(TagLevelGeometry) {
		if old[h] {
			t.Errorf("old handle %d still tagged after switch", h)
		}
	}
}

func TestController_TeardownRunsOnlyOnCloseFinish(t *testing.T) {
	c, sc, sp, _ := testController()
	c.SpawnInitial(false)

	exit := world.DoorInfo{Side: world.Right, State: world.DoorOpen, Pos: 3}
	c.SwitchLevel(exit)

	pending := c.PendingRemoval()
	bothLevels := sc.Len()

	// An open-animation finish must not tear anything down.
	c.HandleDoorAnimation(world.AnimationOpen)
	if c.PendingRemoval() != pending {
		t.Errorf("PendingRemoval = %d after Open finish, want %d", c.PendingRemoval(), pending)
	}
	if sc.Len() != bothLevels {
		t.Errorf("entities = %d after Open finish, want %d", sc.Len(), bothLevels)
	}

	c.HandleDoorAnimation(world.AnimationClose)
	if c.PendingRemoval() != 0 {
		t.Errorf("PendingRemoval = %d after Close finish, want 0", c.PendingRemoval())
	}
	if sc.Len() != bothLevels-pending {
		t.Errorf("entities = %d after teardown, want %d", sc.Len(), bothLevels-pending)
	}
	// Wall bodies of the old level are gone with their entities.
	if got, want := sp.Len(), sc.CountKind(scene.KindWall); got != want {
		t.Errorf("bodies = %d after teardown, want %d", got, want)
	}
}

func TestController_SwitchOffsetsConsecutiveLevels(t *testing.T) {
	c, _, _, _ := testController()
	c.SpawnInitial(false)

	c.SwitchLevel(world.DoorInfo{Side: world.Top, State: world.DoorOpen, Pos: 3})
	span := float64(c.Grid().Size()) * CellSize
	if off := c.Offset(); off.X != 0 || off.Y != span {
		t.Errorf("Offset after Top exit = %v, want (0, %v)", off, span)
	}

	c.SwitchLevel(world.DoorInfo{Side: world.Left, State: world.DoorOpen, Pos: 3})
	if off := c.Offset(); off.X != -span || off.Y != span {
		t.Errorf("Offset after Left exit = %v, want (%v, %v)", off, -span, span)
	}
}
