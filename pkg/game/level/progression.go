package level

import (
	"math/rand"

	"gridfall/pkg/engine/event"
	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/generator"
	"gridfall/pkg/game/scene"
)

// State is the progression state for the running session: where the current
// level sits in world space, whether it has been cleared, and which entity
// handles from the previous level are still waiting for teardown. A single
// instance lives for the session and is owned exclusively by the Controller.
type State struct {
	Offset  geom.Vec3
	Cleared bool

	// pendingRemoval holds the previous level's geometry. It is filled
	// atomically on a level switch and emptied atomically when the
	// transition door finishes closing; it is never partially processed.
	pendingRemoval []scene.Handle
}

// Controller drives level progression. It reacts to three signals: the
// hostile count reaching zero (level cleared), the player exiting through a
// door (level switch), and a door-close animation finishing (teardown of the
// previous level).
type Controller struct {
	state   State
	spawner *Spawner
	scene   *scene.Scene
	space   *physics.Space
	events  *event.Queue
	cfg     generator.Config
	rng     *rand.Rand

	grid *world.Grid
}

// NewController creates a controller. The spawner's scene, space and rng are
// shared with the controller.
func NewController(spawner *Spawner, sc *scene.Scene, sp *physics.Space, events *event.Queue, cfg generator.Config, rng *rand.Rand) *Controller {
	return &Controller{
		spawner: spawner,
		scene:   sc,
		space:   sp,
		events:  events,
		cfg:     cfg,
		rng:     rng,
	}
}

// Offset returns the current level's world offset.
func (c *Controller) Offset() geom.Vec3 {
	return c.state.Offset
}

// Cleared reports whether the current level has been cleared.
func (c *Controller) Cleared() bool {
	return c.state.Cleared
}

// Grid returns the current level's layout.
func (c *Controller) Grid() *world.Grid {
	return c.grid
}

// PendingRemoval returns the number of entities still awaiting teardown.
func (c *Controller) PendingRemoval() int {
	return len(c.state.pendingRemoval)
}

// SpawnInitial generates and spawns the first level of a run at the origin.
func (c *Controller) SpawnInitial(tutorial bool) {
	c.grid = generator.Generate(c.cfg, nil, tutorial, c.rng)
	c.state.Offset = c.spawner.Spawn(c.grid, nil, geom.Vec3{})
	c.state.Cleared = false
}

// UpdateProgress observes the live hostile count. The first time it reaches
// zero for a level, the level is marked cleared and a level-finished event is
// emitted (exactly once per level).
func (c *Controller) UpdateProgress(hostiles int) {
	if hostiles == 0 && !c.state.Cleared {
		c.state.Cleared = true
		c.events.Push(event.LevelFinished, nil)
	}
}

// SwitchLevel generates and spawns the next level behind the given exit
// door. The current level's geometry is snapshotted for deferred removal,
// not deleted: it stays visible and collidable until the transition door has
// finished closing behind the player.
//
// Switches must not overlap: calling SwitchLevel again before the previous
// teardown ran would leak the older batch. The caller guarantees spacing.
func (c *Controller) SwitchLevel(exit world.DoorInfo) {
	old := c.scene.Tagged(TagLevelGeometry)
	for _, h := range old {
		c.scene.Untag(h, TagLevelGeometry)
	}
	c.state.pendingRemoval = old

	c.grid = generator.Generate(c.cfg, &exit, false, c.rng)
	c.state.Offset = c.spawner.Spawn(c.grid, &exit, c.state.Offset)
	c.state.Cleared = false
}

// HandleDoorAnimation reacts to a door animation finishing. A Close finish
// tears down the pending batch; an Open finish does nothing, since teardown
// may only follow the player having fully left the old level.
func (c *Controller) HandleDoorAnimation(kind world.AnimationKind) {
	if kind != world.AnimationClose {
		return
	}
	for _, h := range c.state.pendingRemoval {
		// A handle may already be gone (independent despawn); removal is a
		// silent no-op then.
		c.space.Remove(uint64(h))
		c.scene.Despawn(h)
	}
	c.state.pendingRemoval = nil
}
