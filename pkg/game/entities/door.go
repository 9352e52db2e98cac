// Package entities implements the subsystems the level spawner delegates to:
// doors with their open/close state machine, floating weapon pickups,
// hostile units and the player body.
package entities

import (
	"gridfall/pkg/engine/event"
	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/level"
	"gridfall/pkg/game/scene"
)

const (
	// DoorAnimationDuration is the open/close animation time in seconds.
	DoorAnimationDuration = 1.0
	// doorCloseGrace is how long a temporary-open door stays open before
	// closing behind the player.
	doorCloseGrace = 1.5
)

// Door is one spawned level door. Its state machine runs the open and close
// animations and reports their completion on the event queue; the
// progression controller keys previous-level teardown off the close event.
type Door struct {
	Info   world.DoorInfo
	Handle scene.Handle
	Pos    geom.Vec3

	// Openness runs from 0 (shut) to 1 (fully open).
	Openness float64

	closeTimer     float64
	lockAfterClose bool
}

// State returns the door's current lifecycle state.
func (d *Door) State() world.DoorState {
	return d.Info.State
}

// IsPassable reports whether the player can walk through.
func (d *Door) IsPassable() bool {
	return d.Info.State == world.DoorOpen || d.Info.State == world.DoorTemporaryOpen
}

// Unlock moves a locked door to closed-but-openable. Any other state is left
// alone.
func (d *Door) Unlock() {
	if d.Info.State == world.DoorLocked {
		d.Info.State = world.DoorClosed
	}
}

// RequestOpen starts the open animation on an unlocked, shut door.
func (d *Door) RequestOpen() {
	if d.Info.State == world.DoorClosed {
		d.Info.State = world.DoorOpening
	}
}

// RequestClose starts the close animation on an open door.
func (d *Door) RequestClose() {
	switch d.Info.State {
	case world.DoorOpen:
		d.Info.State = world.DoorClosing
	case world.DoorTemporaryOpen:
		d.Info.State = world.DoorClosing
		d.lockAfterClose = true
	}
}

// update advances the animation. Completions are pushed onto the queue.
func (d *Door) update(dt float64, q *event.Queue) {
	switch d.Info.State {
	case world.DoorTemporaryOpen:
		d.Openness = 1
		d.closeTimer += dt
		if d.closeTimer >= doorCloseGrace {
			// The player has had time to walk in; close behind them and
			// lock until the level is cleared.
			d.Info.State = world.DoorClosing
			d.lockAfterClose = true
		}
	case world.DoorOpening:
		d.Openness += dt / DoorAnimationDuration
		if d.Openness >= 1 {
			d.Openness = 1
			d.Info.State = world.DoorOpen
			q.Push(event.DoorAnimationFinished, world.AnimationOpen)
		}
	case world.DoorClosing:
		d.Openness -= dt / DoorAnimationDuration
		if d.Openness <= 0 {
			d.Openness = 0
			if d.lockAfterClose {
				d.Info.State = world.DoorLocked
				d.lockAfterClose = false
			} else {
				d.Info.State = world.DoorClosed
			}
			q.Push(event.DoorAnimationFinished, world.AnimationClose)
		}
	case world.DoorLocked, world.DoorClosed, world.DoorOpen:
	}
}

// Doors owns all live door entities. It implements level.DoorSubsystem.
type Doors struct {
	scene  *scene.Scene
	space  *physics.Space
	events *event.Queue

	byHandle map[scene.Handle]*Door
}

// NewDoors creates the door subsystem.
func NewDoors(sc *scene.Scene, sp *physics.Space, events *event.Queue) *Doors {
	return &Doors{
		scene:    sc,
		space:    sp,
		events:   events,
		byHandle: make(map[scene.Handle]*Door),
	}
}

// SpawnDoor creates a door entity at the given world transform. A door that
// is not passable carries a level-group body so it blocks movement like the
// wall segment it replaces.
func (d *Doors) SpawnDoor(info world.DoorInfo, pos geom.Vec3) scene.Handle {
	h := d.scene.Spawn(scene.KindDoor, pos)
	door := &Door{Info: info, Handle: h, Pos: pos}
	if info.State == world.DoorTemporaryOpen {
		door.Openness = 1
	}
	if e := d.scene.Get(h); e != nil {
		e.Data = door
	}
	d.byHandle[h] = door
	d.syncBody(door)
	return h
}

// Update advances every door's animation and keeps their bodies in sync with
// passability. Doors whose scene entity is gone (level teardown) are dropped.
func (d *Doors) Update(dt float64) {
	for h, door := range d.byHandle {
		if d.scene.Get(h) == nil {
			d.space.Remove(uint64(h))
			delete(d.byHandle, h)
			continue
		}
		was := door.IsPassable()
		door.update(dt, d.events)
		if door.IsPassable() != was {
			d.syncBody(door)
		}
	}
}

// UnlockAll unlocks every locked door; called when the level is cleared.
func (d *Doors) UnlockAll() {
	for _, door := range d.byHandle {
		door.Unlock()
	}
}

// Each visits every live door.
func (d *Doors) Each(fn func(door *Door)) {
	for _, door := range d.byHandle {
		fn(door)
	}
}

// syncBody adds or removes the blocking body to match passability.
func (d *Doors) syncBody(door *Door) {
	if door.IsPassable() {
		d.space.Remove(uint64(door.Handle))
		return
	}

	halfW, halfH := level.CellSize/2, level.DoorThickness/2
	switch door.Info.Side {
	case world.Left, world.Right:
		halfW, halfH = halfH, halfW
	case world.Top, world.Bottom:
	}
	d.space.Add(&physics.Body{
		Owner:       uint64(door.Handle),
		Rect:        geom.RectAt(door.Pos.X, door.Pos.Y, halfW, halfH),
		Memberships: physics.GroupLevel,
		Filter:      physics.GroupPlayer | physics.GroupEnemy | physics.GroupProjectile,
	})
}
