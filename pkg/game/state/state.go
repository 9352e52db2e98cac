// Package state composes the running session: scene, physics space, event
// queue, subsystems and the progression controller, plus the per-tick update
// that connects them.
package state

import (
	"math/rand"

	"gridfall/pkg/engine/event"
	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/input"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/engine/world"
	"gridfall/pkg/game/entities"
	"gridfall/pkg/game/generator"
	"gridfall/pkg/game/level"
	"gridfall/pkg/game/scene"
)

// maxMessages caps the message backlog shown to the player.
const maxMessages = 5

// Game is the session state. One instance lives from run start to run end;
// all mutation happens on the single simulation goroutine.
type Game struct {
	Scene  *scene.Scene
	Space  *physics.Space
	Events *event.Queue

	Doors    *entities.Doors
	Pickups  *entities.Pickups
	Hostiles *entities.Hostiles
	Players  *entities.Players

	Controller *level.Controller

	Messages []string
	Level    int
	GameOver bool

	rng *rand.Rand
}

// NewGame builds a session and spawns the first level. When tutorial is set
// the first level is the constrained tutorial pen instead of a full layout.
func NewGame(seed int64, tutorial bool) *Game {
	rng := rand.New(rand.NewSource(seed))

	sc := scene.New()
	sp := physics.NewSpace()
	events := event.NewQueue()

	g := &Game{
		Scene:    sc,
		Space:    sp,
		Events:   events,
		Doors:    entities.NewDoors(sc, sp, events),
		Pickups:  entities.NewPickups(sc, sp),
		Hostiles: entities.NewHostiles(sc, sp),
		Players:  entities.NewPlayers(sc, sp),
		Level:    1,
		rng:      rng,
	}

	spawner := &level.Spawner{
		Scene:    sc,
		Space:    sp,
		Doors:    g.Doors,
		Pickups:  g.Pickups,
		Hostiles: g.Hostiles,
		Player:   g.Players,
		Rng:      rng,
	}
	g.Controller = level.NewController(spawner, sc, sp, events, generator.DefaultConfig(), rng)
	g.Controller.SpawnInitial(tutorial)

	return g
}

// AddMessage appends a message to the player-facing log, dropping the oldest
// beyond the cap.
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// Tick advances the simulation by dt seconds. Order within a tick: player
// input and movement, combat, hostiles, doors, progression signals, then the
// event dispatch that may tear down the previous level.
func (g *Game) Tick(in input.Intent, dt float64) {
	if g.GameOver {
		return
	}

	if p := g.Players.Active(); p != nil {
		p.ApplyInput(in, dt)
		g.Players.Move(dt)

		if pick := g.Pickups.CollectAt(g.Players.Pos(), entities.PlayerCapsuleRadius); pick != nil {
			p.PickUp(pick.Kind)
		}

		if h, dmg, ok := g.Players.Attack(g.Hostiles, dt); ok {
			g.Hostiles.Damage(h, dmg)
		}

		if dmg := g.Hostiles.Update(dt, g.Players.Pos()); dmg > 0 {
			p.Health -= dmg
			if !p.Alive() {
				g.GameOver = true
			}
		}
	} else {
		g.Hostiles.Update(dt, geom.Vec3{})
	}

	g.Pickups.Update(dt)
	g.autoOpenDoors()
	g.Doors.Update(dt)
	g.Controller.UpdateProgress(g.Hostiles.Count())

	g.checkDoorCrossing()
	g.dispatchEvents()
}

// autoOpenDoors starts the open animation on unlocked doors the player walks
// up to.
func (g *Game) autoOpenDoors() {
	if g.Players.Active() == nil {
		return
	}
	pos := g.Players.Pos()
	g.Doors.Each(func(door *entities.Door) {
		if door.State() != world.DoorClosed {
			return
		}
		dx, dy := pos.X-door.Pos.X, pos.Y-door.Pos.Y
		reach := 2 * level.CellSize
		if dx*dx+dy*dy <= reach*reach {
			door.RequestOpen()
		}
	})
}

// checkDoorCrossing watches for the player walking out through a passable
// door and raises the level switch. Switches are suppressed while a previous
// teardown is still pending, so batches never overlap.
func (g *Game) checkDoorCrossing() {
	p := g.Players.Active()
	if p == nil || g.Controller.PendingRemoval() > 0 {
		return
	}
	pos := g.Players.Pos()

	g.Doors.Each(func(door *entities.Door) {
		if !door.IsPassable() || door.State() == world.DoorTemporaryOpen {
			return
		}
		dx, dy := pos.X-door.Pos.X, pos.Y-door.Pos.Y
		if dx*dx+dy*dy > (level.CellSize/2)*(level.CellSize/2) {
			return
		}
		// Crossing the border plane outward counts as leaving.
		sx, sy := door.Info.Side.Step()
		out := dx*sx + dy*sy
		if out < 0 {
			return
		}
		g.Events.Push(event.LevelSwitch, door.Info)
	})
}

// dispatchEvents drains this tick's events and routes them: door animations
// to the progression controller, level completion to door unlocking and the
// message log, level switches to the controller.
func (g *Game) dispatchEvents() {
	for _, ev := range g.Events.Drain() {
		switch ev.Type {
		case event.DoorAnimationFinished:
			if kind, ok := ev.Payload.(world.AnimationKind); ok {
				g.Controller.HandleDoorAnimation(kind)
			}
		case event.LevelFinished:
			g.Doors.UnlockAll()
			g.AddMessage("Level cleared. The exit doors are unlocked.")
		case event.LevelSwitch:
			if exit, ok := ev.Payload.(world.DoorInfo); ok {
				g.Controller.SwitchLevel(exit)
				g.Level++
			}
		}
	}
}
