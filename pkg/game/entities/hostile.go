package entities

import (
	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/game/movement"
	"gridfall/pkg/game/scene"
)

const (
	hostileHealth  = 100
	hostileSpeed   = 8.0
	hostileRadius  = 2.0
	hostileHeight  = 7.0
	hostileContact = 3.5

	// hostileContactDamage is dealt per contact tick to the player.
	hostileContactDamage = 10
	hostileAttackPeriod  = 1.0
)

// Hostile is one enemy unit: a kinematic capsule that chases the player and
// deals contact damage.
type Hostile struct {
	Handle scene.Handle
	Health int

	attackTimer float64
}

// Alive reports whether the hostile still has health.
func (h *Hostile) Alive() bool {
	return h.Health > 0
}

// Hostiles owns all live hostiles. It implements level.HostileSubsystem.
type Hostiles struct {
	scene *scene.Scene
	space *physics.Space

	byHandle map[scene.Handle]*Hostile
}

// NewHostiles creates the hostile subsystem.
func NewHostiles(sc *scene.Scene, sp *physics.Space) *Hostiles {
	return &Hostiles{
		scene:    sc,
		space:    sp,
		byHandle: make(map[scene.Handle]*Hostile),
	}
}

// SpawnHostile creates one hostile at the given transform. Hostile bodies
// are dynamic with respect to movement sweeps: the player passes the enemy
// group, only level geometry blocks.
func (hs *Hostiles) SpawnHostile(pos geom.Vec3) scene.Handle {
	h := hs.scene.Spawn(scene.KindHostile, pos)
	unit := &Hostile{Handle: h, Health: hostileHealth}
	if e := hs.scene.Get(h); e != nil {
		e.Data = unit
	}
	hs.byHandle[h] = unit
	hs.space.Add(&physics.Body{
		Owner:       uint64(h),
		Rect:        geom.RectAt(pos.X, pos.Y, hostileRadius, hostileRadius),
		Memberships: physics.GroupEnemy,
		Filter:      physics.GroupLevel | physics.GroupProjectile,
		Dynamic:     true,
	})
	return h
}

// Count returns the number of live hostiles. The progression controller
// watches this to decide when a level is cleared.
func (hs *Hostiles) Count() int {
	return len(hs.byHandle)
}

// Update chases the player: each hostile's desired velocity points at the
// player and is resolved through the same sliding contact rules the player
// uses. Returns the contact damage dealt to the player this tick.
func (hs *Hostiles) Update(dt float64, playerPos geom.Vec3) int {
	damage := 0
	shape := physics.Capsule{Radius: hostileRadius, Height: hostileHeight}

	for h, unit := range hs.byHandle {
		e := hs.scene.Get(h)
		if e == nil {
			hs.space.Remove(uint64(h))
			delete(hs.byHandle, h)
			continue
		}

		toPlayer := playerPos.Sub(e.Pos)
		toPlayer.Z = 0

		unit.attackTimer -= dt
		if toPlayer.Len() <= hostileContact {
			if unit.attackTimer <= 0 {
				damage += hostileContactDamage
				unit.attackTimer = hostileAttackPeriod
			}
			continue
		}

		desired := toPlayer.Normalized().Scale(hostileSpeed)
		filter := physics.Filter{
			Memberships:    physics.GroupEnemy,
			Collides:       physics.GroupLevel,
			ExcludeSensors: true,
			ExcludeDynamic: true,
			ExcludeOwner:   uint64(h),
		}
		disp := movement.Resolve(e.Pos, desired, shape, hs.space, filter, dt)
		e.Pos = e.Pos.Add(disp)
		if b := hs.space.Body(uint64(h)); b != nil {
			b.Rect = geom.RectAt(e.Pos.X, e.Pos.Y, hostileRadius, hostileRadius)
		}
	}
	return damage
}

// Damage applies damage to a hostile; a hostile reduced to zero health is
// despawned immediately.
func (hs *Hostiles) Damage(h scene.Handle, amount int) {
	unit, ok := hs.byHandle[h]
	if !ok {
		return
	}
	unit.Health -= amount
	if unit.Health <= 0 {
		hs.space.Remove(uint64(h))
		hs.scene.Despawn(h)
		delete(hs.byHandle, h)
	}
}

// Each visits every live hostile with its scene entity.
func (hs *Hostiles) Each(fn func(unit *Hostile, e *scene.Entity)) {
	for h, unit := range hs.byHandle {
		if e := hs.scene.Get(h); e != nil {
			fn(unit, e)
		}
	}
}
