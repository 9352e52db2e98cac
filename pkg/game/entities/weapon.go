package entities

import (
	"math"

	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/game/scene"
)

// WeaponKind identifies a weapon.
type WeaponKind int

// Weapons.
const (
	Pistol WeaponKind = iota
	Shotgun
	Minigun
)

// String returns the weapon's display name.
func (k WeaponKind) String() string {
	switch k {
	case Pistol:
		return "Pistol"
	case Shotgun:
		return "Shotgun"
	case Minigun:
		return "Minigun"
	default:
		return "Unknown"
	}
}

// WeaponStats is the static stat block for one weapon kind.
type WeaponStats struct {
	Ammo            int
	Damage          int
	AttackPeriod    float64
	ProjectileSpeed float64
}

var weaponStats = map[WeaponKind]WeaponStats{
	Pistol:  {Ammo: 20, Damage: 10, AttackPeriod: 1.0 / 4.0, ProjectileSpeed: 500},
	Shotgun: {Ammo: 10, Damage: 5, AttackPeriod: 1.0 / 1.2, ProjectileSpeed: 500},
	Minigun: {Ammo: 50, Damage: 10, AttackPeriod: 1.0 / 8.0, ProjectileSpeed: 500},
}

// Stats returns the stat block for the weapon kind.
func (k WeaponKind) Stats() WeaponStats {
	return weaponStats[k]
}

const (
	pickupRadius       = 1.5
	pickupBobSpeed     = 2.0
	pickupBobAmplitude = 0.3
)

// Pickup is a floating weapon waiting to be collected.
type Pickup struct {
	Handle scene.Handle
	Kind   WeaponKind

	baseZ    float64
	bobPhase float64
}

// Pickups owns the live weapon pickups. It implements level.PickupSubsystem.
type Pickups struct {
	scene *scene.Scene
	space *physics.Space

	byHandle map[scene.Handle]*Pickup
}

// NewPickups creates the pickup subsystem.
func NewPickups(sc *scene.Scene, sp *physics.Space) *Pickups {
	return &Pickups{
		scene:    sc,
		space:    sp,
		byHandle: make(map[scene.Handle]*Pickup),
	}
}

// SpawnPickup creates a floating pistol at the given transform. The body is
// a sensor: the player can overlap it but it never blocks movement.
func (p *Pickups) SpawnPickup(pos geom.Vec3) scene.Handle {
	h := p.scene.Spawn(scene.KindPickup, pos)
	pick := &Pickup{Handle: h, Kind: Pistol, baseZ: pos.Z}
	if e := p.scene.Get(h); e != nil {
		e.Data = pick
	}
	p.byHandle[h] = pick
	p.space.Add(&physics.Body{
		Owner:       uint64(h),
		Rect:        geom.RectAt(pos.X, pos.Y, pickupRadius, pickupRadius),
		Memberships: physics.GroupPickup,
		Filter:      physics.GroupPlayer,
		Sensor:      true,
	})
	return h
}

// Update advances the floating bob animation and drops pickups whose scene
// entity is gone.
func (p *Pickups) Update(dt float64) {
	for h, pick := range p.byHandle {
		e := p.scene.Get(h)
		if e == nil {
			p.space.Remove(uint64(h))
			delete(p.byHandle, h)
			continue
		}
		pick.bobPhase += dt * pickupBobSpeed
		e.Pos.Z = pick.baseZ + math.Sin(pick.bobPhase)*pickupBobAmplitude
	}
}

// CollectAt removes and returns the first pickup overlapping a circle at
// pos, or nil if none does.
func (p *Pickups) CollectAt(pos geom.Vec3, radius float64) *Pickup {
	for h, pick := range p.byHandle {
		e := p.scene.Get(h)
		if e == nil {
			continue
		}
		dx, dy := e.Pos.X-pos.X, e.Pos.Y-pos.Y
		reach := radius + pickupRadius
		if dx*dx+dy*dy <= reach*reach {
			p.space.Remove(uint64(h))
			p.scene.Despawn(h)
			delete(p.byHandle, h)
			return pick
		}
	}
	return nil
}

// Count returns the number of live pickups.
func (p *Pickups) Count() int {
	return len(p.byHandle)
}
