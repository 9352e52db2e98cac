package entities

import (
	"math"

	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/input"
	"gridfall/pkg/engine/physics"
	"gridfall/pkg/game/movement"
	"gridfall/pkg/game/scene"
)

// Player locomotion and combat constants.
const (
	PlayerHealth = 300

	playerAcceleration    = 50.0
	playerSlowDownRate    = 5.0
	playerMaxSpeedSquared = 40.0
	playerTurnRate        = 2.5

	PlayerCapsuleRadius = 1.0
	PlayerCapsuleHeight = 2.0

	playerAttackRange   = 60.0
	playerAttackHalfArc = math.Pi / 12
)

// Player is the player body: a kinematic capsule with velocity state, facing
// and an optional carried weapon.
type Player struct {
	Handle scene.Handle
	Vel    geom.Vec3
	Yaw    float64
	Health int

	Weapon      *WeaponKind
	Ammo        int
	attackTimer float64
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Facing returns the unit forward vector on the ground plane. Yaw zero faces
// +Y, matching the first level's inward direction from the top door.
func (p *Player) Facing() geom.Vec3 {
	return geom.Vec3{X: -math.Sin(p.Yaw), Y: math.Cos(p.Yaw)}
}

// ApplyInput integrates one tick of movement intent into the velocity:
// accelerate along the wish direction, bleed speed off when there is no
// input, and clamp to the maximum speed.
func (p *Player) ApplyInput(in input.Intent, dt float64) {
	p.Yaw += in.Turn * playerTurnRate * dt

	forward := p.Facing()
	right := geom.Vec3{X: forward.Y, Y: -forward.X}
	wish := forward.Scale(in.Forward).Add(right.Scale(in.Strafe))

	if wish.IsZero() {
		p.Vel = p.Vel.Sub(p.Vel.Scale(playerSlowDownRate * dt))
	} else {
		p.Vel = p.Vel.Add(wish.Normalized().Scale(playerAcceleration * dt))
	}

	if sq := p.Vel.LenSq(); sq > playerMaxSpeedSquared {
		p.Vel = p.Vel.Scale(math.Sqrt(playerMaxSpeedSquared / sq))
	}
}

// PickUp equips a collected weapon.
func (p *Player) PickUp(kind WeaponKind) {
	p.Weapon = &kind
	p.Ammo = kind.Stats().Ammo
}

// Players owns the (single) player entity. It implements
// level.PlayerSubsystem.
type Players struct {
	scene *scene.Scene
	space *physics.Space

	active *Player
}

// NewPlayers creates the player subsystem.
func NewPlayers(sc *scene.Scene, sp *physics.Space) *Players {
	return &Players{scene: sc, space: sp}
}

// SpawnPlayer creates the player body at the given transform. Spawning a
// second player replaces the first; real runs only ever spawn one.
func (ps *Players) SpawnPlayer(pos geom.Vec3) scene.Handle {
	pos.Z -= 0.5
	h := ps.scene.Spawn(scene.KindPlayer, pos)
	p := &Player{Handle: h, Health: PlayerHealth}
	if e := ps.scene.Get(h); e != nil {
		e.Data = p
	}
	ps.active = p
	ps.space.Add(&physics.Body{
		Owner:       uint64(h),
		Rect:        geom.RectAt(pos.X, pos.Y, PlayerCapsuleRadius, PlayerCapsuleRadius),
		Memberships: physics.GroupPlayer,
		Filter:      physics.GroupLevel | physics.GroupProjectile | physics.GroupPickup,
		Dynamic:     true,
	})
	return h
}

// Active returns the live player, or nil when none has been spawned. Absence
// is a normal "not currently applicable" condition, not a fault.
func (ps *Players) Active() *Player {
	return ps.active
}

// Move resolves the player's velocity against the obstacle world and commits
// the resulting displacement.
func (ps *Players) Move(dt float64) {
	p := ps.active
	if p == nil {
		return
	}
	e := ps.scene.Get(p.Handle)
	if e == nil {
		return
	}

	shape := physics.Capsule{Radius: PlayerCapsuleRadius, Height: PlayerCapsuleHeight}
	filter := physics.Filter{
		Memberships:    physics.GroupPlayer,
		Collides:       physics.GroupLevel,
		ExcludeSensors: true,
		ExcludeDynamic: true,
		ExcludeOwner:   uint64(p.Handle),
	}
	disp := movement.Resolve(e.Pos, p.Vel, shape, ps.space, filter, dt)
	e.Pos = e.Pos.Add(disp)
	if b := ps.space.Body(uint64(p.Handle)); b != nil {
		b.Rect = geom.RectAt(e.Pos.X, e.Pos.Y, PlayerCapsuleRadius, PlayerCapsuleRadius)
	}
}

// Pos returns the player's world position, or the zero vector when absent.
func (ps *Players) Pos() geom.Vec3 {
	if ps.active == nil {
		return geom.Vec3{}
	}
	if e := ps.scene.Get(ps.active.Handle); e != nil {
		return e.Pos
	}
	return geom.Vec3{}
}

// Attack fires the carried weapon if its cooldown allows, returning the
// handle of the hostile hit by the hitscan, if any. The scan picks the
// nearest hostile within range inside a narrow arc around the facing
// direction.
func (ps *Players) Attack(hostiles *Hostiles, dt float64) (scene.Handle, int, bool) {
	p := ps.active
	if p == nil || p.Weapon == nil {
		return 0, 0, false
	}
	p.attackTimer -= dt
	if p.attackTimer > 0 || p.Ammo <= 0 {
		return 0, 0, false
	}

	origin := ps.Pos()
	facing := p.Facing()

	var bestHandle scene.Handle
	bestDist := playerAttackRange
	hostiles.Each(func(unit *Hostile, e *scene.Entity) {
		to := e.Pos.Sub(origin)
		to.Z = 0
		dist := to.Len()
		if dist == 0 || dist > bestDist {
			return
		}
		if math.Acos(clamp(to.Normalized().Dot(facing), -1, 1)) > playerAttackHalfArc {
			return
		}
		bestDist = dist
		bestHandle = unit.Handle
	})

	stats := p.Weapon.Stats()
	p.attackTimer = stats.AttackPeriod
	p.Ammo--
	if bestHandle == 0 {
		return 0, 0, false
	}
	return bestHandle, stats.Damage, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
