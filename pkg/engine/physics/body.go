// Package physics provides the obstacle world the movement code queries:
// static and kinematic bodies with collision groups, plus swept-shape casts
// against them. Bodies live on the ground plane; a capsule with a vertical
// axis sweeps as a circle of its radius.
package physics

import "gridfall/pkg/engine/geom"

// Group is a collision group bit mask.
type Group uint32

// Collision groups.
const (
	GroupLevel Group = 1 << iota
	GroupPlayer
	GroupEnemy
	GroupProjectile
	GroupPickup
)

// Capsule is a vertical capsule shape: a segment along Z with a radius.
type Capsule struct {
	Radius float64
	Height float64
}

// Body is one collidable object. Owner is the scene handle of the entity the
// body belongs to, used for self-exclusion in query filters.
type Body struct {
	Owner uint64
	Rect  geom.Rect

	// Memberships is the group(s) this body belongs to; Filter is the set of
	// groups it collides with.
	Memberships Group
	Filter      Group

	// Sensor bodies report overlaps but never block movement.
	Sensor bool
	// Dynamic bodies are excluded from kinematic movement sweeps.
	Dynamic bool
}

// Filter restricts which bodies a query considers.
type Filter struct {
	// Groups is the membership+filter pair of the querying body.
	Memberships Group
	Collides    Group

	ExcludeSensors bool
	ExcludeDynamic bool

	// ExcludeOwner skips bodies belonging to this entity (self-exclusion).
	ExcludeOwner uint64
}

// matches reports whether a body passes the filter.
func (f Filter) matches(b *Body) bool {
	if b.Owner != 0 && b.Owner == f.ExcludeOwner {
		return false
	}
	if f.ExcludeSensors && b.Sensor {
		return false
	}
	if f.ExcludeDynamic && b.Dynamic {
		return false
	}
	// Both directions of the group pair must agree, as in the usual
	// membership/filter scheme.
	if f.Collides&b.Memberships == 0 {
		return false
	}
	if b.Filter&f.Memberships == 0 {
		return false
	}
	return true
}
