package physics

import (
	"math"

	"gridfall/pkg/engine/geom"
)

// HitStatus classifies the result of a swept-shape cast.
type HitStatus int

// Cast outcomes.
const (
	// HitNone: the swept shape crosses no obstacle within the sweep bound.
	HitNone HitStatus = iota
	// HitConverged: the sweep found a first time of impact and a contact
	// normal.
	HitConverged
	// HitPenetrating: the shape already overlaps an obstacle at the start
	// position.
	HitPenetrating
)

// Hit is the result of a swept cast. TOI is expressed in multiples of the
// displacement vector: a TOI of 1 means contact exactly at the end of the
// displacement. Normal is the obstacle surface normal at the contact,
// pointing back toward the moving shape.
type Hit struct {
	Status HitStatus
	Normal geom.Vec3
	TOI    float64
}

// CastCapsule sweeps a vertical capsule from pos through delta, scanning up
// to maxTOI displacement-multiples ahead, and returns the earliest contact
// among bodies passing the filter. The vertical axis never tilts, so on the
// ground plane the capsule sweeps as a circle of its radius.
func (s *Space) CastCapsule(pos geom.Vec3, shape Capsule, delta geom.Vec3, maxTOI float64, f Filter) Hit {
	if s.Overlaps(pos, shape.Radius, f) {
		return Hit{Status: HitPenetrating}
	}

	best := Hit{Status: HitNone}
	s.each(func(b *Body) {
		if !f.matches(b) {
			return
		}
		// Minkowski sum: sweeping a circle against a rectangle is a ray
		// against the rectangle expanded by the radius.
		h, ok := rayRect(pos.X, pos.Y, delta.X, delta.Y, b.Rect.Expand(shape.Radius), maxTOI)
		if !ok {
			return
		}
		if best.Status == HitNone || h.TOI < best.TOI {
			best = h
		}
	})
	return best
}

// rayRect intersects the ray o + t*d, t in [0, maxT], with an axis-aligned
// rectangle using the slab method. The returned normal is axis-aligned on
// the entry face. The caller guarantees the origin is not strictly inside
// the rectangle; an origin exactly on a face counts as a contact at t=0
// only when d points into the face.
func rayRect(ox, oy, dx, dy float64, r geom.Rect, maxT float64) (Hit, bool) {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	normal := geom.Vec3{}

	// X slab
	if dx == 0 {
		if ox <= r.MinX || ox >= r.MaxX {
			return Hit{}, false
		}
	} else {
		t1 := (r.MinX - ox) / dx
		t2 := (r.MaxX - ox) / dx
		n := geom.Vec3{X: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = geom.Vec3{X: 1}
		}
		if t1 > tEnter {
			tEnter = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
	}

	// Y slab
	if dy == 0 {
		if oy <= r.MinY || oy >= r.MaxY {
			return Hit{}, false
		}
	} else {
		t1 := (r.MinY - oy) / dy
		t2 := (r.MaxY - oy) / dy
		n := geom.Vec3{Y: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = geom.Vec3{Y: 1}
		}
		if t1 > tEnter {
			tEnter = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
	}

	if normal.IsZero() {
		// Zero displacement on both axes.
		return Hit{}, false
	}
	// tExit must be strictly positive: an origin grazing a face while moving
	// away is not a contact.
	if tEnter > tExit || tExit <= 0 || tEnter > maxT {
		return Hit{}, false
	}
	if tEnter < 0 {
		tEnter = 0
	}
	return Hit{Status: HitConverged, Normal: normal, TOI: tEnter}, true
}
