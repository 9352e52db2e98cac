package physics

import (
	"sort"

	"gridfall/pkg/engine/geom"
)

// Space holds all live bodies and answers spatial queries against them.
// A single writer (the spawner/teardown path) mutates it; queries run
// synchronously within the same tick.
type Space struct {
	bodies map[uint64]*Body
}

// NewSpace creates an empty space.
func NewSpace() *Space {
	return &Space{bodies: make(map[uint64]*Body)}
}

// Add registers a body under its owner handle. A second body for the same
// owner replaces the first.
func (s *Space) Add(b *Body) {
	s.bodies[b.Owner] = b
}

// Remove deletes the body owned by the given entity. Removing an owner with
// no body is a no-op: teardown racing with independent despawns is expected.
func (s *Space) Remove(owner uint64) {
	delete(s.bodies, owner)
}

// Body returns the body owned by the given entity, or nil.
func (s *Space) Body(owner uint64) *Body {
	return s.bodies[owner]
}

// Len returns the number of live bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

// each visits bodies in deterministic owner order so query results do not
// depend on map iteration.
func (s *Space) each(fn func(b *Body)) {
	owners := make([]uint64, 0, len(s.bodies))
	for o := range s.bodies {
		owners = append(owners, o)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	for _, o := range owners {
		fn(s.bodies[o])
	}
}

// Overlaps reports whether a circle of the given radius at pos overlaps any
// body passing the filter.
func (s *Space) Overlaps(pos geom.Vec3, radius float64, f Filter) bool {
	hit := false
	s.each(func(b *Body) {
		if hit || !f.matches(b) {
			return
		}
		if b.Rect.Expand(radius).Contains(pos.X, pos.Y) {
			hit = true
		}
	})
	return hit
}
