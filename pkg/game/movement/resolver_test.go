package movement

import (
	"math"
	"testing"

	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
)

var testShape = physics.Capsule{Radius: 1, Height: 2}

func testFilter() physics.Filter {
	return physics.Filter{
		Memberships: physics.GroupPlayer,
		Collides:    physics.GroupLevel,
	}
}

func addWall(s *physics.Space, owner uint64, cx, cy float64) {
	s.Add(&physics.Body{
		Owner:       owner,
		Rect:        geom.RectAt(cx, cy, 1, 1),
		Memberships: physics.GroupLevel,
		Filter:      physics.GroupPlayer | physics.GroupEnemy,
	})
}

func TestResolve_FreeMovementIsUnchanged(t *testing.T) {
	s := physics.NewSpace()
	got := Resolve(geom.Vec3{}, geom.Vec3{X: 30, Y: 40}, testShape, s, testFilter(), 0.1)
	want := geom.Vec3{X: 3, Y: 4}
	if got != want {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_ObliqueContactSlides(t *testing.T) {
	s := physics.NewSpace()
	addWall(s, 1, 6, 0) // expanded face at x=4

	got := Resolve(geom.Vec3{}, geom.Vec3{X: 100, Y: 50}, testShape, s, testFilter(), 0.1)

	// The X component dies against the wall; the Y component survives in
	// full as sliding.
	if got.X != 0 {
		t.Errorf("slide displacement X = %v, want 0", got.X)
	}
	if math.Abs(got.Y-5) > 1e-9 {
		t.Errorf("slide displacement Y = %v, want 5", got.Y)
	}
}

func TestResolve_HeadOnContactStops(t *testing.T) {
	s := physics.NewSpace()
	addWall(s, 1, 6, 0)

	got := Resolve(geom.Vec3{}, geom.Vec3{X: 10}, testShape, s, testFilter(), 1)
	if !got.IsZero() {
		t.Errorf("Resolve head-on = %v, want zero", got)
	}
}

func TestResolve_CornerStops(t *testing.T) {
	s := physics.NewSpace()
	addWall(s, 1, 6, 0) // blocks +X
	addWall(s, 2, 0, 8) // blocks the +Y slide

	got := Resolve(geom.Vec3{}, geom.Vec3{X: 10, Y: 10}, testShape, s, testFilter(), 1)
	if !got.IsZero() {
		t.Errorf("Resolve into corner = %v, want zero", got)
	}
}

func TestResolve_PenetratingStartStalls(t *testing.T) {
	s := physics.NewSpace()
	addWall(s, 1, 0.5, 0)

	got := Resolve(geom.Vec3{}, geom.Vec3{X: -10}, testShape, s, testFilter(), 1)
	if !got.IsZero() {
		t.Errorf("Resolve from inside geometry = %v, want zero", got)
	}
}

func TestResolve_ZeroVelocity(t *testing.T) {
	s := physics.NewSpace()
	addWall(s, 1, 6, 0)

	got := Resolve(geom.Vec3{}, geom.Vec3{}, testShape, s, testFilter(), 1)
	if !got.IsZero() {
		t.Errorf("Resolve with zero velocity = %v, want zero", got)
	}
}
