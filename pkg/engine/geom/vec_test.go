package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 0.5}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 1, Z: 3.5}) {
		t.Errorf("Add = %v, want {5 1 3.5}", got)
	}
	if got := a.Sub(b); got != (Vec3{X: -3, Y: 3, Z: 2.5}) {
		t.Errorf("Sub = %v, want {-3 3 2.5}", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %v, want {2 4 6}", got)
	}
	if got := a.Dot(b); !almostEqual(got, 3.5) {
		t.Errorf("Dot = %v, want 3.5", got)
	}
}

func TestVec3_CrossFollowsRightHandRule(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("X cross Y = %v, want Z", got)
	}
	// A wall normal crossed with Up gives the wall-parallel direction.
	n := Vec3{X: -1}
	if got := n.Cross(Up); got != (Vec3{Y: 1}) {
		t.Errorf("(-X) cross Up = %v, want +Y", got)
	}
}

func TestVec3_Normalized(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	n := v.Normalized()
	if !almostEqual(n.Len(), 1) {
		t.Errorf("Normalized length = %v, want 1", n.Len())
	}
	if !almostEqual(n.X, 0.6) || !almostEqual(n.Y, 0.8) {
		t.Errorf("Normalized = %v, want {0.6 0.8 0}", n)
	}

	if got := (Vec3{}).Normalized(); !got.IsZero() {
		t.Errorf("zero vector Normalized = %v, want zero", got)
	}
}

func TestRectAt_CenterAndExtents(t *testing.T) {
	r := RectAt(10, -5, 2, 3)
	if r.MinX != 8 || r.MaxX != 12 || r.MinY != -8 || r.MaxY != -2 {
		t.Errorf("RectAt = %+v, want {8 -8 12 -2}", r)
	}
	cx, cy := r.Center()
	if cx != 10 || cy != -5 {
		t.Errorf("Center = (%v, %v), want (10, -5)", cx, cy)
	}
}

func TestRect_ContainsIsStrict(t *testing.T) {
	r := RectAt(0, 0, 1, 1)
	if !r.Contains(0, 0) {
		t.Error("Contains(center) = false, want true")
	}
	// Points exactly on a face do not count as inside: a capsule touching a
	// wall is resting contact, not penetration.
	if r.Contains(1, 0) {
		t.Error("Contains(edge point) = true, want false")
	}
	if r.Contains(2, 0) {
		t.Error("Contains(outside point) = true, want false")
	}
}

func TestRect_ExpandAndOverlaps(t *testing.T) {
	a := RectAt(0, 0, 1, 1)
	b := RectAt(3, 0, 1, 1)
	if a.Overlaps(b) {
		t.Error("disjoint rects Overlaps = true, want false")
	}
	if !a.Expand(1.5).Overlaps(b) {
		t.Error("expanded rects Overlaps = false, want true")
	}
}
