package scene

import (
	"testing"

	"gridfall/pkg/engine/geom"
)

func TestScene_SpawnAssignsUniqueHandles(t *testing.T) {
	s := New()
	a := s.Spawn(KindWall, geom.Vec3{X: 1})
	b := s.Spawn(KindWall, geom.Vec3{X: 2})

	if a == b {
		t.Fatalf("Spawn returned duplicate handle %d", a)
	}
	if a == 0 || b == 0 {
		t.Error("Spawn returned the zero handle")
	}
	if e := s.Get(a); e == nil || e.Pos.X != 1 {
		t.Errorf("Get(a) = %+v, want entity at X=1", e)
	}
}

func TestScene_DespawnRemovesEntityAndTags(t *testing.T) {
	s := New()
	h := s.Spawn(KindHostile, geom.Vec3{})
	s.Tag(h, "batch")

	s.Despawn(h)
	if s.Get(h) != nil {
		t.Error("Get after Despawn != nil")
	}
	if n := s.CountTagged("batch"); n != 0 {
		t.Errorf("CountTagged = %d after despawn, want 0", n)
	}

	s.Despawn(h) // no-op
}

func TestScene_TagDeadHandleIsNoOp(t *testing.T) {
	s := New()
	h := s.Spawn(KindWall, geom.Vec3{})
	s.Despawn(h)

	s.Tag(h, "batch")
	if n := s.CountTagged("batch"); n != 0 {
		t.Errorf("CountTagged = %d after tagging dead handle, want 0", n)
	}
}

func TestScene_TaggedIsSorted(t *testing.T) {
	s := New()
	var handles []Handle
	for i := 0; i < 5; i++ {
		h := s.Spawn(KindWall, geom.Vec3{})
		s.Tag(h, "batch")
		handles = append(handles, h)
	}

	got := s.Tagged("batch")
	if len(got) != 5 {
		t.Fatalf("Tagged returned %d handles, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("Tagged not sorted: %v", got)
		}
	}

	s.Untag(handles[0], "batch")
	if n := s.CountTagged("batch"); n != 4 {
		t.Errorf("CountTagged after Untag = %d, want 4", n)
	}
}

func TestScene_EachVisitsInHandleOrder(t *testing.T) {
	s := New()
	s.Spawn(KindWall, geom.Vec3{})
	s.Spawn(KindDoor, geom.Vec3{})
	s.Spawn(KindWall, geom.Vec3{})

	var last Handle
	s.Each(func(e *Entity) {
		if e.Handle <= last {
			t.Fatalf("Each out of order: %d after %d", e.Handle, last)
		}
		last = e.Handle
	})

	if n := s.CountKind(KindWall); n != 2 {
		t.Errorf("CountKind(KindWall) = %d, want 2", n)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}
