package world

import "testing"

// borderedGrid builds a grid with a walled border and one door per side, the
// shape the generator guarantees.
func borderedGrid(size int) *Grid {
	g := NewGrid(size)
	for i := 0; i < size; i++ {
		g.SetKind(0, i, Wall)
		g.SetKind(size-1, i, Wall)
		g.SetKind(i, 0, Wall)
		g.SetKind(i, size-1, Wall)
	}
	for _, side := range AllSides() {
		g.SetDoor(DoorInfo{Side: side, State: DoorLocked, Pos: 3})
	}
	return g
}

func TestGrid_AtOutOfBoundsReturnsEmpty(t *testing.T) {
	g := NewGrid(8)
	if got := g.KindAt(-1, 0); got != Empty {
		t.Errorf("KindAt(-1, 0) = %v, want Empty", got)
	}
	if got := g.KindAt(0, 8); got != Empty {
		t.Errorf("KindAt(0, 8) = %v, want Empty", got)
	}
}

func TestGrid_SetOutOfBoundsIsIgnored(t *testing.T) {
	g := NewGrid(8)
	g.SetKind(8, 8, Wall) // must not panic
	if got := g.CountKind(Wall); got != 0 {
		t.Errorf("CountKind(Wall) = %d after out-of-bounds write, want 0", got)
	}
}

func TestGrid_DoorPositionPerSide(t *testing.T) {
	g := NewGrid(10)
	tests := []struct {
		side     Side
		pos      int
		row, col int
	}{
		{Top, 4, 0, 4},
		{Bottom, 4, 9, 4},
		{Left, 4, 4, 0},
		{Right, 4, 4, 9},
	}
	for _, tc := range tests {
		row, col := g.DoorPosition(DoorInfo{Side: tc.side, Pos: tc.pos})
		if row != tc.row || col != tc.col {
			t.Errorf("DoorPosition(%v, %d) = (%d, %d), want (%d, %d)",
				tc.side, tc.pos, row, col, tc.row, tc.col)
		}
	}
}

func TestGrid_DoorOnFindsStampedDoor(t *testing.T) {
	g := borderedGrid(10)
	info, ok := g.DoorOn(Left)
	if !ok {
		t.Fatal("DoorOn(Left) = not found, want found")
	}
	if info.Side != Left || info.Pos != 3 {
		t.Errorf("DoorOn(Left) = %+v, want side Left pos 3", info)
	}

	g2 := NewGrid(10)
	if _, ok := g2.DoorOn(Top); ok {
		t.Error("DoorOn on empty grid = found, want not found")
	}
}

func TestGrid_InteriorBounds(t *testing.T) {
	g := NewGrid(10)
	if g.IsInteriorPosition(1, 5) {
		t.Error("IsInteriorPosition(1, 5) = true, want false (row 1 is reserved)")
	}
	if !g.IsInteriorPosition(2, 2) {
		t.Error("IsInteriorPosition(2, 2) = false, want true")
	}
	if g.IsInteriorPosition(8, 5) {
		t.Error("IsInteriorPosition(8, 5) = true, want false (n-2 is exclusive)")
	}
}

func TestGrid_ValidateAcceptsBorderedGrid(t *testing.T) {
	g := borderedGrid(10)
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate = %q, want clean", msg)
	}
}

func TestGrid_ValidateRejectsMissingDoor(t *testing.T) {
	g := borderedGrid(10)
	// Overwrite the top door with a wall.
	g.SetKind(0, 3, Wall)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate = clean, want error for missing top door")
	}
}

func TestGrid_ValidateRejectsBorderGap(t *testing.T) {
	g := borderedGrid(10)
	g.SetKind(5, 0, Empty)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate = clean, want error for empty border cell")
	}
}

func TestSide_OppositeAndStep(t *testing.T) {
	if Top.Opposite() != Bottom || Left.Opposite() != Right {
		t.Error("Opposite pairs are wrong")
	}
	dx, dy := Top.Step()
	if dx != 0 || dy != 1 {
		t.Errorf("Top.Step() = (%v, %v), want (0, 1)", dx, dy)
	}
	dx, dy = Left.Step()
	if dx != -1 || dy != 0 {
		t.Errorf("Left.Step() = (%v, %v), want (-1, 0)", dx, dy)
	}
}
