package world

// Grid is a square matrix of typed cells representing one level's layout
// before world-space instantiation. Row 0 is the top border; rows grow
// downward, columns grow to the right.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an all-Empty grid with the given side length.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic("grid size must be positive")
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if a row/col position is within grid bounds.
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// IsInteriorPosition checks if a position is strictly inside the carving
// bound: at least two cells away from every border.
func (g *Grid) IsInteriorPosition(row, col int) bool {
	return row >= 2 && row < g.size-2 && col >= 2 && col < g.size-2
}

// IsOnBorder checks if a position is on the outer ring of the grid.
func (g *Grid) IsOnBorder(row, col int) bool {
	return g.IsValidPosition(row, col) &&
		(row == 0 || row == g.size-1 || col == 0 || col == g.size-1)
}

// At returns the cell at the given position. Out-of-bounds reads return an
// Empty cell.
func (g *Grid) At(row, col int) Cell {
	if !g.IsValidPosition(row, col) {
		return Cell{}
	}
	return g.cells[row*g.size+col]
}

// KindAt returns the kind of the cell at the given position.
func (g *Grid) KindAt(row, col int) CellKind {
	return g.At(row, col).Kind
}

// Set stores a cell at the given position. Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.IsValidPosition(row, col) {
		return
	}
	g.cells[row*g.size+col] = c
}

// SetKind stores a cell of the given kind with no door metadata.
func (g *Grid) SetKind(row, col int, k CellKind) {
	g.Set(row, col, Cell{Kind: k})
}

// SetDoor stamps a door cell at the position implied by the door's side and
// index along that side.
func (g *Grid) SetDoor(info DoorInfo) {
	row, col := g.DoorPosition(info)
	g.Set(row, col, Cell{Kind: DoorCell, Door: info})
}

// DoorPosition returns the grid coordinate a door occupies on its side.
func (g *Grid) DoorPosition(info DoorInfo) (row, col int) {
	switch info.Side {
	case Top:
		return 0, info.Pos
	case Bottom:
		return g.size - 1, info.Pos
	case Left:
		return info.Pos, 0
	case Right:
		return info.Pos, g.size - 1
	default:
		return 0, 0
	}
}

// DoorOn returns the door on the given side, if the border holds one.
func (g *Grid) DoorOn(side Side) (DoorInfo, bool) {
	for i := 0; i < g.size; i++ {
		var c Cell
		switch side {
		case Top:
			c = g.At(0, i)
		case Bottom:
			c = g.At(g.size-1, i)
		case Left:
			c = g.At(i, 0)
		case Right:
			c = g.At(i, g.size-1)
		}
		if c.Kind == DoorCell && c.Door.Side == side {
			return c.Door, true
		}
	}
	return DoorInfo{}, false
}

// ForEachCell iterates over all cells in row-major order.
func (g *Grid) ForEachCell(fn func(row, col int, c Cell)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(row, col, g.cells[row*g.size+col])
		}
	}
}

// CountKind returns the number of cells with the given kind.
func (g *Grid) CountKind(k CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// FindKind returns the position of the first cell with the given kind in
// row-major order, or (-1, -1) if none exists.
func (g *Grid) FindKind(k CellKind) (row, col int) {
	for i, c := range g.cells {
		if c.Kind == k {
			return i / g.size, i % g.size
		}
	}
	return -1, -1
}

// Validate checks the border invariant: the outer ring must be Wall except
// for exactly one Door per side. It returns an error description, or an empty
// string if the grid is valid.
func (g *Grid) Validate() string {
	for _, side := range AllSides() {
		doors := 0
		for i := 0; i < g.size; i++ {
			var c Cell
			switch side {
			case Top:
				c = g.At(0, i)
			case Bottom:
				c = g.At(g.size-1, i)
			case Left:
				c = g.At(i, 0)
			case Right:
				c = g.At(i, g.size-1)
			}
			switch c.Kind {
			case DoorCell:
				doors++
			case Wall:
			case Empty, PickupSpawn, HostileSpawn, PlayerSpawn:
				return "border contains a non-wall, non-door cell on side " + side.String()
			}
		}
		if doors != 1 {
			return "side " + side.String() + " does not have exactly one door"
		}
	}
	return ""
}
