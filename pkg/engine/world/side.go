package world

// Side identifies one of the four border sides of a level grid.
type Side int

// Border sides.
const (
	Top Side = iota
	Bottom
	Left
	Right
)

// AllSides returns all four sides for iteration, in generation draw order.
func AllSides() []Side {
	return []Side{Top, Bottom, Left, Right}
}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the side is one of the four border sides.
func (s Side) IsValid() bool {
	return s >= Top && s <= Right
}

// Opposite returns the side across the grid. A player exiting through a door
// on side S enters the next level through the door on S.Opposite().
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	default:
		return s
	}
}

// Step returns the unit level-to-level offset in world X/Y for a level entered
// through a door on this side: exiting Top places the next level further in +Y
// and so on.
func (s Side) Step() (dx, dy float64) {
	switch s {
	case Top:
		return 0, 1
	case Bottom:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
