package world

// DoorState is the lifecycle state of a level door. Locked and TemporaryOpen
// are assigned by the generator; the remaining states are driven by the door
// subsystem's animation while a level is live.
type DoorState int

// Door states.
const (
	// DoorLocked doors do not open until the level is cleared.
	DoorLocked DoorState = iota
	// DoorTemporaryOpen doors start open so the player can walk back in at
	// the spot they left the previous level, then close behind them.
	DoorTemporaryOpen
	// DoorOpening / DoorClosing are transitional animation states.
	DoorOpening
	DoorClosing
	// DoorOpen doors can be walked through to switch levels.
	DoorOpen
	// DoorClosed doors are unlocked but shut.
	DoorClosed
)

// String returns the string representation of a door state.
func (s DoorState) String() string {
	switch s {
	case DoorLocked:
		return "Locked"
	case DoorTemporaryOpen:
		return "TemporaryOpen"
	case DoorOpening:
		return "Opening"
	case DoorClosing:
		return "Closing"
	case DoorOpen:
		return "Open"
	case DoorClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// AnimationKind distinguishes the two door animations. Old level geometry is
// torn down only after a Close finishes, never after an Open.
type AnimationKind int

// Animation kinds.
const (
	AnimationOpen AnimationKind = iota
	AnimationClose
)

// String returns the string representation of an animation kind.
func (k AnimationKind) String() string {
	switch k {
	case AnimationOpen:
		return "Open"
	case AnimationClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// DoorInfo describes one door in a generated grid: which border side it sits
// on, its index along that side, and its initial state. When a level is
// entered through a door, the next grid's door on the opposite side is forced
// to the same Pos (door continuity).
type DoorInfo struct {
	Side  Side
	State DoorState
	Pos   int
}
