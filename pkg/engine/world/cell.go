// Package world provides the layout model for one generated level: a square
// grid of typed cells plus the door metadata that ties consecutive levels
// together. It is pure data; turning a grid into live simulation entities is
// the job of the game layer.
package world

// CellKind identifies what occupies a grid cell. The set is closed: switches
// over CellKind in the game layer handle every variant explicitly.
type CellKind int

// Cell kinds.
const (
	Empty CellKind = iota
	Wall
	DoorCell
	PickupSpawn
	HostileSpawn
	PlayerSpawn
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case DoorCell:
		return "Door"
	case PickupSpawn:
		return "PickupSpawn"
	case HostileSpawn:
		return "HostileSpawn"
	case PlayerSpawn:
		return "PlayerSpawn"
	default:
		return "Unknown"
	}
}

// Cell is a single grid cell. Door is meaningful only when Kind is DoorCell.
type Cell struct {
	Kind CellKind
	Door DoorInfo
}
