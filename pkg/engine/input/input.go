// Package input defines the device-independent movement intent consumed by
// the simulation. Renderers translate whatever device they poll into an
// Intent; the simulation never sees key codes.
package input

// Intent is one tick's worth of player input. Forward and Strafe are in
// [-1, 1] in the player's local frame (Forward +1 is ahead, Strafe +1 is to
// the right). Turn is the signed yaw rate factor for this tick.
type Intent struct {
	Forward float64
	Strafe  float64
	Turn    float64
}

// IsZero reports whether the intent requests no movement and no turning.
func (i Intent) IsZero() bool {
	return i.Forward == 0 && i.Strafe == 0 && i.Turn == 0
}
