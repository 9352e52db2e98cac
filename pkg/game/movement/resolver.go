// Package movement converts a desired velocity into a physically valid
// displacement for a capsule-shaped kinematic body. Walls are never entered;
// oblique contacts turn into sliding along the wall instead.
package movement

import (
	"gridfall/pkg/engine/geom"
	"gridfall/pkg/engine/physics"
)

const (
	// maxPasses bounds the iterative contact correction. A body still in
	// contact on the final pass is treated as blocked.
	maxPasses = 4
	// sweepTOI bounds how far ahead of the displacement each sweep scans,
	// in displacement-multiples.
	sweepTOI = 2.0
)

// Resolve computes the displacement a body may take this tick. desired is the
// velocity after the caller has applied acceleration, deceleration and speed
// clamping; dt scales it into a tentative displacement.
//
// Up to maxPasses swept casts run: no contact returns the displacement
// unchanged; a converged contact projects the displacement onto the
// wall-parallel direction (contact normal crossed with the up axis) and
// re-sweeps; a penetrating contact aborts the whole movement for this tick.
func Resolve(pos geom.Vec3, desired geom.Vec3, shape physics.Capsule, space *physics.Space, filter physics.Filter, dt float64) geom.Vec3 {
	disp := desired.Scale(dt)

	for pass := 0; pass < maxPasses; pass++ {
		hit := space.CastCapsule(pos, shape, disp, sweepTOI, filter)
		switch hit.Status {
		case physics.HitNone:
			return disp
		case physics.HitConverged:
			if pass == maxPasses-1 {
				return geom.Vec3{}
			}
			// Slide: keep only the component of the displacement that runs
			// along the wall.
			wallParallel := hit.Normal.Cross(geom.Up)
			disp = wallParallel.Scale(wallParallel.Dot(disp))
		case physics.HitPenetrating:
			// Already overlapping geometry: stall this tick rather than
			// attempt a correction that could tunnel or jitter.
			return geom.Vec3{}
		}
	}
	return disp
}
