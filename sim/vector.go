package sim

import "gonum.org/v1/gonum/spatial/r2"

// Vec is the 2D value type used for positions and velocities.
type Vec = r2.Vec

// GridCenter is the pivot used when rotating LED-space coordinates so that the
// 16x16 grid stays centred while tilted.
var GridCenter = Vec{X: (GridSize - 1) / 2.0, Y: (GridSize - 1) / 2.0}

// Rotate rotates p about the origin by angle radians.
func Rotate(p Vec, angle float64) Vec {
	return r2.Rotate(p, angle, Vec{})
}

// RotateAboutGridCenter rotates p, expressed in LED cell units, about the
// centre of the grid.
func RotateAboutGridCenter(p Vec, angle float64) Vec {
	return r2.Rotate(p, angle, GridCenter)
}
