// Package layout maps LED cells and world positions to display coordinates,
// rotating about the grid centre so a tilted grid stays centred on screen.
package layout

import (
	"gonum.org/v1/gonum/spatial/r2"

	"fluid16/sim"
)

// Layout places the grid on a display surface. Cell (0,0) sits at Origin and
// neighbouring cells are PitchX/PitchY apart before rotation.
type Layout struct {
	Origin sim.Vec
	PitchX float64
	PitchY float64
}

// Centered returns a square-pitch layout that centres a grid of LEDs of
// ledSize separated by padding inside a width x height surface.
func Centered(width, height, ledSize, padding int) Layout {
	span := ledSize*sim.GridSize + padding*(sim.GridSize-1)
	return Layout{
		Origin: sim.Vec{X: float64((width - span) / 2), Y: float64((height - span) / 2)},
		PitchX: float64(ledSize + padding),
		PitchY: float64(ledSize + padding),
	}
}

// Cell returns the display position of LED (col,row) under tilt.
func (l Layout) Cell(col, row int, tilt float64) sim.Vec {
	return l.grid(sim.Vec{X: float64(col), Y: float64(row)}, tilt)
}

// World returns the display position of a world-space point under tilt.
func (l Layout) World(pos sim.Vec, scale, tilt float64) sim.Vec {
	return l.grid(r2.Scale(1/scale, pos), tilt)
}

// Heading returns the display end point of a velocity marker starting at a
// particle, length seconds of travel long.
func (l Layout) Heading(p sim.Particle, scale, tilt, length float64) sim.Vec {
	tip := r2.Add(p.Position, r2.Scale(length, p.Velocity))
	return l.World(tip, scale, tilt)
}

// grid converts LED-unit coordinates to display coordinates.
func (l Layout) grid(p sim.Vec, tilt float64) sim.Vec {
	r := sim.RotateAboutGridCenter(p, tilt)
	return sim.Vec{X: l.Origin.X + r.X*l.PitchX, Y: l.Origin.Y + r.Y*l.PitchY}
}
