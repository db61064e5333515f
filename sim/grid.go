package sim

import "math"

// Grid is the LED occupancy matrix indexed [col][row].
type Grid [GridSize][GridSize]bool

// Count returns the number of lit cells.
func (g *Grid) Count() int {
	n := 0
	for col := range g {
		for row := range g[col] {
			if g[col][row] {
				n++
			}
		}
	}
	return n
}

// PositionToCell maps a world position to the nearest LED cell. Indices are
// clamped into the grid so floating error at the walls cannot escape it.
func PositionToCell(pos Vec, scale float64) (col, row int) {
	col = clampCell(int(math.Round(pos.X / scale)))
	row = clampCell(int(math.Round(pos.Y / scale)))
	return col, row
}

// Project builds the occupancy grid for the given particles.
func Project(particles []Particle, scale float64) Grid {
	var g Grid
	for i := range particles {
		col, row := PositionToCell(particles[i].Position, scale)
		g[col][row] = true
	}
	return g
}

// clampCell constrains v to a valid cell index.
func clampCell(v int) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return v
}
