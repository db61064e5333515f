package layout

import (
	"math"
	"testing"

	"fluid16/sim"
)

func near(a, b sim.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCentered(t *testing.T) {
	l := Centered(1300, 900, 11, 23)
	// span = 11*16 + 23*15 = 521
	want := Layout{Origin: sim.Vec{X: 389, Y: 189}, PitchX: 34, PitchY: 34}
	if l != want {
		t.Fatalf("Centered = %+v, want %+v", l, want)
	}
}

func TestCell(t *testing.T) {
	l := Layout{Origin: sim.Vec{X: 10, Y: 20}, PitchX: 4, PitchY: 2}
	tests := []struct {
		name     string
		col, row int
		tilt     float64
		want     sim.Vec
	}{
		{"origin cell untilted", 0, 0, 0, sim.Vec{X: 10, Y: 20}},
		{"far cell untilted", 15, 15, 0, sim.Vec{X: 70, Y: 50}},
		{"half turn swaps corners", 0, 0, math.Pi, sim.Vec{X: 70, Y: 50}},
		{"quarter turn", 0, 0, math.Pi / 2, sim.Vec{X: 70, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Cell(tt.col, tt.row, tt.tilt); !near(got, tt.want) {
				t.Errorf("Cell(%d,%d,%v) = %v, want %v", tt.col, tt.row, tt.tilt, got, tt.want)
			}
		})
	}
}

func TestWorldMatchesCell(t *testing.T) {
	l := Centered(1300, 900, 11, 23)
	for _, tilt := range []float64{0, 0.3, -1.1, math.Pi} {
		cell := l.Cell(3, 9, tilt)
		world := l.World(sim.Vec{X: 60, Y: 180}, sim.DefaultBoxScale, tilt)
		if !near(cell, world) {
			t.Errorf("tilt %v: world %v, cell %v", tilt, world, cell)
		}
	}
}

func TestHeading(t *testing.T) {
	l := Layout{PitchX: 1, PitchY: 1}
	p := sim.Particle{Position: sim.Vec{X: 100, Y: 100}, Velocity: sim.Vec{X: 20, Y: -40}}
	got := l.Heading(p, 20, 0, 0.5)
	if want := (sim.Vec{X: 5.5, Y: 4}); !near(got, want) {
		t.Errorf("Heading = %v, want %v", got, want)
	}
}
