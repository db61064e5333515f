package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"fluid16/layout"
	"fluid16/sim"
)

// Terminal cells are roughly twice as tall as they are wide, so a 4x2 pitch
// keeps the LED matrix square on screen.
const (
	cellPitchX = 4
	cellPitchY = 2
	ledRune    = '●'
	dotRune    = '·'
)

var (
	ledOnStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 41, 55))
	ledOffStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 45, 30))
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	headingStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// view draws frames onto a tcell screen.
type view struct {
	screen tcell.Screen
	layout layout.Layout
}

func newView(screen tcell.Screen) *view {
	v := &view{screen: screen}
	v.resize()
	return v
}

// resize centres the matrix in the current screen, leaving the bottom two
// rows for the status line.
func (v *view) resize() {
	w, h := v.screen.Size()
	span := float64(sim.GridSize - 1)
	v.layout = layout.Layout{
		Origin: sim.Vec{
			X: math.Floor((float64(w) - span*cellPitchX) / 2),
			Y: math.Floor((float64(h-2) - span*cellPitchY) / 2),
		},
		PitchX: cellPitchX,
		PitchY: cellPitchY,
	}
}

// frame is everything one draw needs.
type frame struct {
	grid         sim.Grid
	particles    []sim.Particle
	scale        float64
	tilt         float64
	stats        sim.Stats
	capacity     int
	showVelocity bool
	debug        bool
}

func (v *view) draw(f frame) {
	v.screen.Clear()
	for col := 0; col < sim.GridSize; col++ {
		for row := 0; row < sim.GridSize; row++ {
			style := ledOffStyle
			if f.grid[col][row] {
				style = ledOnStyle
			}
			v.put(v.layout.Cell(col, row, f.tilt), ledRune, style)
		}
	}
	if f.showVelocity {
		for _, p := range f.particles {
			v.put(v.layout.Heading(p, f.scale, f.tilt, 0.25), dotRune, headingStyle)
		}
	}

	_, h := v.screen.Size()
	status := fmt.Sprintf("tilt %.3f rad  particles %d/%d  [←/→ tilt  ↑/↓ reset  d remove  v velocity  q quit]",
		f.tilt, f.stats.Active, f.capacity)
	if f.debug {
		status += fmt.Sprintf("  wall %d particle %d both %d  KE %.1f",
			f.stats.Wall, f.stats.Particle, f.stats.WallParticle, f.stats.KineticEnergy)
	}
	v.text(0, h-1, status, statusStyle)
	v.screen.Show()
}

func (v *view) put(p sim.Vec, r rune, style tcell.Style) {
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
