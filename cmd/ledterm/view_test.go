package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"fluid16/sim"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestView_Resize(t *testing.T) {
	v := newView(simScreen(t, 80, 40))
	if v.layout.Origin != (sim.Vec{X: 10, Y: 4}) {
		t.Errorf("origin = %v, want {10 4}", v.layout.Origin)
	}
	if v.layout.PitchX != cellPitchX || v.layout.PitchY != cellPitchY {
		t.Errorf("pitch = %v/%v", v.layout.PitchX, v.layout.PitchY)
	}
}

func TestView_DrawLitLED(t *testing.T) {
	s := simScreen(t, 80, 40)
	v := newView(s)
	var grid sim.Grid
	grid[3][5] = true
	v.draw(frame{grid: grid, stats: sim.Stats{Active: 1}, capacity: 220, scale: sim.DefaultBoxScale})

	r, _, style, _ := s.GetContent(22, 14)
	if r != ledRune || style != ledOnStyle {
		t.Errorf("lit LED cell = %q %v, want %q on style", r, style, ledRune)
	}
	r, _, style, _ = s.GetContent(10, 4)
	if r != ledRune || style != ledOffStyle {
		t.Errorf("dark LED cell = %q %v, want %q off style", r, style, ledRune)
	}

	var line strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := s.GetContent(x, 39)
		line.WriteRune(r)
	}
	if !strings.HasPrefix(line.String(), "tilt 0.000 rad  particles 1/220") {
		t.Errorf("status line = %q", line.String())
	}
}

func TestView_PutClipsOffscreen(t *testing.T) {
	s := simScreen(t, 10, 10)
	v := newView(s)
	v.put(sim.Vec{X: -1, Y: 3}, 'x', statusStyle)
	v.put(sim.Vec{X: 3, Y: 10}, 'x', statusStyle)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r, _, _, _ := s.GetContent(x, y); r == 'x' {
				t.Fatalf("off-screen rune drawn at (%d,%d)", x, y)
			}
		}
	}
}
