package main

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"fluid16/sim"
)

func newTestState(t *testing.T, capacity int, seed int64) *sim.State {
	t.Helper()
	s, err := sim.NewState(capacity, sim.DefaultParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func TestRunTrace_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts traceOptions
	}{
		{"zero steps", traceOptions{}},
		{"negative steps", traceOptions{Steps: -1}},
		{"negative interval", traceOptions{Steps: 1, RemoveEvery: -1}},
		{"negative count", traceOptions{Steps: 1, RemoveEvery: 2, RemoveCount: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runTrace(newTestState(t, 10, 1), tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunTrace_Deterministic(t *testing.T) {
	opts := traceOptions{Steps: 200, Tilt: 0.3, Sweep: 0.01}
	a, err := runTrace(newTestState(t, 60, 42), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runTrace(newTestState(t, 60, 42), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.Grid != b.Grid {
		t.Error("grids differ for the same seed")
	}
	for i := range a.Energy {
		if a.Energy[i] != b.Energy[i] {
			t.Fatalf("energy differs at step %d: %v vs %v", i, a.Energy[i], b.Energy[i])
		}
	}
}

func TestRunTrace_Records(t *testing.T) {
	res, err := runTrace(newTestState(t, 40, 7), traceOptions{Steps: 5, Tilt: 1, Sweep: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Energy) != 5 || len(res.Lit) != 5 {
		t.Fatalf("recorded %d energies and %d lit counts, want 5", len(res.Energy), len(res.Lit))
	}
	if math.Abs(res.Tilt-3) > 1e-12 {
		t.Errorf("final tilt = %v, want 3", res.Tilt)
	}
	if res.Lit[4] != res.Grid.Count() {
		t.Errorf("last lit count %d != grid count %d", res.Lit[4], res.Grid.Count())
	}
	if n := res.Grid.Count(); n == 0 || n > 40 {
		t.Errorf("lit LEDs = %d, want 1..40", n)
	}
	if res.Capacity != 40 || res.Final.Active != 40 {
		t.Errorf("capacity/active = %d/%d, want 40/40", res.Capacity, res.Final.Active)
	}
}

func TestRunTrace_Removal(t *testing.T) {
	res, err := runTrace(newTestState(t, 20, 3), traceOptions{Steps: 10, RemoveEvery: 3, RemoveCount: 5})
	if err != nil {
		t.Fatal(err)
	}
	// Removals happen before steps 3, 6 and 9.
	if res.Final.Active != 5 {
		t.Errorf("active = %d, want 5", res.Final.Active)
	}
	if n := res.Grid.Count(); n > 5 {
		t.Errorf("lit LEDs = %d, exceeds active particles", n)
	}
}

func TestRenderReport(t *testing.T) {
	res, err := runTrace(newTestState(t, 30, 11), traceOptions{Steps: 20})
	if err != nil {
		t.Fatal(err)
	}
	out := renderReport(res, 30)
	for _, want := range []string{"fluid16 trace", "Active", "30/30", "Kinetic energy per step"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	res, err := runTrace(newTestState(t, 10, 5), traceOptions{Steps: 4})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(renderCSV(res)), "\n")
	if len(lines) != 5 {
		t.Fatalf("csv has %d lines, want 5", len(lines))
	}
	if lines[0] != "step,kinetic_energy,lit" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "3,") {
		t.Errorf("last row = %q, want step 3", lines[4])
	}
}

func TestRenderGrid(t *testing.T) {
	var g sim.Grid
	g[2][0] = true
	rows := strings.Split(renderGrid(g), "\n")
	if len(rows) != sim.GridSize {
		t.Fatalf("rendered %d rows, want %d", len(rows), sim.GridSize)
	}
	if strings.Count(renderGrid(g), "●") != 1 || !strings.Contains(rows[0], "●") {
		t.Errorf("lit LED not on the top row:\n%s", renderGrid(g))
	}
}
