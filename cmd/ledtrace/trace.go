package main

import (
	"fmt"

	"fluid16/sim"
)

// traceOptions drives a headless run.
type traceOptions struct {
	Steps       int
	Tilt        float64 // tilt at step 0
	Sweep       float64 // radians added per step
	RemoveEvery int     // remove RemoveCount particles every this many steps, 0 disables
	RemoveCount int
}

// traceResult collects what a run produced.
type traceResult struct {
	Steps    int
	Tilt     float64 // tilt used for the last step
	Grid     sim.Grid
	Final    sim.Stats
	Totals   sim.Stats // per-tag counts summed over every step
	Energy   []float64 // kinetic energy after each step
	Lit      []int     // lit LED count after each step
	Capacity int
}

func (o traceOptions) validate() error {
	if o.Steps <= 0 {
		return fmt.Errorf("steps = %d, must be positive", o.Steps)
	}
	if o.RemoveEvery < 0 || o.RemoveCount < 0 {
		return fmt.Errorf("removal every %d by %d must not be negative", o.RemoveEvery, o.RemoveCount)
	}
	return nil
}

// runTrace steps s o.Steps times and records per-step statistics.
func runTrace(s *sim.State, o traceOptions) (traceResult, error) {
	if err := o.validate(); err != nil {
		return traceResult{}, err
	}
	res := traceResult{
		Steps:    o.Steps,
		Energy:   make([]float64, 0, o.Steps),
		Lit:      make([]int, 0, o.Steps),
		Capacity: s.Capacity(),
	}
	for k := 0; k < o.Steps; k++ {
		if o.RemoveEvery > 0 && k > 0 && k%o.RemoveEvery == 0 {
			s.RemoveParticles(o.RemoveCount)
		}
		res.Tilt = o.Tilt + float64(k)*o.Sweep
		res.Grid = s.Step(res.Tilt)
		st := s.Stats()
		res.Totals.Wall += st.Wall
		res.Totals.Particle += st.Particle
		res.Totals.WallParticle += st.WallParticle
		res.Energy = append(res.Energy, st.KineticEnergy)
		res.Lit = append(res.Lit, res.Grid.Count())
		res.Final = st
	}
	res.Totals.Active = res.Final.Active
	return res, nil
}
