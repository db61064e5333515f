package main

import "fluid16/sim"

// gridProjector rasterizes resolved particle positions onto the LED grid.
// The CPU path in sim needs no projector; this covers offloaded variants.
type gridProjector interface {
	Project(particles []sim.Particle, scale float64) (sim.Grid, error)
	DeviceName() string
	Close()
}

// stepFrame advances the simulation by one fixed step. With a projector the
// step is split so projection runs on the device between collision
// resolution and field injection; any projector error falls back to the CPU
// grid for that frame.
func stepFrame(s *sim.State, p gridProjector, tilt float64) (sim.Grid, error) {
	if p == nil {
		return s.Step(tilt), nil
	}
	s.Resolve()
	particles := s.Particles()
	grid, err := p.Project(particles, s.Params().BoxScale)
	if err != nil {
		grid = sim.Project(particles, s.Params().BoxScale)
	}
	s.InjectField(tilt)
	return grid, err
}
