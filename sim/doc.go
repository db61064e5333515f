// Package sim implements the tilt-driven particle arena: a fixed-timestep
// integrator with wall reflection and pairwise slip collisions, and the
// projection of particle positions onto a 16x16 LED grid.
//
// The package has no rendering or input dependencies. Frontends own the tilt
// angle, call (*State).Step once per frame and read the returned Grid and the
// particle accessors afterwards.
package sim
