package sim

import "gonum.org/v1/gonum/spatial/r2"

// Stats summarizes the active particles after a step.
type Stats struct {
	Active        int
	Wall          int // tagged wall only
	Particle      int // tagged particle only
	WallParticle  int // tagged with both
	KineticEnergy float64
	WallSpeed     float64 // summed speed of particles that touched a wall
}

// Touching returns how many particles were in contact with anything.
func (st Stats) Touching() int {
	return st.Wall + st.Particle + st.WallParticle
}

// Stats tallies collision tags and kinetic energy, treating every particle as
// unit mass.
func (s *State) Stats() Stats {
	st := Stats{Active: s.active}
	for i := 0; i < s.active; i++ {
		p := &s.particles[i]
		switch p.Collision {
		case CollisionWall:
			st.Wall++
		case CollisionParticle:
			st.Particle++
		case CollisionWallAndParticle:
			st.WallParticle++
		}
		st.KineticEnergy += 0.5 * r2.Dot(p.Velocity, p.Velocity)
		if p.Collision.TouchedWall() {
			st.WallSpeed += r2.Norm(p.Velocity)
		}
	}
	return st
}
