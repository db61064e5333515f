package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Step advances every active particle by one fixed timestep under a field
// pointing along tilt and returns the occupancy grid for the frame.
//
// Particles are processed in ascending index order and each pair (i, j>i) is
// resolved in place as soon as it is found, so later pairs observe the
// corrections made by earlier ones.
func (s *State) Step(tilt float64) Grid {
	var g Grid
	s.resetCollisions()
	field := s.fieldDelta(tilt)
	for i := 0; i < s.active; i++ {
		s.resolve(i)
		col, row := PositionToCell(s.particles[i].Position, s.params.BoxScale)
		g[col][row] = true
		s.particles[i].Velocity = r2.Add(s.particles[i].Velocity, field)
	}
	return g
}

// Resolve runs integration, wall handling and pairwise collisions for all
// active particles without projecting or applying the field. Resolve followed
// by Project and InjectField is equivalent to Step, because resolving particle
// k never reads or writes particles below k.
func (s *State) Resolve() {
	s.resetCollisions()
	for i := 0; i < s.active; i++ {
		s.resolve(i)
	}
}

// InjectField adds one timestep of field acceleration to every active particle.
func (s *State) InjectField(tilt float64) {
	field := s.fieldDelta(tilt)
	for i := 0; i < s.active; i++ {
		s.particles[i].Velocity = r2.Add(s.particles[i].Velocity, field)
	}
}

// fieldDelta is the velocity change the field imparts over one timestep.
func (s *State) fieldDelta(tilt float64) Vec {
	sin, cos := math.Sincos(tilt)
	a := s.params.Acceleration * s.params.Timestep
	return Vec{X: a * sin, Y: a * cos}
}

func (s *State) resetCollisions() {
	for i := 0; i < s.active; i++ {
		s.particles[i].Collision = CollisionNone
	}
}

// resolve integrates particle i, bounces it off the walls and resolves its
// contacts with every later particle.
func (s *State) resolve(i int) {
	p := &s.particles[i]
	p.Position = r2.Add(p.Position, r2.Scale(s.params.Timestep, p.Velocity))
	if s.reflectWalls(p) {
		p.Collision = p.Collision.withWall()
	}
	for j := i + 1; j < s.active; j++ {
		s.collidePair(p, &s.particles[j])
	}
	// A pair correction may push i back across a wall after its own wall check.
	p.Position = s.clampToArena(p.Position)
}

// reflectWalls clamps p into the arena per axis, reversing and damping the
// velocity component of every axis that crossed a wall.
func (s *State) reflectWalls(p *Particle) bool {
	bound := s.params.Bound()
	e := s.params.WallRestitution
	hit := false
	if p.Position.X < 0 {
		p.Position.X = 0
		p.Velocity.X = -p.Velocity.X * e
		hit = true
	} else if p.Position.X > bound {
		p.Position.X = bound
		p.Velocity.X = -p.Velocity.X * e
		hit = true
	}
	if p.Position.Y < 0 {
		p.Position.Y = 0
		p.Velocity.Y = -p.Velocity.Y * e
		hit = true
	} else if p.Position.Y > bound {
		p.Position.Y = bound
		p.Velocity.Y = -p.Velocity.Y * e
		hit = true
	}
	return hit
}

// collidePair applies the slip response to an overlapping pair: normal
// velocity components are exchanged and damped, tangential components stay
// with their owner, and the overlap is split evenly along the normal.
func (s *State) collidePair(a, b *Particle) {
	minDist := 2 * s.params.ParticleRadius
	delta := r2.Sub(b.Position, a.Position)
	dist := r2.Norm(delta)
	if dist >= minDist {
		return
	}
	a.Collision = a.Collision.withParticle()
	b.Collision = b.Collision.withParticle()
	if dist == 0 {
		// Coincident particles have no normal; they separate on a later frame.
		return
	}

	n := r2.Scale(1/dist, delta)
	an := r2.Dot(a.Velocity, n)
	bn := r2.Dot(b.Velocity, n)
	at := r2.Sub(a.Velocity, r2.Scale(an, n))
	bt := r2.Sub(b.Velocity, r2.Scale(bn, n))

	e := s.params.ParticleRestitution
	a.Velocity = r2.Add(at, r2.Scale(bn*e, n))
	b.Velocity = r2.Add(bt, r2.Scale(an*e, n))

	push := r2.Scale((minDist-dist)/2, n)
	a.Position = r2.Sub(a.Position, push)
	b.Position = r2.Add(b.Position, push)
}

// clampToArena clamps v into the arena without touching velocity.
func (s *State) clampToArena(v Vec) Vec {
	bound := s.params.Bound()
	return Vec{X: math.Max(0, math.Min(bound, v.X)), Y: math.Max(0, math.Min(bound, v.Y))}
}
