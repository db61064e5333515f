package sim

// CollisionState records what a particle touched during the last step.
type CollisionState uint8

const (
	CollisionNone CollisionState = iota
	CollisionWall
	CollisionParticle
	CollisionWallAndParticle
)

// String returns a short label for overlays and logs.
func (c CollisionState) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionParticle:
		return "particle"
	case CollisionWallAndParticle:
		return "wall+particle"
	}
	return "unknown"
}

// withWall folds a wall contact into c.
func (c CollisionState) withWall() CollisionState {
	switch c {
	case CollisionNone:
		return CollisionWall
	case CollisionParticle:
		return CollisionWallAndParticle
	}
	return c
}

// withParticle folds a particle contact into c.
func (c CollisionState) withParticle() CollisionState {
	switch c {
	case CollisionNone:
		return CollisionParticle
	case CollisionWall:
		return CollisionWallAndParticle
	}
	return c
}

// TouchedWall reports whether the wall flag is set.
func (c CollisionState) TouchedWall() bool {
	return c == CollisionWall || c == CollisionWallAndParticle
}

// TouchedParticle reports whether the particle flag is set.
func (c CollisionState) TouchedParticle() bool {
	return c == CollisionParticle || c == CollisionWallAndParticle
}

// Particle is a point mass in the arena.
type Particle struct {
	Position  Vec
	Velocity  Vec
	Collision CollisionState
}
