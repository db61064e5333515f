package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidCapacity is returned for a non-positive particle capacity.
var ErrInvalidCapacity = errors.New("invalid particle capacity")

// State owns the particle buffer and the active count. Particles beyond the
// active count keep their last values and are never simulated again.
type State struct {
	params    Params
	particles []Particle
	active    int
	rng       *rand.Rand
}

// NewState allocates capacity particles and randomizes all of them. A nil rng
// falls back to a fixed seed so runs stay reproducible.
func NewState(capacity int, params Params, rng *rand.Rand) (*State, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &State{
		params:    params,
		particles: make([]Particle, capacity),
		rng:       rng,
	}
	s.Initialize(capacity)
	return s, nil
}

// Initialize places the first count particles uniformly at random in the
// arena with zero velocity and makes them the active set.
func (s *State) Initialize(count int) {
	if count < 0 || count > len(s.particles) {
		panic(fmt.Sprintf("sim: initialize count %d outside [0, %d]", count, len(s.particles)))
	}
	bound := s.params.Bound()
	for i := 0; i < count; i++ {
		s.particles[i] = Particle{
			Position: Vec{X: s.rng.Float64() * bound, Y: s.rng.Float64() * bound},
		}
	}
	s.active = count
}

// Params returns the configuration the state was built with.
func (s *State) Params() Params { return s.params }

// Capacity returns the size of the particle buffer.
func (s *State) Capacity() int { return len(s.particles) }

// Active returns the number of leading particles being simulated.
func (s *State) Active() int { return s.active }

// SetActiveCount lowers the active count to n. Values below zero clamp to zero
// and values above the current count are ignored.
func (s *State) SetActiveCount(n int) {
	if n < 0 {
		n = 0
	}
	if n < s.active {
		s.active = n
	}
}

// RemoveParticles drops n particles from the end of the active set.
func (s *State) RemoveParticles(n int) {
	if n <= 0 {
		return
	}
	s.SetActiveCount(s.active - n)
}

// Particle returns a copy of the particle at index i.
func (s *State) Particle(i int) Particle {
	return s.particles[i]
}

// Particles returns a copy of the active particles.
func (s *State) Particles() []Particle {
	out := make([]Particle, s.active)
	copy(out, s.particles[:s.active])
	return out
}

// Place overwrites the first len(ps) particles and makes them the active set.
// It is meant for scripted scenarios and tests.
func (s *State) Place(ps ...Particle) {
	if len(ps) > len(s.particles) {
		panic(fmt.Sprintf("sim: place %d particles into capacity %d", len(ps), len(s.particles)))
	}
	copy(s.particles, ps)
	s.active = len(ps)
}
