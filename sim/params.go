package sim

import (
	"errors"
	"fmt"
	"math"
)

// GridSize is the number of LED cells along each side of the grid.
const GridSize = 16

// Default physical constants for the arena.
const (
	DefaultAcceleration        = 20.8
	DefaultTimestep            = 0.01
	DefaultParticleRadius      = 5.0
	DefaultWallRestitution     = 0.35
	DefaultParticleRestitution = 0.985
	DefaultBoxScale            = 20.0
	DefaultCapacity            = 220
)

// ErrInvalidParams is returned when a Params value cannot drive a simulation.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Params holds the immutable physical configuration of a run.
type Params struct {
	Acceleration        float64 `toml:"acceleration"`         // field magnitude, world units/s²
	Timestep            float64 `toml:"timestep"`             // fixed dt in seconds
	ParticleRadius      float64 `toml:"particle_radius"`      // world units
	WallRestitution     float64 `toml:"wall_restitution"`     // velocity kept after a wall bounce
	ParticleRestitution float64 `toml:"particle_restitution"` // normal velocity kept after a pair exchange
	BoxScale            float64 `toml:"box_scale"`            // world units per LED cell
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Acceleration:        DefaultAcceleration,
		Timestep:            DefaultTimestep,
		ParticleRadius:      DefaultParticleRadius,
		WallRestitution:     DefaultWallRestitution,
		ParticleRestitution: DefaultParticleRestitution,
		BoxScale:            DefaultBoxScale,
	}
}

// Bound returns the upper edge of the arena on both axes, 15·BoxScale.
func (p Params) Bound() float64 {
	return (GridSize - 1) * p.BoxScale
}

// Validate reports whether the parameters describe a usable arena.
func (p Params) Validate() error {
	check := func(name string, v float64, ok bool) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || !ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParams, name, v)
		}
		return nil
	}
	for _, err := range []error{
		check("acceleration", p.Acceleration, true),
		check("timestep", p.Timestep, p.Timestep > 0),
		check("particle_radius", p.ParticleRadius, p.ParticleRadius > 0),
		check("wall_restitution", p.WallRestitution, p.WallRestitution >= 0 && p.WallRestitution <= 1),
		check("particle_restitution", p.ParticleRestitution, p.ParticleRestitution >= 0 && p.ParticleRestitution <= 1),
		check("box_scale", p.BoxScale, p.BoxScale > 0),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
