// Package control turns frontend key state into tilt and particle-count
// changes. It knows nothing about any particular input library; each frontend
// samples its own keys into an Input once per frame.
package control

import "math"

// Input is the key state sampled for one frame.
type Input struct {
	TiltRight bool // held
	TiltLeft  bool // held
	ResetUp   bool // pressed this frame
	ResetDown bool // pressed this frame
	Remove    bool // pressed this frame
}

// Remover is implemented by anything whose active particle count can shrink.
type Remover interface {
	RemoveParticles(n int)
}

// Controller owns the tilt angle for a frontend.
type Controller struct {
	tilt        float64
	tiltStep    float64
	removeCount int
}

// New returns a controller that turns by tiltStep radians per held frame and
// removes removeCount particles per removal press.
func New(tiltStep float64, removeCount int) *Controller {
	return &Controller{tiltStep: tiltStep, removeCount: removeCount}
}

// Tilt returns the current tilt angle in radians.
func (c *Controller) Tilt() float64 { return c.tilt }

// SetTilt overrides the tilt angle.
func (c *Controller) SetTilt(angle float64) { c.tilt = angle }

// Apply folds one frame of input into the tilt and forwards removal requests
// to r. It returns the tilt to use for this frame's step.
func (c *Controller) Apply(in Input, r Remover) float64 {
	if in.TiltRight {
		c.tilt += c.tiltStep
	} else if in.TiltLeft {
		c.tilt -= c.tiltStep
	}

	if in.ResetUp {
		c.tilt = 0
	} else if in.ResetDown {
		c.tilt = math.Pi
	}

	if in.Remove && r != nil {
		r.RemoveParticles(c.removeCount)
	}
	return c.tilt
}
