//go:build !opencl

package main

import (
	"errors"

	"fluid16/sim"
)

type openCLGridProjector struct{}

func newOpenCLGridProjector(capacity int) (*openCLGridProjector, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (p *openCLGridProjector) Project(particles []sim.Particle, scale float64) (sim.Grid, error) {
	return sim.Grid{}, errors.New("OpenCL projector unavailable")
}

func (p *openCLGridProjector) Close() {}

func (p *openCLGridProjector) DeviceName() string { return "" }
