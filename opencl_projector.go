//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"fluid16/sim"
)

type openCLGridProjector struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posBuf     *cl.MemObject
	cellBuf    *cl.MemObject
	capacity   int
	positions  []float32
	cells      []int32
	zeros      []int32
	deviceName string
}

const cellCount = sim.GridSize * sim.GridSize

// Positions are uploaded as float32, so a coordinate sitting within float32
// precision of a half-cell boundary may round to the neighbouring LED.
const projectKernelSource = `__kernel void project_cells(
    const int count,
    const float inv_scale,
    const int grid,
    __global const float* positions,
    __global int* cells)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    int col = clamp((int)round(positions[2 * i] * inv_scale), 0, grid - 1);
    int row = clamp((int)round(positions[2 * i + 1] * inv_scale), 0, grid - 1);
    cells[col * grid + row] = 1;
}`

func newOpenCLGridProjector(capacity int) (*openCLGridProjector, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("OpenCL projector capacity %d must be positive", capacity)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	p := &openCLGridProjector{
		capacity:   capacity,
		positions:  make([]float32, 2*capacity),
		cells:      make([]int32, cellCount),
		zeros:      make([]int32, cellCount),
		deviceName: device.Name(),
	}
	if err := p.build(device); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// build creates the context, program and buffers. Partially built state is
// released by Close.
func (p *openCLGridProjector) build(device *cl.Device) error {
	var err error
	if p.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	if p.queue, err = p.context.CreateCommandQueue(device, 0); err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if p.program, err = p.context.CreateProgramWithSource([]string{projectKernelSource}); err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := p.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	if p.kernel, err = p.program.CreateKernel("project_cells"); err != nil {
		return fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	posBytes := len(p.positions) * int(unsafe.Sizeof(float32(0)))
	if p.posBuf, err = p.context.CreateEmptyBuffer(cl.MemReadOnly, posBytes); err != nil {
		return fmt.Errorf("allocating position buffer: %w", err)
	}
	cellBytes := cellCount * int(unsafe.Sizeof(int32(0)))
	if p.cellBuf, err = p.context.CreateEmptyBuffer(cl.MemReadWrite, cellBytes); err != nil {
		return fmt.Errorf("allocating cell buffer: %w", err)
	}
	return nil
}

func (p *openCLGridProjector) Project(particles []sim.Particle, scale float64) (sim.Grid, error) {
	var grid sim.Grid
	n := len(particles)
	if n == 0 {
		return grid, nil
	}
	if n > p.capacity {
		return grid, fmt.Errorf("projecting %d particles exceeds OpenCL capacity %d", n, p.capacity)
	}
	for i, part := range particles {
		p.positions[2*i] = float32(part.Position.X)
		p.positions[2*i+1] = float32(part.Position.Y)
	}
	if _, err := p.queue.EnqueueWriteBufferFloat32(p.posBuf, false, 0, p.positions[:2*n], nil); err != nil {
		return grid, fmt.Errorf("uploading positions: %w", err)
	}
	cellBytes := cellCount * int(unsafe.Sizeof(int32(0)))
	if _, err := p.queue.EnqueueWriteBuffer(p.cellBuf, false, 0, cellBytes, unsafe.Pointer(&p.zeros[0]), nil); err != nil {
		return grid, fmt.Errorf("clearing cells: %w", err)
	}
	if err := p.kernel.SetArgs(int32(n), float32(1/scale), int32(sim.GridSize), p.posBuf, p.cellBuf); err != nil {
		return grid, fmt.Errorf("setting kernel args: %w", err)
	}
	if _, err := p.queue.EnqueueNDRangeKernel(p.kernel, nil, []int{n}, nil, nil); err != nil {
		return grid, fmt.Errorf("enqueueing projection kernel: %w", err)
	}
	if _, err := p.queue.EnqueueReadBuffer(p.cellBuf, true, 0, cellBytes, unsafe.Pointer(&p.cells[0]), nil); err != nil {
		return grid, fmt.Errorf("reading cells: %w", err)
	}
	for col := 0; col < sim.GridSize; col++ {
		for row := 0; row < sim.GridSize; row++ {
			grid[col][row] = p.cells[col*sim.GridSize+row] != 0
		}
	}
	return grid, nil
}

func (p *openCLGridProjector) Close() {
	if p.cellBuf != nil {
		p.cellBuf.Release()
	}
	if p.posBuf != nil {
		p.posBuf.Release()
	}
	if p.kernel != nil {
		p.kernel.Release()
	}
	if p.program != nil {
		p.program.Release()
	}
	if p.queue != nil {
		p.queue.Release()
	}
	if p.context != nil {
		p.context.Release()
	}
}

func (p *openCLGridProjector) DeviceName() string { return p.deviceName }
