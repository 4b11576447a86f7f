// Package cpu implements the flat-buffer kernels behind ndarray's Vector and Matrix.
//
// Kernels operate on row-major []float64 buffers and always allocate their
// output; inputs are never written. Shapes are validated by the caller, so a
// kernel receiving inconsistent lengths panics with a descriptive message.
package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
)

// CPUBackend runs array kernels on the CPU using gonum routines, splitting
// large buffers across goroutines according to its parallel.Config.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a CPU backend with the given parallel configuration.
func New(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the parallel configuration the backend was built with.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}
