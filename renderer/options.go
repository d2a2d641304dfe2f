package renderer

import (
	"runtime"

	"github.com/yanky319/Ray-tracing/tracer"
)

// The number of cpus that are not used for rendering by default.
const reservedCPUs = 2

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Recursion limit and contribution threshold for secondary rays.
	MaxDepth int
	MinK     float64

	// Number of render workers.
	Threads int

	// Anti-aliasing; when enabled Rays additional jittered rays are cast
	// through each pixel.
	SuperSampling bool
	Rays          int

	// Soft shadows; when enabled ShadowRays additional shadow rays are cast
	// towards each area light.
	SoftShadows bool
	ShadowRays  int

	// Seed for the per-worker random sources.
	Seed int64
}

// Get the default render options. The frame dimensions must still be set.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   tracer.DefaultMaxDepth,
		MinK:       tracer.DefaultMinK,
		Threads:    DefaultThreads(),
		Rays:       64,
		ShadowRays: 64,
		Seed:       1,
	}
}

// DefaultThreads returns the number of available cpus minus a reserved
// margin, but at least 1.
func DefaultThreads() int {
	threads := runtime.NumCPU() - reservedCPUs
	if threads < 1 {
		threads = 1
	}
	return threads
}

func (o Options) tracerOptions() tracer.Options {
	return tracer.Options{
		MaxDepth:    o.MaxDepth,
		MinK:        o.MinK,
		SoftShadows: o.SoftShadows,
		ShadowRays:  o.ShadowRays,
	}
}
