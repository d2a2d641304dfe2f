package renderer

import "time"

type TracerStat struct {
	// The worker id.
	Id string

	// The number of pixels rendered by the worker and the percentage of
	// the frame they represent.
	Pixels       int
	FramePercent float32

	// True if the worker stopped due to a fault.
	Failed bool

	// Time spent rendering.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
