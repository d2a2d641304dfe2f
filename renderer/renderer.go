package renderer

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yanky319/Ray-tracing/log"
	"github.com/yanky319/Ray-tracing/scene"
	"github.com/yanky319/Ray-tracing/tracer"
	"github.com/yanky319/Ray-tracing/types"
)

// The PixelSink interface is implemented by frame buffers that receive
// rendered pixels. WritePixel is called concurrently from all render workers
// but never twice for the same pixel.
type PixelSink interface {
	WritePixel(col, row int, c types.Color)
}

// A ProgressFunc receives the render completion percentage. Values are
// reported in non-decreasing order and each value is reported at most once.
type ProgressFunc func(percent int)

// Renderer renders a compiled scene using a pool of CPU workers.
type Renderer struct {
	logger log.Logger

	scene *scene.Scene
	opts  Options

	stats FrameStats
}

// Create a renderer for a compiled scene.
func New(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if !sc.Compiled() {
		return nil, ErrSceneNotCompiled
	}
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return nil, ErrInvalidFrame
	}
	if opts.Threads <= 0 {
		opts.Threads = DefaultThreads()
	}

	return &Renderer{
		logger: log.New("renderer"),
		scene:  sc,
		opts:   opts,
	}, nil
}

// Render the frame into sink. The call blocks until all workers exit. If
// any worker fails the remaining workers still complete the frame and an
// error wrapping ErrWorkerFault is returned.
func (r *Renderer) Render(sink PixelSink, progress ProgressFunc) error {
	cursor := tracer.NewPixelCursor(r.opts.FrameW, r.opts.FrameH)
	reporter := newProgressReporter(cursor.Total(), progress, r.logger)

	r.logger.Noticef(
		"rendering %dx%d frame using %d workers (max depth: %d, anti-aliasing: %t, soft shadows: %t)",
		r.opts.FrameW, r.opts.FrameH, r.opts.Threads, r.opts.MaxDepth, r.opts.SuperSampling, r.opts.SoftShadows,
	)

	workerStats := make([]TracerStat, r.opts.Threads)
	var faults int32
	var wg sync.WaitGroup

	start := time.Now()
	wg.Add(r.opts.Threads)
	for id := 0; id < r.opts.Threads; id++ {
		go func(id int) {
			defer wg.Done()
			if !r.work(id, cursor, sink, reporter, &workerStats[id]) {
				atomic.AddInt32(&faults, 1)
			}
		}(id)
	}
	wg.Wait()

	r.stats = FrameStats{
		Tracers:    workerStats,
		RenderTime: time.Since(start),
	}
	for index := range workerStats {
		workerStats[index].FramePercent = float32(100 * float64(workerStats[index].Pixels) / float64(cursor.Total()))
	}

	if faults > 0 {
		return fmt.Errorf("%w: %d of %d workers failed", ErrWorkerFault, faults, r.opts.Threads)
	}

	reporter.finish()
	r.logger.Noticef("rendered frame in %d ms", r.stats.RenderTime.Nanoseconds()/1e6)
	return nil
}

// Get the statistics of the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Render pixels until the cursor is exhausted. Returns false if the worker
// was stopped by a panic.
func (r *Renderer) work(id int, cursor *tracer.PixelCursor, sink PixelSink, reporter *progressReporter, stat *TracerStat) (ok bool) {
	stat.Id = fmt.Sprintf("cpu-%d", id)
	start := time.Now()
	defer func() {
		stat.RenderTime = time.Since(start)
		if err := recover(); err != nil {
			r.logger.Errorf("worker %s stopped after %d pixels: %v", stat.Id, stat.Pixels, err)
			stat.Failed = true
			ok = false
		}
	}()

	rnd := rand.New(rand.NewSource(r.opts.Seed + int64(id)))
	tr := tracer.New(r.scene, r.opts.tracerOptions(), rnd)
	for {
		col, row, more := cursor.Next()
		if !more {
			return true
		}

		sink.WritePixel(col, row, r.renderPixel(tr, rnd, col, row))
		stat.Pixels++
		reporter.pixelDone()
	}
}

// Trace the primary ray through the pixel center and, with anti-aliasing
// enabled, average it with a beam of jittered rays.
func (r *Renderer) renderPixel(tr *tracer.Tracer, rnd *rand.Rand, col, row int) types.Color {
	cam := r.scene.Camera
	if !r.opts.SuperSampling || r.opts.Rays <= 0 {
		return tr.Trace(cam.ConstructRay(r.opts.FrameW, r.opts.FrameH, col, row, r.scene.ViewPlane))
	}
	return tr.TraceBeam(cam.ConstructBeam(r.opts.FrameW, r.opts.FrameH, col, row, r.scene.ViewPlane, r.opts.Rays, rnd))
}
