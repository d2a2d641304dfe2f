package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/yanky319/Ray-tracing/log"
)

// Progress is logged every time it advances by this many percent.
const progressLogStep = 10

// Aggregates pixel completions from all workers into percentage updates.
// Completions are counted atomically; the lock is only taken when the
// integer percentage changes.
type progressReporter struct {
	total int64
	done  int64

	mutex    sync.Mutex
	last     int32
	callback ProgressFunc
	logger   log.Logger
}

func newProgressReporter(total int, callback ProgressFunc, logger log.Logger) *progressReporter {
	return &progressReporter{
		total:    int64(total),
		last:     -1,
		callback: callback,
		logger:   logger,
	}
}

// Record a rendered pixel. The reported value is capped at 99 until finish
// is called.
func (p *progressReporter) pixelDone() {
	done := atomic.AddInt64(&p.done, 1)
	percent := int32(done * 100 / p.total)
	if percent > 99 {
		percent = 99
	}
	if percent <= atomic.LoadInt32(&p.last) {
		return
	}
	p.report(percent)
}

// Report 100%. Must be called after all workers have exited.
func (p *progressReporter) finish() {
	p.report(100)
}

func (p *progressReporter) report(percent int32) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	last := atomic.LoadInt32(&p.last)
	if percent <= last {
		return
	}
	atomic.StoreInt32(&p.last, percent)

	if last < 0 || percent/progressLogStep != last/progressLogStep {
		p.logger.Infof("rendered %d%% of frame", percent)
	}
	if p.callback != nil {
		p.callback(int(percent))
	}
}
