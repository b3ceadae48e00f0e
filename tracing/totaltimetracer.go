package tracing

import "sync"

// TotalTimeTracer collects the total time spent in dispatches through traced
// slots. If two dispatches overlap, their durations are simply added
// together.
type TotalTimeTracer struct {
	filter DispatchFilter

	lock      sync.Mutex
	totalTime float64
}

// NewTotalTimeTracer creates a new TotalTimeTracer. A nil filter accepts
// every dispatch.
func NewTotalTimeTracer(filter DispatchFilter) *TotalTimeTracer {
	return &TotalTimeTracer{
		filter: filter,
	}
}

// TotalTime returns the time spent in recorded dispatches, in seconds.
func (t *TotalTimeTracer) TotalTime() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.totalTime
}

// StartDispatch does nothing.
func (t *TotalTimeTracer) StartDispatch(_ DispatchRecord) {
	// Do nothing
}

// EndDispatch adds the dispatch duration to the total.
func (t *TotalTimeTracer) EndDispatch(r DispatchRecord) {
	if t.filter != nil && !t.filter(r) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.totalTime += r.Duration()
}
