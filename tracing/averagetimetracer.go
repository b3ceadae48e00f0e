package tracing

import "sync"

// AverageTimeTracer collects the average latency of dispatches through
// traced slots.
type AverageTimeTracer struct {
	filter DispatchFilter

	lock          sync.Mutex
	averageTime   float64
	dispatchCount uint64
}

// NewAverageTimeTracer creates a new AverageTimeTracer. A nil filter accepts
// every dispatch.
func NewAverageTimeTracer(filter DispatchFilter) *AverageTimeTracer {
	return &AverageTimeTracer{
		filter: filter,
	}
}

// AverageTime returns the mean duration of recorded dispatches, in seconds.
func (t *AverageTimeTracer) AverageTime() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.averageTime
}

// TotalCount returns the number of recorded dispatches.
func (t *AverageTimeTracer) TotalCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.dispatchCount
}

// StartDispatch does nothing.
func (t *AverageTimeTracer) StartDispatch(_ DispatchRecord) {
	// Do nothing
}

// EndDispatch folds the dispatch duration into the running mean.
func (t *AverageTimeTracer) EndDispatch(r DispatchRecord) {
	if t.filter != nil && !t.filter(r) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.averageTime = (t.averageTime*float64(t.dispatchCount) + r.Duration()) /
		float64(t.dispatchCount+1)
	t.dispatchCount++
}
