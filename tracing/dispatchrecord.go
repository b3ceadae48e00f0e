// Package tracing observes dispatches that traverse hookable slots. A trace
// hook attaches to a slot and feeds per-dispatch records to tracers.
package tracing

import "time"

// A DispatchRecord describes one journey of a call through a hooked slot.
type DispatchRecord struct {
	ID        string
	Slot      string
	Detail    string
	StartTime float64
	EndTime   float64
}

// Duration returns the time the dispatch took, in seconds.
func (r DispatchRecord) Duration() float64 {
	return r.EndTime - r.StartTime
}

// A DispatchFilter selects the dispatches a tracer is interested in. The
// dispatch is recorded if this function returns true.
type DispatchFilter func(r DispatchRecord) bool

// A TimeTeller can tell the current time, in seconds.
type TimeTeller interface {
	Now() float64
}

// WallClock is a TimeTeller backed by real time.
type WallClock struct{}

// Now returns the wall-clock time in seconds since the Unix epoch.
func (WallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
