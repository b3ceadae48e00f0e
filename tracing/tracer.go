package tracing

// A Tracer collects dispatch records from hooked slots.
type Tracer interface {
	// StartDispatch is called when a dispatch enters the traced slot. The
	// record carries the start time only.
	StartDispatch(r DispatchRecord)

	// EndDispatch is called when the dispatch unwinds back out of the
	// traced slot. The record carries both timestamps.
	EndDispatch(r DispatchRecord)
}
