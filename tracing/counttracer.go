package tracing

import "sync"

// CountTracer counts the dispatches that traverse traced slots, per slot
// name.
type CountTracer struct {
	filter DispatchFilter

	lock      sync.Mutex
	slotNames []string
	counts    map[string]uint64
}

// NewCountTracer creates a new CountTracer. A nil filter counts everything.
func NewCountTracer(filter DispatchFilter) *CountTracer {
	return &CountTracer{
		filter: filter,
		counts: make(map[string]uint64),
	}
}

// SlotNames returns the names of all slots that have been counted, in the
// order they were first seen.
func (t *CountTracer) SlotNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.slotNames
}

// Count returns the number of dispatches recorded for a slot.
func (t *CountTracer) Count(slotName string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[slotName]
}

// TotalCount returns the number of dispatches recorded across all slots.
func (t *CountTracer) TotalCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	var total uint64
	for _, c := range t.counts {
		total += c
	}

	return total
}

// StartDispatch counts the dispatch.
func (t *CountTracer) StartDispatch(r DispatchRecord) {
	if t.filter != nil && !t.filter(r) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.counts[r.Slot]; !ok {
		t.slotNames = append(t.slotNames, r.Slot)
	}

	t.counts[r.Slot]++
}

// EndDispatch does nothing.
func (t *CountTracer) EndDispatch(_ DispatchRecord) {
	// Do nothing
}
