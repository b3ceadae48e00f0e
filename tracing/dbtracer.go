package tracing

import (
	"sync"

	"github.com/rick-200/safehook/datarecording"
)

type dispatchTableEntry struct {
	ID        string
	Slot      string
	Detail    string
	StartTime float64
	EndTime   float64
}

// DBTracer stores completed dispatches through a DataRecorder backend, so
// that traces from long runs can be inspected with regular SQL tooling.
type DBTracer struct {
	filter    DispatchFilter
	tableName string

	lock    sync.Mutex
	backend datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer writing into the "dispatches" table of
// backend. A nil filter records every dispatch.
func NewDBTracer(
	backend datarecording.DataRecorder,
	filter DispatchFilter,
) *DBTracer {
	return NewDBTracerWithTable(backend, "dispatches", filter)
}

// NewDBTracerWithTable creates a DBTracer writing into a named table, so
// that several tracers can share one backend.
func NewDBTracerWithTable(
	backend datarecording.DataRecorder,
	tableName string,
	filter DispatchFilter,
) *DBTracer {
	t := &DBTracer{
		filter:    filter,
		tableName: tableName,
		backend:   backend,
	}

	backend.CreateTable(tableName, dispatchTableEntry{})

	return t
}

// StartDispatch does nothing; only completed dispatches are stored.
func (t *DBTracer) StartDispatch(_ DispatchRecord) {
	// Do nothing
}

// EndDispatch stores the completed dispatch.
func (t *DBTracer) EndDispatch(r DispatchRecord) {
	if t.filter != nil && !t.filter(r) {
		return
	}

	entry := dispatchTableEntry{
		ID:        r.ID,
		Slot:      r.Slot,
		Detail:    r.Detail,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.backend.Insert(t.tableName, entry)
}
