package tracing

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter is a tracer that stores completed dispatches in a CSV file.
type CSVTraceWriter struct {
	path string
	file *os.File

	lock       sync.Mutex
	records    []DispatchRecord
	bufferSize int
}

// NewCSVTraceWriter creates a new CSVTraceWriter. Init must be called before
// the writer receives dispatches.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the trace file. An empty path gets a generated name. Init
// refuses to overwrite an existing file.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "safehook_trace_" + xid.New().String()
	}

	filename := t.path + ".csv"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "ID, Slot, Detail, Start, End\n")

	atexit.Register(func() {
		t.Flush()

		err := t.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// StartDispatch does nothing; only completed dispatches are written.
func (t *CSVTraceWriter) StartDispatch(_ DispatchRecord) {
	// Do nothing
}

// EndDispatch buffers the completed dispatch.
func (t *CSVTraceWriter) EndDispatch(r DispatchRecord) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.records = append(t.records, r)
	if len(t.records) >= t.bufferSize {
		t.flushLocked()
	}
}

// Flush writes all buffered dispatches to the file.
func (t *CSVTraceWriter) Flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.flushLocked()
}

func (t *CSVTraceWriter) flushLocked() {
	for _, r := range t.records {
		fmt.Fprintf(t.file, "%s, %s, %s, %.10f, %.10f\n",
			r.ID,
			r.Slot,
			r.Detail,
			r.StartTime,
			r.EndTime,
		)
	}

	t.records = nil
}
