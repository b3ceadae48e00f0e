package tracing

import "github.com/rs/zerolog"

// LogTracer writes one structured log line per dispatch.
type LogTracer struct {
	logger zerolog.Logger
}

// NewLogTracer creates a LogTracer writing through the given logger.
func NewLogTracer(logger zerolog.Logger) *LogTracer {
	return &LogTracer{
		logger: logger,
	}
}

// StartDispatch logs the entry of a dispatch at debug level.
func (t *LogTracer) StartDispatch(r DispatchRecord) {
	t.logger.Debug().
		Str("slot", r.Slot).
		Str("dispatch_id", r.ID).
		Msg("dispatch start")
}

// EndDispatch logs the completed dispatch with its duration.
func (t *LogTracer) EndDispatch(r DispatchRecord) {
	t.logger.Info().
		Str("slot", r.Slot).
		Str("dispatch_id", r.ID).
		Float64("duration_sec", r.Duration()).
		Msg("dispatch complete")
}
