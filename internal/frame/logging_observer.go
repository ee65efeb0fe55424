package frame

import "log/slog"

// LoggingObserver logs every table event at debug level
type LoggingObserver struct {
	logger *slog.Logger
	runID  string
}

// NewLoggingObserver creates an observer that tags events with runID.
// A nil logger falls back to slog.Default().
func NewLoggingObserver(logger *slog.Logger, runID string) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
		runID:  runID,
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("table_op",
		"event", event.Type,
		"run_id", lo.runID,
		"timestamp", event.Timestamp,
		"columns", event.Columns,
		"data", event.Data,
	)
}
