package dataset

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/metrics"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
)

// Loader reads a source once and turns it into a Dataset, logging and recording the outcome.
type Loader struct {
	source  sources.MatchSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewLoader builds a Loader for source. logger and recorder may be nil.
func NewLoader(source sources.MatchSource, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		source:  source,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Load returns a State instead of an error so callers can start in the halted mode.
func (l *Loader) Load(ctx context.Context) State {
	start := l.now()
	name := l.source.Name()

	rows, err := l.source.Load(ctx)
	var ds *Dataset
	if err == nil {
		ds, err = New(name, rows)
	}
	duration := l.now().Sub(start)
	l.metrics.RecordDatasetLoad(name, len(rows), duration, err)

	if err != nil {
		sources.LogWithSource(ctx, l.logger, slog.LevelError, name, "dataset load failed",
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			"error", err,
		)
		return State{Err: err}
	}

	sources.LogWithSource(ctx, l.logger, slog.LevelInfo, name, "dataset loaded",
		slog.Int(logging.FieldCount, ds.Len()),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return State{Dataset: ds}
}
