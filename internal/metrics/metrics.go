package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	runs        int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dashboard activity.
// When telemetry is enabled the same events are forwarded to OpenTelemetry.
type Recorder struct {
	mu           sync.Mutex
	queries      map[string]*queryStats
	loads        int
	loadFailures int
	lastLoadRows int
	chatMatched  int
	chatDefault  int
	httpRoutes   map[string]int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		queries:    make(map[string]*queryStats),
		httpRoutes: make(map[string]int),
		otel:       otel,
	}
}

// RecordDatasetLoad tracks a dataset load attempt from the named source.
func (r *Recorder) RecordDatasetLoad(source string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.loads++
	if err != nil {
		r.loadFailures++
	} else {
		r.lastLoadRows = rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetLoad(source, rows, duration, err)
	}
}

// RecordQuery increments counters for an analysis query and stores its last latency.
func (r *Recorder) RecordQuery(id string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.queries[id]
	if !ok {
		stats = &queryStats{}
		r.queries[id] = stats
	}
	stats.runs++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(id, duration, err)
	}
}

// RecordChatReply tracks whether a chatbot reply matched a corpus entry or fell back to the default.
func (r *Recorder) RecordChatReply(matched bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if matched {
		r.chatMatched++
	} else {
		r.chatDefault++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordChatReply(matched)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics keyed by route pattern.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.httpRoutes[path]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many requests were recorded for a route pattern.
func (r *Recorder) HTTPRequests(path string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.httpRoutes[path]
}

// QuerySnapshot is a copy of the stats for one query.
type QuerySnapshot struct {
	Runs        int
	Errors      int
	LastLatency time.Duration
}

// Snapshot is a copy of the recorder state.
type Snapshot struct {
	Loads        int
	LoadFailures int
	LastLoadRows int
	ChatMatched  int
	ChatDefault  int
}

// Query returns a copy of the current stats for the query.
func (r *Recorder) Query(id string) QuerySnapshot {
	if r == nil {
		return QuerySnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.queries[id]; ok && stats != nil {
		return QuerySnapshot{Runs: stats.runs, Errors: stats.errors, LastLatency: stats.lastLatency}
	}
	return QuerySnapshot{}
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Loads:        r.loads,
		LoadFailures: r.loadFailures,
		LastLoadRows: r.lastLoadRows,
		ChatMatched:  r.chatMatched,
		ChatDefault:  r.chatDefault,
	}
}
