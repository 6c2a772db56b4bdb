package timing

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Measurement aggregates the observed durations for a single label.
type Measurement struct {
	Count int           `json:"count"`
	Total time.Duration `json:"total"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
}

// Recorder measures named durations and keeps a per-label aggregate.
// It is safe for concurrent use.
type Recorder struct {
	logger *zap.Logger

	mu      sync.Mutex
	byLabel map[string]*Measurement
}

// NewRecorder creates a recorder that debug-logs every observation.
func NewRecorder(logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		logger:  logger,
		byLabel: make(map[string]*Measurement),
	}
}

// Start begins measuring under label and returns the function that ends the
// measurement. The usual form is:
//
//	end := recorder.Start("load:clothing")
//	defer end()
func (r *Recorder) Start(label string) func() {
	begin := time.Now()
	return func() {
		r.observe(label, time.Since(begin))
	}
}

// Measure runs fn and records its duration under label, regardless of whether
// fn returned an error.
func (r *Recorder) Measure(label string, fn func() error) error {
	defer r.Start(label)()
	return fn()
}

func (r *Recorder) observe(label string, d time.Duration) {
	r.mu.Lock()
	m, ok := r.byLabel[label]
	if !ok {
		m = &Measurement{Min: d}
		r.byLabel[label] = m
	}
	m.Count++
	m.Total += d
	if d < m.Min {
		m.Min = d
	}
	if d > m.Max {
		m.Max = d
	}
	r.mu.Unlock()

	r.logger.Debug("Duration recorded",
		zap.String("label", label),
		zap.Duration("duration", d),
	)
}

// Snapshot returns a copy of all measurements keyed by label.
func (r *Recorder) Snapshot() map[string]Measurement {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Measurement, len(r.byLabel))
	for label, m := range r.byLabel {
		out[label] = *m
	}
	return out
}
