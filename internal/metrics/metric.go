package metrics

import "github.com/san-kum/rover/internal/rover"

// Metric accumulates a single value from the steps of one rover run.
type Metric interface {
	Name() string
	Observe(s rover.Step)
	Value() float64
	Reset()
}

// Default returns a fresh set of the standard metrics.
func Default() []Metric {
	return []Metric{
		NewCommands(),
		NewDistance(),
		NewRotations(),
		NewRejected(),
		NewCoverage(),
	}
}

// Recorder is a rover.Observer that keeps the step trace and feeds every
// step to its metrics.
type Recorder struct {
	metrics []Metric
	trace   []rover.Step
}

func NewRecorder(metrics ...Metric) *Recorder {
	for _, m := range metrics {
		m.Reset()
	}
	return &Recorder{metrics: metrics}
}

func (r *Recorder) OnStep(s rover.Step) {
	r.trace = append(r.trace, s)
	for _, m := range r.metrics {
		m.Observe(s)
	}
}

// Trace returns the recorded steps in processing order.
func (r *Recorder) Trace() []rover.Step { return r.trace }

// Values snapshots every metric by name.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
