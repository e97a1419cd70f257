package metrics

import "time"

// OutcomeLabel enumerates render outcome categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFatal   OutcomeLabel = "fatal"
)

// Recorder defines observability hooks for document rendering. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be cheap and
// safe to call from rendering hot paths.
type Recorder interface {
	ObserveRenderDuration(d time.Duration)
	ObserveOutputSize(bytes int)
	IncNode(kind string)
	IncRenderOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) ObserveOutputSize(int)               {}
func (NoopRecorder) IncNode(string)                      {}
func (NoopRecorder) IncRenderOutcome(OutcomeLabel)       {}
