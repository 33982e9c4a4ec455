package metrics

import "time"

// OutcomeLabel enumerates resolve outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid" // Configuration error
	OutcomeFailed  OutcomeLabel = "failed"  // Any other failure
)

// Recorder defines observability hooks for navigation resolution and site generation.
type Recorder interface {
	ObserveResolveDuration(d time.Duration)
	IncResolveOutcome(outcome OutcomeLabel)
	ObserveStageDuration(stage string, d time.Duration)
	SetDocuments(n int)
	SetMenuEntries(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolveDuration(time.Duration)       {}
func (NoopRecorder) IncResolveOutcome(OutcomeLabel)             {}
func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) SetDocuments(int)                           {}
func (NoopRecorder) SetMenuEntries(int)                         {}
