package metrics

import (
	"context"
	"sync"
	"time"
)

// Tracer starts spans around engine operations. The interface is small on
// purpose so that the OpenTelemetry adapter (build tag "otel"), the
// in-memory SimpleTracer and the NoOpTracer are interchangeable.
type Tracer interface {
	// StartSpan starts a new span with the given name. The returned
	// SpanEnder must be called exactly once; pass nil for success or an
	// error to mark the span as failed.
	StartSpan(ctx context.Context, name string) (context.Context, SpanEnder)
}

// SpanEnder is a function that ends a span.
type SpanEnder func(err error)

// NoOpTracer is a tracer that does nothing. It is the default when tracing
// is not configured.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op end function.
func (NoOpTracer) StartSpan(ctx context.Context, name string) (context.Context, SpanEnder) {
	return ctx, func(error) {}
}

// SimpleTracer records completed spans in memory. Useful for tests and for
// the CLI's -tracing simple mode.
type SimpleTracer struct {
	mu    sync.Mutex
	spans []RecordedSpan
}

// RecordedSpan is a completed span captured by SimpleTracer.
type RecordedSpan struct {
	Name     string
	Start    time.Time
	Duration time.Duration
	Err      error
}

// NewSimpleTracer creates an in-memory tracer.
func NewSimpleTracer() *SimpleTracer {
	return &SimpleTracer{}
}

// StartSpan records the span when the returned SpanEnder is called.
func (t *SimpleTracer) StartSpan(ctx context.Context, name string) (context.Context, SpanEnder) {
	start := time.Now()
	return ctx, func(err error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.spans = append(t.spans, RecordedSpan{
			Name:     name,
			Start:    start,
			Duration: time.Since(start),
			Err:      err,
		})
	}
}

// Spans returns a copy of the recorded spans.
func (t *SimpleTracer) Spans() []RecordedSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]RecordedSpan, len(t.spans))
	copy(out, t.spans)
	return out
}

// Reset discards all recorded spans.
func (t *SimpleTracer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = nil
}
