//go:build !otel
// +build !otel

package metrics

// OTelEnabled reports whether OpenTelemetry support is built in.
func OTelEnabled() bool {
	return false
}

// NewTracerForMode returns a tracer for the CLI -tracing flag value.
// Without the otel build tag, "otel" falls back to the in-memory tracer.
func NewTracerForMode(mode string) Tracer {
	switch mode {
	case "simple", "otel":
		return NewSimpleTracer()
	default:
		return NoOpTracer{}
	}
}
