package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals which project parts are about to be resolved.
	EmitPlan(ctx context.Context, partNames []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute on the span when it starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// ProgressRecorder records per project part progress.
type ProgressRecorder interface {
	// Vertex starts tracking the resolution of the named project part.
	Vertex(name string) ProgressVertex
	// Close flushes and releases the recorder.
	Close() error
}

// ProgressVertex is the progress of a single project part.
type ProgressVertex interface {
	// Stdout returns a writer for the vertex's output.
	Stdout() io.Writer
	// Cached marks the vertex as served from stored data.
	Cached()
	// Complete marks the vertex as finished.
	Complete(err error)
}
