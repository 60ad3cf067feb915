// Package telemetry provides timing spans for pipeline stages.
//
// Collectors travel through context so instrumentation stays out of
// function signatures; when no collector is installed, FromContext returns
// a no-op implementation with zero overhead. Spans nest via Child and are
// reported as an indented tree after the run.
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	span := telemetry.FromContext(ctx).Start("analyze statement.txt")
//	extract := span.Child("extract pages")
//	// ... work ...
//	extract.End()
//	span.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"

	"passbook/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timing spans for one run.
type Collector interface {
	// Start opens a top-level span. End it when the operation completes.
	Start(name string) Span

	// Report writes the collected spans to w. Styles may be nil for
	// unstyled output.
	Report(w io.Writer, styles *output.Styles)
}

// Span tracks one timed operation and can open nested child spans.
type Span interface {
	End()
	Child(name string) Span
}

// WithCollector installs a collector into the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the context's collector, or a no-op collector when
// none is installed.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(string) Span                { return noOpSpan{} }
func (noOpCollector) Report(io.Writer, *output.Styles) {}

type noOpSpan struct{}

func (noOpSpan) End()              {}
func (noOpSpan) Child(string) Span { return noOpSpan{} }
