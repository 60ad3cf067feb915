package telemetry

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"passbook/output"
)

// slowThreshold marks spans worth highlighting in the report.
const slowThreshold = 100 * time.Millisecond

// TimingCollector records spans in start order with their nesting depth.
type TimingCollector struct {
	mu    sync.Mutex
	spans []*span
}

type span struct {
	name  string
	depth int
	start time.Time
	dur   time.Duration
	done  bool
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start opens a top-level span.
func (c *TimingCollector) Start(name string) Span {
	return c.add(name, 0)
}

func (c *TimingCollector) add(name string, depth int) Span {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &span{name: name, depth: depth, start: time.Now()}
	c.spans = append(c.spans, s)
	return &timingSpan{collector: c, span: s}
}

// Report writes the spans as an indented tree, in start order. Unfinished
// spans are reported with the time elapsed so far.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.spans {
		dur := s.dur
		if !s.done {
			dur = time.Since(s.start)
		}

		name := s.name
		timing := formatDuration(dur)
		if styles != nil {
			if s.depth == 0 {
				name = styles.Keyword(name)
			}
			timing = styles.Timing(timing, dur >= slowThreshold)
		}
		_, _ = fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", s.depth), name, timing)
	}
}

type timingSpan struct {
	collector *TimingCollector
	span      *span
}

// End stops the span.
func (t *timingSpan) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	if !t.span.done {
		t.span.dur = time.Since(t.span.start)
		t.span.done = true
	}
}

// Child opens a nested span one level below this one.
func (t *timingSpan) Child(name string) Span {
	return t.collector.add(name, t.span.depth+1)
}

// formatDuration prints milliseconds below one second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
