// Package trace is the optional timing observer for gridlab's engines.
//
// Engines call Begin when a search or maze run starts and End on the
// returned Span when it finishes, passing counters such as visited cells or
// emitted instructions. The default tracer does nothing; NewSlog reports each
// span through a *slog.Logger and Recorder keeps spans in memory for tests.
package trace

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Tracer starts spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Begin(op string, attrs ...slog.Attr) Span
}

// Span is one timed operation.
type Span interface {
	End(attrs ...slog.Attr)
}

// Nop returns a Tracer that records nothing.
func Nop() Tracer { return nopTracer{} }

type nopTracer struct{}

func (nopTracer) Begin(string, ...slog.Attr) Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) End(...slog.Attr) {}

// Slog reports finished spans at a fixed level.
type Slog struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog returns a tracer logging through l at Debug level.
// A nil logger falls back to slog.Default().
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{logger: l, level: slog.LevelDebug}
}

// WithLevel returns a copy of s that logs at lvl.
func (s *Slog) WithLevel(lvl slog.Level) *Slog {
	cp := *s
	cp.level = lvl
	return &cp
}

// Begin implements Tracer.
func (s *Slog) Begin(op string, attrs ...slog.Attr) Span {
	return &slogSpan{parent: s, op: op, attrs: attrs, began: time.Now()}
}

type slogSpan struct {
	parent *Slog
	op     string
	attrs  []slog.Attr
	began  time.Time
}

func (sp *slogSpan) End(attrs ...slog.Attr) {
	all := make([]slog.Attr, 0, len(sp.attrs)+len(attrs)+2)
	all = append(all, slog.String("op", sp.op), slog.Duration("elapsed", time.Since(sp.began)))
	all = append(all, sp.attrs...)
	all = append(all, attrs...)
	sp.parent.logger.LogAttrs(context.Background(), sp.parent.level, "[gridlab] "+sp.op+" done", all...)
}

// Record is a finished span captured by Recorder.
type Record struct {
	Op      string
	Attrs   []slog.Attr
	Elapsed time.Duration
}

// Int returns the int64 value of the attribute named key, if present.
func (r Record) Int(key string) (int64, bool) {
	for _, a := range r.Attrs {
		if a.Key == key && a.Value.Kind() == slog.KindInt64 {
			return a.Value.Int64(), true
		}
	}
	return 0, false
}

// Recorder keeps every finished span in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Begin implements Tracer.
func (r *Recorder) Begin(op string, attrs ...slog.Attr) Span {
	return &recSpan{rec: r, op: op, attrs: attrs, began: time.Now()}
}

// Records returns a copy of the finished spans in completion order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

type recSpan struct {
	rec   *Recorder
	op    string
	attrs []slog.Attr
	began time.Time
}

func (sp *recSpan) End(attrs ...slog.Attr) {
	all := append(append([]slog.Attr(nil), sp.attrs...), attrs...)
	sp.rec.mu.Lock()
	sp.rec.records = append(sp.rec.records, Record{Op: sp.op, Attrs: all, Elapsed: time.Since(sp.began)})
	sp.rec.mu.Unlock()
}
