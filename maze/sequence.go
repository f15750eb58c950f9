package maze

import (
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridlab/trace"
)

// Sequence is the lazy, finite, single-pass output of a generator.
//
// Nothing is computed until the first instruction is requested. Ranging
// over All streams instructions straight out of the generator. The first
// call to Next runs the generator to completion into a buffer and later
// calls serve from it, so a Sequence never owns a goroutine and may simply
// be dropped. Once a consumer stops early, or the instructions run out, the
// Sequence is exhausted and yields nothing more. A Sequence is not safe for
// concurrent use.
type Sequence struct {
	id     uuid.UUID
	alg    Algorithm
	body   func(yield func(Instruction) bool)
	tracer trace.Tracer

	started bool
	done    bool
	emitted int

	// filled by the first Next
	buf []Instruction
	pos int
}

func newSequence(alg Algorithm, tracer trace.Tracer, body func(yield func(Instruction) bool)) *Sequence {
	return &Sequence{
		id:     uuid.New(),
		alg:    alg,
		body:   body,
		tracer: tracer,
	}
}

// ID identifies this run, e.g. for a playback consumer juggling several.
func (s *Sequence) ID() uuid.UUID { return s.id }

// Algorithm reports which generator produces the instructions.
func (s *Sequence) Algorithm() Algorithm { return s.alg }

// Emitted is the number of instructions handed out so far.
func (s *Sequence) Emitted() int { return s.emitted }

// Done reports whether the Sequence is exhausted.
func (s *Sequence) Done() bool { return s.done }

// run drives the generator once inside a trace span.
func (s *Sequence) run(yield func(Instruction) bool) {
	span := s.tracer.Begin("maze",
		slog.String("algorithm", string(s.alg)),
		slog.String("id", s.id.String()),
	)
	n, stopped := 0, false
	s.body(func(in Instruction) bool {
		n++
		if !yield(in) {
			stopped = true
			return false
		}
		return true
	})
	span.End(
		slog.Int("instructions", n),
		slog.Bool("stopped", stopped),
	)
}

// All returns the remaining instructions as a range-over-func iterator.
// Breaking out of the loop ends the Sequence.
func (s *Sequence) All() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		if s.done {
			return
		}
		if s.buf != nil {
			for {
				in, ok := s.Next()
				if !ok {
					return
				}
				if !yield(in) {
					s.Stop()
					return
				}
			}
		}
		if s.started {
			return
		}
		s.started = true
		s.run(func(in Instruction) bool {
			s.emitted++
			return yield(in)
		})
		s.done = true
	}
}

// Next returns the next instruction, or false once the Sequence is done.
func (s *Sequence) Next() (Instruction, bool) {
	if s.done {
		return Instruction{}, false
	}
	if !s.started {
		s.started = true
		s.buf = []Instruction{}
		s.run(func(in Instruction) bool {
			s.buf = append(s.buf, in)
			return true
		})
	}
	if s.pos >= len(s.buf) {
		s.Stop()
		return Instruction{}, false
	}
	in := s.buf[s.pos]
	s.pos++
	s.emitted++
	return in, true
}

// Stop abandons the Sequence. It is safe to call more than once and after
// the Sequence is exhausted.
func (s *Sequence) Stop() {
	s.started = true
	s.done = true
	s.buf = nil
}

// Collect drains the remaining instructions into a slice.
func (s *Sequence) Collect() []Instruction {
	var out []Instruction
	for in := range s.All() {
		out = append(out, in)
	}
	return out
}
