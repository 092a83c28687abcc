// Package statement finds the extent of the logical statement that contains a
// given line of R-like source code.
//
// A statement ends at a line break only when every bracket opened so far is
// closed and the line does not end in a binary operator. The resolver scans
// outward from the starting line in both directions, jumping over bracketed
// groups, until both ends reach such a break.
package statement

import (
	"errors"
	"fmt"
)

// DefaultScanLimitFactor bounds a resolution to this many steps per scanned
// position.
const DefaultScanLimitFactor = 4

var (
	// ErrAborted is wrapped by every reason a resolution can fail.
	ErrAborted = errors.New("statement: resolution aborted")

	ErrMismatchedDelimiter   = fmt.Errorf("%w: mismatched delimiter", ErrAborted)
	ErrUnterminatedDelimiter = fmt.Errorf("%w: unterminated delimiter", ErrAborted)
	ErrScanLimit             = fmt.Errorf("%w: scan limit exceeded", ErrAborted)
	ErrLineOutOfRange        = fmt.Errorf("%w: line out of range", ErrAborted)
)

// Range is an inclusive, 0-based span of lines.
type Range struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func (r Range) Contains(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// Len is the number of lines in the range.
func (r Range) Len() int {
	return r.EndLine - r.StartLine + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.StartLine, r.EndLine)
}

type Resolver struct {
	scanLimitFactor int
}

type Option func(*Resolver)

// WithScanLimitFactor changes how many steps per scanned position a
// resolution may take before it gives up.
func WithScanLimitFactor(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.scanLimitFactor = n
		}
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{scanLimitFactor: DefaultScanLimitFactor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve returns the lines of the statement containing startLine, or just
// startLine when the brackets around it do not balance.
func Resolve(startLine int, src Source) Range {
	return defaultResolver.Resolve(startLine, src)
}

// Extend is like Resolve but also reports why a resolution fell back to a
// single line.
func Extend(startLine int, src Source) (Range, error) {
	return defaultResolver.Extend(startLine, src)
}

// Statements splits src into consecutive statements.
func Statements(src Source) []Range {
	return defaultResolver.Statements(src)
}

func Spans(src Source) []Span {
	return defaultResolver.Spans(src)
}

func (r *Resolver) Resolve(startLine int, src Source) Range {
	rng, _ := r.Extend(startLine, src)
	return rng
}

func (r *Resolver) Extend(startLine int, src Source) (Range, error) {
	fallback := Range{StartLine: startLine, EndLine: startLine}
	lineCount := src.LineCount()
	if startLine < 0 || startLine >= lineCount {
		return fallback, fmt.Errorf("%w: %d not in [0, %d)", ErrLineOutOfRange, startLine, lineCount)
	}

	s := &scan{
		cache:           newLineCache(src),
		lineCount:       lineCount,
		scanLimitFactor: r.scanLimitFactor,
	}
	rng, err := s.resolve(startLine)
	if err != nil {
		return fallback, err
	}
	return rng, nil
}

// Span is one statement found by Spans. Err is set when the resolver gave up
// and the span is just the line it started from.
type Span struct {
	Range
	Err error
}

// Statements walks src from the top, resolving the first code line not yet
// covered. Lines holding only whitespace or comments are skipped. A line whose
// resolution fails, or reaches back into an earlier statement, stands alone.
func (r *Resolver) Statements(src Source) []Range {
	var out []Range
	for _, span := range r.Spans(src) {
		out = append(out, span.Range)
	}
	return out
}

// Spans is Statements with the reason each fallback span stands alone.
func (r *Resolver) Spans(src Source) []Span {
	var out []Span
	lineCount := src.LineCount()
	for line := 0; line < lineCount; {
		if IsBlank(src.Line(line)) {
			line++
			continue
		}
		rng, err := r.Extend(line, src)
		if err == nil && rng.StartLine < line {
			rng = Range{StartLine: line, EndLine: line}
		}
		out = append(out, Span{Range: rng, Err: err})
		line = rng.EndLine + 1
	}
	return out
}

type frontier struct {
	pos      Position
	finished bool
}

// frontiers holds the furthest position reached in each direction.
type frontiers struct {
	backward frontier
	forward  frontier
}

func (f *frontiers) in(dir Direction) *frontier {
	if dir == Forward {
		return &f.forward
	}
	return &f.backward
}

// scan is the state of one resolution.
type scan struct {
	cache           *lineCache
	lineCount       int
	steps           int
	scanLimitFactor int
}

// move advances one position and charges it against the scan budget.
func (s *scan) move(p Position, dir Direction) (step, error) {
	s.steps++
	if s.steps > s.scanLimitFactor*s.cache.cells+64 {
		return step{pos: p}, fmt.Errorf("%w after %d steps", ErrScanLimit, s.steps)
	}
	return s.advance(p, dir), nil
}

func (s *scan) resolve(line int) (Range, error) {
	fr := frontiers{
		backward: frontier{pos: At(line, 0)},
		forward:  frontier{pos: BeforeFirst(line)},
	}

	dir := Forward
	for !fr.backward.finished || !fr.forward.finished {
		st, code, hasCode, err := s.scanToDelimiterOrBoundary(fr.in(dir).pos, dir)
		if err != nil {
			return Range{}, err
		}

		switch {
		case st.hasChar && isDelimiter(st.char):
			dir = searchDirection(st.char)
			active, other := fr.in(dir), fr.in(dir.Opposite())
			active.finished = false
			active.pos = furthest(active.pos, st.pos, dir)
			other.pos = furthest(other.pos, st.pos, dir.Opposite())

			match, err := s.findMatch(st.char, active.pos, dir)
			if err != nil {
				return Range{}, err
			}
			active.pos = match
		case st.boundary:
			active := fr.in(dir)
			if hasCode {
				active.pos = furthest(active.pos, code, dir)
			}
			active.finished = true
			dir = dir.Opposite()
		}
	}

	return Range{StartLine: fr.backward.pos.Line, EndLine: fr.forward.pos.Line}, nil
}

// scanToDelimiterOrBoundary moves from p until it lands on a bracket or ends
// the statement. It also returns the furthest code character passed on the
// way, so that continuation lines count toward the frontier.
func (s *scan) scanToDelimiterOrBoundary(p Position, dir Direction) (st step, code Position, hasCode bool, err error) {
	for {
		st, err = s.move(p, dir)
		if err != nil {
			return st, code, hasCode, err
		}
		if st.boundary || (st.hasChar && isDelimiter(st.char)) {
			return st, code, hasCode, nil
		}
		if st.hasChar && !isSpace(st.char) {
			code, hasCode = st.pos, true
		}
		p = st.pos
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
