package statement

import "fmt"

type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// PositionKind tells whether a Position sits on a real character or on one of
// the two sentinels that bracket every line.
type PositionKind int

const (
	BeforeFirstChar PositionKind = iota
	AtChar
	AfterLastChar
)

// Position is a scan position. Index is only meaningful for AtChar.
type Position struct {
	Line  int
	Kind  PositionKind
	Index int
}

func BeforeFirst(line int) Position {
	return Position{Line: line, Kind: BeforeFirstChar}
}

func At(line, index int) Position {
	return Position{Line: line, Kind: AtChar, Index: index}
}

func AfterLast(line int) Position {
	return Position{Line: line, Kind: AfterLastChar}
}

func (p Position) String() string {
	switch p.Kind {
	case BeforeFirstChar:
		return fmt.Sprintf("%d:^", p.Line)
	case AfterLastChar:
		return fmt.Sprintf("%d:$", p.Line)
	default:
		return fmt.Sprintf("%d:%d", p.Line, p.Index)
	}
}

// rank orders positions within a single line.
func (p Position) rank() int {
	switch p.Kind {
	case BeforeFirstChar:
		return -1
	case AfterLastChar:
		return int(^uint(0) >> 1)
	default:
		return p.Index
	}
}

// Before reports whether p comes strictly earlier in the document than q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.rank() < q.rank()
}

// furthest returns whichever of p and q lies further from the start of the
// scan when moving in dir. Ties keep p when scanning backward and q when
// scanning forward.
func furthest(p, q Position, dir Direction) Position {
	if dir == Forward {
		if q.Before(p) {
			return p
		}
		return q
	}
	if q.Before(p) {
		return q
	}
	return p
}

// step is the result of moving one position.
type step struct {
	pos      Position
	char     byte
	hasChar  bool
	boundary bool
}

// advance moves one position in dir. Sentinels count as positions of their
// own. At the first and last line of the document the position does not move.
//
// boundary is set when the new position ends a statement: a line end (in the
// direction of travel) that is not followed by a continuation.
func (s *scan) advance(p Position, dir Direction) step {
	var next Position
	if dir == Forward {
		n := len(s.cache.normalized(p.Line))
		switch p.Kind {
		case BeforeFirstChar:
			if n > 0 {
				next = At(p.Line, 0)
			} else {
				next = AfterLast(p.Line)
			}
		case AtChar:
			if p.Index+1 < n {
				next = At(p.Line, p.Index+1)
			} else {
				next = AfterLast(p.Line)
			}
		case AfterLastChar:
			if p.Line < s.lineCount-1 {
				next = BeforeFirst(p.Line + 1)
			} else {
				next = p
			}
		}
	} else {
		switch p.Kind {
		case AfterLastChar:
			next = s.lastChar(p.Line)
		case AtChar:
			if p.Index > 0 {
				next = At(p.Line, p.Index-1)
			} else {
				next = BeforeFirst(p.Line)
			}
		case BeforeFirstChar:
			if p.Line > 0 {
				next = s.lastChar(p.Line - 1)
			} else {
				next = p
			}
		}
	}

	st := step{pos: next}
	if next.Kind == AtChar {
		st.char = s.cache.normalized(next.Line)[next.Index]
		st.hasChar = true
	}
	switch {
	case dir == Forward && next.Kind == AfterLastChar:
		st.boundary = next.Line == s.lineCount-1 || !s.cache.continues(next.Line)
	case dir == Backward && next.Kind == BeforeFirstChar:
		st.boundary = next.Line <= 0 || !s.cache.continues(next.Line-1)
	}
	return st
}

// lastChar is the last real character of line, or its start sentinel when the
// line is empty.
func (s *scan) lastChar(line int) Position {
	n := len(s.cache.normalized(line))
	if n == 0 {
		return BeforeFirst(line)
	}
	return At(line, n-1)
}
