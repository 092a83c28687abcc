package statement

import "fmt"

var bracketPairs = map[byte]byte{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

func isOpening(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

func isClosing(c byte) bool {
	return c == ')' || c == ']' || c == '}'
}

func isDelimiter(c byte) bool {
	return isOpening(c) || isClosing(c)
}

// opensIn reports whether c starts a nested group when read in dir: opening
// brackets going forward, closing brackets going backward.
func opensIn(c byte, dir Direction) bool {
	if dir == Forward {
		return isOpening(c)
	}
	return isClosing(c)
}

// searchDirection is the direction in which the partner of c lies.
func searchDirection(c byte) Direction {
	if isOpening(c) {
		return Forward
	}
	return Backward
}

func bracketsMatch(a, b byte) bool {
	partner, ok := bracketPairs[a]
	return ok && partner == b
}

// findMatch looks for the partner of the delimiter open, moving in dir and
// starting with the position after start. Brackets nested in between must
// pair up correctly.
func (s *scan) findMatch(open byte, start Position, dir Direction) (Position, error) {
	var stack []byte
	pos := start
	for {
		st, err := s.move(pos, dir)
		if err != nil {
			return pos, err
		}
		pos = st.pos

		if st.hasChar {
			switch {
			case opensIn(st.char, dir):
				stack = append(stack, st.char)
			case opensIn(st.char, dir.Opposite()):
				if len(stack) == 0 {
					// A stray closer ends the search instead of being skipped.
					if !bracketsMatch(open, st.char) {
						return pos, fmt.Errorf("%w: %q at %v does not pair with %q", ErrMismatchedDelimiter, st.char, pos, open)
					}
					return pos, nil
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !bracketsMatch(top, st.char) {
					return pos, fmt.Errorf("%w: %q at %v does not pair with %q", ErrMismatchedDelimiter, st.char, pos, top)
				}
			}
		}

		if st.boundary && s.atDocumentEdge(pos, dir) {
			return pos, fmt.Errorf("%w: no partner for %q searching %v", ErrUnterminatedDelimiter, open, dir)
		}
	}
}

func (s *scan) atDocumentEdge(p Position, dir Direction) bool {
	if dir == Forward {
		return p.Line == s.lineCount-1
	}
	return p.Line == 0
}
