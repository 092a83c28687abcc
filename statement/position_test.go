package statement

import "testing"

func newTestScan(lines ...string) *scan {
	return &scan{
		cache:           newLineCache(Lines(lines)),
		lineCount:       len(lines),
		scanLimitFactor: DefaultScanLimitFactor,
	}
}

func TestAdvance(t *testing.T) {
	s := newTestScan("ab", "", "c +", "d")

	tests := []struct {
		name         string
		from         Position
		dir          Direction
		want         Position
		wantChar     byte
		wantBoundary bool
	}{
		{"forward into line", BeforeFirst(0), Forward, At(0, 0), 'a', false},
		{"forward to line end", At(0, 1), Forward, AfterLast(0), 0, true},
		{"forward across line break", AfterLast(0), Forward, BeforeFirst(1), 0, false},
		{"forward over empty line", BeforeFirst(1), Forward, AfterLast(1), 0, false},
		{"forward to continued line end", At(2, 2), Forward, AfterLast(2), 0, false},
		{"forward at end of document", AfterLast(3), Forward, AfterLast(3), 0, true},
		{"backward to line start", At(0, 0), Backward, BeforeFirst(0), 0, true},
		{"backward at start of document", BeforeFirst(0), Backward, BeforeFirst(0), 0, true},
		{"backward onto empty line", BeforeFirst(2), Backward, BeforeFirst(1), 0, true},
		{"backward to previous last char", BeforeFirst(1), Backward, At(0, 1), 'b', false},
		{"backward below a continued line", At(3, 0), Backward, BeforeFirst(3), 0, false},
		{"backward from line end", AfterLast(3), Backward, At(3, 0), 'd', false},
		{"backward onto operator", BeforeFirst(3), Backward, At(2, 2), '+', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := s.advance(tt.from, tt.dir)
			if st.pos != tt.want {
				t.Errorf("advance(%v, %v).pos = %v, want %v", tt.from, tt.dir, st.pos, tt.want)
			}
			if st.hasChar != (tt.wantChar != 0) {
				t.Errorf("advance(%v, %v).hasChar = %v, want %v", tt.from, tt.dir, st.hasChar, tt.wantChar != 0)
			}
			if st.char != tt.wantChar {
				t.Errorf("advance(%v, %v).char = %q, want %q", tt.from, tt.dir, st.char, tt.wantChar)
			}
			if st.boundary != tt.wantBoundary {
				t.Errorf("advance(%v, %v).boundary = %v, want %v", tt.from, tt.dir, st.boundary, tt.wantBoundary)
			}
		})
	}
}

func TestPositionBefore(t *testing.T) {
	tests := []struct {
		p, q Position
		want bool
	}{
		{At(0, 3), At(1, 0), true},
		{At(1, 0), At(0, 3), false},
		{BeforeFirst(2), At(2, 0), true},
		{At(2, 9), AfterLast(2), true},
		{AfterLast(2), BeforeFirst(3), true},
		{At(2, 4), At(2, 4), false},
	}

	for _, tt := range tests {
		if got := tt.p.Before(tt.q); got != tt.want {
			t.Errorf("%v.Before(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}

func TestFurthest(t *testing.T) {
	tests := []struct {
		p, q Position
		dir  Direction
		want Position
	}{
		{At(1, 2), At(3, 0), Forward, At(3, 0)},
		{At(3, 0), At(1, 2), Forward, At(3, 0)},
		{At(1, 2), At(3, 0), Backward, At(1, 2)},
		{At(3, 0), At(1, 2), Backward, At(1, 2)},
		{BeforeFirst(4), At(4, 0), Forward, At(4, 0)},
		{BeforeFirst(4), At(4, 0), Backward, BeforeFirst(4)},
	}

	for _, tt := range tests {
		if got := furthest(tt.p, tt.q, tt.dir); got != tt.want {
			t.Errorf("furthest(%v, %v, %v) = %v, want %v", tt.p, tt.q, tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	if Forward.Opposite() != Backward {
		t.Errorf("Forward.Opposite() = %v, want %v", Forward.Opposite(), Backward)
	}
	if Backward.Opposite() != Forward {
		t.Errorf("Backward.Opposite() = %v, want %v", Backward.Opposite(), Forward)
	}
}

func TestLineCacheComputesOnce(t *testing.T) {
	calls := map[int]int{}
	lines := []string{"a <- 1 +  # add", "2"}
	src := SourceFunc(func(i int) string {
		calls[i]++
		return lines[i]
	}, len(lines))

	c := newLineCache(src)
	for i := 0; i < 3; i++ {
		if got := c.normalized(0); got != "a <- 1 +" {
			t.Errorf("normalized(0) = %q, want %q", got, "a <- 1 +")
		}
		if !c.continues(0) {
			t.Errorf("continues(0) = false, want true")
		}
		if c.continues(1) {
			t.Errorf("continues(1) = true, want false")
		}
	}
	if calls[0] != 1 || calls[1] != 1 {
		t.Errorf("line accessor calls = %v, want one per line", calls)
	}
	if want := len("a <- 1 +") + 2 + len("2") + 2; c.cells != want {
		t.Errorf("cells = %d, want %d", c.cells, want)
	}
}
