package statement

import (
	"errors"
	"testing"
)

func TestFindMatch(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		open    byte
		start   Position
		dir     Direction
		want    Position
		wantErr error
	}{
		{
			name:  "nested group on the same line",
			lines: []string{"f(a, (b)", ")"},
			open:  '(',
			start: At(0, 1),
			dir:   Forward,
			want:  At(1, 0),
		},
		{
			name:  "backward across a continued line",
			lines: []string{"x <- c(1,", "2)"},
			open:  ')',
			start: At(1, 1),
			dir:   Backward,
			want:  At(0, 6),
		},
		{
			name:  "commented bracket is ignored",
			lines: []string{"f(1, # )", "  2)"},
			open:  '(',
			start: At(0, 1),
			dir:   Forward,
			want:  At(1, 3),
		},
		{
			name:  "all three bracket kinds",
			lines: []string{"x[{(", ")}]"},
			open:  '[',
			start: At(0, 1),
			dir:   Forward,
			want:  At(1, 2),
		},
		{
			name:    "wrong partner",
			lines:   []string{"(a]"},
			open:    '(',
			start:   At(0, 0),
			dir:     Forward,
			wantErr: ErrMismatchedDelimiter,
		},
		{
			name:    "crossed nesting",
			lines:   []string{"([)]"},
			open:    '(',
			start:   At(0, 0),
			dir:     Forward,
			wantErr: ErrMismatchedDelimiter,
		},
		{
			name:    "end of document",
			lines:   []string{"c(", "2"},
			open:    '(',
			start:   At(0, 1),
			dir:     Forward,
			wantErr: ErrUnterminatedDelimiter,
		},
		{
			name:    "start of document",
			lines:   []string{"2", ")"},
			open:    ')',
			start:   At(1, 0),
			dir:     Backward,
			wantErr: ErrUnterminatedDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScan(tt.lines...)
			got, err := s.findMatch(tt.open, tt.start, tt.dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("findMatch error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrAborted) {
					t.Errorf("findMatch error = %v, does not wrap ErrAborted", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("findMatch error = %v", err)
			}
			if got != tt.want {
				t.Errorf("findMatch(%q, %v, %v) = %v, want %v", tt.open, tt.start, tt.dir, got, tt.want)
			}
		})
	}
}

func TestScanLimit(t *testing.T) {
	s := newTestScan("abc")
	s.scanLimitFactor = 1

	pos := AfterLast(0)
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		_, err = s.move(pos, Forward)
	}
	if !errors.Is(err, ErrScanLimit) {
		t.Fatalf("move error = %v, want %v", err, ErrScanLimit)
	}
	if want := 1*s.cache.cells + 64 + 1; s.steps != want {
		t.Errorf("steps = %d, want %d", s.steps, want)
	}
}
