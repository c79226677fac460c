package textbuf

import "testing"

func TestBoundarySteps(t *testing.T) {
	// a(1) é(2) 𝄞(4) b(1): boundaries at 0, 1, 3, 7, 8.
	b := NewBuffer("aé𝄞b")

	cases := []struct {
		offset     int
		prev, next int
	}{
		{0, 0, 1},
		{1, 0, 3},
		{3, 1, 7},
		{7, 3, 8},
		{8, 7, 8},
	}
	for _, tc := range cases {
		if got := b.PreviousBoundary(tc.offset); got != tc.prev {
			t.Errorf("PreviousBoundary(%d) = %d, want %d", tc.offset, got, tc.prev)
		}
		if got := b.NextBoundary(tc.offset); got != tc.next {
			t.Errorf("NextBoundary(%d) = %d, want %d", tc.offset, got, tc.next)
		}
	}
}

func TestLineEdges(t *testing.T) {
	b := NewBuffer("ab\ncde\n\nf")

	cases := []struct {
		offset     int
		start, end int
	}{
		{0, 0, 2},
		{2, 0, 2}, // on the newline, still line 0
		{4, 3, 6}, // inside "cde"
		{7, 7, 7}, // the empty line
		{9, 8, 9}, // end of content
	}
	for _, tc := range cases {
		if got := b.LineStartFor(tc.offset); got != tc.start {
			t.Errorf("LineStartFor(%d) = %d, want %d", tc.offset, got, tc.start)
		}
		if got := b.LineEndFor(tc.offset); got != tc.end {
			t.Errorf("LineEndFor(%d) = %d, want %d", tc.offset, got, tc.end)
		}
	}
}

func TestMoveVerticalClampsToShortLine(t *testing.T) {
	b := NewBuffer("abcdef\nxy\nghijkl")

	off, col := b.MoveVertical(Forward, 5, noColumn)
	if off != 9 || col != 5 {
		t.Fatalf("down from col 5: got offset %d col %d, want 9, 5", off, col)
	}
}

func TestMoveVerticalStickyColumn(t *testing.T) {
	b := NewBuffer("abcdef\nxy\nghijkl")

	// Down through the short line and back up, carrying the column.
	off, col := b.MoveVertical(Forward, 5, noColumn)
	off, col = b.MoveVertical(Forward, off, col)
	if off != 15 {
		t.Fatalf("second down: offset = %d, want 15", off)
	}
	off, col = b.MoveVertical(Backward, off, col)
	off, _ = b.MoveVertical(Backward, off, col)
	if off != 5 {
		t.Fatalf("back on line 0: offset = %d, want col 5 restored", off)
	}
}

func TestMoveVerticalAtEdgesIsNoop(t *testing.T) {
	b := NewBuffer("ab\ncd")

	if off, _ := b.MoveVertical(Backward, 1, noColumn); off != 1 {
		t.Errorf("up from first line moved to %d", off)
	}
	if off, _ := b.MoveVertical(Forward, 4, noColumn); off != 4 {
		t.Errorf("down from last line moved to %d", off)
	}
}

func TestMoveVerticalLandsOnBoundary(t *testing.T) {
	// Line 1 holds multi-byte text; carrying a column from the ASCII line
	// above must not land inside a scalar value.
	b := NewBuffer("abcd\néé")

	off, _ := b.MoveVertical(Forward, 3, noColumn)
	if off != 7 {
		t.Fatalf("down into multi-byte line: offset = %d, want 7 (snapped)", off)
	}
}
