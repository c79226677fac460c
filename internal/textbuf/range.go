package textbuf

// Range is a half-open [Start, End) span of byte offsets, normalized so
// Start <= End.
type Range struct {
	Start int
	End   int
}

func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func (r Range) Empty() bool { return r.Start == r.End }

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Contains(offset int) bool { return offset >= r.Start && offset < r.End }

// Intersect clips r to other. The result may be empty; when the spans do not
// overlap at all the result collapses to the nearest edge of other.
func (r Range) Intersect(other Range) Range {
	s, e := r.Start, r.End
	if s < other.Start {
		s = other.Start
	}
	if e > other.End {
		e = other.End
	}
	if s > e {
		return Range{Start: s, End: s}
	}
	return Range{Start: s, End: e}
}

// Selection is a range plus the direction it was made in. Reversed means the
// active (moving) endpoint is Start and the anchor is End; otherwise the
// active endpoint is End. An empty range is a plain caret.
type Selection struct {
	Range    Range
	Reversed bool
}

// Caret returns a collapsed selection at offset.
func Caret(offset int) Selection {
	return Selection{Range: Range{Start: offset, End: offset}}
}

func (s Selection) Empty() bool { return s.Range.Empty() }

// Active returns the moving endpoint.
func (s Selection) Active() int {
	if s.Reversed {
		return s.Range.Start
	}
	return s.Range.End
}

// Anchor returns the fixed endpoint.
func (s Selection) Anchor() int {
	if s.Reversed {
		return s.Range.End
	}
	return s.Range.Start
}
