package textbuf

import "testing"

func TestOffsetToUTF16(t *testing.T) {
	// a: 1 unit / 1 byte, é: 1 unit / 2 bytes, 𝄞: 2 units / 4 bytes.
	b := NewBuffer("aé𝄞b")

	cases := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{7, 4},
		{8, 5},
	}
	for _, tc := range cases {
		if got := b.OffsetToUTF16(tc.offset); got != tc.want {
			t.Errorf("OffsetToUTF16(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestOffsetFromUTF16(t *testing.T) {
	b := NewBuffer("aé𝄞b")

	cases := []struct {
		units int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7}, // middle of the surrogate pair resolves past 𝄞
		{4, 7},
		{5, 8},
		{42, 8}, // past the end clamps
	}
	for _, tc := range cases {
		if got := b.OffsetFromUTF16(tc.units); got != tc.want {
			t.Errorf("OffsetFromUTF16(%d) = %d, want %d", tc.units, got, tc.want)
		}
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	contents := []string{
		"",
		"plain ascii",
		"{\n  \"note\": \"héllo\"\n}",
		"mixed 𝄞 and é and 界\nsecond 𝄞 line",
	}
	for _, content := range contents {
		b := NewBuffer(content)
		for offset := 0; offset <= b.Len(); offset++ {
			if b.ClampOffset(offset) != offset {
				continue // not a boundary
			}
			units := b.OffsetToUTF16(offset)
			if got := b.OffsetFromUTF16(units); got != offset {
				t.Errorf("content %q: round trip of offset %d via %d units = %d",
					content, offset, units, got)
			}
		}
	}
}

func TestRangeConversions(t *testing.T) {
	b := NewBuffer("a𝄞b")

	r := b.RangeToUTF16(Range{Start: 1, End: 5})
	if r != (Range{Start: 1, End: 3}) {
		t.Fatalf("RangeToUTF16 = %+v, want {1 3}", r)
	}
	back := b.RangeFromUTF16(r)
	if back != (Range{Start: 1, End: 5}) {
		t.Fatalf("RangeFromUTF16 = %+v, want {1 5}", back)
	}
}

func TestLenUTF16(t *testing.T) {
	b := NewBuffer("a𝄞b")
	if got := b.LenUTF16(); got != 4 {
		t.Fatalf("LenUTF16() = %d, want 4", got)
	}
}
