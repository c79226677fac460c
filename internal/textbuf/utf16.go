package textbuf

import "unicode/utf16"

// The host input-method protocol addresses text in UTF-16 code units while
// the buffer is UTF-8. These conversions are the only crossing point; every
// offset entering or leaving the IME surface passes through exactly once.

// OffsetToUTF16 converts a byte offset to the number of UTF-16 code units
// strictly before it.
func (b *Buffer) OffsetToUTF16(offset int) int {
	offset = b.ClampOffset(offset)
	units := 0
	for _, r := range b.content[:offset] {
		units += utf16.RuneLen(r)
	}
	return units
}

// OffsetFromUTF16 converts a UTF-16 code-unit offset back to a byte offset.
// Offsets beyond the content's UTF-16 length clamp to the end; an offset in
// the middle of a surrogate pair resolves past the pair's scalar value.
func (b *Buffer) OffsetFromUTF16(units int) int {
	if units <= 0 {
		return 0
	}
	seen := 0
	for i, r := range b.content {
		if seen >= units {
			return i
		}
		seen += utf16.RuneLen(r)
	}
	return len(b.content)
}

// RangeToUTF16 converts both endpoints independently.
func (b *Buffer) RangeToUTF16(r Range) Range {
	return NewRange(b.OffsetToUTF16(r.Start), b.OffsetToUTF16(r.End))
}

// RangeFromUTF16 converts both endpoints independently.
func (b *Buffer) RangeFromUTF16(r Range) Range {
	return NewRange(b.OffsetFromUTF16(r.Start), b.OffsetFromUTF16(r.End))
}

// LenUTF16 returns the content length in UTF-16 code units.
func (b *Buffer) LenUTF16() int {
	return b.OffsetToUTF16(len(b.content))
}
