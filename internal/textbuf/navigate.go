package textbuf

import "unicode/utf8"

// Direction selects which way a movement or deletion steps.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// PreviousBoundary returns the offset of the scalar value before offset,
// clamped at the start of the content.
func (b *Buffer) PreviousBoundary(offset int) int {
	offset = b.ClampOffset(offset)
	if offset == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(b.content[:offset])
	return offset - size
}

// NextBoundary returns the offset just past the scalar value at offset,
// clamped at the end of the content.
func (b *Buffer) NextBoundary(offset int) int {
	offset = b.ClampOffset(offset)
	if offset >= len(b.content) {
		return len(b.content)
	}
	_, size := utf8.DecodeRuneInString(b.content[offset:])
	return offset + size
}

// StepBoundary applies PreviousBoundary or NextBoundary by direction.
func (b *Buffer) StepBoundary(dir Direction, offset int) int {
	if dir == Backward {
		return b.PreviousBoundary(offset)
	}
	return b.NextBoundary(offset)
}

// LineStartFor returns the offset of the start of the line containing offset.
func (b *Buffer) LineStartFor(offset int) int {
	line, _ := b.PositionFor(offset)
	return b.lineStarts[line]
}

// LineEndFor returns the offset just past the last byte of the line
// containing offset, excluding the newline.
func (b *Buffer) LineEndFor(offset int) int {
	line, _ := b.PositionFor(offset)
	return b.lineStarts[line] + b.LineLength(line)
}

// noColumn marks the absence of a remembered column for MoveVertical.
const noColumn = -1

// MoveVertical moves one line up or down from offset. remembered, when not
// negative, overrides the current column; it is what gives repeated vertical
// moves their sticky-column behavior across short lines. The returned column
// is the effective (pre-clamp) column and must be carried into the next
// vertical move. Moving past the first or last line returns offset unchanged.
func (b *Buffer) MoveVertical(dir Direction, offset, remembered int) (newOffset, column int) {
	offset = b.ClampOffset(offset)
	line, col := b.PositionFor(offset)
	if remembered >= 0 {
		col = remembered
	}

	target := line - 1
	if dir == Forward {
		target = line + 1
	}
	if target < 0 || target >= b.LineCount() {
		return offset, col
	}
	return b.OffsetFor(target, col), col
}
