// Package textbuf implements the text model behind the request body editor:
// UTF-8 content addressed by byte offsets, a derived line index, cursor and
// selection state, and the UTF-16 conversions required at the input-method
// boundary. Malformed inputs never fail; every offset is clamped to the
// content bounds and snapped to a scalar-value boundary, so every operation
// is total.
package textbuf

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Buffer owns the content string together with its line index. The two are
// only ever updated as a pair: Replace splices the content and rebuilds the
// index before returning, so callers can never observe a stale pairing.
type Buffer struct {
	content    string
	lineStarts []int
}

func NewBuffer(content string) *Buffer {
	b := &Buffer{}
	b.SetContent(content)
	return b
}

// SetContent replaces the whole content. Invalid UTF-8 in the input is
// replaced with U+FFFD so offsets inside the buffer always address valid
// scalar values.
func (b *Buffer) SetContent(content string) {
	b.content = strings.ToValidUTF8(content, "�")
	b.reindex()
}

func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i := 0; i < len(b.content); i++ {
		if b.content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}

func (b *Buffer) Content() string { return b.content }

func (b *Buffer) Len() int { return len(b.content) }

func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineStartOffset returns the byte offset of the first byte of line i.
func (b *Buffer) LineStartOffset(i int) int {
	return b.lineStarts[b.clampLine(i)]
}

// LineLength returns the byte length of line i, excluding its newline.
func (b *Buffer) LineLength(i int) int {
	i = b.clampLine(i)
	if i+1 < len(b.lineStarts) {
		return b.lineStarts[i+1] - b.lineStarts[i] - 1
	}
	return len(b.content) - b.lineStarts[i]
}

func (b *Buffer) LineText(i int) string {
	i = b.clampLine(i)
	start := b.lineStarts[i]
	return b.content[start : start+b.LineLength(i)]
}

func (b *Buffer) clampLine(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(b.lineStarts) {
		return len(b.lineStarts) - 1
	}
	return i
}

// ClampOffset forces offset into [0, len] and onto a scalar boundary.
func (b *Buffer) ClampOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(b.content) {
		return len(b.content)
	}
	return b.snapBoundary(offset)
}

// snapBoundary walks offset backwards until it no longer splits a multi-byte
// sequence. Offsets produced by the buffer itself are already on boundaries;
// this guards arithmetic done by callers on raw columns.
func (b *Buffer) snapBoundary(offset int) int {
	if offset >= len(b.content) {
		return len(b.content)
	}
	for offset > 0 && !utf8.RuneStart(b.content[offset]) {
		offset--
	}
	return offset
}

// ClampRange normalizes and bounds both endpoints of r.
func (b *Buffer) ClampRange(r Range) Range {
	return NewRange(b.ClampOffset(r.Start), b.ClampOffset(r.End))
}

// Slice returns the content inside r, after clamping.
func (b *Buffer) Slice(r Range) string {
	r = b.ClampRange(r)
	return b.content[r.Start:r.End]
}

// PositionFor resolves offset to (line, column), column being the byte
// distance from the line start.
func (b *Buffer) PositionFor(offset int) (line, col int) {
	offset = b.ClampOffset(offset)
	line = sort.SearchInts(b.lineStarts, offset+1) - 1
	return line, offset - b.lineStarts[line]
}

// OffsetFor is the inverse of PositionFor. The column is clamped to the
// line's length (no wrap to adjacent lines) and the result is snapped to a
// scalar boundary at or before the requested position.
func (b *Buffer) OffsetFor(line, col int) int {
	line = b.clampLine(line)
	if col < 0 {
		col = 0
	}
	if max := b.LineLength(line); col > max {
		col = max
	}
	return b.snapBoundary(b.lineStarts[line] + col)
}

// Replace splices text over r and rebuilds the line index. It returns the
// offset immediately after the inserted text, which is where the caret
// belongs after any edit.
func (b *Buffer) Replace(r Range, text string) int {
	r = b.ClampRange(r)
	text = strings.ToValidUTF8(text, "�")
	b.content = b.content[:r.Start] + text + b.content[r.End:]
	b.reindex()
	return r.Start + len(text)
}
