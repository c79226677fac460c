package textbuf

import "strings"

// Input-method surface. Offsets crossing this boundary are UTF-16 code
// units, converted on entry and exit; everything behind it stays in bytes.
// The marked range is the span under active composition, distinct from the
// selection, and is dropped atomically whenever composition commits, is
// cancelled, or any other edit lands.

// MarkedRange reports the composition span in byte offsets.
func (e *Editor) MarkedRange() (Range, bool) {
	if e.marked == nil {
		return Range{}, false
	}
	return *e.marked, true
}

// MarkedRangeUTF16 reports the composition span in UTF-16 units.
func (e *Editor) MarkedRangeUTF16() (Range, bool) {
	if e.marked == nil {
		return Range{}, false
	}
	return e.buf.RangeToUTF16(*e.marked), true
}

// Unmark ends composition without touching the composed text.
func (e *Editor) Unmark() { e.marked = nil }

// TextForRangeUTF16 returns the content inside a UTF-16 addressed range.
func (e *Editor) TextForRangeUTF16(r Range) string {
	return e.buf.Slice(e.buf.RangeFromUTF16(r))
}

// SelectedRangeUTF16 reports the selection in UTF-16 units, direction
// preserved.
func (e *Editor) SelectedRangeUTF16() (Range, bool) {
	return e.buf.RangeToUTF16(e.sel.Range), e.sel.Reversed
}

// imeTarget resolves the range an IME edit applies to: the explicit range if
// the protocol supplied one, else the marked range, else the selection.
func (e *Editor) imeTarget(utf16Range *Range) Range {
	switch {
	case utf16Range != nil:
		return e.buf.RangeFromUTF16(*utf16Range)
	case e.marked != nil:
		return *e.marked
	default:
		return e.sel.Range
	}
}

// ReplaceRangeUTF16 commits text over the resolved target range, ending any
// composition and leaving the caret after the inserted text.
func (e *Editor) ReplaceRangeUTF16(utf16Range *Range, text string) {
	e.Replace(e.imeTarget(utf16Range), text)
}

// ReplaceAndMarkRangeUTF16 replaces the resolved target with composition
// text and marks the inserted span. selUTF16, when given, positions the
// selection relative to the start of the inserted text (in UTF-16 units of
// that text); otherwise the caret lands after the composition.
func (e *Editor) ReplaceAndMarkRangeUTF16(utf16Range *Range, text string, selUTF16 *Range) {
	text = strings.ToValidUTF8(text, "�")
	target := e.imeTarget(utf16Range)
	end := e.buf.Replace(target, text)
	marked := Range{Start: end - len(text), End: end}
	e.marked = &marked
	e.stickyCol = noColumn

	if selUTF16 == nil {
		e.sel = Caret(marked.End)
		return
	}
	inserted := NewBuffer(text)
	rel := inserted.RangeFromUTF16(*selUTF16)
	e.sel = Selection{Range: NewRange(marked.Start+rel.Start, marked.Start+rel.End)}
}

// BoundsForRangeUTF16 resolves a UTF-16 range to the line and byte column
// span of its first line, which is what the renderer needs to grow pixel
// bounds for composition popovers.
func (e *Editor) BoundsForRangeUTF16(r Range) LineSpan {
	byteRange := e.buf.RangeFromUTF16(r)
	line, col := e.buf.PositionFor(byteRange.Start)
	lineEnd := e.buf.LineStartOffset(line) + e.buf.LineLength(line)
	end := byteRange.End
	if end > lineEnd {
		end = lineEnd
	}
	return LineSpan{
		Line:  line,
		Start: col,
		End:   end - e.buf.LineStartOffset(line),
	}
}
