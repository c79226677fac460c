package textbuf

// Editor combines the buffer with cursor, selection, IME composition, and
// column-memory state. It is the single mutation gate: navigation and edits
// go through its methods one event at a time, and the line index is rebuilt
// before any of them return. The editor is owned by exactly one component
// and is not safe for concurrent use.
type Editor struct {
	buf    *Buffer
	sel    Selection
	marked *Range

	// stickyCol survives a contiguous run of vertical moves so that passing
	// through short lines does not lose the column. Any horizontal move,
	// edit, click, or selection reset drops it.
	stickyCol int
}

func NewEditor(content string) *Editor {
	return &Editor{
		buf:       NewBuffer(content),
		sel:       Caret(0),
		stickyCol: noColumn,
	}
}

func (e *Editor) Buffer() *Buffer { return e.buf }

func (e *Editor) Content() string { return e.buf.Content() }

func (e *Editor) Len() int { return e.buf.Len() }

func (e *Editor) LineCount() int { return e.buf.LineCount() }

func (e *Editor) LineText(i int) string { return e.buf.LineText(i) }

func (e *Editor) Selection() Selection { return e.sel }

// CursorOffset returns the active endpoint of the selection, which is where
// the caret is drawn.
func (e *Editor) CursorOffset() int { return e.sel.Active() }

// CursorPosition returns the caret as (line, byte column).
func (e *Editor) CursorPosition() (line, col int) {
	return e.buf.PositionFor(e.sel.Active())
}

// SetContent resets the buffer and collapses the selection to the start.
func (e *Editor) SetContent(content string) {
	e.buf.SetContent(content)
	e.sel = Caret(0)
	e.marked = nil
	e.stickyCol = noColumn
}

func (e *Editor) Reset() { e.SetContent("") }

// moveTo places the active endpoint at offset. Without extend the selection
// collapses to a caret there. With extend the anchor stays put and Reversed
// is recomputed so the range stays normalized.
func (e *Editor) moveTo(offset int, extend bool) {
	offset = e.buf.ClampOffset(offset)
	if !extend {
		e.sel = Caret(offset)
		return
	}
	anchor := e.sel.Anchor()
	if offset < anchor {
		e.sel = Selection{Range: Range{Start: offset, End: anchor}, Reversed: true}
	} else {
		e.sel = Selection{Range: Range{Start: anchor, End: offset}}
	}
}

// MoveCharacter steps the caret one scalar value backward or forward. A
// plain move over a non-empty selection collapses to the selection edge in
// the direction of travel instead of stepping past it.
func (e *Editor) MoveCharacter(dir Direction, extend bool) {
	e.stickyCol = noColumn
	if !extend && !e.sel.Empty() {
		if dir == Backward {
			e.moveTo(e.sel.Range.Start, false)
		} else {
			e.moveTo(e.sel.Range.End, false)
		}
		return
	}
	e.moveTo(e.buf.StepBoundary(dir, e.sel.Active()), extend)
}

// MoveLine moves the caret one line up or down, keeping the column sticky
// across the run of vertical moves.
func (e *Editor) MoveLine(dir Direction, extend bool) {
	offset, col := e.buf.MoveVertical(dir, e.sel.Active(), e.stickyCol)
	e.moveTo(offset, extend)
	e.stickyCol = col
}

// MoveLineEdge jumps to the start (Backward) or end (Forward) of the caret's
// line. The end excludes the trailing newline.
func (e *Editor) MoveLineEdge(dir Direction, extend bool) {
	e.stickyCol = noColumn
	if dir == Backward {
		e.moveTo(e.buf.LineStartFor(e.sel.Active()), extend)
	} else {
		e.moveTo(e.buf.LineEndFor(e.sel.Active()), extend)
	}
}

// MoveDocumentEdge jumps to the start or end of the content.
func (e *Editor) MoveDocumentEdge(dir Direction, extend bool) {
	e.stickyCol = noColumn
	if dir == Backward {
		e.moveTo(0, extend)
	} else {
		e.moveTo(e.buf.Len(), extend)
	}
}

func (e *Editor) SelectAll() {
	e.stickyCol = noColumn
	e.sel = Selection{Range: Range{Start: 0, End: e.buf.Len()}}
}

// SetSelection places the selection between an anchor and an active offset,
// as a mouse press-and-drag does. Both offsets are clamped and snapped.
func (e *Editor) SetSelection(anchor, active int) {
	e.stickyCol = noColumn
	anchor = e.buf.ClampOffset(anchor)
	e.moveToAnchored(anchor, active)
}

func (e *Editor) moveToAnchored(anchor, active int) {
	active = e.buf.ClampOffset(active)
	if active < anchor {
		e.sel = Selection{Range: Range{Start: active, End: anchor}, Reversed: true}
	} else {
		e.sel = Selection{Range: Range{Start: anchor, End: active}}
	}
}

// Replace splices text over r, collapses the selection to a caret just after
// the inserted text, and drops any composition in progress.
func (e *Editor) Replace(r Range, text string) {
	caret := e.buf.Replace(r, text)
	e.sel = Caret(caret)
	e.marked = nil
	e.stickyCol = noColumn
}

// Insert types text over the current selection.
func (e *Editor) Insert(text string) {
	e.Replace(e.sel.Range, text)
}

func (e *Editor) Enter() { e.Insert("\n") }

// DeleteBackward removes the selection, or the scalar value before the caret
// when the selection is empty. At the start of the content it is a no-op.
func (e *Editor) DeleteBackward() {
	if !e.sel.Empty() {
		e.Replace(e.sel.Range, "")
		return
	}
	caret := e.sel.Active()
	if caret == 0 {
		return
	}
	e.Replace(Range{Start: e.buf.PreviousBoundary(caret), End: caret}, "")
}

// DeleteForward removes the selection, or the scalar value after the caret
// when the selection is empty. At the end of the content it is a no-op.
func (e *Editor) DeleteForward() {
	if !e.sel.Empty() {
		e.Replace(e.sel.Range, "")
		return
	}
	caret := e.sel.Active()
	if caret >= e.buf.Len() {
		return
	}
	e.Replace(Range{Start: caret, End: e.buf.NextBoundary(caret)}, "")
}

// LineSpan is a byte column range within a single line, used by the renderer
// to paint selection highlight.
type LineSpan struct {
	Line  int
	Start int
	End   int
}

// SelectionSpans intersects the selection with every line it touches and
// returns the per-line column ranges. Lines whose text the selection does
// not cover are omitted, except empty lines strictly inside the selection,
// which yield a zero-width span so the renderer can still mark them.
func (e *Editor) SelectionSpans() []LineSpan {
	if e.sel.Empty() {
		return nil
	}
	sel := e.sel.Range
	startLine, _ := e.buf.PositionFor(sel.Start)
	endLine, _ := e.buf.PositionFor(sel.End)

	var spans []LineSpan
	for line := startLine; line <= endLine; line++ {
		ls := e.buf.LineStartOffset(line)
		le := ls + e.buf.LineLength(line)
		clipped := sel.Intersect(Range{Start: ls, End: le})
		if clipped.Empty() && !(ls == le && sel.Start <= ls && sel.End > ls) {
			continue
		}
		spans = append(spans, LineSpan{
			Line:  line,
			Start: clipped.Start - ls,
			End:   clipped.End - ls,
		})
	}
	return spans
}
