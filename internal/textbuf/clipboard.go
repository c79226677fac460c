package textbuf

// Clipboard bridge, the pure side only: the editor produces and consumes
// plain strings with newlines kept verbatim. Talking to the system clipboard
// is the widget's job.

// CopyText returns the selected text, or ok=false when the selection is
// empty.
func (e *Editor) CopyText() (string, bool) {
	if e.sel.Empty() {
		return "", false
	}
	return e.buf.Slice(e.sel.Range), true
}

// CutText copies the selection and removes it. A no-op on an empty
// selection.
func (e *Editor) CutText() (string, bool) {
	text, ok := e.CopyText()
	if !ok {
		return "", false
	}
	e.Replace(e.sel.Range, "")
	return text, true
}

// PasteText inserts clipboard content as-is over the selection. Multi-line
// payloads re-segment through the line index like any other edit.
func (e *Editor) PasteText(s string) {
	e.Insert(s)
}
