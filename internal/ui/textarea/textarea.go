// Package textarea implements a multi-line editing component for terminal
// interfaces. Unlike the usual rune-grid text areas, it delegates all editing
// state to a byte-offset buffer (internal/textbuf), so cursor, selection and
// composition ranges stay valid across every mutation.
package textarea

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/unkn0wn-root/restpad/internal/textbuf"
	"github.com/unkn0wn-root/restpad/internal/ui/scroll"
)

const (
	minHeight     = 1
	defaultHeight = 6
	defaultWidth  = 40

	// horizontalScrollMargin is how many columns of padding we try to keep
	// between the cursor and either horizontal edge before shifting content.
	horizontalScrollMargin = 8
)

// Internal messages for clipboard operations.
type (
	pasteMsg    string
	pasteErrMsg struct{ error }
)

// KeyMap is the key bindings for different actions within the textarea.
type KeyMap struct {
	CharacterBackward       key.Binding
	CharacterForward        key.Binding
	LineNext                key.Binding
	LinePrevious            key.Binding
	LineStart               key.Binding
	LineEnd                 key.Binding
	InputBegin              key.Binding
	InputEnd                key.Binding
	SelectBackward          key.Binding
	SelectForward           key.Binding
	SelectDown              key.Binding
	SelectUp                key.Binding
	SelectLineStart         key.Binding
	SelectLineEnd           key.Binding
	SelectAll               key.Binding
	DeleteCharacterBackward key.Binding
	DeleteCharacterForward  key.Binding
	InsertNewline           key.Binding
	Copy                    key.Binding
	Cut                     key.Binding
	Paste                   key.Binding
}

// DefaultKeyMap is the default set of key bindings for navigating and acting
// upon the textarea.
var DefaultKeyMap = KeyMap{
	CharacterForward: key.NewBinding(
		key.WithKeys("right", "ctrl+f"),
		key.WithHelp("right", "character forward"),
	),
	CharacterBackward: key.NewBinding(
		key.WithKeys("left", "ctrl+b"),
		key.WithHelp("left", "character backward"),
	),
	LineNext: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("down", "next line"),
	),
	LinePrevious: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("up", "previous line"),
	),
	LineStart: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "line start"),
	),
	LineEnd: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("end", "line end"),
	),
	InputBegin: key.NewBinding(
		key.WithKeys("ctrl+home", "alt+<"),
		key.WithHelp("ctrl+home", "input begin"),
	),
	InputEnd: key.NewBinding(
		key.WithKeys("ctrl+end", "alt+>"),
		key.WithHelp("ctrl+end", "input end"),
	),
	SelectForward: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+right", "extend selection forward"),
	),
	SelectBackward: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+left", "extend selection backward"),
	),
	SelectDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+down", "extend selection down"),
	),
	SelectUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+up", "extend selection up"),
	),
	SelectLineStart: key.NewBinding(
		key.WithKeys("shift+home"),
		key.WithHelp("shift+home", "extend to line start"),
	),
	SelectLineEnd: key.NewBinding(
		key.WithKeys("shift+end"),
		key.WithHelp("shift+end", "extend to line end"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "select all"),
	),
	DeleteCharacterBackward: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("backspace", "delete character backward"),
	),
	DeleteCharacterForward: key.NewBinding(
		key.WithKeys("delete", "ctrl+d"),
		key.WithHelp("delete", "delete character forward"),
	),
	InsertNewline: key.NewBinding(
		key.WithKeys("enter", "ctrl+m"),
		key.WithHelp("enter", "insert newline"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy selection"),
	),
	Cut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "cut selection"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
}

// Style that will be applied to the text area.
//
// Style can be applied to focused and unfocused states to change the styles
// depending on the focus state.
type Style struct {
	Base             lipgloss.Style
	CursorLine       lipgloss.Style
	CursorLineNumber lipgloss.Style
	EndOfBuffer      lipgloss.Style
	LineNumber       lipgloss.Style
	Placeholder      lipgloss.Style
	Prompt           lipgloss.Style
	Text             lipgloss.Style
	Selection        lipgloss.Style
	Marked           lipgloss.Style
}

func (s Style) computedCursorLine() lipgloss.Style {
	return s.CursorLine.Inherit(s.Base).Inline(true)
}

func (s Style) computedCursorLineNumber() lipgloss.Style {
	return s.CursorLineNumber.
		Inherit(s.CursorLine).
		Inherit(s.Base).
		Inline(true)
}

func (s Style) computedEndOfBuffer() lipgloss.Style {
	return s.EndOfBuffer.Inherit(s.Base).Inline(true)
}

func (s Style) computedLineNumber() lipgloss.Style {
	return s.LineNumber.Inherit(s.Base).Inline(true)
}

func (s Style) computedPlaceholder() lipgloss.Style {
	return s.Placeholder.Inherit(s.Base).Inline(true)
}

func (s Style) computedPrompt() lipgloss.Style {
	return s.Prompt.Inherit(s.Base).Inline(true)
}

func (s Style) computedText() lipgloss.Style {
	return s.Text.Inherit(s.Base).Inline(true)
}

// DefaultStyles returns the default styles for focused and blurred states for
// the textarea.
func DefaultStyles() (Style, Style) {
	focused := Style{
		Base: lipgloss.NewStyle(),
		CursorLine: lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "255", Dark: "0"}),
		CursorLineNumber: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240"}),
		EndOfBuffer: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "254", Dark: "0"}),
		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "249", Dark: "7"}),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("#4C3F72")),
		Marked:      lipgloss.NewStyle().Underline(true),
	}
	blurred := Style{
		Base: lipgloss.NewStyle(),
		CursorLine: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "7"}),
		CursorLineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "249", Dark: "7"}),
		EndOfBuffer: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "254", Dark: "0"}),
		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "249", Dark: "7"}),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "7"}),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Marked:    lipgloss.NewStyle().Underline(true),
	}

	return focused, blurred
}

// Model is the Bubble Tea model for this text area element.
type Model struct {
	Err error

	// Prompt is printed at the beginning of each line.
	Prompt string

	// Placeholder is the text displayed when the buffer is empty.
	Placeholder string

	// ShowLineNumbers, if enabled, causes line numbers to be printed
	// after the prompt.
	ShowLineNumbers bool

	// EndOfBufferCharacter is displayed on rows past the end of the input.
	EndOfBufferCharacter rune

	// KeyMap encodes the keybindings recognized by the widget.
	KeyMap KeyMap

	// FocusedStyle and BlurredStyle are used to style the textarea in
	// focused and blurred states.
	FocusedStyle Style
	BlurredStyle Style
	style        *Style

	// Cursor is the text area cursor.
	Cursor cursor.Model

	ed          *textbuf.Editor
	focus       bool
	width       int
	height      int
	horizOffset int

	viewport *viewport.Model
}

// New creates a new model with default settings.
func New() Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{}
	cur := cursor.New()

	focusedStyle, blurredStyle := DefaultStyles()

	m := Model{
		Prompt:               lipgloss.ThickBorder().Left + " ",
		style:                &blurredStyle,
		FocusedStyle:         focusedStyle,
		BlurredStyle:         blurredStyle,
		EndOfBufferCharacter: ' ',
		ShowLineNumbers:      true,
		Cursor:               cur,
		KeyMap:               DefaultKeyMap,
		ed:                   textbuf.NewEditor(""),
		viewport:             &vp,
	}

	m.SetHeight(defaultHeight)
	m.SetWidth(defaultWidth)

	return m
}

// Editor exposes the underlying byte-offset editor, primarily for the
// platform input-method bridge which speaks UTF-16 ranges.
func (m *Model) Editor() *textbuf.Editor { return m.ed }

// Value returns the contents of the text area.
func (m Model) Value() string { return m.ed.Content() }

// SetValue replaces the contents and resets cursor and selection.
func (m *Model) SetValue(s string) {
	m.ed.SetContent(s)
	m.horizOffset = 0
	m.viewport.SetYOffset(0)
}

// Reset clears the contents.
func (m *Model) Reset() { m.SetValue("") }

// Length returns the content length in bytes.
func (m Model) Length() int { return m.ed.Len() }

// LineCount returns the number of lines.
func (m Model) LineCount() int { return m.ed.LineCount() }

// Line returns the cursor line index.
func (m Model) Line() int {
	line, _ := m.ed.CursorPosition()
	return line
}

// Focused returns the focus state on the model.
func (m Model) Focused() bool { return m.focus }

// Focus sets the focus state on the model. When the model is in focus it can
// receive keyboard input and the cursor will be shown.
func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = &m.FocusedStyle
	return m.Cursor.Focus()
}

// Blur removes the focus state on the model.
func (m *Model) Blur() {
	m.focus = false
	m.style = &m.BlurredStyle
	m.Cursor.Blur()
}

// Width returns the content width of the textarea in columns.
func (m Model) Width() int { return m.width }

// SetWidth sets the total width of the textarea, including prompt and line
// number gutter.
func (m *Model) SetWidth(w int) {
	m.viewport.Width = max(w, 0)
	m.width = max(w-m.gutterWidth(), 1)
}

// Height returns the current height of the textarea.
func (m Model) Height() int { return m.height }

// SetHeight sets the height of the textarea.
func (m *Model) SetHeight(h int) {
	m.height = max(h, minHeight)
	m.viewport.Height = m.height
}

func (m Model) gutterWidth() int {
	w := lipgloss.Width(m.Prompt)
	if m.ShowLineNumbers {
		w += m.lineNumberWidth()
	}
	return w
}

func (m Model) lineNumberWidth() int {
	digits := len(fmt.Sprintf("%d", m.ed.LineCount()))
	if digits < 2 {
		digits = 2
	}
	return digits + 1
}

func (m Model) formatLineNumber(n int) string {
	return fmt.Sprintf("%*d ", m.lineNumberWidth()-1, n)
}

// CursorCell returns the cursor position as a visual cell column within the
// cursor line, accounting for wide characters.
func (m Model) CursorCell() int {
	line, col := m.ed.CursorPosition()
	text := m.ed.LineText(line)
	if col > len(text) {
		col = len(text)
	}
	return uniseg.StringWidth(text[:col])
}

// MoveToCell places the caret on the given line at the given visual cell
// column, snapping to the nearest character boundary. Used for mouse clicks.
func (m *Model) MoveToCell(line, cell int) {
	if line < 0 {
		line = 0
	}
	if line >= m.ed.LineCount() {
		line = m.ed.LineCount() - 1
	}
	text := m.ed.LineText(line)
	col := len(text)
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if width+w > cell {
			col, _ = gr.Positions()
			break
		}
		width += w
	}
	offset := m.ed.Buffer().OffsetFor(line, col)
	m.ed.SetSelection(offset, offset)
	m.repositionView()
	m.repositionHorizontal()
}

// ClickAt places the caret from widget-relative cell coordinates, adjusting
// for the gutter and current scroll offsets.
func (m *Model) ClickAt(x, y int) {
	row := y + m.viewport.YOffset
	cell := x - m.gutterWidth() + m.horizOffset
	if cell < 0 {
		cell = 0
	}
	m.MoveToCell(row, cell)
}

// Paste is a command for pasting from the clipboard into the text input.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return pasteErrMsg{err}
	}
	return pasteMsg(str)
}

func (m *Model) copySelection(cut bool) {
	var (
		text string
		ok   bool
	)
	if cut {
		text, ok = m.ed.CutText()
	} else {
		text, ok = m.ed.CopyText()
	}
	if !ok {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.Err = err
	}
}

// Update is the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focus {
		m.Cursor.Blur()
		return m, nil
	}

	// Used to determine if the cursor should blink.
	oldOffset := m.ed.CursorOffset()

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.CharacterForward):
			m.ed.MoveCharacter(textbuf.Forward, false)
		case key.Matches(msg, m.KeyMap.CharacterBackward):
			m.ed.MoveCharacter(textbuf.Backward, false)
		case key.Matches(msg, m.KeyMap.LineNext):
			m.ed.MoveLine(textbuf.Forward, false)
		case key.Matches(msg, m.KeyMap.LinePrevious):
			m.ed.MoveLine(textbuf.Backward, false)
		case key.Matches(msg, m.KeyMap.LineStart):
			m.ed.MoveLineEdge(textbuf.Backward, false)
		case key.Matches(msg, m.KeyMap.LineEnd):
			m.ed.MoveLineEdge(textbuf.Forward, false)
		case key.Matches(msg, m.KeyMap.InputBegin):
			m.ed.MoveDocumentEdge(textbuf.Backward, false)
		case key.Matches(msg, m.KeyMap.InputEnd):
			m.ed.MoveDocumentEdge(textbuf.Forward, false)
		case key.Matches(msg, m.KeyMap.SelectForward):
			m.ed.MoveCharacter(textbuf.Forward, true)
		case key.Matches(msg, m.KeyMap.SelectBackward):
			m.ed.MoveCharacter(textbuf.Backward, true)
		case key.Matches(msg, m.KeyMap.SelectDown):
			m.ed.MoveLine(textbuf.Forward, true)
		case key.Matches(msg, m.KeyMap.SelectUp):
			m.ed.MoveLine(textbuf.Backward, true)
		case key.Matches(msg, m.KeyMap.SelectLineStart):
			m.ed.MoveLineEdge(textbuf.Backward, true)
		case key.Matches(msg, m.KeyMap.SelectLineEnd):
			m.ed.MoveLineEdge(textbuf.Forward, true)
		case key.Matches(msg, m.KeyMap.SelectAll):
			m.ed.SelectAll()
		case key.Matches(msg, m.KeyMap.DeleteCharacterBackward):
			m.ed.DeleteBackward()
		case key.Matches(msg, m.KeyMap.DeleteCharacterForward):
			m.ed.DeleteForward()
		case key.Matches(msg, m.KeyMap.InsertNewline):
			m.ed.Enter()
		case key.Matches(msg, m.KeyMap.Copy):
			m.copySelection(false)
		case key.Matches(msg, m.KeyMap.Cut):
			m.copySelection(true)
		case key.Matches(msg, m.KeyMap.Paste):
			return m, Paste
		default:
			if len(msg.Runes) > 0 {
				m.ed.Insert(string(msg.Runes))
			}
		}

	case pasteMsg:
		m.ed.PasteText(string(msg))

	case pasteErrMsg:
		m.Err = msg
	}

	vp, cmd := m.viewport.Update(msg)
	m.viewport = &vp
	cmds = append(cmds, cmd)

	newOffset := m.ed.CursorOffset()
	m.Cursor, cmd = m.Cursor.Update(msg)
	if newOffset != oldOffset && m.Cursor.Mode() == cursor.CursorBlink {
		m.Cursor.Blink = false
		cmd = m.Cursor.BlinkCmd()
	}
	cmds = append(cmds, cmd)

	m.repositionView()
	m.repositionHorizontal()

	return m, tea.Batch(cmds...)
}

// repositionView keeps the cursor row inside the vertical viewport.
func (m *Model) repositionView() {
	row, _ := m.ed.CursorPosition()
	h := m.viewport.Height
	if h <= 0 {
		h = m.height
	}
	total := m.ed.LineCount()
	maxOff := max(total-h, 0)

	target := scroll.Align(row, m.viewport.YOffset, h, total)
	if target < 0 {
		target = 0
	}
	if target > maxOff {
		target = maxOff
	}
	m.viewport.YOffset = target
}

// repositionHorizontal keeps the cursor cell inside the horizontal window.
func (m *Model) repositionHorizontal() {
	if m.width <= 0 {
		m.horizOffset = 0
		return
	}
	row, _ := m.ed.CursorPosition()
	lineWidth := uniseg.StringWidth(m.ed.LineText(row))
	if lineWidth < m.width {
		m.horizOffset = 0
		return
	}

	margin := horizontalScrollMargin
	if maxMargin := max(0, (m.width-1)/2); margin > maxMargin {
		margin = maxMargin
	}

	cell := m.CursorCell()
	if cell-margin < m.horizOffset {
		m.horizOffset = max(cell-margin, 0)
	}
	if cell+1+margin > m.horizOffset+m.width {
		m.horizOffset = cell + 1 + margin - m.width
	}
	if maxOffset := max(0, lineWidth+1-m.width); m.horizOffset > maxOffset {
		m.horizOffset = maxOffset
	}
}

// View renders the text area in its current state.
func (m Model) View() string {
	if m.ed.Len() == 0 && m.Placeholder != "" && !m.focus {
		return m.placeholderView()
	}

	m.Cursor.TextStyle = m.style.computedCursorLine()

	var (
		s            strings.Builder
		buf          = m.ed.Buffer()
		sel          = m.ed.Selection()
		spans        = m.ed.SelectionSpans()
		cursorRow, _ = m.ed.CursorPosition()
		cursorOff    = m.ed.CursorOffset()
	)

	spanFor := make(map[int]textbuf.LineSpan, len(spans))
	for _, sp := range spans {
		spanFor[sp.Line] = sp
	}

	for l := 0; l < buf.LineCount(); l++ {
		lineStyle := m.style.computedText()
		if l == cursorRow {
			lineStyle = m.style.computedCursorLine()
		}

		s.WriteString(lineStyle.Render(m.style.computedPrompt().Render(m.Prompt)))
		if m.ShowLineNumbers {
			numStyle := m.style.computedLineNumber()
			if l == cursorRow {
				numStyle = m.style.computedCursorLineNumber()
			}
			s.WriteString(lineStyle.Render(numStyle.Render(m.formatLineNumber(l + 1))))
		}

		rendered, renderedWidth := m.renderLine(l, lineStyle, spanFor, cursorRow, cursorOff)
		if m.horizOffset > 0 {
			rendered = ansi.TruncateLeft(rendered, m.horizOffset, "")
			renderedWidth = max(renderedWidth-m.horizOffset, 0)
		}
		if renderedWidth > m.width {
			rendered = ansi.Truncate(rendered, m.width, "")
			renderedWidth = m.width
		}
		s.WriteString(rendered)

		if pad := m.width - renderedWidth; pad > 0 {
			padding := strings.Repeat(" ", pad)
			lineEnd := buf.LineStartOffset(l) + buf.LineLength(l)
			if !sel.Empty() && sel.Range.Start <= lineEnd && lineEnd < sel.Range.End {
				s.WriteString(m.style.Selection.Inherit(lineStyle).Inline(true).Render(padding[:1]))
				s.WriteString(lineStyle.Render(padding[1:]))
			} else {
				s.WriteString(lineStyle.Render(padding))
			}
		}
		s.WriteRune('\n')
	}

	for i := buf.LineCount(); i < m.height; i++ {
		s.WriteString(m.style.computedPrompt().Render(m.Prompt))
		eob := string(m.EndOfBufferCharacter)
		s.WriteString(m.style.computedEndOfBuffer().Render(eob))
		s.WriteRune('\n')
	}

	m.viewport.SetContent(s.String())
	return m.style.Base.Render(m.viewport.View())
}

// renderLine renders one line of content, applying selection and composition
// styling per grapheme cluster and splicing in the cursor glyph.
func (m Model) renderLine(
	l int,
	lineStyle lipgloss.Style,
	spanFor map[int]textbuf.LineSpan,
	cursorRow, cursorOff int,
) (string, int) {
	var (
		out   strings.Builder
		buf   = m.ed.Buffer()
		text  = buf.LineText(l)
		start = buf.LineStartOffset(l)
		width = 0
	)

	span, hasSpan := spanFor[l]
	marked, hasMarked := m.ed.MarkedRange()

	cursorHere := m.focus && l == cursorRow
	cursorDrawn := false

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		rel, _ := gr.Positions()
		cluster := gr.Str()

		style := lineStyle
		if hasSpan && rel >= span.Start && rel < span.End {
			style = m.style.Selection.Inherit(lineStyle).Inline(true)
		}
		if hasMarked && marked.Contains(start+rel) {
			style = m.style.Marked.Inherit(style).Inline(true)
		}

		if cursorHere && start+rel == cursorOff {
			m.Cursor.SetChar(cluster)
			out.WriteString(style.Render(m.Cursor.View()))
			cursorDrawn = true
		} else {
			out.WriteString(style.Render(cluster))
		}
		width += gr.Width()
	}

	if cursorHere && !cursorDrawn && cursorOff == start+len(text) {
		m.Cursor.SetChar(" ")
		out.WriteString(lineStyle.Render(m.Cursor.View()))
		width++
	}

	return out.String(), width
}

func (m Model) placeholderView() string {
	var s strings.Builder
	placeholder := m.style.computedPlaceholder()

	s.WriteString(m.style.computedPrompt().Render(m.Prompt))
	if m.ShowLineNumbers {
		s.WriteString(m.style.computedLineNumber().Render(m.formatLineNumber(1)))
	}
	s.WriteString(placeholder.Render(ansi.Truncate(m.Placeholder, m.width, "")))
	s.WriteRune('\n')

	for i := 1; i < m.height; i++ {
		s.WriteString(m.style.computedPrompt().Render(m.Prompt))
		s.WriteString(m.style.computedEndOfBuffer().Render(string(m.EndOfBufferCharacter)))
		s.WriteRune('\n')
	}

	m.viewport.SetContent(s.String())
	return m.style.Base.Render(m.viewport.View())
}
