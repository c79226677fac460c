// Package ui implements the terminal frontend: a request pane with a
// byte-offset body editor, a response pane and a persistent history list,
// glued together with Bubble Tea.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restpad/internal/bindings"
	"github.com/unkn0wn-root/restpad/internal/config"
	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
	"github.com/unkn0wn-root/restpad/internal/theme"
	"github.com/unkn0wn-root/restpad/internal/ui/textarea"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

// methods is the rotation order for the method selector.
var methods = []string{
	"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
}

type focusZone int

const (
	focusMethod focusZone = iota
	focusURL
	focusHeaders
	focusBody
	focusResponse
	focusHistory
	focusCollections
)

// Config carries everything the model needs from the composition root.
type Config struct {
	Settings      config.Settings
	Theme         theme.Theme
	Keys          *bindings.Map
	Client        *httpclient.Client
	ClientOptions httpclient.Options
	History       *history.Store
	Workspace     *workspace.Workspace
	WorkspacePath string
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg Config
	th  theme.Theme

	methodIdx int
	urlInput  textinput.Model
	headers   textarea.Model
	body      textarea.Model
	respView  viewport.Model
	histList  list.Model
	collList  list.Model

	focus           focusZone
	showHistory     bool
	showCollections bool

	lastResponse *httpclient.Response
	sending      bool
	sendCancel   context.CancelFunc

	status statusMsg

	width  int
	height int
	ready  bool
}

// New builds the root model. The history store is loaded asynchronously via
// Init so startup never blocks on disk.
func New(cfg Config) *Model {
	if cfg.Keys == nil {
		cfg.Keys = bindings.DefaultMap()
	}

	url := textinput.New()
	url.Placeholder = "https://api.example.com/resource"
	url.Prompt = ""

	body := textarea.New()
	body.Placeholder = `{"key": "value"}`
	body.ShowLineNumbers = cfg.Settings.ShowLineNums
	body.FocusedStyle.CursorLine = cfg.Theme.EditorCursorLine
	body.FocusedStyle.LineNumber = cfg.Theme.EditorLineNumber
	body.FocusedStyle.Selection = cfg.Theme.EditorSelection
	body.FocusedStyle.Marked = cfg.Theme.EditorMarked

	// One "Name: value" per line.
	headers := textarea.New()
	headers.Placeholder = "Accept: application/json"
	headers.ShowLineNumbers = false
	headers.FocusedStyle.Selection = cfg.Theme.EditorSelection

	hist := list.New(nil, newHistoryDelegate(cfg.Theme), 0, 0)
	hist.Title = "History"
	hist.SetShowStatusBar(false)
	hist.SetFilteringEnabled(true)
	hist.DisableQuitKeybindings()

	coll := list.New(nil, newHistoryDelegate(cfg.Theme), 0, 0)
	coll.Title = "Collections"
	coll.SetShowStatusBar(false)
	coll.SetFilteringEnabled(true)
	coll.DisableQuitKeybindings()

	m := &Model{
		cfg:      cfg,
		th:       cfg.Theme,
		urlInput: url,
		headers:  headers,
		body:     body,
		respView: viewport.New(0, 0),
		histList: hist,
		collList: coll,
		focus:    focusURL,
	}
	m.urlInput.Focus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistoryCmd())
}

// Editor exposes the body editor widget, used by the platform input-method
// bridge to deliver UTF-16 composition events.
func (m *Model) Editor() *textarea.Model { return &m.body }

func (m *Model) method() string { return methods[m.methodIdx] }

func (m *Model) cycleMethod(delta int) {
	m.methodIdx = (m.methodIdx + delta + len(methods)) % len(methods)
}

func (m *Model) setStatus(text string, level statusLevel) {
	m.status = statusMsg{text: text, level: level}
}

// currentRequest snapshots the editable panes into a workspace request.
func (m *Model) currentRequest() workspace.Request {
	req := workspace.NewRequest("", m.method(), m.urlInput.Value())
	req.Body = m.body.Value()
	for name, value := range parseHeaderLines(m.headers.Value()) {
		req.SetHeader(name, value)
	}
	if req.Body != "" {
		if _, ok := req.Headers["Content-Type"]; !ok {
			req.SetHeader("Content-Type", "application/json")
		}
	}
	return req
}

// parseHeaderLines reads one "Name: value" header per line. Lines without a
// colon or with an empty name are skipped.
func parseHeaderLines(text string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		out[name] = strings.TrimSpace(value)
	}
	return out
}

// formatHeaderLines is the inverse of parseHeaderLines, names sorted.
func formatHeaderLines(req workspace.Request) string {
	var b strings.Builder
	for _, name := range req.HeaderNames() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name + ": " + req.Headers[name])
	}
	return b.String()
}

func (m *Model) setFocus(zone focusZone) tea.Cmd {
	m.urlInput.Blur()
	m.headers.Blur()
	m.body.Blur()

	m.focus = zone
	switch zone {
	case focusURL:
		return m.urlInput.Focus()
	case focusHeaders:
		return m.headers.Focus()
	case focusBody:
		return m.body.Focus()
	}
	return nil
}

// focusOrder is the tab rotation. History and collections participate only
// when visible.
func (m *Model) focusNext(delta int) tea.Cmd {
	order := []focusZone{focusMethod, focusURL, focusHeaders, focusBody, focusResponse}
	if m.showHistory {
		order = append(order, focusHistory)
	}
	if m.showCollections {
		order = append(order, focusCollections)
	}

	idx := 0
	for i, zone := range order {
		if zone == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}
