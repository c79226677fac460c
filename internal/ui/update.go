package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restpad/internal/bindings"
	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleAction(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if cmd, handled := m.handleClick(msg.X, msg.Y); handled {
				return m, cmd
			}
		}

	case responseMsg:
		m.sending = false
		m.sendCancel = nil
		if msg.canceled {
			m.setStatus("Request canceled", statusWarn)
			return m, nil
		}
		if msg.err != nil {
			m.lastResponse = nil
			m.respView.SetContent(m.th.StatusError.Render(msg.err.Error()))
			m.setStatus(fmt.Sprintf("Request failed: %v", msg.err), statusError)
		} else {
			m.lastResponse = msg.response
			m.respView.SetContent(m.renderResponse(msg.response))
			m.respView.GotoTop()
			m.setStatus(fmt.Sprintf("%s in %s",
				msg.response.Status,
				msg.response.Duration.Round(time.Millisecond),
			), statusLevelFor(msg.response.StatusCode))
		}
		return m, m.appendHistoryCmd(msg.response, msg.err)

	case historyLoadedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("History unavailable: %v", msg.err), statusWarn)
			return m, nil
		}
		return m, m.histList.SetItems(historyItems(msg.entries))

	case historySavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("History not saved: %v", msg.err), statusWarn)
			return m, nil
		}
		return m, m.refreshHistoryCmd()

	case workspaceSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Workspace not saved: %v", msg.err), statusError)
			return m, nil
		}
		m.setStatus("Workspace saved", statusSuccess)
		return m, m.collList.SetItems(collectionItems(m.cfg.Workspace))
	}

	cmds = append(cmds, m.updateFocused(msg))
	return m, tea.Batch(cmds...)
}

// handleAction consults the configurable bindings before any widget sees the
// key. Returns handled=false to let the focused widget consume it.
func (m *Model) handleAction(msg tea.KeyMsg) (tea.Cmd, bool) {
	action, ok := m.cfg.Keys.Match(msg.String())
	if !ok {
		return nil, false
	}

	switch action {
	case bindings.ActionQuit:
		return tea.Quit, true

	case bindings.ActionSendRequest:
		return m.sendRequest(), true

	case bindings.ActionCancelRequest:
		if m.sendCancel != nil {
			m.sendCancel()
			m.setStatus("Canceling in-progress request...", statusInfo)
			return nil, true
		}
		if m.showHistory && m.focus == focusHistory {
			m.showHistory = false
			return m.setFocus(focusBody), true
		}
		if m.showCollections && m.focus == focusCollections {
			m.showCollections = false
			return m.setFocus(focusBody), true
		}
		return nil, false

	case bindings.ActionFocusNext:
		return m.focusNext(1), true

	case bindings.ActionFocusPrev:
		return m.focusNext(-1), true

	case bindings.ActionToggleHistory:
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.showCollections = false
			return tea.Batch(m.setFocus(focusHistory), m.refreshHistoryCmd()), true
		}
		return m.setFocus(focusBody), true

	case bindings.ActionToggleCollections:
		m.showCollections = !m.showCollections
		if m.showCollections {
			m.showHistory = false
			return tea.Batch(
				m.setFocus(focusCollections),
				m.collList.SetItems(collectionItems(m.cfg.Workspace)),
			), true
		}
		return m.setFocus(focusBody), true

	case bindings.ActionSaveWorkspace:
		return m.saveWorkspaceCmd(), true
	}
	return nil, false
}

// handleClick focuses the pane under the pointer and, for the editors,
// places the caret at the clicked cell.
func (m *Model) handleClick(x, y int) (tea.Cmd, bool) {
	if m.showHistory || m.showCollections || y <= requestBarHeight {
		return nil, false
	}

	if x >= m.width/2 {
		return m.setFocus(focusResponse), true
	}

	// Panes wrap their content in a border plus a title row.
	headerTop := requestBarHeight + 2
	bodyTop := requestBarHeight + headerPaneRows + 2
	if y < requestBarHeight+headerPaneRows {
		cmd := m.setFocus(focusHeaders)
		if y >= headerTop {
			m.headers.ClickAt(x-1, y-headerTop)
		}
		return cmd, true
	}
	cmd := m.setFocus(focusBody)
	if y >= bodyTop {
		m.body.ClickAt(x-1, y-bodyTop)
	}
	return cmd, true
}

// updateFocused routes remaining messages to the focused widget.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.focus {
	case focusMethod:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "left", "up", "k":
				m.cycleMethod(-1)
			case "right", "down", "j", " ", "enter":
				m.cycleMethod(1)
			}
		}
	case focusURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case focusHeaders:
		m.headers, cmd = m.headers.Update(msg)
	case focusBody:
		m.body, cmd = m.body.Update(msg)
	case focusResponse:
		m.respView, cmd = m.respView.Update(msg)
	case focusHistory:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			if item, ok := m.histList.SelectedItem().(historyItem); ok {
				m.restoreEntry(item.entry)
				return m.setFocus(focusBody)
			}
		}
		m.histList, cmd = m.histList.Update(msg)
	case focusCollections:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			if item, ok := m.collList.SelectedItem().(collectionItem); ok {
				m.restoreRequest(item.req)
				return m.setFocus(focusBody)
			}
		}
		m.collList, cmd = m.collList.Update(msg)
	}
	return cmd
}

// restoreEntry loads a history entry back into the request panes.
func (m *Model) restoreEntry(e history.Entry) {
	for i, name := range methods {
		if name == e.Method {
			m.methodIdx = i
			break
		}
	}
	m.urlInput.SetValue(e.URL)
	m.body.SetValue(e.RequestBody)
	m.showHistory = false
	m.setStatus(fmt.Sprintf("Restored %s", e.DisplayName()), statusInfo)
}

// restoreRequest loads a saved workspace request back into the panes,
// headers included.
func (m *Model) restoreRequest(req workspace.Request) {
	for i, name := range methods {
		if name == req.Method {
			m.methodIdx = i
			break
		}
	}
	m.urlInput.SetValue(req.URL)
	m.headers.SetValue(formatHeaderLines(req))
	m.body.SetValue(req.Body)
	m.showCollections = false
	m.setStatus(fmt.Sprintf("Loaded %s", req.DisplayName()), statusInfo)
}

func (m *Model) sendRequest() tea.Cmd {
	if m.sending {
		m.setStatus("A request is already in flight", statusWarn)
		return nil
	}
	if strings.TrimSpace(m.urlInput.Value()) == "" {
		m.setStatus("Enter a URL first", statusWarn)
		return nil
	}

	req := m.currentRequest()
	ctx, cancel := context.WithCancel(context.Background())
	m.sendCancel = cancel
	m.sending = true
	m.setStatus(fmt.Sprintf("Sending %s %s...", req.Method, req.URL), statusInfo)

	client := m.cfg.Client
	opts := m.cfg.ClientOptions
	return func() tea.Msg {
		defer cancel()
		resp, err := client.Execute(ctx, req, opts)
		if errors.Is(err, context.Canceled) {
			return responseMsg{canceled: true}
		}
		return responseMsg{response: resp, err: err}
	}
}

func (m *Model) appendHistoryCmd(resp *httpclient.Response, execErr error) tea.Cmd {
	store := m.cfg.History
	if store == nil {
		return nil
	}
	entry := history.NewEntry(resp, execErr)
	return func() tea.Msg {
		return historySavedMsg{err: store.Append(entry)}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	store := m.cfg.History
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		err := store.Load()
		return historyLoadedMsg{entries: store.Entries(), err: err}
	}
}

func (m *Model) refreshHistoryCmd() tea.Cmd {
	store := m.cfg.History
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return historyLoadedMsg{entries: store.Entries()}
	}
}

func (m *Model) saveWorkspaceCmd() tea.Cmd {
	ws := m.cfg.Workspace
	path := m.cfg.WorkspacePath
	if ws == nil || path == "" {
		m.setStatus("No workspace file configured", statusWarn)
		return nil
	}

	req := m.currentRequest()
	col, ok := ws.Collection("default")
	if !ok {
		ws.AddCollection(workspace.NewCollection("default"))
		col, _ = ws.Collection("default")
	}
	col.Add(req)

	return func() tea.Msg {
		return workspaceSavedMsg{err: workspace.Save(path, ws)}
	}
}

func statusLevelFor(code int) statusLevel {
	switch {
	case code >= 500:
		return statusError
	case code >= 400:
		return statusWarn
	default:
		return statusSuccess
	}
}
