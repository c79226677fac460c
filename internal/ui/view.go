package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"

	"github.com/unkn0wn-root/restpad/internal/httpclient"
)

const (
	statusBarHeight  = 1
	requestBarHeight = 1

	// headerPaneContent is the visible rows of the headers editor;
	// headerPaneRows adds the pane border and title.
	headerPaneContent = 3
	headerPaneRows    = headerPaneContent + 3
)

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = width > 0 && height > 0

	paneHeight := max(height-requestBarHeight-statusBarHeight-2, 3)
	half := max(width/2-2, 10)

	m.urlInput.Width = max(width-20, 10)
	m.headers.SetWidth(half)
	m.headers.SetHeight(headerPaneContent)
	m.body.SetWidth(half)
	m.body.SetHeight(max(paneHeight-headerPaneRows-2, 3))
	m.respView.Width = half
	m.respView.Height = paneHeight - 2
	m.histList.SetSize(max(width-4, 10), paneHeight)
	m.collList.SetSize(max(width-4, 10), paneHeight)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.requestBar())
	b.WriteRune('\n')

	switch {
	case m.showHistory:
		b.WriteString(m.pane("History", m.histList.View(), m.focus == focusHistory, m.width-2))
	case m.showCollections:
		b.WriteString(m.pane("Collections", m.collList.View(), m.focus == focusCollections, m.width-2))
	default:
		headers := m.pane("Headers", m.headers.View(), m.focus == focusHeaders, m.width/2-2)
		body := m.pane("Body", m.body.View(), m.focus == focusBody, m.width/2-2)
		left := lipgloss.JoinVertical(lipgloss.Left, headers, body)
		resp := m.pane("Response", m.respView.View(), m.focus == focusResponse, m.width/2-2)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, resp))
	}
	b.WriteRune('\n')
	b.WriteString(m.statusBar())
	return b.String()
}

func (m *Model) requestBar() string {
	badge := m.th.MethodBadge.Render(" " + m.method() + " ")
	if m.focus == focusMethod {
		badge = m.th.PaneBorderFocused.Render(badge)
	}
	url := m.th.URLText.Render(m.urlInput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", url)
}

func (m *Model) pane(title, content string, focused bool, width int) string {
	border := m.th.PaneBorder
	if focused {
		border = m.th.PaneBorderFocused
	}
	heading := m.th.PaneTitle.Render(title)
	return border.Width(max(width, 10)).Render(heading + "\n" + content)
}

func (m *Model) statusBar() string {
	style := m.th.StatusInfo
	switch m.status.level {
	case statusWarn:
		style = m.th.StatusWarn
	case statusError:
		style = m.th.StatusError
	case statusSuccess:
		style = m.th.StatusSuccess
	}
	_ = style

	text := m.status.text
	if m.sending {
		text = "Sending... (esc to cancel)"
	}
	if text == "" {
		text = "ctrl+enter send · ctrl+r history · ctrl+o collections · ctrl+w save · ctrl+q quit"
	}
	return m.th.StatusBar.Render(rw.Truncate(text, max(m.width, 10), "…"))
}

// renderResponse formats status line, headers and body for the response pane.
func (m *Model) renderResponse(resp *httpclient.Response) string {
	if resp == nil {
		return ""
	}

	statusStyle := m.th.ResponseStatusOK
	if resp.StatusCode >= 400 {
		statusStyle = m.th.ResponseStatusErr
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s %s", resp.Proto, resp.Status)))
	b.WriteRune('\n')
	b.WriteString(m.th.ResponseMeta.Render(fmt.Sprintf("%s · %s",
		resp.Duration.Round(time.Millisecond),
		resp.EffectiveURL,
	)))
	b.WriteString("\n\n")

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(m.th.ResponseMeta.Render(name + ": " + strings.Join(resp.Headers[name], ", ")))
		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(resp.BodyText())
	return b.String()
}
