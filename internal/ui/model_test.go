package ui

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restpad/internal/config"
	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
	"github.com/unkn0wn-root/restpad/internal/theme"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubClient(status int, body string) *httpclient.Client {
	client := httpclient.NewClient()
	client.SetHTTPFactory(func(httpclient.Options) (*http.Client, error) {
		return &http.Client{
			Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: status,
					Status:     http.StatusText(status),
					Proto:      "HTTP/1.1",
					Header:     http.Header{"Content-Type": {"application/json"}},
					Body:       io.NopCloser(strings.NewReader(body)),
					Request:    r,
				}, nil
			}),
		}, nil
	})
	return client
}

func newTestModel(t *testing.T, client *httpclient.Client) *Model {
	t.Helper()
	m := New(Config{
		Settings: config.DefaultSettings(),
		Theme:    theme.Dark(),
		Client:   client,
		History:  history.NewStore(filepath.Join(t.TempDir(), "history.json"), 10),
	})
	m.resize(100, 40)
	return m
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	if m.focus != focusURL {
		t.Fatalf("initial focus = %d, want focusURL", m.focus)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusHeaders {
		t.Fatalf("focus after tab = %d, want focusHeaders", m.focus)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusBody {
		t.Fatalf("focus after tab = %d, want focusBody", m.focus)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusURL {
		t.Fatalf("focus after shift+tab = %d, want focusURL", m.focus)
	}
}

func TestSendRequestWithEmptyURLWarns(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	if cmd := m.sendRequest(); cmd != nil {
		t.Fatal("expected nil cmd for empty URL")
	}
	if m.status.level != statusWarn {
		t.Fatalf("status level = %d, want warn", m.status.level)
	}
}

func TestSendRequestProducesResponse(t *testing.T) {
	m := newTestModel(t, stubClient(200, `{"ok":true}`))
	m.urlInput.SetValue("https://example.com/api")
	m.body.SetValue(`{"q":1}`)

	cmd := m.sendRequest()
	if cmd == nil {
		t.Fatal("expected send cmd")
	}
	if !m.sending {
		t.Fatal("model should be marked sending")
	}

	msg, ok := cmd().(responseMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want responseMsg", msg)
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}

	m.Update(msg)
	if m.sending {
		t.Fatal("sending flag not cleared")
	}
	if m.lastResponse == nil || m.lastResponse.StatusCode != 200 {
		t.Fatalf("lastResponse = %+v", m.lastResponse)
	}
	if m.status.level != statusSuccess {
		t.Fatalf("status level = %d, want success", m.status.level)
	}
}

func TestErrorStatusLevels(t *testing.T) {
	cases := []struct {
		code int
		want statusLevel
	}{
		{200, statusSuccess},
		{301, statusSuccess},
		{404, statusWarn},
		{503, statusError},
	}
	for _, tc := range cases {
		if got := statusLevelFor(tc.code); got != tc.want {
			t.Fatalf("statusLevelFor(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestRestoreEntryFillsPanes(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	m.restoreEntry(history.Entry{
		Method:      "DELETE",
		URL:         "https://example.com/x",
		RequestBody: `{"id":9}`,
	})

	if m.method() != "DELETE" {
		t.Fatalf("method = %q, want DELETE", m.method())
	}
	if m.urlInput.Value() != "https://example.com/x" {
		t.Fatalf("url = %q", m.urlInput.Value())
	}
	if m.body.Value() != `{"id":9}` {
		t.Fatalf("body = %q", m.body.Value())
	}
}

func TestRenderResponseIncludesHeadersAndBody(t *testing.T) {
	m := newTestModel(t, nil)
	out := m.renderResponse(&httpclient.Response{
		Status:     "200 OK",
		StatusCode: 200,
		Proto:      "HTTP/1.1",
		Headers:    http.Header{"Content-Type": {"application/json"}},
		Body:       []byte(`{"ok":true}`),
	})

	for _, want := range []string{"200 OK", "Content-Type", `{"ok":true}`} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestCurrentRequestParsesHeaderLines(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	m.urlInput.SetValue("https://example.com/api")
	m.headers.SetValue("Accept: application/xml\nX-Trace: abc\nnot a header\n: empty name")
	m.body.SetValue(`{"q":1}`)

	req := m.currentRequest()
	if got := req.Headers["Accept"]; got != "application/xml" {
		t.Fatalf("Accept = %q", got)
	}
	if got := req.Headers["X-Trace"]; got != "abc" {
		t.Fatalf("X-Trace = %q", got)
	}
	if got := req.Headers["Content-Type"]; got != "application/json" {
		t.Fatalf("default Content-Type = %q", got)
	}
	if len(req.Headers) != 3 {
		t.Fatalf("headers = %v, malformed lines should be skipped", req.Headers)
	}
}

func TestCurrentRequestKeepsExplicitContentType(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	m.headers.SetValue("Content-Type: text/plain")
	m.body.SetValue("hello")

	req := m.currentRequest()
	if got := req.Headers["Content-Type"]; got != "text/plain" {
		t.Fatalf("Content-Type = %q, want explicit value kept", got)
	}
}

func TestHeaderLinesRoundTrip(t *testing.T) {
	req := workspace.NewRequest("", "GET", "https://example.com")
	req.SetHeader("B-Second", "2")
	req.SetHeader("A-First", "1")

	text := formatHeaderLines(req)
	if text != "A-First: 1\nB-Second: 2" {
		t.Fatalf("formatted = %q", text)
	}
	parsed := parseHeaderLines(text)
	if parsed["A-First"] != "1" || parsed["B-Second"] != "2" {
		t.Fatalf("parsed = %v", parsed)
	}
}

func TestRestoreRequestFillsPanes(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	req := workspace.NewRequest("login", "POST", "https://example.com/login")
	req.SetHeader("Authorization", "Bearer tok")
	req.Body = `{"user":"x"}`

	m.restoreRequest(req)
	if m.method() != "POST" {
		t.Fatalf("method = %q", m.method())
	}
	if m.urlInput.Value() != "https://example.com/login" {
		t.Fatalf("url = %q", m.urlInput.Value())
	}
	if m.headers.Value() != "Authorization: Bearer tok" {
		t.Fatalf("headers = %q", m.headers.Value())
	}
	if m.body.Value() != `{"user":"x"}` {
		t.Fatalf("body = %q", m.body.Value())
	}
}

func TestToggleCollectionsListsSavedRequests(t *testing.T) {
	ws := workspace.New("test")
	col := workspace.NewCollection("default")
	col.Add(workspace.NewRequest("ping", "GET", "https://example.com/ping"))
	ws.AddCollection(col)

	m := newTestModel(t, stubClient(200, "{}"))
	m.cfg.Workspace = ws

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.showCollections || m.focus != focusCollections {
		t.Fatalf("toggle: show=%v focus=%d", m.showCollections, m.focus)
	}
	if got := len(collectionItems(ws)); got != 1 {
		t.Fatalf("collection items = %d, want 1", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.showCollections || m.focus != focusBody {
		t.Fatalf("untoggle: show=%v focus=%d", m.showCollections, m.focus)
	}
}

func TestQuitBinding(t *testing.T) {
	m := newTestModel(t, stubClient(200, "{}"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatal("expected quit cmd")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("cmd() = %#v, want tea.QuitMsg", msg)
	}
}
