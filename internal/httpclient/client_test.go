package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/unkn0wn-root/restpad/internal/errdef"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

func TestExecuteSendsMethodHeadersAndBody(t *testing.T) {
	var (
		gotMethod string
		gotHeader string
		gotBody   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Token")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	req := workspace.NewRequest("create", "post", server.URL)
	req.SetHeader("X-Token", "abc123")
	req.Body = `{"name":"demo"}`

	resp, err := NewClient().Execute(context.Background(), req, Options{
		Timeout:         5 * time.Second,
		FollowRedirects: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotHeader != "abc123" {
		t.Errorf("X-Token = %q", gotHeader)
	}
	if gotBody != req.Body {
		t.Errorf("body = %q, want %q", gotBody, req.Body)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if resp.BodyText() != `{"ok":true}` {
		t.Errorf("BodyText() = %q", resp.BodyText())
	}
	if resp.Headers.Get("Content-Type") != "application/json" {
		t.Errorf("response headers = %+v", resp.Headers)
	}
	if resp.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", resp.Duration)
	}
}

func TestExecuteEmptyURL(t *testing.T) {
	req := workspace.NewRequest("bad", "GET", "   ")
	_, err := NewClient().Execute(context.Background(), req, Options{})
	if err == nil {
		t.Fatal("expected error for empty url")
	}
	if errdef.CodeOf(err) != errdef.CodeHTTP {
		t.Fatalf("CodeOf(err) = %q, want %q", errdef.CodeOf(err), errdef.CodeHTTP)
	}
}

func TestExecuteDefaultsMethodToGet(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer server.Close()

	req := workspace.Request{URL: server.URL}
	if _, err := NewClient().Execute(context.Background(), req, Options{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
}

func TestExecuteStopsRedirectsWhenDisabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("done"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	req := workspace.NewRequest("redirect", "GET", server.URL+"/start")

	resp, err := NewClient().Execute(context.Background(), req, Options{FollowRedirects: false})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("StatusCode = %d, want 302", resp.StatusCode)
	}

	resp, err = NewClient().Execute(context.Background(), req, Options{FollowRedirects: true})
	if err != nil {
		t.Fatalf("Execute follow: %v", err)
	}
	if resp.StatusCode != http.StatusOK || resp.BodyText() != "done" {
		t.Fatalf("followed response = %d %q", resp.StatusCode, resp.BodyText())
	}
	if resp.EffectiveURL != server.URL+"/end" {
		t.Fatalf("EffectiveURL = %q", resp.EffectiveURL)
	}
}

func TestExecuteContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req := workspace.NewRequest("slow", "GET", server.URL)
	if _, err := NewClient().Execute(ctx, req, Options{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
