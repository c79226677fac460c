package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectionAddRemove(t *testing.T) {
	c := NewCollection("api")
	c.Add(NewRequest("list users", "get", "https://api.test/users"))
	c.Add(NewRequest("create user", "post", "https://api.test/users"))

	if len(c.Requests) != 2 {
		t.Fatalf("len(Requests) = %d, want 2", len(c.Requests))
	}
	if c.Requests[0].Method != "GET" {
		t.Fatalf("method not uppercased: %q", c.Requests[0].Method)
	}

	if !c.Remove(0) {
		t.Fatal("Remove(0) failed")
	}
	if c.Remove(5) {
		t.Fatal("Remove(5) succeeded out of range")
	}
	req, ok := c.Get(0)
	if !ok || req.Name != "create user" {
		t.Fatalf("Get(0) = %+v, %v", req, ok)
	}
}

func TestRequestDisplayName(t *testing.T) {
	named := NewRequest("health", "GET", "https://api.test/healthz")
	if got := named.DisplayName(); got != "health" {
		t.Errorf("DisplayName() = %q, want name", got)
	}
	anon := NewRequest("", "GET", "https://api.test/healthz")
	if got := anon.DisplayName(); got != "GET https://api.test/healthz" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestLoadMissingFileYieldsEmptyWorkspace(t *testing.T) {
	ws, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Name != "default" || len(ws.Collections) != 0 {
		t.Fatalf("got %+v, want fresh default workspace", ws)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.yaml")

	ws := New("team")
	col := NewCollection("billing")
	req := NewRequest("invoice", "POST", "https://api.test/invoices")
	req.SetHeader("Content-Type", "application/json")
	req.Body = "{\n  \"total\": 12\n}"
	col.Add(req)
	ws.AddCollection(col)

	if err := Save(path, ws); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := loaded.Collection("billing")
	if !ok || len(got.Requests) != 1 {
		t.Fatalf("loaded workspace = %+v", loaded)
	}
	if got.Requests[0].Body != req.Body {
		t.Fatalf("body = %q, want %q", got.Requests[0].Body, req.Body)
	}
	if got.Requests[0].Headers["Content-Type"] != "application/json" {
		t.Fatalf("headers = %+v", got.Requests[0].Headers)
	}
}

func TestSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workspace.yaml")
	if err := Save(path, New("a")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}
