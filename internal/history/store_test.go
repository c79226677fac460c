package history

import (
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestStore(t *testing.T, max int) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "history.json"), max)
}

func TestAppendOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t, 10)

	t1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Minute)

	if err := store.Append(Entry{ID: "1", ExecutedAt: t1, URL: "https://a.test"}); err != nil {
		t.Fatalf("append 1: %v", err)
	}
	if err := store.Append(Entry{ID: "2", ExecutedAt: t2, URL: "https://a.test"}); err != nil {
		t.Fatalf("append 2: %v", err)
	}

	entries := store.Entries()
	if len(entries) != 2 || entries[0].ID != "2" || entries[1].ID != "1" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestAppendCapsEntries(t *testing.T) {
	store := newTestStore(t, 2)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := store.Append(Entry{
			ID:         string(rune('a' + i)),
			ExecutedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want cap of 2", len(entries))
	}
	if entries[0].ID != "d" || entries[1].ID != "c" {
		t.Fatalf("kept wrong entries: %+v", entries)
	}
}

func TestStoreRoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	first := NewStore(path, 10)
	want := Entry{
		ID:         "x",
		ExecutedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Method:     "POST",
		URL:        "https://api.test/users",
		StatusCode: 201,
		Duration:   120 * time.Millisecond,
	}
	if err := first.Append(want); err != nil {
		t.Fatalf("append: %v", err)
	}

	second := NewStore(path, 10)
	entries := second.Entries()
	if len(entries) == 0 {
		// Entries() before Load() on a fresh store is empty by design.
		if err := second.Load(); err != nil {
			t.Fatalf("load: %v", err)
		}
		entries = second.Entries()
	}
	if len(entries) != 1 || entries[0].ID != "x" || entries[0].StatusCode != 201 {
		t.Fatalf("reloaded entries = %+v", entries)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, 10)
	if err := store.Append(Entry{ID: "keep"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(Entry{ID: "drop"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	ok, err := store.Delete("drop")
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	ok, err = store.Delete("missing")
	if err != nil || ok {
		t.Fatalf("Delete missing = %v, %v", ok, err)
	}

	entries := store.Entries()
	if len(entries) != 1 || entries[0].ID != "keep" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestByURL(t *testing.T) {
	store := newTestStore(t, 10)
	store.Append(Entry{ID: "1", URL: "https://a.test"})
	store.Append(Entry{ID: "2", URL: "https://b.test"})

	got := store.ByURL("https://a.test")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("ByURL = %+v", got)
	}
	if all := store.ByURL("  "); len(all) != 2 {
		t.Fatalf("blank url should return all, got %d", len(all))
	}
}

func TestSnippetCutsOnScalarBoundary(t *testing.T) {
	// 100 é's: 200 bytes; the 200-byte cap would split the 100th é.
	long := ""
	for i := 0; i < 101; i++ {
		long += "é"
	}
	got := snippet(long, 199)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet produced invalid UTF-8: %q", got)
	}
}

func TestEntryDisplayName(t *testing.T) {
	named := Entry{Method: "GET", RequestName: "health", URL: "https://x.test"}
	if got := named.DisplayName(); got != "GET health" {
		t.Errorf("DisplayName() = %q", got)
	}
	anon := Entry{Method: "GET", URL: "https://x.test"}
	if got := anon.DisplayName(); got != "GET https://x.test" {
		t.Errorf("DisplayName() = %q", got)
	}
}
