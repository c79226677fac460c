// Package history records executed requests so they can be recalled and
// replayed from the history pane.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/restpad/internal/errdef"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
)

const defaultMaxEntries = 50

type Entry struct {
	ID          string        `json:"id"`
	ExecutedAt  time.Time     `json:"executedAt"`
	RequestName string        `json:"requestName,omitempty"`
	Method      string        `json:"method"`
	URL         string        `json:"url"`
	Status      string        `json:"status"`
	StatusCode  int           `json:"statusCode"`
	Duration    time.Duration `json:"duration"`
	BodySnippet string        `json:"bodySnippet,omitempty"`
	RequestBody string        `json:"requestBody,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// NewEntry builds a history entry from an execution outcome. Either resp or
// execErr may be nil.
func NewEntry(resp *httpclient.Response, execErr error) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		ExecutedAt: time.Now().UTC(),
	}
	if execErr != nil {
		entry.Error = execErr.Error()
	}
	if resp == nil {
		return entry
	}
	entry.RequestName = resp.Request.Name
	entry.Method = resp.Request.Method
	entry.URL = resp.Request.URL
	entry.Status = resp.Status
	entry.StatusCode = resp.StatusCode
	entry.Duration = resp.Duration
	entry.BodySnippet = snippet(resp.BodyText(), 200)
	entry.RequestBody = resp.Request.Body
	return entry
}

// DisplayName is what the history list shows for the entry.
func (e Entry) DisplayName() string {
	name := e.RequestName
	if name == "" {
		name = e.URL
	}
	return strings.TrimSpace(e.Method + " " + name)
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	// Cut on a scalar boundary, not mid-sequence.
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "…"
}

// Store keeps history entries newest-first in a JSON file. Writes replace
// the file via a temp sibling so a crash cannot truncate existing history.
type Store struct {
	path       string
	maxEntries int
	entries    []Entry
	mu         sync.RWMutex
	loaded     bool
}

func NewStore(path string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Store{path: path, maxEntries: maxEntries}
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked()
}

func (s *Store) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}

	s.entries = append([]Entry{entry}, s.entries...)
	s.sortEntriesLocked()
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[:s.maxEntries]
	}
	return s.persist()
}

func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copies := make([]Entry, len(s.entries))
	copy(copies, s.entries)
	return copies
}

func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return false, err
	}

	idx := -1
	for i, entry := range s.entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	copy(s.entries[idx:], s.entries[idx+1:])
	s.entries = s.entries[:len(s.entries)-1]
	return true, s.persist()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}
	s.entries = s.entries[:0]
	return s.persist()
}

// ByURL returns entries for one URL, newest first. A blank URL returns
// everything.
func (s *Store) ByURL(url string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return s.copyLocked()
	}

	var matched []Entry
	for _, entry := range s.entries {
		if entry.URL == trimmed {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (s *Store) copyLocked() []Entry {
	copies := make([]Entry, len(s.entries))
	copy(copies, s.entries)
	return copies
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create history dir")
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errdef.Wrap(errdef.CodeHistory, err, "encode history")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write history tmp")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace history file")
	}
	return nil
}

func (s *Store) sortEntriesLocked() {
	if len(s.entries) < 2 {
		return
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		return newerFirst(s.entries[i], s.entries[j])
	})
}

func (s *Store) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.entries = []Entry{}
			s.loaded = true
			return nil
		}
		return errdef.Wrap(errdef.CodeHistory, err, "read history")
	}

	if len(data) == 0 {
		s.entries = []Entry{}
		s.loaded = true
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return errdef.Wrap(errdef.CodeHistory, err, "parse history")
	}

	s.sortEntriesLocked()
	s.loaded = true
	return nil
}

func newerFirst(a, b Entry) bool {
	ai := a.ExecutedAt
	bi := b.ExecutedAt
	switch {
	case ai.IsZero() && bi.IsZero():
		return a.ID > b.ID
	case ai.IsZero():
		return false
	case bi.IsZero():
		return true
	case ai.Equal(bi):
		return a.ID > b.ID
	default:
		return ai.After(bi)
	}
}
