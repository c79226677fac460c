// Package bindings resolves user-configurable keyboard shortcuts for the
// application-level actions. Users may override defaults with a
// bindings.toml or bindings.json file in the config directory.
package bindings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Format identifies the serialization format for shortcut configs.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Source describes where the bindings config was loaded from.
type Source struct {
	Path   string
	Format Format
}

// ActionID uniquely identifies a shortcut action.
type ActionID string

const (
	ActionSendRequest       ActionID = "send_request"
	ActionCancelRequest     ActionID = "cancel_request"
	ActionFocusNext         ActionID = "focus_next"
	ActionFocusPrev         ActionID = "focus_prev"
	ActionToggleHistory     ActionID = "toggle_history"
	ActionToggleCollections ActionID = "toggle_collections"
	ActionSaveWorkspace     ActionID = "save_workspace"
	ActionQuit              ActionID = "quit"
)

type actionDef struct {
	id   ActionID
	keys []string
}

// defaults is the built-in shortcut table. Order matters only for listing.
var defaults = []actionDef{
	{ActionSendRequest, []string{"ctrl+enter", "ctrl+s"}},
	{ActionCancelRequest, []string{"esc"}},
	{ActionFocusNext, []string{"tab"}},
	{ActionFocusPrev, []string{"shift+tab"}},
	{ActionToggleHistory, []string{"ctrl+r"}},
	{ActionToggleCollections, []string{"ctrl+o"}},
	{ActionSaveWorkspace, []string{"ctrl+w"}},
	{ActionQuit, []string{"ctrl+q", "ctrl+c"}},
}

// Map stores runtime shortcut bindings keyed by key string.
type Map struct {
	byKey    map[string]ActionID
	byAction map[ActionID][]string
}

// Load attempts to read bindings from bindings.toml/json in dir. A missing
// file falls back to the defaults; a malformed one is an error.
func Load(dir string) (*Map, Source, error) {
	candidates := []Source{
		{Path: filepath.Join(dir, "bindings.toml"), Format: FormatTOML},
		{Path: filepath.Join(dir, "bindings.json"), Format: FormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read bindings %q: %w", candidate.Path, err),
			)
			continue
		}

		overrides, err := parseConfig(data, candidate.Format)
		if err != nil {
			return nil, Source{}, fmt.Errorf("parse bindings %q: %w", candidate.Path, err)
		}
		built, err := buildMap(overrides)
		if err != nil {
			return nil, Source{}, fmt.Errorf("apply bindings %q: %w", candidate.Path, err)
		}
		return built, candidate, nil
	}

	if accumulated != nil {
		return nil, Source{}, accumulated
	}

	built, err := buildMap(nil)
	if err != nil {
		return nil, Source{}, err
	}
	return built, Source{Path: candidates[0].Path, Format: FormatTOML}, nil
}

// DefaultMap builds the built-in bindings without consulting disk.
func DefaultMap() *Map {
	m, err := buildMap(nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Match returns the action bound to a key string, if any.
func (m *Map) Match(key string) (ActionID, bool) {
	if m == nil {
		return "", false
	}
	id, ok := m.byKey[NormalizeKeyString(key)]
	return id, ok
}

// Keys returns the key strings bound to an action.
func (m *Map) Keys(action ActionID) []string {
	if m == nil {
		return nil
	}
	keys := m.byAction[action]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func parseConfig(data []byte, format Format) (map[ActionID][]string, error) {
	var payload struct {
		Bindings map[string][]string `json:"bindings" toml:"bindings"`
	}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported bindings format %q", format)
	}

	known := make(map[ActionID]struct{}, len(defaults))
	for _, def := range defaults {
		known[def.id] = struct{}{}
	}

	overrides := make(map[ActionID][]string, len(payload.Bindings))
	for key, specs := range payload.Bindings {
		id := ActionID(key)
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("unknown action %q", key)
		}
		overrides[id] = specs
	}
	return overrides, nil
}

func buildMap(overrides map[ActionID][]string) (*Map, error) {
	m := &Map{
		byKey:    make(map[string]ActionID),
		byAction: make(map[ActionID][]string, len(defaults)),
	}

	for _, def := range defaults {
		keys := def.keys
		if replacement, ok := overrides[def.id]; ok {
			keys = replacement
		}
		for _, raw := range keys {
			key := NormalizeKeyString(raw)
			if key == "" {
				return nil, fmt.Errorf("empty key for action %q", def.id)
			}
			if prev, taken := m.byKey[key]; taken && prev != def.id {
				return nil, fmt.Errorf("key %q bound to both %q and %q", key, prev, def.id)
			}
			m.byKey[key] = def.id
			m.byAction[def.id] = append(m.byAction[def.id], key)
		}
	}
	return m, nil
}

// NormalizeKeyString lowercases a key spec and orders its modifiers so that
// "Ctrl+Shift+S" and "shift+ctrl+s" compare equal.
func NormalizeKeyString(raw string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(raw)), "+")
	if len(parts) == 1 {
		return parts[0]
	}

	mods := parts[:len(parts)-1]
	sort.Strings(mods)
	return strings.Join(append(mods, parts[len(parts)-1]), "+")
}

// KnownActions lists every action the bindings system understands.
func KnownActions() []ActionID {
	ids := make([]ActionID, 0, len(defaults))
	for _, def := range defaults {
		ids = append(ids, def.id)
	}
	return ids
}
