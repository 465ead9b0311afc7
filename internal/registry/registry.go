// Package registry persists which auxiliary server integrations the user has
// enabled. The file is deliberately tiny — one JSON object with a sorted
// name list — and tolerant: a missing or mangled file degrades to "nothing
// enabled" rather than blocking the CLI.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"statuskit/internal/app"
	"statuskit/internal/util"
)

// registryFile is the fixed on-disk file name.
const registryFile = "server_registry.json"

// StateHomeEnv overrides the directory used to persist registry state.
const StateHomeEnv = "STATUSKIT_STATE_HOME"

var logger = app.NewLogger(os.Stderr)

// Registry tracks user-managed server enablement state.
type Registry struct {
	enabled map[string]struct{}
}

type registryFileFormat struct {
	Enabled []string `json:"enabled"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{enabled: make(map[string]struct{})}
}

// Load reads the registry from disk. A missing file yields an empty
// registry; an unparsable file yields an empty registry plus a warning.
// Any other filesystem error propagates.
func Load(home string) (*Registry, error) {
	path, err := Path(home)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading server registry %s: %w", path, err)
	}

	var file registryFileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("failed to parse server registry, starting empty", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return New(), nil
	}
	reg := New()
	for _, name := range file.Enabled {
		reg.enabled[name] = struct{}{}
	}
	return reg, nil
}

// Save persists the registry, atomically replacing any existing file.
func (r *Registry) Save(home string) error {
	path, err := Path(home)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating registry dir: %w", err)
	}
	data, err := json.MarshalIndent(registryFileFormat{Enabled: r.Enabled()}, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, append(data, '\n'), 0o644)
}

// Enabled returns the enabled server names, sorted.
func (r *Registry) Enabled() []string {
	names := make([]string, 0, len(r.enabled))
	for name := range r.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetEnabled enables or disables a server. Reports whether the registry
// changed.
func (r *Registry) SetEnabled(name string, enable bool) bool {
	_, present := r.enabled[name]
	if enable {
		if present {
			return false
		}
		r.enabled[name] = struct{}{}
		return true
	}
	if !present {
		return false
	}
	delete(r.enabled, name)
	return true
}

// IsEnabled reports whether the named server is enabled.
func (r *Registry) IsEnabled(name string) bool {
	_, ok := r.enabled[name]
	return ok
}

// Path resolves where registry state lives: the env override wins, then the
// XDG state directory, then a state subdirectory under home.
func Path(home string) (string, error) {
	if base := os.Getenv(StateHomeEnv); base != "" {
		return filepath.Join(base, registryFile), nil
	}
	if base := stateDir(); base != "" {
		return filepath.Join(base, "statuskit", registryFile), nil
	}
	if home == "" {
		return "", errors.New("no registry location: state home, XDG state dir and home are all unset")
	}
	return filepath.Join(home, "state", registryFile), nil
}

func stateDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return base
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state")
	}
	return ""
}
