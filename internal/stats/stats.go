package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Stats tracks lookup counters across invocations.
type Stats struct {
	Lookups int `json:"lookups"`
	Matches int `json:"matches"`
}

// Store persists Stats as JSON at Path.
type Store struct {
	Path string
}

// DefaultPath is ~/.ouilookup/stats.json, or empty if HOME is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ouilookup", "stats.json")
}

// Load reads the stats file. Returns zero stats if the file doesn't exist.
func (s Store) Load() (Stats, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	if err := json.Unmarshal(data, &st); err != nil {
		return Stats{}, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return st, nil
}

// save writes stats to disk, creating the directory if needed.
func (s Store) save(st Stats) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

// Record counts one lookup and whether it matched.
func (s Store) Record(matched bool) (Stats, error) {
	if s.Path == "" {
		return Stats{}, errors.New("no stats path")
	}
	st, err := s.Load()
	if err != nil {
		// A corrupt file is replaced rather than blocking the counter.
		st = Stats{}
	}
	st.Lookups++
	if matched {
		st.Matches++
	}
	return st, s.save(st)
}
