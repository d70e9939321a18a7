package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	st, err := Store{Path: filepath.Join(t.TempDir(), "stats.json")}.Load()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestRecord(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "nested", "stats.json")}

	_, err := store.Record(true)
	require.NoError(t, err)
	_, err = store.Record(false)
	require.NoError(t, err)
	st, err := store.Record(true)
	require.NoError(t, err)
	assert.Equal(t, Stats{Lookups: 3, Matches: 2}, st)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, st, loaded)
}

func TestRecordReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := Store{Path: path}.Load()
	assert.Error(t, err)

	st, err := Store{Path: path}.Record(false)
	require.NoError(t, err)
	assert.Equal(t, Stats{Lookups: 1}, st)
}

func TestRecordWithoutPath(t *testing.T) {
	_, err := Store{}.Record(true)
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".ouilookup", "stats.json"), DefaultPath())
}
