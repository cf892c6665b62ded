package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyStableForSameInputs(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "aircraft.json")
	require.NoError(t, os.WriteFile(f, []byte("{}"), 0o644))

	k1, err := Key(1, 100, f)
	require.NoError(t, err)
	k2, err := Key(1, 100, f)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}

func TestKeyChangesWithTableMtime(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "aircraft.json")
	require.NoError(t, os.WriteFile(f, []byte("{}"), 0o644))

	k1, err := Key(1, 100, f)
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(f, later, later))

	k2, err := Key(1, 100, f)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestKeyMissingFileErrors(t *testing.T) {
	_, err := Key(1, 100, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestStorePutGetRoundTrips(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "cache"), 8)
	require.NoError(t, err)

	snap := Snapshot{
		Seed:       3,
		NFlights:   10,
		TurnCosts:  map[string]map[string]float64{"AA100": {"A/1": 12.5}},
		TowCosts:   map[string]float64{"AA100": 400},
		NoBayCosts: map[string]float64{"AA100": 1000},
	}
	require.NoError(t, store.Put("key-1", snap))

	got, hit, err := store.Get("key-1")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, snap, got)
}

func TestStoreGetMissReturnsFalse(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "cache"), 8)
	require.NoError(t, err)
	_, hit, err := store.Get("nonexistent")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestStoreGetSurvivesMemoryEviction(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	store, err := NewStore(dir, 1)
	require.NoError(t, err)

	snapA := Snapshot{Seed: 1}
	snapB := Snapshot{Seed: 2}
	require.NoError(t, store.Put("a", snapA))
	require.NoError(t, store.Put("b", snapB))

	got, hit, err := store.Get("a")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, snapA, got)
}
