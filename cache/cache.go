// Package cache persists a schedule's priced cost matrices to disk so
// repeated bapsolve invocations with the same seed/tables skip re-deriving
// them. The schedule itself is not cached; it is regenerated from the seed
// on every run. Grounded on the reference pack's own
// object-cache helper: msgpack over a flate-compressed file.
package cache

import (
	"compress/flate"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the on-disk unit of caching: the seed and flight count a
// schedule was generated from plus its priced cost matrices, keyed by turn
// id string. It does not hold the turns themselves.
type Snapshot struct {
	Seed       int64
	NFlights   int
	TurnCosts  map[string]map[string]float64
	TowCosts   map[string]float64
	NoBayCosts map[string]float64
}

// Key derives a stable cache key from the generator inputs that determine a
// Snapshot's contents: the seed, the flight count, and the mtimes of every
// table file consulted, so a touched table invalidates the cache without the
// caller tracking versions by hand.
func Key(seed int64, nflights int, tableFiles ...string) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "seed=%d;nflights=%d", seed, nflights)
	for _, path := range tableFiles {
		fi, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("cache: stat %s: %w", path, err)
		}
		fmt.Fprintf(h, ";%s@%d", path, fi.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Store is a bounded in-memory LRU backed by an on-disk directory of
// msgpack+flate snapshots, one file per key.
type Store struct {
	dir string
	mem *lru.Cache[string, Snapshot]
}

// NewStore opens (creating if absent) a disk-backed store rooted at dir,
// with an in-memory LRU of the most recently used size entries.
func NewStore(dir string, size int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating %s: %w", dir, err)
	}
	mem, err := lru.New[string, Snapshot](size)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, mem: mem}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".bin")
}

// Get returns the snapshot for key, checking memory before disk.
func (s *Store) Get(key string) (Snapshot, bool, error) {
	if snap, ok := s.mem.Get(key); ok {
		return snap, true, nil
	}
	f, err := os.Open(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("cache: opening %s: %w", key, err)
	}
	defer f.Close()

	fr := flate.NewReader(f)
	defer fr.Close()

	var snap Snapshot
	if err := msgpack.NewDecoder(fr).Decode(&snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("cache: decoding %s: %w", key, err)
	}
	s.mem.Add(key, snap)
	return snap, true, nil
}

// Put writes snap under key, both to memory and to disk.
func (s *Store) Put(key string, snap Snapshot) error {
	s.mem.Add(key, snap)

	f, err := os.Create(s.path(key))
	if err != nil {
		return fmt.Errorf("cache: creating %s: %w", key, err)
	}
	defer f.Close()

	fw, err := flate.NewWriter(f, flate.BestSpeed)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(fw).Encode(snap); err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}
	return fw.Close()
}
