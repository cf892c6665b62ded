package model

import "sort"

// CategoryRange is a contiguous inclusive range of admissible wake categories.
type CategoryRange struct {
	Lo, Hi Category
}

// Admits reports whether c falls inside the range.
func (r CategoryRange) Admits(c Category) bool {
	return c.InRange(r.Lo, r.Hi)
}

// BayKey composite-identifies a bay by terminal and 1-based index.
type BayKey struct {
	Terminal TerminalID
	Index    int
}

// Bay is a single parking stand: its size class, walking distance, and the
// aircraft categories it admits.
type Bay struct {
	Key  BayKey
	Size SizeClass
	Dist float64
	Cat  CategoryRange
}

// Bays indexes every bay of a terminal by its 1-based index.
type Bays map[int]Bay

// BayMap is the full layout output: terminal -> index -> Bay.
type BayMap map[TerminalID]Bays

// Lookup returns the bay at (terminal, index), or false if absent.
func (m BayMap) Lookup(key BayKey) (Bay, bool) {
	bays, ok := m[key.Terminal]
	if !ok {
		return Bay{}, false
	}
	b, ok := bays[key.Index]
	return b, ok
}

// Keys returns every (terminal, index) pair in the map, sorted by terminal
// then index so callers get a stable, reproducible iteration order.
func (m BayMap) Keys() []BayKey {
	keys := make([]BayKey, 0)
	for ter, bays := range m {
		for idx := range bays {
			keys = append(keys, BayKey{Terminal: ter, Index: idx})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Terminal != keys[j].Terminal {
			return keys[i].Terminal < keys[j].Terminal
		}
		return keys[i].Index < keys[j].Index
	})
	return keys
}
