package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// AdjacencyTable encodes, per terminal-type and size pair of neighboring
// bays, which (cat_i, cat_i2) pairings violate wingtip clearance. Absence at
// any level of the chain means "no restriction" — use Forbidden rather than
// indexing the maps directly.
type AdjacencyTable map[TerminalID]map[SizeClass]map[SizeClass]map[Category]map[Category]bool

// Forbidden reports whether an aircraft of category c1 parked at a bay of
// size s1 forbids an aircraft of category c2 at the neighboring bay of size
// s2, within terminal t.
func (a AdjacencyTable) Forbidden(t TerminalID, s1, s2 SizeClass, c1, c2 Category) bool {
	bySize1, ok := a[t]
	if !ok {
		return false
	}
	bySize2, ok := bySize1[s1]
	if !ok {
		return false
	}
	byCat1, ok := bySize2[s2]
	if !ok {
		return false
	}
	forbidden, ok := byCat1[c1]
	if !ok {
		return false
	}
	return forbidden[c2]
}

type rawAdjEntry = map[string]map[string]map[string][]string

// LoadAdjacencyTableFromReader decodes {type -> size1 -> size2 -> cat_i ->
// [cat_i2 ...]}, where presence in the list means "forbidden".
func LoadAdjacencyTableFromReader(r io.Reader) (AdjacencyTable, error) {
	var raw rawAdjEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding adjacency table: %w", err)
	}
	out := make(AdjacencyTable, len(raw))
	for terminal, bySize1 := range raw {
		t := TerminalID(terminal)
		out[t] = make(map[SizeClass]map[SizeClass]map[Category]map[Category]bool, len(bySize1))
		for size1, bySize2 := range bySize1 {
			if len(size1) != 1 {
				return nil, fmt.Errorf("adjacency table: invalid size class %q", size1)
			}
			s1 := SizeClass(size1[0])
			out[t][s1] = make(map[SizeClass]map[Category]map[Category]bool, len(bySize2))
			for size2, byCat := range bySize2 {
				if len(size2) != 1 {
					return nil, fmt.Errorf("adjacency table: invalid size class %q", size2)
				}
				s2 := SizeClass(size2[0])
				out[t][s1][s2] = make(map[Category]map[Category]bool, len(byCat))
				for cat1, cats2 := range byCat {
					c1, err := parseCategory(cat1)
					if err != nil {
						return nil, fmt.Errorf("adjacency table: %w", err)
					}
					set := make(map[Category]bool, len(cats2))
					for _, cat2 := range cats2 {
						c2, err := parseCategory(cat2)
						if err != nil {
							return nil, fmt.Errorf("adjacency table: %w", err)
						}
						set[c2] = true
					}
					out[t][s1][s2][c1] = set
				}
			}
		}
	}
	return out, nil
}
