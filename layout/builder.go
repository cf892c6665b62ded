// Package layout builds a terminal's bay inventory from its size-class
// descriptors: counts, category ranges, and per-class walking distance unit.
package layout

import (
	"fmt"
	"math"

	"bap/backend/model"
)

// Build produces a bay for every 1-based index of every terminal described
// by the layout, following the derivation of spec §4.1: Large bays first
// (indices 1..N_L), then Small (N_L+1..N_L+N_S), then remote Bus bays for any
// remaining indices.
func Build(desc model.Layout) (model.BayMap, error) {
	out := make(model.BayMap, len(desc))
	for terminal, td := range desc {
		bays, err := buildTerminal(td)
		if err != nil {
			return nil, fmt.Errorf("building bays for terminal %s: %w", terminal, err)
		}
		out[terminal] = bays
	}
	return out, nil
}

func buildTerminal(td model.TerminalDescriptor) (model.Bays, error) {
	l := td.Classes[model.SizeL]
	s := td.Classes[model.SizeS]
	b := td.Classes[model.SizeB]

	total := l.Count + s.Count + b.Count
	bays := make(model.Bays, total)

	for k := 1; k <= total; k++ {
		switch {
		case k <= l.Count:
			bays[k] = model.Bay{
				Key:  model.BayKey{Terminal: td.ID, Index: k},
				Size: model.SizeL,
				Dist: math.Ceil(float64(k)/2)*l.DistUnit - l.DistUnit/2,
				Cat:  model.CategoryRange{Lo: l.CatLo, Hi: l.CatHi},
			}
		case k <= l.Count+s.Count:
			bays[k] = model.Bay{
				Key:  model.BayKey{Terminal: td.ID, Index: k},
				Size: model.SizeS,
				Dist: s.DistUnit/2 + math.Ceil(float64(l.Count)/2)*l.DistUnit + s.DistUnit*(math.Ceil(float64(k-l.Count)/2)-1),
				Cat:  model.CategoryRange{Lo: s.CatLo, Hi: s.CatHi},
			}
		default:
			bays[k] = model.Bay{
				Key:  model.BayKey{Terminal: td.ID, Index: k},
				Size: model.SizeB,
				Dist: b.DistUnit,
				Cat:  model.CategoryRange{Lo: b.CatLo, Hi: b.CatHi},
			}
		}
	}
	return bays, nil
}
