package cache

import (
	"fmt"
	"strconv"
	"strings"

	"bap/backend/cost"
	"bap/backend/model"
)

// bayKeyString and parseBayKey round-trip a BayKey through the plain-string
// map keys msgpack needs, since BayKey's zero value isn't string-typed.
func bayKeyString(k model.BayKey) string {
	return fmt.Sprintf("%s/%d", k.Terminal, k.Index)
}

func parseBayKey(s string) (model.BayKey, error) {
	ter, idx, ok := strings.Cut(s, "/")
	if !ok {
		return model.BayKey{}, fmt.Errorf("cache: malformed bay key %q", s)
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return model.BayKey{}, fmt.Errorf("cache: malformed bay key %q: %w", s, err)
	}
	return model.BayKey{Terminal: model.TerminalID(ter), Index: i}, nil
}

// ToSnapshot flattens a Builder's priced cost matrices into the
// string-keyed shape Snapshot stores.
func ToSnapshot(seed int64, nflights int, turnCosts cost.TurnCosts, towCosts cost.TowCosts, noBayCosts cost.NoBayCosts) Snapshot {
	snap := Snapshot{
		Seed:       seed,
		NFlights:   nflights,
		TurnCosts:  make(map[string]map[string]float64, len(turnCosts)),
		TowCosts:   make(map[string]float64, len(towCosts)),
		NoBayCosts: make(map[string]float64, len(noBayCosts)),
	}
	for turn, row := range turnCosts {
		flat := make(map[string]float64, len(row))
		for bay, v := range row {
			flat[bayKeyString(bay)] = v
		}
		snap.TurnCosts[turn.String()] = flat
	}
	for turn, v := range towCosts {
		snap.TowCosts[turn.String()] = v
	}
	for turn, v := range noBayCosts {
		snap.NoBayCosts[turn.String()] = v
	}
	return snap
}

// FromSnapshot reconstitutes the typed cost matrices a Snapshot holds, for
// handing straight to milp.Input on a cache hit.
func FromSnapshot(snap Snapshot, table *model.TurnTable) (cost.TurnCosts, cost.TowCosts, cost.NoBayCosts, error) {
	byString := make(map[string]model.TurnID, len(table.All()))
	for _, t := range table.All() {
		byString[t.ID.String()] = t.ID
	}

	turnCosts := make(cost.TurnCosts, len(snap.TurnCosts))
	for turnStr, flat := range snap.TurnCosts {
		id, ok := byString[turnStr]
		if !ok {
			return nil, nil, nil, fmt.Errorf("cache: snapshot references unknown turn %q", turnStr)
		}
		row := make(map[model.BayKey]float64, len(flat))
		for bayStr, v := range flat {
			key, err := parseBayKey(bayStr)
			if err != nil {
				return nil, nil, nil, err
			}
			row[key] = v
		}
		turnCosts[id] = row
	}

	towCosts := make(cost.TowCosts, len(snap.TowCosts))
	for turnStr, v := range snap.TowCosts {
		id, ok := byString[turnStr]
		if !ok {
			return nil, nil, nil, fmt.Errorf("cache: snapshot references unknown turn %q", turnStr)
		}
		towCosts[id] = v
	}

	noBayCosts := make(cost.NoBayCosts, len(snap.NoBayCosts))
	for turnStr, v := range snap.NoBayCosts {
		id, ok := byString[turnStr]
		if !ok {
			return nil, nil, nil, fmt.Errorf("cache: snapshot references unknown turn %q", turnStr)
		}
		noBayCosts[id] = v
	}

	return turnCosts, towCosts, noBayCosts, nil
}
