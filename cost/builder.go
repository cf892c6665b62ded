// Package cost builds the per-(turn, terminal, bay) walking-cost matrix, the
// per-long-turn tow cost, and the per-flight no-bay fallback cost (spec §4.4).
package cost

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"bap/backend/model"
)

// bayCatKey memoizes the admissible-bay-set test shared by the MILP
// constraint families and infeasibility diagnosis.
type bayCatKey struct {
	cat      model.Category
	terminal model.TerminalID
}

// Builder prices a decomposed schedule against a bay layout and cost table.
type Builder struct {
	AC    model.AircraftTable
	Bays  model.BayMap
	Costs model.CostTable

	admitCache *lru.Cache[bayCatKey, []model.BayKey]
}

// NewBuilder constructs a Builder with a bounded LRU cache for the
// (category, terminal) -> admissible-bay-set lookup, repeated for every turn
// by the MILP's compatibility, assignment and time-conflict constraint
// families. Cost construction prices every bay without consulting it.
func NewBuilder(ac model.AircraftTable, bays model.BayMap, costs model.CostTable) (*Builder, error) {
	cache, err := lru.New[bayCatKey, []model.BayKey](4096)
	if err != nil {
		return nil, err
	}
	return &Builder{AC: ac, Bays: bays, Costs: costs, admitCache: cache}, nil
}

// AdmissibleBays returns every (terminal-local) bay key in terminal admitting
// cat, sorted by index and memoized across calls.
func (b *Builder) AdmissibleBays(cat model.Category, terminal model.TerminalID) []model.BayKey {
	key := bayCatKey{cat: cat, terminal: terminal}
	if keys, ok := b.admitCache.Get(key); ok {
		return keys
	}
	var keys []model.BayKey
	for idx, bay := range b.Bays[terminal] {
		if bay.Cat.Admits(cat) {
			keys = append(keys, model.BayKey{Terminal: terminal, Index: idx})
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Index < keys[j].Index })
	b.admitCache.Add(key, keys)
	return keys
}

// terminals returns every terminal id in the layout, sorted, so callers get
// a stable enumeration order.
func (b *Builder) terminals() []model.TerminalID {
	out := make([]model.TerminalID, 0, len(b.Bays))
	for t := range b.Bays {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AdmissibleBaysAll returns every bay key, across every terminal, admitting
// cat, sorted by terminal then index.
func (b *Builder) AdmissibleBaysAll(cat model.Category) []model.BayKey {
	var out []model.BayKey
	for _, terminal := range b.terminals() {
		out = append(out, b.AdmissibleBays(cat, terminal)...)
	}
	return out
}

// TurnCosts is the sparse turn/bay cost matrix: c_x(i,t,k).
type TurnCosts map[model.TurnID]map[model.BayKey]float64

// BuildTurnCosts computes c_x for every turn in turns against every bay in
// the layout, following spec §4.4's base-cost / split-halving / wrong-terminal
// / preference-discount rules.
func (b *Builder) BuildTurnCosts(turns []model.Turn) (TurnCosts, error) {
	out := make(TurnCosts, len(turns))
	for _, turn := range turns {
		ac, err := b.AC.Lookup(turn.AC)
		if err != nil {
			return nil, err
		}
		row := make(map[model.BayKey]float64)
		for terminal, bays := range b.Bays {
			for idx, bay := range bays {
				key := model.BayKey{Terminal: terminal, Index: idx}
				row[key] = b.turnBayCost(turn, ac, bay, terminal)
			}
		}
		if turn.Pref != nil {
			prefKey := model.BayKey{Terminal: turn.Pref.Terminal, Index: turn.Pref.Bay}
			if cur, ok := row[prefKey]; ok {
				row[prefKey] = cur / turn.Pref.Weight
			}
		}
		out[turn.ID] = row
	}
	return out, nil
}

func (b *Builder) turnBayCost(turn model.Turn, ac model.AircraftType, bay model.Bay, terminal model.TerminalID) float64 {
	if turn.ID.Split == model.SplitP {
		return 1
	}
	a := 1.0
	if turn.ID.Split == model.SplitA || turn.ID.Split == model.SplitD {
		a = 2
	}
	base := float64(ac.Cap) * bay.Dist / a
	if terminal != turn.Terminal && terminal != model.BUS {
		base *= b.Costs.TerPenalty
	}
	return base
}

// TowCosts is c_w(f): the tow cost of every long turn's Full variant.
type TowCosts map[model.TurnID]float64

// BuildTowCosts prices every long-turn Full variant by aircraft category.
func (b *Builder) BuildTowCosts(fulls []model.Turn) (TowCosts, error) {
	out := make(TowCosts, len(fulls))
	for _, f := range fulls {
		ac, err := b.AC.Lookup(f.AC)
		if err != nil {
			return nil, err
		}
		cost, ok := b.Costs.Tow[ac.Cat]
		if !ok {
			return nil, errCategoryNotPriced("tow", ac.Cat)
		}
		out[f.ID] = cost
	}
	return out, nil
}

// NoBayCosts is c_y(i): the no-bay fallback penalty for every turn that may
// carry a y variable (S ∪ L_F).
type NoBayCosts map[model.TurnID]float64

// BuildNoBayCosts prices the no-bay fallback for every short turn and every
// long-turn Full variant.
func (b *Builder) BuildNoBayCosts(shortsAndFulls []model.Turn) (NoBayCosts, error) {
	out := make(NoBayCosts, len(shortsAndFulls))
	for _, t := range shortsAndFulls {
		ac, err := b.AC.Lookup(t.AC)
		if err != nil {
			return nil, err
		}
		cost, ok := b.Costs.NoBay[ac.Cat]
		if !ok {
			return nil, errCategoryNotPriced("no-bay", ac.Cat)
		}
		out[t.ID] = cost
	}
	return out, nil
}
