package milp

import (
	"fmt"
	"sort"
	"time"

	"bap/backend/cost"
	"bap/backend/model"
)

func keySet(keys []model.BayKey) map[model.BayKey]bool {
	set := make(map[model.BayKey]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// compatibilityConstraints is family 1: force x[i,t,k]=0 wherever the
// aircraft's category is inadmissible at (t,k), plus the Parking-sub-turn
// guard restricting fP strictly to terminal==BUS (Open Question #3).
func compatibilityConstraints(allTurns []model.Turn, ac model.AircraftTable, bayIndex *model.BayIndexer, cb *cost.Builder) ([]Constraint, error) {
	var out []Constraint
	for _, turn := range allTurns {
		aircraft, err := ac.Lookup(turn.AC)
		if err != nil {
			return nil, err
		}
		admitted := keySet(cb.AdmissibleBaysAll(aircraft.Cat))
		for _, key := range bayIndex.Keys() {
			if !admitted[key] {
				out = append(out, zeroConstraint("Compat", turn.ID, key))
				continue
			}
			if turn.ID.Split == model.SplitP && key.Terminal != model.BUS {
				out = append(out, zeroConstraint("ParkingGuard", turn.ID, key))
			}
		}
	}
	return out, nil
}

func zeroConstraint(tag string, turn model.TurnID, bay model.BayKey) Constraint {
	return Constraint{
		Name: fmt.Sprintf("%s_%s_%s_%d", tag, turn, bay.Terminal, bay.Index),
		Expr: LinExpr{{Coef: 1, Var: XName(turn, bay)}},
		Op:   EQ,
		RHS:  0,
	}
}

// assignmentShortConstraints is family 2.
func assignmentShortConstraints(shorts []model.Turn, ac model.AircraftTable, cb *cost.Builder) ([]Constraint, error) {
	out := make([]Constraint, 0, len(shorts))
	for _, turn := range shorts {
		aircraft, err := ac.Lookup(turn.AC)
		if err != nil {
			return nil, err
		}
		admissible := cb.AdmissibleBaysAll(aircraft.Cat)
		expr := make(LinExpr, 0, len(admissible)+1)
		for _, key := range admissible {
			expr = append(expr, Term{Coef: 1, Var: XName(turn.ID, key)})
		}
		expr = append(expr, Term{Coef: 1, Var: YName(turn.ID)})
		out = append(out, Constraint{
			Name: fmt.Sprintf("AssignConstFlight%s", turn.ID),
			Expr: expr,
			Op:   EQ,
			RHS:  1,
		})
	}
	return out, nil
}

// assignmentLongConstraints is family 3: the Full line plus the three
// w-equality split constraints (Open Question #4: emitted as Σx == w, not
// w - Σx == 0).
func assignmentLongConstraints(fulls []model.Turn, table *model.TurnTable, ac model.AircraftTable, cb *cost.Builder) ([]Constraint, error) {
	out := make([]Constraint, 0, len(fulls)*4)
	for _, full := range fulls {
		aircraft, err := ac.Lookup(full.AC)
		if err != nil {
			return nil, err
		}
		admissible := cb.AdmissibleBaysAll(aircraft.Cat)
		var nonBus, bus []model.BayKey
		for _, key := range admissible {
			if key.Terminal == model.BUS {
				bus = append(bus, key)
			} else {
				nonBus = append(nonBus, key)
			}
		}

		fullExpr := make(LinExpr, 0, len(admissible)+2)
		for _, key := range admissible {
			fullExpr = append(fullExpr, Term{Coef: 1, Var: XName(full.ID, key)})
		}
		fullExpr = append(fullExpr, Term{Coef: 1, Var: WName(full.ID)}, Term{Coef: 1, Var: YName(full.ID)})
		out = append(out, Constraint{
			Name: fmt.Sprintf("AssignConstraintFullFlight%s", full.ID),
			Expr: fullExpr,
			Op:   EQ,
			RHS:  1,
		})

		for _, kind := range []model.SplitKind{model.SplitA, model.SplitD} {
			splitID := model.NewSplitTurnID(full.ID.Bare, kind)
			if _, _, ok := table.Lookup(splitID); !ok {
				return nil, fmt.Errorf("milp: split %s missing for long turn %s", splitID, full.ID)
			}
			expr := make(LinExpr, 0, len(nonBus)+1)
			for _, key := range nonBus {
				expr = append(expr, Term{Coef: 1, Var: XName(splitID, key)})
			}
			expr = append(expr, Term{Coef: -1, Var: WName(full.ID)})
			out = append(out, Constraint{
				Name: fmt.Sprintf("AssignConstSplitFlight%s", splitID),
				Expr: expr,
				Op:   EQ,
				RHS:  0,
			})
		}

		parkID := model.NewSplitTurnID(full.ID.Bare, model.SplitP)
		if _, _, ok := table.Lookup(parkID); !ok {
			return nil, fmt.Errorf("milp: split %s missing for long turn %s", parkID, full.ID)
		}
		parkExpr := make(LinExpr, 0, len(bus)+1)
		for _, key := range bus {
			parkExpr = append(parkExpr, Term{Coef: 1, Var: XName(parkID, key)})
		}
		parkExpr = append(parkExpr, Term{Coef: -1, Var: WName(full.ID)})
		out = append(out, Constraint{
			Name: fmt.Sprintf("AssignConstSplitFlight%s", parkID),
			Expr: parkExpr,
			Op:   EQ,
			RHS:  0,
		})
	}
	return out, nil
}

// mandatoryTowConstraints is family 4.
func mandatoryTowConstraints(fulls []model.Turn) []Constraint {
	out := make([]Constraint, 0)
	for _, full := range fulls {
		if full.Tow {
			out = append(out, Constraint{
				Name: fmt.Sprintf("TowConstFlight%s", full.ID),
				Expr: LinExpr{{Coef: 1, Var: WName(full.ID)}},
				Op:   EQ,
				RHS:  1,
			})
		}
	}
	return out
}

// bufferedInterval is a turn's time window widened by the scheduling buffer
// (Open Question #2: arr-t_arr_buf, dep+t_dep_buf — the widen-window
// semantics, not the source's same-direction shift).
type bufferedInterval struct {
	turn  model.Turn
	start time.Time
	end   time.Time
}

func buildBufferedIntervals(turns []model.Turn, tBuf time.Duration) []bufferedInterval {
	out := make([]bufferedInterval, len(turns))
	for i, t := range turns {
		out[i] = bufferedInterval{turn: t, start: t.ETA.Add(-tBuf), end: t.ETD.Add(tBuf)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start.Before(out[j].start) })
	return out
}

// overlappingPairs sweeps the buffered intervals, sorted once by start, with
// a sliding active window — O(|M| log |M| + pairs) rather than the naive
// O(|M|²) double loop (Design Notes §9), finding exactly the pairs the
// symmetric interval-overlap test would (Open Question #1).
func overlappingPairs(turns []model.Turn, tBuf time.Duration) [][2]model.Turn {
	sorted := buildBufferedIntervals(turns, tBuf)
	var pairs [][2]model.Turn
	window := make([]bufferedInterval, 0, len(sorted))
	for _, cur := range sorted {
		kept := window[:0]
		for _, active := range window {
			if !active.end.Before(cur.start) {
				kept = append(kept, active)
				if active.turn.ID.Parent() != cur.turn.ID.Parent() {
					pairs = append(pairs, [2]model.Turn{active.turn, cur.turn})
				}
			}
		}
		window = append(kept, cur)
	}
	return pairs
}

// timeConflictConstraints is family 5.
func timeConflictConstraints(allTurns []model.Turn, ac model.AircraftTable, cb *cost.Builder, tBuf time.Duration) ([]Constraint, error) {
	pairs := overlappingPairs(allTurns, tBuf)
	out := make([]Constraint, 0, len(pairs))
	for _, pair := range pairs {
		i1, i2 := pair[0], pair[1]
		ac1, err := ac.Lookup(i1.AC)
		if err != nil {
			return nil, err
		}
		ac2, err := ac.Lookup(i2.AC)
		if err != nil {
			return nil, err
		}
		set2 := keySet(cb.AdmissibleBaysAll(ac2.Cat))
		for _, key := range cb.AdmissibleBaysAll(ac1.Cat) {
			if !set2[key] {
				continue
			}
			out = append(out, Constraint{
				Name: fmt.Sprintf("TimeConstTer%sBay%dFlights%s&%s", key.Terminal, key.Index, i1.ID, i2.ID),
				Expr: LinExpr{{Coef: 1, Var: XName(i1.ID, key)}, {Coef: 1, Var: XName(i2.ID, key)}},
				Op:   LE,
				RHS:  1,
			})
		}
	}
	return out, nil
}

// adjacencyConstraints is family 6. Bays step by 2 because odd/even indices
// sit across the pier; (k, k+2) are the side-by-side pair.
func adjacencyConstraints(allTurns []model.Turn, ac model.AircraftTable, bays model.BayMap, adj model.AdjacencyTable, tBuf time.Duration) ([]Constraint, error) {
	pairs := overlappingPairs(allTurns, tBuf)
	terminals := make([]model.TerminalID, 0, len(bays))
	for t := range bays {
		terminals = append(terminals, t)
	}
	sort.Slice(terminals, func(i, j int) bool { return terminals[i] < terminals[j] })

	out := make([]Constraint, 0)
	for _, pair := range pairs {
		i1, i2 := pair[0], pair[1]
		ac1, err := ac.Lookup(i1.AC)
		if err != nil {
			return nil, err
		}
		ac2, err := ac.Lookup(i2.AC)
		if err != nil {
			return nil, err
		}
		for _, terminal := range terminals {
			terBays := bays[terminal]
			indices := make([]int, 0, len(terBays))
			for idx := range terBays {
				indices = append(indices, idx)
			}
			sort.Ints(indices)
			for _, idx := range indices {
				bay1 := terBays[idx]
				bay2, ok := terBays[idx+2]
				if !ok {
					continue
				}
				key1 := model.BayKey{Terminal: terminal, Index: idx}
				key2 := model.BayKey{Terminal: terminal, Index: idx + 2}

				// Either overlapping flight could end up at the lower or the
				// higher bay of the pair, so both occupancy orderings need
				// their own equality constraint; checking only i1-low/i2-high
				// leaves the i2-low/i1-high ordering unconstrained and the
				// solver free to use the forbidden bay pair anyway.
				if bay1.Cat.Admits(ac1.Cat) && bay2.Cat.Admits(ac2.Cat) &&
					adj.Forbidden(terminal, bay1.Size, bay2.Size, ac1.Cat, ac2.Cat) {
					out = append(out, Constraint{
						Name: fmt.Sprintf("AdjConstTer%sBay%dFlights%s&%s", terminal, idx, i1.ID, i2.ID),
						Expr: LinExpr{{Coef: 1, Var: XName(i1.ID, key1)}, {Coef: 1, Var: XName(i2.ID, key2)}},
						Op:   EQ,
						RHS:  0,
					})
				}
				if bay1.Cat.Admits(ac2.Cat) && bay2.Cat.Admits(ac1.Cat) &&
					adj.Forbidden(terminal, bay1.Size, bay2.Size, ac2.Cat, ac1.Cat) {
					out = append(out, Constraint{
						Name: fmt.Sprintf("AdjConstTer%sBay%dFlights%s&%sRev", terminal, idx, i1.ID, i2.ID),
						Expr: LinExpr{{Coef: 1, Var: XName(i2.ID, key1)}, {Coef: 1, Var: XName(i1.ID, key2)}},
						Op:   EQ,
						RHS:  0,
					})
				}
			}
		}
	}
	return out, nil
}
