package milp

import (
	"bap/backend/model"
)

// XName is the LP variable name for x[turn,terminal,bay].
func XName(turn model.TurnID, bay model.BayKey) string {
	return fmtVar("x", turn.String(), bay.Terminal, bay.Index)
}

// WName is the LP variable name for w[f], f a long turn's Full id.
func WName(full model.TurnID) string {
	return fmtVar("w", full.String())
}

// YName is the LP variable name for y[i].
func YName(turn model.TurnID) string {
	return fmtVar("y", turn.String())
}

// buildVariableList enumerates every variable name in the model: one x per
// (turn, bay) pair across every turn in M, one w per long-turn Full, one y
// per turn in S ∪ L_F.
func buildVariableList(allTurns []model.Turn, fulls []model.Turn, shortsAndFulls []model.Turn, bayIndex *model.BayIndexer) []string {
	vars := make([]string, 0, len(allTurns)*bayIndex.Len()+len(fulls)+len(shortsAndFulls))
	for _, turn := range allTurns {
		for _, bay := range bayIndex.Keys() {
			vars = append(vars, XName(turn.ID, bay))
		}
	}
	for _, f := range fulls {
		vars = append(vars, WName(f.ID))
	}
	for _, t := range shortsAndFulls {
		vars = append(vars, YName(t.ID))
	}
	return vars
}
