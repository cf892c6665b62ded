package milp

import (
	"bap/backend/cost"
	"bap/backend/model"
)

// buildObjective assembles the minimization objective of spec §4.5:
// Σ c_x*x + Σ c_w*w + Σ c_y*y.
func buildObjective(allTurns, fulls, shortsAndFulls []model.Turn, bayIndex *model.BayIndexer, turnCosts cost.TurnCosts, towCosts cost.TowCosts, noBayCosts cost.NoBayCosts) LinExpr {
	expr := make(LinExpr, 0)
	for _, turn := range allTurns {
		row := turnCosts[turn.ID]
		for _, bay := range bayIndex.Keys() {
			c, ok := row[bay]
			if !ok || c == 0 {
				continue
			}
			expr = append(expr, Term{Coef: c, Var: XName(turn.ID, bay)})
		}
	}
	for _, f := range fulls {
		expr = append(expr, Term{Coef: towCosts[f.ID], Var: WName(f.ID)})
	}
	for _, t := range shortsAndFulls {
		expr = append(expr, Term{Coef: noBayCosts[t.ID], Var: YName(t.ID)})
	}
	return expr
}
