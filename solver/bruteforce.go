package solver

import (
	"fmt"
	"math"

	"bap/backend/milp"
)

// BruteForce exhaustively searches every binary assignment of a Model's
// variables for the feasible one minimizing the objective. It exists purely
// to back unit tests that must not shell out to a real MIP binary; it is
// exponential in the variable count and only fit for the small instances
// those tests construct.
func BruteForce(m milp.Model) (Solution, error) {
	n := len(m.Variables)
	if n > 24 {
		return Solution{}, fmt.Errorf("solver: bruteforce: %d variables exceeds the exhaustive-search limit", n)
	}

	best := Solution{Objective: math.Inf(1)}
	found := false
	assignment := make(map[string]float64, n)

	for mask := 0; mask < 1<<uint(n); mask++ {
		for i, name := range m.Variables {
			if mask&(1<<uint(i)) != 0 {
				assignment[name] = 1
			} else {
				assignment[name] = 0
			}
		}
		if !satisfies(m.Constraints, assignment) {
			continue
		}
		obj := evalExpr(m.Objective, assignment)
		if !found || obj < best.Objective {
			found = true
			best.Objective = obj
			best.Values = make(map[string]float64, n)
			for k, v := range assignment {
				best.Values[k] = v
			}
		}
	}
	if !found {
		return Solution{}, &InfeasibleError{}
	}
	return best, nil
}

func evalExpr(expr milp.LinExpr, values map[string]float64) float64 {
	var sum float64
	for _, term := range expr {
		sum += term.Coef * values[term.Var]
	}
	return sum
}

func satisfies(constraints []milp.Constraint, values map[string]float64) bool {
	const eps = 1e-9
	for _, c := range constraints {
		lhs := evalExpr(c.Expr, values)
		switch c.Op {
		case milp.EQ:
			if math.Abs(lhs-c.RHS) > eps {
				return false
			}
		case milp.LE:
			if lhs > c.RHS+eps {
				return false
			}
		case milp.GE:
			if lhs < c.RHS-eps {
				return false
			}
		}
	}
	return true
}
