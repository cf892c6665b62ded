package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bap/backend/milp"
)

func TestBruteForcePrefersBayOverNoBayFallback(t *testing.T) {
	m := milp.Model{
		Name:      "test",
		Variables: []string{"x_1_DOM_1", "y_1"},
		Objective: milp.LinExpr{{Coef: 10, Var: "x_1_DOM_1"}, {Coef: 20000, Var: "y_1"}},
		Constraints: []milp.Constraint{
			{Name: "assign", Expr: milp.LinExpr{{Coef: 1, Var: "x_1_DOM_1"}, {Coef: 1, Var: "y_1"}}, Op: milp.EQ, RHS: 1},
		},
	}

	sol, err := BruteForce(m)
	require.NoError(t, err)
	require.Equal(t, 10.0, sol.Objective)
	require.True(t, sol.Value("x_1_DOM_1"))
	require.False(t, sol.Value("y_1"))
}

func TestBruteForceDetectsInfeasible(t *testing.T) {
	m := milp.Model{
		Name:      "test",
		Variables: []string{"x"},
		Objective: milp.LinExpr{{Coef: 1, Var: "x"}},
		Constraints: []milp.Constraint{
			{Name: "impossible1", Expr: milp.LinExpr{{Coef: 1, Var: "x"}}, Op: milp.EQ, RHS: 1},
			{Name: "impossible2", Expr: milp.LinExpr{{Coef: 1, Var: "x"}}, Op: milp.EQ, RHS: 0},
		},
	}

	_, err := BruteForce(m)
	require.Error(t, err)
	var infeasible *InfeasibleError
	require.ErrorAs(t, err, &infeasible)
}
