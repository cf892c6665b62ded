package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bap/backend/milp"
)

func TestWriteLPRendersSections(t *testing.T) {
	m := milp.Model{
		Name:      "bap",
		Variables: []string{"x_1_DOM_1", "y_1"},
		Objective: milp.LinExpr{{Coef: 10, Var: "x_1_DOM_1"}, {Coef: 20000, Var: "y_1"}},
		Constraints: []milp.Constraint{
			{Name: "AssignConstFlight1", Expr: milp.LinExpr{{Coef: 1, Var: "x_1_DOM_1"}, {Coef: 1, Var: "y_1"}}, Op: milp.EQ, RHS: 1},
		},
	}

	var b strings.Builder
	require.NoError(t, WriteLP(&b, m))
	out := b.String()

	require.Contains(t, out, "Minimize")
	require.Contains(t, out, "obj: 10 x_1_DOM_1 + 20000 y_1")
	require.Contains(t, out, "Subject To")
	require.Contains(t, out, "AssignConstFlight1: x_1_DOM_1 + y_1 = 1")
	require.Contains(t, out, "Binaries")
	require.Contains(t, out, "x_1_DOM_1")
	require.Contains(t, out, "End")
}

func TestRenderExprHandlesNegativeAndUnitCoefficients(t *testing.T) {
	expr := milp.LinExpr{{Coef: 1, Var: "a"}, {Coef: -1, Var: "b"}}
	require.Equal(t, "a - b", renderExpr(expr))
}
