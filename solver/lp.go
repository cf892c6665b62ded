// Package solver renders a milp.Model to the textual CPLEX/CBC LP format the
// original pulp-based source writes via LpProblem.writeLP, and drives an
// external MIP binary against it.
package solver

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"bap/backend/milp"
)

const lpTemplateSrc = `\* {{.Name}} *\
Minimize
obj: {{renderExpr .Objective}}
Subject To
{{- range .Constraints}}
{{.Name}}: {{renderExpr .Expr}} {{.Op}} {{.RHS}}
{{- end}}
Binaries
{{- range .Variables}}
{{.}}
{{- end}}
End
`

var lpTemplate = template.Must(template.New("lp").Funcs(template.FuncMap{
	"renderExpr": renderExpr,
}).Parse(lpTemplateSrc))

// renderExpr formats a linear expression as "c1 x1 + c2 x2 ..." the way
// pulp's writeLP does, coefficient 1 terms omitting the literal "1 ".
func renderExpr(expr milp.LinExpr) string {
	if len(expr) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, term := range expr {
		if i > 0 {
			if term.Coef < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		} else if term.Coef < 0 {
			b.WriteString("-")
		}
		coef := term.Coef
		if coef < 0 {
			coef = -coef
		}
		if coef != 1 {
			fmt.Fprintf(&b, "%g ", coef)
		}
		b.WriteString(term.Var)
	}
	return b.String()
}

// WriteLP renders m to w in LP format.
func WriteLP(w io.Writer, m milp.Model) error {
	return lpTemplate.Execute(w, m)
}
