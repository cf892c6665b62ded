package solver

import "fmt"

// InfeasibleError reports a MILP the solver could not satisfy, naming the
// turns most likely responsible: mandatory-tow long turns that can never fit
// their split constraints, or a pair of time-overlapping turns whose
// admissible-bay sets share no bay (spec §8 "Infeasibility").
type InfeasibleError struct {
	SuspectLongTurns     []string
	SuspectConflictPairs [][2]string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("solver: infeasible (suspect long turns: %v, suspect conflicting pairs: %v)",
		e.SuspectLongTurns, e.SuspectConflictPairs)
}
