package milp

import (
	"fmt"
	"time"

	"bap/backend/cost"
	"bap/backend/model"
)

// Input bundles everything Build needs: the decomposed turn table, the
// reference tables it prices and constrains against, and the buffer applied
// to every time-conflict/adjacency window.
type Input struct {
	Turns     *model.TurnTable
	AC        model.AircraftTable
	Bays      model.BayMap
	Adjacency model.AdjacencyTable
	Costs     *cost.Builder
	TBuf      time.Duration

	// Precomputed pricing, set by a cache hit in cmd/bapsolve so Build skips
	// re-deriving the cost matrices. Any of the three left nil is rebuilt
	// from Costs.
	TurnCosts  cost.TurnCosts
	TowCosts   cost.TowCosts
	NoBayCosts cost.NoBayCosts
}

// Build assembles the full solver-agnostic Model: every variable, the
// objective, and all five constraint families of spec §4.5, in the fixed
// order compatibility -> assignment-short -> assignment-long -> mandatory-tow
// -> time-conflict -> adjacency so that, for a fixed input, the resulting
// Model (and any LP file rendered from it) is byte-identical run to run.
func Build(in Input) (Model, error) {
	allTurns := in.Turns.All()
	shorts := in.Turns.Shorts()
	fulls := in.Turns.Fulls()
	shortsAndFulls := in.Turns.ShortsAndFulls()

	bayIndex := model.NewBayIndexer(in.Bays.Keys())

	turnCosts := in.TurnCosts
	if turnCosts == nil {
		var err error
		turnCosts, err = in.Costs.BuildTurnCosts(allTurns)
		if err != nil {
			return Model{}, fmt.Errorf("milp: pricing turns: %w", err)
		}
	}
	towCosts := in.TowCosts
	if towCosts == nil {
		var err error
		towCosts, err = in.Costs.BuildTowCosts(fulls)
		if err != nil {
			return Model{}, fmt.Errorf("milp: pricing tows: %w", err)
		}
	}
	noBayCosts := in.NoBayCosts
	if noBayCosts == nil {
		var err error
		noBayCosts, err = in.Costs.BuildNoBayCosts(shortsAndFulls)
		if err != nil {
			return Model{}, fmt.Errorf("milp: pricing no-bay fallback: %w", err)
		}
	}

	var constraints []Constraint

	compat, err := compatibilityConstraints(allTurns, in.AC, bayIndex, in.Costs)
	if err != nil {
		return Model{}, fmt.Errorf("milp: compatibility constraints: %w", err)
	}
	constraints = append(constraints, compat...)

	short, err := assignmentShortConstraints(shorts, in.AC, in.Costs)
	if err != nil {
		return Model{}, fmt.Errorf("milp: assignment-short constraints: %w", err)
	}
	constraints = append(constraints, short...)

	long, err := assignmentLongConstraints(fulls, in.Turns, in.AC, in.Costs)
	if err != nil {
		return Model{}, fmt.Errorf("milp: assignment-long constraints: %w", err)
	}
	constraints = append(constraints, long...)

	constraints = append(constraints, mandatoryTowConstraints(fulls)...)

	conflict, err := timeConflictConstraints(allTurns, in.AC, in.Costs, in.TBuf)
	if err != nil {
		return Model{}, fmt.Errorf("milp: time-conflict constraints: %w", err)
	}
	constraints = append(constraints, conflict...)

	adj, err := adjacencyConstraints(allTurns, in.AC, in.Bays, in.Adjacency, in.TBuf)
	if err != nil {
		return Model{}, fmt.Errorf("milp: adjacency constraints: %w", err)
	}
	constraints = append(constraints, adj...)

	return Model{
		Name:        "bap",
		Variables:   buildVariableList(allTurns, fulls, shortsAndFulls, bayIndex),
		Objective:   buildObjective(allTurns, fulls, shortsAndFulls, bayIndex, turnCosts, towCosts, noBayCosts),
		Constraints: constraints,
	}, nil
}
