// Package monitor exposes an optional HTTP progress/health surface over a
// solve run, adapted from the reference pack's bus-telemetry SSE server:
// the same tagged-Event-interface idiom, repurposed from bus movement to
// solve-phase telemetry.
package monitor

import "time"

// Event is a marker for every phase event a Server can stream.
type Event interface{ isEvent() }

// RunStartedEvent opens a run's event stream.
type RunStartedEvent struct {
	RunID    string
	Time     time.Time
	NFlights int
	Seed     int64
}

func (RunStartedEvent) isEvent() {}

// ScheduleGeneratedEvent reports the synthetic schedule is ready.
type ScheduleGeneratedEvent struct {
	Turns int
}

func (ScheduleGeneratedEvent) isEvent() {}

// TurnsDecomposedEvent reports the short/long split.
type TurnsDecomposedEvent struct {
	Shorts int
	Fulls  int
	Splits int
}

func (TurnsDecomposedEvent) isEvent() {}

// CostsBuiltEvent reports the priced cost matrices are ready.
type CostsBuiltEvent struct {
	TurnCostEntries int
}

func (CostsBuiltEvent) isEvent() {}

// VariablesCreatedEvent reports the decision-variable count.
type VariablesCreatedEvent struct {
	Count int
}

func (VariablesCreatedEvent) isEvent() {}

// ConstraintFamilyBuiltEvent reports a constraint count under a family name.
// cmd/bapsolve publishes a single one, Family "all", with the total count.
type ConstraintFamilyBuiltEvent struct {
	Family string
	Count  int
}

func (ConstraintFamilyBuiltEvent) isEvent() {}

// SolverInvokedEvent marks the external solver process starting.
type SolverInvokedEvent struct {
	Path string
}

func (SolverInvokedEvent) isEvent() {}

// SolverDoneEvent reports the final objective and elapsed time.
type SolverDoneEvent struct {
	Objective    float64
	SolveSeconds float64
}

func (SolverDoneEvent) isEvent() {}

// RunErrorEvent reports a run-ending error.
type RunErrorEvent struct {
	Message string
}

func (RunErrorEvent) isEvent() {}
