// Package decompose partitions a generated schedule into short turns and
// long turns, splitting each long turn into its Full/Arrival/Parking/Departure
// sub-turns (spec §4.3).
package decompose

import (
	"time"

	"bap/backend/model"
)

// Result is the decomposed schedule: short turns, the Full variant of every
// long turn, and every long turn's A/P/D splits.
type Result struct {
	Table *model.TurnTable
}

// Decompose classifies every turn as Short or Long (duration > ttow and
// category not in {A, H}) and splits each Long turn per spec §3.
func Decompose(turns []model.Turn, ac model.AircraftTable, ttow model.HM) (Result, error) {
	table := model.NewTurnTable()
	ttowDur := ttow.Duration()

	for _, turn := range turns {
		aircraft, err := ac.Lookup(turn.AC)
		if err != nil {
			return Result{}, err
		}
		if isLong(turn, aircraft.Cat, ttowDur) {
			full, a, p, d := turn.Decompose()
			table.AddFull(full)
			table.AddSplit(a)
			table.AddSplit(p)
			table.AddSplit(d)
		} else {
			table.AddShort(turn)
		}
	}
	return Result{Table: table}, nil
}

// isLong is the complement of model.IsShort: a turnaround spawns A/P/D splits
// exactly when it is not classified Short.
func isLong(turn model.Turn, cat model.Category, ttow time.Duration) bool {
	return !model.IsShort(turn.Duration(), cat, ttow)
}
