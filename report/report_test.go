package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bap/backend/model"
)

func TestNewRunIDUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	require.NotEqual(t, a, b)
	require.NotEmpty(t, a)
}

func testBays() model.BayMap {
	return model.BayMap{
		"A": model.Bays{
			1: {Key: model.BayKey{Terminal: "A", Index: 1}, Size: model.SizeL, Dist: 1.5, Cat: model.CategoryRange{Lo: 'A', Hi: 'E'}},
			2: {Key: model.BayKey{Terminal: "A", Index: 2}, Size: model.SizeS, Dist: 3.0, Cat: model.CategoryRange{Lo: 'A', Hi: 'C'}},
		},
	}
}

func TestBuildCountsTowedAndNoBay(t *testing.T) {
	base := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)
	short := model.Turn{
		ID: model.NewBareTurnID("1"), AC: "B738", ETA: base, ETD: base.Add(45 * time.Minute),
		Terminal: "A", Pref: &model.Pref{Terminal: "A", Bay: 1, Weight: 5},
	}
	towedFull := model.Turn{ID: model.NewBareTurnID("2"), AC: "A320", ETA: base.Add(time.Hour), ETD: base.Add(5 * time.Hour), Terminal: "B"}

	assignments := map[model.TurnID]model.BayKey{
		short.ID: {Terminal: "A", Index: 3},
	}
	towed := map[model.TurnID]bool{towedFull.ID: true}
	noBay := map[model.TurnID]bool{towedFull.ID: true}

	r := Build("run-1", 42, 2, 123.5, 2*time.Second, []model.Turn{short, towedFull}, testBays(), towed, assignments, noBay)

	require.Equal(t, "run-1", r.RunID)
	require.Equal(t, int64(42), r.Seed)
	require.Equal(t, 1, r.TowedCount)
	require.Equal(t, 1, r.NoBayCount)
	require.Len(t, r.Assignments, 2)

	var shortAssignment, fullAssignment Assignment
	for _, a := range r.Assignments {
		if a.Turn == short.ID.String() {
			shortAssignment = a
		} else {
			fullAssignment = a
		}
	}
	require.Equal(t, "A", shortAssignment.Terminal)
	require.Equal(t, 3, shortAssignment.Bay)
	require.True(t, fullAssignment.Towed)
	require.True(t, fullAssignment.NoBay)

	require.Len(t, r.Schedule, 2)
	var shortEntry ScheduleEntry
	for _, se := range r.Schedule {
		if se.Turn == short.ID.String() {
			shortEntry = se
		}
	}
	require.Equal(t, "B738", shortEntry.AC)
	require.Equal(t, short.ETA.Format(timestampLayout), shortEntry.ETA)
	require.Equal(t, short.ETD.Format(timestampLayout), shortEntry.ETD)
	require.Equal(t, "A", shortEntry.Terminal)
	require.Equal(t, "A", shortEntry.PrefTerminal)
	require.Equal(t, 1, shortEntry.PrefBay)
	require.InDelta(t, 5, shortEntry.PrefWeight, 1e-9)

	require.Len(t, r.Bays, 2)
	require.Equal(t, BayEntry{Terminal: "A", Index: 1, Size: "L", Dist: 1.5}, r.Bays[0])
	require.Equal(t, BayEntry{Terminal: "A", Index: 2, Size: "S", Dist: 3.0}, r.Bays[1])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	r := Build("run-2", 7, 1, 9.9, time.Second, nil, nil, nil, nil, nil)

	path, err := WriteJSON(dir, r)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, r.RunID, got.RunID)
	require.Equal(t, r.Objective, got.Objective)
}
