package milp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bap/backend/cost"
	"bap/backend/model"
)

func testInput(t *testing.T) Input {
	ac, bays, costs := testLayout()
	cb, err := cost.NewBuilder(ac, bays, costs)
	require.NoError(t, err)

	table := model.NewTurnTable()
	base := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)

	short := model.Turn{ID: model.NewBareTurnID("1"), AC: "738", ETA: base, ETD: base.Add(time.Hour), Terminal: model.DOM}
	table.AddShort(short)

	long := model.Turn{ID: model.NewBareTurnID("2"), AC: "320", ETA: base.Add(2 * time.Hour), ETD: base.Add(5 * time.Hour), Terminal: model.DOM, Tow: true}
	full, a, p, d := long.Decompose()
	table.AddFull(full)
	table.AddSplit(a)
	table.AddSplit(p)
	table.AddSplit(d)

	return Input{
		Turns:     table,
		AC:        ac,
		Bays:      bays,
		Adjacency: model.AdjacencyTable{},
		Costs:     cb,
		TBuf:      model.DefaultTBuf,
	}
}

func TestBuildProducesCompatAssignmentAndTowFamilies(t *testing.T) {
	m, err := Build(testInput(t))
	require.NoError(t, err)
	require.NotEmpty(t, m.Variables)
	require.NotEmpty(t, m.Objective)

	var sawCompat, sawAssignShort, sawAssignFull, sawTow bool
	for _, c := range m.Constraints {
		switch {
		case strings.HasPrefix(c.Name, "Compat"):
			sawCompat = true
		case strings.HasPrefix(c.Name, "AssignConstFlight"):
			sawAssignShort = true
		case strings.HasPrefix(c.Name, "AssignConstraintFull"):
			sawAssignFull = true
		case strings.HasPrefix(c.Name, "TowConstFlight"):
			sawTow = true
		}
	}
	require.True(t, sawCompat)
	require.True(t, sawAssignShort)
	require.True(t, sawAssignFull)
	require.True(t, sawTow, "the towed long turn must emit a mandatory-tow constraint")
}

func TestBuildIsDeterministic(t *testing.T) {
	var models []Model
	for i := 0; i < 5; i++ {
		m, err := Build(testInput(t))
		require.NoError(t, err)
		models = append(models, m)
	}
	for i := 1; i < len(models); i++ {
		require.Equal(t, models[0].Variables, models[i].Variables)
		require.Equal(t, models[0].Constraints, models[i].Constraints)
		require.Equal(t, models[0].Objective, models[i].Objective)
	}
}

func TestBuildMissingAircraftErrors(t *testing.T) {
	in := testInput(t)
	bad := model.Turn{ID: model.NewBareTurnID("99"), AC: "unknown", ETA: time.Now(), ETD: time.Now().Add(time.Hour)}
	in.Turns.AddShort(bad)
	_, err := Build(in)
	require.Error(t, err)
}
