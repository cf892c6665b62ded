package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bap/backend/model"
	"bap/backend/schedule"
)

func testTables() (model.AircraftTable, model.BayMap, schedule.Catalog, model.SchedulingParams, time.Time) {
	ac := model.AircraftTable{
		"738": {ID: "738", Cap: 160, Cat: 'C'},
		"320": {ID: "320", Cap: 150, Cat: 'C'},
	}
	bays := model.BayMap{
		model.DOM: model.Bays{
			1: {Key: model.BayKey{Terminal: model.DOM, Index: 1}, Size: model.SizeS, Dist: 5, Cat: model.CategoryRange{Lo: 'B', Hi: 'G'}},
			2: {Key: model.BayKey{Terminal: model.DOM, Index: 2}, Size: model.SizeS, Dist: 7, Cat: model.CategoryRange{Lo: 'B', Hi: 'G'}},
		},
	}
	cat := schedule.Catalog{
		Prob: schedule.ProbabilityCatalog{
			1: {Weight: 1, Type: model.DOM, MeanArr: model.HM{10, 0}, StdArr: 10, MeanLen: 90, StdLen: 10},
		},
		Weights: schedule.WeightsCatalog{
			model.DOM: {AC: map[string]float64{"738": 1, "320": 1}, Tow: 0.0, Pref: 0.0},
		},
	}
	params := model.SchedulingParams{
		TStart: model.HM{6, 0},
		TEnd:   model.HM{23, 59},
		TMin:   model.HM{1, 0},
		TTow:   model.HM{3, 0},
		TBuf:   model.DefaultTBuf,
	}
	date := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	return ac, bays, cat, params, date
}

func TestGenerateIsDeterministic(t *testing.T) {
	ac, bays, cat, params, date := testTables()

	g1 := schedule.New(ac, bays, cat, params, date, 42)
	t1, err := g1.Generate(20)
	require.NoError(t, err)

	g2 := schedule.New(ac, bays, cat, params, date, 42)
	t2, err := g2.Generate(20)
	require.NoError(t, err)

	require.Equal(t, t1, t2)
}

func TestGenerateRespectsWindow(t *testing.T) {
	ac, bays, cat, params, date := testTables()
	g := schedule.New(ac, bays, cat, params, date, 7)
	turns, err := g.Generate(30)
	require.NoError(t, err)

	tstart := model.DateAt(date, params.TStart)
	tend := model.DateAt(date, params.TEnd)
	for _, turn := range turns {
		require.True(t, !turn.ETA.Before(tstart))
		require.True(t, !turn.ETD.After(tend))
		require.True(t, turn.ETD.After(turn.ETA))
	}
}

func TestGenerateNoTowOrPrefWhenProbabilityZero(t *testing.T) {
	ac, bays, cat, params, date := testTables()
	g := schedule.New(ac, bays, cat, params, date, 1)
	turns, err := g.Generate(50)
	require.NoError(t, err)
	for _, turn := range turns {
		require.False(t, turn.Tow)
		require.Nil(t, turn.Pref)
	}
}
