package decompose_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bap/backend/decompose"
	"bap/backend/model"
)

func TestShortTurnStaysShort(t *testing.T) {
	ac := model.AircraftTable{"738": {ID: "738", Cap: 160, Cat: 'C'}}
	base := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	turns := []model.Turn{
		{ID: model.NewBareTurnID("1"), AC: "738", ETA: base, ETD: base.Add(90 * time.Minute)},
	}
	res, err := decompose.Decompose(turns, ac, model.HM{3, 0})
	require.NoError(t, err)
	require.Len(t, res.Table.Shorts(), 1)
	require.Empty(t, res.Table.Fulls())
	require.Empty(t, res.Table.Splits())
}

func TestBoundaryDurationEqualsTtowIsShort(t *testing.T) {
	ac := model.AircraftTable{"738": {ID: "738", Cap: 160, Cat: 'C'}}
	base := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	turns := []model.Turn{
		{ID: model.NewBareTurnID("1"), AC: "738", ETA: base, ETD: base.Add(3 * time.Hour)},
	}
	res, err := decompose.Decompose(turns, ac, model.HM{3, 0})
	require.NoError(t, err)
	require.Len(t, res.Table.Shorts(), 1, "duration == ttow must classify Short")
}

func TestCategoryAOrHAlwaysShort(t *testing.T) {
	ac := model.AircraftTable{"A10": {ID: "A10", Cap: 20, Cat: 'A'}}
	base := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	turns := []model.Turn{
		{ID: model.NewBareTurnID("1"), AC: "A10", ETA: base, ETD: base.Add(10 * time.Hour)},
	}
	res, err := decompose.Decompose(turns, ac, model.HM{3, 0})
	require.NoError(t, err)
	require.Len(t, res.Table.Shorts(), 1, "category A must classify Short regardless of duration")
}

func TestLongTurnSplitsAndPreservesPrefExceptOnParking(t *testing.T) {
	ac := model.AircraftTable{"77W": {ID: "77W", Cap: 350, Cat: 'G'}}
	base := time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC)
	pref := &model.Pref{Terminal: model.INT, Bay: 3, Weight: 10}
	turns := []model.Turn{
		{ID: model.NewBareTurnID("9"), AC: "77W", ETA: base, ETD: base.Add(5 * time.Hour), Pref: pref, Terminal: model.INT},
	}
	res, err := decompose.Decompose(turns, ac, model.HM{3, 0})
	require.NoError(t, err)
	require.Empty(t, res.Table.Shorts())
	require.Len(t, res.Table.Fulls(), 1)
	require.Len(t, res.Table.Splits(), 3)

	full, _, ok := res.Table.Lookup(model.NewBareTurnID("9"))
	require.True(t, ok)
	require.Equal(t, base, full.ETA)
	require.Equal(t, base.Add(5*time.Hour), full.ETD)
	require.NotNil(t, full.Pref)

	a, _, ok := res.Table.Lookup(model.NewSplitTurnID("9", model.SplitA))
	require.True(t, ok)
	require.Equal(t, base, a.ETA)
	require.Equal(t, base.Add(30*time.Minute), a.ETD)
	require.NotNil(t, a.Pref)

	d, _, ok := res.Table.Lookup(model.NewSplitTurnID("9", model.SplitD))
	require.True(t, ok)
	require.Equal(t, base.Add(5*time.Hour-30*time.Minute), d.ETA)
	require.Equal(t, base.Add(5*time.Hour), d.ETD)
	require.NotNil(t, d.Pref)

	p, _, ok := res.Table.Lookup(model.NewSplitTurnID("9", model.SplitP))
	require.True(t, ok)
	require.Equal(t, a.ETD, p.ETA)
	require.Equal(t, d.ETA, p.ETD)
	require.Nil(t, p.Pref, "preference must be removed from the Parking split")
}
