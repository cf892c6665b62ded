package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bap/backend/layout"
	"bap/backend/model"
)

func canonicalLayout() model.Layout {
	return model.Layout{
		model.DOM: model.TerminalDescriptor{
			ID: model.DOM,
			Classes: map[model.SizeClass]model.SizeClassDescriptor{
				model.SizeL: {Count: 4, CatLo: 'B', CatHi: 'H', DistUnit: 10},
				model.SizeS: {Count: 6, CatLo: 'B', CatHi: 'G', DistUnit: 5},
			},
		},
		model.INT: model.TerminalDescriptor{
			ID: model.INT,
			Classes: map[model.SizeClass]model.SizeClassDescriptor{
				model.SizeL: {Count: 4, CatLo: 'B', CatHi: 'H', DistUnit: 10},
				model.SizeS: {Count: 4, CatLo: 'B', CatHi: 'G', DistUnit: 5},
			},
		},
		model.BUS: model.TerminalDescriptor{
			ID: model.BUS,
			Classes: map[model.SizeClass]model.SizeClassDescriptor{
				model.SizeB: {Count: 6, CatLo: 'A', CatHi: 'G', DistUnit: 50},
			},
		},
	}
}

func TestBuildIndicesMonotoneAndOneBased(t *testing.T) {
	bays, err := layout.Build(canonicalLayout())
	require.NoError(t, err)

	dom := bays[model.DOM]
	require.Len(t, dom, 10)
	for k := 1; k <= 10; k++ {
		_, ok := dom[k]
		require.Truef(t, ok, "missing DOM bay %d", k)
	}
}

func TestLargeBayDistanceFormula(t *testing.T) {
	bays, err := layout.Build(canonicalLayout())
	require.NoError(t, err)

	dom := bays[model.DOM]
	require.Equal(t, model.SizeL, dom[1].Size)
	require.Equal(t, 5.0, dom[1].Dist) // ceil(1/2)*10 - 5 = 5
	require.Equal(t, 5.0, dom[2].Dist) // ceil(2/2)*10 - 5 = 5
	require.Equal(t, 15.0, dom[3].Dist)
	require.Equal(t, 15.0, dom[4].Dist)
}

func TestSmallBayDistanceFormula(t *testing.T) {
	bays, err := layout.Build(canonicalLayout())
	require.NoError(t, err)

	dom := bays[model.DOM]
	// first S bay: index 5 = L.Count(4)+1; dist = 5/2 + ceil(4/2)*10 + 5*(ceil(1/2)-1) = 22.5
	require.Equal(t, model.SizeS, dom[5].Size)
	require.InDelta(t, 22.5, dom[5].Dist, 0.001)
}

func TestBusBaysAreConstantDistance(t *testing.T) {
	bays, err := layout.Build(canonicalLayout())
	require.NoError(t, err)

	busBays := bays[model.BUS]
	for k := 1; k <= 6; k++ {
		require.Equal(t, 50.0, busBays[k].Dist)
		require.Equal(t, model.SizeB, busBays[k].Size)
	}
}

func TestCategoryRangeAdmits(t *testing.T) {
	bays, err := layout.Build(canonicalLayout())
	require.NoError(t, err)

	b := bays[model.DOM][1]
	require.True(t, b.Cat.Admits('H'))
	require.True(t, b.Cat.Admits('B'))
	require.False(t, b.Cat.Admits('A'))
}
