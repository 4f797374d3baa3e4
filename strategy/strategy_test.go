package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinpackPlacesEveryItem(t *testing.T) {
	var items []Item
	for i := 0; i < 12; i++ {
		items = append(items, Item{Id: i, Width: 16, Height: 16})
	}
	placements, slices := Binpack(BinpackSettings{MaxWidth: 128, MaxHeight: 128}, items)
	require.NotEmpty(t, slices)
	assert.Len(t, placements, len(items))
}

func TestLinesWrapsIntoMultipleSlicesWhenTooTall(t *testing.T) {
	var items []Item
	for i := 0; i < 20; i++ {
		items = append(items, Item{Id: i, Width: 10, Height: 10})
	}
	placements, slices, err := Lines(true, 50, 50, Padding{Border: 1}, items)
	require.NoError(t, err)
	assert.Len(t, placements, len(items))
	assert.GreaterOrEqual(t, len(slices), 2)
}

func TestLinesErrorsOnOversizedItem(t *testing.T) {
	items := []Item{{Id: 0, Width: 1000, Height: 1000}}
	_, _, err := Lines(true, 32, 32, Padding{}, items)
	assert.ErrorIs(t, err, ErrNotAllItemsPacked)
}

func TestSingleProducesOneSlicePerItem(t *testing.T) {
	items := []Item{{Id: 0, Width: 4, Height: 4}, {Id: 1, Width: 8, Height: 2}}
	placements, sizes, err := Single(Padding{Border: 2}, 0, items)
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, SliceSize{Width: 8, Height: 8}, sizes[0])
	assert.Equal(t, SliceSize{Width: 12, Height: 6}, sizes[1])
}

func TestSingleRespectsSequenceBound(t *testing.T) {
	items := []Item{{Id: 0, Width: 4, Height: 4}, {Id: 1, Width: 4, Height: 4}}
	_, _, err := Single(Padding{}, 1, items)
	assert.ErrorIs(t, err, ErrNotAllItemsPacked)
}

func TestKeepSizesToLargestItem(t *testing.T) {
	items := []Item{{Id: 0, Width: 10, Height: 20}, {Id: 1, Width: 30, Height: 5}}
	_, size := Keep(items)
	assert.Equal(t, SliceSize{Width: 30, Height: 20}, size)
}

func TestLayersStacksAtOrigin(t *testing.T) {
	items := []Item{{Id: 0, Width: 10, Height: 10}, {Id: 1, Width: 6, Height: 6}}
	placements, size := Layers(Padding{Border: 1}, items)
	for _, p := range placements {
		assert.Equal(t, 1, p.X)
		assert.Equal(t, 1, p.Y)
	}
	assert.Equal(t, SliceSize{Width: 12, Height: 12}, size)
}
