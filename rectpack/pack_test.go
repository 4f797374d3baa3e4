package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placesAllIds(t *testing.T, sheets []Sheet, sizes []Size) {
	t.Helper()
	placed := map[int]PlacedRect{}
	for _, sh := range sheets {
		for _, r := range sh.Rects {
			placed[r.Id] = r
		}
	}
	for _, s := range sizes {
		r, ok := placed[s.Id]
		require.Truef(t, ok, "size %d was not placed", s.Id)
		if r.Rotated {
			assert.Equal(t, s.Width, r.Height)
			assert.Equal(t, s.Height, r.Width)
		} else {
			assert.Equal(t, s.Width, r.Width)
			assert.Equal(t, s.Height, r.Height)
		}
	}
}

func noOverlaps(t *testing.T, sheets []Sheet) {
	t.Helper()
	for _, sh := range sheets {
		for i := 0; i < len(sh.Rects); i++ {
			for j := i + 1; j < len(sh.Rects); j++ {
				a, b := sh.Rects[i], sh.Rects[j]
				overlap := a.X < b.X+b.Width && b.X < a.X+a.Width &&
					a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
				assert.Falsef(t, overlap, "rects %d and %d overlap", a.Id, b.Id)
			}
		}
	}
}

func TestPackPlacesAllSquares(t *testing.T) {
	var sizes []Size
	for i := 0; i < 20; i++ {
		sizes = append(sizes, Size{Id: i, Width: 16, Height: 16})
	}
	settings := Settings{Method: Best, MaxWidth: 256, MaxHeight: 256}
	sheets := Pack(settings, sizes)
	require.NotEmpty(t, sheets)
	placesAllIds(t, sheets, sizes)
	noOverlaps(t, sheets)
}

func TestPackMixedSizesNoOverlap(t *testing.T) {
	sizes := []Size{
		{Id: 0, Width: 50, Height: 30},
		{Id: 1, Width: 20, Height: 20},
		{Id: 2, Width: 10, Height: 40},
		{Id: 3, Width: 33, Height: 17},
		{Id: 4, Width: 64, Height: 8},
	}
	settings := Settings{Method: BestMaxRects, MaxWidth: 512, MaxHeight: 512}
	sheets := Pack(settings, sizes)
	require.NotEmpty(t, sheets)
	placesAllIds(t, sheets, sizes)
	noOverlaps(t, sheets)
}

func TestPackRespectsMaxSheets(t *testing.T) {
	var sizes []Size
	for i := 0; i < 200; i++ {
		sizes = append(sizes, Size{Id: i, Width: 40, Height: 40})
	}
	settings := Settings{Method: BestSkyline, MaxWidth: 64, MaxHeight: 64, MaxSheets: 2}
	sheets := Pack(settings, sizes)
	assert.LessOrEqual(t, len(sheets), 2)
}

func TestPackPowerOfTwoAndSquare(t *testing.T) {
	var sizes []Size
	for i := 0; i < 10; i++ {
		sizes = append(sizes, Size{Id: i, Width: 30, Height: 20})
	}
	settings := Settings{Method: Best, MaxWidth: 1024, MaxHeight: 1024, PowerOfTwo: true, Square: true}
	sheets := Pack(settings, sizes)
	require.NotEmpty(t, sheets)
	for _, sh := range sheets {
		assert.Equal(t, sh.Width, sh.Height)
	}
}

func TestPackEmptyInput(t *testing.T) {
	sheets := Pack(Settings{MaxWidth: 100, MaxHeight: 100}, nil)
	assert.Empty(t, sheets)
}

func TestCorrectSizeIdempotentAcrossSettings(t *testing.T) {
	s := Settings{MinWidth: 4, MinHeight: 4, MaxWidth: 2048, MaxHeight: 2048, PowerOfTwo: true, BorderPadding: 1}
	w, h := correctSize(s, 300, 170)
	w2, h2 := correctSize(s, w, h)
	assert.Equal(t, w, w2)
	assert.Equal(t, h, h2)
}
