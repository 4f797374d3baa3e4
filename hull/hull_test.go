package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidMono(w, h int, v uint8) []uint8 {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = v
	}
	return pix
}

func TestBuildRespectsMaxVertices(t *testing.T) {
	w, h := 16, 16
	pix := solidMono(w, h, 0)
	// carve an irregular blob so the hull has more than 4 natural corners
	set := func(x, y int, v uint8) { pix[y*w+x] = v }
	for y := 2; y < 14; y++ {
		for x := 2; x < 14; x++ {
			set(x, y, 255)
		}
	}
	set(1, 7, 255)
	set(14, 3, 255)

	verts := Build(w, h, pix, 128, 8, 2)
	require.NotEmpty(t, verts)
	assert.LessOrEqual(t, len(verts), 8)
}

func TestBuildContainsAboveThresholdPixels(t *testing.T) {
	w, h := 10, 10
	pix := solidMono(w, h, 0)
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			pix[y*w+x] = 255
		}
	}
	verts := Build(w, h, pix, 128, 16, 2)
	require.NotEmpty(t, verts)
	assert.True(t, ContainsAllAbove(verts, w, h, pix, 128))
}

func TestBuildEmptyWhenNothingAboveThreshold(t *testing.T) {
	w, h := 8, 8
	pix := solidMono(w, h, 0)
	verts := Build(w, h, pix, 128, 8, 2)
	assert.Empty(t, verts)
}

func TestRemoveLeastRelevantEdgeShrinksCount(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, -0.1}}
	ok := removeLeastRelevantEdge(square)
	assert.True(t, ok)
}
