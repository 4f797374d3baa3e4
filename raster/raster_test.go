package raster

import (
	"testing"

	"github.com/esimov/spright/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c RGBA) *Image {
	img := NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = c
	}
	return img
}

func TestIsFullyTransparent(t *testing.T) {
	img := solidImage(4, 4, RGBA{0, 0, 0, 0})
	assert.True(t, IsFullyTransparent(img, 1, geom.Rect{}))

	img.Set(2, 2, RGBA{255, 255, 255, 255})
	assert.False(t, IsFullyTransparent(img, 1, geom.Rect{}))
}

func TestGetUsedBoundsShrinksToContent(t *testing.T) {
	img := solidImage(10, 10, RGBA{0, 0, 0, 0})
	content := geom.Rect{X: 3, Y: 4, W: 2, H: 2}
	for y := 0; y < content.H; y++ {
		for x := 0; x < content.W; x++ {
			img.Set(content.X+x, content.Y+y, RGBA{1, 2, 3, 255})
		}
	}
	got := GetUsedBounds(img, false, 1, geom.Rect{})
	require.Equal(t, content, got)
}

func TestIsIdentical(t *testing.T) {
	a := solidImage(4, 4, RGBA{9, 9, 9, 255})
	b := solidImage(4, 4, RGBA{9, 9, 9, 255})
	assert.True(t, IsIdentical(a, a.Bounds(), b, b.Bounds()))

	b.Set(0, 0, RGBA{8, 9, 9, 255})
	assert.False(t, IsIdentical(a, a.Bounds(), b, b.Bounds()))
}

func TestFindIslandsSeparatesDisjointSprites(t *testing.T) {
	img := solidImage(20, 10, RGBA{0, 0, 0, 0})
	put := func(x, y, w, h int) {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				img.Set(x+i, y+j, RGBA{255, 0, 0, 255})
			}
		}
	}
	put(1, 1, 3, 3)
	put(15, 1, 3, 3)

	islands := FindIslands(img, 0, false, geom.Rect{})
	require.Len(t, islands, 2)
	assert.Less(t, islands[0].X, islands[1].X)
}

func TestFindIslandsMergesWithinDistance(t *testing.T) {
	img := solidImage(20, 10, RGBA{0, 0, 0, 0})
	img.Set(1, 1, RGBA{255, 0, 0, 255})
	img.Set(4, 1, RGBA{255, 0, 0, 255})

	islands := FindIslands(img, 3, false, geom.Rect{})
	require.Len(t, islands, 1)
}

func TestGuessColorkeyReturnsCornerMedian(t *testing.T) {
	img := solidImage(4, 4, RGBA{0, 0, 0, 255})
	got := GuessColorkey(img)
	assert.Equal(t, RGBA{0, 0, 0, 255}, got)
}

func TestCopyRectRotate90(t *testing.T) {
	src := NewImage(2, 1)
	src.Set(0, 0, RGBA{1, 0, 0, 255})
	src.Set(1, 0, RGBA{2, 0, 0, 255})

	dst := NewImage(1, 2)
	CopyRect(dst, geom.Point{}, src, src.Bounds(), 1)
	assert.Equal(t, uint8(1), dst.At(0, 0).R)
	assert.Equal(t, uint8(2), dst.At(0, 1).R)
}
