package trim

import (
	"testing"

	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spriteImage(w, h int, content geom.Rect) *raster.Image {
	img := raster.NewImage(w, h)
	for y := 0; y < content.H; y++ {
		for x := 0; x < content.W; x++ {
			img.Set(content.X+x, content.Y+y, raster.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func TestTrimNoneKeepsSourceRect(t *testing.T) {
	content := geom.Rect{X: 2, Y: 2, W: 4, H: 4}
	img := spriteImage(10, 10, content)
	result := TrimSprite(Sprite{Source: img, SourceRect: img.Bounds(), Mode: None})
	assert.Equal(t, img.Bounds(), result.TrimmedSourceRect)
	assert.Empty(t, result.Vertices)
}

func TestTrimRectShrinksToContent(t *testing.T) {
	content := geom.Rect{X: 2, Y: 3, W: 4, H: 5}
	img := spriteImage(10, 10, content)
	result := TrimSprite(Sprite{Source: img, SourceRect: img.Bounds(), Mode: Rect, Threshold: 1})
	require.Equal(t, content, result.TrimmedSourceRect)
	assert.Empty(t, result.Vertices)
}

func TestTrimConvexProducesVertices(t *testing.T) {
	content := geom.Rect{X: 2, Y: 2, W: 6, H: 6}
	img := spriteImage(12, 12, content)
	// poke a corner out to make the hull non-rectangular
	img.Set(1, 4, raster.RGBA{R: 255, G: 255, B: 255, A: 255})
	result := TrimSprite(Sprite{Source: img, SourceRect: img.Bounds(), Mode: Convex, Threshold: 1})
	assert.NotEmpty(t, result.Vertices)
	assert.LessOrEqual(t, len(result.Vertices), DefaultHullVertexBudget)
}

func TestTrimMarginExpandsThenClipsToSourceRect(t *testing.T) {
	content := geom.Rect{X: 4, Y: 4, W: 2, H: 2}
	img := spriteImage(10, 10, content)
	result := TrimSprite(Sprite{Source: img, SourceRect: img.Bounds(), Mode: Rect, Threshold: 1, Margin: 2})
	assert.Equal(t, geom.Rect{X: 2, Y: 2, W: 6, H: 6}, result.TrimmedSourceRect)
}

func TestTrimAllBackgroundCollapsesToSinglePixel(t *testing.T) {
	// When every pixel is background, the shrink-to-fit scan degenerates to
	// the single bottom-right pixel rather than a true empty rect.
	img := raster.NewImage(8, 8)
	result := TrimSprite(Sprite{Source: img, SourceRect: img.Bounds(), Mode: Rect, Threshold: 1})
	assert.Equal(t, geom.Rect{X: 7, Y: 7, W: 1, H: 1}, result.TrimmedSourceRect)
}
