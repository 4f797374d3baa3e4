package raster

import (
	"sort"

	"github.com/esimov/spright/geom"
)

// IsFullyTransparent reports whether every pixel in rect has alpha below
// threshold.
func IsFullyTransparent(img *Image, threshold int, rect geom.Rect) bool {
	rect = img.checkRect(rect)
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			if int(img.At(rect.X+x, rect.Y+y).A) >= threshold {
				return false
			}
		}
	}
	return true
}

// IsFullyBlack reports whether every pixel in rect has a gray level below
// threshold.
func IsFullyBlack(img *Image, threshold int, rect geom.Rect) bool {
	rect = img.checkRect(rect)
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			if int(img.At(rect.X+x, rect.Y+y).Gray()) >= threshold {
				return false
			}
		}
	}
	return true
}

// IsIdentical reports whether rectA of imageA and rectB of imageB have the
// same size and pixel-for-pixel identical contents.
func IsIdentical(a *Image, rectA geom.Rect, b *Image, rectB geom.Rect) bool {
	if rectA.W != rectB.W || rectA.H != rectB.H {
		return false
	}
	for y := 0; y < rectA.H; y++ {
		aRow := a.Pix[(rectA.Y+y)*a.W+rectA.X : (rectA.Y+y)*a.W+rectA.X+rectA.W]
		bRow := b.Pix[(rectB.Y+y)*b.W+rectB.X : (rectB.Y+y)*b.W+rectB.X+rectB.W]
		for i := range aRow {
			if aRow[i] != bRow[i] {
				return false
			}
		}
	}
	return true
}

// checkFn is the per-row/column "is this slice entirely background"
// predicate used by GetUsedBounds.
type checkFn func(img *Image, threshold int, rect geom.Rect) bool

// GetUsedBounds shrinks rect on all four sides until it exactly bounds the
// non-background content, using gray-level or alpha-level background
// detection. Y bounds are computed first and X bounds are then computed
// only over the Y-narrowed band.
func GetUsedBounds(img *Image, grayLevels bool, threshold int, rect geom.Rect) geom.Rect {
	rect = img.checkRect(rect)
	check := checkFn(IsFullyTransparent)
	if grayLevels {
		check = IsFullyBlack
	}

	x1 := rect.X + rect.W - 1
	y1 := rect.Y + rect.H - 1

	minY := rect.Y
	for minY < y1 {
		if !check(img, threshold, geom.Rect{X: rect.X, Y: minY, W: rect.W, H: 1}) {
			break
		}
		minY++
	}

	maxY := y1
	for maxY > minY {
		if !check(img, threshold, geom.Rect{X: rect.X, Y: maxY, W: rect.W, H: 1}) {
			break
		}
		maxY--
	}

	minX := rect.X
	for minX < x1 {
		if !check(img, threshold, geom.Rect{X: minX, Y: minY, W: 1, H: maxY - minY + 1}) {
			break
		}
		minX++
	}

	maxX := x1
	for maxX > minX {
		if !check(img, threshold, geom.Rect{X: maxX, Y: minY, W: 1, H: maxY - minY + 1}) {
			break
		}
		maxX--
	}

	return geom.Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// GuessColorkey samples the four corner pixels, sorts them by RGBA byte
// order and returns the second-lowest, a cheap heuristic for picking a
// representative background color when no colorkey was declared.
func GuessColorkey(img *Image) RGBA {
	corners := [4]RGBA{
		img.At(img.W-1, img.H-1),
		img.At(img.W-1, 0),
		img.At(0, img.H-1),
		img.At(0, 0),
	}
	sort.Slice(corners[:], func(i, j int) bool {
		a, b := corners[i], corners[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		if a.B != b.B {
			return a.B < b.B
		}
		return a.A < b.A
	})
	return corners[1]
}

// GetAlphaLevels extracts the alpha channel of rect into a Mono buffer.
func GetAlphaLevels(img *Image, rect geom.Rect) *Mono {
	if rect.Empty() {
		rect = GetUsedBounds(img, false, 1, geom.Rect{})
	}
	out := NewMono(rect.W, rect.H)
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			out.Set(x, y, img.At(rect.X+x, rect.Y+y).A)
		}
	}
	return out
}

// GetGrayLevels extracts the gray level of rect into a Mono buffer.
func GetGrayLevels(img *Image, rect geom.Rect) *Mono {
	if rect.Empty() {
		rect = GetUsedBounds(img, true, 1, geom.Rect{})
	}
	out := NewMono(rect.W, rect.H)
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			out.Set(x, y, img.At(rect.X+x, rect.Y+y).Gray())
		}
	}
	return out
}
