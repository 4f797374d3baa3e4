// Package raster holds the typed pixel buffers and pixel-level primitives
// the packing pipeline operates on: trimming, deduplication and hull
// construction all work against these views rather than against
// image/color directly, so the geometry code never has to branch on pixel
// format.
package raster

import "github.com/esimov/spright/geom"

// RGBA is a single premultiplied-alpha-free pixel, byte order matching
// image.NRGBA so an Image can be handed straight to the standard encoders.
type RGBA struct {
	R, G, B, A uint8
}

// Gray returns the BT.601-ish luma approximation used throughout the
// original pipeline for "gray level" thresholding: (77*r+151*g+28*b)>>8.
func (c RGBA) Gray() uint8 {
	return uint8((77*uint32(c.R) + 151*uint32(c.G) + 28*uint32(c.B)) >> 8)
}

// Image is a width*height buffer of RGBA pixels stored row-major.
type Image struct {
	W, H int
	Pix  []RGBA
}

// NewImage allocates a zeroed image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]RGBA, w*h)}
}

// Bounds returns the image's full rectangle.
func (img *Image) Bounds() geom.Rect { return geom.Rect{X: 0, Y: 0, W: img.W, H: img.H} }

// At returns the pixel at (x, y).
func (img *Image) At(x, y int) RGBA { return img.Pix[y*img.W+x] }

// Set stores the pixel at (x, y).
func (img *Image) Set(x, y int, c RGBA) { img.Pix[y*img.W+x] = c }

// checkRect resolves an empty rect to the image bounds, the "empty(rect)
// => use whole image" convention used throughout this package.
func (img *Image) checkRect(rect geom.Rect) geom.Rect {
	if rect.Empty() {
		return img.Bounds()
	}
	return rect
}

// Mono is a single-channel byte buffer, used for alpha/gray level masks and
// for the hull builder's above-threshold map.
type Mono struct {
	W, H int
	Pix  []uint8
}

// NewMono allocates a zeroed mono buffer of the given size.
func NewMono(w, h int) *Mono {
	return &Mono{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Bounds returns the buffer's full rectangle.
func (m *Mono) Bounds() geom.Rect { return geom.Rect{X: 0, Y: 0, W: m.W, H: m.H} }

// At returns the value at (x, y).
func (m *Mono) At(x, y int) uint8 { return m.Pix[y*m.W+x] }

// Set stores the value at (x, y).
func (m *Mono) Set(x, y int, v uint8) { m.Pix[y*m.W+x] = v }

// Clone returns a deep copy of img restricted to rect (or the whole image
// when rect is empty).
func (img *Image) Clone(rect geom.Rect) *Image {
	rect = img.checkRect(rect)
	out := NewImage(rect.W, rect.H)
	for y := 0; y < rect.H; y++ {
		srcRow := img.Pix[(rect.Y+y)*img.W+rect.X : (rect.Y+y)*img.W+rect.X+rect.W]
		copy(out.Pix[y*rect.W:(y+1)*rect.W], srcRow)
	}
	return out
}

// CopyRect copies src's region srcRect into dst at dstOrigin, applying the
// optional rotation (measured in quarter turns clockwise, 0..3).
func CopyRect(dst *Image, dstOrigin geom.Point, src *Image, srcRect geom.Rect, rotateCW int) {
	srcRect = src.checkRect(srcRect)
	switch rotateCW & 3 {
	case 0:
		for y := 0; y < srcRect.H; y++ {
			for x := 0; x < srcRect.W; x++ {
				dst.Set(dstOrigin.X+x, dstOrigin.Y+y, src.At(srcRect.X+x, srcRect.Y+y))
			}
		}
	case 1: // 90 degrees clockwise
		for y := 0; y < srcRect.H; y++ {
			for x := 0; x < srcRect.W; x++ {
				dst.Set(dstOrigin.X+srcRect.H-1-y, dstOrigin.Y+x, src.At(srcRect.X+x, srcRect.Y+y))
			}
		}
	case 2: // 180 degrees
		for y := 0; y < srcRect.H; y++ {
			for x := 0; x < srcRect.W; x++ {
				dst.Set(dstOrigin.X+srcRect.W-1-x, dstOrigin.Y+srcRect.H-1-y, src.At(srcRect.X+x, srcRect.Y+y))
			}
		}
	case 3: // 270 degrees clockwise (90 counter-clockwise)
		for y := 0; y < srcRect.H; y++ {
			for x := 0; x < srcRect.W; x++ {
				dst.Set(dstOrigin.X+y, dstOrigin.Y+srcRect.W-1-x, src.At(srcRect.X+x, srcRect.Y+y))
			}
		}
	}
}
