package cliutil

import (
	"image/color"
	"math"

	"github.com/esimov/spright"
	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/hull"
	"github.com/esimov/spright/imop"
	"github.com/esimov/spright/raster"
)

// CompositeSlice materializes one output slice's pixels: every sprite's
// TrimmedSourceRect is copied (rotated if the packer rotated it, masked to
// its hull polygon if it has one) into its TrimmedRect location, border
// sprites are extruded outward, then the sheet's alpha post-process runs
// over the whole canvas. Compositing stays out of the spright package
// itself: the packing core only decides placement, never pixels.
func CompositeSlice(slice *spright.Slice, sheet spright.Sheet, sprites []*spright.Sprite) *raster.Image {
	canvas := raster.NewImage(slice.Width, slice.Height)
	blend := imop.NewComposite()
	blend.Set(imop.SrcOver)

	for _, idx := range slice.SpriteIndices {
		s := sprites[idx]
		if s.TrimmedSourceRect.Empty() {
			continue
		}
		blitSprite(canvas, blend, s)
		if s.ExtrudeCount > 0 {
			extrude(canvas, s)
		}
	}

	applyAlphaMode(canvas, sheet.AlphaMode)
	return canvas
}

// blitSprite copies one sprite's trimmed source pixels into the canvas at
// its packed location, applying rotation and (for convex-trimmed sprites)
// a hull mask that keeps only pixels inside the sprite's polygon.
func blitSprite(canvas *raster.Image, blend *imop.Composite, s *spright.Sprite) {
	rot := 0
	if s.Rotated {
		rot = 1
	}

	w, h := s.TrimmedSourceRect.W, s.TrimmedSourceRect.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if len(s.Vertices) > 0 && !hull.Contains(s.Vertices, float64(x)+0.5, float64(y)+0.5) {
				continue
			}
			px := s.Source.At(s.TrimmedSourceRect.X+x, s.TrimmedSourceRect.Y+y)

			dx, dy := x, y
			switch rot {
			case 1:
				dx, dy = h-1-y, x
			}

			dstX, dstY := s.TrimmedRect.X+dx, s.TrimmedRect.Y+dy
			if dstX < 0 || dstY < 0 || dstX >= canvas.W || dstY >= canvas.H {
				continue
			}
			src := color.NRGBA{R: px.R, G: px.G, B: px.B, A: px.A}
			dst := canvas.At(dstX, dstY)
			out := blend.Blend(src, color.NRGBA{R: dst.R, G: dst.G, B: dst.B, A: dst.A})
			canvas.Set(dstX, dstY, raster.RGBA{R: out.R, G: out.G, B: out.B, A: out.A})
		}
	}
}

// extrude replicates a sprite's edge pixels outward into its padding
// margin so bilinear sampling at the atlas boundary never bleeds in
// neighboring content, per the Extrude mode named on the sprite.
func extrude(canvas *raster.Image, s *spright.Sprite) {
	r := s.TrimmedRect
	for i := 1; i <= s.ExtrudeCount; i++ {
		extrudeEdge(canvas, r, i, s.ExtrudeMode, 0, -1) // top
		extrudeEdge(canvas, r, i, s.ExtrudeMode, 0, 1)  // bottom
		extrudeEdge(canvas, r, i, s.ExtrudeMode, -1, 0) // left
		extrudeEdge(canvas, r, i, s.ExtrudeMode, 1, 0)  // right
	}
}

// extrudeEdge writes one ring of pixels at distance i outward from r's
// near edge along direction (dx, dy), sourcing the replicated pixel
// according to mode: clamp always repeats the edge pixel, repeat wraps
// around to the far edge of the content as if it tiled, mirror reflects
// back and forth across the content every length pixels.
func extrudeEdge(canvas *raster.Image, r geom.Rect, i int, mode spright.ExtrudeMode, dx, dy int) {
	switch {
	case dy != 0:
		y, length := r.Y-i, r.H
		fromNear := dy < 0
		srcOffset := extrudeOffset(mode, i, length, fromNear)
		if !fromNear {
			y = r.Y + r.H - 1 + i
		}
		if y < 0 || y >= canvas.H {
			return
		}
		for x := r.X; x < r.X+r.W; x++ {
			canvas.Set(x, y, canvas.At(x, r.Y+srcOffset))
		}
	case dx != 0:
		x, length := r.X-i, r.W
		fromNear := dx < 0
		srcOffset := extrudeOffset(mode, i, length, fromNear)
		if !fromNear {
			x = r.X + r.W - 1 + i
		}
		if x < 0 || x >= canvas.W {
			return
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			canvas.Set(x, y, canvas.At(r.X+srcOffset, y))
		}
	}
}

// extrudeOffset returns, for a pixel i steps outside one edge of a
// length-pixel content span, the 0-based offset from the span's first
// pixel (its top or left edge, whichever edge is being extruded) to read
// the replicated value from.
func extrudeOffset(mode spright.ExtrudeMode, i, length int, fromNearEdge bool) int {
	if length <= 1 {
		return 0
	}
	switch mode {
	case spright.ExtrudeRepeat:
		d := (i - 1) % length
		if fromNearEdge {
			return length - 1 - d
		}
		return d
	case spright.ExtrudeMirror:
		period := 2 * length
		m := (i - 1) % period
		if m >= length {
			m = period - 1 - m
		}
		if fromNearEdge {
			return m
		}
		return length - 1 - m
	default: // ExtrudeClamp
		if fromNearEdge {
			return 0
		}
		return length - 1
	}
}

// applyAlphaMode runs the sheet's chosen slice-level alpha post-process
// (keep, clear, bleed, premultiply or colorkey) over the whole canvas.
func applyAlphaMode(canvas *raster.Image, mode raster.AlphaMode) {
	switch mode {
	case raster.AlphaClear:
		for i, p := range canvas.Pix {
			if p.A == 0 {
				canvas.Pix[i] = raster.RGBA{}
			}
		}
	case raster.AlphaPremultiplied:
		for i, p := range canvas.Pix {
			a := float64(p.A) / 255
			canvas.Pix[i] = raster.RGBA{
				R: uint8(math.Round(float64(p.R) * a)),
				G: uint8(math.Round(float64(p.G) * a)),
				B: uint8(math.Round(float64(p.B) * a)),
				A: p.A,
			}
		}
	case raster.AlphaColorkey:
		key := raster.GuessColorkey(canvas)
		for i, p := range canvas.Pix {
			if p.A == 0 {
				canvas.Pix[i] = key
			}
		}
	case raster.AlphaBleed:
		bleedTransparentPixels(canvas)
	case raster.AlphaKeep:
		// no post-process
	}
}

// bleedTransparentPixels assigns every fully-transparent pixel that has an
// opaque 4-connected neighbor the color of the first such neighbor found
// (left, right, up, down), keeping its alpha at 0. Bled pixels stay
// transparent and are never used as a source, so only pixels directly
// next to opaque content change; this is enough to avoid black fringes
// from non-premultiplied bilinear sampling without a full
// distance-transform flood fill.
func bleedTransparentPixels(canvas *raster.Image) {
	for pass := 0; pass < 2; pass++ {
		for y := 0; y < canvas.H; y++ {
			for x := 0; x < canvas.W; x++ {
				p := canvas.At(x, y)
				if p.A != 0 {
					continue
				}
				if c, ok := opaqueNeighbor(canvas, x, y); ok {
					canvas.Set(x, y, raster.RGBA{R: c.R, G: c.G, B: c.B, A: 0})
				}
			}
		}
	}
}

func opaqueNeighbor(canvas *raster.Image, x, y int) (raster.RGBA, bool) {
	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if nx < 0 || ny < 0 || nx >= canvas.W || ny >= canvas.H {
			continue
		}
		if c := canvas.At(nx, ny); c.A != 0 {
			return c, true
		}
	}
	return raster.RGBA{}, false
}
