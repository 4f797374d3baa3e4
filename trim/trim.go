// Package trim computes each sprite's tight bounding region, optionally
// reduced further to a convex hull, from its source image content.
package trim

import (
	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/hull"
	"github.com/esimov/spright/raster"
)

// Mode selects how a sprite's trimmed_source_rect is derived.
type Mode int

const (
	// None keeps the sprite's declared source rect unchanged.
	None Mode = iota
	// Rect shrinks to the tight bounding box of non-background content.
	Rect
	// Convex additionally computes a convex-hull polygon over that box.
	Convex
)

// DefaultHullVertexBudget is the vertex cap applied to convex trims unless
// a sprite overrides it.
const DefaultHullVertexBudget = 8

// Result is the output of trimming one sprite.
type Result struct {
	TrimmedSourceRect geom.Rect
	Vertices          []hull.Point
}

// Sprite carries the subset of sprite configuration the trimmer needs.
type Sprite struct {
	Source      *raster.Image
	SourceRect  geom.Rect
	Mode        Mode
	Threshold   int
	Margin      int
	GrayLevels  bool
	VertexBudget int // 0 means DefaultHullVertexBudget
}

// TrimSprite derives the trimmed source rect (and, for Convex mode, a hull
// polygon) for one sprite. An empty resulting rect is valid: the sprite
// simply contributes nothing to its sheet but remains for bookkeeping.
func TrimSprite(s Sprite) Result {
	if s.Mode == None {
		return Result{TrimmedSourceRect: s.SourceRect}
	}

	trimmed := raster.GetUsedBounds(s.Source, s.GrayLevels, s.Threshold, s.SourceRect)

	var verts []hull.Point
	if s.Mode == Convex && !trimmed.Empty() {
		budget := s.VertexBudget
		if budget <= 0 {
			budget = DefaultHullVertexBudget
		}
		alpha := raster.GetAlphaLevels(s.Source, trimmed)
		verts = hull.Build(trimmed.W, trimmed.H, alpha.Pix, uint8(s.Threshold), budget, 2)
	}

	if s.Margin > 0 {
		trimmed = geom.Intersect(geom.Expand(trimmed, s.Margin), s.SourceRect)
	}

	return Result{TrimmedSourceRect: trimmed, Vertices: verts}
}
