package spright

import (
	"fmt"
	"time"

	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/raster"
	"github.com/esimov/spright/scheduler"
	"github.com/esimov/spright/trim"
)

// TrimSprites computes every sprite's TrimmedSourceRect (and, for convex
// trims, its Vertices) in parallel across pool, validating each sprite's
// SourceRect against its source image first.
func TrimSprites(sprites []*Sprite, pool *scheduler.Pool) error {
	for _, s := range sprites {
		if err := validateSprite(s); err != nil {
			return err
		}
	}

	scheduler.ForEachParallelSlice(pool, sprites, func(s *Sprite) {
		res := trim.TrimSprite(trim.Sprite{
			Source:       s.Source,
			SourceRect:   s.SourceRect,
			Mode:         s.Trim,
			Threshold:    s.TrimThreshold,
			Margin:       s.TrimMargin,
			GrayLevels:   s.TrimGrayLevels,
			VertexBudget: s.VertexBudget,
		})
		s.TrimmedSourceRect = res.TrimmedSourceRect
		s.Vertices = res.Vertices
	})
	return nil
}

// validateSprite enforces the InvalidInput contract: a sprite's declared
// source rect must have positive dimensions and lie fully within its
// source image's bounds.
func validateSprite(s *Sprite) error {
	if s.SourceRect.W <= 0 || s.SourceRect.H <= 0 {
		return fmt.Errorf("sprite %d (%q): %w: non-positive source rect %+v", s.Index, s.ID, ErrInvalidInput, s.SourceRect)
	}
	if s.Source == nil {
		return fmt.Errorf("sprite %d (%q): %w: no source image", s.Index, s.ID, ErrInvalidInput)
	}
	if !geom.Containing(s.Source.Bounds(), s.SourceRect) {
		return fmt.Errorf("sprite %d (%q): %w: source rect %+v extends outside source bounds %+v",
			s.Index, s.ID, ErrInvalidInput, s.SourceRect, s.Source.Bounds())
	}
	return nil
}

// validateSheet enforces the InvalidInput contract for a sheet's size
// constraints: a configured maximum may never be smaller than the
// configured minimum.
func validateSheet(sheet Sheet) error {
	if sheet.MaxWidth > 0 && sheet.Width > sheet.MaxWidth {
		return fmt.Errorf("sheet %q: %w: min_width %d > max_width %d", sheet.ID, ErrInvalidInput, sheet.Width, sheet.MaxWidth)
	}
	if sheet.MaxHeight > 0 && sheet.Height > sheet.MaxHeight {
		return fmt.Errorf("sheet %q: %w: min_height %d > max_height %d", sheet.ID, ErrInvalidInput, sheet.Height, sheet.MaxHeight)
	}
	return nil
}

// PackSprites runs the full orchestration pipeline over an already-trimmed
// sprite graph: size/offset/common-size derivation,
// per-sheet deduplication and packing, then rect/pivot/slice-size
// finalization. Sprites that cannot fit any admissible slice size are
// dropped with a warning rather than failing the job;
// warnings collects every dropped sprite and any other non-fatal report,
// capped at warnings.max as usual.
func PackSprites(sprites []*Sprite, sheets []Sheet, warnings *WarningCollector) ([]*Slice, error) {
	for i, sheet := range sheets {
		if err := validateSheet(sheet); err != nil {
			return nil, err
		}
		sheets[i] = sheet
	}

	for _, s := range sprites {
		updateSpriteSize(s)
	}
	updateCommonSizes(sprites)
	for _, s := range sprites {
		updateSpriteOffset(s)
	}

	fittable := dropUnfittableSprites(sprites, sheets, warnings)

	slices, err := packSpritesBySheet(fittable, sheets)
	if err != nil {
		return nil, err
	}

	for _, s := range fittable {
		if s.SheetIndex < 0 {
			continue
		}
		updateSpriteRect(s)
		updateSpritePivotPoint(s)
	}

	for _, slice := range slices {
		sheet := sheets[slice.SheetIndex]
		recomputeSliceSize(slice, sheet, fittable)
	}

	if warnings != nil {
		warnings.Flush()
	}
	return slices, nil
}

// dropUnfittableSprites clears SheetIndex (excluding the sprite from
// packing) on any sprite whose cell size cannot fit its sheet's maximum
// slice dimensions under any rotation, recording a warning for each.
// Returns the sprites that remain eligible to pack.
func dropUnfittableSprites(sprites []*Sprite, sheets []Sheet, warnings *WarningCollector) []*Sprite {
	fittable := make([]*Sprite, 0, len(sprites))
	for _, s := range sprites {
		if s.SheetIndex < 0 || s.SheetIndex >= len(sheets) {
			fittable = append(fittable, s)
			continue
		}
		sheet := sheets[s.SheetIndex]
		if fitsSheet(s, sheet) {
			fittable = append(fittable, s)
			continue
		}
		if warnings != nil {
			warnings.Add(fmt.Sprintf("sprite %q does not fit sheet %q and was dropped", s.ID, sheet.ID), s.Index)
		}
		s.SheetIndex = -1
	}
	return fittable
}

// fitsSheet reports whether s's cell size, plus the sheet's padding, can
// possibly fit within the sheet's maximum slice dimensions (unbounded
// sheets always fit). Modes without a hard cap (single/keep/layers) always
// fit, since those strategies size the slice to the content rather than to
// a fixed bound.
func fitsSheet(s *Sprite, sheet Sheet) bool {
	if sheet.Pack == PackSingle || sheet.Pack == PackKeep || sheet.Pack == PackLayers {
		return true
	}
	maxW, maxH := sheet.MaxWidth, sheet.MaxHeight
	if maxW <= 0 && maxH <= 0 {
		return true
	}
	w := s.Size.W + 2*sheet.BorderPadding
	h := s.Size.H + 2*sheet.BorderPadding
	fitsUpright := (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH)
	if fitsUpright {
		return true
	}
	if !sheet.AllowRotate {
		return false
	}
	return (maxW <= 0 || h <= maxW) && (maxH <= 0 || w <= maxH)
}

// GetSliceImage composites a finished slice's pixels by copying each of
// its sprites' TrimmedSourceRect content into its TrimmedRect location
// (rotated when the packer rotated it). The whole trimmed rect is copied;
// a sprite's Vertices are not used to mask it. mapIndex selects an alternate per-sprite source
// image for sprites carrying more than one texture map; since this
// pipeline models only a single source per sprite, any mapIndex besides
// the default -1 is accepted but has no effect. The slice-level alpha
// post-process and edge extrusion are a compositor's job, not this core
// helper's.
func GetSliceImage(slice *Slice, sprites []*Sprite, mapIndex int) *raster.Image {
	_ = mapIndex
	canvas := raster.NewImage(slice.Width, slice.Height)
	for _, idx := range slice.SpriteIndices {
		s := sprites[idx]
		if s.TrimmedSourceRect.Empty() {
			continue
		}
		rotateCW := 0
		if s.Rotated {
			rotateCW = 1
		}
		raster.CopyRect(canvas, s.TrimmedRect.XY(), s.Source, s.TrimmedSourceRect, rotateCW)
	}
	return canvas
}

// UpdateLastSourceWrittenTimes populates each slice's LastSourceWritten
// with the latest SourceModTime among its sprites, so a caller can skip
// re-encoding a slice whose sources are all older than its existing output
// file.
func UpdateLastSourceWrittenTimes(slices []*Slice, sprites []*Sprite) {
	for _, slice := range slices {
		var latest time.Time
		for _, idx := range slice.SpriteIndices {
			if t := sprites[idx].SourceModTime; t.After(latest) {
				latest = t
			}
		}
		slice.LastSourceWritten = latest
	}
}
