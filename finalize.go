package spright

import "github.com/esimov/spright/geom"

// updateSpriteRect fills in a sprite's final trimmed_rect/rect once
// packing has assigned trimmed_rect's position: trimmed_rect always gets
// the trimmed content's size, and rect either equals it (crop) or is
// expanded back out to the sprite's full source-rect footprint, keeping
// the trim inset consistent with the source.
func updateSpriteRect(s *Sprite) {
	s.TrimmedRect.W = s.TrimmedSourceRect.W
	s.TrimmedRect.H = s.TrimmedSourceRect.H

	if s.Crop {
		s.Rect = s.TrimmedRect
	} else {
		s.Rect = geom.Rect{
			X: s.TrimmedRect.X - (s.TrimmedSourceRect.X - s.SourceRect.X),
			Y: s.TrimmedRect.Y - (s.TrimmedSourceRect.Y - s.SourceRect.Y),
			W: s.SourceRect.W,
			H: s.SourceRect.H,
		}
	}
}

// updateSpritePivotPoint derives the sprite's final pivot point: an
// anchor within either the full source rect or (if CropPivot) the trimmed
// rect, translated into the packed rect's coordinate space.
func updateSpritePivotPoint(s *Sprite) {
	pivotRect := s.SourceRect
	if s.CropPivot {
		pivotRect = s.TrimmedSourceRect
	}

	switch s.PivotX {
	case AlignCenterX:
		s.PivotPoint.X += float64(pivotRect.W) / 2
	case AlignRight:
		s.PivotPoint.X += float64(pivotRect.W)
	}
	switch s.PivotY {
	case AlignMiddle:
		s.PivotPoint.Y += float64(pivotRect.H) / 2
	case AlignBottom:
		s.PivotPoint.Y += float64(pivotRect.H)
	}

	s.PivotPoint.X -= float64(s.Rect.X - s.TrimmedRect.X)
	s.PivotPoint.Y -= float64(s.Rect.Y - s.TrimmedRect.Y)
	s.PivotPoint.X += float64(pivotRect.X - s.TrimmedSourceRect.X)
	s.PivotPoint.Y += float64(pivotRect.Y - s.TrimmedSourceRect.Y)
}

// recomputeSliceSize grows a slice's width/height to cover every sprite
// it holds (including its padding-offset cell, accounting for rotation),
// then applies the sheet's divisible-width/power-of-two/square rules.
func recomputeSliceSize(slice *Slice, sheet Sheet, sprites []*Sprite) {
	maxX, maxY := 0, 0
	for _, idx := range slice.SpriteIndices {
		s := sprites[idx]
		cellW, cellH := s.Size.W, s.Size.H
		if s.Rotated {
			cellW, cellH = cellH, cellW
		}
		if x := s.TrimmedRect.X - s.Offset.X + cellW; x > maxX {
			maxX = x
		}
		if y := s.TrimmedRect.Y - s.Offset.Y + cellH; y > maxY {
			maxY = y
		}
	}

	slice.Width = max(sheet.Width, maxX+sheet.BorderPadding)
	slice.Height = max(sheet.Height, maxY+sheet.BorderPadding)

	if sheet.DivisibleWidth > 0 {
		slice.Width = geom.Ceil(slice.Width, sheet.DivisibleWidth)
	}
	if sheet.PowerOfTwo {
		slice.Width = geom.CeilToPOT(slice.Width)
		slice.Height = geom.CeilToPOT(slice.Height)
	}
	if sheet.Square {
		slice.Width = max(slice.Width, slice.Height)
		slice.Height = slice.Width
	}
}
