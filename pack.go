package spright

import (
	"fmt"
	"sort"

	"github.com/esimov/spright/compact"
	"github.com/esimov/spright/dedup"
	"github.com/esimov/spright/raster"
	"github.com/esimov/spright/strategy"
)

// packSpritesBySheet stable-sorts sprites by (sheet index, sprite index),
// splits them into per-sheet spans, deduplicates each span (unless its
// sheet keeps duplicates) and dispatches it to the sheet's pack mode.
func packSpritesBySheet(sprites []*Sprite, sheets []Sheet) ([]*Slice, error) {
	if len(sprites) == 0 {
		return nil, nil
	}

	ordered := append([]*Sprite(nil), sprites...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SheetIndex != ordered[j].SheetIndex {
			return ordered[i].SheetIndex < ordered[j].SheetIndex
		}
		return ordered[i].Index < ordered[j].Index
	})

	var slices []*Slice
	begin := 0
	for begin < len(ordered) {
		end := begin + 1
		for end < len(ordered) && ordered[end].SheetIndex == ordered[begin].SheetIndex {
			end++
		}

		sheetIndex := ordered[begin].SheetIndex
		if sheetIndex < 0 || sheetIndex >= len(sheets) {
			return nil, fmt.Errorf("sprite %d: %w: sheet index %d out of range", ordered[begin].Index, ErrInvalidInput, sheetIndex)
		}
		sheet := sheets[sheetIndex]
		span := ordered[begin:end]

		sheetSlices, err := packSheetSpan(sheet, span, sprites)
		if err != nil {
			return nil, err
		}
		offset := len(slices)
		for i, sl := range sheetSlices {
			sl.SheetOutputIndex = i
			sl.SheetIndex = sheetIndex
			slices = append(slices, sl)
		}
		for _, s := range span {
			if s.SheetIndex != -1 {
				s.SliceIndex += offset
			}
		}

		begin = end
	}
	return slices, nil
}

// packSheetSpan deduplicates (when requested) and packs one sheet's
// contiguous sprite span, returning the slices produced for that sheet
// alone (sheet-local output indices, to be renumbered by the caller).
func packSheetSpan(sheet Sheet, span []*Sprite, all []*Sprite) ([]*Slice, error) {
	if sheet.Duplicates == DuplicatesKeep {
		return packSlice(sheet, span, all)
	}
	return packSliceDeduplicate(sheet, span, all)
}

// packSliceDeduplicate partitions span into unique and duplicate sprites
// by pixel identity, packs the unique subset, then either drops the
// duplicates from the sheet or copies their representative's placement,
// matching pack_slice_deduplicate.
func packSliceDeduplicate(sheet Sheet, span []*Sprite, all []*Sprite) ([]*Slice, error) {
	identical := func(i, j int) bool {
		a, b := span[i], span[j]
		return raster.IsIdentical(a.Source, a.TrimmedSourceRect, b.Source, b.TrimmedSourceRect)
	}
	uniqueIdx, duplicateOf := dedup.Partition(len(span), identical)

	unique := make([]*Sprite, len(uniqueIdx))
	for i, idx := range uniqueIdx {
		unique[i] = span[idx]
	}
	sort.SliceStable(unique, func(i, j int) bool { return unique[i].Index < unique[j].Index })

	slices, err := packSlice(sheet, unique, all)
	if err != nil {
		return nil, err
	}

	for i := range span {
		span[i].DuplicateOfIndex = -1
		if uniqueIdx := duplicateOf[i]; uniqueIdx >= 0 {
			span[i].DuplicateOfIndex = span[uniqueIdx].Index
		}
	}

	if sheet.Duplicates == DuplicatesDrop {
		for i, s := range span {
			if duplicateOf[i] >= 0 {
				s.SheetIndex = -1
			}
		}
	} else {
		for i, s := range span {
			if duplicateOf[i] < 0 {
				continue
			}
			rep := span[duplicateOf[i]]
			s.SliceIndex = rep.SliceIndex
			s.TrimmedRect = rep.TrimmedRect
			s.Rotated = rep.Rotated
		}
	}
	return slices, nil
}

// packSlice dispatches to the concrete pack strategy named by
// sheet.Pack, mutating each sprite's TrimmedRect/Rotated/SliceIndex and
// returning the slices it produced.
func packSlice(sheet Sheet, span []*Sprite, all []*Sprite) ([]*Slice, error) {
	padding := strategy.Padding{Border: sheet.BorderPadding, Shape: sheet.ShapePadding}

	switch sheet.Pack {
	case PackSingle:
		placements, sizes, err := strategy.Single(padding, 0, toItems(span))
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.ID, ErrNotAllSpritesPacked)
		}
		return applyPlacements(sheet, span, all, placements, sizes)

	case PackKeep:
		placements, size := strategy.Keep(toItems(span))
		return applyPlacements(sheet, span, all, placements, []strategy.SliceSize{size})

	case PackRows, PackColumns:
		placements, sizes, err := strategy.Lines(sheet.Pack == PackRows, effectiveMaxWidth(sheet), effectiveMaxHeight(sheet), padding, toItems(span))
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.ID, ErrNotAllSpritesPacked)
		}
		return applyPlacements(sheet, span, all, placements, sizes)

	case PackLayers:
		placements, size := strategy.Layers(padding, toItems(span))
		slices, err := applyPlacements(sheet, span, all, placements, []strategy.SliceSize{size})
		for _, sl := range slices {
			sl.Layered = true
		}
		return slices, err

	case PackCompact:
		slices, err := packBinpack(sheet, span, all)
		if err != nil {
			return nil, err
		}
		compactSlices(sheet, slices, all)
		return slices, nil

	default: // PackBinpack
		return packBinpack(sheet, span, all)
	}
}

func packBinpack(sheet Sheet, span []*Sprite, all []*Sprite) ([]*Slice, error) {
	settings := strategy.BinpackSettings{
		Padding:     strategy.Padding{Border: sheet.BorderPadding, Shape: sheet.ShapePadding},
		AllowRotate: sheet.AllowRotate,
		PowerOfTwo:  sheet.PowerOfTwo,
		Square:      sheet.Square,
		DivisibleW:  sheet.DivisibleWidth,
		MaxWidth:    effectiveMaxWidth(sheet),
		MaxHeight:   effectiveMaxHeight(sheet),
		MaxSheets:   0,
		Fast:        len(span) > strategy.FastThreshold,
	}
	placements, sizes := strategy.Binpack(settings, toItems(span))
	placedIDs := make(map[int]bool, len(placements))
	for _, p := range placements {
		placedIDs[p.Id] = true
	}
	for _, s := range span {
		if !placedIDs[s.Index] {
			return nil, fmt.Errorf("sheet %q: %w", sheet.ID, ErrNotAllSpritesPacked)
		}
	}
	return applyPlacements(sheet, span, all, placements, sizes)
}

// compactSlices runs the rigid-body settle pass over every slice binpack
// produced for a compact sheet, re-snapping shaped sprites and shrinking
// slice height to match.
func compactSlices(sheet Sheet, slices []*Slice, all []*Sprite) {
	for _, slice := range slices {
		var inputs []compact.Sprite
		for _, idx := range slice.SpriteIndices {
			s := all[idx]
			if len(s.Vertices) == 0 {
				continue
			}
			verts := make([]compact.Vec2, len(s.Vertices))
			for i, v := range s.Vertices {
				verts[i] = compact.Vec2{X: v.X, Y: v.Y}
			}
			inputs = append(inputs, compact.Sprite{
				ID:        idx,
				TrimmedX:  s.TrimmedRect.X,
				TrimmedY:  s.TrimmedRect.Y,
				TrimmedW:  s.TrimmedRect.W,
				TrimmedH:  s.TrimmedRect.H,
				Vertices:  verts,
			})
		}
		if len(inputs) == 0 {
			continue
		}
		placements, newHeight := compact.Settle(slice.Width, slice.Height, sheet.BorderPadding, sheet.ShapePadding, inputs)
		for _, p := range placements {
			s := all[p.ID]
			s.TrimmedRect.X += p.DX
			s.TrimmedRect.Y += p.DY
			s.Rect.X += p.DX
			s.Rect.Y += p.DY
		}
		slice.Height = newHeight
	}
}

func toItems(span []*Sprite) []strategy.Item {
	items := make([]strategy.Item, len(span))
	for i, s := range span {
		items[i] = strategy.Item{Id: s.Index, Width: s.Size.W, Height: s.Size.H}
	}
	return items
}

func effectiveMaxWidth(sheet Sheet) int {
	if sheet.MaxWidth > 0 {
		return sheet.MaxWidth
	}
	return 1 << 20
}

func effectiveMaxHeight(sheet Sheet) int {
	if sheet.MaxHeight > 0 {
		return sheet.MaxHeight
	}
	return 1 << 20
}

// applyPlacements writes each Placement's cell position and rotation back
// onto its sprite (content position = cell position + the sprite's
// alignment offset) and groups sprites into Slice records by
// SliceIndex, in the sheet-local numbering the caller renumbers globally.
func applyPlacements(sheet Sheet, span []*Sprite, all []*Sprite, placements []strategy.Placement, sizes []strategy.SliceSize) ([]*Slice, error) {
	byID := make(map[int]*Sprite, len(span))
	for _, s := range span {
		byID[s.Index] = s
	}

	bySlice := make(map[int][]int)
	for _, p := range placements {
		s, ok := byID[p.Id]
		if !ok {
			continue
		}
		s.Rotated = p.Rotated
		s.TrimmedRect.X = p.X + s.Offset.X
		s.TrimmedRect.Y = p.Y + s.Offset.Y
		bySlice[p.SliceIndex] = append(bySlice[p.SliceIndex], s.Index)
	}

	slices := make([]*Slice, len(sizes))
	indexOf := make(map[int]int, len(all))
	for i, s := range all {
		indexOf[s.Index] = i
	}
	for sliceIdx := range sizes {
		indices := bySlice[sliceIdx]
		sort.Ints(indices)
		byPos := make([]int, 0, len(indices))
		for _, spriteIndex := range indices {
			byPos = append(byPos, indexOf[spriteIndex])
		}
		slices[sliceIdx] = &Slice{
			Width:         sizes[sliceIdx].Width,
			Height:        sizes[sliceIdx].Height,
			SpriteIndices: byPos,
		}
		for _, pos := range byPos {
			all[pos].SliceIndex = sliceIdx
		}
	}
	return slices, nil
}
