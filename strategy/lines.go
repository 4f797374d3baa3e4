package strategy

// Lines packs items greedily along one axis, wrapping to a new line when
// the current one is full and starting a new slice when the perpendicular
// axis overflows maxHeight (for Rows) or maxWidth (for Columns). It
// returns ErrNotAllItemsPacked if any single item is too large to ever
// fit.
func Lines(horizontal bool, maxWidth, maxHeight int, padding Padding, items []Item) ([]Placement, []SliceSize, error) {
	maxD, maxP := maxWidth, maxHeight
	if !horizontal {
		maxD, maxP = maxHeight, maxWidth
	}
	maxD -= padding.Border * 2
	maxP -= padding.Border * 2

	var placements []Placement
	var sliceSizes []SliceSize

	sliceIndex := 0
	posD, posP := 0, 0
	lineSize := 0
	sliceStart := 0

	finishSlice := func(end int) {
		if end <= sliceStart {
			return
		}
		w, h := 0, 0
		for _, p := range placements {
			if p.SliceIndex != sliceIndex {
				continue
			}
			w = max(w, p.X+p.Width)
			h = max(h, p.Y+p.Height)
		}
		sliceSizes = append(sliceSizes, SliceSize{Width: w + padding.Border, Height: h + padding.Border})
		sliceIndex++
	}

	for i, it := range items {
		sizeD, sizeP := it.Width, it.Height
		if !horizontal {
			sizeD, sizeP = it.Height, it.Width
		}

		if posD+sizeD > maxD {
			posD = 0
			posP += lineSize
			lineSize = 0
		}
		if posP+sizeP > maxP {
			finishSlice(i)
			sliceStart = i
			posD, posP = 0, 0
			lineSize = 0
		}

		x, y := posD, posP
		if !horizontal {
			x, y = posP, posD
		}
		if x+it.Width > maxWidth-padding.Border*2 || y+it.Height > maxHeight-padding.Border*2 {
			return nil, nil, ErrNotAllItemsPacked
		}

		placements = append(placements, Placement{
			Id: it.Id, SliceIndex: sliceIndex,
			X: x + padding.Border, Y: y + padding.Border,
			Width: it.Width, Height: it.Height,
		})

		posD += sizeD + padding.Shape
		lineSize = max(lineSize, sizeP+padding.Shape)
	}

	finishSlice(len(items))
	return placements, sliceSizes, nil
}
