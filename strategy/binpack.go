package strategy

import "github.com/esimov/spright/rectpack"

// BinpackSettings configures the rect-packing strategy forwarded into
// rect_pack::Settings.
type BinpackSettings struct {
	Padding
	AllowRotate bool
	PowerOfTwo  bool
	Square      bool
	DivisibleW  int
	MaxWidth    int
	MaxHeight   int
	MaxSheets   int
	// Fast selects Best_Skyline over the full Best search, trading search
	// quality for speed once a sheet holds more than 1000 sprites.
	Fast bool
}

// FastThreshold is the sprite-count cutoff past which the cheaper Skyline
// search method is used to trade search quality for speed.
const FastThreshold = 1000

// Binpack delegates to the rect packer, returning one Placement per item
// plus the size of every produced slice.
func Binpack(settings BinpackSettings, items []Item) ([]Placement, []SliceSize) {
	sizes := make([]rectpack.Size, len(items))
	for i, it := range items {
		sizes[i] = rectpack.Size{Id: it.Id, Width: it.Width, Height: it.Height}
	}

	method := rectpack.Best
	if settings.Fast || len(items) > FastThreshold {
		method = rectpack.BestSkyline
	}

	rpSettings := rectpack.Settings{
		Method:        method,
		MaxSheets:     settings.MaxSheets,
		PowerOfTwo:    settings.PowerOfTwo,
		Square:        settings.Square,
		AllowRotate:   settings.AllowRotate,
		AlignWidth:    settings.DivisibleW,
		BorderPadding: settings.Border,
		MaxWidth:      settings.MaxWidth,
		MaxHeight:     settings.MaxHeight,
	}

	sheets := rectpack.Pack(rpSettings, sizes)

	var placements []Placement
	sliceSizes := make([]SliceSize, len(sheets))
	for sheetIndex, sheet := range sheets {
		sliceSizes[sheetIndex] = SliceSize{Width: sheet.Width, Height: sheet.Height}
		for _, r := range sheet.Rects {
			placements = append(placements, Placement{
				Id: r.Id, SliceIndex: sheetIndex,
				X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Rotated: r.Rotated,
			})
		}
	}
	return placements, sliceSizes
}
