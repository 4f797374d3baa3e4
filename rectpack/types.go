// Package rectpack implements the dual-engine rectangle packer: a Skyline
// heuristic family and a MaxRects heuristic family, driven by a
// dimension-search optimizer that tries candidate sheet sizes and methods
// until it can no longer improve the result.
package rectpack

// Method selects a packing heuristic. Best/BestSkyline/BestMaxRects are
// meta-methods resolved to a concrete starting heuristic and then advanced
// through their family by the optimizer as it searches for a better fit;
// the rest are concrete heuristics from one of the two engine families.
//
// The ordering matters: it defines the contiguous Skyline and MaxRects
// sub-ranges the optimizer iterates through.
type Method int

const (
	Best Method = iota
	BestSkyline
	BestMaxRects

	SkylineBottomLeft
	SkylineBestFit

	MaxRectsBestShortSideFit
	MaxRectsBestLongSideFit
	MaxRectsBestAreaFit
	MaxRectsBottomLeftRule
	MaxRectsContactPointRule
)

const (
	firstMethod        = SkylineBottomLeft
	lastMethod         = MaxRectsContactPointRule
	firstSkylineMethod = SkylineBottomLeft
	lastSkylineMethod  = SkylineBestFit
	firstMaxRectsMethod = MaxRectsBestShortSideFit
	lastMaxRectsMethod  = MaxRectsContactPointRule
)

func isSkylineMethod(m Method) bool {
	return m >= firstSkylineMethod && m <= lastSkylineMethod
}

func isMaxRectsMethod(m Method) bool {
	return m >= firstMaxRectsMethod && m <= lastMaxRectsMethod
}

func advanceMethod(m Method) Method {
	if m == lastMethod {
		return firstMethod
	}
	return m + 1
}

func advanceSkylineMethod(m Method) Method {
	if m == lastSkylineMethod {
		return firstSkylineMethod
	}
	return m + 1
}

func advanceMaxRectsMethod(m Method) Method {
	if m == lastMaxRectsMethod {
		return firstMaxRectsMethod
	}
	return m + 1
}

func concreteMethod(m Method) Method {
	switch m {
	case Best, BestSkyline:
		return firstSkylineMethod
	case BestMaxRects:
		return firstMaxRectsMethod
	default:
		return m
	}
}

// advance mutates method per settingsMethod's family and reports whether
// the resulting method differs from both its previous value and
// firstMethod (i.e. whether the family has more methods left to try).
func advance(method *Method, settingsMethod Method, firstMethodOfFamily Method) bool {
	previous := *method
	switch settingsMethod {
	case Best:
		*method = advanceMethod(*method)
		if *method != firstMethodOfFamily && *method == MaxRectsContactPointRule {
			*method = advanceMethod(*method)
		}
	case BestSkyline:
		*method = advanceSkylineMethod(*method)
	case BestMaxRects:
		*method = advanceMaxRectsMethod(*method)
	}
	return *method != previous && *method != firstMethodOfFamily
}

// Size is an input rectangle to be packed, identified by Id so results can
// be mapped back onto the caller's own sprite list.
type Size struct {
	Id            int
	Width, Height int
}

// PlacedRect is one packed rectangle's final position within its sheet.
type PlacedRect struct {
	Id            int
	X, Y          int
	Width, Height int
	Rotated       bool
}

// Sheet is one output bin and the rects placed into it.
type Sheet struct {
	Width, Height int
	Rects         []PlacedRect
}

// Settings mirrors rect_pack::Settings: the packing job's shape and
// quality constraints.
type Settings struct {
	Method        Method
	MaxSheets     int
	PowerOfTwo    bool
	Square        bool
	AllowRotate   bool
	AlignWidth    int
	BorderPadding int
	OverAllocate  int
	MinWidth      int
	MinHeight     int
	MaxWidth      int
	MaxHeight     int
}
