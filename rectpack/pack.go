package rectpack

// runSettings is one candidate (width, height, method) the optimizer tries.
type runSettings struct {
	width, height int
	method        Method
}

// run is one full packing attempt: every sheet it produced and their total
// area, used to compare candidates via isBetterThan.
type run struct {
	runSettings
	sheets    []Sheet
	totalArea int
}

func isBetterThan(a, b run) bool {
	if len(a.sheets) != len(b.sheets) {
		return len(a.sheets) < len(b.sheets)
	}
	return a.totalArea < b.totalArea
}

func getInitialRunSettings(s Settings, perfectArea int) runSettings {
	w, h := getRunSize(s, perfectArea*5/4)
	return runSettings{width: w, height: h, method: concreteMethod(s.Method)}
}

// optimizationStage is a fixed sequence of search widenings the optimizer
// walks through, widening the search net each time
// the current stage stops improving the result.
type optimizationStage int

const (
	stageFirstRun optimizationStage = iota
	stageMinimizeSheetCount
	stageShrinkSquare
	stageShrinkWidthFast
	stageShrinkHeightFast
	stageShrinkWidthSlow
	stageShrinkHeightSlow
	stageEnd
)

type optimizationState struct {
	perfectArea int
	settings    runSettings
	stage       optimizationStage
	firstMethod Method
	iteration   int
}

func advanceStage(stage *optimizationStage) bool {
	if *stage == stageEnd {
		return false
	}
	*stage++
	return true
}

// optimizeStage mutates state.settings for the current stage and reports
// whether to keep using that stage (true) or advance to the next one
// (false), including the documented quirk that fast-stage exhaustion
// advances the method without deduplicating previously tried
// (method,width,height) triples.
func optimizeStage(state *optimizationState, packSettings Settings, best run) bool {
	settings := &state.settings
	switch state.stage {
	case stageFirstRun, stageEnd:
		return false

	case stageMinimizeSheetCount:
		if len(best.sheets) <= 1 || state.iteration > 5 {
			return false
		}
		last := best.sheets[len(best.sheets)-1]
		area := last.Width * last.Height
		for i := 0; area > 0; i++ {
			if settings.width == packSettings.MaxWidth && settings.height == packSettings.MaxHeight {
				break
			}
			if settings.height == packSettings.MaxHeight ||
				(settings.width < packSettings.MaxWidth && i%2 != 0) {
				settings.width++
				area -= settings.height
			} else {
				settings.height++
				area -= settings.width
			}
		}
		return true

	case stageShrinkSquare:
		if settings.width != best.width || settings.height != best.height || state.iteration > 5 {
			return false
		}
		w, h := getRunSize(packSettings, state.perfectArea)
		settings.width = (settings.width + w) / 2
		settings.height = (settings.height + h) / 2
		return true

	case stageShrinkWidthFast, stageShrinkHeightFast, stageShrinkWidthSlow, stageShrinkHeightSlow:
		if settings.width != best.width || settings.height != best.height || state.iteration > 5 {
			if !advance(&settings.method, packSettings.Method, state.firstMethod) {
				return false
			}
			settings.width = best.width
			settings.height = best.height
		}

		w, h := getRunSize(packSettings, state.perfectArea)
		switch state.stage {
		case stageShrinkWidthFast:
			if settings.width > w+4 {
				settings.width = (settings.width + w) / 2
			}
		case stageShrinkHeightFast:
			if settings.height > h+4 {
				settings.height = (settings.height + h) / 2
			}
		case stageShrinkWidthSlow:
			if settings.width > w {
				settings.width--
			}
		case stageShrinkHeightSlow:
			if settings.height > h {
				settings.height--
			}
		}
		return true
	}
	return false
}

func optimizeRunSettings(state *optimizationState, packSettings Settings, best run) bool {
	previous := *state
	for {
		if !optimizeStage(state, packSettings, best) {
			if advanceStage(&state.stage) {
				state.settings.width = best.width
				state.settings.height = best.height
				state.settings.method = best.method
				state.firstMethod = best.method
				state.iteration = 0
				continue
			}
		}

		if state.stage == stageEnd {
			return false
		}

		state.iteration++

		w, h := correctSize(packSettings, state.settings.width, state.settings.height)
		if w != previous.settings.width || h != previous.settings.height ||
			state.settings.method != previous.settings.method {
			state.settings.width = w
			state.settings.height = h
			return true
		}
	}
}

// runMaxRects attempts one packing run using the MaxRects engine,
// splitting overflow sprites across successive sheets until every size
// fits or the run is cancelled for being worse than best.
func runMaxRects(settings Settings, r *run, best *run, sizes []Size) bool {
	remaining := append([]Size(nil), sizes...)
	for len(remaining) > 0 {
		bin := newMaxRectsBin(r.width, r.height, settings.AllowRotate)
		placed, unplaced := bin.insert(remaining, r.method)
		w, h := bin.bottomRight()
		w, h = correctSize(settings, w, h)
		w, h = applyPadding(settings, w, h, false)

		sheet := Sheet{Width: w, Height: h}
		r.totalArea += w * h

		if best != nil && !isBetterThan(*r, *best) {
			return false
		}

		sheet.Rects = make([]PlacedRect, len(placed))
		for i, p := range placed {
			p.X += settings.BorderPadding
			p.Y += settings.BorderPadding
			sheet.Rects[i] = p
		}
		r.sheets = append(r.sheets, sheet)
		remaining = unplaced
	}
	return true
}

// runSkyline mirrors runMaxRects using the Skyline engine.
func runSkyline(settings Settings, r *run, best *run, sizes []Size) bool {
	remaining := append([]Size(nil), sizes...)
	for len(remaining) > 0 {
		bin := newSkylineBin(r.width, r.height, settings.AllowRotate)
		placed, unplaced := bin.insert(remaining, r.method)
		w, h := bin.bottomRight()
		w, h = correctSize(settings, w, h)
		w, h = applyPadding(settings, w, h, false)

		sheet := Sheet{Width: w, Height: h}
		r.totalArea += w * h

		if best != nil && !isBetterThan(*r, *best) {
			return false
		}

		sheet.Rects = make([]PlacedRect, len(placed))
		for i, p := range placed {
			p.X += settings.BorderPadding
			p.Y += settings.BorderPadding
			sheet.Rects[i] = p
		}
		r.sheets = append(r.sheets, sheet)
		remaining = unplaced
	}
	return true
}

// Pack runs the full dimension-search packer: it seeds an initial sheet
// size guess, repeatedly tries a candidate (width, height, method),
// updates the best-known result, and asks the optimizer for the next
// candidate until no further improvement is possible.
//
// See DESIGN.md for the deliberately preserved quirks: the perfect_area*5/4
// initial size heuristic and the non-deduplicating method-revisit behavior
// after a shrink stage exhausts its iteration budget.
func Pack(settings Settings, sizes []Size) []Sheet {
	sizes = correctSettings(&settings, append([]Size(nil), sizes...))
	if len(sizes) == 0 {
		return nil
	}

	perfectArea := getPerfectArea(sizes)
	state := optimizationState{
		perfectArea: perfectArea,
		settings:    getInitialRunSettings(settings, perfectArea),
		stage:       stageFirstRun,
	}

	var best *run
	for {
		candidate := run{runSettings: state.settings}

		var succeeded bool
		if isMaxRectsMethod(candidate.method) {
			succeeded = runMaxRects(settings, &candidate, best, sizes)
		} else {
			succeeded = runSkyline(settings, &candidate, best, sizes)
		}

		if succeeded && (best == nil || isBetterThan(candidate, *best)) {
			best = &candidate
		}

		if best == nil {
			break
		}
		if !optimizeRunSettings(&state, settings, *best) {
			break
		}
	}

	if best == nil {
		return nil
	}
	if settings.MaxSheets > 0 && settings.MaxSheets < len(best.sheets) {
		best.sheets = best.sheets[:settings.MaxSheets]
	}
	return best.sheets
}
