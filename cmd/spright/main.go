// Command spright packs a declarative sprite configuration into one or
// more texture atlases, wiring the packing core (package spright) to its
// ambient collaborators: JSON config decoding, image I/O, slice
// compositing and description rendering.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"github.com/esimov/spright"
	"github.com/esimov/spright/cliutil"
	"github.com/esimov/spright/raster"
	"github.com/esimov/spright/scheduler"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬┌─┐┬ ┬┌┬┐
└─┐├─┘├┬┘││ ┬├─┤ │
└─┘┴  ┴└─┴└─┘┴ ┴ ┴

Sprite atlas packer.
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, helpBanner)
		fmt.Fprintln(os.Stderr, "usage: spright <config.json> [output-dir]")
		os.Exit(2)
	}

	configPath := os.Args[1]
	outDir := filepath.Dir(configPath)
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(cliutil.DecorateText(fmt.Sprintf("unable to create output dir: %v", err), cliutil.ErrorMessage))
	}

	spin := cliutil.NewSpinner(
		fmt.Sprintf("%s %s",
			cliutil.DecorateText("⚡ spright", cliutil.StatusMessage),
			cliutil.DecorateText("⇢ packing sprites (be patient, it may take a while)...", cliutil.DefaultMessage),
		),
		time.Millisecond*80, true,
	)
	spin.Start()

	start := time.Now()
	slices, sprites, err := run(configPath, outDir)
	if err != nil {
		spin.StopMsg = cliutil.DecorateText(fmt.Sprintf("⚡ spright packing failed: %v\n", err), cliutil.ErrorMessage)
		spin.Stop()
		os.Exit(1)
	}
	spin.StopMsg = cliutil.DecorateText(
		fmt.Sprintf("⚡ spright ⇢ packed %s into %s in %s ✔\n",
			cliutil.Pluralize(len(sprites), "sprite"), cliutil.Pluralize(len(slices), "slice"), cliutil.FormatTime(time.Since(start))),
		cliutil.SuccessMessage,
	)
	spin.Stop()
}

// run decodes configPath, pulls it through the packing core and writes
// each output slice plus a JSON description to outDir, bounding image
// encoding concurrency at runtime.NumCPU().
func run(configPath, outDir string) ([]*spright.Slice, []*spright.Sprite, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	baseDir := filepath.Dir(configPath)
	pool := scheduler.New()

	sheets, sprites, err := cfg.build(baseDir, func(path string, scale float64) (*spright.Sprite, error) {
		if scale > 0 && scale != 1 {
			img, mtime, err := cliutil.LoadAndScale(path, scale, imaging.Lanczos)
			if err != nil {
				return nil, err
			}
			return &spright.Sprite{Source: img, SourceModTime: mtime}, nil
		}
		img, mtime, err := cliutil.LoadImage(path)
		if err != nil {
			return nil, err
		}
		return &spright.Sprite{Source: img, SourceModTime: mtime}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	if err := spright.TrimSprites(sprites, pool); err != nil {
		return nil, nil, err
	}

	warnings := spright.NewWarningCollector(spright.MaxWarnings)
	slices, err := spright.PackSprites(sprites, sheets, warnings)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings.Reports {
		fmt.Fprintln(os.Stderr, cliutil.DecorateText("warning: "+w, cliutil.DefaultMessage))
	}

	spright.UpdateLastSourceWrittenTimes(slices, sprites)

	if err := writeSlices(outDir, slices, sheets, sprites); err != nil {
		return nil, nil, err
	}

	doc := cliutil.BuildDescription(slices, sprites)
	descPath := filepath.Join(outDir, "atlas.json")
	f, err := os.Create(descPath)
	if err != nil {
		return nil, nil, fmt.Errorf("writing description: %w", err)
	}
	defer f.Close()
	if err := cliutil.WriteJSON(f, doc); err != nil {
		return nil, nil, fmt.Errorf("writing description: %w", err)
	}

	return slices, sprites, nil
}

// writeSlices composites and encodes every slice concurrently, capped at
// runtime.NumCPU() in-flight encodes.
func writeSlices(outDir string, slices []*spright.Slice, sheets []spright.Sheet, sprites []*spright.Sprite) error {
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	errs := make([]error, len(slices))

	for i, slice := range slices {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, slice *spright.Slice) {
			defer wg.Done()
			defer func() { <-sem }()

			sheet := sheets[slice.SheetIndex]
			canvas := cliutil.CompositeSlice(slice, sheet, sprites)
			path := filepath.Join(outDir, fmt.Sprintf("%s-%d.png", sheet.ID, slice.SheetOutputIndex))
			errs[i] = saveIfChanged(path, canvas, slice.LastSourceWritten)
		}(i, slice)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// saveIfChanged skips re-encoding path when it already exists and is newer
// than every source image that feeds its slice, using the per-slice
// timestamp UpdateLastSourceWrittenTimes computed for incremental rebuilds.
func saveIfChanged(path string, img *raster.Image, lastSourceWritten time.Time) error {
	if info, err := os.Stat(path); err == nil && !lastSourceWritten.After(info.ModTime()) {
		return nil
	}
	return cliutil.SaveImage(path, img)
}
