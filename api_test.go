package spright

import (
	"errors"
	"testing"
	"time"

	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/raster"
	"github.com/esimov/spright/scheduler"
)

func TestValidateSpriteRejectsNonPositiveRect(t *testing.T) {
	s := &Sprite{Source: raster.NewImage(10, 10), SourceRect: geom.Rect{X: 0, Y: 0, W: 0, H: 5}}
	if err := validateSprite(s); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateSpriteRejectsOutOfBoundsRect(t *testing.T) {
	s := &Sprite{Source: raster.NewImage(10, 10), SourceRect: geom.Rect{X: 5, Y: 5, W: 10, H: 10}}
	if err := validateSprite(s); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateSpriteAcceptsInBoundsRect(t *testing.T) {
	s := &Sprite{Source: raster.NewImage(10, 10), SourceRect: geom.Rect{X: 0, Y: 0, W: 10, H: 10}}
	if err := validateSprite(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSheetRejectsMaxSmallerThanMin(t *testing.T) {
	sheet := Sheet{ID: "s", Width: 100, MaxWidth: 50}
	if err := validateSheet(sheet); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFitsSheetUnboundedAlwaysFits(t *testing.T) {
	s := &Sprite{Size: geom.Size{W: 4096, H: 4096}}
	sheet := Sheet{Pack: PackBinpack}
	if !fitsSheet(s, sheet) {
		t.Fatalf("unbounded sheet should always fit")
	}
}

func TestFitsSheetRejectsOversizedUprightNoRotate(t *testing.T) {
	s := &Sprite{Size: geom.Size{W: 200, H: 50}}
	sheet := Sheet{Pack: PackBinpack, MaxWidth: 100, MaxHeight: 100}
	if fitsSheet(s, sheet) {
		t.Fatalf("sprite wider than MaxWidth with no rotation allowed should not fit")
	}
}

func TestFitsSheetAllowsRotationToFit(t *testing.T) {
	s := &Sprite{Size: geom.Size{W: 200, H: 50}}
	sheet := Sheet{Pack: PackBinpack, MaxWidth: 100, MaxHeight: 250, AllowRotate: true}
	if !fitsSheet(s, sheet) {
		t.Fatalf("rotated sprite should fit within MaxWidth x MaxHeight")
	}
}

func TestFitsSheetAlwaysFitsUnboundedModes(t *testing.T) {
	s := &Sprite{Size: geom.Size{W: 99999, H: 1}}
	for _, mode := range []PackMode{PackSingle, PackKeep, PackLayers} {
		sheet := Sheet{Pack: mode, MaxWidth: 10, MaxHeight: 10}
		if !fitsSheet(s, sheet) {
			t.Fatalf("pack mode %v should always fit regardless of max size", mode)
		}
	}
}

func TestDropUnfittableSpritesClearsSheetIndex(t *testing.T) {
	sheets := []Sheet{{ID: "a", Pack: PackBinpack, MaxWidth: 32, MaxHeight: 32}}
	fits := &Sprite{Index: 0, ID: "fits", SheetIndex: 0, Size: geom.Size{W: 16, H: 16}}
	tooBig := &Sprite{Index: 1, ID: "too-big", SheetIndex: 0, Size: geom.Size{W: 1000, H: 1000}}
	warnings := NewWarningCollector(MaxWarnings)

	kept := dropUnfittableSprites([]*Sprite{fits, tooBig}, sheets, warnings)

	if len(kept) != 2 {
		t.Fatalf("expected both sprites returned, got %d", len(kept))
	}
	if fits.SheetIndex != 0 {
		t.Fatalf("fitting sprite should keep its sheet index")
	}
	if tooBig.SheetIndex != -1 {
		t.Fatalf("oversized sprite should have its sheet index cleared")
	}
	warnings.Flush()
	if len(warnings.Reports) != 1 {
		t.Fatalf("expected one warning report, got %d: %v", len(warnings.Reports), warnings.Reports)
	}
}

func TestTrimSpritesRejectsInvalidSpriteBeforeScheduling(t *testing.T) {
	sprites := []*Sprite{
		{Source: raster.NewImage(4, 4), SourceRect: geom.Rect{X: 0, Y: 0, W: 100, H: 100}},
	}
	if err := TrimSprites(sprites, scheduler.New()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTrimSpritesPopulatesTrimmedSourceRect(t *testing.T) {
	img := raster.NewImage(4, 4)
	img.Set(1, 1, raster.RGBA{R: 255, A: 255})
	img.Set(2, 2, raster.RGBA{R: 255, A: 255})
	sprites := []*Sprite{
		{Source: img, SourceRect: img.Bounds(), Trim: TrimRect, TrimThreshold: 1},
	}
	if err := TrimSprites(sprites, scheduler.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sprites[0].TrimmedSourceRect.Empty() {
		t.Fatalf("expected a non-empty trimmed rect for a sprite with opaque pixels")
	}
}

func TestUpdateLastSourceWrittenTimesTakesLatest(t *testing.T) {
	older := &Sprite{SourceModTime: time.Unix(1, 0)}
	newer := &Sprite{SourceModTime: time.Unix(2, 0)}
	sprites := []*Sprite{older, newer}
	slices := []*Slice{{SpriteIndices: []int{0, 1}}}

	UpdateLastSourceWrittenTimes(slices, sprites)

	if !slices[0].LastSourceWritten.Equal(newer.SourceModTime) {
		t.Fatalf("expected LastSourceWritten to be the newer of the two source times")
	}
}
