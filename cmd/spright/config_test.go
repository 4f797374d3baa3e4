package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/spright"
	"github.com/esimov/spright/raster"
)

func TestLoadConfigDecodesSheetsAndSprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw := `{
		"sheets": [{"id": "main", "maxWidth": 512, "maxHeight": 512, "allowRotate": true}],
		"sprites": [{"id": "hero", "source": "hero.png", "sheet": "main", "trim": "rect"}]
	}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Sheets) != 1 || cfg.Sheets[0].ID != "main" {
		t.Fatalf("unexpected sheets: %+v", cfg.Sheets)
	}
	if len(cfg.Sprites) != 1 || cfg.Sprites[0].ID != "hero" {
		t.Fatalf("unexpected sprites: %+v", cfg.Sprites)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected an error decoding malformed JSON")
	}
}

func TestConfigBuildResolvesSheetIndicesAndDefaults(t *testing.T) {
	cfg := &config{
		Sheets: []sheetConfig{{ID: "main"}},
		Sprites: []spriteConfig{
			{ID: "hero", Source: "hero.png", Sheet: "main"},
		},
	}

	loadImage := func(path string, scale float64) (*spright.Sprite, error) {
		return &spright.Sprite{Source: raster.NewImage(8, 8)}, nil
	}

	sheets, sprites, err := cfg.build("/assets", loadImage)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(sheets) != 1 || len(sprites) != 1 {
		t.Fatalf("unexpected graph: %d sheets, %d sprites", len(sheets), len(sprites))
	}
	if sprites[0].SheetIndex != 0 {
		t.Fatalf("expected sprite resolved to sheet index 0, got %d", sprites[0].SheetIndex)
	}
	if sprites[0].SourceRect != sprites[0].Source.Bounds() {
		t.Fatalf("expected default source rect to be the whole image bounds")
	}
	if sprites[0].DivisibleSize.W != 1 || sprites[0].DivisibleSize.H != 1 {
		t.Fatalf("expected divisible size to default to 1x1, got %+v", sprites[0].DivisibleSize)
	}
}

func TestConfigBuildRejectsUnknownSheet(t *testing.T) {
	cfg := &config{
		Sheets: []sheetConfig{{ID: "main"}},
		Sprites: []spriteConfig{
			{ID: "hero", Source: "hero.png", Sheet: "missing"},
		},
	}
	loadImage := func(path string, scale float64) (*spright.Sprite, error) {
		return &spright.Sprite{Source: raster.NewImage(4, 4)}, nil
	}
	if _, _, err := cfg.build("/assets", loadImage); err == nil {
		t.Fatalf("expected an error for a sprite referencing an unknown sheet")
	}
}

func TestParseAlphaMode(t *testing.T) {
	cases := map[string]raster.AlphaMode{
		"clear":         raster.AlphaClear,
		"bleed":         raster.AlphaBleed,
		"premultiplied": raster.AlphaPremultiplied,
		"colorkey":      raster.AlphaColorkey,
		"":              raster.AlphaKeep,
		"bogus":         raster.AlphaKeep,
	}
	for in, want := range cases {
		if got := parseAlphaMode(in); got != want {
			t.Errorf("parseAlphaMode(%q) = %v, want %v", in, got, want)
		}
	}
}
