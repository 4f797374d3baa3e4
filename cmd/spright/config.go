package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/esimov/spright"
	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/raster"
)

// config is the minimal JSON-decoded shape handed to the packing core: a
// list of sheets and a flat list of sprites referencing them by id. A full
// configuration loader (grid/sequence/glob declarations, autocompletion)
// is out of scope here — this struct only carries enough information to
// populate spright.Sprite/spright.Sheet.
type config struct {
	Sheets  []sheetConfig  `json:"sheets"`
	Sprites []spriteConfig `json:"sprites"`
}

type sheetConfig struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	MaxWidth       int    `json:"maxWidth"`
	MaxHeight      int    `json:"maxHeight"`
	PowerOfTwo     bool   `json:"powerOfTwo"`
	Square         bool   `json:"square"`
	DivisibleWidth int    `json:"divisibleWidth"`
	AllowRotate    bool   `json:"allowRotate"`
	BorderPadding  int    `json:"borderPadding"`
	ShapePadding   int    `json:"shapePadding"`
	Duplicates     string `json:"duplicates"`
	Pack           string `json:"pack"`
	Alpha          string `json:"alpha"`
}

type spriteConfig struct {
	ID             string            `json:"id"`
	Source         string            `json:"source"`
	Sheet          string            `json:"sheet"`
	SourceRect     *rectConfig       `json:"sourceRect"`
	Trim           string            `json:"trim"`
	TrimThreshold  int               `json:"trimThreshold"`
	TrimMargin     int               `json:"trimMargin"`
	TrimGrayLevels bool              `json:"trimGrayLevels"`
	MinWidth       int               `json:"minWidth"`
	MinHeight      int               `json:"minHeight"`
	DivisibleW     int               `json:"divisibleWidth"`
	DivisibleH     int               `json:"divisibleHeight"`
	ExtrudeCount   int               `json:"extrudeCount"`
	Extrude        string            `json:"extrude"`
	AlignX         string            `json:"alignX"`
	AlignY         string            `json:"alignY"`
	Crop           bool              `json:"crop"`
	CommonSize     string            `json:"commonSize"`
	Scale          float64           `json:"scale"`
	Tags           map[string]string `json:"tags"`
}

type rectConfig struct{ X, Y, W, H int }

// loadConfig decodes path as JSON into a config.
func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	var cfg config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return &cfg, nil
}

// build resolves cfg into the Sheet/Sprite graph the core operates on,
// loading every referenced source image relative to baseDir.
func (cfg *config) build(baseDir string, loadImage func(path string, scale float64) (*spright.Sprite, error)) ([]spright.Sheet, []*spright.Sprite, error) {
	sheetIndex := make(map[string]int, len(cfg.Sheets))
	sheets := make([]spright.Sheet, len(cfg.Sheets))
	for i, sc := range cfg.Sheets {
		sheets[i] = spright.Sheet{
			ID:             sc.ID,
			Index:          i,
			Width:          sc.Width,
			Height:         sc.Height,
			MaxWidth:       sc.MaxWidth,
			MaxHeight:      sc.MaxHeight,
			PowerOfTwo:     sc.PowerOfTwo,
			Square:         sc.Square,
			DivisibleWidth: sc.DivisibleWidth,
			AllowRotate:    sc.AllowRotate,
			BorderPadding:  sc.BorderPadding,
			ShapePadding:   sc.ShapePadding,
			Duplicates:     parseDuplicates(sc.Duplicates),
			Pack:           parsePackMode(sc.Pack),
			AlphaMode:      parseAlphaMode(sc.Alpha),
		}
		sheetIndex[sc.ID] = i
	}

	sprites := make([]*spright.Sprite, len(cfg.Sprites))
	for i, sp := range cfg.Sprites {
		path := filepath.Join(baseDir, sp.Source)
		s, err := loadImage(path, sp.Scale)
		if err != nil {
			return nil, nil, fmt.Errorf("sprite %q: %w", sp.ID, err)
		}
		idx, ok := sheetIndex[sp.Sheet]
		if !ok {
			return nil, nil, fmt.Errorf("sprite %q: unknown sheet %q", sp.ID, sp.Sheet)
		}

		s.Index = i
		s.ID = sp.ID
		s.SheetIndex = idx
		s.DuplicateOfIndex = -1
		s.Trim = parseTrimMode(sp.Trim)
		s.TrimThreshold = orDefault(sp.TrimThreshold, 1)
		s.TrimMargin = sp.TrimMargin
		s.TrimGrayLevels = sp.TrimGrayLevels
		s.MinSize.W = sp.MinWidth
		s.MinSize.H = sp.MinHeight
		s.DivisibleSize.W = orDefault(sp.DivisibleW, 1)
		s.DivisibleSize.H = orDefault(sp.DivisibleH, 1)
		s.ExtrudeCount = sp.ExtrudeCount
		s.ExtrudeMode = parseExtrudeMode(sp.Extrude)
		s.AlignX = parseAlignX(sp.AlignX)
		s.AlignY = parseAlignY(sp.AlignY)
		s.Crop = sp.Crop
		s.CommonSize = sp.CommonSize
		s.Tags = sp.Tags
		if sp.SourceRect != nil {
			s.SourceRect = rectOf(*sp.SourceRect)
		} else {
			s.SourceRect = s.Source.Bounds()
		}
		sprites[i] = s
	}
	return sheets, sprites, nil
}

func rectOf(r rectConfig) geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func parseTrimMode(s string) spright.TrimMode {
	switch s {
	case "convex":
		return spright.TrimConvex
	case "none", "":
		return spright.TrimNone
	default:
		return spright.TrimRect
	}
}

func parseExtrudeMode(s string) spright.ExtrudeMode {
	switch s {
	case "repeat":
		return spright.ExtrudeRepeat
	case "mirror":
		return spright.ExtrudeMirror
	default:
		return spright.ExtrudeClamp
	}
}

func parseAlignX(s string) spright.AlignX {
	switch s {
	case "left":
		return spright.AlignLeft
	case "right":
		return spright.AlignRight
	default:
		return spright.AlignCenterX
	}
}

func parseAlignY(s string) spright.AlignY {
	switch s {
	case "top":
		return spright.AlignTop
	case "bottom":
		return spright.AlignBottom
	default:
		return spright.AlignMiddle
	}
}

func parseDuplicates(s string) spright.DuplicatesPolicy {
	switch s {
	case "share":
		return spright.DuplicatesShare
	case "drop":
		return spright.DuplicatesDrop
	default:
		return spright.DuplicatesKeep
	}
}

func parseAlphaMode(s string) raster.AlphaMode {
	switch s {
	case "clear":
		return raster.AlphaClear
	case "bleed":
		return raster.AlphaBleed
	case "premultiplied":
		return raster.AlphaPremultiplied
	case "colorkey":
		return raster.AlphaColorkey
	default:
		return raster.AlphaKeep
	}
}

func parsePackMode(s string) spright.PackMode {
	switch s {
	case "single":
		return spright.PackSingle
	case "keep":
		return spright.PackKeep
	case "rows":
		return spright.PackRows
	case "columns":
		return spright.PackColumns
	case "layers":
		return spright.PackLayers
	case "compact":
		return spright.PackCompact
	default:
		return spright.PackBinpack
	}
}
