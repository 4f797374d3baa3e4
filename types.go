// Package spright implements the sprite-atlas packing pipeline: trimming,
// size/offset derivation, deduplication, rectangle packing and optional
// physics compaction, producing finalized output slices from a graph of
// Sprites and Sheets. It never touches a filesystem or decodes an image
// format; callers hand it already-decoded source pixels and read back
// in-memory slices.
package spright

import (
	"time"

	"github.com/esimov/spright/geom"
	"github.com/esimov/spright/hull"
	"github.com/esimov/spright/raster"
	"github.com/esimov/spright/trim"
)

// TrimMode is an alias for trim.Mode so callers of this package don't need
// to import the trim package just to set a sprite's trim mode.
type TrimMode = trim.Mode

const (
	TrimNone   = trim.None
	TrimRect   = trim.Rect
	TrimConvex = trim.Convex
)

// ExtrudeMode selects how edge pixels are replicated outward from a
// sprite's content rect.
type ExtrudeMode int

const (
	ExtrudeClamp ExtrudeMode = iota
	ExtrudeRepeat
	ExtrudeMirror
)

// AlignX anchors content horizontally within its cell.
type AlignX int

const (
	AlignLeft AlignX = iota
	AlignCenterX
	AlignRight
)

// AlignY anchors content vertically within its cell.
type AlignY int

const (
	AlignTop AlignY = iota
	AlignMiddle
	AlignBottom
)

// DuplicatesPolicy controls how pixel-identical sprites are handled.
type DuplicatesPolicy int

const (
	DuplicatesKeep DuplicatesPolicy = iota
	DuplicatesShare
	DuplicatesDrop
)

// PackMode selects the per-sheet packing strategy.
type PackMode int

const (
	PackBinpack PackMode = iota
	PackSingle
	PackKeep
	PackRows
	PackColumns
	PackLayers
	PackCompact
)

// Sprite is one logical sprite to place, carrying both its declared
// configuration and the fields the pipeline derives as it runs.
type Sprite struct {
	Index      int
	ID         string
	Source     *raster.Image
	SourceRect geom.Rect
	// SourceModTime is the source image's last-modified time, used by
	// UpdateLastSourceWrittenTimes for incremental rebuild decisions.
	SourceModTime time.Time

	Trim           TrimMode
	TrimThreshold  int
	TrimMargin     int
	TrimGrayLevels bool
	VertexBudget   int

	MinSize       geom.Size
	DivisibleSize geom.Size
	ExtrudeCount  int
	ExtrudeMode   ExtrudeMode
	AlignX        AlignX
	AlignY        AlignY
	Crop          bool
	CropPivot     bool
	PivotX        AlignX
	PivotY        AlignY

	CommonSize string

	SheetIndex       int // -1 if unassigned
	DuplicateOfIndex int // -1 if unique

	Tags map[string]string
	Data map[string]any

	// Derived by TrimSprites.
	TrimmedSourceRect geom.Rect
	Vertices          []hull.Point

	// Derived by the orchestrator.
	Size        geom.Size
	Offset      geom.Point
	TrimmedRect geom.Rect
	Rect        geom.Rect
	PivotPoint  geom.PointF
	Rotated     bool
	SliceIndex  int
}

// Sheet is a packing target configuration: zero or more Slices are
// produced for it depending on how much content it holds.
type Sheet struct {
	ID    string
	Index int

	Width, Height       int
	MaxWidth, MaxHeight int
	PowerOfTwo          bool
	Square              bool
	DivisibleWidth      int
	AllowRotate         bool
	BorderPadding       int
	ShapePadding        int
	Duplicates          DuplicatesPolicy
	Pack                PackMode
	AlphaMode           raster.AlphaMode

	Tags map[string]string
	Data map[string]any
}

// Slice is one packed output image: a contiguous span of sprite indices
// placed within a single Width x Height canvas.
type Slice struct {
	SheetIndex       int
	SheetOutputIndex int
	SpriteIndices    []int
	Width, Height    int
	Layered          bool
	LastSourceWritten time.Time
}
