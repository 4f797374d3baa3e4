package cliutil

import (
	"encoding/json"
	"io"
	"text/template"

	"github.com/esimov/spright"
)

// descriptionDoc is the JSON shape rendered for a finished packing job: one
// texture entry per output slice plus one entry per placed sprite, each
// sprite naming its slice by texture index rather than by file path.
type descriptionDoc struct {
	Textures []textureDoc `json:"textures"`
	Sprites  []spriteDoc  `json:"sprites"`
}

type textureDoc struct {
	Index  int `json:"index"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type spriteDoc struct {
	Index             int               `json:"index"`
	ID                string            `json:"id"`
	TextureIndex      int               `json:"textureIndex"`
	Rect              rectDoc           `json:"rect"`
	TrimmedRect       rectDoc           `json:"trimmedRect"`
	SourceRect        rectDoc           `json:"sourceRect"`
	TrimmedSourceRect rectDoc           `json:"trimmedSourceRect"`
	Pivot             pointDoc          `json:"pivot"`
	Rotated           bool              `json:"rotated"`
	Vertices          []pointDoc        `json:"vertices,omitempty"`
	Tags              map[string]string `json:"tags,omitempty"`
}

type rectDoc struct{ X, Y, W, H int }
type pointDoc struct{ X, Y float64 }

// BuildDescription assembles the JSON-renderable description of a finished
// job from its slices and sprites: textures in slice order, then every
// sprite still assigned to a sheet, in input order.
func BuildDescription(slices []*spright.Slice, sprites []*spright.Sprite) descriptionDoc {
	doc := descriptionDoc{Textures: make([]textureDoc, len(slices))}
	for i, sl := range slices {
		doc.Textures[i] = textureDoc{Index: i, Width: sl.Width, Height: sl.Height}
	}

	for _, s := range sprites {
		if s.SheetIndex < 0 {
			continue
		}
		verts := make([]pointDoc, len(s.Vertices))
		for i, v := range s.Vertices {
			verts[i] = pointDoc{X: v.X, Y: v.Y}
		}
		doc.Sprites = append(doc.Sprites, spriteDoc{
			Index:             s.Index,
			ID:                s.ID,
			TextureIndex:      s.SliceIndex,
			Rect:              rectDoc(s.Rect),
			TrimmedRect:       rectDoc(s.TrimmedRect),
			SourceRect:        rectDoc(s.SourceRect),
			TrimmedSourceRect: rectDoc(s.TrimmedSourceRect),
			Pivot:             pointDoc{X: s.PivotPoint.X, Y: s.PivotPoint.Y},
			Rotated:           s.Rotated,
			Vertices:          verts,
			Tags:              s.Tags,
		})
	}
	return doc
}

// WriteJSON encodes a description document as indented JSON.
func WriteJSON(w io.Writer, doc descriptionDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// summaryTemplate renders a one-line-per-texture plain-text summary.
const summaryTemplate = `{{range .Textures}}texture {{.Index}}: {{.Width}}x{{.Height}}
{{end}}`

// WriteSummary renders doc's per-texture dimensions as plain text, one
// "texture N: WxH" line per texture.
func WriteSummary(w io.Writer, doc descriptionDoc) error {
	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, doc)
}
