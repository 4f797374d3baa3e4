package cliutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/esimov/spright"
)

func TestBuildDescriptionSkipsDroppedSprites(t *testing.T) {
	slices := []*spright.Slice{{Width: 64, Height: 64}}
	sprites := []*spright.Sprite{
		{Index: 0, ID: "kept", SheetIndex: 0},
		{Index: 1, ID: "dropped", SheetIndex: -1},
	}

	doc := BuildDescription(slices, sprites)

	if len(doc.Textures) != 1 || doc.Textures[0].Width != 64 {
		t.Fatalf("unexpected textures: %+v", doc.Textures)
	}
	if len(doc.Sprites) != 1 || doc.Sprites[0].ID != "kept" {
		t.Fatalf("expected only the kept sprite in the description, got %+v", doc.Sprites)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	doc := BuildDescription(
		[]*spright.Slice{{Width: 32, Height: 16}},
		[]*spright.Sprite{{Index: 0, ID: "a", SheetIndex: 0}},
	)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["textures"]; !ok {
		t.Fatalf("expected a top-level textures key, got %v", decoded)
	}
}

func TestWriteSummaryListsEachTexture(t *testing.T) {
	doc := BuildDescription([]*spright.Slice{{Width: 10, Height: 20}, {Width: 30, Height: 40}}, nil)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, doc); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "10x20") || !strings.Contains(out, "30x40") {
		t.Fatalf("summary missing expected dimensions: %q", out)
	}
}
