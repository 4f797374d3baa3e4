package cliutil

import "testing"

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1 << 20, "1.00 MiB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "sprite"); got != "1 sprite" {
		t.Errorf("Pluralize(1, sprite) = %q", got)
	}
	if got := Pluralize(3, "sprite"); got != "3 sprites" {
		t.Errorf("Pluralize(3, sprite) = %q", got)
	}
	if got := Pluralize(0, "slice"); got != "0 slices" {
		t.Errorf("Pluralize(0, slice) = %q", got)
	}
}

func TestDecorateTextWrapsAndResets(t *testing.T) {
	got := DecorateText("hi", ErrorMessage)
	want := ErrorColor + "hi" + DefaultColor
	if got != want {
		t.Errorf("DecorateText = %q, want %q", got, want)
	}
}
