package cliutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/esimov/spright/raster"
)

// LoadImage decodes the image at path into a raster.Image the packing core
// can trim and pack, returning the file's modification time for
// UpdateLastSourceWrittenTimes-driven incremental rebuilds. Format is
// sniffed from content, not extension, via the standard image registry
// plus golang.org/x/image/bmp for the one format the stdlib doesn't decode.
func LoadImage(path string) (*raster.Image, time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("cliutil: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("cliutil: stat %s: %w", path, err)
	}

	img, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("cliutil: decoding %s: %w", path, err)
	}
	return fromStdImage(img), info.ModTime(), nil
}

// LoadAndScale loads path the same way LoadImage does, then resamples it
// by factor when factor != 1, so a sprite declared at a non-1.0 scale
// arrives at the packing core already resized rather than needing a resize
// pass inside the core itself.
func LoadAndScale(path string, factor float64, filter imaging.ResampleFilter) (*raster.Image, time.Time, error) {
	img, mtime, err := LoadImage(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	if factor == 1 || factor <= 0 {
		return img, mtime, nil
	}
	nrgba := toStdImage(img)
	w := int(float64(img.W)*factor + 0.5)
	h := int(float64(img.H)*factor + 0.5)
	resized := imaging.Resize(nrgba, w, h, filter)
	return fromStdImage(resized), mtime, nil
}

func decode(r io.Reader, ext string) (image.Image, error) {
	switch strings.ToLower(ext) {
	case ".bmp":
		return bmp.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".gif":
		return gif.Decode(r)
	default:
		img, _, err := image.Decode(r)
		return img, err
	}
}

// SaveImage encodes img and writes it to path, picking the codec from the
// destination extension and defaulting to PNG when the extension names no
// other supported format.
func SaveImage(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cliutil: creating %s: %w", path, err)
	}
	defer f.Close()

	std := toStdImage(img)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, std)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, std, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(f, std, nil)
	default:
		return png.Encode(f, std)
	}
}

func fromStdImage(img image.Image) *raster.Image {
	b := img.Bounds()
	out := raster.NewImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Set(x, y, raster.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)})
		}
	}
	return out
}

func toStdImage(img *raster.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			c := img.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}
