package imop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposite_SetGet(t *testing.T) {
	assert := assert.New(t)

	c := NewComposite()
	assert.Equal(Copy, c.Get())

	c.Set(SrcOver)
	assert.Equal(SrcOver, c.Get())

	// Unknown operators are ignored; the previous one stays active.
	c.Set(Op("not_a_real_op"))
	assert.Equal(SrcOver, c.Get())
}

func TestComposite_Copy(t *testing.T) {
	assert := assert.New(t)

	c := NewComposite()
	c.Set(Copy)

	src := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	dst := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	got := c.Blend(src, dst)
	assert.Equal(src, got)
}

func TestComposite_SrcOverOpaqueSourceIgnoresBackdrop(t *testing.T) {
	assert := assert.New(t)

	c := NewComposite()
	c.Set(SrcOver)

	src := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	dst := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	got := c.Blend(src, dst)
	assert.Equal(src, got)
}

func TestComposite_SrcOverTransparentSourceKeepsBackdrop(t *testing.T) {
	assert := assert.New(t)

	c := NewComposite()
	c.Set(SrcOver)

	src := color.NRGBA{R: 10, G: 20, B: 30, A: 0}
	dst := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	got := c.Blend(src, dst)
	assert.Equal(dst, got)
}

func TestComposite_SrcOutClearsWhereBackdropOpaque(t *testing.T) {
	assert := assert.New(t)

	c := NewComposite()
	c.Set(SrcOut)

	src := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	dst := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	got := c.Blend(src, dst)
	assert.Equal(uint8(0), got.A)
}
