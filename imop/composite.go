// Package imop implements the Porter-Duff image composition operations the
// slice compositor uses to blit a sprite's trimmed pixels onto its output
// slice canvas. Of the classic Porter/Duff operator set, only Copy (replace)
// and SrcOver (alpha-blend onto existing content) have a use in an atlas
// compositor — rotated sprite rects can overlap a shape-padded neighbor by
// a pixel at the boundary, where SrcOver avoids a hard seam — but the full
// operator table is kept since it costs nothing extra and documents the
// formulas a future alpha post-process mode might need.
package imop

import "image/color"

// Op names one Porter-Duff composition operator.
type Op string

const (
	Copy    Op = "copy"
	SrcOver Op = "src_over"
	DstOver Op = "dst_over"
	SrcIn   Op = "src_in"
	DstIn   Op = "dst_in"
	SrcOut  Op = "src_out"
	DstOut  Op = "dst_out"
	SrcAtop Op = "src_atop"
	DstAtop Op = "dst_atop"
	Xor     Op = "xor"
)

// ops lists every operator Composite.Set accepts.
var ops = []Op{Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Composite holds the currently active composition operator.
type Composite struct {
	current Op
}

// NewComposite returns a Composite defaulting to Copy.
func NewComposite() *Composite {
	return &Composite{current: Copy}
}

// Set changes the active operator; it is a no-op if op is unrecognized.
func (c *Composite) Set(op Op) {
	for _, o := range ops {
		if o == op {
			c.current = op
			return
		}
	}
}

// Get returns the active operator.
func (c *Composite) Get() Op { return c.current }

// Blend applies the active operator to one source/backdrop pixel pair and
// returns the composited color, per the standard alpha-compositing
// equations (https://www.w3.org/TR/compositing-1/#simplealphacompositing).
func (c *Composite) Blend(src, dst color.NRGBA) color.NRGBA {
	rsn, gsn, bsn, asn := norm(src)
	rbn, gbn, bbn, abn := norm(dst)

	var rn, gn, bn, an float64
	switch c.current {
	case Copy:
		rn, gn, bn, an = rsn, gsn, bsn, asn
	case SrcOver:
		rn = rsn*asn + rbn*abn*(1-asn)
		gn = gsn*asn + gbn*abn*(1-asn)
		bn = bsn*asn + bbn*abn*(1-asn)
		an = asn + abn*(1-asn)
	case DstOver:
		rn = rbn*abn + rsn*asn*(1-abn)
		gn = gbn*abn + gsn*asn*(1-abn)
		bn = bbn*abn + bsn*asn*(1-abn)
		an = abn + asn*(1-abn)
	case SrcIn:
		rn, gn, bn, an = rsn*abn, gsn*abn, bsn*abn, asn*abn
	case DstIn:
		rn, gn, bn, an = rbn*asn, gbn*asn, bbn*asn, abn*asn
	case SrcOut:
		rn, gn, bn, an = rsn*(1-abn), gsn*(1-abn), bsn*(1-abn), asn*(1-abn)
	case DstOut:
		rn, gn, bn, an = rbn*(1-asn), gbn*(1-asn), bbn*(1-asn), abn*(1-asn)
	case SrcAtop:
		rn = rsn*asn*abn + rbn*abn*(1-asn)
		gn = gsn*asn*abn + gbn*abn*(1-asn)
		bn = bsn*asn*abn + bbn*abn*(1-asn)
		an = asn*abn + abn*(1-asn)
	case DstAtop:
		rn = rbn*abn*(1-asn) + rsn*asn*abn
		gn = gbn*abn*(1-asn) + gsn*asn*abn
		bn = bbn*abn*(1-asn) + bsn*asn*abn
		an = abn*(1-asn) + asn*abn
	case Xor:
		rn = rsn*asn*(1-abn) + rbn*abn*(1-asn)
		gn = gsn*asn*(1-abn) + gbn*abn*(1-asn)
		bn = bsn*asn*(1-abn) + bbn*abn*(1-asn)
		an = asn*(1-abn) + abn*(1-asn)
	default:
		rn, gn, bn, an = rsn, gsn, bsn, asn
	}

	return color.NRGBA{R: to8(rn), G: to8(gn), B: to8(bn), A: to8(an)}
}

func norm(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
