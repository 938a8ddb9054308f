package imx

import (
	"math"

	"github.com/go-theft-auto/imx/gui"
)

// BlendColors composites fg over bg (source-over, straight alpha) and
// returns the packed result. An opaque fg is returned unchanged; when both
// alphas are zero the result is transparent black.
func BlendColors(bg, fg uint32) uint32 {
	br, bgG, bb, ba := gui.UnpackRGBA(bg)
	fr, fgG, fb, fa := gui.UnpackRGBA(fg)

	af := float64(fa) / 255
	ab := float64(ba) / 255 * (1 - af)
	out := af + ab
	if out == 0 {
		return gui.ColorTransparent
	}

	ch := func(f, b uint8) uint8 {
		return toByte((float64(f)*af + float64(b)*ab) / out)
	}
	return gui.RGBA(ch(fr, br), ch(fgG, bgG), ch(fb, bb), toByte(out*255))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
