package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a colour in the hue/saturation/value cylinder.
// All three components are in [0, 1]; hue is circular and kept in [0, 1).
type HSV struct {
	H float64
	S float64
	V float64
}

// HSV converts the colour to HSV.
// value = max/255, saturation = (max-min)/max (0 for black) and hue is the
// standard sextant formula expressed as a fraction of a full turn.
func (rgb RGB) HSV() HSV {
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	h, s, v := c.Hsv()
	return HSV{H: wrapHue(h / 360.0), S: s, V: v}
}

// RGB converts the HSV colour back to RGB. Each channel is truncated, not
// rounded, so a round trip may lose up to one unit per channel.
func (hsv HSV) RGB() RGB {
	c := colorful.Hsv(wrapHue(hsv.H)*360.0, hsv.S, hsv.V)
	return RGB{
		R: truncateChannel(c.R),
		G: truncateChannel(c.G),
		B: truncateChannel(c.B),
	}
}

// Rotate returns the colour with its hue shifted by offset turns.
func (hsv HSV) Rotate(offset float64) HSV {
	return HSV{H: wrapHue(hsv.H + offset), S: hsv.S, V: hsv.V}
}

// wrapHue maps any hue onto [0, 1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	// -1e-17 + 1.0 rounds to exactly 1.0.
	if h >= 1.0 {
		h = 0
	}
	return h
}

func truncateChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v*255)))
}
