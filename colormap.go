// AOD color scale.

package vaod

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// darkRed marks values above the user's plotting maximum.
var darkRed = color.RGBA{R: 139, A: 255}

// A ColorScale maps AOD values on [0, Max] onto a rainbow ramp, with a
// single overflow color above Max.
type ColorScale struct {
	Max      float64
	colors   []color.Color
	Overflow color.Color
}

// NewAODScale builds the scale for a plotting maximum of max (1-5). The ramp
// runs violet-to-red like the original's "rainbow" colormap, so the palette
// is generated red-to-blue and reversed.
func NewAODScale(max int) ColorScale {
	ramp := palette.Rainbow(256, palette.Red, palette.Blue, 1, 1, 1).Colors()
	colors := make([]color.Color, len(ramp))
	for i, c := range ramp {
		colors[len(ramp)-1-i] = c
	}
	return ColorScale{Max: float64(max), colors: colors, Overflow: darkRed}
}

// At returns the color for an AOD value. Values below zero clamp to the
// bottom of the ramp; values above Max take the overflow color.
func (s ColorScale) At(v float64) color.Color {
	if v > s.Max {
		return s.Overflow
	}
	if v < 0 {
		v = 0
	}
	idx := int(v / s.Max * float64(len(s.colors)-1))
	if idx >= len(s.colors) {
		idx = len(s.colors) - 1
	}
	return s.colors[idx]
}
