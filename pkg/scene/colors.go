package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Well-known actor colors. Values are hex strings so they survive JSON
// serialization unchanged.
const (
	// ColorDefault is the fill color for actors without an explicit color.
	ColorDefault = "#D6F7D1"

	// ColorPicked marks actors that are currently picked.
	ColorPicked = "#BB6EEE"

	// ColorEdge is the color for edge actors.
	ColorEdge = "#000000"

	// ColorPickedEdge marks edge actors that are currently picked.
	ColorPickedEdge = "#9C9C9C"

	// ColorHover marks the actor under the cursor in hover mode.
	ColorHover = "#FFFF00"
)

// ParseColor converts a hex color string to a colorful.Color.
// Invalid strings fall back to the default actor color.
func ParseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(ColorDefault)
	}
	return c
}

// Palette returns n visually distinct colors for multi-object scenes.
// Colors are evenly spaced in HCL space with fixed chroma and lightness
// so adjacent actors remain distinguishable.
func Palette(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		h := float64(i) * 360.0 / float64(n)
		out[i] = colorful.Hcl(h, 0.5, 0.75).Clamped().Hex()
	}
	return out
}

// Shade returns the color darkened toward black by factor t in [0, 1].
// Used for flat shading of projected triangles.
func Shade(hex string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := ParseColor(hex)
	black := colorful.Color{}
	return c.BlendRgb(black, t).Hex()
}
