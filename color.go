package artboard

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor reports a stroke color string that is neither a hex
// form nor a recognized SVG 1.1 color name.
var ErrUnknownColor = errors.New("artboard: unknown color")

// RGBA is a color with components in the range [0, 1]. Grid stroke
// colors are carried in this form and passed through to renderers
// unchanged.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Color converts c to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Hex creates a color from a hex string, with or without a leading
// '#'. Supported forms: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Unparseable input yields opaque black.
func Hex(hex string) RGBA {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return RGBA{A: 1}
}

// Named looks up an SVG 1.1 color name ("lightgray", "rebeccapurple",
// ...), case-insensitively.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, false
	}
	return FromColor(c), true
}

// ParseColor resolves a color written the way editor configuration
// carries it: a hex form first, then a named color. Unrecognized input
// fails with an error wrapping ErrUnknownColor.
func ParseColor(s string) (RGBA, error) {
	if c, ok := parseHexColor(s); ok {
		return c, nil
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// parseHexColor parses the 3/4/6/8-digit hex forms.
func parseHexColor(hex string) (RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")

	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return RGBA{}, false
	}

	n := len(hex) / digits
	var comp [4]float64
	comp[3] = 1
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		if digits == 1 {
			v *= 17 // expand shorthand: 0xF -> 0xFF
		}
		comp[i] = float64(v) / 255
	}
	return RGBA{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}, true
}
