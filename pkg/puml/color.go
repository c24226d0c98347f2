package puml

import (
	"fmt"
	"math"
)

// Palette maps package depth to an HSL color. Saturation and lightness are
// percentages, hue is in degrees.
type Palette struct {
	Hue        float64 `toml:"hue" yaml:"hue"`
	Saturation float64 `toml:"saturation" yaml:"saturation"`
	Base       float64 `toml:"base" yaml:"base"` // lightness at depth 0
	Step       float64 `toml:"step" yaml:"step"` // lightness added per level
	Max        float64 `toml:"max" yaml:"max"`   // lightness ceiling
}

// DefaultPalette returns the blue palette: hue 220, saturation 50, lightness
// 30 at depth 0 rising by 20 per level up to 80.
func DefaultPalette() Palette {
	return Palette{Hue: 220, Saturation: 50, Base: 30, Step: 20, Max: 80}
}

// Lightness returns the lightness percentage for depth.
func (p Palette) Lightness(depth int) float64 {
	return min(p.Base+p.Step*float64(depth), p.Max)
}

// Color returns the "#RRGGBB" color for a package at depth.
func (p Palette) Color(depth int) string {
	return HSLToHex(p.Hue, p.Saturation, p.Lightness(depth))
}

// HSLToHex converts hue (degrees) and saturation and lightness (percent) to
// an uppercase "#RRGGBB" string. Channels are rounded to the nearest integer.
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) int {
	return int(math.Round(min(max(v, 0), 1) * 255))
}
