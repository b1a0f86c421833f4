package particle

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme names one of the fixed colour palettes.
type Theme string

const (
	ThemeNeon       Theme = "neon"
	ThemePastel     Theme = "pastel"
	ThemeOcean      Theme = "ocean"
	ThemeSunset     Theme = "sunset"
	ThemeMonochrome Theme = "monochrome"
)

// Themes lists every theme in display order.
var Themes = []Theme{ThemeNeon, ThemePastel, ThemeOcean, ThemeSunset, ThemeMonochrome}

var themeHex = map[Theme][]string{
	ThemeNeon:       {"#ff00ff", "#00ffff", "#ffff00", "#ff0000", "#00ff00", "#0000ff"},
	ThemePastel:     {"#FFB6C1", "#FFDAB9", "#B0E0E6", "#98FB98", "#D8BFD8", "#FFFACD"},
	ThemeOcean:      {"#063970", "#0353A4", "#023E7D", "#002855", "#001845", "#001233"},
	ThemeSunset:     {"#F72585", "#B5179E", "#7209B7", "#560BAD", "#480CA8", "#3A0CA3"},
	ThemeMonochrome: {"#ffffff", "#dddddd", "#bbbbbb", "#999999", "#777777", "#555555"},
}

// Swatch is one palette entry: the hex string it was declared with and its
// parsed colour.
type Swatch struct {
	Hex   string
	Color color.NRGBA
}

var palettes = make(map[Theme][]Swatch, len(themeHex))

func init() {
	for theme, hexes := range themeHex {
		swatches := make([]Swatch, len(hexes))
		for i, h := range hexes {
			c, err := colorful.Hex(h)
			if err != nil {
				panic(fmt.Sprintf("particle: bad palette colour %q in theme %s: %v", h, theme, err))
			}
			r, g, b := c.RGB255()
			swatches[i] = Swatch{Hex: h, Color: color.NRGBA{R: r, G: g, B: b, A: 255}}
		}
		palettes[theme] = swatches
	}
}

// Valid reports whether t names a known palette.
func (t Theme) Valid() bool {
	_, ok := themeHex[t]
	return ok
}

// Palette returns the swatches of t, falling back to the neon palette for
// unknown names. The returned slice must not be modified.
func (t Theme) Palette() []Swatch {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeNeon]
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Contains reports whether hex is one of the palette entries of t.
func (t Theme) Contains(hex string) bool {
	for _, s := range t.Palette() {
		if s.Hex == hex {
			return true
		}
	}
	return false
}
