package particle

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single simulated point. Size, Color, Hex and Opacity are
// fixed at creation; Pos and Vel change every step.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Size    float64 // radius in pixels
	Hex     string  // palette entry the colour came from
	Color   color.NRGBA
	Opacity float64
}

// Mode is the rule by which the pointer perturbs nearby particles.
type Mode string

const (
	ModeAttract Mode = "attract"
	ModeRepel   Mode = "repel"
	ModeOrbit   Mode = "orbit"
	ModeRandom  Mode = "random"
)

// Modes lists every interaction mode in display order.
var Modes = []Mode{ModeAttract, ModeRepel, ModeOrbit, ModeRandom}

// Valid reports whether m is a known interaction mode.
func (m Mode) Valid() bool {
	for _, v := range Modes {
		if v == m {
			return true
		}
	}
	return false
}

// Next returns the mode after m in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, v := range Modes {
		if v == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}
