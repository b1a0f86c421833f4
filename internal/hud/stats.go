// Package hud formats the on-screen telemetry and control panel. Drawing is
// left to the caller.
package hud

import (
	"fmt"
	"image/color"

	"github.com/olivierh59500/particle-field/internal/engine"
)

// FPS colour bands
var (
	ColorGood = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	ColorFair = color.RGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	ColorPoor = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// FPSColor grades a frame rate: 50 and above is good, 30 and above fair.
func FPSColor(fps int) color.RGBA {
	switch {
	case fps >= 50:
		return ColorGood
	case fps >= 30:
		return ColorFair
	}
	return ColorPoor
}

// FPSText renders the frame rate label.
func FPSText(s engine.Stats) string {
	return fmt.Sprintf("%d FPS", s.FPS)
}

// CountText renders the particle count label, noting a paused simulation.
func CountText(s engine.Stats) string {
	text := fmt.Sprintf("%d particles", s.Particles)
	if s.Paused {
		text += " (paused)"
	}
	return text
}
