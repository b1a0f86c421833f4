// Package render paints particles and the connection lines between them onto
// a Surface.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-field/internal/particle"
)

// Render constants
const (
	ConnectionRadius = 100.0 // pairs closer than this are linked
	ConnectionWidth  = 0.5
	GlowFactor       = 2.0 // glow radius per unit of particle radius
)

// ConnectionColor is the faint stroke used for connection lines,
// rgba(255, 255, 255, 0.05).
var ConnectionColor = color.NRGBA{R: 255, G: 255, B: 255, A: 13}

// Surface is a 2D raster target. Every call carries its own paint state, so
// nothing set for one shape applies to the next.
type Surface interface {
	// FillDisc paints a filled circle of fill at alpha. When glow > 0 a
	// halo of that radius, tinted with fill, is painted around it.
	FillDisc(center r2.Vec, radius float64, fill color.NRGBA, alpha, glow float64)
	// StrokeLine paints a straight segment of stroke at alpha.
	StrokeLine(from, to r2.Vec, width float64, stroke color.NRGBA, alpha float64)
}

// Connection is an unordered pair of particle indices closer than
// ConnectionRadius, with the line alpha for that distance.
type Connection struct {
	I, J  int
	Alpha float64
}

// Draw paints every particle, then the connection lines between nearby
// pairs. It keeps no state between calls.
func Draw(s Surface, particles []particle.Particle, glow bool) {
	for _, p := range particles {
		g := 0.0
		if glow {
			g = p.Size * GlowFactor
		}
		s.FillDisc(p.Pos, p.Size, p.Color, p.Opacity, g)
	}

	for _, c := range Connections(particles) {
		s.StrokeLine(particles[c.I].Pos, particles[c.J].Pos, ConnectionWidth, ConnectionColor, c.Alpha)
	}
}

// Connections returns every pair (i < j) closer than ConnectionRadius. The
// scan is all-pairs; particle counts are bounded by the control panel.
func Connections(particles []particle.Particle) []Connection {
	var out []Connection
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			d := r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos))
			if d < ConnectionRadius {
				out = append(out, Connection{I: i, J: j, Alpha: 1 - d/ConnectionRadius})
			}
		}
	}
	return out
}
