package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

const glowTexSize = 64

var glowImage *ebiten.Image

// glowTexture returns a white disc whose alpha falls off quadratically from
// the centre, built on first use.
func glowTexture() *ebiten.Image {
	if glowImage != nil {
		return glowImage
	}
	img := image.NewNRGBA(image.Rect(0, 0, glowTexSize, glowTexSize))
	c := glowTexSize / 2.0
	for y := 0; y < glowTexSize; y++ {
		for x := 0; x < glowTexSize; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			t := 1 - d/c
			if t < 0 {
				t = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(t * t * 255)})
		}
	}
	glowImage = ebiten.NewImageFromImage(img)
	return glowImage
}

// screenSurface paints onto an ebiten image.
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) FillDisc(center r2.Vec, radius float64, fill color.NRGBA, alpha, glow float64) {
	if glow > 0 {
		s.drawGlow(center, radius+glow, fill, alpha)
	}
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), withAlpha(fill, alpha), true)
}

func (s screenSurface) StrokeLine(from, to r2.Vec, width float64, stroke color.NRGBA, alpha float64) {
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), withAlpha(stroke, alpha), true)
}

// drawGlow blends the glow texture, tinted with tint, additively over a
// disc of the given radius.
func (s screenSurface) drawGlow(center r2.Vec, radius float64, tint color.NRGBA, alpha float64) {
	tex := glowTexture()
	scale := 2 * radius / glowTexSize

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowTexSize/2, -glowTexSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 255})
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(tex, op)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(alpha)))
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
