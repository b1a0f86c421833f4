package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/particle-field/internal/hud"
)

// HUD layout
const (
	hudMargin  = 16
	hudPadding = 10
	lineHeight = 16
	charWidth  = 7
)

var (
	hudFill   = color.RGBA{A: 0x4d}
	hudBorder = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0x1a}
	hudText   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xcc}

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawStats(screen)
	g.drawPanel(screen)
}

// drawText draws str with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}

// drawStats draws the FPS and particle count box in the lower-left corner.
func (g *Game) drawStats(screen *ebiten.Image) {
	stats := g.driver.Stats()
	fps := hud.FPSText(stats)
	count := hud.CountText(stats)

	w := float32(hudPadding*3 + charWidth*(len(fps)+len(count)))
	h := float32(lineHeight + hudPadding)
	x := float32(hudMargin)
	y := float32(screen.Bounds().Dy()-hudMargin) - h

	vector.DrawFilledRect(screen, x, y, w, h, hudFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, hudBorder, false)

	top := float64(y) + hudPadding/2
	drawText(screen, fps, float64(x)+hudPadding, top, hud.FPSColor(stats.FPS))
	drawText(screen, count, float64(x)+hudPadding*2+float64(charWidth*len(fps)), top, hudText)
}

// drawPanel draws the control panel in the upper-right corner. Rows are only
// drawn once the panel has slid wide enough to hold them.
func (g *Game) drawPanel(screen *ebiten.Image) {
	lines := g.panel.Lines(g.driver.Settings())

	w := float32(g.panel.Width())
	h := float32(hudPadding*2 + lineHeight*len(lines))
	x := float32(screen.Bounds().Dx()-hudMargin) - w
	y := float32(hudMargin)

	vector.DrawFilledRect(screen, x, y, w, h, hudFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, hudBorder, false)

	if g.panel.Open && g.panel.Width() < hud.ExpandedWidth*0.9 {
		return
	}
	for i, line := range lines {
		drawText(screen, line, float64(x)+hudPadding, float64(y)+hudPadding+float64(i*lineHeight), hudText)
	}
}
