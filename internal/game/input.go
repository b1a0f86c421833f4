package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes keyboard, mouse and touch input
func (g *Game) handleInput() {
	g.trackPointer()

	d := g.driver
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.Stop()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.NextTab()
	}

	s := d.Settings()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s = s.StepCount(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s = s.StepCount(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s = s.StepSize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s = s.StepSize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s = s.StepSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s = s.StepSpeed(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ParticleGlow = !s.ParticleGlow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s = s.NextTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s = s.NextMode()
	}
	d.Configure(s)

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadSettings()
	}
}

// trackPointer forwards the first active touch, or else the mouse cursor
// when it moved. Touches beyond the first contact are ignored.
func (g *Game) trackPointer() {
	if g.touching && inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
	}
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) > 0 {
			g.touch = g.touchIDs[0]
			g.touching = true
		}
	}
	if g.touching {
		x, y := ebiten.TouchPosition(g.touch)
		g.driver.MovePointer(float64(x), float64(y))
		return
	}

	mx, my := ebiten.CursorPosition()
	if !g.cursorSeen || mx != g.lastCursorX || my != g.lastCursorY {
		g.driver.MovePointer(float64(mx), float64(my))
		g.lastCursorX, g.lastCursorY = mx, my
		g.cursorSeen = true
	}
}
