// Package game adapts the particle driver to ebiten: it feeds window size,
// pointer and keyboard input in, and paints the frame and HUD out.
package game

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/engine"
	"github.com/olivierh59500/particle-field/internal/hud"
)

// PanelFPS is the frame rate the control panel animation is tuned for.
const PanelFPS = 60

var background = color.RGBA{R: 0x0b, G: 0x0b, B: 0x16, A: 0xff}

// Game implements ebiten.Game around an engine.Driver.
type Game struct {
	driver       *engine.Driver
	panel        *hud.Panel
	settingsPath string

	// pointer tracking
	lastCursorX, lastCursorY int
	cursorSeen               bool
	touch                    ebiten.TouchID
	touching                 bool
	touchIDs                 []ebiten.TouchID
}

// New returns a game driving d. Settings are saved to and loaded from
// settingsPath on request.
func New(d *engine.Driver, settingsPath string) *Game {
	return &Game{
		driver:       d,
		panel:        hud.NewPanel(PanelFPS),
		settingsPath: settingsPath,
	}
}

// Update is called once per tick by ebiten.
func (g *Game) Update() error {
	if g.driver.Stopped() {
		return ebiten.Termination
	}

	g.handleInput()
	if g.driver.Stopped() {
		return ebiten.Termination
	}

	g.panel.Update()
	g.driver.Tick(time.Now())
	return nil
}

// Draw is called once per frame by ebiten.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.driver.Render(screenSurface{dst: screen})
	g.drawHUD(screen)
}

// Layout tracks the window size as the simulation viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.driver.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) saveSettings() {
	if err := config.Save(g.settingsPath, g.driver.Settings()); err != nil {
		log.Printf("Failed to save settings: %v", err)
		return
	}
	log.Printf("Saved settings to %s", g.settingsPath)
}

func (g *Game) loadSettings() {
	s, err := config.Load(g.settingsPath)
	if err != nil {
		log.Printf("Failed to load settings: %v", err)
		return
	}
	g.driver.Configure(s)
	log.Printf("Loaded settings from %s", g.settingsPath)
}
