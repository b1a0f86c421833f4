package hud

import (
	"fmt"

	"github.com/charmbracelet/harmonica"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/particle"
)

// Panel dimensions in pixels
const (
	CollapsedWidth = 48.0
	ExpandedWidth  = 320.0
)

// Spring tuning for the slide animation
const (
	panelFrequency = 7.0
	panelDamping   = 0.9
)

// Tab selects which group of controls the panel lists.
type Tab int

const (
	TabParticles Tab = iota
	TabColors
	TabBehavior
	numTabs
)

func (t Tab) String() string {
	switch t {
	case TabParticles:
		return "Particles"
	case TabColors:
		return "Colors"
	case TabBehavior:
		return "Behavior"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Panel is the collapsible control panel. Its width follows a spring towards
// the open or closed target.
type Panel struct {
	Open bool
	Tab  Tab

	spring   harmonica.Spring
	pos, vel float64 // 0 collapsed, 1 expanded
}

// NewPanel returns a closed panel animated at fps frames per second.
func NewPanel(fps int) *Panel {
	return &Panel{spring: harmonica.NewSpring(harmonica.FPS(fps), panelFrequency, panelDamping)}
}

// Toggle opens a closed panel and closes an open one.
func (p *Panel) Toggle() { p.Open = !p.Open }

// NextTab switches to the following tab, wrapping around.
func (p *Panel) NextTab() { p.Tab = (p.Tab + 1) % numTabs }

// Update advances the slide animation by one frame.
func (p *Panel) Update() {
	target := 0.0
	if p.Open {
		target = 1
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
}

// Width returns the current panel width in pixels.
func (p *Panel) Width() float64 {
	return CollapsedWidth + (ExpandedWidth-CollapsedWidth)*p.pos
}

// Lines returns the rows the panel shows for s. A closed panel only shows
// its toggle hint.
func (p *Panel) Lines(s config.Settings) []string {
	if !p.Open {
		return []string{"[H]"}
	}

	lines := []string{
		fmt.Sprintf("Controls: %s  [Tab]", p.Tab),
		"",
	}
	switch p.Tab {
	case TabParticles:
		lines = append(lines,
			fmt.Sprintf("Particle Count: %d  [Up/Down]", s.ParticleCount),
			fmt.Sprintf("Particle Size: %.1f  [Left/Right]", s.ParticleSize),
			fmt.Sprintf("Glow Effect: %s  [G]", onOff(s.ParticleGlow)),
		)
	case TabColors:
		lines = append(lines, "Color Theme  [T]")
		for _, th := range particle.Themes {
			lines = append(lines, marker(th == s.ColorTheme)+string(th))
		}
	case TabBehavior:
		lines = append(lines,
			fmt.Sprintf("Particle Speed: %.1f  [ [ / ] ]", s.ParticleSpeed),
			fmt.Sprintf("Drift: %.1f", s.Drift),
			"Interaction Mode  [M]",
		)
		for _, m := range particle.Modes {
			lines = append(lines, marker(m == s.InteractionMode)+string(m))
		}
	}
	return append(lines, "", "[Space] pause  [R] reseed", "[S] save  [L] load  [Esc] quit")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func marker(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
