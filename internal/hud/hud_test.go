package hud

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/engine"
)

func TestFPSColor(t *testing.T) {
	tests := []struct {
		fps  int
		want string
	}{
		{60, "good"}, {50, "good"}, {49, "fair"}, {30, "fair"}, {29, "poor"}, {0, "poor"},
	}
	names := map[string]color.RGBA{"good": ColorGood, "fair": ColorFair, "poor": ColorPoor}
	for _, tt := range tests {
		if got := FPSColor(tt.fps); got != names[tt.want] {
			t.Errorf("FPSColor(%d) = %v, want %s", tt.fps, got, tt.want)
		}
	}
}

func TestStatsText(t *testing.T) {
	s := engine.Stats{FPS: 58, Particles: 150}
	if got := FPSText(s); got != "58 FPS" {
		t.Errorf("FPSText = %q", got)
	}
	if got := CountText(s); got != "150 particles" {
		t.Errorf("CountText = %q", got)
	}
	s.Paused = true
	if got := CountText(s); got != "150 particles (paused)" {
		t.Errorf("CountText = %q", got)
	}
}

func TestPanelSlides(t *testing.T) {
	p := NewPanel(60)
	if p.Width() != CollapsedWidth {
		t.Fatalf("closed width = %v", p.Width())
	}

	p.Toggle()
	for i := 0; i < 240; i++ {
		p.Update()
	}
	if math.Abs(p.Width()-ExpandedWidth) > 1 {
		t.Errorf("open width = %v, want about %v", p.Width(), ExpandedWidth)
	}

	p.Toggle()
	for i := 0; i < 240; i++ {
		p.Update()
	}
	if math.Abs(p.Width()-CollapsedWidth) > 1 {
		t.Errorf("closed width = %v, want about %v", p.Width(), CollapsedWidth)
	}
}

func TestPanelTabs(t *testing.T) {
	p := NewPanel(60)
	if got := p.Lines(config.Default()); len(got) != 1 {
		t.Errorf("closed panel lines = %v", got)
	}

	p.Toggle()
	s := config.Default()
	want := []string{"Particle Count: 150", "Color Theme", "Particle Speed: 1.0"}
	for i, w := range want {
		joined := strings.Join(p.Lines(s), "\n")
		if !strings.Contains(joined, w) {
			t.Errorf("tab %s lines missing %q:\n%s", p.Tab, w, joined)
		}
		if i < len(want)-1 {
			p.NextTab()
		}
	}

	p.NextTab()
	if p.Tab != TabParticles {
		t.Errorf("tab after wrap = %s", p.Tab)
	}
}

func TestPanelMarksSelection(t *testing.T) {
	p := NewPanel(60)
	p.Toggle()
	p.NextTab()
	joined := strings.Join(p.Lines(config.Default()), "\n")
	if !strings.Contains(joined, "> neon") || strings.Contains(joined, "> ocean") {
		t.Errorf("colors tab:\n%s", joined)
	}
}
