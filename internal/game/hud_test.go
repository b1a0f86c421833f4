package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestHUDFaceMatchesLayout(t *testing.T) {
	tests := []struct {
		str  string
		want float64
	}{
		{"", 0},
		{"M", charWidth},
		{"FPS: 60", 7 * charWidth},
		{"Particles: 150 [paused]", 23 * charWidth},
	}
	for _, tt := range tests {
		if got := text.Advance(tt.str, hudFace); got != tt.want {
			t.Errorf("Advance(%q) = %v, want %v", tt.str, got, tt.want)
		}
	}

	m := hudFace.Metrics()
	if h := m.HAscent + m.HDescent; h > lineHeight {
		t.Errorf("line height %v does not fit the %d px row", h, lineHeight)
	}
}
