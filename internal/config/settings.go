package config

import (
	"math"

	"github.com/olivierh59500/particle-field/internal/particle"
)

// Control panel ranges
const (
	MinCount  = 50
	MaxCount  = 500
	CountStep = 10

	MinSize  = 1.0
	MaxSize  = 10.0
	SizeStep = 0.5

	MinSpeed  = 0.1
	MaxSpeed  = 3.0
	SpeedStep = 0.1

	MaxDrift = 2.0
)

// Settings is an immutable snapshot of the tunable parameters. Copy it, do
// not share pointers to it.
type Settings struct {
	ParticleCount   int            `json:"particle_count"`
	ParticleSize    float64        `json:"particle_size"`
	ParticleSpeed   float64        `json:"particle_speed"`
	ParticleGlow    bool           `json:"particle_glow"`
	ColorTheme      particle.Theme `json:"color_theme"`
	InteractionMode particle.Mode  `json:"interaction_mode"`
	Drift           float64        `json:"drift"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		ParticleCount:   150,
		ParticleSize:    3,
		ParticleSpeed:   1,
		ParticleGlow:    true,
		ColorTheme:      particle.ThemeNeon,
		InteractionMode: particle.ModeAttract,
	}
}

// Patch is a partial update; nil fields are left untouched by Merge.
type Patch struct {
	ParticleCount   *int
	ParticleSize    *float64
	ParticleSpeed   *float64
	ParticleGlow    *bool
	ColorTheme      *particle.Theme
	InteractionMode *particle.Mode
	Drift           *float64
}

// Merge returns s with every non-nil field of p applied.
func (s Settings) Merge(p Patch) Settings {
	if p.ParticleCount != nil {
		s.ParticleCount = *p.ParticleCount
	}
	if p.ParticleSize != nil {
		s.ParticleSize = *p.ParticleSize
	}
	if p.ParticleSpeed != nil {
		s.ParticleSpeed = *p.ParticleSpeed
	}
	if p.ParticleGlow != nil {
		s.ParticleGlow = *p.ParticleGlow
	}
	if p.ColorTheme != nil {
		s.ColorTheme = *p.ColorTheme
	}
	if p.InteractionMode != nil {
		s.InteractionMode = *p.InteractionMode
	}
	if p.Drift != nil {
		s.Drift = *p.Drift
	}
	return s
}

// StoreKey holds the fields whose change requires rebuilding the particles.
type StoreKey struct {
	Count int
	Size  float64
	Theme particle.Theme
}

// StoreKey returns the rebuild-relevant part of s.
func (s Settings) StoreKey() StoreKey {
	return StoreKey{Count: s.ParticleCount, Size: s.ParticleSize, Theme: s.ColorTheme}
}

// StepCount moves the particle count by n steps within the panel range.
func (s Settings) StepCount(n int) Settings {
	s.ParticleCount = clampInt(s.ParticleCount+n*CountStep, MinCount, MaxCount)
	return s
}

// StepSize moves the particle size by n steps within the panel range.
func (s Settings) StepSize(n int) Settings {
	s.ParticleSize = snap(clampFloat(s.ParticleSize+float64(n)*SizeStep, MinSize, MaxSize), SizeStep)
	return s
}

// StepSpeed moves the speed multiplier by n steps within the panel range.
func (s Settings) StepSpeed(n int) Settings {
	s.ParticleSpeed = snap(clampFloat(s.ParticleSpeed+float64(n)*SpeedStep, MinSpeed, MaxSpeed), SpeedStep)
	return s
}

// NextTheme switches to the following colour theme.
func (s Settings) NextTheme() Settings {
	s.ColorTheme = s.ColorTheme.Next()
	return s
}

// NextMode switches to the following interaction mode.
func (s Settings) NextMode() Settings {
	s.InteractionMode = s.InteractionMode.Next()
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// snap rounds v to the nearest multiple of step, dropping float drift.
func snap(v, step float64) float64 {
	n := 1 / step
	return math.Round(v*n) / n
}
