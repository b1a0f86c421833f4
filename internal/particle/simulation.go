package particle

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Simulation constants
const (
	InteractionRadius = 150.0 // pointer influence range
	ForceStrength     = 0.5   // numerator of the 1/d pointer force
	PushFactor        = 0.2   // attract/repel scale
	OrbitFactor       = 0.1   // orbit deflection scale
	MaxSpeedFactor    = 5.0   // |vel| cap is MaxSpeedFactor * speed
	RandomSpread      = 4.0   // random mode re-roll range width, centred on zero
	JitterSpread      = 0.5   // ambient jitter range width, centred on zero

	randomThreshold = 0.98 // random mode re-rolls when rng exceeds this
	jitterThreshold = 0.97 // ambient jitter fires when rng exceeds this
)

// Params is the per-frame input of Update.
type Params struct {
	Pointer       r2.Vec
	Width, Height float64
	Speed         float64
	Mode          Mode
	Drift         float64 // perlin flow strength, 0 disables it
}

// Simulation owns the random source and flow field shared by Create and
// Update. It is not safe for concurrent use.
type Simulation struct {
	rng       *rand.Rand
	flow      *flowField
	TickCount int // Update calls so far, drives the flow field over time
}

// NewSimulation creates a simulation whose randomness is derived from seed.
func NewSimulation(seed int64) *Simulation {
	rng := rand.New(rand.NewSource(seed))
	return &Simulation{
		rng:  rng,
		flow: newFlowField(rng.Int63()),
	}
}

// Create returns count fresh particles scattered over a width x height area
// with radii in [1, size+1) and colours drawn from theme.
func (s *Simulation) Create(width, height float64, count int, size float64, theme Theme) []Particle {
	if count <= 0 {
		return []Particle{}
	}
	palette := theme.Palette()

	particles := make([]Particle, count)
	for i := range particles {
		sw := palette[s.rng.Intn(len(palette))]
		particles[i] = Particle{
			Pos: r2.Vec{
				X: s.rng.Float64() * width,
				Y: s.rng.Float64() * height,
			},
			Size:  s.rng.Float64()*size + 1,
			Hex:   sw.Hex,
			Color: sw.Color,
			Vel: r2.Vec{
				X: (s.rng.Float64() - 0.5) * 2,
				Y: (s.rng.Float64() - 0.5) * 2,
			},
			Opacity: s.rng.Float64()*0.5 + 0.5,
		}
	}
	return particles
}

// Update advances every particle by one frame in place.
func (s *Simulation) Update(particles []Particle, p Params) {
	maxSpeed := MaxSpeedFactor * p.Speed

	for i := range particles {
		pt := &particles[i]

		pt.Pos = r2.Add(pt.Pos, r2.Scale(p.Speed, pt.Vel))

		s.applyPointer(pt, p.Pointer, p.Mode)

		if p.Drift > 0 {
			pt.Vel = r2.Add(pt.Vel, r2.Scale(p.Drift, s.flow.at(pt.Pos, s.TickCount)))
		}

		limitSpeed(pt, maxSpeed)

		// Ambient noise, independent of mode
		if s.rng.Float64() > jitterThreshold {
			pt.Vel.X += (s.rng.Float64() - 0.5) * JitterSpread
			pt.Vel.Y += (s.rng.Float64() - 0.5) * JitterSpread
			limitSpeed(pt, maxSpeed)
		}

		// Reflect off edges
		if pt.Pos.X < 0 || pt.Pos.X > p.Width {
			pt.Vel.X = -pt.Vel.X
			pt.Pos.X = clampEdge(pt.Pos.X, p.Width)
		}
		if pt.Pos.Y < 0 || pt.Pos.Y > p.Height {
			pt.Vel.Y = -pt.Vel.Y
			pt.Pos.Y = clampEdge(pt.Pos.Y, p.Height)
		}
	}

	s.TickCount++
}

// applyPointer perturbs the velocity of pt according to mode when the
// pointer is within InteractionRadius.
func (s *Simulation) applyPointer(pt *Particle, pointer r2.Vec, mode Mode) {
	delta := r2.Sub(pointer, pt.Pos)
	d := r2.Norm(delta)
	// d == 0 would make the force infinite
	if d == 0 || d >= InteractionRadius {
		return
	}
	force := ForceStrength / d

	switch mode {
	case ModeAttract:
		pt.Vel = r2.Add(pt.Vel, r2.Scale(force*PushFactor, delta))
	case ModeRepel:
		pt.Vel = r2.Sub(pt.Vel, r2.Scale(force*PushFactor, delta))
	case ModeOrbit:
		pt.Vel.X += delta.Y * force * OrbitFactor
		pt.Vel.Y -= delta.X * force * OrbitFactor
	case ModeRandom:
		if s.rng.Float64() > randomThreshold {
			pt.Vel.X = (s.rng.Float64() - 0.5) * RandomSpread
			pt.Vel.Y = (s.rng.Float64() - 0.5) * RandomSpread
		}
	}
}

// limitSpeed rescales the velocity of pt to limit when it is faster.
func limitSpeed(pt *Particle, limit float64) {
	if limit < 0 {
		limit = 0
	}
	if v := r2.Norm(pt.Vel); v > limit {
		pt.Vel = r2.Scale(limit/v, pt.Vel)
	}
}

func clampEdge(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	return limit
}
