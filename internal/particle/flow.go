package particle

import (
	"math"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

// Flow field tuning
const (
	flowAlpha      = 2.0
	flowBeta       = 2.0
	flowOctaves    = 3
	flowSpaceScale = 0.005 // noise units per pixel
	flowTimeScale  = 0.002 // noise units per frame
)

// flowField maps a position and frame to a unit direction taken from 3D
// perlin noise, so neighbouring particles drift the same way.
type flowField struct {
	noise *perlin.Perlin
}

func newFlowField(seed int64) *flowField {
	return &flowField{noise: perlin.NewPerlin(flowAlpha, flowBeta, flowOctaves, seed)}
}

func (f *flowField) at(pos r2.Vec, frame int) r2.Vec {
	n := f.noise.Noise3D(pos.X*flowSpaceScale, pos.Y*flowSpaceScale, float64(frame)*flowTimeScale)
	// Noise is roughly in [-1, 1]; spread it over two turns
	angle := n * 4 * math.Pi
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}
