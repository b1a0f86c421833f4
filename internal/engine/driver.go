// Package engine drives the particle store, simulation step and render step
// once per frame. It holds no reference to a window toolkit; the caller
// feeds it viewport size, pointer position and time.
package engine

import (
	"log"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/particle"
	"github.com/olivierh59500/particle-field/internal/render"
)

// Stats is the read-only telemetry shown next to the canvas.
type Stats struct {
	FPS       int
	Particles int
	Paused    bool
}

// buildKey captures everything a particle store was built from.
type buildKey struct {
	store         config.StoreKey
	width, height int
}

// Driver owns the particle collection and the pointer position. It is meant
// to be used from a single goroutine.
type Driver struct {
	sim       *particle.Simulation
	settings  config.Settings
	particles []particle.Particle

	built    buildKey
	hasBuilt bool
	dirty    bool // forces a rebuild on the next tick

	width, height int
	pointer       r2.Vec

	fps     FPSCounter
	paused  bool
	stopped bool
}

// New returns a driver using sim for randomness and s as the initial
// configuration. Particles are built lazily once a viewport is known.
func New(s config.Settings, sim *particle.Simulation) *Driver {
	return &Driver{sim: sim, settings: s}
}

// Settings returns the current configuration snapshot.
func (d *Driver) Settings() config.Settings { return d.settings }

// Configure replaces the configuration snapshot. Particles are rebuilt on
// the next tick only if count, size or theme changed.
func (d *Driver) Configure(s config.Settings) { d.settings = s }

// Apply merges a partial update into the configuration.
func (d *Driver) Apply(p config.Patch) { d.settings = d.settings.Merge(p) }

// Resize records the viewport size in pixels.
func (d *Driver) Resize(width, height int) {
	d.width, d.height = width, height
}

// Viewport returns the last size given to Resize.
func (d *Driver) Viewport() (int, int) { return d.width, d.height }

// MovePointer records the latest pointer position in surface coordinates.
func (d *Driver) MovePointer(x, y float64) {
	d.pointer = r2.Vec{X: x, Y: y}
}

// Pointer returns the latest pointer position.
func (d *Driver) Pointer() r2.Vec { return d.pointer }

// TogglePause freezes or resumes the simulation. Rendering continues while
// paused.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// Reseed discards the particles and builds a fresh set on the next tick.
func (d *Driver) Reseed() { d.dirty = true }

// Stop cancels the driver. Later calls to Tick and Render do nothing.
func (d *Driver) Stop() { d.stopped = true }

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool { return d.stopped }

// Particles returns the current collection. Callers must not modify it.
func (d *Driver) Particles() []particle.Particle { return d.particles }

// Stats returns the current telemetry.
func (d *Driver) Stats() Stats {
	return Stats{FPS: d.fps.Value(), Particles: len(d.particles), Paused: d.paused}
}

// Tick runs one frame of simulation at time now, rebuilding the particle
// store first when its inputs changed. It returns false when the frame was
// skipped because the driver is stopped or has no viewport yet.
func (d *Driver) Tick(now time.Time) bool {
	if d.stopped {
		return false
	}
	if d.width <= 0 || d.height <= 0 {
		return false
	}

	d.ensureStore()

	if !d.paused {
		s := d.settings
		d.sim.Update(d.particles, particle.Params{
			Pointer: d.pointer,
			Width:   float64(d.width),
			Height:  float64(d.height),
			Speed:   s.ParticleSpeed,
			Mode:    s.InteractionMode,
			Drift:   s.Drift,
		})
	}

	d.fps.Frame(now)
	return true
}

// Render paints the current particles onto surface. A nil surface or an
// empty viewport skips the frame.
func (d *Driver) Render(surface render.Surface) bool {
	if d.stopped || surface == nil || d.width <= 0 || d.height <= 0 {
		return false
	}
	render.Draw(surface, d.particles, d.settings.ParticleGlow)
	return true
}

// ensureStore rebuilds the particles when count, size, theme or viewport
// differ from the previous build.
func (d *Driver) ensureStore() {
	key := buildKey{store: d.settings.StoreKey(), width: d.width, height: d.height}
	if d.hasBuilt && !d.dirty && key == d.built {
		return
	}

	s := d.settings
	d.particles = d.sim.Create(float64(d.width), float64(d.height), s.ParticleCount, s.ParticleSize, s.ColorTheme)
	d.built = key
	d.hasBuilt = true
	d.dirty = false
	log.Printf("Built %d particles (size %.1f, theme %s) for %dx%d", len(d.particles), s.ParticleSize, s.ColorTheme, d.width, d.height)
}
