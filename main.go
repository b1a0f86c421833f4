package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/engine"
	"github.com/olivierh59500/particle-field/internal/game"
	"github.com/olivierh59500/particle-field/internal/particle"
)

func main() {
	configPath := flag.String("config", "", "Settings file (default ~/.config/particle-field/settings.json)")
	count := flag.Int("count", 0, "Override the particle count")
	theme := flag.String("theme", "", "Override the colour theme: neon, pastel, ocean, sunset or monochrome")
	mode := flag.String("mode", "", "Override the interaction mode: attract, repel, orbit or random")
	drift := flag.Float64("drift", 0, "Override the perlin drift strength, 0 to 2")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	width := flag.Int("width", 800, "Initial window width")
	height := flag.Int("height", 600, "Initial window height")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen")
	flag.Parse()

	if flag.NArg() > 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	path := *configPath
	if path == "" {
		p, err := config.GetSettingsPath()
		if err != nil {
			log.Fatal("Failed to get settings path: ", err)
		}
		path = p
	}

	settings, err := config.Load(path)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}

	// Only flags given on the command line override the file
	var patch config.Patch
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			if *count < config.MinCount || *count > config.MaxCount {
				log.Fatalf("Particle count must be between %d and %d", config.MinCount, config.MaxCount)
			}
			patch.ParticleCount = count
		case "theme":
			th := particle.Theme(*theme)
			if !th.Valid() {
				log.Fatalf("Unknown theme: %s", *theme)
			}
			patch.ColorTheme = &th
		case "mode":
			m := particle.Mode(*mode)
			if !m.Valid() {
				log.Fatalf("Unknown interaction mode: %s", *mode)
			}
			patch.InteractionMode = &m
		case "drift":
			if *drift < 0 || *drift > config.MaxDrift {
				log.Fatalf("Drift must be between 0 and %.1f", config.MaxDrift)
			}
			patch.Drift = drift
		}
	})
	settings = settings.Merge(patch)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	driver := engine.New(settings, particle.NewSimulation(*seed))
	g := game.New(driver, path)

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS) // one simulation step per display refresh

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
