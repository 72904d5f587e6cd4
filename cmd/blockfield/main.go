package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfield/config"
	"github.com/plus3/blockfield/debugui"
	debugui_ebiten "github.com/plus3/blockfield/debugui/ebiten"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/lookahead"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file; the built-in defaults are used when empty.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece order.")
	autoplay := flag.Bool("autoplay", false, "Let the lookahead evaluator place the pieces.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	cellSize := flag.Int("cell", 30, "Cell size in pixels.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	pal, err := cfg.BuildPalette()
	if err != nil {
		log.Fatalf("Failed to build palette: %v", err)
	}

	evaluator := lookahead.New(
		lookahead.WithWorkers(cfg.Lookahead.Workers),
		lookahead.WithWeights(lookahead.Weights(cfg.Lookahead.Weights)),
	)

	session := game.NewSession(game.OptionsFromConfig(cfg, *seed))
	session.Subscribe(func(e game.Event) {
		switch e.Kind {
		case game.EventCleared:
			log.Printf("Cleared %d rows", e.Rows)
		case game.EventGameOver:
			log.Printf("Game over after %d pieces", session.Stats().Locked)
		}
	})

	scheduler := game.NewDefaultScheduler(session)
	if *autoplay {
		scheduler.Register(&game.AutopilotSystem{Evaluator: evaluator})
	}

	g := &Game{
		session:   session,
		scheduler: scheduler,
		renderer:  NewRenderer(pal, float32(*cellSize)),
		timer:     debugui.NewFrameTimer(),
	}

	if *debug {
		g.backend = debugui_ebiten.NewImguiBackend("blockfield", ScreenWidth, ScreenHeight)
		g.overlay = debugui.NewOverlay(debugui.NewFieldInspector(pal), debugui.NewLookaheadWindow(evaluator))
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("blockfield")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting %dx%d field with %d shapes (seed %d)", cfg.Field.Rows, cfg.Field.Columns, len(cfg.Shapes), *seed)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
