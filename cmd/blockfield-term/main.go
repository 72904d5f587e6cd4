package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfield/config"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/lookahead"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file; the built-in defaults are used when empty.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece order.")
	autoplay := flag.Bool("autoplay", false, "Let the lookahead evaluator place the pieces.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logPath := flag.String("log", "", "Write the log to this file instead of discarding it.")
	flag.Parse()

	// The terminal belongs to the screen, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}

	pal, err := cfg.BuildPalette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build palette: %v\n", err)
		os.Exit(1)
	}

	session := game.NewSession(game.OptionsFromConfig(cfg, *seed))
	scheduler := game.NewDefaultScheduler(session)
	if *autoplay {
		scheduler.Register(&game.AutopilotSystem{Evaluator: lookahead.New(
			lookahead.WithWorkers(cfg.Lookahead.Workers),
			lookahead.WithWeights(lookahead.Weights(cfg.Lookahead.Weights)),
		)})
	}

	sound := &Sound{}
	if !*mute {
		if sound, err = NewSound(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	session.Subscribe(sound.OnEvent)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}

	t := &Terminal{
		screen:    screen,
		session:   session,
		scheduler: scheduler,
		view:      NewView(screen, pal),
	}

	log.Printf("Starting %dx%d field (seed %d)", cfg.Field.Rows, cfg.Field.Columns, *seed)
	t.Run()
	screen.Fini()

	stats := session.Stats()
	fmt.Printf("pieces: %d  rows cleared: %d\n", stats.Locked, stats.RowsCleared)
}

// Terminal runs the input, update and draw loop on one goroutine.
type Terminal struct {
	screen    tcell.Screen
	session   *game.Session
	scheduler *game.Scheduler
	view      *View
}

func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			t.scheduler.Once(now.Sub(last).Seconds())
			last = now
			t.view.Draw(t.session)
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed.
func pumpEvents(screen eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.session.Move(-1)
		case tcell.KeyRight:
			t.session.Move(1)
		case tcell.KeyDown:
			t.session.StepDown()
		case tcell.KeyUp:
			t.session.HardDrop()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				t.session.HardDrop()
			case 'r':
				t.session.Reset()
			case 'h':
				t.session.Move(-1)
			case 'l':
				t.session.Move(1)
			case 'j':
				t.session.StepDown()
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}
