package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfield/config"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/lookahead"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Path to a YAML config file; the built-in defaults are used when empty.")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Lookahead workers per evaluation.")
	seed := flag.Uint64("seed", 1, "Seed for the piece order of the first game.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfield stress test...")

	// 1. Setup session, scheduler and autopilot
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	opts := game.OptionsFromConfig(cfg, *seed)
	session := game.NewSession(opts)
	scheduler := game.NewDefaultScheduler(session)
	autopilot := &game.AutopilotSystem{Evaluator: lookahead.New(
		lookahead.WithWorkers(*workers),
		lookahead.WithWeights(lookahead.Weights(cfg.Lookahead.Weights)),
	)}
	scheduler.Register(autopilot)

	report := &Report{
		Duration:       *duration,
		Rows:           cfg.Field.Rows,
		Columns:        cfg.Field.Columns,
		Shapes:         len(cfg.Shapes),
		Workers:        *workers,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run autopilot games until the time is up
	log.Printf("Running games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(1.0 / 60.0)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			if autopilot.Err != nil {
				log.Fatalf("Lookahead failed: %v", autopilot.Err)
			}

			if session.Over() {
				report.AddGame(session.Stats())
				session.Reset()
			}
		}
	}

	if stats := session.Stats(); stats.Locked > 0 {
		report.AddGame(stats)
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
