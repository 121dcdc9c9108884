package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

var errShutdown = errors.New("shutdown requested")

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	seed := config.SeedOrNow()
	world, err := newWorld(config, seed)
	if err != nil {
		log.Fatalf("failed to create world: %+v", err)
	}

	stats := utils.NewStats()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		return watchSignals(ctx)
	})

	eg.Go(func() error {
		defer cancel()
		if config.Interactive {
			return runInteractive(ctx, world, config)
		}
		displayGameInfo(os.Stdout, config, world, seed)
		return runPlain(ctx, os.Stdout, world, config, stats)
	})

	err = eg.Wait()
	switch {
	case err == nil:
	case errors.Is(err, errShutdown):
		fmt.Println("\n🛑 Shutting down gracefully...")
	default:
		log.Fatalf("game stopped: %+v", err)
	}

	if !config.Interactive {
		fmt.Printf("Final stats: %d generations in %.1f seconds, %d restarts\n",
			stats.TotalGenerations, stats.Runtime().Seconds(), stats.Restarts)
		fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
			stats.GenerationsPerSecond, stats.AveragePopulation)
	}
}

// watchSignals returns errShutdown on SIGINT/SIGTERM, or nil once ctx is done
func watchSignals(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		return errShutdown
	case <-ctx.Done():
		return nil
	}
}

// runInteractive hands the world to the full-screen terminal UI
func runInteractive(ctx context.Context, world *model.World, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}
	return ui.NewTerminal(screen, world, config.FrameRate).Run(ctx)
}

// runPlain prints one frame per generation until the game ends or ctx is done
func runPlain(
	ctx context.Context,
	out io.Writer,
	world *model.World,
	config utils.Config,
	stats *utils.Stats,
) error {
	var (
		renderer      = &model.TerminalRenderer{Out: out}
		history       = &model.History{}
		stagnantCount = 0
		lastFrameTime = time.Now()
		totalOffset   = 0 // generations played by worlds discarded on restart
	)

	for {
		frameStart := time.Now()
		if out == os.Stdout {
			renderer.Clear()
		}

		livingCells, density, status, isStagnant := updateGameState(world, history, lastFrameTime, stats)
		stats.TotalGenerations = totalOffset + world.Generation()
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(out, world, density, status, stats)
		renderer.Display(world.Grid())

		if config.MaxGenerations > 0 && stats.TotalGenerations >= config.MaxGenerations {
			fmt.Fprintf(out, "\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if config.AutoRestart {
			if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, world.Generation(), config); shouldRestart {
				fmt.Fprintf(out, "🔄 Restarting due to %s...\n", reason)
				next, err := restartGame(out, config)
				if err != nil {
					return err
				}
				totalOffset += world.Generation()
				world = next
				history.Reset()
				stagnantCount = 0
				stats.Restarts++
			}
		} else if livingCells == 0 {
			fmt.Fprintln(out, "Unfortunately, the cells live no more. Game over!")
			fmt.Fprintln(out, model.Verdict(world.Generation()))
			return nil
		}

		world.Step()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(config.FrameRate):
		}
	}
}
