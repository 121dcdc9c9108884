package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// periodicRefresh restarts an auto-restarting game every this many generations
const periodicRefresh = 200

// newWorld builds the starting world: a named pattern centred on an empty
// grid, or a random 1/3 seeding when no pattern is configured
func newWorld(config utils.Config, seed int64) (*model.World, error) {
	if config.Pattern == "" {
		world, err := model.NewWorld(config.Rows, config.Columns, model.NewSeededSource(seed))
		if err != nil {
			return nil, errors.Wrap(err, "[newWorld] failed to seed world")
		}
		return world, nil
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "[newWorld] known patterns: %v", model.PatternNames())
	}
	grid, err := model.NewEmptyGrid(config.Rows, config.Columns)
	if err != nil {
		return nil, errors.Wrap(err, "[newWorld] failed to build grid")
	}
	grid.Place(pattern, config.Rows/2-1, config.Columns/2-1)
	return model.NewWorldFromGrid(grid)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, world *model.World, seed int64) {
	source := "random"
	if config.Pattern != "" {
		source = "pattern " + config.Pattern
	}
	fmt.Fprintf(out, "Grid: %dx%d | Start: %s | Seed: %d | Initial living cells: %d\n",
		world.Grid().Rows(), world.Grid().Columns(), source, seed, world.LivingCount())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState records the current generation and returns status information
func updateGameState(
	world *model.World,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	var (
		grid        = world.Grid()
		livingCells = world.LivingCount()
		density     = float64(livingCells) / float64(grid.Rows()*grid.Columns()) * 100
		hash        = grid.Hash()
	)

	stats.Update(world.Generation(), livingCells, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(hash)
	history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	world *model.World,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Fprintf(out, "%s | Density: %.1f%% | Status: %s\n", world.Summary(), density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if stats.Restarts > 0 {
		fmt.Fprintf(out, "Restarts: %d | Generations overall: %d\n", stats.Restarts, stats.TotalGenerations)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame replaces the world with a freshly seeded one
func restartGame(out io.Writer, config utils.Config) (*model.World, error) {
	fmt.Fprintf(out, "\n🔄 Restarting...\n")

	// A restart always reseeds randomly so it never replays the same pattern
	config.Pattern = ""
	world, err := newWorld(config, time.Now().UnixNano())
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame]")
	}

	fmt.Fprintf(out, "✨ New world seeded! Living cells: %d\n", world.LivingCount())
	return world, nil
}
