package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sheikhrachel/go-sparse-gol/lifeio"
	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const (
	serviceName            = "go-sparse-gol"
	tracingShutdownTimeout = 5 * time.Second
)

// run drives a whole simulation: seed, step the configured number of
// generations, then write the live cells. An interrupt stops stepping early but
// the results reached so far are still written.
func run(ctx context.Context, config utils.Config, logger *utils.Logger) error {
	shutdown, err := utils.SetupTracing(ctx, serviceName, config.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warnf("tracing shutdown: %v", err)
		}
	}()

	board, renderer, stats, err := initializeGame(config, logger)
	if err != nil {
		return err
	}
	displayGameInfo(config, board, logger)

	simErr := runGenerations(ctx, config, board, renderer, stats, logger, os.Stdout)
	if errors.Is(simErr, context.Canceled) {
		logger.Warnf("Interrupted after %d of %d generations", board.Generation(), config.Generations)
		simErr = nil
	}

	if config.OutputFile != "" {
		if err = lifeio.WriteResultsFile(config.OutputFile, board.LiveCells()); err != nil {
			return err
		}
		logger.Infof("Wrote %d live cells to %s", board.CountLivingCells(), config.OutputFile)
	}

	displayFinalStats(board, stats, logger)
	return simErr
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *utils.Logger) (
	*model.Board,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.WorklistPool
	if config.UseMemoryPool {
		pool = model.NewWorklistPool()
	}

	board := model.NewBoard(pool)
	if config.InputFile == "" {
		added := board.SeedInterestingPatterns(config)
		logger.Infof("No input file configured, seeded %d cells from built-in patterns", added)
	} else {
		seeds, err := lifeio.ReadSeedsFile(config.InputFile)
		if err != nil {
			return nil, nil, nil, err
		}
		added := board.SeedAll(seeds)
		logger.Infof("Seeded %d cells from %s (%d duplicates skipped)", added, config.InputFile, len(seeds)-added)
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return board, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board, logger *utils.Logger) {
	logger.Infof("Features: Memory Pool: %v, Parallel: %v (workers: %d), Render: %v",
		config.UseMemoryPool, config.UseParallel, config.Workers, config.Render)
	logger.Infof("Generations: %d | Initial living cells: %d | Frontier: %d",
		config.Generations, board.CountLivingCells(), board.FrontierSize())
}

// runGenerations calls the engine exactly once per configured generation
func runGenerations(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	logger *utils.Logger,
	out io.Writer,
) error {
	ctx, span := utils.Tracer().Start(ctx, "simulate",
		trace.WithAttributes(attribute.Int("generations", config.Generations)))
	defer span.End()

	for range config.Generations {
		if err := ctx.Err(); err != nil {
			return err
		}

		frameStart := time.Now()
		result := stepGeneration(ctx, config, board)

		livingCells := board.CountLivingCells()
		stats.Update(board.Generation(), livingCells, board.FrontierSize(), board.StoredCells(), time.Since(frameStart))
		stats.AddTransitions(result.Births, result.Deaths)

		// Stagnation hashing costs O(live log live); skip it when nobody reads the status
		if !config.Render && !logger.Enabled(utils.LogLevelDebug) {
			continue
		}

		status := gameStatus(board, livingCells)
		logger.Debugf("Gen: %d | Living: %d | Evaluated: %d | Births: %d | Deaths: %d | Status: %s",
			board.Generation(), livingCells, result.Evaluated, result.Births, result.Deaths, status)

		if config.Render {
			if err := renderFrame(ctx, config, board, renderer, stats, status, out); err != nil {
				return err
			}
		}
	}

	span.SetAttributes(attribute.Int("live_cells", board.CountLivingCells()))
	return nil
}

// stepGeneration advances the board one generation inside its own span
func stepGeneration(ctx context.Context, config utils.Config, board *model.Board) model.GenerationResult {
	_, span := utils.Tracer().Start(ctx, "generation",
		trace.WithAttributes(attribute.Int("generation", board.Generation()+1)))
	defer span.End()

	result := board.NextGeneration(config)
	span.SetAttributes(
		attribute.Int("evaluated", result.Evaluated),
		attribute.Int("births", result.Births),
		attribute.Int("deaths", result.Deaths),
		attribute.Int("frontier", board.FrontierSize()),
	)
	return result
}

// gameStatus records the board in the stagnation history and describes it
func gameStatus(board *model.Board, livingCells int) string {
	stagnant := board.RecordHistory()
	switch {
	case livingCells == 0:
		return "Extinct"
	case stagnant:
		return fmt.Sprintf("Stagnant (%d)", board.Generation())
	default:
		return "Active"
	}
}

// renderFrame draws the current board and waits for the frame interval
func renderFrame(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	status string,
	out io.Writer,
) error {
	vp := model.ConfigViewport(config)
	if config.FollowCells {
		vp = model.FitViewport(board.BoundingBox(), config.ViewportWidth, config.ViewportHeight)
	}

	if err := renderer.Clear(out); err != nil {
		return errors.Wrap(err, "[renderFrame] failed to clear screen")
	}
	fmt.Fprintf(out, "Gen: %d | Living: %d | Frontier: %d | Stored: %d | Status: %s\n",
		board.Generation(), stats.LiveCells, stats.FrontierSize, stats.StoredCells, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | View: (%d,%d)\n\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Elapsed().Seconds(), vp.X, vp.Y)
	if err := renderer.Display(out, board, vp); err != nil {
		return errors.Wrap(err, "[renderFrame] failed to display board")
	}

	// Wait before next frame
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(config.FrameRate.Std()):
		return nil
	}
}

// displayFinalStats summarises the run
func displayFinalStats(board *model.Board, stats *utils.Stats, logger *utils.Logger) {
	logger.Infof("Final stats: %d generations in %.3f seconds",
		board.Generation(), stats.Elapsed().Seconds())
	logger.Infof("Living: %d | Births: %d | Deaths: %d | Avg Pop: %.1f | Stored cells: %d",
		board.CountLivingCells(), stats.Births, stats.Deaths, stats.AveragePopulation, board.StoredCells())
}
