package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-sparse-gol/lifeio"
	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

func testConfig(t *testing.T, seeds string) utils.Config {
	t.Helper()
	dir := t.TempDir()

	config := utils.DefaultConfig()
	config.InputFile = filepath.Join(dir, "testFile.txt")
	config.OutputFile = filepath.Join(dir, "results.txt")
	if err := os.WriteFile(config.InputFile, []byte(seeds), 0o644); err != nil {
		t.Fatalf("write seeds: %v", err)
	}
	return config
}

func readResults(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	return string(data)
}

func TestRunWritesResults(t *testing.T) {
	config := testConfig(t, "0 0\n1 0\n2 0\n2 0\n")
	config.Generations = 3

	var logs strings.Builder
	if err := run(context.Background(), config, utils.NewLogger(&logs, utils.LogLevelDebug)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := readResults(t, config.OutputFile); got != lifeio.ResultHeader+"\n1 -1\n1 0\n1 1\n" {
		t.Fatalf("results = %q", got)
	}
	if !strings.Contains(logs.String(), "1 duplicates skipped") {
		t.Fatalf("duplicate seed not reported: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "Stagnant") {
		t.Fatalf("oscillator not reported as stagnant: %s", logs.String())
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	seeds := "0 0\n1 0\n2 0\n2 -1\n1 -2\n10 10\n11 10\n10 11\n11 11\n"

	sequential := testConfig(t, seeds)
	sequential.Generations = 12

	parallel := testConfig(t, seeds)
	parallel.Generations = 12
	parallel.UseParallel = true
	parallel.Workers = 3
	parallel.UseMemoryPool = false

	logger := utils.NewLogger(io.Discard, utils.LogLevelError)
	for _, config := range []utils.Config{sequential, parallel} {
		if err := run(context.Background(), config, logger); err != nil {
			t.Fatalf("run: %v", err)
		}
	}

	if readResults(t, sequential.OutputFile) != readResults(t, parallel.OutputFile) {
		t.Fatalf("parallel results differ from sequential")
	}
}

func TestRunInterruptedStillWritesResults(t *testing.T) {
	config := testConfig(t, "5 5\n")
	config.Generations = 100

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs strings.Builder
	if err := run(ctx, config, utils.NewLogger(&logs, utils.LogLevelInfo)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := readResults(t, config.OutputFile); got != lifeio.ResultHeader+"\n5 5\n" {
		t.Fatalf("results = %q, expected the seed state", got)
	}
	if !strings.Contains(logs.String(), "Interrupted after 0 of 100 generations") {
		t.Fatalf("interrupt not logged: %s", logs.String())
	}
}

func TestRunBadSeedFile(t *testing.T) {
	config := testConfig(t, "0 zero\n")

	err := run(context.Background(), config, utils.NewLogger(io.Discard, utils.LogLevelError))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(config.OutputFile); !os.IsNotExist(statErr) {
		t.Fatalf("results written despite bad input")
	}
}

func TestInitializeGameWithoutInputUsesPatterns(t *testing.T) {
	config := utils.DefaultConfig()
	config.InputFile = ""

	board, renderer, stats, err := initializeGame(config, utils.NewLogger(io.Discard, utils.LogLevelError))
	if err != nil {
		t.Fatalf("initialize game: %v", err)
	}
	if board.CountLivingCells() == 0 || renderer == nil || stats == nil {
		t.Fatalf("game not initialised")
	}
}

func TestGameStatus(t *testing.T) {
	board := model.NewBoard(nil)
	if got := gameStatus(board, 0); got != "Extinct" {
		t.Fatalf("status = %q, expected Extinct", got)
	}

	board.SeedAll([]model.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})
	if got := gameStatus(board, 4); got != "Active" {
		t.Fatalf("status = %q, expected Active", got)
	}
	board.NextGenerationSequential()
	if got := gameStatus(board, 4); !strings.HasPrefix(got, "Stagnant") {
		t.Fatalf("status = %q, expected Stagnant", got)
	}
}

func TestRunGenerationsSkipsHistoryWhenStatusUnused(t *testing.T) {
	config := utils.DefaultConfig()
	config.Generations = 4

	board := model.NewBoard(nil)
	board.SeedAll([]model.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})

	logger := utils.NewLogger(io.Discard, utils.LogLevelInfo)
	err := runGenerations(context.Background(), config, board, &model.TerminalRenderer{}, utils.NewStats(), logger, io.Discard)
	if err != nil {
		t.Fatalf("run generations: %v", err)
	}

	// A blinker recorded every generation would already read as stagnant.
	if got := gameStatus(board, board.CountLivingCells()); got != "Active" {
		t.Fatalf("status = %q, history was recorded without a reader", got)
	}
}

func TestRenderFrameWritesToOutput(t *testing.T) {
	config := utils.DefaultConfig()
	config.Generations = 1
	config.Render = true
	config.FrameRate = 0

	board := model.NewBoard(nil)
	board.SeedAll([]model.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})

	var out strings.Builder
	err := runGenerations(context.Background(), config, board, &model.TerminalRenderer{},
		utils.NewStats(), utils.NewLogger(io.Discard, utils.LogLevelError), &out)
	if err != nil {
		t.Fatalf("run generations: %v", err)
	}

	if !strings.HasPrefix(out.String(), "\033[H\033[2J") {
		t.Fatalf("frame does not start with a screen clear: %q", out.String())
	}
	if !strings.Contains(out.String(), "Gen: 1 | Living: 3") || !strings.Contains(out.String(), "██") {
		t.Fatalf("frame missing status or cells: %q", out.String())
	}
}
