package lifeio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

func TestWriteResultsSortsCells(t *testing.T) {
	cells := []model.Coord{{X: 2, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 0}}

	var sb strings.Builder
	if err := WriteResults(&sb, cells); err != nil {
		t.Fatalf("write results: %v", err)
	}

	want := ResultHeader + "\n1 -1\n0 0\n2 0\n"
	if sb.String() != want {
		t.Fatalf("output = %q, expected %q", sb.String(), want)
	}
	if cells[0] != (model.Coord{X: 2, Y: 0}) {
		t.Fatalf("input slice was reordered")
	}
}

func TestResultsRoundTripThroughBoard(t *testing.T) {
	board := model.NewBoard(nil)
	board.SeedAll([]model.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	board.NextGenerationSequential()

	path := filepath.Join(t.TempDir(), "results.txt")
	if err := WriteResultsFile(path, board.LiveCells()); err != nil {
		t.Fatalf("write results file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read results file: %v", err)
	}
	if string(data) != ResultHeader+"\n1 -1\n1 0\n1 1\n" {
		t.Fatalf("results file = %q", data)
	}

	seeds, err := ReadSeedsFile(path)
	if err != nil {
		t.Fatalf("read results back: %v", err)
	}
	reloaded := model.NewBoard(nil)
	reloaded.SeedAll(seeds)
	if reloaded.Hash() != board.Hash() {
		t.Fatalf("reloaded board differs from the written one")
	}
}

func TestWriteResultsFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "results.txt")
	if err := WriteResultsFile(path, nil); err == nil {
		t.Fatal("expected error")
	}
}
