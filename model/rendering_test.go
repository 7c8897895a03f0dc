package model

import (
	"io"
	"math"
	"strings"
	"testing"
)

func TestViewportContainsAcrossSeam(t *testing.T) {
	vp := Viewport{X: math.MaxInt64 - 1, Y: -1, Width: 4, Height: 3}

	tests := []struct {
		c    Coord
		want bool
	}{
		{c: Coord{X: math.MaxInt64 - 1, Y: -1}, want: true},
		{c: Coord{X: math.MaxInt64, Y: 0}, want: true},
		{c: Coord{X: math.MinInt64 + 1, Y: 1}, want: true},
		{c: Coord{X: math.MinInt64 + 2, Y: 0}, want: false},
		{c: Coord{X: math.MaxInt64 - 2, Y: 0}, want: false},
		{c: Coord{X: math.MaxInt64, Y: 2}, want: false},
	}

	for _, tc := range tests {
		if got := vp.Contains(tc.c); got != tc.want {
			t.Fatalf("Contains(%v) = %v, expected %v", tc.c, got, tc.want)
		}
	}

	if got := vp.At(2, 0); got != (Coord{X: math.MinInt64, Y: -1}) {
		t.Fatalf("At(2, 0) = %v, expected the wrapped column", got)
	}
}

func TestFitViewport(t *testing.T) {
	vp := FitViewport(BoundingBox{MinX: 10, MaxX: 20, MinY: -4, MaxY: 4, Valid: true}, 10, 6)
	if vp != (Viewport{X: 10, Y: -3, Width: 10, Height: 6}) {
		t.Fatalf("viewport = %+v", vp)
	}

	empty := FitViewport(BoundingBox{}, 10, 6)
	if empty != (Viewport{X: -5, Y: -3, Width: 10, Height: 6}) {
		t.Fatalf("empty viewport = %+v", empty)
	}

	wide := FitViewport(BoundingBox{MinX: math.MinInt64, MaxX: math.MaxInt64, Valid: true}, 2, 2)
	if !wide.Contains(Coord{X: -1, Y: 0}) {
		t.Fatalf("full-axis box not centred near zero: %+v", wide)
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	b := NewBoard(nil)
	b.SeedAll([]Coord{{X: 0, Y: 0}, {X: 1, Y: 1}})

	var sb strings.Builder
	r := &TerminalRenderer{}
	if err := r.Display(&sb, b, Viewport{X: 0, Y: 0, Width: 2, Height: 2}); err != nil {
		t.Fatalf("display: %v", err)
	}

	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if sb.String() != want {
		t.Fatalf("display = %q, expected %q", sb.String(), want)
	}
}

func TestTerminalRendererClearWritesToTarget(t *testing.T) {
	var sb strings.Builder
	r := &TerminalRenderer{}
	if err := r.Clear(&sb); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if sb.String() != ansiClearScreen {
		t.Fatalf("clear wrote %q", sb.String())
	}

	if err := r.Clear(failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}
