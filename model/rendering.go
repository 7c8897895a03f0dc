package model

import (
	"io"
	"strings"

	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// Viewport is a finite window onto the plane, anchored at its top-left corner.
// Rows grow downward, matching Down.
type Viewport struct {
	X, Y          int64
	Width, Height int
}

// ConfigViewport builds the viewport described by the configuration
func ConfigViewport(config utils.Config) Viewport {
	return Viewport{
		X:      config.ViewportX,
		Y:      config.ViewportY,
		Width:  config.ViewportWidth,
		Height: config.ViewportHeight,
	}
}

// At returns the plane coordinate of the viewport cell (col, row), wrapping at the int64 seam
func (v Viewport) At(col, row int) Coord {
	return Coord{
		X: int64(uint64(v.X) + uint64(col)),
		Y: int64(uint64(v.Y) + uint64(row)),
	}
}

// Contains reports whether c falls inside the viewport, including windows that
// straddle the int64 seam
func (v Viewport) Contains(c Coord) bool {
	return uint64(c.X)-uint64(v.X) < uint64(v.Width) &&
		uint64(c.Y)-uint64(v.Y) < uint64(v.Height)
}

// FitViewport centres a width x height window on the bounding box
func FitViewport(bb BoundingBox, width, height int) Viewport {
	vp := Viewport{Width: width, Height: height}
	if !bb.Valid {
		vp.X = -int64(width / 2)
		vp.Y = -int64(height / 2)
		return vp
	}

	centerX := int64(uint64(bb.MinX) + (uint64(bb.MaxX)-uint64(bb.MinX))/2)
	centerY := int64(uint64(bb.MinY) + (uint64(bb.MaxY)-uint64(bb.MinY))/2)
	vp.X = int64(uint64(centerX) - uint64(width/2))
	vp.Y = int64(uint64(centerY) - uint64(height/2))
	return vp
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the viewport of the board to w
func (r *TerminalRenderer) Display(w io.Writer, b *Board, vp Viewport) error {
	var sb strings.Builder
	for row := range vp.Height {
		sb.Reset()
		for col := range vp.Width {
			if b.IsAlive(vp.At(col, row)) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the terminal screen and homes the cursor on w
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClearScreen)
	return err
}
