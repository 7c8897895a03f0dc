package model

import (
	"fmt"
	"math"
)

// Coord identifies a cell on the unbounded plane
type Coord struct {
	X, Y int64
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Left returns x-1, wrapping from the minimum int64 to the maximum
func Left(x int64) int64 {
	if x == math.MinInt64 {
		return math.MaxInt64
	}
	return x - 1
}

// Right returns x+1, wrapping from the maximum int64 to the minimum
func Right(x int64) int64 {
	if x == math.MaxInt64 {
		return math.MinInt64
	}
	return x + 1
}

// Up returns the row above y. Rows grow downward, so this is y-1 with wraparound.
func Up(y int64) int64 {
	return Left(y)
}

// Down returns the row below y, y+1 with wraparound.
func Down(y int64) int64 {
	return Right(y)
}

// Neighborhood returns the 3x3 block centred on c, indexed [row][col].
// The centre is always at [1][1]; callers must skip it by position.
func Neighborhood(c Coord) [3][3]Coord {
	xs := [3]int64{Left(c.X), c.X, Right(c.X)}
	ys := [3]int64{Up(c.Y), c.Y, Down(c.Y)}

	var block [3][3]Coord
	for row, y := range ys {
		for col, x := range xs {
			block[row][col] = Coord{X: x, Y: y}
		}
	}
	return block
}

// Neighbors returns the 8 Moore neighbors of c
func Neighbors(c Coord) [8]Coord {
	var (
		out   [8]Coord
		i     int
		block = Neighborhood(c)
	)
	for row := range 3 {
		for col := range 3 {
			if row == 1 && col == 1 {
				continue // Skip the cell itself
			}
			out[i] = block[row][col]
			i++
		}
	}
	return out
}
