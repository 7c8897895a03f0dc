package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-sparse-gol/utils"
)

var (
	gliderPattern = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinkerPattern = [][]bool{
		{true, true, true},
	}
)

// AddPattern seeds every set cell of pattern with its top-left corner at origin
func (b *Board) AddPattern(origin Coord, pattern [][]bool) (added int) {
	for dy, row := range pattern {
		for dx, cell := range row {
			if !cell {
				continue
			}
			if b.Seed(Coord{X: origin.X + int64(dx), Y: origin.Y + int64(dy)}) {
				added++
			}
		}
	}
	return
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(origin Coord) int {
	return b.AddPattern(origin, gliderPattern)
}

// AddOscillator adds a blinker oscillator pattern
func (b *Board) AddOscillator(origin Coord) int {
	return b.AddPattern(origin, blinkerPattern)
}

// Randomize seeds live cells inside the viewport with the given density
func (b *Board) Randomize(rng *rand.Rand, vp Viewport, density float64) (added int) {
	for row := range vp.Height {
		for col := range vp.Width {
			if rng.Float64() >= density {
				continue
			}
			if b.Seed(vp.At(col, row)) {
				added++
			}
		}
	}
	return
}

// SeedInterestingPatterns fills the default viewport with gliders, oscillators and
// random life. It is used when no seed file is configured.
func (b *Board) SeedInterestingPatterns(config utils.Config) int {
	var (
		vp    = ConfigViewport(config)
		rng   = rand.New(rand.NewPCG(uint64(config.RandomSeed), 0))
		added int
	)

	if vp.Width >= 10 && vp.Height >= 10 {
		added += b.AddGlider(vp.At(5, 5))
		if vp.Width >= 20 && vp.Height >= 15 {
			added += b.AddGlider(vp.At(vp.Width-8, 5))
		}

		added += b.AddOscillator(vp.At(vp.Width/4, vp.Height/4))
		if vp.Width >= 30 {
			added += b.AddOscillator(vp.At(3*vp.Width/4, 3*vp.Height/4))
		}
	}

	added += b.Randomize(rng, vp, config.RandomDensity)
	return added
}
