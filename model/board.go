package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"iter"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/rules"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

// historySize is how many recent board hashes are kept for stagnation reporting
const historySize = 5

// Board represents the sparse game board and its pending frontier
type Board struct {
	store      *CellStore
	dirty      *DirtySet
	live       map[Coord]struct{} // mirrors every cell with alive set, kept by toggle
	pool       *WorklistPool
	generation int
	history    []string // Store recent board states for cycle detection
}

// GenerationResult summarises one step
type GenerationResult struct {
	Evaluated int
	Births    int
	Deaths    int
}

// Toggled returns the number of cells that flipped state
func (r GenerationResult) Toggled() int {
	return r.Births + r.Deaths
}

// BoundingBox is the smallest rectangle containing every live cell.
// It ignores wraparound, so a pattern straddling the int64 seam spans the whole axis.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY int64
	Valid                  bool
}

// NewBoard creates an empty board. A nil pool disables buffer reuse.
func NewBoard(pool *WorklistPool) *Board {
	return &Board{
		store: NewCellStore(),
		dirty: NewDirtySet(),
		live:  make(map[Coord]struct{}),
		pool:  pool,
	}
}

// Generation returns how many steps have been applied
func (b *Board) Generation() int {
	return b.generation
}

// Seed makes c alive through the same routine used by generation steps.
// It returns false when c was already alive, so duplicate seeds are harmless.
func (b *Board) Seed(c Coord) bool {
	if cell, ok := b.store.Lookup(c); ok && cell.alive {
		return false
	}
	b.toggle(c)
	return true
}

// SeedAll seeds every coordinate and returns how many became alive
func (b *Board) SeedAll(coords []Coord) (added int) {
	for _, c := range coords {
		if b.Seed(c) {
			added++
		}
	}
	return
}

// toggle flips c and propagates the change to its 8 neighbors.
// This is the only place a cell's state or neighbor count changes.
func (b *Board) toggle(c Coord) (alive bool) {
	cell := b.store.Upsert(c)
	cell.alive = !cell.alive

	delta := -1
	if cell.alive {
		delta = 1
		b.live[c] = struct{}{}
	} else {
		delete(b.live, c)
	}

	b.dirty.Mark(c)
	for _, n := range Neighbors(c) {
		b.store.Upsert(n).liveNeighbors += delta
		b.dirty.Mark(n)
	}
	return cell.alive
}

// shouldToggle evaluates the rule against the frozen state of c
func (b *Board) shouldToggle(c Coord) bool {
	cell, ok := b.store.Lookup(c)
	if !ok {
		return false
	}
	return rules.ShouldToggle(cell.liveNeighbors, cell.alive)
}

// NextGenerationSequential calculates the next generation on the calling goroutine
func (b *Board) NextGenerationSequential() GenerationResult {
	return b.step(func(worklist []Coord, toggles *[]Coord) {
		for _, c := range worklist {
			if b.shouldToggle(c) {
				*toggles = append(*toggles, c)
			}
		}
	})
}

// NextGenerationParallel calculates the next generation, sharding the read-only
// evaluation phase across workers. Toggles are applied after every worker has
// finished, on the calling goroutine.
func (b *Board) NextGenerationParallel(workers int) GenerationResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return b.step(func(worklist []Coord, toggles *[]Coord) {
		var (
			eg             errgroup.Group
			itemsPerWorker = (len(worklist) + workers - 1) / workers // Ceiling division
			shards         = make([][]Coord, workers)
		)

		for i := range workers {
			var (
				start = i * itemsPerWorker
				end   = min(start+itemsPerWorker, len(worklist))
			)
			if start >= len(worklist) {
				break
			}

			eg.Go(func() error {
				var local []Coord
				for _, c := range worklist[start:end] {
					if b.shouldToggle(c) {
						local = append(local, c)
					}
				}
				shards[i] = local
				return nil
			})
		}

		// Evaluation is read-only and never returns an error
		_ = eg.Wait()

		for _, shard := range shards {
			*toggles = append(*toggles, shard...)
		}
	})
}

// NextGeneration calculates the next generation based on configuration
func (b *Board) NextGeneration(config utils.Config) GenerationResult {
	if config.UseParallel {
		return b.NextGenerationParallel(config.Workers)
	}
	return b.NextGenerationSequential()
}

// step drains the frontier, lets evaluate decide every toggle from the frozen
// board, then applies all of them. The two phases must stay separate: applying
// a toggle mid-evaluation would leak next-generation counts into this one.
func (b *Board) step(evaluate func(worklist []Coord, toggles *[]Coord)) GenerationResult {
	worklist, toggles := b.buffer(), b.buffer()
	defer func() {
		b.release(worklist)
		b.release(toggles)
	}()

	*worklist = b.dirty.Drain(*worklist)
	evaluate(*worklist, toggles)

	result := GenerationResult{Evaluated: len(*worklist)}
	for _, c := range *toggles {
		if b.toggle(c) {
			result.Births++
		} else {
			result.Deaths++
		}
	}

	b.generation++
	return result
}

func (b *Board) buffer() *[]Coord {
	if b.pool != nil {
		return b.pool.Get()
	}
	buf := make([]Coord, 0)
	return &buf
}

func (b *Board) release(buf *[]Coord) {
	WorklistToPool(buf, b.pool)
}

// IsAlive returns the state of a cell without creating a record for it
func (b *Board) IsAlive(c Coord) bool {
	cell, ok := b.store.Lookup(c)
	return ok && cell.alive
}

// CellAt returns the stored record for c, if any
func (b *Board) CellAt(c Coord) (Cell, bool) {
	return b.store.Lookup(c)
}

// Cells iterates every stored record, dead ones included
func (b *Board) Cells() iter.Seq2[Coord, Cell] {
	return b.store.All()
}

// IsDirty reports whether c will be evaluated next generation
func (b *Board) IsDirty(c Coord) bool {
	return b.dirty.Contains(c)
}

// LiveCells returns every live coordinate in unspecified order
func (b *Board) LiveCells() []Coord {
	live := make([]Coord, 0, len(b.live))
	for c := range b.live {
		live = append(live, c)
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() int {
	return len(b.live)
}

// FrontierSize returns how many coordinates are pending evaluation
func (b *Board) FrontierSize() int {
	return b.dirty.Len()
}

// StoredCells returns how many records the store holds, dead ones included
func (b *Board) StoredCells() int {
	return b.store.Len()
}

// BoundingBox calculates the bounding box of living cells
func (b *Board) BoundingBox() (bb BoundingBox) {
	for c := range b.live {
		if !bb.Valid {
			bb = BoundingBox{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y, Valid: true}
			continue
		}
		bb.MinX = min(bb.MinX, c.X)
		bb.MaxX = max(bb.MaxX, c.X)
		bb.MinY = min(bb.MinY, c.Y)
		bb.MaxY = max(bb.MaxY, c.Y)
	}
	return
}

// Hash returns an MD5 hash of the live cell set, independent of map order
func (b *Board) Hash() string {
	live := b.LiveCells()
	slices.SortFunc(live, CompareCoords)

	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range live {
		binary.BigEndian.PutUint64(buf[:8], uint64(c.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// RecordHistory hashes the current state, reports whether it repeats one of the
// last few recorded states (still life or short-period oscillator), then records it
func (b *Board) RecordHistory() (stagnant bool) {
	currentHash := b.Hash()
	stagnant = slices.Contains(b.history, currentHash)

	b.history = append(b.history, currentHash)
	if len(b.history) > historySize {
		b.history = b.history[1:]
	}
	return
}

// CompareCoords orders coordinates by row, then column
func CompareCoords(a, b Coord) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
