package model

import "iter"

// Cell is the per-coordinate record kept by a CellStore.
// Its fields are only mutated by the Board's toggle routine, so the neighbor
// count always matches the live cells around it between generations.
type Cell struct {
	alive         bool
	liveNeighbors int
}

// Alive reports the cell's current state
func (c Cell) Alive() bool {
	return c.alive
}

// LiveNeighbors returns how many of the 8 surrounding cells are alive
func (c Cell) LiveNeighbors() int {
	return c.liveNeighbors
}

// CellStore is a sparse map from coordinate to cell record.
//
// Entries are created on first reference and never removed: dead cells with
// zero live neighbors stay resident for the life of the simulation. Bounded
// memory would need an explicit compaction pass.
type CellStore struct {
	cells map[Coord]*Cell
}

// NewCellStore creates an empty store
func NewCellStore() *CellStore {
	return &CellStore{cells: make(map[Coord]*Cell)}
}

// Upsert returns the record for c, inserting a dead zero-neighbor cell if absent
func (s *CellStore) Upsert(c Coord) *Cell {
	if cell, ok := s.cells[c]; ok {
		return cell
	}
	cell := &Cell{}
	s.cells[c] = cell
	return cell
}

// Lookup returns a copy of the record for c without creating one
func (s *CellStore) Lookup(c Coord) (Cell, bool) {
	cell, ok := s.cells[c]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// Len returns the number of stored entries, live or dead
func (s *CellStore) Len() int {
	return len(s.cells)
}

// All iterates every stored entry once. The store must not be mutated during iteration.
func (s *CellStore) All() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for c, cell := range s.cells {
			if !yield(c, *cell) {
				return
			}
		}
	}
}
