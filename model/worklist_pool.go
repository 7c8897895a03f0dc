package model

import "sync"

// WorklistToPool returns a worklist buffer to the pool for reuse
func WorklistToPool(buf *[]Coord, pool *WorklistPool) {
	if pool == nil || buf == nil {
		return
	}

	pool.Put(buf)
}

// WorklistPool recycles coordinate buffers between generations
type WorklistPool struct {
	pool sync.Pool
}

func NewWorklistPool() *WorklistPool {
	return &WorklistPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]Coord, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *WorklistPool) Get() *[]Coord {
	buf := p.pool.Get().(*[]Coord)
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool, truncating it first
func (p *WorklistPool) Put(buf *[]Coord) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
