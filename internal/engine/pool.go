package engine

import (
	"sync"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

// TilePool reuses []atmos.InterestingTile slices across Bag.DrainInto
// calls, so a host polling at high tick rates doesn't allocate a fresh
// slice every tick. Engine owns one and cycles buffers through it in
// Tick.
type TilePool struct {
	pool sync.Pool
}

// NewTilePool returns a pool that hands out slices pre-allocated to
// capacity.
func NewTilePool(capacity int) *TilePool {
	return &TilePool{
		pool: sync.Pool{
			New: func() interface{} {
				return make([]atmos.InterestingTile, 0, capacity)
			},
		},
	}
}

// Get returns an empty slice ready to be appended to.
func (p *TilePool) Get() []atmos.InterestingTile {
	return p.pool.Get().([]atmos.InterestingTile)[:0]
}

// Put returns a slice to the pool for reuse.
func (p *TilePool) Put(tiles []atmos.InterestingTile) {
	p.pool.Put(tiles)
}
