package atmos

import "sync"

// Bag is a concurrent multi-producer collector for InterestingTile
// notifications. A single Z-level tick is a single producer, but the
// host may run several Z-levels in parallel against one shared Bag.
type Bag struct {
	mu    sync.Mutex
	tiles []InterestingTile
}

// NewBag returns an empty Bag ready for concurrent use.
func NewBag() *Bag { return &Bag{} }

// Push appends tile to the bag. Safe for concurrent use.
func (b *Bag) Push(tile InterestingTile) {
	b.mu.Lock()
	b.tiles = append(b.tiles, tile)
	b.mu.Unlock()
}

// Drain returns everything collected so far and clears the bag.
func (b *Bag) Drain() []InterestingTile {
	b.mu.Lock()
	defer b.mu.Unlock()
	tiles := b.tiles
	b.tiles = nil
	return tiles
}

// DrainInto appends everything collected so far onto dst and clears
// the bag, returning the grown dst. dst is typically borrowed from a
// TilePool so a host polling at high tick rates reuses the backing
// array instead of allocating one every tick.
func (b *Bag) DrainInto(dst []InterestingTile) []InterestingTile {
	b.mu.Lock()
	defer b.mu.Unlock()
	dst = append(dst, b.tiles...)
	b.tiles = nil
	return dst
}

// Len reports how many tiles are currently held.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tiles)
}
