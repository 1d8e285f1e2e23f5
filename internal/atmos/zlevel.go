package atmos

// ZLevel is a dense square grid of tiles. Index i = x*MapSize + y (X is
// the slow axis). ZLevel owns its tiles; two ZLevels exist at once in
// the tick driver (prev, a read-only snapshot, and next, the mutable
// target).
type ZLevel struct {
	MapSize int
	tiles   []Tile
}

// NewZLevel allocates a MapSize x MapSize grid of Sealed tiles, each
// with tuning.GasCount gas slots. Allocated once per Z-level
// initialization, never per tick.
func NewZLevel(tuning *Tuning) *ZLevel {
	tiles := make([]Tile, tuning.MapSize*tuning.MapSize)
	for i := range tiles {
		tiles[i] = NewTile(tuning.GasCount)
	}
	return &ZLevel{MapSize: tuning.MapSize, tiles: tiles}
}

// Index converts grid coordinates to a flat tile index.
func (z *ZLevel) Index(x, y int32) int {
	return int(x)*z.MapSize + int(y)
}

// MaybeIndex returns the flat index for (x, y) and true, or 0 and false
// if the coordinate is off the map.
func (z *ZLevel) MaybeIndex(x, y int32) (int, bool) {
	if x < 0 || y < 0 || int(x) >= z.MapSize || int(y) >= z.MapSize {
		return 0, false
	}
	return z.Index(x, y), true
}

// Coords converts a flat index back to (x, y).
func (z *ZLevel) Coords(index int) (x, y int32) {
	return int32(index / z.MapSize), int32(index % z.MapSize)
}

func (z *ZLevel) GetTile(index int) *Tile { return &z.tiles[index] }

// GetPairMut returns distinct mutable references to two distinct tiles
// of this grid. It panics if i == j — callers must guarantee distinct
// indices, since this is the only primitive in the engine that hands
// out two live mutable references into the same backing array at once.
func (z *ZLevel) GetPairMut(i, j int) (*Tile, *Tile) {
	if i == j {
		panic("atmos: GetPairMut requires distinct indices")
	}
	return &z.tiles[i], &z.tiles[j]
}

// CopyFrom resets z's tiles to deep copies of src's, sized the same. It
// is how the tick driver turns "next" into a mutable copy of "prev"
// before wall detection runs.
func (z *ZLevel) CopyFrom(src *ZLevel) {
	if cap(z.tiles) < len(src.tiles) {
		z.tiles = make([]Tile, len(src.tiles))
	} else {
		z.tiles = z.tiles[:len(src.tiles)]
	}
	z.MapSize = src.MapSize
	for i := range src.tiles {
		z.tiles[i] = src.tiles[i].Clone()
	}
}

// Len returns the total tile count (MapSize * MapSize).
func (z *ZLevel) Len() int { return len(z.tiles) }
