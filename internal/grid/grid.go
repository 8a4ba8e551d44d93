package grid

import (
	"encoding/binary"
	"fmt"
)

// Tile classifies the terrain stored in a single map cell. The on-disk
// format persists the raw value as a little-endian uint16.
type Tile uint16

// Known tile identifiers.
const (
	Grass  Tile = 0
	Desert Tile = 1
	Water  Tile = 2
	Rock   Tile = 3
	Sand   Tile = 4

	// MaxTile is the highest tile id the tool understands. Decoding clamps
	// larger values to it instead of failing.
	MaxTile Tile = Sand
)

// Side is the edge length of the reference map format. ChunkSize is the
// chunk edge used by the game; the editor only uses it as the grid-line
// interval when rendering.
const (
	Side      = 4096
	ChunkSize = 256
)

// Names maps tile ids to their display names.
var Names = map[Tile]string{
	Grass:  "Grass",
	Desert: "Desert",
	Water:  "Water",
	Rock:   "Rock",
	Sand:   "Sand",
}

// FormatError reports a byte buffer whose length does not match the flat
// side*side*2 layout the map format requires.
type FormatError struct {
	Side int
	Want int
	Got  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid map data: %dx%d map needs %d bytes, got %d", e.Side, e.Side, e.Want, e.Got)
}

// Grid stores a square tile map as a flat row-major slice indexed
// (z*side + x). Row is the Z axis, column the X axis.
type Grid struct {
	side  int
	tiles []Tile
}

// New allocates a side*side grid with every cell set to Grass.
func New(side int) *Grid {
	if side <= 0 {
		side = 1
	}
	return &Grid{side: side, tiles: make([]Tile, side*side)}
}

// Side returns the edge length.
func (g *Grid) Side() int { return g.side }

// Tiles exposes the backing slice so callers can read/write values directly.
func (g *Grid) Tiles() []Tile { return g.tiles }

// Decode parses a flat little-endian map buffer into a grid. The buffer
// must be exactly side*side*2 bytes; tile values above MaxTile are clamped
// rather than rejected, matching the game's loader. A non-positive side
// always fails, reported against the side the caller asked for.
func Decode(side int, data []byte) (*Grid, error) {
	want := 0
	if side > 0 {
		want = side * side * 2
	}
	if side <= 0 || len(data) != want {
		return nil, &FormatError{Side: side, Want: want, Got: len(data)}
	}
	g := New(side)
	for i := range g.tiles {
		v := Tile(binary.LittleEndian.Uint16(data[i*2:]))
		if v > MaxTile {
			v = MaxTile
		}
		g.tiles[i] = v
	}
	return g, nil
}

// Encode serializes the grid back into the flat little-endian layout.
// The result is always exactly side*side*2 bytes.
func (g *Grid) Encode() []byte {
	out := make([]byte, len(g.tiles)*2)
	for i, v := range g.tiles {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}

// Get returns the tile at (x, z). Out-of-bounds coordinates read as Grass
// so painting code can scan past the edges without bounds checks.
func (g *Grid) Get(x, z int) Tile {
	if x < 0 || x >= g.side || z < 0 || z >= g.side {
		return Grass
	}
	return g.tiles[z*g.side+x]
}

// Set writes the tile at (x, z). Writes outside the grid or with an
// unknown tile id are silently dropped.
func (g *Grid) Set(x, z int, t Tile) {
	if x < 0 || x >= g.side || z < 0 || z >= g.side || t > MaxTile {
		return
	}
	g.tiles[z*g.side+x] = t
}

// Count tallies how many cells hold each known tile id, indexed by id.
func (g *Grid) Count() []int {
	counts := make([]int, int(MaxTile)+1)
	for _, t := range g.tiles {
		if t > MaxTile {
			t = MaxTile
		}
		counts[t]++
	}
	return counts
}
