package render

import (
	"fmt"
	"strings"

	"maped/internal/grid"
)

// glyphs maps tile ids to the single-rune symbols used by text views.
var glyphs = map[grid.Tile]rune{
	grid.Grass:  '.',
	grid.Desert: '~',
	grid.Water:  '≈',
	grid.Rock:   '▲',
	grid.Sand:   ':',
}

// Glyph returns the text symbol for t, or '?' for unknown ids.
func Glyph(t grid.Tile) rune {
	if r, ok := glyphs[t]; ok {
		return r
	}
	return '?'
}

// ASCII renders the requested region as one string per grid row. The
// region is clamped to the grid before reading, so an oversized request
// shrinks instead of failing.
func ASCII(g *grid.Grid, r grid.Region) []string {
	r = r.Clamp(g.Side())
	if r.Empty() {
		return nil
	}
	lines := make([]string, 0, r.H)
	var sb strings.Builder
	for dz := 0; dz < r.H; dz++ {
		sb.Reset()
		for dx := 0; dx < r.W; dx++ {
			sb.WriteRune(Glyph(g.Get(r.X+dx, r.Z+dz)))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Legend returns the glyph legend printed above text views.
func Legend() string {
	parts := make([]string, 0, int(grid.MaxTile)+1)
	for t := grid.Tile(0); t <= grid.MaxTile; t++ {
		parts = append(parts, fmt.Sprintf("%c = %s", Glyph(t), grid.Names[t]))
	}
	return strings.Join(parts, ", ")
}
