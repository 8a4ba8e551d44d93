package grid

import (
	"math"
	"math/rand"
)

// FillRect sets every cell in [x, x+w) x [z, z+h) to t. Negative sizes
// touch nothing; writes past the edges are dropped by Set.
func FillRect(g *Grid, x, z, w, h int, t Tile) {
	for dz := 0; dz < h; dz++ {
		for dx := 0; dx < w; dx++ {
			g.Set(x+dx, z+dz, t)
		}
	}
}

// FillCircle paints every cell within Euclidean distance r of (cx, cz),
// boundary inclusive. The bounding box is clamped to the grid before
// scanning so off-map circles cost nothing.
func FillCircle(g *Grid, cx, cz, r int, t Tile) {
	zLo, zHi := cz-r, cz+r
	xLo, xHi := cx-r, cx+r
	if zLo < 0 {
		zLo = 0
	}
	if zHi > g.side-1 {
		zHi = g.side - 1
	}
	if xLo < 0 {
		xLo = 0
	}
	if xHi > g.side-1 {
		xHi = g.side - 1
	}
	for z := zLo; z <= zHi; z++ {
		for x := xLo; x <= xHi; x++ {
			dx := float64(x - cx)
			dz := float64(z - cz)
			if math.Sqrt(dx*dx+dz*dz) <= float64(r) {
				g.Set(x, z, t)
			}
		}
	}
}

// DrawLine rasterizes the segment (x1,z1)-(x2,z2) with integer Bresenham
// stepping, stamping a width x width square at every step. Both endpoints
// are painted. The square stamp means thick strokes get square caps and
// slightly uneven diagonal coverage; existing maps were painted with
// exactly that coverage, so keep it.
func DrawLine(g *Grid, x1, z1, x2, z2 int, t Tile, width int) {
	dx := abs(x2 - x1)
	dz := abs(z2 - z1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sz := 1
	if z1 >= z2 {
		sz = -1
	}
	err := dx - dz
	half := width / 2

	x, z := x1, z1
	for {
		for dw := -half; dw <= half; dw++ {
			for dh := -half; dh <= half; dh++ {
				g.Set(x+dw, z+dh, t)
			}
		}
		if x == x2 && z == z2 {
			return
		}
		e2 := 2 * err
		if e2 > -dz {
			err -= dz
			x += sx
		}
		if e2 < dx {
			err += dx
			z += sz
		}
	}
}

// Noise paints each cell of the rectangle independently with probability
// density. A nil rng falls back to the shared math/rand source, so the
// texture differs run to run; pass a seeded *rand.Rand for reproducible
// output.
func Noise(g *Grid, x, z, w, h int, t Tile, density float64, rng *rand.Rand) {
	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	for dz := 0; dz < h; dz++ {
		for dx := 0; dx < w; dx++ {
			if roll() < density {
				g.Set(x+dx, z+dz, t)
			}
		}
	}
}

// CopyRegion copies a w x h rectangle from src at (sx, sz) to dst at
// (dx, dz). The source rectangle is buffered before any write, so the two
// rectangles may overlap when src and dst are the same grid. Reads outside
// src come back as Grass; writes outside dst are dropped.
func CopyRegion(src *Grid, sx, sz int, dst *Grid, dx, dz, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	buf := make([]Tile, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			buf[row*w+col] = src.Get(sx+col, sz+row)
		}
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			dst.Set(dx+col, dz+row, buf[row*w+col])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
