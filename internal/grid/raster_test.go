package grid

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFillRectCoversHalfOpenRange(t *testing.T) {
	g := New(16)
	FillRect(g, 2, 3, 4, 2, Desert)

	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			inside := x >= 2 && x < 6 && z >= 3 && z < 5
			want := Grass
			if inside {
				want = Desert
			}
			if got := g.Get(x, z); got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, z, got, want)
			}
		}
	}
}

func TestFillRectIdempotent(t *testing.T) {
	once := New(16)
	FillRect(once, 1, 1, 5, 5, Rock)

	twice := New(16)
	FillRect(twice, 1, 1, 5, 5, Rock)
	FillRect(twice, 1, 1, 5, 5, Rock)

	if !bytes.Equal(once.Encode(), twice.Encode()) {
		t.Fatal("applying the same fill twice changed the result")
	}
}

func TestFillRectNegativeSizeIsNoop(t *testing.T) {
	g := New(16)
	before := g.Encode()
	FillRect(g, 5, 5, -3, 4, Water)
	FillRect(g, 5, 5, 4, -1, Water)
	if !bytes.Equal(g.Encode(), before) {
		t.Fatal("negative-size fill modified the grid")
	}
}

func TestFillCircleBoundaryInclusive(t *testing.T) {
	g := New(32)
	FillCircle(g, 10, 10, 5, Rock)

	if got := g.Get(10, 10); got != Rock {
		t.Fatalf("center = %d, expected Rock", got)
	}
	if got := g.Get(15, 10); got != Rock {
		t.Fatalf("(15,10) at distance 5 = %d, expected Rock", got)
	}
	if got := g.Get(16, 10); got != Grass {
		t.Fatalf("(16,10) at distance 6 = %d, expected untouched Grass", got)
	}
	if got := g.Get(14, 13); got != Rock {
		t.Fatalf("(14,13) at distance 5 = %d, expected Rock", got)
	}
	if got := g.Get(14, 14); got != Grass {
		t.Fatalf("(14,14) beyond the radius = %d, expected Grass", got)
	}
}

func TestFillCircleClampsToGrid(t *testing.T) {
	g := New(8)
	FillCircle(g, 0, 0, 3, Water)
	if got := g.Get(0, 0); got != Water {
		t.Fatalf("corner = %d, expected Water", got)
	}
	if got := g.Get(3, 0); got != Water {
		t.Fatalf("(3,0) = %d, expected Water", got)
	}
}

func TestDrawLineEndpointsInclusive(t *testing.T) {
	g := New(16)
	DrawLine(g, 0, 0, 5, 0, Water, 1)

	for x := 0; x <= 5; x++ {
		if got := g.Get(x, 0); got != Water {
			t.Fatalf("cell (%d,0) = %d, expected Water", x, got)
		}
	}
	if got := g.Get(6, 0); got != Grass {
		t.Fatalf("cell (6,0) past the endpoint = %d, expected Grass", got)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	g := New(16)
	DrawLine(g, 0, 0, 3, 3, Rock, 1)

	for i := 0; i <= 3; i++ {
		if got := g.Get(i, i); got != Rock {
			t.Fatalf("diagonal cell (%d,%d) = %d, expected Rock", i, i, got)
		}
	}
	if got := g.Get(1, 0); got != Grass {
		t.Fatalf("off-diagonal cell (1,0) = %d, expected Grass", got)
	}
}

func TestDrawLineReverseDirection(t *testing.T) {
	forward := New(16)
	DrawLine(forward, 1, 1, 6, 4, Sand, 1)

	backward := New(16)
	DrawLine(backward, 6, 4, 1, 1, Sand, 1)

	if forward.Get(1, 1) != Sand || forward.Get(6, 4) != Sand {
		t.Fatal("forward line missed an endpoint")
	}
	if backward.Get(1, 1) != Sand || backward.Get(6, 4) != Sand {
		t.Fatal("backward line missed an endpoint")
	}
}

func TestDrawLineSquareStamp(t *testing.T) {
	g := New(16)
	DrawLine(g, 5, 2, 5, 4, Desert, 3)

	// A width-3 stroke stamps a 3x3 square at every step, so the painted
	// band spans x 4..6 and z 1..5.
	for z := 1; z <= 5; z++ {
		for x := 4; x <= 6; x++ {
			if got := g.Get(x, z); got != Desert {
				t.Fatalf("stamp cell (%d,%d) = %d, expected Desert", x, z, got)
			}
		}
	}
	if got := g.Get(3, 2); got != Grass {
		t.Fatalf("cell (3,2) outside the stamp = %d, expected Grass", got)
	}
	if got := g.Get(5, 0); got != Grass {
		t.Fatalf("cell (5,0) outside the stamp = %d, expected Grass", got)
	}
}

func TestNoiseDensityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	g := New(16)
	Noise(g, 0, 0, 16, 16, Sand, 0, rng)
	if counts := g.Count(); counts[Sand] != 0 {
		t.Fatalf("density 0 painted %d cells", counts[Sand])
	}

	Noise(g, 0, 0, 16, 16, Sand, 1, rng)
	if counts := g.Count(); counts[Sand] != 16*16 {
		t.Fatalf("density 1 painted %d cells, expected all %d", counts[Sand], 16*16)
	}
}

func TestNoiseStatisticalDensity(t *testing.T) {
	g := New(100)
	rng := rand.New(rand.NewSource(1234))
	Noise(g, 0, 0, 100, 100, Water, 0.5, rng)

	painted := g.Count()[Water]
	if painted < 4000 || painted > 6000 {
		t.Fatalf("density 0.5 painted %d of 10000 cells, expected 4000..6000", painted)
	}
}

func TestCopyRegionOverlapSafe(t *testing.T) {
	g := New(8)
	for x := 0; x < 8; x++ {
		g.Tiles()[x] = Tile(x % 5)
	}

	// Shift the first four cells of row 0 right by two. The source is
	// buffered first, so the overlap must not corrupt the copied values.
	CopyRegion(g, 0, 0, g, 2, 0, 4, 1)

	want := []Tile{0, 1, 0, 1, 2, 3, 1, 2}
	for x, w := range want {
		if got := g.Get(x, 0); got != w {
			t.Fatalf("cell (%d,0) = %d, expected %d", x, got, w)
		}
	}
}

func TestCopyRegionBetweenGrids(t *testing.T) {
	src := New(8)
	FillRect(src, 0, 0, 4, 4, Rock)

	dst := New(8)
	CopyRegion(src, 0, 0, dst, 4, 4, 4, 4)

	if got := dst.Get(4, 4); got != Rock {
		t.Fatalf("copied cell (4,4) = %d, expected Rock", got)
	}
	if got := dst.Get(3, 3); got != Grass {
		t.Fatalf("cell (3,3) outside the destination = %d, expected Grass", got)
	}
}

func TestCopyRegionOutOfBoundsReadsAsGrass(t *testing.T) {
	src := New(8)
	FillRect(src, 0, 0, 8, 8, Rock)

	dst := New(8)
	FillRect(dst, 0, 0, 8, 8, Water)
	CopyRegion(src, -2, 0, dst, 0, 0, 4, 1)

	if got := dst.Get(0, 0); got != Grass {
		t.Fatalf("cell sourced outside the grid = %d, expected Grass backfill", got)
	}
	if got := dst.Get(2, 0); got != Rock {
		t.Fatalf("cell sourced inside the grid = %d, expected Rock", got)
	}
}

func TestCopyRegionOutOfBoundsWritesDropped(t *testing.T) {
	src := New(8)
	FillRect(src, 0, 0, 8, 8, Rock)

	dst := New(8)
	before := dst.Encode()
	CopyRegion(src, 0, 0, dst, 8, 8, 4, 4)

	if !bytes.Equal(dst.Encode(), before) {
		t.Fatal("writes outside the destination modified the grid")
	}
}
