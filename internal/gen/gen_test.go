package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maped/internal/grid"
)

func smallConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	// Higher frequencies so a small test grid still crosses biome
	// boundaries.
	cfg.HeightScale = 0.1
	cfg.MoistureScale = 0.05
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	a := grid.New(64)
	b := grid.New(64)
	New(smallConfig(99)).Generate(a)
	New(smallConfig(99)).Generate(b)

	assert.Equal(t, a.Encode(), b.Encode(), "same seed must produce the same map")
}

func TestGenerateSeedChangesTerrain(t *testing.T) {
	a := grid.New(64)
	b := grid.New(64)
	New(smallConfig(1)).Generate(a)
	New(smallConfig(2)).Generate(b)

	assert.NotEqual(t, a.Encode(), b.Encode(), "different seeds must diverge")
}

func TestGenerateOnlyKnownTiles(t *testing.T) {
	g := grid.New(64)
	New(smallConfig(7)).Generate(g)

	for _, tile := range g.Tiles() {
		require.LessOrEqual(t, tile, grid.MaxTile)
	}
}

func TestGenerateAllWaterWhenLevelAboveRange(t *testing.T) {
	cfg := smallConfig(5)
	cfg.WaterLevel = 1.01 // heights are rescaled into [0, 1]

	g := grid.New(32)
	New(cfg).Generate(g)
	assert.Equal(t, 32*32, g.Count()[grid.Water])
}

func TestTileThresholds(t *testing.T) {
	gn := New(DefaultConfig()) // WaterLevel .30, ShoreWidth .05, RockLevel .80, Dryness .35

	assert.Equal(t, grid.Water, gn.tileFor(0.10, 0.5))
	assert.Equal(t, grid.Sand, gn.tileFor(0.32, 0.5))
	assert.Equal(t, grid.Rock, gn.tileFor(0.90, 0.5))
	assert.Equal(t, grid.Rock, gn.tileFor(0.80, 0.5), "rock band is inclusive at the threshold")
	assert.Equal(t, grid.Desert, gn.tileFor(0.50, 0.10))
	assert.Equal(t, grid.Grass, gn.tileFor(0.50, 0.90))
}
