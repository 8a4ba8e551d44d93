package gen

import (
	"github.com/aquilax/go-perlin"

	"maped/internal/grid"
)

// Perlin smoothing, frequency and octave count. Shared by both noise
// layers; only the seed differs.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// moistureSeedOffset separates the moisture layer from the height layer
// when both derive from the same map seed.
const moistureSeedOffset = 42

// Config holds the tunables for terrain generation. Heights and moisture
// are perlin values rescaled to [0, 1].
type Config struct {
	Seed          int64
	HeightScale   float64 // noise frequency of the height layer
	MoistureScale float64 // noise frequency of the moisture layer
	WaterLevel    float64 // heights below this become water
	ShoreWidth    float64 // band above the water line that becomes sand
	RockLevel     float64 // heights at or above this become rock
	DesertDryness float64 // moisture below this turns grass into desert
}

// DefaultConfig returns the standard generation parameters, tuned for the
// 4096 reference map.
func DefaultConfig() Config {
	return Config{
		Seed:          1337,
		HeightScale:   0.008,
		MoistureScale: 0.004,
		WaterLevel:    0.30,
		ShoreWidth:    0.05,
		RockLevel:     0.80,
		DesertDryness: 0.35,
	}
}

// Generator produces full maps from two layered perlin fields. The same
// config always produces the same map.
type Generator struct {
	cfg      Config
	height   *perlin.Perlin
	moisture *perlin.Perlin
}

// New returns a Generator for cfg.
func New(cfg Config) *Generator {
	return &Generator{
		cfg:      cfg,
		height:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Seed),
		moisture: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Seed+moistureSeedOffset),
	}
}

// Generate overwrites every cell of g with generated terrain.
func (gn *Generator) Generate(g *grid.Grid) {
	side := g.Side()
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			h := noise01(gn.height, float64(x)*gn.cfg.HeightScale, float64(z)*gn.cfg.HeightScale)
			m := noise01(gn.moisture, float64(x)*gn.cfg.MoistureScale, float64(z)*gn.cfg.MoistureScale)
			g.Set(x, z, gn.tileFor(h, m))
		}
	}
}

// noise01 rescales perlin output from [-1, 1] to [0, 1].
func noise01(p *perlin.Perlin, x, z float64) float64 {
	return (p.Noise2D(x, z) + 1) / 2
}

// tileFor maps a height/moisture pair onto a tile id. Height wins over
// moisture: water and rock bands apply regardless of dryness.
func (gn *Generator) tileFor(h, m float64) grid.Tile {
	cfg := gn.cfg
	switch {
	case h < cfg.WaterLevel:
		return grid.Water
	case h < cfg.WaterLevel+cfg.ShoreWidth:
		return grid.Sand
	case h >= cfg.RockLevel:
		return grid.Rock
	case m < cfg.DesertDryness:
		return grid.Desert
	default:
		return grid.Grass
	}
}
