//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"maped/internal/grid"
	"maped/internal/render"
)

// panStep is how many tiles a held arrow key moves the viewport per frame.
const panStep = 8

// Viewer pans a palette-projected window over a loaded map.
type Viewer struct {
	g   *grid.Grid
	img *ebiten.Image

	presets []string
	palIdx  int // -1 while showing a palette that is not a preset
	pal     render.Palette

	x, z      int // top-left tile of the viewport
	scale     int
	chunkGrid bool
	dirty     bool
}

// New constructs a Viewer showing g from the top-left corner.
func New(g *grid.Grid, pal render.Palette, scale int, chunkGrid bool) *Viewer {
	if pal == nil {
		pal, _ = render.Preset("default")
	}
	return &Viewer{
		g:         g,
		img:       ebiten.NewImage(ViewW, ViewH),
		presets:   render.PresetNames(),
		palIdx:    -1,
		pal:       pal,
		scale:     normalizeScale(scale),
		chunkGrid: chunkGrid,
		dirty:     true,
	}
}

// Update handles per-frame input: arrows pan, +/- zoom, G toggles the
// chunk grid, P cycles palette presets, Q or Escape quits.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, z := v.x, v.z
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		z -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		z += panStep
	}

	scale := v.scale
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		scale *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		scale /= 2
	}
	if scale < scales[0] {
		scale = scales[0]
	}
	if scale > scales[len(scales)-1] {
		scale = scales[len(scales)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.chunkGrid = !v.chunkGrid
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.palIdx = (v.palIdx + 1) % len(v.presets)
		v.pal, _ = render.Preset(v.presets[v.palIdx])
		v.dirty = true
	}

	if scale != v.scale {
		v.scale = scale
		v.dirty = true
	}
	x, z = v.clampView(x, z)
	if x != v.x || z != v.z {
		v.x, v.z = x, z
		v.dirty = true
	}
	return nil
}

// clampView keeps the viewport inside the map for the current scale.
func (v *Viewer) clampView(x, z int) (int, int) {
	maxX := v.g.Side() - ViewW/v.scale
	maxZ := v.g.Side() - ViewH/v.scale
	if maxX < 0 {
		maxX = 0
	}
	if maxZ < 0 {
		maxZ = 0
	}
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	if z < 0 {
		z = 0
	}
	if z > maxZ {
		z = maxZ
	}
	return x, z
}

// Draw uploads the viewport projection when it changed and blits it.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		v.redraw()
		v.dirty = false
	}
	screen.DrawImage(v.img, nil)
}

func (v *Viewer) redraw() {
	r := grid.Region{X: v.x, Z: v.z, W: ViewW / v.scale, H: ViewH / v.scale}
	rgba := render.Image(v.g, render.Options{
		Scale:     v.scale,
		Region:    &r,
		ChunkGrid: v.chunkGrid,
		Palette:   v.pal,
	})
	v.img.WritePixels(rgba.Pix)
}

// Layout returns the fixed logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ViewW, ViewH
}
