package render

import (
	"image"
	"image/color"

	"maped/internal/grid"
)

// chunkGridColor is the dark gray used for chunk boundary lines.
var chunkGridColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}

// Options control the pixel projection of a map region.
type Options struct {
	Scale     int          // pixels per tile; values below 1 are treated as 1
	Region    *grid.Region // nil renders the whole map
	ChunkGrid bool         // overlay lines every grid.ChunkSize tiles
	Palette   Palette      // nil falls back to the default preset
}

// Image projects a map region into an RGBA image, one Scale x Scale solid
// block per tile. Alpha is always opaque. Tile ids without a palette entry
// come out as the Unknown sentinel color.
func Image(g *grid.Grid, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	var r grid.Region
	if opts.Region != nil {
		r = opts.Region.Clamp(g.Side())
	} else {
		r = grid.Region{W: g.Side(), H: g.Side()}
	}
	pal := opts.Palette
	if pal == nil {
		pal, _ = Preset("default")
	}

	img := image.NewRGBA(image.Rect(0, 0, r.W*scale, r.H*scale))
	for row := 0; row < r.H; row++ {
		for col := 0; col < r.W; col++ {
			c, ok := pal[g.Get(r.X+col, r.Z+row)]
			if !ok {
				c = Unknown
			}
			fillBlock(img, col*scale, row*scale, scale, c)
		}
	}
	if opts.ChunkGrid && scale >= 2 {
		drawChunkGrid(img, r, scale)
	}
	return img
}

// fillBlock writes a scale x scale solid block directly into the pixel
// buffer.
func fillBlock(img *image.RGBA, x0, y0, scale int, c color.RGBA) {
	for dy := 0; dy < scale; dy++ {
		base := img.PixOffset(x0, y0+dy)
		for dx := 0; dx < scale; dx++ {
			img.Pix[base+0] = c.R
			img.Pix[base+1] = c.G
			img.Pix[base+2] = c.B
			img.Pix[base+3] = c.A
			base += 4
		}
	}
}

// drawChunkGrid overlays single-pixel lines at every chunk boundary
// relative to the region origin, skipping the line at offset zero.
func drawChunkGrid(img *image.RGBA, r grid.Region, scale int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for cx := grid.ChunkSize; cx < r.W; cx += grid.ChunkSize {
		px := cx * scale
		if px >= w {
			break
		}
		for y := 0; y < h; y++ {
			img.SetRGBA(px, y, chunkGridColor)
		}
	}
	for cz := grid.ChunkSize; cz < r.H; cz += grid.ChunkSize {
		py := cz * scale
		if py >= h {
			break
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, py, chunkGridColor)
		}
	}
}
