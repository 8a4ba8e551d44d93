package render

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"maped/internal/grid"
)

// Palette maps tile ids to the colors used by the pixel view.
type Palette map[grid.Tile]color.RGBA

// Unknown is the sentinel color for tile ids missing from a palette.
// Loud on purpose so unmapped tiles stand out.
var Unknown = color.RGBA{R: 255, G: 0, B: 255, A: 255}

var presets = map[string]Palette{
	"default": {
		grid.Grass:  {R: 32, G: 128, B: 32, A: 255},
		grid.Desert: {R: 204, G: 179, B: 102, A: 255},
		grid.Water:  {R: 51, G: 102, B: 204, A: 255},
		grid.Rock:   {R: 128, G: 128, B: 128, A: 255},
		grid.Sand:   {R: 230, G: 204, B: 153, A: 255},
	},
	"realistic": {
		grid.Grass:  {R: 34, G: 139, B: 34, A: 255},
		grid.Desert: {R: 238, G: 203, B: 173, A: 255},
		grid.Water:  {R: 65, G: 105, B: 225, A: 255},
		grid.Rock:   {R: 105, G: 105, B: 105, A: 255},
		grid.Sand:   {R: 244, G: 164, B: 96, A: 255},
	},
	"high-contrast": {
		grid.Grass:  {R: 0, G: 255, B: 0, A: 255},
		grid.Desert: {R: 255, G: 255, B: 0, A: 255},
		grid.Water:  {R: 0, G: 0, B: 255, A: 255},
		grid.Rock:   {R: 128, G: 128, B: 128, A: 255},
		grid.Sand:   {R: 255, G: 192, B: 203, A: 255},
	},
}

// Preset returns a copy of the named built-in palette.
func Preset(name string) (Palette, bool) {
	p, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make(Palette, len(p))
	for id, c := range p {
		out[id] = c
	}
	return out, true
}

// PresetNames lists the built-in palette names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// paletteFile is the on-disk YAML shape: an optional base preset plus
// per-tile [r, g, b] overrides keyed by tile name.
type paletteFile struct {
	Base  string           `yaml:"base"`
	Tiles map[string][]int `yaml:"tiles"`
}

// LoadFile reads a YAML palette file. Overrides are applied on top of the
// base preset ("default" unless the file names another).
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	p, err := parsePalette(data)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

func parsePalette(data []byte) (Palette, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	base := pf.Base
	if base == "" {
		base = "default"
	}
	p, ok := Preset(base)
	if !ok {
		return nil, fmt.Errorf("unknown base palette %q", base)
	}
	for name, rgb := range pf.Tiles {
		id, ok := tileByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown tile %q", name)
		}
		if len(rgb) != 3 {
			return nil, fmt.Errorf("tile %q: want [r, g, b], got %v", name, rgb)
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("tile %q: channel %d out of range", name, v)
			}
		}
		p[id] = color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}
	}
	return p, nil
}

func tileByName(name string) (grid.Tile, bool) {
	for id, n := range grid.Names {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return 0, false
}
