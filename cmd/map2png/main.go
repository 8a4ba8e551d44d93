// Command map2png converts a binary map file into a PNG image for
// inspection: one palette-colored block per tile, optionally restricted to
// a region and overlaid with chunk grid lines.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"maped/internal/editor"
	"maped/internal/grid"
	"maped/internal/render"
)

func main() {
	log.SetFlags(0)

	scale := flag.Int("scale", 1, "pixels per tile")
	palName := flag.String("palette", "default", "palette preset")
	palFile := flag.String("palette-file", "", "YAML palette file (overrides -palette)")
	chunkGrid := flag.Bool("chunk-grid", false, "draw chunk grid lines")
	regionArg := flag.String("region", "", "convert only \"x,z,w,h\"")
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatal("usage: map2png [flags] <map-file> <png-file>")
	}

	if err := run(flag.Arg(0), flag.Arg(1), *scale, *palName, *palFile, *chunkGrid, *regionArg); err != nil {
		log.Fatal(err)
	}
}

func run(mapPath, pngPath string, scale int, palName, palFile string, chunkGrid bool, regionArg string) error {
	if err := editor.CheckScale(scale); err != nil {
		return err
	}

	var region *grid.Region
	if regionArg != "" {
		r, err := parseRegion(regionArg)
		if err != nil {
			return err
		}
		if err := editor.CheckRegion(r, grid.Side); err != nil {
			return err
		}
		region = &r
	}

	var pal render.Palette
	var err error
	if palFile != "" {
		pal, err = render.LoadFile(palFile)
		if err != nil {
			return err
		}
	} else {
		var ok bool
		pal, ok = render.Preset(palName)
		if !ok {
			return fmt.Errorf("unknown palette %q (presets: %v)", palName, render.PresetNames())
		}
	}

	sess, err := editor.Load(mapPath)
	if err != nil {
		return err
	}

	img := render.Image(sess.Grid, render.Options{
		Scale:     scale,
		Region:    region,
		ChunkGrid: chunkGrid,
		Palette:   pal,
	})

	f, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	bounds := img.Bounds()
	fmt.Printf("Converted %s to %s\n", mapPath, pngPath)
	fmt.Printf("Image size: %dx%d pixels\n", bounds.Dx(), bounds.Dy())
	if region != nil {
		fmt.Printf("Region: (%d,%d) %dx%d tiles\n", region.X, region.Z, region.W, region.H)
	} else {
		fmt.Printf("Full map: %dx%d tiles\n", grid.Side, grid.Side)
	}
	return nil
}

// parseRegion parses the -region flag value "x,z,w,h".
func parseRegion(arg string) (grid.Region, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 4 {
		return grid.Region{}, fmt.Errorf("region %q: want \"x,z,w,h\"", arg)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Region{}, fmt.Errorf("region %q: %q is not a number", arg, p)
		}
		vals[i] = v
	}
	return grid.Region{X: vals[0], Z: vals[1], W: vals[2], H: vals[3]}, nil
}
