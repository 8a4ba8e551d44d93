// Command maped creates and edits the game's binary map files: a 4096x4096
// grid of little-endian uint16 tile ids with no header. Painting commands
// load the whole file, mutate the grid in memory and write it back.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"maped/internal/editor"
	"maped/internal/gen"
	"maped/internal/grid"
	"maped/internal/render"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "create":
		err = runCreate(args)
	case "info":
		err = runInfo(args)
	case "fill":
		err = runFill(args)
	case "circle":
		err = runCircle(args)
	case "line":
		err = runLine(args)
	case "noise":
		err = runNoise(args)
	case "view":
		err = runView(args)
	case "copy":
		err = runCopy(args)
	case "generate":
		err = runGenerate(args)
	case "help", "-h", "--help":
		usage()
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: maped <command> [arguments]

Commands:
  create   <map>                                      create a new all-grass map
  info     <map>                                      show size and tile distribution
  fill     <map> <tile> [x z w h]                     fill a rectangle
  circle   <map> <tile> <x> <z> <radius>              fill a circle
  line     <map> <tile> <x1> <z1> <x2> <z2> [width]   draw a line
  noise    <map> <tile> <density> [x z w h]           scatter tiles randomly
  view     <map> [x z w h]                            print an ASCII view
  copy     <src> <dst> <sx> <sz> <dx> <dz> <w> <h>    copy a region between maps
  generate <map> [-seed n ...]                        generate perlin terrain

Tile ids: 0=Grass 1=Desert 2=Water 3=Rock 4=Sand`)
}

// intArg parses the i-th positional argument, falling back to def when it
// is absent.
func intArg(args []string, i, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, args[i])
	}
	return v, nil
}

func runCreate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: maped create <map>")
	}
	sess := editor.New(args[0])
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Created new map: %s\n", sess.Path)
	return nil
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: maped info <map>")
	}
	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	info := sess.Info()
	fmt.Printf("Map: %s\n", sess.Path)
	fmt.Printf("Size: %dx%d\n", info.Side, info.Side)
	fmt.Printf("Total tiles: %s\n", editor.GroupDigits(info.Total))
	fmt.Println("\nTile distribution:")
	for t := grid.Tile(0); t <= grid.MaxTile; t++ {
		fmt.Printf("  %6s: %10s (%5.1f%%)\n", grid.Names[t], editor.GroupDigits(info.Counts[t]), info.Percent(t))
	}
	return nil
}

func runFill(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: maped fill <map> <tile> [x z w h]")
	}
	tile, err := editor.ParseTile(args[1])
	if err != nil {
		return err
	}
	x, err := intArg(args, 2, 0)
	if err != nil {
		return err
	}
	z, err := intArg(args, 3, 0)
	if err != nil {
		return err
	}
	w, err := intArg(args, 4, grid.Side)
	if err != nil {
		return err
	}
	h, err := intArg(args, 5, grid.Side)
	if err != nil {
		return err
	}

	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	grid.FillRect(sess.Grid, x, z, w, h, tile)
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Filled rectangle (%d,%d) %dx%d with %s\n", x, z, w, h, grid.Names[tile])
	return nil
}

func runCircle(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: maped circle <map> <tile> <x> <z> <radius>")
	}
	tile, err := editor.ParseTile(args[1])
	if err != nil {
		return err
	}
	x, err := intArg(args, 2, 0)
	if err != nil {
		return err
	}
	z, err := intArg(args, 3, 0)
	if err != nil {
		return err
	}
	radius, err := intArg(args, 4, 0)
	if err != nil {
		return err
	}

	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	grid.FillCircle(sess.Grid, x, z, radius, tile)
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Filled circle at (%d,%d) radius %d with %s\n", x, z, radius, grid.Names[tile])
	return nil
}

func runLine(args []string) error {
	if len(args) < 6 || len(args) > 7 {
		return fmt.Errorf("usage: maped line <map> <tile> <x1> <z1> <x2> <z2> [width]")
	}
	tile, err := editor.ParseTile(args[1])
	if err != nil {
		return err
	}
	coords := make([]int, 4)
	for i := range coords {
		if coords[i], err = intArg(args, 2+i, 0); err != nil {
			return err
		}
	}
	width, err := intArg(args, 6, 1)
	if err != nil {
		return err
	}

	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	grid.DrawLine(sess.Grid, coords[0], coords[1], coords[2], coords[3], tile, width)
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Drew line from (%d,%d) to (%d,%d) with %s\n", coords[0], coords[1], coords[2], coords[3], grid.Names[tile])
	return nil
}

func runNoise(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: maped noise <map> <tile> <density> [x z w h]")
	}
	tile, err := editor.ParseTile(args[1])
	if err != nil {
		return err
	}
	density, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("density %q is not a number", args[2])
	}
	if err := editor.CheckDensity(density); err != nil {
		return err
	}
	x, err := intArg(args, 3, 0)
	if err != nil {
		return err
	}
	z, err := intArg(args, 4, 0)
	if err != nil {
		return err
	}
	w, err := intArg(args, 5, grid.Side)
	if err != nil {
		return err
	}
	h, err := intArg(args, 6, grid.Side)
	if err != nil {
		return err
	}

	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	grid.Noise(sess.Grid, x, z, w, h, tile, density, nil)
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Added %s noise (density %g) to rectangle (%d,%d) %dx%d\n", grid.Names[tile], density, x, z, w, h)
	return nil
}

func runView(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: maped view <map> [x z w h]")
	}
	x, err := intArg(args, 1, 0)
	if err != nil {
		return err
	}
	z, err := intArg(args, 2, 0)
	if err != nil {
		return err
	}
	w, err := intArg(args, 3, 80)
	if err != nil {
		return err
	}
	h, err := intArg(args, 4, 40)
	if err != nil {
		return err
	}

	sess, err := editor.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Map view: (%d,%d) %dx%d\n", x, z, w, h)
	fmt.Println("Legend: " + render.Legend())
	lines := render.ASCII(sess.Grid, grid.Region{X: x, Z: z, W: w, H: h})
	fmt.Println(strings.Join(lines, "\n"))
	return nil
}

func runCopy(args []string) error {
	if len(args) != 8 {
		return fmt.Errorf("usage: maped copy <src> <dst> <sx> <sz> <dx> <dz> <w> <h>")
	}
	coords := make([]int, 6)
	var err error
	for i := range coords {
		if coords[i], err = intArg(args, 2+i, 0); err != nil {
			return err
		}
	}
	sx, sz, dx, dz, w, h := coords[0], coords[1], coords[2], coords[3], coords[4], coords[5]

	src, err := editor.Load(args[0])
	if err != nil {
		return err
	}

	// The destination is created on the fly when missing, matching the
	// create-then-copy workflow for stamping templates onto fresh maps.
	var dst *editor.Session
	if _, statErr := os.Stat(args[1]); statErr == nil {
		dst, err = editor.Load(args[1])
		if err != nil {
			return err
		}
	} else {
		fmt.Printf("Creating new destination map: %s\n", args[1])
		dst = editor.New(args[1])
	}

	grid.CopyRegion(src.Grid, sx, sz, dst.Grid, dx, dz, w, h)
	if err := dst.Save(); err != nil {
		return err
	}
	fmt.Printf("Copied region from %s to %s\n", src.Path, dst.Path)
	return nil
}

func runGenerate(args []string) error {
	cfg := gen.DefaultConfig()

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed")
	fs.Float64Var(&cfg.HeightScale, "height-scale", cfg.HeightScale, "height noise frequency")
	fs.Float64Var(&cfg.MoistureScale, "moisture-scale", cfg.MoistureScale, "moisture noise frequency")
	fs.Float64Var(&cfg.WaterLevel, "water", cfg.WaterLevel, "height below which cells are water")
	fs.Float64Var(&cfg.ShoreWidth, "shore", cfg.ShoreWidth, "sand band above the water line")
	fs.Float64Var(&cfg.RockLevel, "rock", cfg.RockLevel, "height above which cells are rock")
	fs.Float64Var(&cfg.DesertDryness, "dryness", cfg.DesertDryness, "moisture below which grass becomes desert")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: maped generate [flags] <map>")
	}

	sess := editor.New(fs.Arg(0))
	gen.New(cfg).Generate(sess.Grid)
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Printf("Generated terrain (seed %d) into %s\n", cfg.Seed, sess.Path)
	return nil
}
