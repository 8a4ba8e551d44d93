//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"maped/internal/app"
	"maped/internal/editor"
	"maped/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)

	scale := flag.Int("scale", 4, "pixels per tile")
	palName := flag.String("palette", "default", "palette preset")
	palFile := flag.String("palette-file", "", "YAML palette file (overrides -palette)")
	chunkGrid := flag.Bool("chunk-grid", false, "start with chunk grid lines on")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: mapview [flags] <map-file>")
	}

	sess, err := editor.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var pal render.Palette
	if *palFile != "" {
		pal, err = render.LoadFile(*palFile)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		var ok bool
		pal, ok = render.Preset(*palName)
		if !ok {
			log.Fatalf("unknown palette %q (presets: %v)", *palName, render.PresetNames())
		}
	}

	viewer := app.New(sess.Grid, pal, *scale, *chunkGrid)

	ebiten.SetWindowTitle("maped — " + sess.Path)
	ebiten.SetWindowSize(app.ViewW, app.ViewH)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
