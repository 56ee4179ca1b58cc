package main

import (
	"backrooms/internal/generate"
	"backrooms/internal/viewer"
	"flag"
	"fmt"
	"os"
)

func main() {
	width := flag.Int("width", 75, "grid width in cells")
	height := flag.Int("height", 75, "grid height in cells")
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	modeName := flag.String("mode", "classic", "generation mode: classic, backrooms or chunked")
	theme := flag.Int("theme", 0, "initial theme index")
	flag.Parse()

	mode, err := generate.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "error: grid size must be positive, got %dx%d\n", *width, *height)
		os.Exit(2)
	}

	v, err := viewer.NewLocal(viewer.Options{
		Width:  *width,
		Height: *height,
		Seed:   *seed,
		Mode:   mode,
		Theme:  *theme,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	v.Run()
	fmt.Println(v.Report())
}
