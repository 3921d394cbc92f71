// This is a minimal command showing how to load a preset bundle, build a
// distortion dispatcher for each of its steps, and warp an image through
// them in sequence.
package main

import (
	"flag"
	"os"

	"github.com/g3n/meshwarp/distortion"
	"github.com/g3n/meshwarp/mlog"
	"github.com/g3n/meshwarp/preset"
	"github.com/g3n/meshwarp/raster"
)

func main() {

	presetPath := flag.String("preset", "", "path to a preset YAML file")
	bundle := flag.String("bundle", "", "bundle name within the preset file")
	height := flag.Int("height", 0, "source image height")
	width := flag.Int("width", 0, "source image width")
	flag.Parse()

	mlog.Default.SetLevel(mlog.INFO)

	if *presetPath == "" || *bundle == "" || *height <= 0 || *width <= 0 {
		mlog.Default.Fatal("usage: meshwarp -preset FILE -bundle NAME -height H -width W")
	}

	b := preset.NewBuilder()
	if err := b.ParseFile(*presetPath); err != nil {
		mlog.Default.Fatal("loading preset: %v", err)
	}

	cfgs, err := b.Build(*bundle)
	if err != nil {
		mlog.Default.Fatal("building bundle %q: %v", *bundle, err)
	}

	shape := distortion.Shape{Height: *height, Width: *width}
	img := raster.NewImage(shape.Height, shape.Width, raster.RGB)

	for i, cfg := range cfgs {
		warped, _, err := distortion.DistortImage(cfg, shape, img, nil)
		if err != nil {
			mlog.Default.Fatal("step %d: %v", i, err)
		}
		mlog.Default.Info("step %d (%T): %dx%d -> %dx%d", i, cfg, img.Height, img.Width, warped.Height, warped.Width)
		img = warped
		shape = distortion.Shape{Height: img.Height, Width: img.Width}
	}

	mlog.Default.Info("final canvas: %dx%d", img.Height, img.Width)
	os.Exit(0)
}
