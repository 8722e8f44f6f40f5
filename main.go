package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"pixsynth/gen"
	"pixsynth/parallel"
	"pixsynth/scale"
)

var cli struct {
	Gen   gen.CLICmd   `cmd:"" help:"Generate procedural images (sun-sky, noise, test patterns)"`
	Scale scale.CLICmd `cmd:"" help:"Batch-resize the images in a folder"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("pixsynth"),
		kong.Description("Pixel-level image primitives: procedural synthesis and resampling."),
	)

	parts := strings.Fields(kctx.Command())
	var err error
	switch parts[0] {
	case "gen":
		err = cli.Gen.Run(parts[1])
	case "scale":
		pool := parallel.Start(0)
		err = cli.Scale.Run(pool.Do, pool.Wait)
	}

	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
