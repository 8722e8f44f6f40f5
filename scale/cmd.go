// Package scale is the CLI front-end for the resampler: it scans a folder,
// resizes every decodable image through the resample package and writes the
// results to a destination folder.
package scale

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"pixsynth/fimg"
	"pixsynth/imgio"
	"pixsynth/parallel"
	"pixsynth/resample"
)

type CLICmd struct {
	Scan        string  `help:"Source folder to scan" default:"."`
	Dest        string  `help:"Destination folder, relative to scan dir if not absolute" default:"resized"`
	Width       int     `help:"Target width, 0 keeps the source width"`
	Height      int     `help:"Target height, 0 keeps the source height"`
	Filter      string  `help:"Reconstruction kernel" enum:"default,box,triangle,cubic-spline,catmull-rom,mitchell" default:"default"`
	Edge        string  `help:"Boundary policy" enum:"clamp,reflect,wrap,zero" default:"clamp"`
	Premultiply bool    `help:"Filter with premultiplied alpha" default:"false"`
	Linear      bool    `help:"Resample in linear light" default:"true"`
	Gamma       float64 `help:"Display gamma assumed for --linear" default:"2.2"`
	Format      string  `help:"Output format. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`

	filter resample.Filter
	edge   resample.Edge
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	case (c.Width == 0) && (c.Height == 0):
		return fmt.Errorf("no resize dimensions given")
	}

	if c.filter, err = resample.ParseFilter(c.Filter); err != nil {
		return err
	}
	c.edge, err = resample.ParseEdge(c.Edge)
	return err
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				src, imgType, err := imgio.Load(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not load image", "error", err)
					return
				}

				out, err := c.resizeOne(src)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not resize image", "error", err)
					return
				}

				if err = c.save(out, imgType, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not save image", "dir", c.Dest, "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

// resizeOne runs one image through the pipeline: byte to float, optional
// linear-light decode, resample, re-encode.
func (c *CLICmd) resizeOne(src image.Image) (*fimg.Image, error) {
	in, err := fimg.FromImage(src)
	if err != nil {
		return nil, err
	}

	width := c.Width
	if width == 0 {
		width = in.Width()
	}
	height := c.Height
	if height == 0 {
		height = in.Height()
	}

	if c.Linear {
		in = fimg.GammaToLinear(in, c.Gamma)
	}

	// The batch already runs one file per worker, so each resize stays
	// single-threaded.
	out, err := resample.Resize(in, width, height, resample.Options{
		Filter:           c.filter,
		Edge:             c.edge,
		PremultiplyAlpha: c.Premultiply,
		Workers:          1,
	})
	if err != nil {
		return nil, err
	}

	if c.Linear {
		out = fimg.LinearToGamma(out, c.Gamma)
	}
	return out, nil
}

func (c *CLICmd) save(img *fimg.Image, imgType, srcName string) error {
	outType, unsupOnly := strings.CutPrefix(c.Format, "unsup:")
	if (unsupOnly && (imgType != "webp")) || (outType == "same") {
		outType = imgType
	}

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)
	return imgio.Save(img.ToNRGBA(), c.Dest, destName, outType)
}
