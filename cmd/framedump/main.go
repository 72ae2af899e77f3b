// Command framedump renders the default camera tour of a level headlessly
// and writes the packed panel frames as images.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"oledcaster/internal/app"
	_ "oledcaster/internal/levels"
	"oledcaster/internal/player"
	"oledcaster/internal/render"
	"oledcaster/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "frames", "output directory")
	format := flag.String("format", "png", "image format: png or bmp")
	maxFrames := flag.Int("frames", 0, "stop after this many frames (0 = whole tour)")
	every := flag.Int("every", 1, "write every n-th frame")
	dt := flag.Float64("dt", 1.0/30, "simulated seconds per frame")
	intensity := flag.Bool("intensity", false, "write the 8-bit intensity buffer instead of the panel")
	var overrides kvList
	flag.Var(&overrides, "set", "renderer parameter override in key=value form (repeatable)")
	flag.Parse()

	if *format != "png" && *format != "bmp" {
		logger.Log.Fatalf("unknown format %q", *format)
	}
	if *every < 1 {
		*every = 1
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		logger.Log.Fatalf("start session: %v", err)
	}
	for _, kv := range overrides {
		app.ApplyOverride(session.Renderer, kv)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Log.Fatalf("create %s: %v", *out, err)
	}

	tour := player.DefaultTour(session.Level)
	var (
		written  int
		rendered time.Duration
	)
	for frame := 0; *maxFrames == 0 || frame < *maxFrames; frame++ {
		done := session.Follow(tour, *dt)

		start := time.Now()
		session.Draw(*dt)
		rendered += time.Since(start)

		if frame%*every == 0 {
			var img image.Image = render.PanelImage(session.Panel)
			if *intensity {
				img = render.IntensityImage(session.Frame)
			}
			name := filepath.Join(*out, fmt.Sprintf("frame_%05d.%s", frame, *format))
			if err := writeImage(name, img, *format); err != nil {
				logger.Log.Fatalf("write %s: %v", name, err)
			}
			written++
		}
		if done {
			break
		}
	}

	frames := session.Frames()
	perFrame := time.Duration(0)
	if frames > 0 {
		perFrame = rendered / time.Duration(frames)
	}
	logger.Log.WithFields(logrus.Fields{
		"frames":    frames,
		"written":   written,
		"per_frame": perFrame,
		"out":       *out,
	}).Info("tour rendered")
}

func writeImage(name string, img image.Image, format string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	switch format {
	case "bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
