package app

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"oledcaster/internal/raycast"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Level     string
	LevelOpts string
	Textures  string
	Scale     int
	TPS       int
	Seed      int64

	FOVDeg float64
	Clip   float64
	Dither bool
	Mirror bool
	FPS    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Level:  "courtyard",
		Scale:  6,
		TPS:    60,
		Seed:   42,
		FOVDeg: raycast.DefaultFOV * 180 / math.Pi,
		Clip:   raycast.DefaultClipDistance,
		Dither: true,
		FPS:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "level to load")
	fs.StringVar(&c.LevelOpts, "level-opts", c.LevelOpts, "comma separated key=value level options, e.g. w=8,h=6")
	fs.StringVar(&c.Textures, "textures", c.Textures, "directory of <code>.png or <code>.bmp wall textures overriding the builtin set")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for texture generation")
	fs.Float64Var(&c.FOVDeg, "fov-deg", c.FOVDeg, "horizontal field of view in degrees")
	fs.Float64Var(&c.Clip, "clip", c.Clip, "distance of the clip plane")
	fs.BoolVar(&c.Dither, "dither", c.Dither, "diffuse quantization error when packing")
	fs.BoolVar(&c.Mirror, "mirror", c.Mirror, "mirror map lookups along X")
	fs.BoolVar(&c.FPS, "fps", c.FPS, "draw the frame-time ruler")
}

// RenderConfig returns the renderer configuration described by c.
func (c *Config) RenderConfig() raycast.Config {
	rc := raycast.DefaultConfig()
	rc.FOV = c.FOVDeg * math.Pi / 180
	rc.ClipDistance = c.Clip
	rc.Dither = c.Dither
	rc.MirrorX = c.Mirror
	return rc
}

// LevelOptions parses LevelOpts into the map handed to the level factory.
func (c *Config) LevelOptions() (map[string]string, error) {
	opts := map[string]string{}
	if strings.TrimSpace(c.LevelOpts) == "" {
		return opts, nil
	}
	for _, pair := range strings.Split(c.LevelOpts, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("level option %q: want key=value", pair)
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return opts, nil
}
