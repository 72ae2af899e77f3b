// Package levels registers the built-in grid maps with core.Register.
package levels

import (
	"fmt"
	"strconv"

	"oledcaster/internal/core"
	"oledcaster/pkg/geom"
)

var courtyard = [][]uint8{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 0, 0, 0, 0, 3, 0, 3, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 2, 0, 2, 2, 0, 0, 0, 0, 3, 0, 3, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 0, 0, 0, 5, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Courtyard returns the 24x24 walled courtyard with the player in the middle
// facing +y.
func Courtyard() (*core.Level, error) {
	grid, err := core.GridFromRows(courtyard)
	if err != nil {
		return nil, err
	}
	return &core.Level{
		Name:   "courtyard",
		Grid:   grid,
		Spawn:  geom.V2(12, 12),
		Facing: geom.V2(0, 1),
	}, nil
}

// RoomConfig sizes the walled room level.
type RoomConfig struct {
	Width  int
	Height int
	Code   uint8
}

// DefaultRoomConfig returns a 3x3 room: one open cell inside a solid border.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{Width: 3, Height: 3, Code: 1}
}

// RoomConfigFromMap populates the config from a string map (flag-style
// key/value pairs). Unparseable or out-of-range values keep their defaults.
func RoomConfigFromMap(cfg map[string]string) RoomConfig {
	c := DefaultRoomConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["code"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil && parsed > 0 {
			c.Code = uint8(parsed)
		}
	}
	return c
}

// Room returns a rectangular room walled with cfg.Code. The player starts in
// the centre of cell (1, 1) facing +x.
func Room(cfg RoomConfig) (*core.Level, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("room %dx%d: %w", cfg.Width, cfg.Height, core.ErrInvalidDimensions)
	}
	cells := make([]uint8, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if x == 0 || y == 0 || x == cfg.Width-1 || y == cfg.Height-1 {
				cells[y*cfg.Width+x] = cfg.Code
			}
		}
	}
	grid, err := core.NewGridMap(cfg.Width, cfg.Height, cells)
	if err != nil {
		return nil, err
	}
	return &core.Level{
		Name:   "room",
		Grid:   grid,
		Spawn:  geom.V2(1.5, 1.5),
		Facing: geom.V2(1, 0),
	}, nil
}

func init() {
	core.Register("courtyard", func(map[string]string) (*core.Level, error) {
		return Courtyard()
	})
	core.Register("room", func(cfg map[string]string) (*core.Level, error) {
		return Room(RoomConfigFromMap(cfg))
	})
}
