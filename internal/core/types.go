package core

import (
	"errors"
	"fmt"
	"sort"

	"oledcaster/pkg/geom"
)

// ErrUnknownLevel is returned by LoadLevel for unregistered names.
var ErrUnknownLevel = errors.New("unknown level")

// Size describes the dimensions of a grid or panel.
type Size struct {
	W int
	H int
}

// Level bundles a grid with the pose a player starts from.
type Level struct {
	Name   string
	Grid   *GridMap
	Spawn  geom.Vector2
	Facing geom.Vector2
}

// Factory constructs a Level using an optional configuration map.
type Factory func(cfg map[string]string) (*Level, error)

var levels = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// Levels exposes the registry of available level factories.
func Levels() map[string]Factory {
	return levels
}

// LevelNames returns the registered level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadLevel builds the named level.
func LoadLevel(name string, cfg map[string]string) (*Level, error) {
	f, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q: %w", name, ErrUnknownLevel)
	}
	return f(cfg)
}
