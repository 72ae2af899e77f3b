//go:build !ebiten

package ui

import "oledcaster/internal/core"

// Tunable is what the HUD needs from the renderer.
type Tunable interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Tunable, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
