//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"oledcaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Tunable is what the HUD needs from the renderer.
type Tunable interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
}

// HUD renders the parameter panel to the right of the panel view.
type HUD struct {
	target Tunable
	width  int
	height int
	panel  *ebiten.Image

	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	boolSetter   core.BoolParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD of the given panel width for target.
func NewHUD(target Tunable, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := target.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if setter, ok := target.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the displayed values and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues(h.target.Parameters())
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues(snapshot core.ParameterSnapshot) {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = "off"
			if parsed {
				state.value = "on"
			}
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		target, ok := nextFloat(state, direction)
		if !ok {
			return
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	case core.ParamTypeBool:
		if h.boolSetter == nil {
			return
		}
		target := direction > 0
		if target == state.boolValue {
			return
		}
		if h.boolSetter.SetBoolParameter(state.control.Key, target) {
			state.boolValue = target
		}
	}
}

// nextFloat returns the value one step away in direction, clamped to the
// control's bounds, and whether it differs from the current value.
func nextFloat(state *hudControlState, direction int) (float64, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	return target, math.Abs(target-state.floatValue) >= 1e-9
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		_, ok := nextFloat(state, direction)
		return ok
	case core.ParamTypeBool:
		return h.boolSetter != nil && (direction > 0) != state.boolValue
	default:
		return false
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Renderer", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch {
	case ctrl.Step > 0 && ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step > 0 && ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
