package raycast

import (
	"fmt"
	"math"
	"strconv"

	"oledcaster/internal/core"
	"oledcaster/internal/display"
	"oledcaster/internal/texture"
	"oledcaster/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Parameter keys understood by SetFloatParameter and SetBoolParameter.
const (
	ParamFOV    = "fov_deg"
	ParamClip   = "clip"
	ParamDither = "dither"
)

// Renderer draws one frame per call into caller-owned buffers. It holds no
// process-wide state; the camera is mutated between calls only.
type Renderer struct {
	cfg      Config
	grid     *core.GridMap
	caster   *Caster
	textures *texture.Set
	camera   *Camera

	hits  []Hit
	spans []Span
	frame uint64
}

// NewRenderer builds a renderer for grid using textures. The texture set
// size must match cfg.TextureSize.
func NewRenderer(cfg Config, grid *core.GridMap, textures *texture.Set) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil {
		return nil, fmt.Errorf("renderer without grid: %w", core.ErrInvalidDimensions)
	}
	if textures == nil || textures.Size() != cfg.TextureSize {
		return nil, fmt.Errorf("renderer texture size %d: %w", cfg.TextureSize, texture.ErrTextureSize)
	}
	cam := NewCamera()
	cam.SetFOV(cfg.FOV)
	cam.SetClipDistance(cfg.ClipDistance)
	return &Renderer{
		cfg:      cfg,
		grid:     grid,
		caster:   NewCaster(grid, cfg.MirrorX),
		textures: textures,
		camera:   cam,
		hits:     make([]Hit, cfg.Width),
		spans:    make([]Span, cfg.Width),
	}, nil
}

// Camera returns the camera used by Render. Update it before each call.
func (r *Renderer) Camera() *Camera { return r.camera }

// Grid returns the map being rendered.
func (r *Renderer) Grid() *core.GridMap { return r.grid }

// Size returns the display dimensions.
func (r *Renderer) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Dither reports whether Present diffuses quantization error.
func (r *Renderer) Dither() bool { return r.cfg.Dither }

// SetDither switches between flat and dithered thresholding.
func (r *Renderer) SetDither(on bool) { r.cfg.Dither = on }

// Hits returns the per-column hits of the last rendered frame. The slice is
// reused by the next Render call.
func (r *Renderer) Hits() []Hit { return r.hits }

// NewBuffers allocates an intensity and a physical buffer sized for the
// display.
func (r *Renderer) NewBuffers() (*display.FrameBuffer, *display.PhysicalBuffer, error) {
	fb, err := display.NewFrameBuffer(r.cfg.Width, r.cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	pb, err := display.NewPhysicalBuffer(r.cfg.Width, r.cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	return fb, pb, nil
}

// Render clears fb and draws every screen column. Floor and ceiling stay
// black.
//
// A wall that fills the whole column is sampled on every second column only
// and copied into its right-hand neighbour when that neighbour is also
// full-height. Which column of each pair is sampled alternates from frame to
// frame; a column whose partner did not fill it is sampled itself.
func (r *Renderer) Render(fb *display.FrameBuffer) {
	fb.Clear()
	w, h := min(r.cfg.Width, fb.W), min(r.cfg.Height, fb.H)
	parity := int(r.frame & 1)
	r.frame++

	for x := 0; x < w; x++ {
		r.hits[x] = r.caster.CastColumn(r.camera, x, w)
		r.spans[x] = ProjectSpan(r.hits[x].Distance, h)
	}

	filled := -1
	for x := 0; x < w; x++ {
		hit, span := r.hits[x], r.spans[x]
		tex := r.textures.Lookup(hit.WallCode)
		col := TextureColumn(hit.TextureU, tex.Size)
		shade := Shade(hit)

		if !span.Overscan {
			drawTextured(fb, x, span, tex, col, shade)
			continue
		}
		if filled == x {
			continue
		}
		dup := x%2 == parity && x+1 < w && r.spans[x+1].Overscan
		drawOverscan(fb, x, span, tex, col, shade, dup)
		if dup {
			filled = x + 1
		}
	}
}

// Present packs fb into pb using the configured dithering mode.
func (r *Renderer) Present(fb *display.FrameBuffer, pb *display.PhysicalBuffer) {
	display.Pack(fb, pb, r.cfg.Dither)
}

// Parameters reports the tunable render settings.
func (r *Renderer) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Projection",
		Params: []core.Parameter{
			{Key: ParamFOV, Label: "FOV (deg)", Type: core.ParamTypeFloat, Value: formatFloat(r.camera.FOV() * 180 / math.Pi), Description: "horizontal field of view"},
			{Key: ParamClip, Label: "Clip dist", Type: core.ParamTypeFloat, Value: formatFloat(r.camera.ClipDistance()), Description: "distance to the projection plane"},
		},
	}, {
		Name: "Panel",
		Params: []core.Parameter{
			{Key: ParamDither, Label: "Dither", Type: core.ParamTypeBool, Value: strconv.FormatBool(r.cfg.Dither), Description: "Floyd-Steinberg error diffusion"},
		},
	}}}
}

// ParameterControls lists the settings a HUD may adjust.
func (r *Renderer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamFOV, Label: "FOV (deg)", Type: core.ParamTypeFloat, Step: 5, Min: 10, Max: 170, HasMin: true, HasMax: true},
		{Key: ParamClip, Label: "Clip dist", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 4, HasMin: true, HasMax: true},
		{Key: ParamDither, Label: "Dither", Type: core.ParamTypeBool},
	}
}

// SetFloatParameter updates a float setting by key.
func (r *Renderer) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamFOV:
		r.camera.SetFOV(value * math.Pi / 180)
		r.cfg.FOV = r.camera.FOV()
	case ParamClip:
		r.camera.SetClipDistance(value)
		r.cfg.ClipDistance = r.camera.ClipDistance()
	default:
		return false
	}
	logger.Log.WithFields(logrus.Fields{"param": key, "value": value}).Debug("render parameter changed")
	return true
}

// SetBoolParameter updates a boolean setting by key.
func (r *Renderer) SetBoolParameter(key string, value bool) bool {
	if key != ParamDither {
		return false
	}
	r.cfg.Dither = value
	logger.Log.WithFields(logrus.Fields{"param": key, "value": value}).Debug("render parameter changed")
	return true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
