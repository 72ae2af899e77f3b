package display

import "math"

// Threshold is the lowest intensity that lights a panel pixel.
const Threshold = 128

// diffusionTap is one Floyd-Steinberg neighbour and its share of the error.
type diffusionTap struct {
	dx, dy int
	weight float64
}

// floydSteinberg distributes quantization error to the not yet visited
// neighbours of a pixel scanned left to right, top to bottom. The weights sum
// to 1.
var floydSteinberg = [...]diffusionTap{
	{dx: 1, dy: 0, weight: 7.0 / 16.0},
	{dx: -1, dy: 1, weight: 3.0 / 16.0},
	{dx: 0, dy: 1, weight: 5.0 / 16.0},
	{dx: 1, dy: 1, weight: 1.0 / 16.0},
}

// Pack rebuilds pb from fb. Pixels at or above Threshold are lit.
//
// With dither set, each pixel's quantization error is diffused into fb itself
// before its neighbours are visited, so fb holds the diffused image when Pack
// returns. Without dither fb is left untouched.
func Pack(fb *FrameBuffer, pb *PhysicalBuffer, dither bool) {
	pb.Clear()
	w, h := min(fb.W, pb.W), min(fb.H, pb.H)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := fb.Pix[fb.Index(x, y)]
			lit := v >= Threshold
			if lit {
				pb.SetPixel(x, y)
			}
			if !dither {
				continue
			}
			e := float64(v)
			if lit {
				e -= 255
			}
			if e == 0 {
				continue
			}
			diffuse(fb, x, y, e)
		}
	}
}

func diffuse(fb *FrameBuffer, x, y int, e float64) {
	for _, tap := range floydSteinberg {
		nx, ny := x+tap.dx, y+tap.dy
		if !fb.InBounds(nx, ny) {
			continue
		}
		i := fb.Index(nx, ny)
		fb.Pix[i] = saturate(float64(fb.Pix[i]) + e*tap.weight)
	}
}

func saturate(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
