package render

import (
	"image"
	"image/color"

	"oledcaster/internal/display"
)

// fillPanelRGBA converts the page-major 1-bit panel buffer into row-major
// RGBA pixels in buf.
func fillPanelRGBA(buf []byte, pb *display.PhysicalBuffer, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < pb.H; y++ {
		for x := 0; x < pb.W; x++ {
			base := (y*pb.W + x) * 4
			if base+3 >= len(buf) {
				return
			}
			if pb.Pixel(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// fillIntensityRGBA converts 8-bit intensities into RGBA pixels scaled by
// tint, so the pre-quantization image can be shown in the panel's colour.
func fillIntensityRGBA(buf []byte, pix []uint8, tint color.RGBA) {
	for i, v := range pix {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = uint8(uint16(v) * uint16(tint.R) / 255)
		buf[base+1] = uint8(uint16(v) * uint16(tint.G) / 255)
		buf[base+2] = uint8(uint16(v) * uint16(tint.B) / 255)
		buf[base+3] = 255
	}
}

// PanelImage unpacks pb into a grayscale image: lit pixels are 255, unlit 0.
func PanelImage(pb *display.PhysicalBuffer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, pb.W, pb.H))
	for y := 0; y < pb.H; y++ {
		for x := 0; x < pb.W; x++ {
			if pb.Pixel(x, y) {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

// IntensityImage copies fb into a grayscale image.
func IntensityImage(fb *display.FrameBuffer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.W, fb.H))
	for y := 0; y < fb.H; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+fb.W], fb.Pix[y*fb.W:(y+1)*fb.W])
	}
	return img
}
