package display

// FPSRulerWidth is the number of columns used by the FPS readout.
const FPSRulerWidth = 30

// DrawFPS writes the diagnostic frame-rate readout into the top two rows of
// fb: row 0 is a ruler with every fifth pixel lit, row 1 is a bar whose
// length is the whole frames per second implied by dt, capped to the ruler.
func DrawFPS(fb *FrameBuffer, dt float64) {
	fps := 0
	if dt > 0 {
		fps = int(1.0 / dt)
	}
	for x := 0; x < FPSRulerWidth; x++ {
		var tick, bar uint8
		if x%5 == 4 {
			tick = 255
		}
		if x < fps {
			bar = 255
		}
		fb.Set(x, 0, tick)
		fb.Set(x, 1, bar)
	}
}
