package display

import (
	"errors"
	"slices"
	"testing"

	"oledcaster/internal/core"
)

func newBuffers(t *testing.T, w, h int) (*FrameBuffer, *PhysicalBuffer) {
	t.Helper()
	fb, err := NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	pb, err := NewPhysicalBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPhysicalBuffer: %v", err)
	}
	return fb, pb
}

func TestPhysicalBufferLayout(t *testing.T) {
	_, pb := newBuffers(t, 128, 64)
	if len(pb.Bytes) != 128*8 {
		t.Fatalf("buffer size = %d, want 1024", len(pb.Bytes))
	}
	pb.SetPixel(5, 0)
	pb.SetPixel(5, 7)
	pb.SetPixel(6, 9)
	pb.SetPixel(127, 63)
	if pb.Bytes[5] != 0x81 {
		t.Fatalf("byte 5 = %#x, want 0x81", pb.Bytes[5])
	}
	if pb.Bytes[128+6] != 0x02 {
		t.Fatalf("byte 134 = %#x, want 0x02", pb.Bytes[134])
	}
	if pb.Bytes[7*128+127] != 0x80 {
		t.Fatalf("last byte = %#x, want 0x80", pb.Bytes[1023])
	}
	pb.SetPixel(128, 0)
	pb.SetPixel(0, 64)
	pb.SetPixel(-1, -1)
	if pb.LitCount() != 4 {
		t.Fatalf("out-of-range writes must be skipped, lit = %d", pb.LitCount())
	}
}

func TestPhysicalBufferPartialPage(t *testing.T) {
	_, pb := newBuffers(t, 4, 10)
	if pb.Pages != 2 || len(pb.Bytes) != 8 {
		t.Fatalf("pages = %d bytes = %d, want 2 and 8", pb.Pages, len(pb.Bytes))
	}
}

func TestBuffersRejectBadDimensions(t *testing.T) {
	if _, err := NewFrameBuffer(0, 8); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("frame buffer: err = %v", err)
	}
	if _, err := NewPhysicalBuffer(8, -1); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("physical buffer: err = %v", err)
	}
}

func TestThresholdCutover(t *testing.T) {
	fb, pb := newBuffers(t, 4, 1)
	copy(fb.Pix, []uint8{0, 127, 128, 255})
	Pack(fb, pb, false)
	want := []bool{false, false, true, true}
	for x, w := range want {
		if pb.Pixel(x, 0) != w {
			t.Errorf("intensity %d lit = %v, want %v", fb.Pix[x], pb.Pixel(x, 0), w)
		}
	}
}

func TestPackClearsPreviousFrame(t *testing.T) {
	fb, pb := newBuffers(t, 8, 8)
	fb.Fill(255)
	Pack(fb, pb, false)
	fb.Clear()
	Pack(fb, pb, false)
	if pb.LitCount() != 0 {
		t.Fatalf("stale bits survived: %d lit", pb.LitCount())
	}
}

func TestDiffusionWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, tap := range floydSteinberg {
		sum += tap.weight
		if tap.dy < 0 || (tap.dy == 0 && tap.dx <= 0) {
			t.Errorf("tap %+v points at an already visited pixel", tap)
		}
	}
	if sum != 1 {
		t.Fatalf("weights sum to %v, want 1", sum)
	}
}

func TestMidGrayScenario(t *testing.T) {
	fb, pb := newBuffers(t, 128, 64)
	fb.Fill(100)
	Pack(fb, pb, false)
	if pb.LitCount() != 0 {
		t.Fatalf("flat threshold lit %d pixels of a 100 gray frame", pb.LitCount())
	}
	for _, v := range fb.Pix {
		if v != 100 {
			t.Fatal("flat threshold must not modify the frame buffer")
		}
	}

	fb.Fill(100)
	Pack(fb, pb, true)
	lit := pb.LitCount()
	total := 128 * 64
	if lit == 0 || lit == total {
		t.Fatalf("dithered 100 gray produced a degenerate pattern: %d/%d lit", lit, total)
	}
	// 100/255 of the pixels should be lit, give or take edge losses.
	ratio := float64(lit) / float64(total)
	if ratio < 0.33 || ratio > 0.45 {
		t.Fatalf("lit ratio %.3f far from 100/255", ratio)
	}
}

func TestDitherDoesNotCarryAcrossFrames(t *testing.T) {
	fb, pb := newBuffers(t, 32, 16)
	var frames [][]byte
	for i := 0; i < 3; i++ {
		fb.Fill(77)
		Pack(fb, pb, true)
		frames = append(frames, slices.Clone(pb.Bytes))
	}
	if !slices.Equal(frames[0], frames[1]) || !slices.Equal(frames[1], frames[2]) {
		t.Fatal("identical input frames must pack identically")
	}
}

func TestDitherSaturates(t *testing.T) {
	fb, pb := newBuffers(t, 2, 2)
	copy(fb.Pix, []uint8{127, 250, 250, 250})
	Pack(fb, pb, true)
	// 127 is unlit; 7/16 of its error pushes 250 past 255 and must clamp.
	if fb.Pix[1] != 255 {
		t.Fatalf("right neighbour = %d, want saturated 255", fb.Pix[1])
	}
	fb.Pix = []uint8{128, 3, 3, 3}
	Pack(fb, pb, true)
	if fb.Pix[1] != 0 {
		t.Fatalf("right neighbour = %d, want saturated 0", fb.Pix[1])
	}
}

func TestDrawFPS(t *testing.T) {
	fb, _ := newBuffers(t, 40, 4)
	fb.Fill(9)
	DrawFPS(fb, 0.1)
	for x := 0; x < FPSRulerWidth; x++ {
		wantTick := uint8(0)
		if x%5 == 4 {
			wantTick = 255
		}
		if fb.At(x, 0) != wantTick {
			t.Fatalf("ruler x=%d = %d, want %d", x, fb.At(x, 0), wantTick)
		}
		wantBar := uint8(0)
		if x < 10 {
			wantBar = 255
		}
		if fb.At(x, 1) != wantBar {
			t.Fatalf("bar x=%d = %d, want %d", x, fb.At(x, 1), wantBar)
		}
	}
	if fb.At(FPSRulerWidth, 0) != 9 || fb.At(0, 2) != 9 {
		t.Fatal("overlay must not touch pixels outside its area")
	}
	DrawFPS(fb, 0)
	if fb.At(0, 1) != 0 {
		t.Fatal("zero delta reports zero fps")
	}
}
