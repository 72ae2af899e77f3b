package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	switch filepath.Ext(path) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirReplacesCodes(t *testing.T) {
	dir := t.TempDir()
	white := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range white.Pix {
		white.Pix[i] = 255
	}
	gray := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range gray.Pix {
		gray.Pix[i] = 90
	}
	writeImage(t, filepath.Join(dir, "2.png"), white)
	writeImage(t, filepath.Join(dir, "7.bmp"), gray)
	writeImage(t, filepath.Join(dir, "0.png"), white)
	writeImage(t, filepath.Join(dir, "sky.png"), white)

	set, err := Builtin(DefaultSize, 1)
	if err != nil {
		t.Fatal(err)
	}
	brickBefore := slices.Clone(set.Lookup(CodeBrick).Pix)

	loaded, err := LoadDir(set, dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	slices.Sort(loaded)
	if !slices.Equal(loaded, []uint8{2, 7}) {
		t.Fatalf("loaded = %v, want [2 7]", loaded)
	}
	if set.Lookup(2).At(31, 31) != 255 {
		t.Fatalf("code 2 texel = %d, want 255", set.Lookup(2).At(31, 31))
	}
	if set.Lookup(7).At(0, 0) != 90 {
		t.Fatalf("code 7 texel = %d, want 90", set.Lookup(7).At(0, 0))
	}
	if !slices.Equal(set.Lookup(CodeBrick).Pix, brickBefore) {
		t.Fatal("codes without a file keep their builtin texture")
	}
}

func TestLoadDirMissing(t *testing.T) {
	set, _ := NewSet(DefaultSize)
	if _, err := LoadDir(set, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestFromImageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.Set(0, 0, color.RGBA{A: 255})
	tex, err := FromImage(img, 8)
	if err != nil {
		t.Fatal(err)
	}
	if tex.At(0, 0) != 0 || tex.At(1, 1) != 0 || tex.At(2, 2) != 255 {
		t.Fatalf("upscaled texels = %d %d %d", tex.At(0, 0), tex.At(1, 1), tex.At(2, 2))
	}
}
