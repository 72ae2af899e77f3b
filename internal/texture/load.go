package texture

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
)

// LoadDir replaces textures in set with images named <code>.png or
// <code>.bmp found in dir, where code is a wall code from 1 to 255. Other
// files are ignored. It returns the codes that were loaded.
func LoadDir(set *Set, dir string) ([]uint8, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("texture dir: %w", err)
	}
	var loaded []uint8
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		code, ok := wallCode(e.Name())
		if !ok {
			continue
		}
		tex, err := loadFile(filepath.Join(dir, e.Name()), set.Size())
		if err != nil {
			return loaded, err
		}
		if err := set.Put(code, tex); err != nil {
			return loaded, err
		}
		loaded = append(loaded, code)
	}
	return loaded, nil
}

func wallCode(name string) (uint8, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".png" && ext != ".bmp" {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSuffix(name, filepath.Ext(name)), 10, 8)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint8(v), true
}

func loadFile(path string, size int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img, size)
}
