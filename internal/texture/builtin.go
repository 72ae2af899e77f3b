package texture

import "oledcaster/pkg/core"

// Wall codes with a built-in texture.
const (
	CodeBrick uint8 = iota + 1
	CodeStone
	CodePlanks
	CodeGrate
	CodePanel
)

// Builtin synthesizes the default texture for codes 1 through 5. The same
// seed always produces the same texels.
func Builtin(size int, seed int64) (*Set, error) {
	set, err := NewSet(size)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(seed)
	gens := []struct {
		code uint8
		fn   func(int, *core.RNG) *Texture
	}{
		{CodeBrick, brick},
		{CodeStone, stone},
		{CodePlanks, planks},
		{CodeGrate, grate},
		{CodePanel, panel},
	}
	for _, g := range gens {
		if err := set.Put(g.code, g.fn(size, rng)); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func brick(size int, rng *core.RNG) *Texture {
	t := Flat(size, 0)
	course := max(size/4, 2)
	for row := 0; row < size; row++ {
		band := row / course
		offset := 0
		if band%2 == 1 {
			offset = size / 4
		}
		for col := 0; col < size; col++ {
			mortar := row%course == 0 || (col+offset)%(size/2) == 0
			if mortar {
				t.Set(col, row, rng.Jitter(40, 10))
				continue
			}
			t.Set(col, row, rng.Jitter(200, 30))
		}
	}
	return t
}

func stone(size int, rng *core.RNG) *Texture {
	t := Flat(size, 0)
	block := max(size/8, 1)
	for by := 0; by < size; by += block {
		for bx := 0; bx < size; bx += block {
			v := rng.Jitter(150, 70)
			for row := by; row < by+block; row++ {
				for col := bx; col < bx+block; col++ {
					if rng.Uint8n(24) == 0 {
						t.Set(col, row, rng.Uint8n(40))
						continue
					}
					t.Set(col, row, rng.Jitter(v, 12))
				}
			}
		}
	}
	return t
}

func planks(size int, rng *core.RNG) *Texture {
	t := Flat(size, 0)
	width := max(size/4, 2)
	for col := 0; col < size; col++ {
		base := rng.Jitter(170, 25)
		if col%width == 0 {
			base = 30
		}
		for row := 0; row < size; row++ {
			v := base
			if col%width != 0 && rng.IntN(9) == 0 {
				v = rng.Jitter(base, 60)
			}
			t.Set(col, row, v)
		}
	}
	return t
}

func grate(size int, rng *core.RNG) *Texture {
	t := Flat(size, 0)
	pitch := max(size/8, 2)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if row%pitch == 0 || col%pitch == 0 {
				base := uint8(230)
				if rng.Bool() {
					base = 180
				}
				t.Set(col, row, rng.Jitter(base, 20))
				continue
			}
			t.Set(col, row, rng.Jitter(20, 15))
		}
	}
	return t
}

func panel(size int, rng *core.RNG) *Texture {
	t := Flat(size, 0)
	edge := max(size/16, 1)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch {
			case row < edge || col < edge:
				t.Set(col, row, 250)
			case row >= size-edge || col >= size-edge:
				t.Set(col, row, 60)
			default:
				t.Set(col, row, rng.Jitter(140, 8))
			}
		}
	}
	return t
}
