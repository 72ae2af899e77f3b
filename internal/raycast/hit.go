package raycast

// Orientation tells which grid axis a ray crossed to reach its wall.
type Orientation uint8

const (
	// AxisX hits cross a vertical grid line (x changed on the last step).
	AxisX Orientation = iota
	// AxisY hits cross a horizontal grid line (y changed on the last step).
	AxisY
)

func (o Orientation) String() string {
	switch o {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Hit is the result of casting one screen column.
type Hit struct {
	Orientation Orientation

	// Distance is the wall distance projected onto the camera's forward axis,
	// in (0, gridWidth+gridHeight].
	Distance float64

	// TextureU is the hit position along the wall face, in [0, 1).
	TextureU float64

	WallCode     uint8
	CellX, CellY int
}
