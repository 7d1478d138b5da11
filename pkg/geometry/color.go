package geometry

// Color is a linear RGB color with components in [0, 1]
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFrom255 converts 0-255 channel values to a Color
func ColorFrom255(r, g, b float64) Color {
	return Color{R: r / 255.0, G: g / 255.0, B: b / 255.0}
}
