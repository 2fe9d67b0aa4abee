package charts

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// plasma anchors, dark to bright.
var plasma = []drawing.Color{
	{R: 0x0d, G: 0x08, B: 0x87, A: 255},
	{R: 0x6a, G: 0x00, B: 0xa8, A: 255},
	{R: 0xb1, G: 0x2a, B: 0x90, A: 255},
	{R: 0xe1, G: 0x64, B: 0x62, A: 255},
	{R: 0xfc, G: 0xa6, B: 0x36, A: 255},
	{R: 0xf0, G: 0xf9, B: 0x21, A: 255},
}

// plasmaAt maps t in [0,1] onto the plasma scale.
func plasmaAt(t float64) drawing.Color {
	if math.IsNaN(t) || t <= 0 {
		return plasma[0]
	}
	if t >= 1 {
		return plasma[len(plasma)-1]
	}
	pos := t * float64(len(plasma)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := plasma[i], plasma[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
