package render

import "image/color"

// VitalityPalette returns n colours: index 0 is the dead colour and higher
// indices ramp from a dim green for newborn cells towards pale yellow for
// long-lived ones.
func VitalityPalette(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	palette := make([]color.RGBA, n)
	palette[0] = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	steps := n - 1
	for i := 1; i < n; i++ {
		t := float64(i-1) / float64(max(steps-1, 1))
		palette[i] = color.RGBA{
			R: lerp(40, 250, t),
			G: lerp(140, 240, t),
			B: lerp(60, 150, t),
			A: 255,
		}
	}
	return palette
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// fillPaletteRGBA converts vitality values into RGBA pixels using a palette.
// Values past the end of the palette use its last colour. When the palette
// is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := c
		if idx > last {
			idx = last
		}
		if idx < 0 {
			idx = 0
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
