package render

import (
	"image/color"
	"testing"
)

func TestVitalityPaletteEnds(t *testing.T) {
	p := VitalityPalette(8)
	if len(p) != 8 {
		t.Fatalf("palette has %d colours, expected 8", len(p))
	}
	if p[1] != (color.RGBA{R: 40, G: 140, B: 60, A: 255}) {
		t.Fatalf("newborn colour = %v", p[1])
	}
	if p[7] != (color.RGBA{R: 250, G: 240, B: 150, A: 255}) {
		t.Fatalf("oldest colour = %v", p[7])
	}
	if p[0] == p[1] {
		t.Fatal("dead and newborn cells share a colour")
	}
	if got := VitalityPalette(0); len(got) != 2 {
		t.Fatalf("short palette has %d colours, expected 2", len(got))
	}
}

func TestFillPaletteRGBAClamps(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}, {R: 3, A: 255}}
	cells := []int{0, 1, 2, 40}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 3}
	for i, r := range want {
		if buf[i*4] != r || buf[i*4+3] != 255 {
			t.Fatalf("pixel %d = %v, expected red %d", i, buf[i*4:i*4+4], r)
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []int{5}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected cleared buffer", i, b)
		}
	}
}
