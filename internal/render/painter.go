//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from vitality values.
type GridPainter struct {
	size    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a size×size grid.
func NewGridPainter(size int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size), palette: palette}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []int, scale int) {
	if len(cells) != gp.size*gp.size {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
