//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"vitality/internal/board"
	"vitality/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineHeight     = 18
	buttonHeight   = 22
	buttonGap      = 8
	buttonsTop     = panelPadding + headerBaseline + 12
	linesTop       = buttonsTop + buttonHeight + 24
)

type hudButton struct {
	rect   image.Rectangle
	label  func(board.Frame) string
	action func() error
}

// HUD renders the control panel to the right of the board: run/stop, step
// and clear buttons followed by the board counters.
type HUD struct {
	board      *board.Board
	params     core.ParameterSnapshot
	width      int
	panel      *ebiten.Image
	lastHeight int

	buttons      []hudButton
	panelOffsetX int
	frame        board.Frame

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided board and panel width.
func NewHUD(b *board.Board, params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{board: b, params: params, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutButtons()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached frame and handles button clicks.
func (h *HUD) Update(panelOffsetX int) error {
	if h == nil {
		return nil
	}
	h.panelOffsetX = panelOffsetX
	h.frame = h.board.Frame()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return nil
	}
	px := mx - h.panelOffsetX
	for _, btn := range h.buttons {
		if pointInRect(px, my, btn.rect) {
			return btn.action()
		}
	}
	return nil
}

// Draw paints the HUD panel anchored to the right edge of the board view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Vitality", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, btn := range h.buttons {
		h.drawButton(btn.rect, btn.label(h.frame))
	}
	for i, line := range statusLines(h.frame, h.params) {
		y := linesTop + i*lineHeight
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	w := (h.width - 2*panelPadding - 2*buttonGap) / 3
	rect := func(i int) image.Rectangle {
		x := panelPadding + i*(w+buttonGap)
		return image.Rect(x, buttonsTop, x+w, buttonsTop+buttonHeight)
	}
	h.buttons = []hudButton{
		{
			rect:  rect(0),
			label: func(f board.Frame) string { return runLabel(f.Running) },
			action: func() error {
				h.board.SetRunning(!h.board.Running())
				return nil
			},
		},
		{
			rect:   rect(1),
			label:  func(board.Frame) string { return "Step" },
			action: h.board.Step,
		},
		{
			rect:  rect(2),
			label: func(board.Frame) string { return "Clear" },
			action: func() error {
				h.board.Clear()
				return nil
			},
		},
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
