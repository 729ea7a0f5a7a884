//go:build ebiten

package app

import (
	"time"

	"vitality/internal/board"
	"vitality/internal/core"
	"vitality/internal/render"
	"vitality/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth     = 220
	paletteSteps = 16
)

// Game adapts a board to the ebiten.Game interface. The board keeps running
// on its own scheduler; the game only reads snapshots and forwards input.
type Game struct {
	board   *board.Board
	painter *render.GridPainter
	hud     *ui.HUD

	scale int
	seed  int64
}

// New constructs a Game for the provided board.
func New(b *board.Board, params core.ParameterSnapshot, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		board:   b,
		painter: render.NewGridPainter(b.Size(), render.VitalityPalette(paletteSteps)),
		hud:     ui.NewHUD(b, params, hudWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reseeds the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Seed(seed)
}

// Update handles per-frame input. A scheduler failure ends the game with
// that error.
func (g *Game) Update() error {
	if err := g.board.Err(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.board.SetRunning(!g.board.Running())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.board.Step(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if idx, ok := g.cellAt(ebiten.CursorPosition()); ok {
			if err := g.board.Toggle(idx); err != nil {
				return err
			}
		}
	}

	return g.hud.Update(g.boardPixels())
}

// cellAt maps screen coordinates to a cell index.
func (g *Game) cellAt(x, y int) (int, bool) {
	size := g.board.Size()
	cx, cy := x/g.scale, y/g.scale
	if x < 0 || y < 0 || cx >= size || cy >= size {
		return 0, false
	}
	return cy*size + cx, true
}

func (g *Game) boardPixels() int { return g.board.Size() * g.scale }

// Draw renders the current board snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Snapshot(), g.scale)
	g.hud.Draw(screen, g.boardPixels(), g.boardPixels())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardPixels() + g.hud.Width(), g.boardPixels()
}
