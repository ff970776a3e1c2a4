// Package desktop renders a board in an ebiten window and feeds it mouse
// presses.
package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/sprites"
)

const statusHeight = 24

var colorBackdrop = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}

type Game struct {
	log    logrus.FieldLogger
	rnd    *rand.Rand
	layout mines.Layout

	textures     *sprites.Registry[*ebiten.Image]
	tiles, marks mines.TextureID

	board  *mines.Board
	games  int
	width  int
	height int
}

// New builds the window state and deals the first board. The layout origin
// is shifted down to leave room for the status line.
func New(log logrus.FieldLogger, rnd *rand.Rand, layout mines.Layout) *Game {
	textures, tiles, marks := newAtlas()
	layout.Origin.Y += statusHeight
	side := mines.Extent * layout.Scale

	g := &Game{
		log:      log,
		rnd:      rnd,
		layout:   layout,
		textures: textures,
		tiles:    tiles,
		marks:    marks,
		width:    int(layout.Origin.X*2 + side*mines.Cols),
		height:   int(layout.Origin.Y + statusHeight/2 + side*mines.Rows),
	}
	g.deal()
	return g
}

// WindowSize is the size the window should open with.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) deal() {
	g.board = mines.NewBoard(g.rnd,
		mines.WithLayout(g.layout),
		mines.WithTextures(g.tiles, g.marks),
	)
	g.games++
	g.log.WithField("game", g.games).Info("new board")
	g.log.Debug("mines:\n" + g.board.MineMap())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.deal()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return nil
	}
	x, y := ebiten.CursorPosition()
	g.click(x, y, right)
	return nil
}

func (g *Game) click(x, y int, right bool) {
	upd := g.board.HandleClick(x, y, right)
	if !upd.Hit {
		return
	}
	entry := g.log.WithFields(logrus.Fields{
		"game":     g.games,
		"cell":     upd.At.String(),
		"button":   upd.Button.String(),
		"revealed": len(upd.Revealed),
	})
	switch {
	case upd.Lost:
		entry.Info("stepped on a mine")
		g.board.RevealMines()
	case upd.Won:
		entry.Info("board cleared")
		g.board.RevealMines()
	default:
		entry.Debug("click")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	for _, c := range g.board.All() {
		showFg := sprites.Dress(c)
		g.drawLayer(screen, c.BgTexture(), c.BgRects)
		if showFg {
			g.drawLayer(screen, c.FgTexture(), c.FgRects)
		}
	}
	ebitenutil.DebugPrintAt(screen, g.status(), int(g.layout.Origin.X), 4)
}

func (g *Game) drawLayer(screen *ebiten.Image, id mines.TextureID, rects func() (mines.Rect, mines.Rect)) {
	sheet, ok := g.textures.Lookup(id)
	if !ok {
		return
	}
	src, dst := rects()
	frame := sheet.SubImage(image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	screen.DrawImage(frame, op)
}

func (g *Game) status() string {
	switch {
	case g.board.Lost():
		return "BOOM - press R for a new board"
	case g.board.Won():
		return "Cleared! press R for a new board"
	default:
		return fmt.Sprintf("mines left: %d", g.board.MinesLeft())
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
