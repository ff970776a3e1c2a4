// Package terminal plays the board in a terminal. Every board cell takes
// CellW x CellH character cells and mouse presses are mapped back into the
// board's pixel space, so the board sees the same HandleClick calls a
// windowed frontend would make.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/sprites"
)

const (
	CellW = 4
	CellH = 2

	// board top-left in character cells
	OffsetX = 2
	OffsetY = 2
)

// BoardLayout places the board so that a character cell covers a whole
// number of board pixels.
var BoardLayout = mines.Layout{Origin: mines.Vec2{X: 0, Y: 0}, Scale: 1}

// ToPixel maps a character cell to the board pixel at its center. ok is
// false for cells left of or above the board.
func ToPixel(cx, cy int) (x, y int, ok bool) {
	if cx < OffsetX || cy < OffsetY {
		return 0, 0, false
	}
	pw := mines.Extent * BoardLayout.Scale / CellW
	ph := mines.Extent * BoardLayout.Scale / CellH
	x = int(BoardLayout.Origin.X + pw*float64(cx-OffsetX) + pw/2)
	y = int(BoardLayout.Origin.Y + ph*float64(cy-OffsetY) + ph/2)
	return x, y, true
}

var numberColors = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorWhite,
	tcell.ColorGray,
}

var (
	styleHidden = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorSilver)
	styleOpened = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// glyph picks the character and style drawn in the middle of a cell and
// the filler for the rest of it.
func glyph(c *mines.Cell) (r, fill rune, style tcell.Style) {
	bg, fg := sprites.Pick(c)
	style, fill = styleOpened, ' '
	if bg == sprites.Hidden {
		style, fill = styleHidden, '░'
	}
	switch fg {
	case sprites.Flag:
		return 'F', fill, style.Foreground(tcell.ColorRed).Bold(true)
	case sprites.Mine:
		return '*', fill, style.Foreground(tcell.ColorRed).Bold(true)
	case sprites.Blank:
		return fill, fill, style
	default:
		n := fg.Number()
		return rune('0' + n), fill, style.Foreground(numberColors[n]).Bold(true)
	}
}

// Render draws the whole board plus a status line.
func Render(s *Screen, b *mines.Board, games int) {
	s.Clear()
	for p, c := range b.All() {
		r, fill, style := glyph(c)
		x0, y0 := OffsetX+p.Col*CellW, OffsetY+p.Row*CellH
		for dy := range CellH {
			for dx := range CellW {
				ch := fill
				if dy == CellH/2 && dx == CellW/2 {
					ch = r
				}
				s.SetContent(x0+dx, y0+dy, ch, style)
			}
		}
	}
	s.Print(OffsetX, 0, status(b, games), styleText)
	s.Print(OffsetX, OffsetY+mines.Rows*CellH+1, "left click open · right click flag · r new board · q quit", styleText)
	s.Show()
}

func status(b *mines.Board, games int) string {
	switch {
	case b.Lost():
		return fmt.Sprintf("game %d: BOOM", games)
	case b.Won():
		return fmt.Sprintf("game %d: cleared!", games)
	default:
		return fmt.Sprintf("game %d: mines left %d", games, b.MinesLeft())
	}
}
