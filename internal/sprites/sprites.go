// Package sprites decides how a cell looks. It owns the texture registry
// renderers draw from and picks the frame for every cell state; the board
// itself only ever stores the opaque handles handed out here.
package sprites

import "github.com/vancomm/minesweeper-board/internal/mines"

// Sheet names renderers register their textures under.
const (
	TilesSheet = "tiles"
	MarksSheet = "marks"
)

type Kind int

const (
	Blank Kind = iota // no foreground
	Hidden
	Opened
	Flag
	Mine
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
)

// Kinds lists every drawable kind in sheet order.
var Kinds = []Kind{
	Hidden, Opened, Flag, Mine,
	Number1, Number2, Number3, Number4, Number5, Number6, Number7, Number8,
}

func NumberKind(n int) Kind {
	if n < 1 || n > 8 {
		return Blank
	}
	return Number1 + Kind(n-1)
}

// Number returns the digit drawn by a number kind and 0 for the rest.
func (k Kind) Number() int {
	if k < Number1 || k > Number8 {
		return 0
	}
	return int(k-Number1) + 1
}

// Frame is where a kind sits on a sheet laid out as one row of
// mines.Extent-sized squares in Kinds order.
func Frame(k Kind) mines.Rect {
	for i, kk := range Kinds {
		if kk == k {
			return mines.Rect{X: i * mines.Extent, Y: 0, W: mines.Extent, H: mines.Extent}
		}
	}
	return mines.Rect{}
}

// SheetSize is the pixel size of a sheet holding every kind.
func SheetSize() (w, h int) {
	return len(Kinds) * mines.Extent, mines.Extent
}

// Pick chooses the background and foreground kinds for a cell.
func Pick(c *mines.Cell) (bg, fg Kind) {
	if !c.Revealed() {
		if c.Flagged() {
			return Hidden, Flag
		}
		return Hidden, Blank
	}
	switch v := c.Value(); v {
	case mines.Mine:
		return Opened, Mine
	case mines.None:
		return Opened, Blank
	default:
		return Opened, NumberKind(v.Count())
	}
}

// Dress points the cell's frames at the kinds Pick chose and reports
// whether the foreground should be drawn at all.
func Dress(c *mines.Cell) (showFg bool) {
	bg, fg := Pick(c)
	c.SetBgFrame(Frame(bg))
	if fg == Blank {
		return false
	}
	c.SetFgFrame(Frame(fg))
	return true
}
