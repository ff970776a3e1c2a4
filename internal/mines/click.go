package mines

import "log/slog"

type Button int

const (
	Left Button = iota
	Right
)

func (btn Button) String() string {
	if btn == Right {
		return "right"
	}
	return "left"
}

// Update describes what a single click did to the board.
type Update struct {
	Hit    bool
	At     Point
	Button Button
	// Revealed lists opened cells in order: the clicked one first, then
	// the flood fill.
	Revealed []Point
	Lost     bool
	Won      bool
}

// CellAt maps a world pixel to the cell under it.
func (b *Board) CellAt(x, y int) (Point, bool) {
	for row := range Rows {
		for col := range Cols {
			if b.cells[row][col].Contains(float64(x), float64(y)) {
				return Point{row, col}, true
			}
		}
	}
	return Point{}, false
}

// HandleClick routes a pointer press at world pixel (x, y) to the cell under
// it. Presses outside the grid and presses after the game ended are ignored.
func (b *Board) HandleClick(x, y int, right bool) Update {
	p, ok := b.CellAt(x, y)
	if !ok {
		return Update{Lost: b.lost, Won: b.won}
	}
	btn := Left
	if right {
		btn = Right
	}
	return b.ClickCell(p.Row, p.Col, btn)
}

// ClickCell is HandleClick for callers that already know the grid position.
func (b *Board) ClickCell(row, col int, btn Button) Update {
	upd := Update{At: Point{row, col}, Button: btn, Lost: b.lost, Won: b.won}
	if !InBounds(row, col) || b.Over() {
		return upd
	}
	upd.Hit = true

	c := b.cells[row][col]
	if btn == Right {
		c.RightClick()
		return upd
	}
	if c.Shown() {
		return upd
	}

	c.LeftClick()
	upd.Revealed = append(upd.Revealed, upd.At)
	upd.Revealed = append(upd.Revealed, b.revealNeighbours(row, col)...)
	b.checkLose(row, col)
	b.checkWin()

	Log.Debug("left click",
		slog.String("cell", upd.At.String()),
		slog.Int("revealed", len(upd.Revealed)),
		slog.Bool("lost", b.lost),
		slog.Bool("won", b.won),
	)

	upd.Lost, upd.Won = b.lost, b.won
	return upd
}
