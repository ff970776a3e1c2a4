package mines

// NewBoardFromMines builds a board with mines at exactly the given points.
// The layout must hold NumMines distinct points inside the grid.
func NewBoardFromMines(mines []Point, opts ...Option) (*Board, error) {
	if len(mines) != NumMines {
		return nil, layoutErrorf("want %d mines, got %d", NumMines, len(mines))
	}
	b := newBoard(opts...)
	for _, p := range mines {
		if !InBounds(p.Row, p.Col) {
			return nil, layoutErrorf("mine %s is off the board", p)
		}
		if b.cells[p.Row][p.Col].Value() == Mine {
			return nil, layoutErrorf("mine %s listed twice", p)
		}
		b.cells[p.Row][p.Col].SetValue(Mine)
	}
	b.fillValues()
	return b, nil
}
