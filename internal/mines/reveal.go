package mines

import (
	"log/slog"

	"github.com/gammazero/deque"
)

// revealNeighbours opens the empty region around (row, col) together with
// the numbered cells bordering it. It walks depth first off a stack and
// returns the cells it opened, in order. Mines are never opened here.
func (b *Board) revealNeighbours(row, col int) (revealed []Point) {
	var stack deque.Deque[Point]
	stack.PushBack(Point{row, col})

	for stack.Len() > 0 {
		cur := stack.Back()
		if b.cells[cur.Row][cur.Col].Value() == Mine {
			stack.PopBack()
			continue
		}

		popped := false
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := cur.Row+dr, cur.Col+dc
				if (dr == 0 && dc == 0) || !InBounds(r, c) {
					continue
				}
				n := b.cells[r][c]
				if n.Value() == Mine || n.Shown() {
					continue
				}
				if !popped {
					stack.PopBack()
					popped = true
				}
				// numbered cells open but are not expanded further
				if n.Value() == None {
					stack.PushBack(Point{r, c})
				}
				n.LeftClick()
				revealed = append(revealed, Point{r, c})
				Log.Debug("revealing", slog.Int("row", r), slog.Int("col", c))
			}
		}
		if !popped {
			stack.PopBack()
		}
	}
	return revealed
}
