package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		x, y   int
		want   Point
		hit    bool
	}{
		{"origin", DefaultLayout, 0, 0, Point{0, 0}, true},
		{"inside first", DefaultLayout, 63, 63, Point{0, 0}, true},
		{"next column", DefaultLayout, 64, 0, Point{0, 1}, true},
		{"next row", DefaultLayout, 0, 64, Point{1, 0}, true},
		{"last", DefaultLayout, 511, 511, Point{7, 7}, true},
		{"right of board", DefaultLayout, 512, 0, Point{}, false},
		{"below board", DefaultLayout, 0, 512, Point{}, false},
		{"negative", DefaultLayout, -1, 5, Point{}, false},
		{"offset origin", Layout{Vec2{100, 50}, 0.5}, 100, 50, Point{0, 0}, true},
		{"offset inside", Layout{Vec2{100, 50}, 0.5}, 131, 81, Point{0, 0}, true},
		{"offset next", Layout{Vec2{100, 50}, 0.5}, 132, 50, Point{0, 1}, true},
		{"offset before", Layout{Vec2{100, 50}, 0.5}, 99, 50, Point{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := NewBoard(seeded(1), WithLayout(test.layout))
			p, ok := b.CellAt(test.x, test.y)
			assert.Equal(t, test.hit, ok)
			assert.Equal(t, test.want, p)
		})
	}
}

func TestEveryPixelMapsToOneCell(t *testing.T) {
	b := NewBoard(seeded(1), WithLayout(Layout{Vec2{10, 20}, 0.25}))
	for y := 20; y < 20+Rows*16; y++ {
		for x := 10; x < 10+Cols*16; x++ {
			matches := 0
			for _, c := range b.All() {
				if c.Contains(float64(x), float64(y)) {
					matches++
				}
			}
			require.Equal(t, 1, matches, "pixel %d,%d", x, y)
		}
	}
}

func TestHandleClickOutsideIsNoop(t *testing.T) {
	b := mustBoard(t, wall)
	before := b.String()

	upd := b.HandleClick(-10, 700, false)
	assert.False(t, upd.Hit)
	assert.Empty(t, upd.Revealed)
	assert.Equal(t, before, b.String())
}

func TestHandleClickRight(t *testing.T) {
	b := mustBoard(t, wall)
	x, y := center(b, 0, 3)

	upd := b.HandleClick(x, y, true)
	assert.True(t, upd.Hit)
	assert.Equal(t, Right, upd.Button)
	assert.Equal(t, Point{0, 3}, upd.At)
	assert.True(t, b.Cell(0, 3).Flagged())
	assert.False(t, b.Cell(0, 3).Revealed())
	assert.False(t, b.Lost())

	b.HandleClick(x, y, true)
	assert.False(t, b.Cell(0, 3).Flagged())
}

func TestFloodFillFromFarCorner(t *testing.T) {
	b := mustBoard(t, wall)
	x, y := center(b, 7, 7)

	upd := b.HandleClick(x, y, false)
	require.True(t, upd.Hit)
	assert.False(t, upd.Lost)
	assert.False(t, upd.Won)
	assert.Len(t, upd.Revealed, 32)
	assert.Equal(t, Point{7, 7}, upd.Revealed[0])

	for p, c := range b.All() {
		if p.Col >= 4 {
			assert.True(t, c.Revealed(), "cell %s", p)
		} else {
			assert.False(t, c.Revealed(), "cell %s", p)
		}
	}
}

func TestClickMine(t *testing.T) {
	b := mustBoard(t, wall)
	x, y := center(b, 3, 3)

	upd := b.HandleClick(x, y, false)
	assert.True(t, upd.Lost)
	assert.True(t, b.Lost())
	assert.False(t, b.Won())
	assert.Equal(t, []Point{{3, 3}}, upd.Revealed)

	for p, c := range b.All() {
		assert.Equal(t, p == (Point{3, 3}), c.Revealed(), "cell %s", p)
	}
}

func TestClickAfterLossIgnored(t *testing.T) {
	b := mustBoard(t, wall)
	b.ClickCell(3, 3, Left)
	require.True(t, b.Lost())

	upd := b.ClickCell(7, 7, Left)
	assert.False(t, upd.Hit)
	assert.True(t, upd.Lost)
	assert.False(t, b.Cell(7, 7).Revealed())

	b.ClickCell(0, 0, Right)
	assert.False(t, b.Cell(0, 0).Flagged())
}

func TestWinByFloodFill(t *testing.T) {
	b := mustBoard(t, topRows)

	upd := b.ClickCell(7, 7, Left)
	assert.True(t, upd.Won)
	assert.True(t, b.Won())
	assert.False(t, b.Lost())
	assert.Len(t, upd.Revealed, Rows*Cols-NumMines)
}

func TestWinOnLastSafeCells(t *testing.T) {
	b := mustBoard(t, wall)

	b.ClickCell(7, 7, Left)
	b.ClickCell(7, 0, Left)
	assert.False(t, b.Over())

	// (0,1) is numbered; its safe neighbours open with it
	upd := b.ClickCell(0, 1, Left)
	require.True(t, upd.Hit)
	assert.ElementsMatch(t, []Point{{0, 1}, {0, 2}, {1, 1}, {1, 2}}, upd.Revealed)
	assert.True(t, upd.Won)
	assert.True(t, b.Won())

	upd = b.ClickCell(0, 0, Left)
	assert.False(t, upd.Hit)
	assert.False(t, b.Lost())
}

func TestFlagsDoNotAffectWin(t *testing.T) {
	b := mustBoard(t, topRows)
	b.ClickCell(0, 0, Right)
	b.ClickCell(5, 5, Right)

	b.ClickCell(7, 7, Left)
	assert.True(t, b.Won())
	// the flagged safe cell was opened by the flood fill all the same
	assert.True(t, b.Cell(5, 5).Revealed())
}

func TestLeftClickRevealedIsNoop(t *testing.T) {
	b := mustBoard(t, wall)
	b.ClickCell(7, 7, Left)
	before := b.String()

	upd := b.ClickCell(3, 4, Left)
	assert.True(t, upd.Hit)
	assert.Empty(t, upd.Revealed)
	assert.Equal(t, before, b.String())
}

func TestRightClickRevealed(t *testing.T) {
	b := mustBoard(t, wall)
	b.ClickCell(7, 7, Left)

	upd := b.ClickCell(3, 4, Right)
	assert.True(t, upd.Hit)
	assert.False(t, b.Cell(3, 4).Flagged())
	assert.False(t, b.Over())
}

func TestClickOutOfBoundsCell(t *testing.T) {
	b := mustBoard(t, wall)
	upd := b.ClickCell(8, 0, Left)
	assert.False(t, upd.Hit)
}
