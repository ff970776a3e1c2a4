package sprites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var wall = []mines.Point{
	{Row: 0, Col: 0}, {Row: 1, Col: 0},
	{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
	{Row: 4, Col: 3}, {Row: 5, Col: 3}, {Row: 6, Col: 3}, {Row: 7, Col: 3},
}

func TestPick(t *testing.T) {
	b, err := mines.NewBoardFromMines(wall)
	require.NoError(t, err)

	bg, fg := Pick(b.Cell(7, 7))
	assert.Equal(t, Hidden, bg)
	assert.Equal(t, Blank, fg)

	b.ClickCell(0, 0, mines.Right)
	bg, fg = Pick(b.Cell(0, 0))
	assert.Equal(t, Hidden, bg)
	assert.Equal(t, Flag, fg)

	b.ClickCell(7, 7, mines.Left)
	bg, fg = Pick(b.Cell(7, 7))
	assert.Equal(t, Opened, bg)
	assert.Equal(t, Blank, fg)

	_, fg = Pick(b.Cell(3, 4))
	assert.Equal(t, Number3, fg)

	b.ClickCell(2, 3, mines.Left)
	_, fg = Pick(b.Cell(2, 3))
	assert.Equal(t, Mine, fg)
}

func TestNumberKind(t *testing.T) {
	for n := 1; n <= 8; n++ {
		assert.Equal(t, n, NumberKind(n).Number())
	}
	assert.Equal(t, Blank, NumberKind(0))
	assert.Equal(t, Blank, NumberKind(9))
	assert.Equal(t, 0, Flag.Number())
}

func TestFramesTileTheSheet(t *testing.T) {
	w, h := SheetSize()
	assert.Equal(t, len(Kinds)*mines.Extent, w)
	assert.Equal(t, mines.Extent, h)

	seen := make(map[mines.Rect]bool)
	for _, k := range Kinds {
		f := Frame(k)
		assert.False(t, seen[f])
		seen[f] = true
		assert.LessOrEqual(t, f.X+f.W, w)
	}
	assert.Equal(t, mines.Rect{}, Frame(Blank))
}

func TestDress(t *testing.T) {
	b, err := mines.NewBoardFromMines(wall)
	require.NoError(t, err)
	c := b.Cell(3, 4)

	assert.False(t, Dress(c))
	assert.Equal(t, Frame(Hidden), c.BgFrame())

	b.ClickCell(3, 4, mines.Left)
	assert.True(t, Dress(c))
	assert.Equal(t, Frame(Opened), c.BgFrame())
	assert.Equal(t, Frame(Number3), c.FgFrame())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry[string]()
	tiles := r.Register(TilesSheet, "tiles v1")
	marks := r.Register(MarksSheet, "marks")
	assert.NotEqual(t, mines.TextureID(0), tiles)
	assert.NotEqual(t, tiles, marks)

	again := r.Register(TilesSheet, "tiles v2")
	assert.Equal(t, tiles, again)
	tex, ok := r.Lookup(tiles)
	assert.True(t, ok)
	assert.Equal(t, "tiles v2", tex)
	assert.Equal(t, 2, r.Len())

	_, ok = r.Lookup(0)
	assert.False(t, ok)

	tex, ok = r.Lookup(marks)
	assert.True(t, ok)
	assert.Equal(t, "marks", tex)
}
