package mines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		str   string
		count int
	}{
		{Mine, "*", 0},
		{None, " ", 0},
		{Count1, "1", 1},
		{Count4, "4", 4},
		{Count8, "8", 8},
	}
	for _, test := range tests {
		assert.Equal(t, test.str, test.value.String())
		assert.Equal(t, test.count, test.value.Count())
	}
}

func TestCountValue(t *testing.T) {
	assert.Equal(t, None, CountValue(0))
	for n := 1; n <= 8; n++ {
		assert.Equal(t, n, CountValue(n).Count())
		assert.NotEqual(t, Mine, CountValue(n))
	}
}

func TestNeighboursClip(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"top left", 0, 0, 3},
		{"top right", 0, 7, 3},
		{"bottom left", 7, 0, 3},
		{"bottom right", 7, 7, 3},
		{"top edge", 0, 4, 5},
		{"bottom edge", 7, 2, 5},
		{"left edge", 3, 0, 5},
		{"right edge", 5, 7, 5},
		{"interior", 3, 4, 8},
		{"interior near corner", 1, 1, 8},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ns := Neighbours(test.row, test.col)
			assert.Len(t, ns, test.want)
			for _, n := range ns {
				assert.True(t, InBounds(n.Row, n.Col))
				assert.NotEqual(t, Point{test.row, test.col}, n)
			}
		})
	}
}

func TestNeighboursOrder(t *testing.T) {
	assert.Equal(t, []Point{
		{2, 2}, {2, 3}, {2, 4},
		{3, 2}, {3, 4},
		{4, 2}, {4, 3}, {4, 4},
	}, Neighbours(3, 3))
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(7, 7))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, -1))
	assert.False(t, InBounds(8, 0))
	assert.False(t, InBounds(0, 8))
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, topRows)
	b.Cell(0, 0).RightClick()
	b.ClickCell(7, 7, Left)

	want := "F - - - - - - - \n" +
		"- - 4 3 3 3 3 2 \n" +
		"2 2 1           \n" +
		strings.Repeat(strings.Repeat(" ", 16)+"\n", 5)
	assert.Equal(t, want, b.String())
	assert.True(t, strings.HasPrefix(b.MineMap(), "* * * * * * * * \n* * - - - - - - \n"))
}
