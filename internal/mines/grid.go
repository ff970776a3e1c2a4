package mines

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Rows     = 8
	Cols     = 8
	NumMines = 10
)

type Value int8

const (
	None   Value = 0
	Count1 Value = iota
	Count2
	Count3
	Count4
	Count5
	Count6
	Count7
	Count8
	Mine Value = -1
	/*
	 * 0 means the cell has no mined neighbours, 1 to 8 mean the cell
	 * shows that many, -1 is the mine itself.
	 */
)

// CountValue maps a neighbour mine count to the value a cell shows.
func CountValue(n int) Value {
	if n <= 0 {
		return None
	}
	return Value(n)
}

// Count returns the number shown on the cell, 0 for None and Mine.
func (v Value) Count() int {
	if v == Mine {
		return 0
	}
	return int(v)
}

func (v Value) String() string {
	switch {
	case v == Mine:
		return "*"
	case v == None:
		return " "
	case Count1 <= v && v <= Count8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// InBounds reports whether row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Neighbours lists the cells sharing an edge or a corner with (row, col),
// in row-major offset order from (-1,-1) to (1,1).
func Neighbours(row, col int) []Point {
	ns := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if (dr == 0 && dc == 0) || !InBounds(row+dr, col+dc) {
				continue
			}
			ns = append(ns, Point{row + dr, col + dc})
		}
	}
	return ns
}

// String dumps the board: revealed cells show their value, flags show F,
// everything else is a dash. Used for debug logs.
func (b *Board) String() string {
	var s strings.Builder
	for row := range Rows {
		for col := range Cols {
			c := b.cells[row][col]
			switch {
			case c.Revealed():
				fmt.Fprint(&s, c.Value().String()+" ")
			case c.Flagged():
				fmt.Fprint(&s, "F ")
			default:
				fmt.Fprint(&s, "- ")
			}
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}

// MineMap dumps where the mines are regardless of what is revealed.
func (b *Board) MineMap() string {
	var s strings.Builder
	for row := range Rows {
		for col := range Cols {
			if b.cells[row][col].Value() == Mine {
				fmt.Fprint(&s, "* ")
			} else {
				fmt.Fprint(&s, "- ")
			}
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
