package mines

import (
	"hash/maphash"
	"iter"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Layout places the grid in world space.
type Layout struct {
	Origin Vec2
	Scale  float64
}

var DefaultLayout = Layout{Origin: Vec2{0, 0}, Scale: 1}

type Option func(*Board)

func WithLayout(l Layout) Option {
	return func(b *Board) {
		b.layout = l
	}
}

func WithTextures(bg, fg TextureID) Option {
	return func(b *Board) {
		b.bgTex, b.fgTex = bg, fg
	}
}

type Board struct {
	cells        [Rows][Cols]*Cell
	layout       Layout
	bgTex, fgTex TextureID
	lost, won    bool
}

// NewRand returns a PCG source seeded from the runtime's random hash seeds.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard lays out a fresh grid and scatters NumMines mines on it using r.
func NewBoard(r *rand.Rand, opts ...Option) *Board {
	b := newBoard(opts...)
	b.placeMines(r)
	b.fillValues()
	return b
}

func newBoard(opts ...Option) *Board {
	b := &Board{layout: DefaultLayout}
	for _, opt := range opts {
		opt(b)
	}
	if b.layout.Scale <= 0 {
		b.layout.Scale = DefaultLayout.Scale
	}
	frame := Rect{0, 0, Extent, Extent}
	step := Extent * b.layout.Scale
	for row := range Rows {
		for col := range Cols {
			pos := Vec2{
				X: b.layout.Origin.X + step*float64(col),
				Y: b.layout.Origin.Y + step*float64(row),
			}
			c := NewCell(pos, frame, frame, b.bgTex, b.fgTex)
			c.SetScale(b.layout.Scale)
			b.cells[row][col] = c
		}
	}
	return b
}

func (b *Board) placeMines(r *rand.Rand) {
	for range NumMines {
		for {
			row, col := r.IntN(Rows), r.IntN(Cols)
			if b.cells[row][col].Value() == Mine {
				continue
			}
			b.cells[row][col].SetValue(Mine)
			Log.Debug("mine placed", slog.Int("row", row), slog.Int("col", col))
			break
		}
	}
}

func (b *Board) fillValues() {
	for row := range Rows {
		for col := range Cols {
			b.cells[row][col].SetValue(b.cellValue(row, col))
		}
	}
}

func (b *Board) cellValue(row, col int) Value {
	if b.cells[row][col].Value() == Mine {
		return Mine
	}
	return CountValue(b.countNeighbours(row, col, Mine))
}

func (b *Board) countNeighbours(row, col int, v Value) (n int) {
	for _, p := range Neighbours(row, col) {
		if b.cells[p.Row][p.Col].Value() == v {
			n++
		}
	}
	return
}

func (b *Board) Cell(row, col int) *Cell {
	if !InBounds(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// All yields every cell in row-major order.
func (b *Board) All() iter.Seq2[Point, *Cell] {
	return func(yield func(Point, *Cell) bool) {
		for row := range Rows {
			for col := range Cols {
				if !yield(Point{row, col}, b.cells[row][col]) {
					return
				}
			}
		}
	}
}

func (b *Board) Layout() Layout { return b.layout }

func (b *Board) Lost() bool { return b.lost }
func (b *Board) Won() bool  { return b.won }

// Over reports whether the game reached a terminal state.
func (b *Board) Over() bool { return b.lost || b.won }

// Flags counts the flag markers currently on the board.
func (b *Board) Flags() (n int) {
	for _, c := range b.All() {
		if c.Flagged() {
			n++
		}
	}
	return
}

// MinesLeft is the counter frontends show: mines minus placed flags.
func (b *Board) MinesLeft() int {
	return NumMines - b.Flags()
}

// RevealMines opens every mine once the game is over so renderers can show
// the layout. It does nothing while the game is still running.
func (b *Board) RevealMines() {
	if !b.Over() {
		return
	}
	for _, c := range b.All() {
		if c.Value() == Mine {
			c.LeftClick()
		}
	}
}

func (b *Board) checkLose(row, col int) {
	if b.cells[row][col].Value() == Mine {
		b.lost = true
		Log.Info("game lost", slog.Int("row", row), slog.Int("col", col))
	}
}

func (b *Board) checkWin() {
	remaining := 0
	for _, c := range b.All() {
		if c.Revealed() {
			continue
		}
		if remaining++; remaining > NumMines {
			return
		}
	}
	if remaining == NumMines && !b.lost {
		b.won = true
		Log.Info("game won")
	}
}
