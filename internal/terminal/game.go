package terminal

import (
	"context"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type Game struct {
	screen *Screen
	log    logrus.FieldLogger
	rnd    *rand.Rand

	board   *mines.Board
	games   int
	buttons tcell.ButtonMask

	polling chan struct{} // closed when the event poller exits
}

func New(screen *Screen, log logrus.FieldLogger, rnd *rand.Rand) *Game {
	g := &Game{screen: screen, log: log, rnd: rnd}
	g.deal()
	return g
}

func (g *Game) Board() *mines.Board { return g.board }

func (g *Game) deal() {
	g.board = mines.NewBoard(g.rnd, mines.WithLayout(BoardLayout))
	g.games++
	g.log.WithField("game", g.games).Info("new board")
}

// Run renders and handles events until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	stop := make(chan struct{})
	defer close(stop)

	polling := make(chan struct{})
	g.polling = polling
	go func() {
		defer close(polling)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	for {
		Render(g.screen, g.board, g.games)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := g.Handle(ev); quit {
				return nil
			}
		}
	}
}

// Handle applies one terminal event and reports whether the player asked to
// quit.
func (g *Game) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == 'r', ev.Rune() == 'n':
			g.deal()
		}
	case *tcell.EventMouse:
		g.mouse(ev)
	}
	return false
}

// mouse acts on presses only; tcell repeats the mask while a button is held
// and reports ButtonNone on release.
func (g *Game) mouse(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	pressed := btns &^ g.buttons
	g.buttons = btns

	var right bool
	switch {
	case pressed&tcell.Button1 != 0:
		right = false
	case pressed&tcell.Button2 != 0:
		right = true
	default:
		return
	}

	cx, cy := ev.Position()
	x, y, ok := ToPixel(cx, cy)
	if !ok {
		return
	}
	upd := g.board.HandleClick(x, y, right)
	if !upd.Hit {
		return
	}
	entry := g.log.WithFields(logrus.Fields{
		"game":     g.games,
		"cell":     upd.At.String(),
		"button":   upd.Button.String(),
		"revealed": len(upd.Revealed),
	})
	switch {
	case upd.Lost:
		entry.Info("stepped on a mine")
		g.board.RevealMines()
	case upd.Won:
		entry.Info("board cleared")
		g.board.RevealMines()
	default:
		entry.Debug("click")
	}
}
