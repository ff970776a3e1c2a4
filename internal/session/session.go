// Package session keeps the boards played over the web surface in memory.
// Each board is owned by its Game; the Game serialises clicks so one click,
// its flood fill and the terminal checks complete before the next starts.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var ErrNotFound = errors.New("game not found")

type Store struct {
	mu     sync.RWMutex
	games  map[uuid.UUID]*Game
	rnd    *rand.Rand // guarded by mu
	opts   []mines.Option
	tracer trace.Tracer
}

func NewStore(rnd *rand.Rand, tracer trace.Tracer, opts ...mines.Option) *Store {
	return &Store{
		games:  make(map[uuid.UUID]*Game),
		rnd:    rnd,
		opts:   opts,
		tracer: tracer,
	}
}

func (s *Store) New(ctx context.Context) *Game {
	_, span := s.tracer.Start(ctx, "game.new")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	g := &Game{
		ID:     uuid.New(),
		board:  mines.NewBoard(s.rnd, s.opts...),
		tracer: s.tracer,
	}
	s.games[g.ID] = g
	span.SetAttributes(attribute.String("game.id", g.ID.String()))
	return g
}

func (s *Store) Get(id uuid.UUID) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Lookup parses id and fetches the game.
func (s *Store) Lookup(id string) (*Game, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Get(uid)
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

type Game struct {
	ID     uuid.UUID
	mu     sync.Mutex
	board  *mines.Board
	tracer trace.Tracer
}

// Click routes a press at world pixel (x, y).
func (g *Game) Click(ctx context.Context, x, y int, btn mines.Button) mines.Update {
	_, span := g.tracer.Start(ctx, "game.click", trace.WithAttributes(
		attribute.String("game.id", g.ID.String()),
		attribute.Int("click.x", x),
		attribute.Int("click.y", y),
		attribute.String("click.button", btn.String()),
	))
	defer span.End()

	g.mu.Lock()
	upd := g.board.HandleClick(x, y, btn == mines.Right)
	g.settle(upd)
	g.mu.Unlock()

	record(span, upd)
	return upd
}

// ClickCell routes a press on a known grid position.
func (g *Game) ClickCell(ctx context.Context, row, col int, btn mines.Button) mines.Update {
	_, span := g.tracer.Start(ctx, "game.click_cell", trace.WithAttributes(
		attribute.String("game.id", g.ID.String()),
		attribute.Int("cell.row", row),
		attribute.Int("cell.col", col),
		attribute.String("click.button", btn.String()),
	))
	defer span.End()

	g.mu.Lock()
	upd := g.board.ClickCell(row, col, btn)
	g.settle(upd)
	g.mu.Unlock()

	record(span, upd)
	return upd
}

// settle opens the mines once a move ends the game. Callers hold g.mu.
func (g *Game) settle(upd mines.Update) {
	if upd.Hit && (upd.Lost || upd.Won) {
		g.board.RevealMines()
	}
}

// View runs fn with the board locked. fn must not keep the board.
func (g *Game) View(fn func(b *mines.Board)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.board)
}

func record(span trace.Span, upd mines.Update) {
	span.SetAttributes(
		attribute.Bool("click.hit", upd.Hit),
		attribute.Int("click.revealed", len(upd.Revealed)),
		attribute.Bool("game.lost", upd.Lost),
		attribute.Bool("game.won", upd.Won),
	)
	switch {
	case upd.Hit && upd.Lost:
		span.AddEvent("mine hit")
	case upd.Hit && upd.Won:
		span.AddEvent("board cleared")
	}
}
