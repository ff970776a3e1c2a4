package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

type GameHandler struct {
	logger   *slog.Logger
	store    *session.Store
	ws       *config.WebSocket
	textures map[string]mines.TextureID
}

// NewGameHandler serves the boards in store. textures names the sheets the
// store's boards point at so clients can resolve the handles.
func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	ws *config.WebSocket,
	textures map[string]mines.TextureID,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		store:    store,
		ws:       ws,
		textures: textures,
	}
}

func (g GameHandler) snapshot(game *session.Game) (dto *GameDTO) {
	game.View(func(b *mines.Board) {
		dto = NewGameDTO(game.ID.String(), b, g.textures)
	})
	return dto
}

// lookup writes the error response itself and returns nil when the path id
// names no game.
func (g GameHandler) lookup(w http.ResponseWriter, r *http.Request) *session.Game {
	game, err := g.store.Lookup(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		sendError(w, g.logger, http.StatusNotFound, err)
		return nil
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to look up game", slog.Any("error", err))
		return nil
	}
	return game
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	game := g.store.New(r.Context())
	g.logger.Debug("created game", slog.String("id", game.ID.String()))

	sendJSONStatusOrLog(w, g.logger, http.StatusCreated, g.snapshot(game))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	game := g.lookup(w, r)
	if game == nil {
		return
	}
	sendJSONOrLog(w, g.logger, g.snapshot(game))
}

func (g GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	params, btn, err := ParseClickParams(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}
	game := g.lookup(w, r)
	if game == nil {
		return
	}
	upd := game.Click(r.Context(), params.X, params.Y, btn)
	sendJSONOrLog(w, g.logger, NewMoveDTO(upd, g.snapshot(game)))
}

func (g GameHandler) ClickCell(w http.ResponseWriter, r *http.Request) {
	params, btn, err := ParseCellParams(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if !mines.InBounds(params.Row, params.Col) {
		sendError(w, g.logger, http.StatusBadRequest, errors.New("invalid cell position"))
		return
	}
	game := g.lookup(w, r)
	if game == nil {
		return
	}
	upd := game.ClickCell(r.Context(), params.Row, params.Col, btn)
	sendJSONOrLog(w, g.logger, NewMoveDTO(upd, g.snapshot(game)))
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	game := g.lookup(w, r)
	if game == nil {
		return
	}
	if err := g.store.Delete(game.ID); err != nil {
		sendError(w, g.logger, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
