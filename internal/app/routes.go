package app

import (
	"github.com/vancomm/minesweeper-board/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.store, a.ws, a.textures)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/click", game.Click)
	a.router.HandleFunc("POST /game/{id}/cell", game.ClickCell)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)
}
