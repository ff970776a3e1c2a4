package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

var commandNargs = map[string]int{
	"g": 0,
	"l": 2,
	"r": 2,
	"o": 2,
	"f": 2,
}

func parseInts(args []string) (a int, b int, err error) {
	if a, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if b, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// runCommand applies one protocol line to game:
//
//	g            no move, just reply with the board
//	l x y        left press at world pixel
//	r x y        right press at world pixel
//	o row col    open the cell
//	f row col    toggle the flag on the cell
func runCommand(ctx context.Context, game *session.Game, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return errors.New("empty command")
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}
	if nargs == 0 {
		return nil
	}

	a, b, err := parseInts(parts[1:])
	if err != nil {
		return err
	}

	switch parts[0] {
	case "l":
		game.Click(ctx, a, b, mines.Left)
	case "r":
		game.Click(ctx, a, b, mines.Right)
	case "o", "f":
		if !mines.InBounds(a, b) {
			return fmt.Errorf("invalid cell position")
		}
		btn := mines.Left
		if parts[0] == "f" {
			btn = mines.Right
		}
		game.ClickCell(ctx, a, b, btn)
	}
	return nil
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	game := g.lookup(w, r)
	if game == nil {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	log := g.logger.With(slog.String("game", game.ID.String()))
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		for _, line := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			log.Debug("\t> " + line)

			var reply any
			if err := runCommand(r.Context(), game, line); err != nil {
				log.Info("rejected command", slog.String("line", line), slog.Any("error", err))
				reply = wrapError(err)
			} else {
				reply = g.snapshot(game)
			}
			if err := c.WriteJSON(reply); err != nil {
				log.Error("unable to write json", slog.Any("error", err))
				return
			}
		}
	}
}
