package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds the upgrader for the board stream. WS_READ_BUFFER and
// WS_WRITE_BUFFER override the buffer sizes; a board snapshot is a few KiB.
func NewWebSocket() (*WebSocket, error) {
	read, err := bufferSize("WS_READ_BUFFER", 1024)
	if err != nil {
		return nil, err
	}
	write, err := bufferSize("WS_WRITE_BUFFER", 8192)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  read,
		WriteBufferSize: write,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader: upgrader,
	}

	return ws, nil
}

func bufferSize(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return n, nil
}
