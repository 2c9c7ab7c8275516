package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader    websocket.Upgrader
	IdleTimeout Duration
}

func NewWebSocket(c *Config) (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:    upgrader,
		IdleTimeout: c.IdleTimeout,
	}

	return ws, nil
}
