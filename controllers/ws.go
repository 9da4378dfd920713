package controller

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	"clientregistro/notifier"
)

// Hub tracks the browser tabs attached to this session and pushes them
// refresh hints. A tab reacts by re-requesting the list.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   *logrus.Entry
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   logrus.WithField("component", "ws"),
	}
}

func (h *Hub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

// BroadcastRefresh tells every attached tab to re-fetch the list. Dead
// connections are dropped on write failure.
func (h *Hub) BroadcastRefresh() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.conns {
		if err := c.WriteJSON(map[string]string{"event": notifier.Channel}); err != nil {
			h.log.WithError(err).Debug("dropping websocket connection")
			_ = c.Close()
			delete(h.conns, c)
		}
	}
}

// HandleRefreshWS keeps a tab's connection registered until it goes away.
// Incoming messages are drained and ignored; the channel is push-only.
func HandleRefreshWS(h *Hub) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		h.add(c)
		defer func() {
			h.remove(c)
			_ = c.Close()
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}
}
