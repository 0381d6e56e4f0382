package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"MarketPing/pkg/logger"
)

const clientBuffer = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	TS      time.Time   `json:"ts"`
}

// Hub fans application events out to connected ops clients over
// websockets. It implements repository.EventStream. A slow client is
// disconnected rather than allowed to stall publishers.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
	log     *logger.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     log,
	}
}

// Publish broadcasts one event to every connected client without
// blocking the caller.
func (h *Hub) Publish(event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload, TS: time.Now().UTC()})
	if err != nil {
		h.log.Warn("event marshal failed", logger.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			delete(h.clients, c)
			close(c.send)
			h.log.Warn("dropping slow ops client")
		}
	}
}

// Handle upgrades the request and serves the client until it leaves.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{conn: conn, send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return conn.Close()
	}
	h.clients[cl] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("ops client connected", logger.Int("clients", n))

	go h.writeLoop(cl)
	h.readLoop(cl)
	return nil
}

func (h *Hub) writeLoop(cl *client) {
	for data := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	cl.conn.Close()
}

// readLoop discards inbound frames; its job is to detect disconnects.
func (h *Hub) readLoop(cl *client) {
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(cl)
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// Close disconnects every client and stops accepting new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
