// Package websocket fans committed escrow events out to websocket
// subscribers. Clients subscribe to one campaign, or to every campaign
// with an empty id.
package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"crowdfund-escrow/internal/core/domain"
)

const (
	sendBuffer      = 256
	broadcastBuffer = 1024
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
)

// Option configures a Hub.
type Option func(*Hub)

// WithAllowedOrigins lists the Origin header values accepted on upgrade.
// "*" accepts any origin. Without this option only same-origin requests
// and clients that send no Origin are accepted.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Hub) {
		if len(origins) == 0 {
			return
		}
		allowed := make(map[string]struct{}, len(origins))
		for _, o := range origins {
			if o == "*" {
				h.upgrader.CheckOrigin = func(*http.Request) bool { return true }
				return
			}
			allowed[strings.ToLower(strings.TrimRight(o, "/"))] = struct{}{}
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[strings.ToLower(origin)]
			return ok
		}
	}
}

// Client is one websocket subscriber.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	campaignID string
}

// Hub implements port.EventPublisher. Publish never blocks: events are
// dropped when the broadcast queue is full, and a subscriber whose send
// buffer is full is disconnected.
type Hub struct {
	logger    *slog.Logger
	upgrader  websocket.Upgrader
	broadcast chan domain.Event

	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

// NewHub returns a hub. Call Run to start delivery.
func NewHub(logger *slog.Logger, opts ...Option) *Hub {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Hub{
		logger:    logger,
		broadcast: make(chan domain.Event, broadcastBuffer),
		clients:   make(map[string]map[*Client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish queues ev for delivery.
func (h *Hub) Publish(ev domain.Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("event dropped", slog.String("type", string(ev.Type)), slog.String("campaign_id", ev.CampaignID))
	}
}

// Run delivers queued events until ctx is done, then disconnects every
// client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *Hub) deliver(ev domain.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to marshal event", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range []string{ev.CampaignID, ""} {
		for c := range h.clients[id] {
			select {
			case c.send <- msg:
			default:
				h.logger.Warn("slow subscriber dropped", slog.String("campaign_id", id))
				h.remove(c)
			}
		}
	}
}

// Subscribers returns the number of clients subscribed to campaignID.
func (h *Hub) Subscribers(campaignID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[campaignID])
}

// ServeWS upgrades the request and subscribes the connection to
// campaignID until the peer goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, campaignID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), campaignID: campaignID}
	h.register(c)

	go c.writePump()
	go c.readPump()
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.campaignID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.campaignID] = set
	}
	set[c] = struct{}{}
	h.logger.Debug("websocket client registered", slog.String("campaign_id", c.campaignID))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with h.mu held.
func (h *Hub) remove(c *Client) {
	set, ok := h.clients[c.campaignID]
	if !ok {
		return
	}
	if _, ok = set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.campaignID)
	}
	close(c.send)
	h.logger.Debug("websocket client unregistered", slog.String("campaign_id", c.campaignID))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.remove(c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read error", slog.Any("error", err))
			}
			return
		}
	}
}
