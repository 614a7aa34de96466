package fanout

import (
	"context"
	"encoding/json"
	"log/slog"
)

type membership struct {
	client *Client
	room   string
}

// Hub owns room membership. All state is touched only by the Run loop.
type Hub struct {
	logger *slog.Logger

	register   chan *Client
	unregister chan *Client
	join       chan membership
	broadcast  chan Message
	done       chan struct{}

	rooms   map[string]map[*Client]struct{}
	clients map[*Client]map[string]struct{}
}

var _ Transport = (*Hub)(nil)

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With(slog.String("component", "fanout_hub")),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan membership),
		broadcast:  make(chan Message, 256),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		clients:    make(map[*Client]map[string]struct{}),
	}
}

// Start runs the event loop in the background until ctx is done.
func (h *Hub) Start(ctx context.Context) error {
	go h.Run(ctx)
	return nil
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.clients[c] = make(map[string]struct{})
			wsConnections.Inc()

		case c := <-h.unregister:
			h.drop(c)

		case m := <-h.join:
			rooms, ok := h.clients[m.client]
			if !ok {
				continue
			}
			if _, ok := h.rooms[m.room]; !ok {
				h.rooms[m.room] = make(map[*Client]struct{})
			}
			h.rooms[m.room][m.client] = struct{}{}
			rooms[m.room] = struct{}{}

		case msg := <-h.broadcast:
			h.deliver(msg)

		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			h.logger.Info("fanout hub stopped")
			return
		}
	}
}

// Send queues msg for local room members. It never waits for clients.
func (h *Hub) Send(ctx context.Context, msg Message) error {
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) Register(c *Client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) Join(c *Client, room string) error {
	select {
	case h.join <- membership{client: c, room: room}:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) deliver(msg Message) {
	members := h.rooms[msg.Room]
	if len(members) == 0 {
		return
	}

	frame, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to encode frame", slog.String("event", msg.Event), slog.Any("error", err))
		return
	}

	for c := range members {
		select {
		case c.send <- frame:
			eventsDelivered.WithLabelValues(msg.Event).Inc()
		default:
			// клиент не успевает читать, отключаем его
			h.logger.Warn("dropping slow client", slog.String("actor", c.actor.ID))
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *Client) {
	rooms, ok := h.clients[c]
	if !ok {
		return
	}
	for room := range rooms {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.clients, c)
	close(c.send)
	wsConnections.Dec()
}
