package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"

	"github.com/gorilla/websocket"
)

const (
	frameJoin          = "join"
	frameTrackDelivery = "trackDelivery"

	maxFrameSize = 4096
)

type ClientOptions struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
	SendBuffer   int
}

// Client is one socket connection of an authenticated user.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	actor  entities.Actor
	send   chan []byte
	logger *slog.Logger
	opts   ClientOptions
}

// clientFrame is what clients emit: {"event":"join","data":"<userId>"}.
type clientFrame struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

func NewClient(hub *Hub, conn *websocket.Conn, actor entities.Actor, logger *slog.Logger, opts ClientOptions) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		actor:  actor,
		send:   make(chan []byte, opts.SendBuffer),
		logger: logger.With(slog.String("actor", actor.ID)),
		opts:   opts,
	}
}

// Serve registers the client and blocks until the connection is closed.
func (c *Client) Serve(ctx context.Context) error {
	if err := c.hub.Register(c); err != nil {
		c.conn.Close()
		return err
	}

	// своя комната доступна сразу, join от клиента ее просто подтверждает
	if err := c.hub.Join(c, UserRoom(c.actor.ID)); err != nil {
		c.hub.Unregister(c)
		c.conn.Close()
		return err
	}

	go c.writePump()
	c.readPump(ctx)
	return nil
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	pongWait := 2 * c.opts.PingInterval
	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame clientFrame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("socket closed", slog.Any("error", err))
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		c.handle(frame)
	}
}

func (c *Client) handle(frame clientFrame) {
	if frame.Data == "" {
		return
	}

	switch frame.Event {
	case frameJoin:
		if frame.Data != c.actor.ID && !c.actor.IsSuperadmin() {
			c.logger.Warn("rejected join to foreign user room", slog.String("room", UserRoom(frame.Data)))
			return
		}
		c.join(UserRoom(frame.Data))
	case frameTrackDelivery:
		c.join(DeliveryRoom(frame.Data))
	default:
		c.logger.Debug("unknown frame", slog.String("event", frame.Event))
	}
}

func (c *Client) join(room string) {
	if err := c.hub.Join(c, room); err != nil {
		c.logger.Warn("failed to join room", slog.String("room", room), slog.Any("error", err))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
