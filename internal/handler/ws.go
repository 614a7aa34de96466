package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	logger   *slog.Logger
	auth     *middleware.Authenticator
	hub      *fanout.Hub
	upgrader websocket.Upgrader
	opts     fanout.ClientOptions
}

func NewWSHandler(logger *slog.Logger, auth *middleware.Authenticator, hub *fanout.Hub, cors config.CORS, cfg config.Fanout) *WSHandler {
	return &WSHandler{
		logger: logger.With(slog.String("handler", "ws")),
		auth:   auth,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// нативные клиенты Origin не присылают
				return origin == "" || slices.Contains(cors.AllowedOrigins, origin)
			},
		},
		opts: fanout.ClientOptions{
			WriteTimeout: cfg.WriteTimeout,
			PingInterval: cfg.PingInterval,
			SendBuffer:   cfg.SendBuffer,
		},
	}
}

func (h *WSHandler) Init(r chi.Router) {
	r.With(h.auth.Authenticate).Get("/ws", h.Connect)
}

// Connect переводит соединение на websocket и подписывает клиента на его комнату.
// @Summary      Подключение к событиям
// @Description  Токен передается в заголовке Authorization или в параметре token
// @Tags         realtime
// @Param        token  query  string  false  "JWT токен"
// @Success      101
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Router       /ws [get]
func (h *WSHandler) Connect(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// ответ клиенту уже записан апгрейдером
		h.logger.Warn("failed to upgrade connection", slog.Any("error", err))
		return
	}

	client := fanout.NewClient(h.hub, conn, actor, h.logger, h.opts)
	if err := client.Serve(r.Context()); err != nil {
		h.logger.Warn("client rejected", slog.String("actor", actor.ID), slog.Any("error", err))
	}
}
