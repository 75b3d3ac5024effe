// Package packages_feed_ws живая лента пакетов поверх websocket.
// Соединение push-only: на каждое изменение коллекции клиенту уходит
// полный пересобранный список, входящие сообщения игнорируются.
package packages_feed_ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"packshare/internal/pkg/identity"
	"packshare/internal/service/projection"
	"packshare/pkg/logger"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	feed, err := h.service.Watch(ctx, actor)
	if err != nil {
		switch {
		case errors.Is(err, projection.ErrUnknownRole):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("feed: websocket upgrade failed")
		return
	}
	defer conn.Close()

	connLog := h.log.With(
		logger.NewField("uid", actor.UID),
		logger.NewField("role", actor.Role.String()),
	)
	connLog.Info("feed: client connected")

	// читатель нужен только чтобы заметить закрытие со стороны клиента
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			connLog.Info("feed: client disconnected")
			return

		case <-ticker.C:
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			if err != nil {
				connLog.With(
					logger.NewField("error", err),
				).Warn("feed: ping failed")
				return
			}

		case packages, ok := <-feed.Packages():
			if !ok {
				if err := feed.Err(); err != nil {
					connLog.With(
						logger.NewField("error", err),
					).Error("feed: subscription failed")
				}
				return
			}

			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := conn.WriteJSON(newPackageList(packages)); err != nil {
				connLog.With(
					logger.NewField("error", err),
				).Warn("feed: write failed")
				return
			}
		}
	}
}
