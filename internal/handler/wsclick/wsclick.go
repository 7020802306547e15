// Package wsclick runs an interactive map session over a WebSocket. Each
// connection owns one trailmap.Session; nothing is shared between them.
package wsclick

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/playperu/trailmap/internal/trailmap"
)

type Handler struct {
	logger *slog.Logger
	m      *trailmap.Map
}

func NewHandler(logger *slog.Logger, m *trailmap.Map) *Handler {
	return &Handler{logger: logger, m: m}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/click", h.click)
	return r
}

// clickMessage is one tap sent by the client.
type clickMessage struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type errorMessage struct {
	Error string `json:"error"`
}

func (h *Handler) click(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Minute)
	defer cancel()

	sess := trailmap.NewSession(h.m)
	if err := wsjson.Write(ctx, conn, sess.View()); err != nil {
		h.logger.Debug("websocket write failed", "error", err)
		return
	}

	for {
		var msg clickMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return
			}
			h.logger.Debug("websocket read ended", "error", err)
			return
		}

		var reply any
		if msg.X == nil || msg.Y == nil {
			reply = errorMessage{Error: "x and y are required"}
		} else {
			v := sess.Click(trailmap.Point{X: *msg.X, Y: *msg.Y})
			h.logger.Debug("click resolved", "x", *msg.X, "y", *msg.Y, "selected", v.Selected)
			reply = v
		}

		if err := wsjson.Write(ctx, conn, reply); err != nil {
			h.logger.Debug("websocket write failed", "error", err)
			return
		}
	}
}
