package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const feedBuffer = 8

type feedMessage struct {
	Type string     `json:"type"`
	Form model.Form `json:"form"`
}

// serveFeed streams a snapshot on connect and after every mutation. Slow
// clients drop intermediate snapshots; the newest one is always delivered.
func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logger.Warn("websocket accept", slog.Any("error", err))
		return
	}
	defer conn.CloseNow()

	s.metrics.wsClients.Inc()
	defer s.metrics.wsClients.Dec()

	updates := make(chan model.Form, feedBuffer)
	cancel := s.store().Subscribe(func(form model.Form) {
		for {
			select {
			case updates <- form:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer cancel()

	ctx := conn.CloseRead(r.Context())
	if err := s.send(ctx, conn, "snapshot", s.orch.Snapshot()); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case form := <-updates:
			if err := s.send(ctx, conn, "update", form); err != nil {
				return
			}
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, kind string, form model.Form) error {
	err := wsjson.Write(ctx, conn, feedMessage{Type: kind, Form: form})
	if err != nil && websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
		s.logger.Warn("websocket write", slog.Any("error", err))
	}
	return err
}
