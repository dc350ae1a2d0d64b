// Websocket event stream: pushes each game event to connected
// observers as JSON, in emission order.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/phalanxdev/phalanx/internal/game"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("stream upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ch := make(chan game.Event, 64)
	s.streamMu.Lock()
	s.clients[ch] = struct{}{}
	s.streamMu.Unlock()
	defer func() {
		s.streamMu.Lock()
		if _, ok := s.clients[ch]; ok {
			delete(s.clients, ch)
			close(ch)
		}
		s.streamMu.Unlock()
	}()

	slog.Info("stream client connected", "remote", r.RemoteAddr)
	for e := range ch {
		if err := conn.WriteJSON(e); err != nil {
			slog.Debug("stream client dropped", "remote", r.RemoteAddr, "error", err)
			return
		}
	}
}
