// Package api provides the read-only HTTP observation surface for a
// running session: status, world state, history, and a live event
// stream. It observes the rules engine but never mutates it.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/phalanxdev/phalanx/internal/game"
)

const defaultEventWindow = 256

// Server serves one session over HTTP. All reads go through the same
// mutex the driving loop uses, so observers never see a half-resolved
// turn.
type Server struct {
	Addr string

	mu      sync.Mutex
	session *game.Session

	streamMu sync.Mutex
	recent   []game.Event
	clients  map[chan game.Event]struct{}
}

// NewServer wraps a session for observation and subscribes to its
// event stream.
func NewServer(addr string, session *game.Session) *Server {
	s := &Server{
		Addr:    addr,
		session: session,
		clients: make(map[chan game.Event]struct{}),
	}
	session.Subscribe(s.publish)
	return s
}

// Do runs fn with exclusive access to the session. The driving loop
// uses this for every command so observation reads stay consistent.
func (s *Server) Do(fn func(*game.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.session)
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/history", s.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/events", s.handleEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/stream", s.handleStream).Methods(http.MethodGet)
	return r
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	slog.Info("observation API starting", "addr", s.Addr)
	go func() {
		if err := http.ListenAndServe(s.Addr, s.Router()); err != nil {
			slog.Error("observation API error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("encode response failed", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status := s.session.Status()
	s.mu.Unlock()
	writeJSON(w, status)
}

// stateView is the wire shape of the world for observers.
type stateView struct {
	Tiles   []game.Tile `json:"tiles"`
	Player  game.Unit   `json:"player"`
	Enemies []game.Unit `json:"enemies"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.session.State()
	view := stateView{Player: *state.Player}
	for _, tile := range state.Tiles {
		view.Tiles = append(view.Tiles, *tile)
	}
	for _, e := range state.LivingEnemies() {
		view.Enemies = append(view.Enemies, *e)
	}
	s.mu.Unlock()
	writeJSON(w, view)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	h := s.session.History()
	view := struct {
		Len       int   `json:"len"`
		Depth     int   `json:"depth"`
		Turns     []int `json:"turns"`
		CanRewind bool  `json:"can_rewind"`
	}{
		Len:       h.Len(),
		Depth:     h.Depth(),
		Turns:     h.TurnIndexes(),
		CanRewind: s.session.CanRewind(),
	}
	s.mu.Unlock()
	writeJSON(w, view)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventWindow
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, fmt.Sprintf("bad limit %q", raw), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	s.streamMu.Lock()
	events := s.recent
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	out := make([]game.Event, len(events))
	copy(out, events)
	s.streamMu.Unlock()
	writeJSON(w, out)
}

// publish records an event and fans it out to stream clients. Slow
// clients are dropped rather than allowed to stall resolution.
func (s *Server) publish(e game.Event) {
	s.streamMu.Lock()
	defer s.streamMu.Unlock()

	s.recent = append(s.recent, e)
	if len(s.recent) > defaultEventWindow {
		s.recent = s.recent[len(s.recent)-defaultEventWindow:]
	}
	for ch := range s.clients {
		select {
		case ch <- e:
		default:
			delete(s.clients, ch)
			close(ch)
		}
	}
}
