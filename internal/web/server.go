// Package web serves the simulator over HTTP: a JSON API for starting and
// advancing games plus a websocket feed of the live transcript.
package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"sort"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/kmreiser/veil/internal/config"
	"github.com/kmreiser/veil/internal/game"
	"github.com/kmreiser/veil/internal/log"
	"github.com/kmreiser/veil/internal/view"
)

//go:embed static
var staticFiles embed.FS

// DeckInfo is the JSON representation of a deck template for /api/decks.
type DeckInfo struct {
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

// NewGameRequest is the body of POST /api/game. Empty fields fall back to
// the server's configured defaults.
type NewGameRequest struct {
	Player0   string `json:"player0,omitempty"`
	Player1   string `json:"player1,omitempty"`
	Template0 string `json:"template0,omitempty"`
	Template1 string `json:"template1,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	MaxTurns  int    `json:"max_turns,omitempty"`
}

// NewGameResponse answers POST /api/game.
type NewGameResponse struct {
	ID    string         `json:"id"`
	State view.StateView `json:"state"`
}

// StepResponse answers POST /api/game/{id}/step and /run.
type StepResponse struct {
	Lines []string       `json:"lines"`
	State view.StateView `json:"state"`
}

// Server is the simulator's web driver.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *SessionStore
	mux    *http.ServeMux
}

// NewServer creates a web server with the given configuration.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		store:  NewSessionStore(),
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("POST /api/game", s.handleNewGame)
	s.mux.HandleFunc("GET /api/game/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /api/game/{id}/step", s.handleStep)
	s.mux.HandleFunc("POST /api/game/{id}/run", s.handleRun)
	s.mux.HandleFunc("GET /api/game/{id}/transcript", s.handleTranscript)
	s.mux.HandleFunc("GET /ws/{id}", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(game.CardRegistry))
	for name := range game.CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]view.CardView, 0, len(names))
	for _, name := range names {
		card, err := game.LookupCard(name)
		if err != nil {
			continue
		}
		cards = append(cards, view.BuildCardView(card))
	}
	writeJSON(w, cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	templates, err := game.ParseDeckFile(s.cfg.Game.DecksFile)
	if err != nil {
		s.logger.Error("read decks file", zap.Error(err))
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	names, err := game.DeckNames(s.cfg.Game.DecksFile)
	if err != nil {
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	decks := make([]DeckInfo, 0, len(names))
	for _, name := range names {
		di := DeckInfo{Name: name}
		seen := make(map[string]bool)
		for _, c := range templates[name] {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		decks = append(decks, di)
	}
	writeJSON(w, decks)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if req.Template0 == "" {
		req.Template0 = s.cfg.Game.Template
	}
	if req.Template1 == "" {
		req.Template1 = req.Template0
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = s.cfg.Game.MaxTurns
	}

	recorder := log.NewMemoryLogger()
	g, err := game.NewGameFromTemplates(s.cfg.Game.DecksFile, req.Template0, req.Template1, game.GameConfig{
		Player0: req.Player0,
		Player1: req.Player1,
		Logger:  recorder,
		Seed:    req.Seed,
	})
	if err != nil {
		s.logger.Warn("new game rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := newSession(g, recorder, maxTurns)
	s.store.Add(session)
	s.logger.Info("game started",
		zap.String("session", session.ID),
		zap.String("template0", req.Template0),
		zap.String("template1", req.Template1),
	)

	var sv view.StateView
	session.Snapshot(func(g *game.GameState) { sv = view.BuildStateView(g) })
	writeJSON(w, NewGameResponse{ID: session.ID, State: sv})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var sv view.StateView
	session.Snapshot(func(g *game.GameState) { sv = view.BuildStateView(g) })
	writeJSON(w, sv)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	lines := session.Step()
	var sv view.StateView
	session.Snapshot(func(g *game.GameState) { sv = view.BuildStateView(g) })
	writeJSON(w, StepResponse{Lines: lines, State: sv})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	lines := session.Run()
	var sv view.StateView
	session.Snapshot(func(g *game.GameState) { sv = view.BuildStateView(g) })
	writeJSON(w, StepResponse{Lines: lines, State: sv})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, view.BuildEventViews(session.Events()))
}

// handleWebSocket streams transcript events for one session as JSON text
// frames until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	events, cancel := session.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				wsConn.Close(websocket.StatusNormalClosure, "session closed")
				return
			}
			data, err := json.Marshal(view.BuildEventViews([]log.GameEvent{ev})[0])
			if err != nil {
				continue
			}
			if err := wsConn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.cfg.Server.Addr))
	return http.ListenAndServe(s.cfg.Server.Addr, s.mux)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
