package mcp

import (
	"encoding/json"
	"sync"

	"github.com/kmreiser/veil/internal/game"
	"github.com/kmreiser/veil/internal/log"
	"github.com/kmreiser/veil/internal/view"
)

// SimSession wraps one running simulation for the stdio MCP process.
type SimSession struct {
	mu       sync.Mutex
	game     *game.GameState
	recorder *log.MemoryLogger
	maxTurns int
	reported int // events already returned by step/play responses
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Lines    []string         `json:"lines,omitempty"`
	Events   []view.EventView `json:"events"`
	State    *view.StateView  `json:"state,omitempty"`
	GameOver bool             `json:"game_over"`
	Winner   string           `json:"winner,omitempty"`
	Result   string           `json:"result,omitempty"`
}

// NewSimSession builds the decks from their templates and deals the opening
// hands.
func NewSimSession(decksPath, template0, template1, player0, player1 string, seed int64, maxTurns int) (*SimSession, error) {
	recorder := log.NewMemoryLogger()
	g, err := game.NewGameFromTemplates(decksPath, template0, template1, game.GameConfig{
		Player0: player0,
		Player1: player1,
		Logger:  recorder,
		Seed:    seed,
	})
	if err != nil {
		return nil, err
	}
	if maxTurns <= 0 {
		maxTurns = game.DefaultMaxTurns
	}
	return &SimSession{game: g, recorder: recorder, maxTurns: maxTurns}, nil
}

// StepTurn advances the simulation by one turn.
func (s *SimSession) StepTurn() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	var lines []string
	if !s.game.Over() && s.game.Turn <= s.maxTurns {
		lines = s.game.Step()
	}
	return s.buildResponseLocked(lines, true)
}

// PlayUntilOver runs the simulation to completion under the turn cap.
// Replaying a finished game is a no-op.
func (s *SimSession) PlayUntilOver() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	var lines []string
	if !s.game.Over() && s.game.Turn <= s.maxTurns {
		lines = s.game.PlayUntilOver(s.maxTurns)
	}
	return s.buildResponseLocked(lines, true)
}

// State reports the current board without advancing the simulation or
// consuming the fresh-event cursor.
func (s *SimSession) State() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildResponseLocked(nil, false)
}

// Transcript returns every transcript event logged so far.
func (s *SimSession) Transcript() []view.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.BuildEventViews(s.recorder.Events())
}

func (s *SimSession) buildResponseLocked(lines []string, consume bool) *ToolResponse {
	fresh := []view.EventView{}
	if consume {
		events := s.recorder.Events()
		fresh = view.BuildEventViews(events[s.reported:])
		s.reported = len(events)
		if fresh == nil {
			fresh = []view.EventView{}
		}
	}

	sv := view.BuildStateView(s.game)
	resp := &ToolResponse{
		Lines:    lines,
		Events:   fresh,
		State:    &sv,
		GameOver: s.game.Over(),
		Result:   s.game.GameOverReason,
	}
	if s.game.Winner != nil {
		resp.Winner = s.game.Winner.Name
	}
	return resp
}

func respondJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal response"}`
	}
	return string(data)
}
