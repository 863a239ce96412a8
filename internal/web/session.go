package web

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kmreiser/veil/internal/game"
	"github.com/kmreiser/veil/internal/log"
)

// Session is one running simulation owned by the web server. All access to
// the underlying game goes through the session lock; event subscribers get
// their own copy of each transcript event.
type Session struct {
	ID       string
	MaxTurns int

	mu       sync.Mutex
	game     *game.GameState
	recorder *log.MemoryLogger
	sent     int // events already broadcast
	subs     map[chan log.GameEvent]struct{}
}

func newSession(g *game.GameState, recorder *log.MemoryLogger, maxTurns int) *Session {
	return &Session{
		ID:       uuid.NewString(),
		MaxTurns: maxTurns,
		game:     g,
		recorder: recorder,
		subs:     make(map[chan log.GameEvent]struct{}),
	}
}

// Step advances the simulation by one turn and returns the transcript lines
// it produced. Stepping a finished game is a no-op.
func (s *Session) Step() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.Over() || s.game.Turn > s.MaxTurns {
		return nil
	}
	lines := s.game.Step()
	s.broadcastLocked()
	return lines
}

// Run plays the simulation to completion under the session's turn cap.
// Running a finished game is a no-op.
func (s *Session) Run() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.Over() || s.game.Turn > s.MaxTurns {
		return nil
	}
	lines := s.game.PlayUntilOver(s.MaxTurns)
	s.broadcastLocked()
	return lines
}

// Snapshot calls fn with the game under the session lock.
func (s *Session) Snapshot(fn func(*game.GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Events returns a copy of the transcript so far.
func (s *Session) Events() []log.GameEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]log.GameEvent(nil), s.recorder.Events()...)
}

// Subscribe registers a live transcript feed. Events already logged are
// replayed into the channel before new ones arrive.
func (s *Session) Subscribe() (<-chan log.GameEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan log.GameEvent, 256)
	for _, ev := range s.recorder.Events() {
		select {
		case ch <- ev:
		default:
		}
	}
	s.subs[ch] = struct{}{}
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() {
	events := s.recorder.Events()
	for ; s.sent < len(events); s.sent++ {
		for ch := range s.subs {
			select {
			case ch <- events[s.sent]:
			default: // slow subscriber drops events rather than stalling the sim
			}
		}
	}
}

// SessionStore holds live sessions by ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (st *SessionStore) Add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no session %q", id)
	}
	return s, nil
}
