package game

import (
	"fmt"
	"math/rand"

	"github.com/kmreiser/veil/internal/log"
)

const (
	InitialHandSize = 3
	DefaultMaxTurns = 30
)

// GameConfig holds everything needed to set up a game.
type GameConfig struct {
	Player0, Player1 string  // seat names; default Alice and Bob
	Deck0, Deck1     []*Card // ordered card instances, front drawn first
	Logger           log.EventLogger
	Seed             int64 // RNG seed for the setup shuffle (0 = random)
	NoShuffle        bool  // skip the shuffle, for deterministic tests
}

// GameState orchestrates one full game between two players. It is strictly
// single-threaded: Step runs to completion before returning and all state is
// mutated in place by the caller's goroutine.
type GameState struct {
	Players        [2]*PlayerState
	Stack          *ActionStack
	Phases         PhaseLoop
	Turn           int // 1-based
	Winner         *PlayerState
	GameOverReason string
	Logger         log.EventLogger

	turnLog []string // lines collected while the current Step runs
}

// NewGame builds an initialized two-player game: starter territories queued,
// decks shuffled once, and initial hands drawn.
func NewGame(cfg GameConfig) *GameState {
	name0, name1 := cfg.Player0, cfg.Player1
	if name0 == "" {
		name0 = "Alice"
	}
	if name1 == "" {
		name1 = "Bob"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	p0 := NewPlayerState(name0)
	p1 := NewPlayerState(name1)
	p0.TerritoryQueue = starterTerritories(0)
	p1.TerritoryQueue = starterTerritories(1)
	p0.Deck = append(p0.Deck, cfg.Deck0...)
	p1.Deck = append(p1.Deck, cfg.Deck1...)

	if !cfg.NoShuffle {
		rng := rand.New(rand.NewSource(cfg.Seed))
		if cfg.Seed == 0 {
			rng = rand.New(rand.NewSource(rand.Int63()))
		}
		shuffleDeck(rng, p0.Deck)
		shuffleDeck(rng, p1.Deck)
	}

	for _, p := range []*PlayerState{p0, p1} {
		for i := 0; i < InitialHandSize; i++ {
			p.DrawCard()
		}
	}

	return &GameState{
		Players: [2]*PlayerState{p0, p1},
		Stack:   NewActionStack(),
		Phases:  DefaultPhases(),
		Turn:    1,
		Logger:  logger,
	}
}

// NewGameFromTemplate builds both decks from the named template in the given
// decks file. Unknown templates or card names are configuration errors and
// abort construction.
func NewGameFromTemplate(decksPath, template string, cfg GameConfig) (*GameState, error) {
	return NewGameFromTemplates(decksPath, template, template, cfg)
}

// NewGameFromTemplates builds each seat's deck from its own named template.
func NewGameFromTemplates(decksPath, template0, template1 string, cfg GameConfig) (*GameState, error) {
	deck0, err := DeckByName(decksPath, template0)
	if err != nil {
		return nil, fmt.Errorf("build deck for seat 0: %w", err)
	}
	deck1, err := DeckByName(decksPath, template1)
	if err != nil {
		return nil, fmt.Errorf("build deck for seat 1: %w", err)
	}
	cfg.Deck0 = deck0
	cfg.Deck1 = deck1
	return NewGame(cfg), nil
}

func shuffleDeck(rng *rand.Rand, deck []*Card) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// Over reports whether a winner has been decided.
func (g *GameState) Over() bool {
	return g.Winner != nil
}

// ActivePlayer returns the seat that acts on the current turn.
func (g *GameState) ActivePlayer() *PlayerState {
	return g.Players[g.Turn%2]
}

// OpposingPlayer returns the seat that defends on the current turn.
func (g *GameState) OpposingPlayer() *PlayerState {
	return g.Players[(g.Turn+1)%2]
}

// emit logs the event and collects its detail line into the current turn log.
func (g *GameState) emit(event log.GameEvent) {
	g.Logger.Log(event)
	g.turnLog = append(g.turnLog, event.Details)
}

// Step executes one full turn for the active player and returns the turn's
// log lines. Win conditions are final: once a winner is set, later checks
// never overwrite it, and callers are expected to stop stepping.
func (g *GameState) Step() []string {
	g.turnLog = nil
	active, opposing := g.ActivePlayer(), g.OpposingPlayer()

	g.emit(log.NewTurnStartEvent(g.Turn, active.Name))

	for _, phase := range g.Phases.Order {
		switch phase {
		case PhaseStart:
			if card, ok := active.DrawCard(); ok {
				g.emit(log.NewDrawEvent(g.Turn, active.Name, card.Name))
			} else {
				g.emit(log.NewDeckEmptyEvent(g.Turn, active.Name))
			}
		case PhaseMain:
			g.runMainPhase(active, opposing)
		case PhaseCombat:
			g.runCombatPhase(active, opposing)
		case PhaseEnd:
			g.emit(log.NewEndPhaseEvent(g.Turn, active.Name))
		}
	}

	for _, line := range g.Stack.ResolveAll() {
		g.emit(log.NewStackResolveEvent(g.Turn, line))
	}

	g.checkWinner()

	g.Turn++
	return g.turnLog
}

// runMainPhase plays the front queued territory, auto-plays at most one card
// from hand, then triggers every god's prayer against the opponent.
func (g *GameState) runMainPhase(player, opponent *PlayerState) {
	if len(player.TerritoryQueue) > 0 {
		territory := player.TerritoryQueue[0]
		player.TerritoryQueue = player.TerritoryQueue[1:]
		g.emit(log.NewSettleEvent(g.Turn, player.Name, territory.Name,
			player.PlayTerritory(territory, g.Stack)))
	}

	if len(player.Hand) > 0 {
		line, played := player.PlayFirstEligible(g.Stack)
		switch {
		case played == nil:
			g.emit(log.NewHoldEvent(g.Turn, player.Name, line))
		case played.Type == CardTypeTerritory:
			g.emit(log.NewSettleEvent(g.Turn, player.Name, played.Name, line))
		case played.Type == CardTypeCryptid:
			g.emit(log.NewSummonEvent(g.Turn, player.Name, played.Name, line))
		case played.Type == CardTypeEvent:
			g.emit(log.NewCastEvent(g.Turn, player.Name, played.Name, line))
		case played.Type == CardTypeGod:
			g.emit(log.NewEstablishEvent(g.Turn, player.Name, played.Name, line))
		}
	} else {
		g.emit(log.NewHoldEvent(g.Turn, player.Name, fmt.Sprintf("%s has no cards in hand.", player.Name)))
	}

	for _, prayer := range player.PrayWithGods(opponent, g.Stack) {
		g.emit(log.NewPrayerEvent(g.Turn, player.Name, "", prayer))
	}
}

// checkWinner evaluates win conditions in priority order: influence defeat
// first, then deck-out (empty deck, empty hand, no living cryptid). Players
// are checked in fixed seat order and the first defeat found decides the
// game.
func (g *GameState) checkWinner() {
	if g.Winner != nil {
		return
	}

	var defeated *PlayerState
	for _, player := range g.Players {
		if player.Influence <= 0 {
			defeated = player
			g.GameOverReason = fmt.Sprintf("%s is out of influence.", player.Name)
			break
		}
	}

	if defeated == nil {
		for _, player := range g.Players {
			if len(player.Deck) == 0 && len(player.Hand) == 0 && len(player.LivingCryptids()) == 0 {
				defeated = player
				g.GameOverReason = fmt.Sprintf("%s is out of cards and creatures.", player.Name)
				break
			}
		}
	}

	if defeated != nil {
		if defeated == g.Players[0] {
			g.Winner = g.Players[1]
		} else {
			g.Winner = g.Players[0]
		}
		g.emit(log.NewWinEvent(g.Turn, g.Winner.Name, g.GameOverReason))
	}
}

// PlayUntilOver drives turns until a winner emerges or the turn cap is
// reached, concatenating all step logs and appending a final outcome line.
// The cap is checked between steps, never inside one.
func (g *GameState) PlayUntilOver(maxTurns int) []string {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	var fullLog []string
	for g.Winner == nil && g.Turn <= maxTurns {
		fullLog = append(fullLog, g.Step()...)
	}

	if g.Winner == nil && g.Turn > maxTurns {
		if g.GameOverReason == "" {
			g.GameOverReason = fmt.Sprintf("Reached turn limit %d.", maxTurns)
		}
	}

	if g.Winner != nil {
		line := fmt.Sprintf("%s wins! %s", g.Winner.Name, g.GameOverReason)
		g.Logger.Log(log.NewWinEvent(g.Turn, g.Winner.Name, line))
		fullLog = append(fullLog, line)
	} else if g.GameOverReason != "" {
		g.Logger.Log(log.NewTurnLimitEvent(g.Turn, g.GameOverReason))
		fullLog = append(fullLog, g.GameOverReason)
	}

	return fullLog
}
