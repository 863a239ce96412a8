package game

import (
	"path/filepath"
	"testing"

	"github.com/kmreiser/veil/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoDecksFile() string {
	return filepath.Join("..", "..", "decks.yaml")
}

func territoryDeck(n int) []*Card {
	deck := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		deck = append(deck, DrownedChapel())
	}
	return deck
}

func TestNewGameSetup(t *testing.T) {
	g, _ := newTestGame(t, territoryDeck(10), territoryDeck(10))

	for seat, p := range g.Players {
		assert.Len(t, p.Hand, InitialHandSize, "seat %d hand", seat)
		assert.Len(t, p.TerritoryQueue, 3, "seat %d queue", seat)
		assert.Equal(t, StartingInfluence, p.Influence, "seat %d influence", seat)
		assert.Len(t, p.Deck, 7, "seat %d deck", seat)
	}
	assert.Equal(t, "Alice", g.Players[0].Name)
	assert.Equal(t, "Bob", g.Players[1].Name)
	assert.Equal(t, 1, g.Turn)
	assert.False(t, g.Over())
}

func TestSeatOneActsOnTurnOne(t *testing.T) {
	g, logger := newTestGame(t, territoryDeck(5), territoryDeck(5))

	assert.Equal(t, "Bob", g.ActivePlayer().Name)
	g.Step()
	assert.Equal(t, "Alice", g.ActivePlayer().Name)

	draws := logger.EventsOfType(log.EventDraw)
	require.NotEmpty(t, draws)
	assert.Equal(t, "Bob", draws[0].Player)
}

func TestStepRunsFullPhaseLoop(t *testing.T) {
	g, logger := newTestGame(t, territoryDeck(5), territoryDeck(5))

	lines := g.Step()
	require.NotEmpty(t, lines)
	assert.Equal(t, "-- Turn 1 --", lines[0])

	events := logger.Events()
	assert.Equal(t, log.EventTurnStart, events[0].Type)

	// End phase precedes stack resolution, which drains everything pushed
	// during the turn.
	var sawEnd, sawResolve bool
	for _, ev := range events {
		if ev.Type == log.EventEndPhase {
			sawEnd = true
			assert.False(t, sawResolve, "stack resolved before end phase")
		}
		if ev.Type == log.EventStackResolve {
			sawResolve = true
		}
	}
	assert.True(t, sawEnd)
	assert.True(t, sawResolve)
	assert.True(t, g.Stack.IsEmpty())
}

func TestStepReportsEmptyDeck(t *testing.T) {
	g, logger := newTestGame(t, nil, nil)

	g.Step()

	empties := logger.EventsOfType(log.EventDeckEmpty)
	require.NotEmpty(t, empties)
	assert.Equal(t, "Bob would draw but the deck is empty.", empties[0].Details)
}

func TestInfluenceWin(t *testing.T) {
	g, logger := newTestGame(t, territoryDeck(5), territoryDeck(5))
	g.Players[0].Influence = 0

	g.Step()

	require.True(t, g.Over())
	assert.Equal(t, "Bob", g.Winner.Name)
	assert.Equal(t, "Alice is out of influence.", g.GameOverReason)

	wins := logger.EventsOfType(log.EventWin)
	require.Len(t, wins, 1)
	assert.Equal(t, "Bob", wins[0].Player)
}

func TestWinnerIsLatched(t *testing.T) {
	g, _ := newTestGame(t, territoryDeck(5), territoryDeck(5))
	g.Players[0].Influence = 0

	g.Step()
	winner, reason := g.Winner, g.GameOverReason

	// Even if the other seat later reaches a defeat condition, the first
	// decision stands.
	g.Players[1].Influence = 0
	g.Step()
	assert.Same(t, winner, g.Winner)
	assert.Equal(t, reason, g.GameOverReason)
}

func TestDeckOutDefeat(t *testing.T) {
	// Both seats have nothing at all; seat order breaks the tie, so Alice is
	// found defeated first and Bob wins.
	g, _ := newTestGame(t, nil, nil)
	g.Players[0].TerritoryQueue = nil
	g.Players[1].TerritoryQueue = nil

	g.Step()

	require.True(t, g.Over())
	assert.Equal(t, "Bob", g.Winner.Name)
	assert.Equal(t, "Alice is out of cards and creatures.", g.GameOverReason)
}

func TestCryptidOnFieldPreventsDeckOut(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	g.Players[0].TerritoryQueue = nil
	g.Players[1].TerritoryQueue = nil
	onBattlefield(g.Players[0], MothSentinel())

	g.Step()

	// Alice still holds a living cryptid; Bob is now the defeated seat.
	require.True(t, g.Over())
	assert.Equal(t, "Alice", g.Winner.Name)
	assert.Equal(t, "Bob is out of cards and creatures.", g.GameOverReason)
}

func TestPlayUntilOverTurnLimit(t *testing.T) {
	g, _ := newTestGame(t, territoryDeck(20), territoryDeck(20))

	lines := g.PlayUntilOver(4)

	assert.False(t, g.Over())
	assert.Equal(t, "Reached turn limit 4.", g.GameOverReason)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Reached turn limit 4.", lines[len(lines)-1])
}

func TestPlayUntilOverAppendsWinnerLine(t *testing.T) {
	g, _ := newTestGame(t, territoryDeck(5), territoryDeck(5))
	g.Players[0].Influence = 1
	onBattlefield(g.Players[1], SewerLeviathan())

	lines := g.PlayUntilOver(10)

	require.True(t, g.Over())
	assert.Equal(t, "Bob", g.Winner.Name)
	assert.Equal(t, "Bob wins! Alice is out of influence.", lines[len(lines)-1])
}

func TestNewGameFromTemplates(t *testing.T) {
	logger := log.NewMemoryLogger()
	g, err := NewGameFromTemplates(repoDecksFile(), "balanced", "fearful", GameConfig{
		Logger: logger,
		Seed:   7,
	})
	require.NoError(t, err)

	assert.Len(t, g.Players[0].Hand, InitialHandSize)
	assert.Len(t, g.Players[1].Hand, InitialHandSize)
	assert.NotEmpty(t, g.Players[0].Deck)
}

func TestNewGameFromTemplatesUnknownTemplate(t *testing.T) {
	_, err := NewGameFromTemplates(repoDecksFile(), "balanced", "summoning", GameConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat 1")
	assert.Contains(t, err.Error(), "summoning")
}

func TestSeededGamesAreIdentical(t *testing.T) {
	run := func() string {
		logger := log.NewMemoryLogger()
		g, err := NewGameFromTemplate(repoDecksFile(), "balanced", GameConfig{
			Logger: logger,
			Seed:   42,
		})
		require.NoError(t, err)
		g.PlayUntilOver(DefaultMaxTurns)
		return log.FormatAll(logger.Events())
	}

	assert.Equal(t, run(), run())
}
