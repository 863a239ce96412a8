package game

import (
	"testing"

	"github.com/kmreiser/veil/internal/log"
)

// testCryptid builds a vanilla cryptid with no moves or branches.
func testCryptid(name string, costFear, costBelief, power, defense, speed, health int) *Card {
	return &Card{
		Name:       name,
		Type:       CardTypeCryptid,
		CostFear:   costFear,
		CostBelief: costBelief,
		Stats: CombatStats{
			Power:      power,
			Resilience: 1,
			Health:     health,
			Defense:    defense,
			Speed:      speed,
		},
	}
}

func testTerritory(name string, yieldFear, yieldBelief int) *Card {
	return &Card{
		Name:        name,
		Type:        CardTypeTerritory,
		YieldFear:   yieldFear,
		YieldBelief: yieldBelief,
	}
}

// newTestGame builds a deterministic game: no shuffle, recorded events.
func newTestGame(t *testing.T, deck0, deck1 []*Card) (*GameState, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := NewGame(GameConfig{
		Deck0:     deck0,
		Deck1:     deck1,
		Logger:    logger,
		NoShuffle: true,
	})
	return g, logger
}

// onBattlefield places a cryptid directly into play at full health.
func onBattlefield(p *PlayerState, c *Card) {
	c.ResetHealth()
	p.Battlefield = append(p.Battlefield, c)
}
