// Package view builds JSON-serializable snapshots of a running game for the
// web and MCP drivers. The simulation is fully automated and all information
// is open, so both seats are rendered identically.
package view

import (
	"github.com/kmreiser/veil/internal/game"
	"github.com/kmreiser/veil/internal/log"
)

// StateView is a full-board snapshot after some number of turns.
type StateView struct {
	Turn     int           `json:"turn"`
	Players  [2]PlayerView `json:"players"`
	StackTop []string      `json:"stack,omitempty"`
	Over     bool          `json:"over"`
	Winner   string        `json:"winner,omitempty"`
	Reason   string        `json:"reason,omitempty"`
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Name           string     `json:"name"`
	Fear           int        `json:"fear"`
	Belief         int        `json:"belief"`
	Instability    int        `json:"instability"`
	Influence      int        `json:"influence"`
	Hand           []CardView `json:"hand"`
	Battlefield    []CardView `json:"battlefield"`
	Territories    []CardView `json:"territories"`
	TerritoryQueue []string   `json:"territory_queue,omitempty"`
	DeckCount      int        `json:"deck_count"`
}

// CardView describes a single card in a zone.
type CardView struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	CostFear      int    `json:"cost_fear,omitempty"`
	CostBelief    int    `json:"cost_belief,omitempty"`
	Power         int    `json:"power,omitempty"`
	Defense       int    `json:"defense,omitempty"`
	Speed         int    `json:"speed,omitempty"`
	Health        int    `json:"health,omitempty"`
	CurrentHealth int    `json:"current_health,omitempty"`
	Text          string `json:"text,omitempty"`
}

// EventView is a single transcript event.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// BuildStateView snapshots the current game state.
func BuildStateView(g *game.GameState) StateView {
	sv := StateView{
		Turn:     g.Turn,
		StackTop: g.Stack.Describe(),
		Over:     g.Over(),
		Reason:   g.GameOverReason,
	}
	if g.Winner != nil {
		sv.Winner = g.Winner.Name
	}
	for i, p := range g.Players {
		sv.Players[i] = buildPlayerView(p)
	}
	return sv
}

func buildPlayerView(p *game.PlayerState) PlayerView {
	pv := PlayerView{
		Name:        p.Name,
		Fear:        p.Resources.Fear,
		Belief:      p.Resources.Belief,
		Instability: p.Resources.Instability(),
		Influence:   p.Influence,
		DeckCount:   len(p.Deck),
	}
	for _, c := range p.Hand {
		pv.Hand = append(pv.Hand, BuildCardView(c))
	}
	for _, c := range p.Battlefield {
		pv.Battlefield = append(pv.Battlefield, BuildCardView(c))
	}
	for _, c := range p.Territories {
		pv.Territories = append(pv.Territories, BuildCardView(c))
	}
	for _, c := range p.TerritoryQueue {
		pv.TerritoryQueue = append(pv.TerritoryQueue, c.Name)
	}
	return pv
}

// BuildCardView renders a card, populating only its variant's fields.
func BuildCardView(c *game.Card) CardView {
	cv := CardView{
		Name:       c.Name,
		Type:       c.Type.String(),
		CostFear:   c.CostFear,
		CostBelief: c.CostBelief,
		Text:       c.Text,
	}
	if c.Type == game.CardTypeCryptid {
		cv.Power = c.Stats.Power
		cv.Defense = c.Stats.Defense
		cv.Speed = c.Stats.Speed
		cv.Health = c.Stats.Health
		cv.CurrentHealth = c.CurrentHealth
	}
	return cv
}

// BuildEventViews converts logged events for transport.
func BuildEventViews(events []log.GameEvent) []EventView {
	out := make([]EventView, 0, len(events))
	for _, ev := range events {
		out = append(out, EventView{
			Seq:     ev.Seq,
			Turn:    ev.Turn,
			Phase:   ev.Phase,
			Player:  ev.Player,
			Type:    ev.Type.String(),
			Card:    ev.Card,
			Details: ev.Details,
		})
	}
	return out
}
