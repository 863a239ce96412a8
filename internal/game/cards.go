package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type CardType int

const (
	CardTypeTerritory CardType = iota
	CardTypeCryptid
	CardTypeEvent
	CardTypeGod
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeTerritory:
		return "Territory"
	case CardTypeCryptid:
		return "Cryptid"
	case CardTypeEvent:
		return "Event"
	case CardTypeGod:
		return "God"
	default:
		return "Unknown"
	}
}

// --- Variant payloads ---

// CombatStats are a cryptid's fixed combat numbers. Health is the maximum;
// the mutable counter lives on the card instance.
type CombatStats struct {
	Power      int
	Resilience int
	Health     int
	Defense    int
	Speed      int
}

func (s CombatStats) Describe() string {
	return fmt.Sprintf("POW %d, RES %d, HP %d, DEF %d, SPD %d", s.Power, s.Resilience, s.Health, s.Defense, s.Speed)
}

// Move is an optional-cost, flat-damage combat action belonging to a cryptid.
// Move damage is added on top of the cryptid's base power.
type Move struct {
	Name       string
	CostFear   int
	CostBelief int
	Damage     int
}

// Branch is a named future-evolution stub attached to a cryptid. Branches are
// informational only: each spawns one stack item announcing itself.
type Branch struct {
	Name       string
	Trigger    string
	EffectText string
}

// PrayerFunc applies a god's prayer. It receives explicit handles to both
// players rather than capturing them, and returns the log line it produced.
type PrayerFunc func(owner, opponent *PlayerState) string

// --- Card ---

// Card is a single playable entity. The four variants share the cost
// contract and are dispatched by Type in a closed switch; only the fields
// for a card's own variant are populated.
type Card struct {
	Name       string
	Type       CardType
	CostFear   int
	CostBelief int
	Text       string
	Tags       []string
	Faction    string

	// Territory
	YieldFear   int
	YieldBelief int

	// Cryptid
	Stats         CombatStats
	CurrentHealth int
	Moves         []Move
	Branches      []Branch

	// Event
	Impact string

	// God
	PrayerText string
	Pray       PrayerFunc
}

func (c *Card) String() string {
	return c.Name
}

// CanPlay reports whether the pool can currently afford both cost components.
func (c *Card) CanPlay(pool *ResourcePool) bool {
	return pool.Fear >= c.CostFear && pool.Belief >= c.CostBelief
}

// PayCost debits the card's cost from the pool. The debit is atomic: on
// failure the pool is unchanged.
func (c *Card) PayCost(pool *ResourcePool) bool {
	return pool.Spend(c.CostFear, c.CostBelief)
}

// ResetHealth restores a cryptid's mutable health counter to its maximum.
// Called whenever the cryptid (re)enters play.
func (c *Card) ResetHealth() {
	c.CurrentHealth = c.Stats.Health
}

// YieldText describes a territory's one-time resource grant.
func (c *Card) YieldText() string {
	var parts []string
	if c.YieldFear > 0 {
		parts = append(parts, fmt.Sprintf("%d Fear", c.YieldFear))
	}
	if c.YieldBelief > 0 {
		parts = append(parts, fmt.Sprintf("%d Belief", c.YieldBelief))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s yields nothing.", c.Name)
	}
	return fmt.Sprintf("%s yields %s.", c.Name, strings.Join(parts, " and "))
}

// SpawnTriggers returns one announcement stack item per branch stub.
func (c *Card) SpawnTriggers() []StackItem {
	items := make([]StackItem, 0, len(c.Branches))
	for _, branch := range c.Branches {
		b := branch
		items = append(items, StackItem{
			Description: fmt.Sprintf("Evolution: %s", b.Name),
			Resolve: func() string {
				return fmt.Sprintf("%s notes future branch %q: %s", c.Name, b.Name, b.EffectText)
			},
		})
	}
	return items
}

// EventStackItem builds the single deferred effect produced by casting an
// event card.
func (c *Card) EventStackItem(owner string) StackItem {
	return StackItem{
		Description: fmt.Sprintf("%s casts %s", owner, c.Name),
		Resolve: func() string {
			return fmt.Sprintf("%s: %s", c.Name, c.Impact)
		},
	}
}
