package game

import (
	"fmt"
	"sort"

	"github.com/kmreiser/veil/internal/log"
)

// runCombatPhase resolves exactly one attack from the active player into the
// opposing player. No counter-damage, no multi-attacker combat.
func (g *GameState) runCombatPhase(attacker, defender *PlayerState) {
	gTurn := g.Turn

	attackers := attacker.LivingCryptids()
	if len(attackers) == 0 {
		g.emit(log.NewNoAttackersEvent(gTurn, attacker.Name))
		return
	}

	card := selectAttacker(attackers)
	move := selectMove(card, attacker.Resources)

	damage := card.Stats.Power
	moveName := "basic strike"
	if move != nil {
		damage += move.Damage
		moveName = move.Name
	}

	blockers := defender.LivingCryptids()
	if len(blockers) == 0 {
		defender.LoseInfluence(damage)
		g.emit(log.NewDirectStrikeEvent(gTurn, attacker.Name, card.Name, fmt.Sprintf(
			"%s's %s strikes directly for %d influence damage. %s now at %d.",
			attacker.Name, card.Name, damage, defender.Name, defender.Influence)))
		return
	}

	target := selectBlocker(blockers)
	// Defense mitigates but never reduces damage below 1.
	dealt := damage - target.Stats.Defense
	if dealt < 1 {
		dealt = 1
	}
	target.CurrentHealth -= dealt
	g.emit(log.NewCombatEvent(gTurn, attacker.Name, card.Name, fmt.Sprintf(
		"%s's %s uses %s for %d damage into %s's %s (DEF %d), dealing %d after prevention.",
		attacker.Name, card.Name, moveName, damage, defender.Name, target.Name, target.Stats.Defense, dealt)))

	if target.CurrentHealth <= 0 {
		g.emit(log.NewDefeatEvent(gTurn, target.Name))
		defender.RemoveFromBattlefield(target)
	}
}

// selectAttacker picks the eligible attacker with the highest (speed, power),
// descending.
func selectAttacker(attackers []*Card) *Card {
	sorted := append([]*Card(nil), attackers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Stats.Speed != sorted[j].Stats.Speed {
			return sorted[i].Stats.Speed > sorted[j].Stats.Speed
		}
		return sorted[i].Stats.Power > sorted[j].Stats.Power
	})
	return sorted[0]
}

// selectBlocker picks the weakest blocker: lowest (current health, defense),
// ascending.
func selectBlocker(blockers []*Card) *Card {
	sorted := append([]*Card(nil), blockers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CurrentHealth != sorted[j].CurrentHealth {
			return sorted[i].CurrentHealth < sorted[j].CurrentHealth
		}
		return sorted[i].Stats.Defense < sorted[j].Stats.Defense
	})
	return sorted[0]
}

// selectMove scans moves in listed order and picks the first affordable one,
// debiting its cost immediately. Returns nil when nothing is affordable; the
// attacker then falls back to a costless basic strike.
func selectMove(cryptid *Card, pool *ResourcePool) *Move {
	for i := range cryptid.Moves {
		mv := &cryptid.Moves[i]
		if pool.Spend(mv.CostFear, mv.CostBelief) {
			return mv
		}
	}
	return nil
}
