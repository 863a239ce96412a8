package game

import (
	"fmt"
	"strings"
)

const StartingInfluence = 20

// PlayerState is one player's entire mutable state. Ownership stays with
// GameState; card effects receive explicit handles instead of aliasing it.
type PlayerState struct {
	Name           string
	Resources      *ResourcePool
	Battlefield    []*Card // insertion order = play order
	Territories    []*Card // settled territories, for inspection only
	TerritoryQueue []*Card // territories awaiting entry, FIFO
	Deck           []*Card // front of slice is drawn first
	Hand           []*Card // order = draw order
	Influence      int
}

func NewPlayerState(name string) *PlayerState {
	return &PlayerState{
		Name:      name,
		Resources: &ResourcePool{},
		Influence: StartingInfluence,
	}
}

// DrawCard moves the front card of the deck into the hand. Returns false if
// the deck is empty; an empty deck is an expected game state, not an error.
func (p *PlayerState) DrawCard() (*Card, bool) {
	if len(p.Deck) == 0 {
		return nil, false
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	p.Hand = append(p.Hand, card)
	return card, true
}

// removeFromHand removes the given card instance from the hand.
func (p *PlayerState) removeFromHand(card *Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// PlayTerritory puts a queued territory into play: the yield is granted
// immediately and one stack item announces the entry.
func (p *PlayerState) PlayTerritory(territory *Card, stack *ActionStack) string {
	p.Territories = append(p.Territories, territory)
	p.Resources.Add(territory.YieldFear, territory.YieldBelief)
	stack.Push(StackItem{Description: fmt.Sprintf("%s enters and generates resources", territory.Name)})
	return territory.YieldText()
}

// SettleTerritoryCard plays a territory from hand. Territories are always
// legal: they are committed without an affordability check.
func (p *PlayerState) SettleTerritoryCard(card *Card, stack *ActionStack) string {
	p.Territories = append(p.Territories, card)
	p.Resources.Add(card.YieldFear, card.YieldBelief)
	stack.Push(StackItem{Description: fmt.Sprintf("%s settles %s", p.Name, card.Name)})
	return card.YieldText()
}

// Summon puts a cryptid onto the battlefield: health is reset to max and one
// stack item is pushed per branch stub. Affordability failures are returned
// as descriptive strings without mutating any state.
func (p *PlayerState) Summon(cryptid *Card, stack *ActionStack) string {
	if !cryptid.CanPlay(p.Resources) {
		return fmt.Sprintf("%s cannot afford %s.", p.Name, cryptid.Name)
	}
	if !cryptid.PayCost(p.Resources) {
		return fmt.Sprintf("%s failed to pay cost for %s.", p.Name, cryptid.Name)
	}
	cryptid.ResetHealth()
	p.Battlefield = append(p.Battlefield, cryptid)
	for _, trigger := range cryptid.SpawnTriggers() {
		stack.Push(trigger)
	}
	return fmt.Sprintf("%s summons %s (%s).", p.Name, cryptid.Name, cryptid.Stats.Describe())
}

// CastEvent pays for an event and pushes exactly one stack item carrying its
// impact text.
func (p *PlayerState) CastEvent(event *Card, stack *ActionStack) string {
	if !event.CanPlay(p.Resources) {
		return fmt.Sprintf("%s cannot afford %s.", p.Name, event.Name)
	}
	if !event.PayCost(p.Resources) {
		return fmt.Sprintf("%s failed to pay cost for %s.", p.Name, event.Name)
	}
	stack.Push(event.EventStackItem(p.Name))
	return fmt.Sprintf("%s casts %s.", p.Name, event.Name)
}

// EstablishGod puts a god onto the battlefield and pushes one announcement
// stack item. The prayer effect is invoked separately each main phase.
func (p *PlayerState) EstablishGod(god *Card, stack *ActionStack) string {
	if !god.CanPlay(p.Resources) {
		return fmt.Sprintf("%s cannot afford %s.", p.Name, god.Name)
	}
	if !god.PayCost(p.Resources) {
		return fmt.Sprintf("%s failed to pay cost for %s.", p.Name, god.Name)
	}
	p.Battlefield = append(p.Battlefield, god)
	stack.Push(StackItem{Description: fmt.Sprintf("%s establishes %s", p.Name, god.Name)})
	text := god.PrayerText
	if text == "" {
		text = god.Text
	}
	return fmt.Sprintf("%s invokes %s: %s", p.Name, god.Name, text)
}

// PlayFirstEligible scans the hand in draw order and plays the first legal
// card: territories unconditionally, anything else only if affordable. At
// most one card is played; if none qualify the player holds position. The
// played card is returned alongside the log line (nil when holding).
func (p *PlayerState) PlayFirstEligible(stack *ActionStack) (string, *Card) {
	for _, card := range p.Hand {
		switch card.Type {
		case CardTypeTerritory:
			p.removeFromHand(card)
			return p.SettleTerritoryCard(card, stack), card
		case CardTypeCryptid:
			if card.CanPlay(p.Resources) {
				p.removeFromHand(card)
				return p.Summon(card, stack), card
			}
		case CardTypeEvent:
			if card.CanPlay(p.Resources) {
				p.removeFromHand(card)
				return p.CastEvent(card, stack), card
			}
		case CardTypeGod:
			if card.CanPlay(p.Resources) {
				p.removeFromHand(card)
				return p.EstablishGod(card, stack), card
			}
		}
	}
	hand := make([]string, 0, len(p.Hand))
	for _, c := range p.Hand {
		hand = append(hand, c.Name)
	}
	handDesc := strings.Join(hand, ", ")
	if handDesc == "" {
		handDesc = "empty"
	}
	return fmt.Sprintf("%s holds position, hand: %s; resources: %s.", p.Name, handDesc, p.Resources.Describe()), nil
}

// PrayWithGods triggers every god on the battlefield once, in play order.
// Each prayer pushes one stack item and produces its own log line
// immediately; prayer effects are not deferred through the stack.
func (p *PlayerState) PrayWithGods(opponent *PlayerState, stack *ActionStack) []string {
	var prayers []string
	for _, card := range p.Battlefield {
		if card.Type != CardTypeGod {
			continue
		}
		result := fmt.Sprintf("%s offers no answer.", card.Name)
		if card.Pray != nil {
			result = card.Pray(p, opponent)
		}
		prayers = append(prayers, fmt.Sprintf("%s prays to %s. %s", p.Name, card.Name, result))
		stack.Push(StackItem{Description: fmt.Sprintf("%s hears a prayer", card.Name)})
	}
	return prayers
}

// LivingCryptids returns battlefield cryptids with health above zero, in
// play order.
func (p *PlayerState) LivingCryptids() []*Card {
	var result []*Card
	for _, c := range p.Battlefield {
		if c.Type == CardTypeCryptid && c.CurrentHealth > 0 {
			result = append(result, c)
		}
	}
	return result
}

// RemoveFromBattlefield removes the given card instance from play.
func (p *PlayerState) RemoveFromBattlefield(card *Card) {
	for i, c := range p.Battlefield {
		if c == card {
			p.Battlefield = append(p.Battlefield[:i], p.Battlefield[i+1:]...)
			return
		}
	}
}

// LoseInfluence reduces influence by the given amount, floored at zero.
func (p *PlayerState) LoseInfluence(amount int) {
	p.Influence -= amount
	if p.Influence < 0 {
		p.Influence = 0
	}
}
