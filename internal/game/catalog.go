package game

import "fmt"

// --- Territories ---

// LighthousePerch — Territory. Yields 1 Belief.
func LighthousePerch() *Card {
	return &Card{
		Name:        "Lighthouse Perch",
		Type:        CardTypeTerritory,
		Text:        "A beam that never wavers, even when the keeper does.",
		YieldBelief: 1,
	}
}

// ShadowedDock — Territory. Yields 1 Fear.
func ShadowedDock() *Card {
	return &Card{
		Name:      "Shadowed Dock",
		Type:      CardTypeTerritory,
		Text:      "Something bumps the pilings at night. Nobody checks.",
		YieldFear: 1,
	}
}

// FoggyCauseway — Territory. Yields 1 Belief.
func FoggyCauseway() *Card {
	return &Card{
		Name:        "Foggy Causeway",
		Type:        CardTypeTerritory,
		Text:        "Pilgrims cross it anyway.",
		YieldBelief: 1,
	}
}

// ForgottenAlley — Territory. Yields 1 Fear.
func ForgottenAlley() *Card {
	return &Card{
		Name:      "Forgotten Alley",
		Type:      CardTypeTerritory,
		Text:      "The city maps skip this block.",
		YieldFear: 1,
	}
}

// CandlelitLibrary — Territory. Yields 1 Belief.
func CandlelitLibrary() *Card {
	return &Card{
		Name:        "Candlelit Library",
		Type:        CardTypeTerritory,
		Text:        "Every banned book, annotated.",
		YieldBelief: 1,
	}
}

// StormDrain — Territory. Yields 1 Fear.
func StormDrain() *Card {
	return &Card{
		Name:      "Storm Drain",
		Type:      CardTypeTerritory,
		Text:      "The runoff carries more than rainwater.",
		YieldFear: 1,
	}
}

// DrownedChapel — Territory. Yields 1 Fear and 1 Belief.
func DrownedChapel() *Card {
	return &Card{
		Name:        "Drowned Chapel",
		Type:        CardTypeTerritory,
		Text:        "The congregation still gathers at low tide.",
		YieldFear:   1,
		YieldBelief: 1,
	}
}

// CollapsedMine — Territory. Yields 2 Fear.
func CollapsedMine() *Card {
	return &Card{
		Name:      "Collapsed Mine",
		Type:      CardTypeTerritory,
		Text:      "Twelve went down. The tapping never stopped.",
		YieldFear: 2,
	}
}

// RoadsideShrine — Territory. Yields 2 Belief.
func RoadsideShrine() *Card {
	return &Card{
		Name:        "Roadside Shrine",
		Type:        CardTypeTerritory,
		Text:        "Fresh flowers every morning, miles from anywhere.",
		YieldBelief: 2,
	}
}

// --- Cryptids ---

// MothSentinel — Cryptid, cost 1 Belief. Watchful guardian with omen and
// protector branches.
func MothSentinel() *Card {
	return &Card{
		Name:       "Moth Sentinel",
		Type:       CardTypeCryptid,
		CostBelief: 1,
		Text:       "Watchful guardian that pivots between omen and protector.",
		Stats:      CombatStats{Power: 1, Resilience: 2, Health: 3, Defense: 1, Speed: 3},
		Moves: []Move{
			{Name: "Dust Veil", CostBelief: 1, Damage: 1},
		},
		Branches: []Branch{
			{
				Name:       "Harbinger Wing",
				Trigger:    "When opponent gains Fear",
				EffectText: "May shift into omen form to tax future Territory plays.",
			},
			{
				Name:       "Beacon of Hope",
				Trigger:    "When belief exceeds fear by 3",
				EffectText: "Evolves into a protective aura that reduces Instability.",
			},
		},
	}
}

// BayouSerpent — Cryptid, cost 1 Fear. Swamp menace that feeds on lopsided
// resources.
func BayouSerpent() *Card {
	return &Card{
		Name:     "Bayou Serpent",
		Type:     CardTypeCryptid,
		CostFear: 1,
		Text:     "Swamp-dwelling menace that feeds on lopsided resources.",
		Stats:    CombatStats{Power: 2, Resilience: 1, Health: 3, Defense: 0, Speed: 2},
		Moves: []Move{
			{Name: "Tidal Strike", CostFear: 1, Damage: 2},
		},
		Branches: []Branch{
			{
				Name:       "Floodlash",
				Trigger:    "When a Territory is drained",
				EffectText: "Unleash a tidal strike scaling with Instability.",
			},
			{
				Name:       "Mirebound Coil",
				Trigger:    "At end step if fear > belief",
				EffectText: "Constrains enemy resources, delaying their next main phase.",
			},
		},
	}
}

// RustboundHound — Cryptid, cost 1 Fear 1 Belief. Mechanical tracker locked
// onto volatile energy.
func RustboundHound() *Card {
	return &Card{
		Name:       "Rustbound Hound",
		Type:       CardTypeCryptid,
		CostFear:   1,
		CostBelief: 1,
		Text:       "Mechanical tracker that locks onto volatile energy.",
		Stats:      CombatStats{Power: 2, Resilience: 2, Health: 4, Defense: 1, Speed: 4},
		Moves: []Move{
			{Name: "Spark Bite", CostFear: 1, Damage: 1},
			{Name: "Junkyard Howl", CostFear: 1, CostBelief: 1, Damage: 3},
		},
		Branches: []Branch{
			{
				Name:       "Junkyard Alpha",
				Trigger:    "When Instability >= 2",
				EffectText: "Bolsters allied cryptids when fear spikes.",
			},
			{
				Name:       "Courier of Sparks",
				Trigger:    "When belief is spent from a Territory",
				EffectText: "Carries a charge that refunds belief on successful strikes.",
			},
		},
	}
}

// PaleStag — Cryptid, cost 2 Belief. Slow, heavily warded herald.
func PaleStag() *Card {
	return &Card{
		Name:       "Pale Stag",
		Type:       CardTypeCryptid,
		CostBelief: 2,
		Text:       "Seen only at the edge of headlights, always walking away.",
		Stats:      CombatStats{Power: 1, Resilience: 3, Health: 5, Defense: 2, Speed: 1},
		Moves: []Move{
			{Name: "Antler Ward", CostBelief: 1, Damage: 1},
		},
		Branches: []Branch{
			{
				Name:       "Crowned Apparition",
				Trigger:    "When it survives combat three times",
				EffectText: "Takes on a regal form that shelters adjacent cryptids.",
			},
		},
	}
}

// SewerLeviathan — Cryptid, cost 2 Fear. Heavy attacker, fragile footing.
func SewerLeviathan() *Card {
	return &Card{
		Name:     "Sewer Leviathan",
		Type:     CardTypeCryptid,
		CostFear: 2,
		Text:     "The maintenance crews file their reports and quit.",
		Stats:    CombatStats{Power: 3, Resilience: 1, Health: 4, Defense: 0, Speed: 2},
		Moves: []Move{
			{Name: "Undertow Crush", CostFear: 2, Damage: 3},
		},
		Branches: []Branch{
			{
				Name:       "Tunnel Sovereign",
				Trigger:    "When fear exceeds belief by 3",
				EffectText: "Claims the waterways, draining an enemy Territory each turn.",
			},
		},
	}
}

// --- Events ---

// WhisperedRumor — Event, cost 1 Belief. Announcement effect.
func WhisperedRumor() *Card {
	return &Card{
		Name:       "Whispered Rumor",
		Type:       CardTypeEvent,
		CostBelief: 1,
		Text:       "The town talks.",
		Impact:     "Belief spreads faster than truth; the faithful hold their ground.",
	}
}

// Blackout — Event, cost 1 Fear. Announcement effect.
func Blackout() *Card {
	return &Card{
		Name:     "Blackout",
		Type:     CardTypeEvent,
		CostFear: 1,
		Text:     "Streetlights die across three blocks.",
		Impact:   "Darkness settles in; fear pools where the light used to be.",
	}
}

// WardOfSalt — Event, cost 1 Belief. Announcement effect; the prevention is
// narrative only.
func WardOfSalt() *Card {
	return &Card{
		Name:       "Ward of Salt",
		Type:       CardTypeEvent,
		CostBelief: 1,
		Text:       "A ring poured by steady hands.",
		Impact:     "The circle holds, preventing 1 damage to whatever shelters inside.",
	}
}

// --- Gods ---

// DrownedChoir — God, cost 2 Fear. Prayer converts the opponent's belief
// into the owner's fear.
func DrownedChoir() *Card {
	return &Card{
		Name:       "The Drowned Choir",
		Type:       CardTypeGod,
		CostFear:   2,
		Text:       "Voices from the harbor floor.",
		PrayerText: "Trade dread for doubt.",
		Pray: func(owner, opponent *PlayerState) string {
			opponent.Resources.Fear, opponent.Resources.Belief = spendOne(opponent.Resources.Fear, opponent.Resources.Belief)
			owner.Resources.Add(1, 0)
			return fmt.Sprintf("The choir sings; %s gains 1 Fear while %s's conviction wavers.", owner.Name, opponent.Name)
		},
	}
}

// LanternWarden — God, cost 2 Belief. Prayer mends the owner's weakest
// cryptid and grants belief.
func LanternWarden() *Card {
	return &Card{
		Name:       "The Lantern Warden",
		Type:       CardTypeGod,
		CostBelief: 2,
		Text:       "Keeper of every light left burning for someone.",
		PrayerText: "Mend what the dark has chewed.",
		Pray: func(owner, opponent *PlayerState) string {
			owner.Resources.Add(0, 1)
			for _, c := range owner.LivingCryptids() {
				if c.CurrentHealth < c.Stats.Health {
					c.CurrentHealth++
					return fmt.Sprintf("%s gains 1 Belief and the Warden mends %s for 1.", owner.Name, c.Name)
				}
			}
			return fmt.Sprintf("%s gains 1 Belief; the Warden finds nothing to mend.", owner.Name)
		},
	}
}

// HollowKing — God, cost 2 Fear 2 Belief. Prayer siphons influence.
func HollowKing() *Card {
	return &Card{
		Name:       "The Hollow King",
		Type:       CardTypeGod,
		CostFear:   2,
		CostBelief: 2,
		Text:       "A crown with nothing under it.",
		PrayerText: "Take what the crowd gives freely.",
		Pray: func(owner, opponent *PlayerState) string {
			opponent.LoseInfluence(1)
			return fmt.Sprintf("The Hollow King takes his due; %s loses 1 influence and now sits at %d.", opponent.Name, opponent.Influence)
		},
	}
}

// SleeperBelow — God, cost 3 Fear. No prayer is answered.
func SleeperBelow() *Card {
	return &Card{
		Name:       "The Sleeper Below",
		Type:       CardTypeGod,
		CostFear:   3,
		Text:       "Do not wake it. Do not stop praying.",
		PrayerText: "Silence, for now.",
	}
}

// spendOne removes one point of belief if available, otherwise one of fear.
func spendOne(fear, belief int) (int, int) {
	if belief > 0 {
		return fear, belief - 1
	}
	if fear > 0 {
		return fear - 1, belief
	}
	return fear, belief
}

// starterTerritories builds the fixed opening territory queue for a seat.
// Seat 0 opens belief-leaning, seat 1 fear-leaning, mirroring each other.
func starterTerritories(seat int) []*Card {
	if seat == 0 {
		return []*Card{LighthousePerch(), ShadowedDock(), FoggyCauseway()}
	}
	return []*Card{ForgottenAlley(), CandlelitLibrary(), StormDrain()}
}
