package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPlayChecksBothCurrencies(t *testing.T) {
	hound := RustboundHound() // costs 1 Fear, 1 Belief

	assert.False(t, hound.CanPlay(&ResourcePool{Fear: 1}))
	assert.False(t, hound.CanPlay(&ResourcePool{Belief: 1}))
	assert.True(t, hound.CanPlay(&ResourcePool{Fear: 1, Belief: 1}))
}

func TestPayCostDebitsPool(t *testing.T) {
	pool := &ResourcePool{Fear: 2, Belief: 2}
	serpent := BayouSerpent() // costs 1 Fear

	require.True(t, serpent.PayCost(pool))
	assert.Equal(t, 1, pool.Fear)
	assert.Equal(t, 2, pool.Belief)
}

func TestResetHealthRestoresMaximum(t *testing.T) {
	moth := MothSentinel()
	moth.ResetHealth()
	moth.CurrentHealth = 1

	moth.ResetHealth()
	assert.Equal(t, moth.Stats.Health, moth.CurrentHealth)
}

func TestYieldText(t *testing.T) {
	assert.Equal(t, "Collapsed Mine yields 2 Fear.", CollapsedMine().YieldText())
	assert.Equal(t, "Lighthouse Perch yields 1 Belief.", LighthousePerch().YieldText())
	assert.Equal(t, "Drowned Chapel yields 1 Fear and 1 Belief.", DrownedChapel().YieldText())

	barren := &Card{Name: "Barren Lot", Type: CardTypeTerritory}
	assert.Equal(t, "Barren Lot yields nothing.", barren.YieldText())
}

func TestSpawnTriggersAnnounceEachBranch(t *testing.T) {
	moth := MothSentinel()
	items := moth.SpawnTriggers()
	require.Len(t, items, 2)

	assert.Equal(t, "Evolution: Harbinger Wing", items[0].Description)
	assert.Contains(t, items[0].Execute(), `"Harbinger Wing"`)
	assert.Contains(t, items[1].Execute(), "Beacon of Hope")
}

func TestEventStackItemCarriesImpact(t *testing.T) {
	blackout := Blackout()
	item := blackout.EventStackItem("Alice")

	assert.Equal(t, "Alice casts Blackout", item.Description)
	assert.Equal(t, "Blackout: "+blackout.Impact, item.Execute())
}

func TestRegistryCoversEveryConstructor(t *testing.T) {
	// Every registered constructor must build a card whose name matches its key.
	for name, ctor := range CardRegistry {
		card := ctor()
		assert.Equal(t, name, card.Name)
	}
}

func TestLookupCardUnknownName(t *testing.T) {
	_, err := LookupCard("Jersey Devil")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Jersey Devil")

	card, err := LookupCard("Moth Sentinel")
	require.NoError(t, err)
	assert.Equal(t, "Moth Sentinel", card.Name)
}

func TestLookupCardReturnsFreshInstances(t *testing.T) {
	a, err := LookupCard("Bayou Serpent")
	require.NoError(t, err)
	b, err := LookupCard("Bayou Serpent")
	require.NoError(t, err)

	a.CurrentHealth = 1
	assert.NotEqual(t, a.CurrentHealth, b.CurrentHealth)
}
