package game

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Lighthouse Perch":   LighthousePerch,
	"Shadowed Dock":      ShadowedDock,
	"Foggy Causeway":     FoggyCauseway,
	"Forgotten Alley":    ForgottenAlley,
	"Candlelit Library":  CandlelitLibrary,
	"Storm Drain":        StormDrain,
	"Drowned Chapel":     DrownedChapel,
	"Collapsed Mine":     CollapsedMine,
	"Roadside Shrine":    RoadsideShrine,
	"Moth Sentinel":      MothSentinel,
	"Bayou Serpent":      BayouSerpent,
	"Rustbound Hound":    RustboundHound,
	"Pale Stag":          PaleStag,
	"Sewer Leviathan":    SewerLeviathan,
	"Whispered Rumor":    WhisperedRumor,
	"Blackout":           Blackout,
	"Ward of Salt":       WardOfSalt,
	"The Drowned Choir":  DrownedChoir,
	"The Lantern Warden": LanternWarden,
	"The Hollow King":    HollowKing,
	"The Sleeper Below":  SleeperBelow,
}

// LookupCard looks up a card by name and returns a new instance. Unknown
// names are a deck configuration error, not a game state.
func LookupCard(name string) (*Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("card not found in registry: %q", name)
	}
	return ctor(), nil
}
