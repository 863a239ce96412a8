package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventTurnStart EventType = iota
	EventDraw
	EventDeckEmpty
	EventSettle
	EventSummon
	EventCast
	EventEstablish
	EventHold
	EventCannotAfford
	EventPrayer
	EventCombat
	EventDefeat
	EventDirectStrike
	EventNoAttackers
	EventStackResolve
	EventEndPhase
	EventWin
	EventTurnLimit
)

func (e EventType) String() string {
	switch e {
	case EventTurnStart:
		return "TurnStart"
	case EventDraw:
		return "Draw"
	case EventDeckEmpty:
		return "DeckEmpty"
	case EventSettle:
		return "Settle"
	case EventSummon:
		return "Summon"
	case EventCast:
		return "Cast"
	case EventEstablish:
		return "Establish"
	case EventHold:
		return "Hold"
	case EventCannotAfford:
		return "CannotAfford"
	case EventPrayer:
		return "Prayer"
	case EventCombat:
		return "Combat"
	case EventDefeat:
		return "Defeat"
	case EventDirectStrike:
		return "DirectStrike"
	case EventNoAttackers:
		return "NoAttackers"
	case EventStackResolve:
		return "StackResolve"
	case EventEndPhase:
		return "EndPhase"
	case EventWin:
		return "Win"
	case EventTurnLimit:
		return "TurnLimit"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Main Phase")
	Player  string    // acting player name, if any
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
