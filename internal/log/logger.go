package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 14 chars for alignment
	for len(phase) < 14 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lines returns the bare detail strings of the given events, in order.
func Lines(events []GameEvent) []string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, e.Details)
	}
	return lines
}

// --- Helper constructors for common events ---

func NewTurnStartEvent(turn int, player string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Start Phase",
		Player:  player,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("-- Turn %d --", turn),
	}
}

func NewDrawEvent(turn int, player, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Start Phase",
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s.", player, cardName),
	}
}

func NewDeckEmptyEvent(turn int, player string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Start Phase",
		Player:  player,
		Type:    EventDeckEmpty,
		Details: fmt.Sprintf("%s would draw but the deck is empty.", player),
	}
}

func NewSettleEvent(turn int, player, cardName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventSettle,
		Card:    cardName,
		Details: details,
	}
}

func NewSummonEvent(turn int, player, cardName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventSummon,
		Card:    cardName,
		Details: details,
	}
}

func NewCastEvent(turn int, player, cardName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventCast,
		Card:    cardName,
		Details: details,
	}
}

func NewEstablishEvent(turn int, player, cardName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventEstablish,
		Card:    cardName,
		Details: details,
	}
}

func NewHoldEvent(turn int, player, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventHold,
		Details: details,
	}
}

func NewCannotAffordEvent(turn int, player, cardName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventCannotAfford,
		Card:    cardName,
		Details: details,
	}
}

func NewPrayerEvent(turn int, player, godName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main Phase",
		Player:  player,
		Type:    EventPrayer,
		Card:    godName,
		Details: details,
	}
}

func NewCombatEvent(turn int, player, attackerName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Combat Phase",
		Player:  player,
		Type:    EventCombat,
		Card:    attackerName,
		Details: details,
	}
}

func NewDefeatEvent(turn int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Combat Phase",
		Type:    EventDefeat,
		Card:    cardName,
		Details: fmt.Sprintf("%s is defeated and sent to the scrapyard.", cardName),
	}
}

func NewDirectStrikeEvent(turn int, player, attackerName, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Combat Phase",
		Player:  player,
		Type:    EventDirectStrike,
		Card:    attackerName,
		Details: details,
	}
}

func NewNoAttackersEvent(turn int, player string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Combat Phase",
		Player:  player,
		Type:    EventNoAttackers,
		Details: fmt.Sprintf("%s has no cryptids to attack with.", player),
	}
}

func NewStackResolveEvent(turn int, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Resolution",
		Type:    EventStackResolve,
		Details: details,
	}
}

func NewEndPhaseEvent(turn int, player string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "End Phase",
		Player:  player,
		Type:    EventEndPhase,
		Details: fmt.Sprintf("%s ends the turn.", player),
	}
}

func NewWinEvent(turn int, winner, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: details,
	}
}

func NewTurnLimitEvent(turn int, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventTurnLimit,
		Details: details,
	}
}
