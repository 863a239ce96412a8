package game

// Phase is one step of the fixed turn structure.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMain
	PhaseCombat
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start Phase"
	case PhaseMain:
		return "Main Phase"
	case PhaseCombat:
		return "Combat Phase"
	case PhaseEnd:
		return "End Phase"
	default:
		return "Unknown"
	}
}

// PhaseLoop is the ordered phase sequence consumed once per turn. It is a
// declarative list, not a state machine: all phase-specific logic lives in
// the turn engine, so phases can be inserted without touching the rules.
type PhaseLoop struct {
	Order []Phase
}

// DefaultPhases returns the standard Start, Main, Combat, End loop.
func DefaultPhases() PhaseLoop {
	return PhaseLoop{Order: []Phase{PhaseStart, PhaseMain, PhaseCombat, PhaseEnd}}
}
