package game

import "fmt"

// ResourcePool tracks the dual-currency economy (Fear and Belief) and the
// derived Instability metric. Each player owns exactly one pool for the
// whole game.
type ResourcePool struct {
	Fear   int
	Belief int
}

// Add unconditionally credits both currencies.
func (p *ResourcePool) Add(fear, belief int) {
	p.Fear += fear
	p.Belief += belief
}

// Spend debits both currencies atomically. It returns false and leaves the
// pool untouched if either currency is insufficient.
func (p *ResourcePool) Spend(fear, belief int) bool {
	if p.Fear < fear || p.Belief < belief {
		return false
	}
	p.Fear -= fear
	p.Belief -= belief
	return true
}

// Instability is the imbalance metric, recomputed on read. Downstream card
// content gates on it; the engine itself never branches on it.
func (p *ResourcePool) Instability() int {
	d := p.Fear - p.Belief
	if d < 0 {
		d = -d
	}
	return d
}

func (p *ResourcePool) Describe() string {
	return fmt.Sprintf("Fear: %d, Belief: %d, Instability: %d", p.Fear, p.Belief, p.Instability())
}
