package game

import "fmt"

// StackItem is a single deferred effect on the action stack. Resolve may be
// nil, in which case execution yields a fixed no-effect line rather than an
// error.
type StackItem struct {
	Description string
	Resolve     func() string
}

// Execute runs the item's resolution function and returns its log line.
func (it StackItem) Execute() string {
	if it.Resolve != nil {
		return it.Resolve()
	}
	return fmt.Sprintf("%s resolves with no effect.", it.Description)
}

// ActionStack is the LIFO queue of deferred effects shared by both players.
// Resolution is the sole effect-resolution mechanism in the engine.
type ActionStack struct {
	items []StackItem
}

func NewActionStack() *ActionStack {
	return &ActionStack{}
}

// Push appends an item to the top of the stack.
func (s *ActionStack) Push(item StackItem) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most-recently-pushed item.
func (s *ActionStack) Pop() (StackItem, bool) {
	if len(s.items) == 0 {
		return StackItem{}, false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

func (s *ActionStack) IsEmpty() bool {
	return len(s.items) == 0
}

// ResolveAll pops and executes items until the stack is empty, collecting
// each log line in pop order (reverse of push order). Items pushed during
// resolution are themselves resolved before this returns.
func (s *ActionStack) ResolveAll() []string {
	var results []string
	for {
		item, ok := s.Pop()
		if !ok {
			return results
		}
		results = append(results, item.Execute())
	}
}

// Describe returns the item descriptions outermost-first, without resolving
// anything.
func (s *ActionStack) Describe() []string {
	descs := make([]string, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		descs = append(descs, s.items[i].Description)
	}
	return descs
}
