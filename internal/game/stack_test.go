package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackResolvesInLIFOOrder(t *testing.T) {
	s := NewActionStack()
	s.Push(StackItem{Description: "first", Resolve: func() string { return "first resolved" }})
	s.Push(StackItem{Description: "second", Resolve: func() string { return "second resolved" }})
	s.Push(StackItem{Description: "third", Resolve: func() string { return "third resolved" }})

	lines := s.ResolveAll()
	require.Equal(t, []string{"third resolved", "second resolved", "first resolved"}, lines)
	assert.True(t, s.IsEmpty())
}

func TestStackNilResolverYieldsNoEffectLine(t *testing.T) {
	s := NewActionStack()
	s.Push(StackItem{Description: "Moth Sentinel enters"})

	lines := s.ResolveAll()
	require.Len(t, lines, 1)
	assert.Equal(t, "Moth Sentinel enters resolves with no effect.", lines[0])
}

func TestStackResolveAllDrainsNestedPushes(t *testing.T) {
	s := NewActionStack()
	s.Push(StackItem{
		Description: "outer",
		Resolve: func() string {
			s.Push(StackItem{Description: "inner", Resolve: func() string { return "inner resolved" }})
			return "outer resolved"
		},
	})

	lines := s.ResolveAll()
	require.Equal(t, []string{"outer resolved", "inner resolved"}, lines)
	assert.True(t, s.IsEmpty())
}

func TestStackPopOnEmpty(t *testing.T) {
	s := NewActionStack()
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Empty(t, s.ResolveAll())
}

func TestStackDescribeIsOutermostFirst(t *testing.T) {
	s := NewActionStack()
	s.Push(StackItem{Description: "bottom"})
	s.Push(StackItem{Description: "top"})

	assert.Equal(t, []string{"top", "bottom"}, s.Describe())
	// Describe must not consume anything.
	assert.False(t, s.IsEmpty())
}
