package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		calls = append(calls, "first")
		data, ok := e.Data.(CursorMovedData)
		assert.True(t, ok)
		return data.Offset == 7
	})
	m.Subscribe(TypeCursorMoved, func(Event) bool {
		calls = append(calls, "second")
		return false
	})

	assert.False(t, m.Dispatch(TypeCursorMoved, CursorMovedData{Offset: 3}))
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	assert.True(t, m.Dispatch(TypeCursorMoved, CursorMovedData{Offset: 7}))
	assert.Equal(t, []string{"first"}, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Dispatch(TypeAppQuit, AppQuitData{}))
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	n := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		n++
		m.Subscribe(TypeAppReady, func(Event) bool { n += 10; return false })
		return false
	})

	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 1, n)
	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 12, n)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "BracketsHighlighted", TypeBracketsHighlighted.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
