package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_EmitOrder(t *testing.T) {
	d := NewDispatcher("opened", "closed")

	var got []string
	require.NoError(t, d.Bind("opened", func(Event) { got = append(got, "first") }))
	require.NoError(t, d.Bind("opened", func(Event) { got = append(got, "second") }))
	require.NoError(t, d.Bind("closed", func(Event) { got = append(got, "closed") }))

	d.Emit("opened", nil)

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatcher_Payload(t *testing.T) {
	d := NewDispatcher("hit")

	var seen Event
	require.NoError(t, d.Bind("hit", func(e Event) { seen = e }))
	d.Emit("hit", 42)

	assert.Equal(t, "hit", seen.Name)
	assert.Equal(t, 42, seen.Payload)
}

func TestDispatcher_BindUnknown(t *testing.T) {
	d := NewDispatcher("opened")

	err := d.Bind("exploded", func(Event) {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEvent))
	assert.Equal(t, 0, d.HandlerCount("exploded"))
}

func TestDispatcher_BindNil(t *testing.T) {
	d := NewDispatcher("opened")
	assert.Error(t, d.Bind("opened", nil))
}

func TestDispatcher_EmitUndeclaredPanics(t *testing.T) {
	d := NewDispatcher("opened")
	assert.Panics(t, func() { d.Emit("closed", nil) })
}

func TestDispatcher_EmitWithoutHandlers(t *testing.T) {
	d := NewDispatcher("opened")
	assert.NotPanics(t, func() { d.Emit("opened", nil) })
}

func TestDispatcher_BindDuringEmit(t *testing.T) {
	d := NewDispatcher("tick")

	calls := 0
	require.NoError(t, d.Bind("tick", func(Event) {
		calls++
		_ = d.Bind("tick", func(Event) { calls += 10 })
	}))

	d.Emit("tick", nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, d.HandlerCount("tick"))
}

func TestDispatcher_EventsIsCopy(t *testing.T) {
	d := NewDispatcher("a", "b")
	names := d.Events()
	names[0] = "z"
	assert.Equal(t, []string{"a", "b"}, d.Events())
}
