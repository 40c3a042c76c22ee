package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castfn/delegate/logging"
)

func TestEmitter_DispatchOrder(t *testing.T) {
	var seen []string

	e := NewEmitter[string]()
	e.Subscribe(func(v string) { seen = append(seen, "a:"+v) })
	e.Subscribe(func(v string) { seen = append(seen, "b:"+v) })
	e.Subscribe(func(v string) { seen = append(seen, "c:"+v) })

	e.Emit("x")
	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, seen)
	assert.Equal(t, 3, e.Len())
}

func TestEmitter_EmitWithoutSubscribersIsNoop(t *testing.T) {
	e := NewEmitter[int](func(o *Options) {
		o.Logger = logging.NoOpLogger{}
	})

	assert.NotPanics(t, func() { e.Emit(1) })
	assert.Equal(t, 0, e.Len())
}

func TestEmitter_Unsubscribe(t *testing.T) {
	var seen []string

	e := NewEmitter[string]()
	e.Subscribe(func(v string) { seen = append(seen, "a") })
	middle := e.Subscribe(func(v string) { seen = append(seen, "b") })
	e.Subscribe(func(v string) { seen = append(seen, "c") })

	e.Unsubscribe(middle)
	e.Emit("x")

	assert.Equal(t, []string{"a", "c"}, seen, "remaining order must be preserved")
	assert.Equal(t, 2, e.Len())
}

func TestEmitter_UnsubscribeUnknownTokenIsNoop(t *testing.T) {
	e := NewEmitter[string]()
	sub := e.Subscribe(func(string) {})

	e.Unsubscribe(Subscription{})
	assert.Equal(t, 1, e.Len())

	e.Unsubscribe(sub)
	e.Unsubscribe(sub)
	assert.Equal(t, 0, e.Len())
}

func TestEmitter_SubscriptionIDsUnique(t *testing.T) {
	e := NewEmitter[int]()
	a := e.Subscribe(func(int) {})
	b := e.Subscribe(func(int) {})

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEmitter_SameHandlerSubscribedTwice(t *testing.T) {
	var n int
	inc := func(int) { n++ }

	e := NewEmitter[int]()
	first := e.Subscribe(inc)
	e.Subscribe(inc)

	e.Emit(0)
	assert.Equal(t, 2, n)

	// Removing one registration keeps the other.
	e.Unsubscribe(first)
	e.Emit(0)
	assert.Equal(t, 3, n)
}
