package event

import (
	"github.com/google/uuid"

	"github.com/castfn/delegate"
	"github.com/castfn/delegate/logging"
)

// Subscription identifies one registered handler on an Emitter. It is
// returned by Subscribe and is the only way to remove that handler again.
type Subscription struct {
	id string
}

// ID returns the unique identifier of the subscription.
func (s Subscription) ID() string { return s.id }

// Options configures an Emitter.
type Options struct {
	// Logger receives structured records for subscribe, unsubscribe and
	// emit. Defaults to NoOpLogger if nil.
	Logger logging.Logger
}

type subscriber[T any] struct {
	id string
	fn func(T)
}

// Emitter dispatches values of type T synchronously and in subscription
// order to every registered handler. Dispatch runs through an underlying
// delegate.Action invocation list; because that list cannot remove closures
// by identity, the emitter tracks subscriptions by token and rebuilds the
// list on unsubscribe.
//
// An Emitter is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Emitter[T any] struct {
	opts     Options
	subs     []subscriber[T]
	handlers *delegate.Action[T]
}

// NewEmitter creates an Emitter with optional overrides.
func NewEmitter[T any](optFns ...func(o *Options)) *Emitter[T] {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Emitter[T]{opts: opts, handlers: delegate.NewAction[T]()}
}

// Subscribe appends fn to the end of the dispatch order and returns a token
// for later removal. Closures and bound methods are fine here since removal
// is by token, not by function identity.
func (e *Emitter[T]) Subscribe(fn func(T)) Subscription {
	id := uuid.NewString()
	e.subs = append(e.subs, subscriber[T]{id: id, fn: fn})
	e.handlers.Add(fn)
	e.opts.Logger.Debug("subscriber added", "subscription_id", id, "subscriber_count", len(e.subs))
	return Subscription{id: id}
}

// Unsubscribe removes the handler registered under sub, preserving the
// relative order of the remaining handlers. Unknown tokens are ignored.
func (e *Emitter[T]) Unsubscribe(sub Subscription) {
	for i, s := range e.subs {
		if s.id == sub.id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			e.rebuild()
			e.opts.Logger.Debug("subscriber removed", "subscription_id", sub.id, "subscriber_count", len(e.subs))
			return
		}
	}
}

// rebuild recreates the invocation list from the remaining subscribers.
// Stored handlers are closures, so the delegate cannot drop them by
// identity; clearing and re-adding is the supported path.
func (e *Emitter[T]) rebuild() {
	e.handlers.Clear()
	for _, s := range e.subs {
		e.handlers.Add(s.fn)
	}
}

// Emit delivers v to every subscriber in subscription order. Emitting with
// no subscribers is a no-op: an event nobody listens to is a normal
// condition at this layer, unlike invoking a bare empty delegate.
func (e *Emitter[T]) Emit(v T) {
	if e.handlers.IsEmpty() {
		e.opts.Logger.Debug("event dropped, no subscribers")
		return
	}
	if err := e.handlers.Invoke(v); err != nil {
		e.opts.Logger.Error("event dispatch failed", "error", err)
		return
	}
	e.opts.Logger.Debug("event emitted", "subscriber_count", len(e.subs))
}

// Len returns the number of active subscriptions.
func (e *Emitter[T]) Len() int { return len(e.subs) }
