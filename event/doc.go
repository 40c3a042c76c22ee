// Package event builds a typed publish/subscribe layer on top of the
// delegate invocation lists, the composition the delegate model exists to
// serve.
//
// An Emitter[T] holds an ordered list of subscribers for values of type T
// and dispatches every emitted value to all of them synchronously, in
// subscription order. Subscribe returns a Subscription token so handlers
// that are closures or bound methods, which the bare delegate cannot remove
// by identity, stay removable here.
//
// Like the delegate types themselves, emitters are single-threaded values:
// concurrent use requires external synchronization.
package event
