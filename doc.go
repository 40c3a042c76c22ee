// Package delegate implements multicast delegates: containers holding an
// ordered invocation list of same-signature callables that are all executed,
// in insertion order, through a single call. The model follows the C#
// delegate type, including its Action/Func split:
//
//   - Action0, Action[T] and Action2[T1, T2] aggregate callables that
//     return nothing; Invoke runs every entry in order.
//   - Func0[R], Func[T, R] and Func2[T1, T2, R] aggregate callables that
//     return a value; Invoke runs every entry in order and yields the
//     result of the last one, discarding the results (but not the side
//     effects) of the others.
//
// All delegate kinds share the same lifecycle:
//
//	op := delegate.NewFunc2(add, sub) // seeded in order
//	op.Add(mul).Remove(sub)           // chainable mutation
//	result, err := op.Invoke(5, 7)    // every entry runs, last result wins
//
// Invoking a delegate with an empty invocation list fails with
// ErrEmptyInvocationList; this is the only error any operation can
// produce. Remove matches by plain-function identity and therefore only
// removes entries that were added as declared functions; closures and
// bound methods carry no recoverable identity and are skipped (clear and
// rebuild the list, or use the event package, to drop those).
//
// Delegates are plain in-memory values with no internal synchronization.
// Mutating or invoking one delegate from multiple goroutines requires
// external locking by the caller.
package delegate
