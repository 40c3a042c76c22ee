package delegate

import "errors"

var (
	// ErrEmptyInvocationList is returned when Invoke is called on a delegate
	// whose invocation list holds no callables. Match it with errors.Is.
	ErrEmptyInvocationList = errors.New("delegate has no target to invoke")
)
