package delegate

// Func is a multicast delegate over callables taking a single argument and
// returning a value. Invoke calls every entry in insertion order with the
// same argument; the results of all but the last entry are discarded (their
// side effects still happen) and the last entry's result is returned.
type Func[T, R any] struct {
	list[func(T) R]
}

// NewFunc builds a func delegate seeded with the given callables in order.
// With no arguments the delegate starts empty.
func NewFunc[T, R any](fns ...func(T) R) *Func[T, R] {
	return &Func[T, R]{list: makeList(fns)}
}

// Add appends one callable to the end of the invocation list and returns the
// receiver so further mutations can be chained.
func (d *Func[T, R]) Add(fn func(T) R) *Func[T, R] {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order, to the end of the
// invocation list. other is not mutated.
func (d *Func[T, R]) AddAll(other *Func[T, R]) *Func[T, R] {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn. Equality is
// defined only for declared functions; closures and bound methods never
// match. Without a match the list is left unchanged.
func (d *Func[T, R]) Remove(fn func(T) R) *Func[T, R] {
	d.remove(fn)
	return d
}

// Clear removes every entry, leaving the delegate empty.
func (d *Func[T, R]) Clear() *Func[T, R] {
	d.clear()
	return d
}

// Set replaces the whole invocation list with the single given callable.
// This is a destructive reset, distinct from Add.
func (d *Func[T, R]) Set(fn func(T) R) *Func[T, R] {
	d.set(fn)
	return d
}

// Clone returns an independent copy of the delegate.
func (d *Func[T, R]) Clone() *Func[T, R] {
	return &Func[T, R]{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate and leaves the
// receiver empty but usable.
func (d *Func[T, R]) Move() *Func[T, R] {
	return &Func[T, R]{list: d.take()}
}

// Combine returns a brand-new delegate whose invocation list is the
// receiver's entries followed by other's. Neither operand is mutated.
func (d *Func[T, R]) Combine(other *Func[T, R]) *Func[T, R] {
	c := NewFunc[T, R]()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Func[T, R]) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries in the invocation list.
func (d *Func[T, R]) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order with v and returns the last
// entry's result. It fails with ErrEmptyInvocationList, running nothing,
// when the delegate is empty.
func (d *Func[T, R]) Invoke(v T) (R, error) {
	if d.isEmpty() {
		var zero R
		return zero, ErrEmptyInvocationList
	}
	last := len(d.entries) - 1
	for _, e := range d.entries[:last] {
		e.fn(v)
	}
	return d.entries[last].fn(v), nil
}

// ToFunction returns a plain function forwarding to Invoke on the live
// delegate, so later mutations are visible through it.
func (d *Func[T, R]) ToFunction() func(T) (R, error) {
	return func(v T) (R, error) { return d.Invoke(v) }
}

// Func0 is a multicast delegate over nullary callables returning a value.
type Func0[R any] struct {
	list[func() R]
}

// NewFunc0 builds a Func0 seeded with the given callables in order.
func NewFunc0[R any](fns ...func() R) *Func0[R] {
	return &Func0[R]{list: makeList(fns)}
}

// Add appends one callable; chainable.
func (d *Func0[R]) Add(fn func() R) *Func0[R] {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order; chainable.
func (d *Func0[R]) AddAll(other *Func0[R]) *Func0[R] {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn; see Func.Remove.
func (d *Func0[R]) Remove(fn func() R) *Func0[R] {
	d.remove(fn)
	return d
}

// Clear removes every entry.
func (d *Func0[R]) Clear() *Func0[R] {
	d.clear()
	return d
}

// Set replaces the whole invocation list with fn.
func (d *Func0[R]) Set(fn func() R) *Func0[R] {
	d.set(fn)
	return d
}

// Clone returns an independent copy.
func (d *Func0[R]) Clone() *Func0[R] {
	return &Func0[R]{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate, emptying the receiver.
func (d *Func0[R]) Move() *Func0[R] {
	return &Func0[R]{list: d.take()}
}

// Combine returns a new delegate concatenating the two invocation lists.
func (d *Func0[R]) Combine(other *Func0[R]) *Func0[R] {
	c := NewFunc0[R]()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Func0[R]) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries.
func (d *Func0[R]) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order and returns the last entry's
// result.
func (d *Func0[R]) Invoke() (R, error) {
	if d.isEmpty() {
		var zero R
		return zero, ErrEmptyInvocationList
	}
	last := len(d.entries) - 1
	for _, e := range d.entries[:last] {
		e.fn()
	}
	return d.entries[last].fn(), nil
}

// ToFunction returns a plain function forwarding to Invoke.
func (d *Func0[R]) ToFunction() func() (R, error) {
	return func() (R, error) { return d.Invoke() }
}

// Func2 is a multicast delegate over callables taking two arguments and
// returning a value.
type Func2[T1, T2, R any] struct {
	list[func(T1, T2) R]
}

// NewFunc2 builds a Func2 seeded with the given callables in order.
func NewFunc2[T1, T2, R any](fns ...func(T1, T2) R) *Func2[T1, T2, R] {
	return &Func2[T1, T2, R]{list: makeList(fns)}
}

// Add appends one callable; chainable.
func (d *Func2[T1, T2, R]) Add(fn func(T1, T2) R) *Func2[T1, T2, R] {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order; chainable.
func (d *Func2[T1, T2, R]) AddAll(other *Func2[T1, T2, R]) *Func2[T1, T2, R] {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn; see Func.Remove.
func (d *Func2[T1, T2, R]) Remove(fn func(T1, T2) R) *Func2[T1, T2, R] {
	d.remove(fn)
	return d
}

// Clear removes every entry.
func (d *Func2[T1, T2, R]) Clear() *Func2[T1, T2, R] {
	d.clear()
	return d
}

// Set replaces the whole invocation list with fn.
func (d *Func2[T1, T2, R]) Set(fn func(T1, T2) R) *Func2[T1, T2, R] {
	d.set(fn)
	return d
}

// Clone returns an independent copy.
func (d *Func2[T1, T2, R]) Clone() *Func2[T1, T2, R] {
	return &Func2[T1, T2, R]{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate, emptying the receiver.
func (d *Func2[T1, T2, R]) Move() *Func2[T1, T2, R] {
	return &Func2[T1, T2, R]{list: d.take()}
}

// Combine returns a new delegate concatenating the two invocation lists.
func (d *Func2[T1, T2, R]) Combine(other *Func2[T1, T2, R]) *Func2[T1, T2, R] {
	c := NewFunc2[T1, T2, R]()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Func2[T1, T2, R]) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries.
func (d *Func2[T1, T2, R]) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order with the same argument pair
// and returns the last entry's result.
func (d *Func2[T1, T2, R]) Invoke(v1 T1, v2 T2) (R, error) {
	if d.isEmpty() {
		var zero R
		return zero, ErrEmptyInvocationList
	}
	last := len(d.entries) - 1
	for _, e := range d.entries[:last] {
		e.fn(v1, v2)
	}
	return d.entries[last].fn(v1, v2), nil
}

// ToFunction returns a plain function forwarding to Invoke.
func (d *Func2[T1, T2, R]) ToFunction() func(T1, T2) (R, error) {
	return func(v1 T1, v2 T2) (R, error) { return d.Invoke(v1, v2) }
}
