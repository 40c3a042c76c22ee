package delegate

// Action is a multicast delegate over callables taking a single argument and
// returning nothing. Invoke calls every entry of the invocation list in
// insertion order with the same argument.
type Action[T any] struct {
	list[func(T)]
}

// NewAction builds an action delegate seeded with the given callables in
// order. With no arguments the delegate starts empty.
func NewAction[T any](fns ...func(T)) *Action[T] {
	return &Action[T]{list: makeList(fns)}
}

// Add appends one callable to the end of the invocation list and returns the
// receiver so further mutations can be chained.
func (d *Action[T]) Add(fn func(T)) *Action[T] {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order, to the end of the
// invocation list. other is not mutated.
func (d *Action[T]) AddAll(other *Action[T]) *Action[T] {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn. Equality is
// defined only for declared functions; closures and bound methods never
// match. Without a match the list is left unchanged.
func (d *Action[T]) Remove(fn func(T)) *Action[T] {
	d.remove(fn)
	return d
}

// Clear removes every entry, leaving the delegate empty.
func (d *Action[T]) Clear() *Action[T] {
	d.clear()
	return d
}

// Set replaces the whole invocation list with the single given callable.
// This is a destructive reset, distinct from Add.
func (d *Action[T]) Set(fn func(T)) *Action[T] {
	d.set(fn)
	return d
}

// Clone returns an independent copy of the delegate. Mutating either the
// original or the copy afterwards never affects the other.
func (d *Action[T]) Clone() *Action[T] {
	return &Action[T]{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate and leaves the
// receiver empty but usable. It is the move-construction analog: rebind the
// destination to the returned value instead of assigning delegate structs.
func (d *Action[T]) Move() *Action[T] {
	return &Action[T]{list: d.take()}
}

// Combine returns a brand-new delegate whose invocation list is the
// receiver's entries followed by other's. Neither operand is mutated.
func (d *Action[T]) Combine(other *Action[T]) *Action[T] {
	c := NewAction[T]()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Action[T]) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries in the invocation list.
func (d *Action[T]) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order with v. It fails with
// ErrEmptyInvocationList, running nothing, when the delegate is empty.
func (d *Action[T]) Invoke(v T) error {
	if d.isEmpty() {
		return ErrEmptyInvocationList
	}
	for _, e := range d.entries {
		e.fn(v)
	}
	return nil
}

// ToFunction returns a plain function forwarding to Invoke on the live
// delegate, so later mutations are visible through it.
func (d *Action[T]) ToFunction() func(T) error {
	return func(v T) error { return d.Invoke(v) }
}

// Action0 is a multicast delegate over nullary callables returning nothing.
type Action0 struct {
	list[func()]
}

// NewAction0 builds an Action0 seeded with the given callables in order.
func NewAction0(fns ...func()) *Action0 {
	return &Action0{list: makeList(fns)}
}

// Add appends one callable; chainable.
func (d *Action0) Add(fn func()) *Action0 {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order; chainable.
func (d *Action0) AddAll(other *Action0) *Action0 {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn; see Action.Remove.
func (d *Action0) Remove(fn func()) *Action0 {
	d.remove(fn)
	return d
}

// Clear removes every entry.
func (d *Action0) Clear() *Action0 {
	d.clear()
	return d
}

// Set replaces the whole invocation list with fn.
func (d *Action0) Set(fn func()) *Action0 {
	d.set(fn)
	return d
}

// Clone returns an independent copy.
func (d *Action0) Clone() *Action0 {
	return &Action0{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate, emptying the receiver.
func (d *Action0) Move() *Action0 {
	return &Action0{list: d.take()}
}

// Combine returns a new delegate concatenating the two invocation lists.
func (d *Action0) Combine(other *Action0) *Action0 {
	c := NewAction0()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Action0) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries.
func (d *Action0) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order.
func (d *Action0) Invoke() error {
	if d.isEmpty() {
		return ErrEmptyInvocationList
	}
	for _, e := range d.entries {
		e.fn()
	}
	return nil
}

// ToFunction returns a plain function forwarding to Invoke.
func (d *Action0) ToFunction() func() error {
	return func() error { return d.Invoke() }
}

// Action2 is a multicast delegate over callables taking two arguments and
// returning nothing.
type Action2[T1, T2 any] struct {
	list[func(T1, T2)]
}

// NewAction2 builds an Action2 seeded with the given callables in order.
func NewAction2[T1, T2 any](fns ...func(T1, T2)) *Action2[T1, T2] {
	return &Action2[T1, T2]{list: makeList(fns)}
}

// Add appends one callable; chainable.
func (d *Action2[T1, T2]) Add(fn func(T1, T2)) *Action2[T1, T2] {
	d.add(fn)
	return d
}

// AddAll appends copies of every entry of other, in order; chainable.
func (d *Action2[T1, T2]) AddAll(other *Action2[T1, T2]) *Action2[T1, T2] {
	d.addAll(&other.list)
	return d
}

// Remove drops the most recently added entry equal to fn; see Action.Remove.
func (d *Action2[T1, T2]) Remove(fn func(T1, T2)) *Action2[T1, T2] {
	d.remove(fn)
	return d
}

// Clear removes every entry.
func (d *Action2[T1, T2]) Clear() *Action2[T1, T2] {
	d.clear()
	return d
}

// Set replaces the whole invocation list with fn.
func (d *Action2[T1, T2]) Set(fn func(T1, T2)) *Action2[T1, T2] {
	d.set(fn)
	return d
}

// Clone returns an independent copy.
func (d *Action2[T1, T2]) Clone() *Action2[T1, T2] {
	return &Action2[T1, T2]{list: d.list.clone()}
}

// Move transfers the invocation list to a new delegate, emptying the receiver.
func (d *Action2[T1, T2]) Move() *Action2[T1, T2] {
	return &Action2[T1, T2]{list: d.take()}
}

// Combine returns a new delegate concatenating the two invocation lists.
func (d *Action2[T1, T2]) Combine(other *Action2[T1, T2]) *Action2[T1, T2] {
	c := NewAction2[T1, T2]()
	c.addAll(&d.list)
	c.addAll(&other.list)
	return c
}

// IsEmpty reports whether the invocation list holds no callables.
func (d *Action2[T1, T2]) IsEmpty() bool {
	return d.isEmpty()
}

// Len returns the number of entries.
func (d *Action2[T1, T2]) Len() int {
	return d.size()
}

// Invoke calls every entry in insertion order with the same argument pair.
func (d *Action2[T1, T2]) Invoke(v1 T1, v2 T2) error {
	if d.isEmpty() {
		return ErrEmptyInvocationList
	}
	for _, e := range d.entries {
		e.fn(v1, v2)
	}
	return nil
}

// ToFunction returns a plain function forwarding to Invoke.
func (d *Action2[T1, T2]) ToFunction() func(T1, T2) error {
	return func(v1 T1, v2 T2) error { return d.Invoke(v1, v2) }
}
