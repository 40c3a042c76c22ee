package delegate

// entry is one element of an invocation list: the stored callable plus the
// identity recovered for it when it was added. key is zero when the callable
// exposes no plain-function identity (closures, bound methods); such entries
// can never be matched by a remove.
type entry[F any] struct {
	fn  F
	key uintptr
}

// list is the invocation-list core embedded by every delegate kind. It owns
// the ordered entries and implements every operation that does not need to
// call the stored callables; invocation lives on the concrete delegate types
// because only they know the call signature.
type list[F any] struct {
	entries []entry[F]
}

func makeList[F any](fns []F) list[F] {
	var l list[F]
	for _, fn := range fns {
		l.add(fn)
	}
	return l
}

func (l *list[F]) add(fn F) {
	l.entries = append(l.entries, entry[F]{fn: fn, key: funcKey(fn)})
}

func (l *list[F]) addAll(other *list[F]) {
	l.entries = append(l.entries, other.entries...)
}

// remove drops the most recently added entry whose identity equals fn's.
// Entries without a recovered identity never match. Scanning from the end
// keeps the relative order of everything left untouched.
func (l *list[F]) remove(fn F) {
	key := funcKey(fn)
	if key == 0 {
		return
	}
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].key == key {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *list[F]) clear() {
	l.entries = nil
}

// set replaces the whole list with the single given callable.
func (l *list[F]) set(fn F) {
	l.entries = nil
	l.add(fn)
}

func (l *list[F]) isEmpty() bool {
	return len(l.entries) == 0
}

func (l *list[F]) size() int {
	return len(l.entries)
}

// clone returns an independent element-wise copy; mutating either side
// afterwards never affects the other.
func (l *list[F]) clone() list[F] {
	if len(l.entries) == 0 {
		return list[F]{}
	}
	entries := make([]entry[F], len(l.entries))
	copy(entries, l.entries)
	return list[F]{entries: entries}
}

// take transfers ownership of the entries to the returned list, leaving the
// receiver empty but fully usable.
func (l *list[F]) take() list[F] {
	entries := l.entries
	l.entries = nil
	return list[F]{entries: entries}
}
