// Package markset implements the generation-counter marker sets and
// append-only presence lists spec.md §5 describes as an alternative to the
// michi-c source's process-wide mark1/mark2/already_suggested globals: a
// marker is "set" iff its stored generation equals the set's current
// generation, so "clearing" the set is an O(1) bump of the generation
// counter instead of a memory sweep.
package markset

// Set is an O(1)-clearable marker set over point indices in [0, n).
type Set struct {
	gen     []uint32
	current uint32
	inUse   bool
}

// NewSet allocates a marker set covering point indices [0, n).
func NewSet(n int) *Set {
	return &Set{gen: make([]uint32, n), current: 1}
}

// Reset grows the set to cover [0, n) and clears all marks.
func (s *Set) Reset(n int) {
	if cap(s.gen) < n {
		s.gen = make([]uint32, n)
	} else {
		s.gen = s.gen[:n]
		for i := range s.gen {
			s.gen[i] = 0
		}
	}
	s.current = 1
}

// Clear marks the set as empty in O(1) by bumping the generation.
func (s *Set) Clear() {
	s.current++
	if s.current == 0 {
		// wrapped around a 32-bit counter: fall back to a real sweep once
		// every 2^32 clears so stale marks from generation 0 don't leak.
		for i := range s.gen {
			s.gen[i] = 0
		}
		s.current = 1
	}
}

// Mark records p as present.
func (s *Set) Mark(p int) {
	s.gen[p] = s.current
}

// IsMarked reports whether p was marked since the last Clear.
func (s *Set) IsMarked(p int) bool {
	return s.gen[p] == s.current
}

// Enter guards against re-entrant use of a shared marker set, mirroring
// the michi-c in_use flag (spec.md §5). Callers must pair it with Leave.
func (s *Set) Enter() {
	if s.inUse {
		panic("markset: re-entrant use of a shared marker set")
	}
	s.inUse = true
}

// Leave releases the guard acquired by Enter.
func (s *Set) Leave() {
	s.inUse = false
}

// List is an append-only list of point indices with O(1) duplicate
// rejection: it keeps members in insertion order and never re-inserts a
// point already present.
type List struct {
	items []int
	seen  *Set
}

// NewList allocates a list whose members are drawn from [0, n).
func NewList(n int) *List {
	return &List{seen: NewSet(n)}
}

// Reset grows the list to cover [0, n) and empties it.
func (l *List) Reset(n int) {
	l.seen.Reset(n)
	l.items = l.items[:0]
}

// Add appends p if it isn't already present. Returns true if it was added.
func (l *List) Add(p int) bool {
	if l.seen.IsMarked(p) {
		return false
	}
	l.seen.Mark(p)
	l.items = append(l.items, p)
	return true
}

// Contains reports whether p was added since the last Reset.
func (l *List) Contains(p int) bool {
	return l.seen.IsMarked(p)
}

// Items returns the members in insertion order. The slice is only valid
// until the next Reset/Add call.
func (l *List) Items() []int {
	return l.items
}

// Len returns the number of members.
func (l *List) Len() int {
	return len(l.items)
}
