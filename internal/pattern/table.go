package pattern

// primes is a fixed table of 16 odd step values for double hashing
// (spec.md §4.3). Any odd stride works against a power-of-two table
// length; primes are used for the traditional reason of making
// accidental alignment with the table's own factors implausible.
var primes = [16]uint64{
	29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97,
}

// table is an open-addressed, double-hashed map from a 64-bit signature
// to a move probability. A slot is empty iff its key is zero (spec.md
// §4.3). Length is always a power of two; the table resizes instead of
// fixing LENGTH=1<<25 (spec.md §9 explicitly permits this).
type table struct {
	keys      []uint64
	probs     []float64
	lenBits   uint
	count     int
}

func newTable(initialLenBits uint) *table {
	return &table{
		keys:    make([]uint64, 1<<initialLenBits),
		probs:   make([]float64, 1<<initialLenBits),
		lenBits: initialLenBits,
	}
}

func (t *table) length() uint64 { return uint64(1) << t.lenBits }

func (t *table) primaryStep(key uint64) (primary, step uint64) {
	mask := t.length() - 1
	primary = (key >> 20) & mask
	step = primes[(key>>(20+t.lenBits))&15]
	return
}

func (t *table) insert(key uint64, prob float64) {
	if key == 0 {
		key = 1 // zero is reserved for "empty"; collapse the astronomically
		// unlikely zero signature onto 1 rather than special-casing it.
	}
	if float64(t.count+1)/float64(t.length()) >= 0.5 {
		t.grow()
	}
	primary, step := t.primaryStep(key)
	mask := t.length() - 1
	idx := primary
	for i := uint64(0); i < t.length(); i++ {
		if t.keys[idx] == 0 || t.keys[idx] == key {
			if t.keys[idx] == 0 {
				t.count++
			}
			t.keys[idx] = key
			t.probs[idx] = prob
			return
		}
		idx = (idx + step) & mask
	}
	// Table full despite the load-factor guard above: grow and retry.
	t.grow()
	t.insert(key, prob)
}

func (t *table) lookup(key uint64) (float64, bool) {
	if key == 0 {
		key = 1
	}
	primary, step := t.primaryStep(key)
	mask := t.length() - 1
	idx := primary
	for i := uint64(0); i < t.length(); i++ {
		if t.keys[idx] == 0 {
			return 0, false
		}
		if t.keys[idx] == key {
			return t.probs[idx], true
		}
		idx = (idx + step) & mask
	}
	return 0, false
}

func (t *table) grow() {
	old := *t
	t.lenBits++
	t.keys = make([]uint64, 1<<t.lenBits)
	t.probs = make([]float64, 1<<t.lenBits)
	t.count = 0
	for i, k := range old.keys {
		if k != 0 {
			t.insert(k, old.probs[i])
		}
	}
}
