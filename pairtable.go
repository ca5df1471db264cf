package broadphase

// pairKey identifies an unordered pair of box slots.
type pairKey struct {
	a, b int
}

func makePairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// pairTable is the set of box pairs currently live in the broad phase.
type pairTable struct {
	pairs map[pairKey]struct{}
}

func newPairTable() *pairTable {
	return &pairTable{pairs: map[pairKey]struct{}{}}
}

func (t *pairTable) has(key pairKey) bool {
	_, ok := t.pairs[key]
	return ok
}

// insert reports whether the pair was not already present.
func (t *pairTable) insert(key pairKey) bool {
	if t.has(key) {
		return false
	}
	t.pairs[key] = struct{}{}
	return true
}

// remove reports whether the pair was present.
func (t *pairTable) remove(key pairKey) bool {
	if !t.has(key) {
		return false
	}
	delete(t.pairs, key)
	return true
}

func (t *pairTable) count() int {
	return len(t.pairs)
}

func (t *pairTable) each(f func(key pairKey)) {
	for key := range t.pairs {
		f(key)
	}
}
