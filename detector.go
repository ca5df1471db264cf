package broadphase

// Detector is the owning coordinator of a broad phase. It gatekeeps the
// add/update/remove calls, keeps the canonical set of currently overlapping
// pairs, and forwards each transition to the optional callbacks — the hook
// where a narrow phase would take over.
type Detector struct {
	index BroadPhase
	pairs map[pairKey][2]*Body

	OnPairAdded   func(a, b *Body)
	OnPairRemoved func(a, b *Body)
}

// NewDetector creates a coordinator over a sweep-and-prune index.
// capacity hints the number of tracked bodies.
func NewDetector(capacity int) *Detector {
	d := &Detector{pairs: map[pairKey][2]*Body{}}
	d.index = NewSweepAndPrune(d, capacity)
	return d
}

// NewDetectorWith creates a coordinator over a caller-chosen index. The
// build function receives the listener the index must report to.
func NewDetectorWith(build func(PairListener) BroadPhase) *Detector {
	d := &Detector{pairs: map[pairKey][2]*Body{}}
	d.index = build(d)
	return d
}

func (d *Detector) AddBody(body *Body, aabb AABB) error {
	return d.index.AddObject(body, aabb)
}

func (d *Detector) RemoveBody(body *Body) error {
	return d.index.RemoveObject(body)
}

func (d *Detector) UpdateBody(body *Body, aabb AABB) error {
	return d.index.UpdateObject(body, aabb)
}

// Count returns the number of tracked bodies.
func (d *Detector) Count() int {
	return d.index.Count()
}

// PairCount returns the number of currently overlapping pairs.
func (d *Detector) PairCount() int {
	return len(d.pairs)
}

// Overlapping reports whether the pair is currently overlapping.
func (d *Detector) Overlapping(a, b *Body) bool {
	_, ok := d.pairs[makePairKey(a.id, b.id)]
	return ok
}

// OverlappingPairs returns the current pairs in unspecified order.
func (d *Detector) OverlappingPairs() [][2]*Body {
	out := make([][2]*Body, 0, len(d.pairs))
	for _, pair := range d.pairs {
		out = append(out, pair)
	}
	return out
}

// PairAdded implements PairListener.
func (d *Detector) PairAdded(a, b *Body) {
	d.pairs[makePairKey(a.id, b.id)] = [2]*Body{a, b}
	if d.OnPairAdded != nil {
		d.OnPairAdded(a, b)
	}
}

// PairRemoved implements PairListener.
func (d *Detector) PairRemoved(a, b *Body) {
	delete(d.pairs, makePairKey(a.id, b.id))
	if d.OnPairRemoved != nil {
		d.OnPairRemoved(a, b)
	}
}
