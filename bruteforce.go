package broadphase

// BruteForce is the trivial broad phase: every operation tests the changed
// body against every other tracked body. O(n) per update instead of the
// sweep-and-prune's near-constant passes, but with no bookkeeping at all.
// Useful for small scenes and as a reference for the incremental structure.
type BruteForce struct {
	listener PairListener
	bodies   []*Body
	aabbs    map[*Body]AABB
	pairs    *pairTable
}

// NewBruteForce creates an all-pairs index reporting to listener, which
// must not be nil. capacity hints the number of tracked bodies.
func NewBruteForce(listener PairListener, capacity int) *BruteForce {
	if capacity <= 0 {
		capacity = 16
	}
	return &BruteForce{
		listener: listener,
		bodies:   make([]*Body, 0, capacity),
		aabbs:    make(map[*Body]AABB, capacity),
		pairs:    newPairTable(),
	}
}

func (bf *BruteForce) Count() int {
	return len(bf.bodies)
}

func (bf *BruteForce) AddObject(body *Body, aabb AABB) error {
	if _, ok := bf.aabbs[body]; ok {
		return ErrDuplicateBody
	}
	for _, other := range bf.bodies {
		if aabb.Intersects(bf.aabbs[other]) {
			bf.pairs.insert(makePairKey(body.id, other.id))
			bf.listener.PairAdded(body, other)
		}
	}
	bf.bodies = append(bf.bodies, body)
	bf.aabbs[body] = aabb
	return nil
}

func (bf *BruteForce) RemoveObject(body *Body) error {
	if _, ok := bf.aabbs[body]; !ok {
		return ErrUnknownBody
	}
	for _, other := range bf.bodies {
		if other != body && bf.pairs.remove(makePairKey(body.id, other.id)) {
			bf.listener.PairRemoved(body, other)
		}
	}
	for i, other := range bf.bodies {
		if other == body {
			bf.bodies[i] = bf.bodies[len(bf.bodies)-1]
			bf.bodies = bf.bodies[:len(bf.bodies)-1]
			break
		}
	}
	delete(bf.aabbs, body)
	return nil
}

func (bf *BruteForce) UpdateObject(body *Body, aabb AABB) error {
	if _, ok := bf.aabbs[body]; !ok {
		return ErrUnknownBody
	}
	bf.aabbs[body] = aabb
	for _, other := range bf.bodies {
		if other == body {
			continue
		}
		key := makePairKey(body.id, other.id)
		if aabb.Intersects(bf.aabbs[other]) {
			if bf.pairs.insert(key) {
				bf.listener.PairAdded(body, other)
			}
		} else {
			if bf.pairs.remove(key) {
				bf.listener.PairRemoved(body, other)
			}
		}
	}
	return nil
}
