package broadphase

import "math"

// invalidIndex marks the sentinel end-points that bound every axis array.
const invalidIndex = -1

// Two sentinels per axis: one below every encodable value, one above.
// The exchange passes never have to bounds-check because they always hit a
// sentinel before running off either end.
const nbSentinels = 2

// Freshly added boxes are parked on this band just under the high sentinel,
// and boxes being removed are walked back out to it. Coordinates of
// magnitude below math.MaxFloat64 always encode below it.
var (
	parkMin = EncodeFloat(math.MaxFloat64) - 1
	parkMax = EncodeFloat(math.MaxFloat64)
)

// endPoint is one edge of a box projected onto a single axis.
type endPoint struct {
	boxID int
	isMin bool
	value uint64
}

// boxEntry ties a body to the positions of its six end-points in the three
// axis arrays. Entries live in a dense arena addressed by a stable box ID;
// freed slots are recycled through the free list.
type boxEntry struct {
	min  [3]int
	max  [3]int
	body *Body
}

// SweepAndPrune is an incremental sweep-and-prune broad phase after Pierre
// Terdiman's array-based formulation (www.codercorner.com/SAP.pdf): per
// axis, a sorted array of encoded end-points is maintained with local
// exchange passes, and overlap changes are detected exactly when a min
// end-point crosses a max end-point of another box.
type SweepAndPrune struct {
	listener PairListener

	boxes     []boxEntry
	endPoints [3][]endPoint
	nbBoxes   int

	freeBoxIDs []int
	boxIDs     map[*Body]int

	pairs *pairTable
	// Pairs whose overlap toggled during the current operation, keyed to
	// their pre-operation state. A box teleporting across another can
	// toggle a pair twice in one call; only the net change is reported.
	touched map[pairKey]bool
}

// NewSweepAndPrune creates a sweep-and-prune index reporting to listener,
// which must not be nil. capacity hints the number of tracked bodies.
func NewSweepAndPrune(listener PairListener, capacity int) *SweepAndPrune {
	if capacity <= 0 {
		capacity = 16
	}
	sap := &SweepAndPrune{
		listener: listener,
		boxes:    make([]boxEntry, 0, capacity),
		boxIDs:   make(map[*Body]int, capacity),
		pairs:    newPairTable(),
		touched:  map[pairKey]bool{},
	}
	for axis := 0; axis < 3; axis++ {
		eps := make([]endPoint, nbSentinels, capacity*2+nbSentinels)
		eps[0] = endPoint{boxID: invalidIndex, isMin: true, value: 0}
		eps[1] = endPoint{boxID: invalidIndex, isMin: false, value: ^uint64(0)}
		sap.endPoints[axis] = eps
	}
	return sap
}

// Count returns the number of tracked bodies.
func (sap *SweepAndPrune) Count() int {
	return sap.nbBoxes
}

// AddObject starts tracking a body, reporting PairAdded for every tracked
// box its AABB overlaps.
func (sap *SweepAndPrune) AddObject(body *Body, aabb AABB) error {
	if _, ok := sap.boxIDs[body]; ok {
		return ErrDuplicateBody
	}

	var boxID int
	if n := len(sap.freeBoxIDs); n > 0 {
		boxID = sap.freeBoxIDs[n-1]
		sap.freeBoxIDs = sap.freeBoxIDs[:n-1]
	} else {
		boxID = len(sap.boxes)
		sap.boxes = append(sap.boxes, boxEntry{})
	}

	// Park the six end-points just under the high sentinel, then let the
	// exchange pass walk them into sorted position. The walk discovers the
	// initial overlaps through the same crossing logic as any update.
	box := &sap.boxes[boxID]
	box.body = body
	for axis := 0; axis < 3; axis++ {
		eps := sap.endPoints[axis]
		sentinel := len(eps) - 1
		eps = append(eps, endPoint{}, endPoint{})
		eps[sentinel+2] = eps[sentinel]
		eps[sentinel] = endPoint{boxID: boxID, isMin: true, value: parkMin}
		eps[sentinel+1] = endPoint{boxID: boxID, isMin: false, value: parkMax}
		sap.endPoints[axis] = eps
		box.min[axis] = sentinel
		box.max[axis] = sentinel + 1
	}

	sap.boxIDs[body] = boxID
	sap.nbBoxes++

	sap.updateBox(boxID, encodeAABB(aabb))
	sap.flushPairs()
	return nil
}

// RemoveObject stops tracking a body. PairRemoved is reported for every
// live pair involving it before its end-points are unlinked.
func (sap *SweepAndPrune) RemoveObject(body *Body) error {
	boxID, ok := sap.boxIDs[body]
	if !ok {
		return ErrUnknownBody
	}

	// Walk the box back out to the parking band: every max end-point its
	// min crosses on the way out ends a pair that is still live.
	var park aabbInt
	for axis := 0; axis < 3; axis++ {
		park.min[axis] = parkMin
		park.max[axis] = parkMax
	}
	sap.updateBox(boxID, park)
	sap.flushPairs()

	// The box's end-points are now the two entries under the high sentinel
	// on every axis; unlink them and close the gap with the sentinel.
	for axis := 0; axis < 3; axis++ {
		eps := sap.endPoints[axis]
		sentinel := len(eps) - 1
		eps[sentinel-2] = eps[sentinel]
		sap.endPoints[axis] = eps[:sentinel-1]
	}

	sap.boxes[boxID] = boxEntry{}
	sap.freeBoxIDs = append(sap.freeBoxIDs, boxID)
	delete(sap.boxIDs, body)
	sap.nbBoxes--
	return nil
}

// UpdateObject moves a tracked body to a new AABB, reporting the pair
// transitions the move causes.
func (sap *SweepAndPrune) UpdateObject(body *Body, aabb AABB) error {
	boxID, ok := sap.boxIDs[body]
	if !ok {
		return ErrUnknownBody
	}
	sap.updateBox(boxID, encodeAABB(aabb))
	sap.flushPairs()
	return nil
}

// updateBox walks the box's six end-points to their new values with local
// exchange passes. Between consecutive calls the arrays are nearly sorted,
// so each pass is short. Only a min crossing a max (or the reverse) can
// change an overlap; same-kind swaps just re-index.
func (sap *SweepAndPrune) updateBox(boxID int, aabb aabbInt) {
	for axis := 0; axis < 3; axis++ {
		// The other two axes, checked when a crossing occurs on this one.
		other1 := (1 << axis) & 3
		other2 := (1 << other1) & 3

		box := &sap.boxes[boxID]
		eps := sap.endPoints[axis]

		if limit := aabb.min[axis]; limit < eps[box.min[axis]].value {
			sap.moveMinLeft(boxID, axis, other1, other2, limit)
		} else if limit > eps[box.min[axis]].value {
			sap.moveMinRight(boxID, axis, other1, other2, limit)
		}

		if limit := aabb.max[axis]; limit > eps[box.max[axis]].value {
			sap.moveMaxRight(boxID, axis, other1, other2, limit, aabb.min[axis])
		} else if limit < eps[box.max[axis]].value {
			sap.moveMaxLeft(boxID, axis, other1, other2, limit)
		}
	}
}

// moveMinLeft shifts the box's min end-point down to limit. Crossing a max
// end-point means the boxes begin to overlap on this axis.
func (sap *SweepAndPrune) moveMinLeft(boxID, axis, other1, other2 int, limit uint64) {
	box := &sap.boxes[boxID]
	eps := sap.endPoints[axis]
	i := box.min[axis]
	moving := eps[i]
	moving.value = limit

	for eps[i-1].value > limit {
		passed := eps[i-1]
		other := &sap.boxes[passed.boxID]
		if passed.isMin {
			other.min[axis] = i
		} else {
			if passed.boxID != boxID &&
				sap.overlapOnAxes(box, other, other1, other2) &&
				sap.overlapAbove(other, axis, limit) {
				sap.pairCrossedIn(boxID, passed.boxID)
			}
			other.max[axis] = i
		}
		eps[i] = passed
		i--
	}

	eps[i] = moving
	box.min[axis] = i
}

// moveMinRight shifts the box's min end-point up to limit. Crossing a max
// end-point means the boxes stop overlapping on this axis.
func (sap *SweepAndPrune) moveMinRight(boxID, axis, other1, other2 int, limit uint64) {
	box := &sap.boxes[boxID]
	eps := sap.endPoints[axis]
	i := box.min[axis]
	moving := eps[i]
	moving.value = limit

	for eps[i+1].value < limit {
		passed := eps[i+1]
		other := &sap.boxes[passed.boxID]
		if passed.isMin {
			other.min[axis] = i
		} else {
			if passed.boxID != boxID && sap.overlapOnAxes(box, other, other1, other2) {
				sap.pairCrossedOut(boxID, passed.boxID)
			}
			other.max[axis] = i
		}
		eps[i] = passed
		i++
	}

	eps[i] = moving
	box.min[axis] = i
}

// moveMaxRight shifts the box's max end-point up to limit. Crossing a min
// end-point means the boxes begin to overlap on this axis; minValue is the
// box's already-placed min on this axis, needed for the one-sided check.
func (sap *SweepAndPrune) moveMaxRight(boxID, axis, other1, other2 int, limit, minValue uint64) {
	box := &sap.boxes[boxID]
	eps := sap.endPoints[axis]
	i := box.max[axis]
	moving := eps[i]
	moving.value = limit

	for eps[i+1].value < limit {
		passed := eps[i+1]
		other := &sap.boxes[passed.boxID]
		if passed.isMin {
			if passed.boxID != boxID &&
				sap.overlapOnAxes(box, other, other1, other2) &&
				sap.overlapAbove(other, axis, minValue) {
				sap.pairCrossedIn(boxID, passed.boxID)
			}
			other.min[axis] = i
		} else {
			other.max[axis] = i
		}
		eps[i] = passed
		i++
	}

	eps[i] = moving
	box.max[axis] = i
}

// moveMaxLeft shifts the box's max end-point down to limit. Crossing a min
// end-point means the boxes stop overlapping on this axis.
func (sap *SweepAndPrune) moveMaxLeft(boxID, axis, other1, other2 int, limit uint64) {
	box := &sap.boxes[boxID]
	eps := sap.endPoints[axis]
	i := box.max[axis]
	moving := eps[i]
	moving.value = limit

	for eps[i-1].value > limit {
		passed := eps[i-1]
		other := &sap.boxes[passed.boxID]
		if passed.isMin {
			if passed.boxID != boxID && sap.overlapOnAxes(box, other, other1, other2) {
				sap.pairCrossedOut(boxID, passed.boxID)
			}
			other.min[axis] = i
		} else {
			other.max[axis] = i
		}
		eps[i] = passed
		i--
	}

	eps[i] = moving
	box.max[axis] = i
}

// overlapOnAxes tests overlap on two axes by comparing end-point indices.
// The arrays on those axes are sorted, so index order is value order.
func (sap *SweepAndPrune) overlapOnAxes(box1, box2 *boxEntry, axis1, axis2 int) bool {
	return !(box2.max[axis1] < box1.min[axis1] || box1.max[axis1] < box2.min[axis1] ||
		box2.max[axis2] < box1.min[axis2] || box1.max[axis2] < box2.min[axis2])
}

// overlapAbove tests overlap on the swept axis against the moving box's new
// minimum. The sorted order already guarantees the other direction.
func (sap *SweepAndPrune) overlapAbove(other *boxEntry, axis int, minValue uint64) bool {
	return sap.endPoints[axis][other.max[axis]].value >= minValue
}

// pairCrossedIn marks the pair live after an overlap-starting crossing.
func (sap *SweepAndPrune) pairCrossedIn(id1, id2 int) {
	key := makePairKey(id1, id2)
	sap.touch(key)
	sap.pairs.insert(key)
}

// pairCrossedOut marks the pair dead after an overlap-ending crossing.
func (sap *SweepAndPrune) pairCrossedOut(id1, id2 int) {
	key := makePairKey(id1, id2)
	sap.touch(key)
	sap.pairs.remove(key)
}

// touch records the pair's pre-operation state on its first toggle within
// the current operation.
func (sap *SweepAndPrune) touch(key pairKey) {
	if _, seen := sap.touched[key]; !seen {
		sap.touched[key] = sap.pairs.has(key)
	}
}

// flushPairs reports the net pair transitions of one public operation.
func (sap *SweepAndPrune) flushPairs() {
	for key, wasLive := range sap.touched {
		if isLive := sap.pairs.has(key); isLive != wasLive {
			a := sap.boxes[key.a].body
			b := sap.boxes[key.b].body
			if isLive {
				sap.listener.PairAdded(a, b)
			} else {
				sap.listener.PairRemoved(a, b)
			}
		}
		delete(sap.touched, key)
	}
}
