package broadphase

import "errors"

// PairListener receives overlap transitions from a BroadPhase. Pairs are
// unordered and every transition is reported exactly once: a pair is never
// added twice without an intervening removal, and vice versa.
type PairListener interface {
	PairAdded(a, b *Body)
	PairRemoved(a, b *Body)
}

// BroadPhase prunes the all-pairs candidate set down to bodies whose AABBs
// actually overlap, reporting each change to its listener.
//
// Implemented by SweepAndPrune and BruteForce. Implementations are not safe
// for concurrent use; the owner serializes all calls.
type BroadPhase interface {
	// AddObject starts tracking a body. ErrDuplicateBody if it already is.
	AddObject(body *Body, aabb AABB) error
	// RemoveObject stops tracking a body, reporting PairRemoved for every
	// live pair it is part of. ErrUnknownBody if it is not tracked.
	RemoveObject(body *Body) error
	// UpdateObject moves a tracked body to a new AABB.
	UpdateObject(body *Body, aabb AABB) error
	// Count returns the number of tracked bodies.
	Count() int
}

var (
	// ErrUnknownBody reports an update or removal of an untracked body.
	ErrUnknownBody = errors.New("broadphase: unknown body")
	// ErrDuplicateBody reports an add of an already tracked body.
	ErrDuplicateBody = errors.New("broadphase: body already added")
)
