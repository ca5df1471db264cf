package broadphase

import "math"

const signBit = uint64(1) << 63

// EncodeFloat maps a finite float64 to a uint64 whose unsigned ordering is
// identical to the float ordering. Raw IEEE 754 bit patterns already sort
// correctly for non-negative values but sort backwards for negative ones,
// so negative values have all bits inverted and non-negative values get the
// sign bit set. That puts every negative float in the lower half of the
// range, in increasing order, below every non-negative float.
// See http://www.stereopsis.com/radix.html. NaN is not supported.
func EncodeFloat(value float64) uint64 {
	bits := math.Float64bits(value)
	if bits&signBit != 0 {
		return ^bits
	}
	return bits | signBit
}

// aabbInt is an AABB with encoded integer coordinates. Comparing its
// components with integer comparisons gives the same answers as comparing
// the float box it was built from.
type aabbInt struct {
	min [3]uint64
	max [3]uint64
}

func encodeAABB(aabb AABB) aabbInt {
	var box aabbInt
	for axis := 0; axis < 3; axis++ {
		box.min[axis] = EncodeFloat(aabb.Min[axis])
		box.max[axis] = EncodeFloat(aabb.Max[axis])
	}
	return box
}
