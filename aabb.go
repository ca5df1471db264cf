package broadphase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{
		Min: mgl64.Vec3{minX, minY, minZ},
		Max: mgl64.Vec3{maxX, maxY, maxZ},
	}
}

// NewAABBForExtents builds a box centered on c with the given half-widths.
func NewAABBForExtents(c mgl64.Vec3, hx, hy, hz float64) AABB {
	return AABB{
		Min: mgl64.Vec3{c.X() - hx, c.Y() - hy, c.Z() - hz},
		Max: mgl64.Vec3{c.X() + hx, c.Y() + hy, c.Z() + hz},
	}
}

// Intersects reports whether the boxes overlap on all three axes.
// Touching boundaries count as overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && b.Min.X() <= a.Max.X() &&
		a.Min.Y() <= b.Max.Y() && b.Min.Y() <= a.Max.Y() &&
		a.Min.Z() <= b.Max.Z() && b.Min.Z() <= a.Max.Z()
}

// Contains reports whether b lies entirely inside a.
func (a AABB) Contains(b AABB) bool {
	return a.Min.X() <= b.Min.X() && a.Max.X() >= b.Max.X() &&
		a.Min.Y() <= b.Min.Y() && a.Max.Y() >= b.Max.Y() &&
		a.Min.Z() <= b.Min.Z() && a.Max.Z() >= b.Max.Z()
}

// ContainsPoint reports whether p lies inside the box.
func (a AABB) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Merged returns the smallest box containing both a and b.
func (a AABB) Merged(b AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), b.Min.X()),
			math.Min(a.Min.Y(), b.Min.Y()),
			math.Min(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), b.Max.X()),
			math.Max(a.Max.Y(), b.Max.Y()),
			math.Max(a.Max.Z(), b.Max.Z()),
		},
	}
}

// WithMargin returns the box grown by m on every side.
func (a AABB) WithMargin(m float64) AABB {
	return AABB{
		Min: mgl64.Vec3{a.Min.X() - m, a.Min.Y() - m, a.Min.Z() - m},
		Max: mgl64.Vec3{a.Max.X() + m, a.Max.Y() + m, a.Max.Z() + m},
	}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half-widths of the box on each axis.
func (a AABB) Extents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}
