package facade

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// parallelEpsilon bounds |dot(n, edge)| for an edge to count as parallel
// to a plane. n is not normalized.
const parallelEpsilon = 1e-6

// A Plane is the set of points p where dot(Normal, p) + D = 0.
type Plane struct {
	Normal r3.Vec // Not necessarily unit length
	D      float64
}

// NewPlane returns the plane through a, b, and c. It fails with a
// *DegeneratePlaneError if the points are collinear.
func NewPlane(a, b, c r3.Vec) (*Plane, error) {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if n == (r3.Vec{}) {
		return nil, &DegeneratePlaneError{Points: [3][3]float64{
			{a.X, a.Y, a.Z}, {b.X, b.Y, b.Z}, {c.X, c.Y, c.Z},
		}}
	}
	return &Plane{Normal: n, D: -r3.Dot(n, a)}, nil
}

// probePlane returns the plane flush with w's surface. It is built from
// the wall's maximum corner, its center, and a third point offset from
// the center along the wall, perpendicular to the first two.
func probePlane(w *Wall) (*Plane, error) {
	top := w.Domain.Max()
	along := r3.Cross(r3.Sub(top, w.Center), w.Direction)
	return NewPlane(top, w.Center, r3.Add(w.Center, along))
}

// EdgeHits reports whether the segment from p0 to p1 lies on or crosses
// the plane.
//
// A segment parallel to the plane counts as lying on it if both endpoints
// are within domain; otherwise it never hits. Any other segment hits if
// the plane intersects it between its endpoints, inclusive.
func (pl *Plane) EdgeHits(p0, p1 r3.Vec, domain Domain) bool {
	du := r3.Sub(p1, p0)
	denom := r3.Dot(pl.Normal, du)
	if math.Abs(denom) <= parallelEpsilon {
		return domain.Contains(p0) && domain.Contains(p1)
	}
	// Substituting the line p0 + t*du into the plane equation gives
	// dot(n, p0) + t*dot(n, du) + d = 0.
	t := -(r3.Dot(pl.Normal, p0) + pl.D) / denom
	return 0 <= t && t <= 1
}
