package facade

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// A Domain is an axis-aligned bounding box, stored as
// [[xmin, xmax], [ymin, ymax], [zmin, zmax]].
type Domain [3][2]float64

// domainOf returns the bounding box of the vertices of faces.
func domainOf(faces []*Face) Domain {
	d := Domain{
		{math.Inf(1), math.Inf(-1)},
		{math.Inf(1), math.Inf(-1)},
		{math.Inf(1), math.Inf(-1)},
	}
	for _, f := range faces {
		for _, v := range f.V {
			for axis, c := range [3]float64{v.Pos.X, v.Pos.Y, v.Pos.Z} {
				d[axis][0] = math.Min(d[axis][0], c)
				d[axis][1] = math.Max(d[axis][1], c)
			}
		}
	}
	return d
}

// Min returns the minimum corner of d.
func (d Domain) Min() r3.Vec {
	return r3.Vec{X: d[0][0], Y: d[1][0], Z: d[2][0]}
}

// Max returns the maximum corner of d.
func (d Domain) Max() r3.Vec {
	return r3.Vec{X: d[0][1], Y: d[1][1], Z: d[2][1]}
}

// Center returns the midpoint of d.
func (d Domain) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(d.Min(), d.Max()))
}

// Size returns the extent of d along each axis.
func (d Domain) Size() r3.Vec {
	return r3.Sub(d.Max(), d.Min())
}

// Contains reports whether p lies in d, boundary included.
func (d Domain) Contains(p r3.Vec) bool {
	for axis, c := range [3]float64{p.X, p.Y, p.Z} {
		if c < d[axis][0] || c > d[axis][1] {
			return false
		}
	}
	return true
}

// A Wall is one planar, connected patch of wall faces.
type Wall struct {
	Faces     []*Face
	Domain    Domain
	Center    r3.Vec
	Direction r3.Vec // Unit normal shared by all faces
	Area      float64

	// Windows indexes the model's windows that lie on this wall, and WWR
	// is their area over the wall's area. Both are set once windows have
	// been assigned.
	Windows []int
	WWR     float64
}

func newWall(faces []*Face) *Wall {
	w := &Wall{
		Faces:     faces,
		Domain:    domainOf(faces),
		Direction: faces[0].Normal,
	}
	w.Center = w.Domain.Center()
	for _, f := range faces {
		w.Area += f.Area()
	}
	return w
}

// horizontal reports whether a face normal points straight up or down.
// Floors and ceilings are not walls.
func horizontal(n r3.Vec) bool {
	return n.X == 0 && n.Y == 0
}

// directionKey quantizes a unit normal so that faces of one plane
// orientation group together despite rounding noise.
func directionKey(n r3.Vec) [3]float64 {
	const q = 1e6
	return [3]float64{math.Round(n.X*q) / q, math.Round(n.Y*q) / q, math.Round(n.Z*q) / q}
}

// isVerticalWallFace reports whether f takes part in wall partitioning.
func isVerticalWallFace(f *Face) bool {
	return f.Class == ClassWall && !f.Degenerate() && !horizontal(f.Normal)
}

// PartitionWalls splits the non-horizontal faces of faces into walls. Faces
// are first grouped by normal direction, then each direction group is
// split into connected components, so two disjoint patches facing the
// same way become two walls. Faces that are not wall-classed, horizontal,
// or degenerate are ignored.
func PartitionWalls(faces []*Face) []*Wall {
	groups := make(map[[3]float64][]*Face)
	var order [][3]float64
	for _, f := range faces {
		if !isVerticalWallFace(f) {
			continue
		}
		k := directionKey(f.Normal)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], f)
	}

	var walls []*Wall
	for _, k := range order {
		for _, c := range ConnectedComponents(groups[k]) {
			walls = append(walls, newWall(c.Faces))
		}
	}
	return walls
}
