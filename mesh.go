package facade

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/EliCDavis/iter"
	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/EliCDavis/vector/vector4"
	"gonum.org/v1/gonum/spatial/r3"
)

// A Color is an RGB triple. Colors read from meshes and palettes are
// normalized to [0, 1].
type Color [3]float64

// A Vertex is one point of a mesh, along with its shading normal, its
// color, and, once classified, its semantic class.
type Vertex struct {
	ID     int
	Pos    r3.Vec
	Normal r3.Vec
	Color  Color
	Class  string // "" if unlabeled
}

// A Mesh is a triangulated, vertex-colored model. Tris index into Verts.
type Mesh struct {
	Verts []Vertex
	Tris  [][3]int
}

// ReadPLYFile reads a mesh from the PLY file at path.
func ReadPLYFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadPLY(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// ReadPLY reads a triangulated mesh from a PLY stream. Every vertex must
// have a position, a normal, and a color. Quad faces are split into
// triangles and any alpha channel is ignored.
func ReadPLY(r io.Reader) (*Mesh, error) {
	pm, err := ply.ReadMesh(r)
	if err != nil {
		return nil, err
	}
	if pm.Topology() != modeling.TriangleTopology {
		return nil, fmt.Errorf("mesh has no faces")
	}
	if !pm.HasFloat3Attribute(modeling.PositionAttribute) {
		return nil, fmt.Errorf("mesh has no vertex positions")
	}
	if !pm.HasFloat3Attribute(modeling.NormalAttribute) {
		return nil, fmt.Errorf("mesh has no vertex normals")
	}
	pos := iter.ReadFull[vector3.Float64](pm.Float3Attribute(modeling.PositionAttribute))
	normals := iter.ReadFull[vector3.Float64](pm.Float3Attribute(modeling.NormalAttribute))
	colors, err := readColors(pm)
	if err != nil {
		return nil, err
	}
	if len(normals) != len(pos) {
		return nil, fmt.Errorf("mesh has %d vertices but %d normals", len(pos), len(normals))
	}
	if len(colors) != len(pos) {
		return nil, fmt.Errorf("mesh has %d vertices but %d colors", len(pos), len(colors))
	}

	// The PLY reader normalizes uchar colors. Float colors stored on a
	// 0-255 scale are normalized here.
	scale := 1.0
	for _, c := range colors {
		if c[0] > 1 || c[1] > 1 || c[2] > 1 {
			scale = 255
			break
		}
	}

	m := &Mesh{Verts: make([]Vertex, len(pos))}
	for i := range pos {
		c := colors[i]
		m.Verts[i] = Vertex{
			ID:     i,
			Pos:    toVec(pos[i]),
			Normal: toVec(normals[i]),
			Color:  Color{snap(c[0] / scale), snap(c[1] / scale), snap(c[2] / scale)},
		}
	}
	idx := iter.ReadFull[int](pm.Indices())
	if len(idx)%3 != 0 {
		return nil, fmt.Errorf("mesh has %d indices, not a multiple of 3", len(idx))
	}
	m.Tris = make([][3]int, 0, len(idx)/3)
	for i := 0; i < len(idx); i += 3 {
		m.Tris = append(m.Tris, [3]int{idx[i], idx[i+1], idx[i+2]})
	}
	return m, nil
}

// readColors returns the RGB vertex colors of pm. The PLY reader stores
// colors as a 4-vector when the file has an alpha property.
func readColors(pm *modeling.Mesh) ([][3]float64, error) {
	var out [][3]float64
	switch {
	case pm.HasFloat3Attribute(modeling.ColorAttribute):
		for _, c := range iter.ReadFull[vector3.Float64](pm.Float3Attribute(modeling.ColorAttribute)) {
			out = append(out, [3]float64{c.X(), c.Y(), c.Z()})
		}
	case pm.HasFloat4Attribute(modeling.ColorAttribute):
		for _, c := range iter.ReadFull[vector4.Float64](pm.Float4Attribute(modeling.ColorAttribute)) {
			out = append(out, [3]float64{c.X(), c.Y(), c.Z()})
		}
	default:
		return nil, fmt.Errorf("mesh has no vertex colors")
	}
	return out, nil
}

func toVec(v vector3.Float64) r3.Vec {
	return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// snap rounds a normalized color channel to the nearest 8-bit step so
// that colors compare exactly against palette entries.
func snap(c float64) float64 {
	return math.Round(c*255) / 255
}
