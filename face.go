package facade

import "gonum.org/v1/gonum/spatial/r3"

// A Face is one triangle of a classified mesh. It carries copies of its
// three vertices, so it never needs to be joined against the vertex table
// again.
type Face struct {
	ID    int
	V     [3]Vertex
	Class string

	// Normal is the unit face normal, oriented to agree with the vertex
	// normals. It is the zero vector for degenerate faces.
	Normal r3.Vec

	// Magnitude is the length of the face normal before normalization,
	// which is twice the triangle's area.
	Magnitude float64
}

// Area returns the area of the triangle.
func (f *Face) Area() float64 {
	return f.Magnitude / 2
}

// Degenerate reports whether the triangle has zero area.
func (f *Face) Degenerate() bool {
	return f.Magnitude == 0
}

// VertIDs returns the IDs of the face's vertices.
func (f *Face) VertIDs() [3]int {
	return [3]int{f.V[0].ID, f.V[1].ID, f.V[2].ID}
}

// Edges returns the face's three edges as vertex pairs: v1-v2, v2-v3, and
// v3-v1.
func (f *Face) Edges() [3][2]Vertex {
	return [3][2]Vertex{{f.V[0], f.V[1]}, {f.V[1], f.V[2]}, {f.V[2], f.V[0]}}
}

// AssembleFaces builds one Face per triangle in tris. All three vertices
// of a triangle must share a class; there is no way to resolve a
// mixed-class face, so one fails the whole assembly.
func AssembleFaces(tris [][3]int, verts []Vertex) ([]Face, error) {
	faces := make([]Face, len(tris))
	for i, tri := range tris {
		f := &faces[i]
		f.ID = i
		for k, idx := range tri {
			if idx < 0 || idx >= len(verts) {
				return nil, configErrorf("face %d references vertex %d, but the mesh has %d vertices", i, idx, len(verts))
			}
			f.V[k] = verts[idx]
		}
		if f.V[0].Class != f.V[1].Class || f.V[1].Class != f.V[2].Class {
			return nil, &InconsistentClassificationError{
				Face:    i,
				Verts:   f.VertIDs(),
				Classes: [3]string{f.V[0].Class, f.V[1].Class, f.V[2].Class},
			}
		}
		f.Class = f.V[0].Class
	}
	return faces, nil
}

// selectFaces returns pointers to the faces for which keep returns true.
func selectFaces(faces []Face, keep func(f *Face) bool) []*Face {
	var out []*Face
	for i := range faces {
		if keep(&faces[i]) {
			out = append(out, &faces[i])
		}
	}
	return out
}

func ofClass(class string) func(f *Face) bool {
	return func(f *Face) bool { return f.Class == class }
}
