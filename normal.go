package facade

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxReportedFaces limits how many face IDs a NormalResolutionError lists.
const maxReportedFaces = 5

// ResolveNormals computes each face's geometric normal from its vertex
// positions and orients it to agree with the face's vertex normals. It
// returns new faces with Normal and Magnitude set.
//
// The normal is flipped at most once. If any vertex normal is still more
// than 90° from the flipped normal, the face is unresolvable and
// ResolveNormals returns a *NormalResolutionError.
func ResolveNormals(faces []Face) ([]Face, error) {
	out := make([]Face, len(faces))
	var bad []int
	count := 0
	for i := range faces {
		f := faces[i]
		n := faceNormal(f.V[0].Pos, f.V[1].Pos, f.V[2].Pos)
		vn := [3]r3.Vec{f.V[0].Normal, f.V[1].Normal, f.V[2].Normal}
		if anyTrue(checkAngles(n, vn)) {
			n = r3.Scale(-1, n)
			if anyTrue(checkAngles(n, vn)) {
				count++
				if len(bad) < maxReportedFaces {
					bad = append(bad, f.ID)
				}
			}
		}
		f.Magnitude = r3.Norm(n)
		if f.Magnitude != 0 {
			f.Normal = r3.Vec{X: n.X / f.Magnitude, Y: n.Y / f.Magnitude, Z: n.Z / f.Magnitude}
		} else {
			f.Normal = r3.Vec{}
		}
		out[i] = f
	}
	if count > 0 {
		return nil, &NormalResolutionError{Count: count, Faces: bad}
	}
	return out, nil
}

// faceNormal returns cross(b-a, c-a).
func faceNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

// checkAngles reports, for each vertex normal, whether it is more than 90°
// from the face normal n. Zero-length normals never disagree.
func checkAngles(n r3.Vec, vn [3]r3.Vec) (disagree [3]bool) {
	nMag := r3.Norm(n)
	for i, v := range vn {
		cos := r3.Dot(n, v) / (nMag * r3.Norm(v))
		// Rounding can push the cosine of (anti)parallel vectors just
		// past ±1, outside the domain of acos.
		switch {
		case isClose(cos, 1):
			cos = 1
		case isClose(cos, -1):
			cos = -1
		}
		disagree[i] = math.Acos(cos) > math.Pi/2
	}
	return
}

// isClose reports whether a is within a small relative and absolute
// tolerance of b.
func isClose(a, b float64) bool {
	const (
		rtol = 1e-5
		atol = 1e-8
	)
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

func anyTrue(bs [3]bool) bool {
	return bs[0] || bs[1] || bs[2]
}
