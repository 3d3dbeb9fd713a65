package facade

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const testPaletteJSON = `{
	"background": {"ID": 0, "RGB": [0, 0, 0]},
	"wall": {"ID": 1, "RGB": [255, 0, 0]},
	"window": {"ID": 2, "RGB": [0, 0, 255]},
	"roof": {"ID": 3, "RGB": [0, 255, 0]}
}`

// Slightly off-palette colors, as a renderer might export them.
var (
	wallColor   = Color{250.0 / 255, 3.0 / 255, 0}
	windowColor = Color{0, 10.0 / 255, 240.0 / 255}
	roofColor   = Color{5.0 / 255, 1, 5.0 / 255}
)

func testPalette(t *testing.T) *Palette {
	t.Helper()
	p, err := ParsePalette([]byte(testPaletteJSON))
	require.NoError(t, err)
	return p
}

func vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// meshBuilder assembles test meshes out of quads. Each quad gets its own
// four vertices, so quads never share vertex IDs.
type meshBuilder struct {
	m Mesh
}

func (b *meshBuilder) vert(p, n r3.Vec, c Color) int {
	id := len(b.m.Verts)
	b.m.Verts = append(b.m.Verts, Vertex{ID: id, Pos: p, Normal: n, Color: c})
	return id
}

// quad adds the quad a-b-c-d as two triangles with vertex normal n.
func (b *meshBuilder) quad(a, bb, c, d, n r3.Vec, col Color) {
	ia := b.vert(a, n, col)
	ib := b.vert(bb, n, col)
	ic := b.vert(c, n, col)
	id := b.vert(d, n, col)
	b.m.Tris = append(b.m.Tris, [3]int{ia, ib, ic}, [3]int{ia, ic, id})
}

// box adds the six sides of the box from lo to hi with outward normals.
// colorFor picks each side's color from its outward normal.
func (b *meshBuilder) box(lo, hi r3.Vec, colorFor func(n r3.Vec) Color) {
	x0, y0, z0 := lo.X, lo.Y, lo.Z
	x1, y1, z1 := hi.X, hi.Y, hi.Z
	sides := []struct {
		n          r3.Vec
		a, b, c, d r3.Vec
	}{
		{vec(1, 0, 0), vec(x1, y0, z0), vec(x1, y1, z0), vec(x1, y1, z1), vec(x1, y0, z1)},
		{vec(-1, 0, 0), vec(x0, y0, z0), vec(x0, y0, z1), vec(x0, y1, z1), vec(x0, y1, z0)},
		{vec(0, 1, 0), vec(x0, y1, z0), vec(x0, y1, z1), vec(x1, y1, z1), vec(x1, y1, z0)},
		{vec(0, -1, 0), vec(x0, y0, z0), vec(x1, y0, z0), vec(x1, y0, z1), vec(x0, y0, z1)},
		{vec(0, 0, 1), vec(x0, y0, z1), vec(x1, y0, z1), vec(x1, y1, z1), vec(x0, y1, z1)},
		{vec(0, 0, -1), vec(x0, y0, z0), vec(x0, y1, z0), vec(x1, y1, z0), vec(x1, y0, z0)},
	}
	for _, s := range sides {
		b.quad(s.a, s.b, s.c, s.d, s.n, colorFor(s.n))
	}
}

// solidBox adds a closed box from lo to hi whose sides share their eight
// corner vertices, so the whole box is one connected component. Corner
// normals point diagonally outward.
func (b *meshBuilder) solidBox(lo, hi r3.Vec, col Color) {
	var corner [8]int
	for i := range corner {
		p, n := lo, vec(-1, -1, -1)
		if i&1 != 0 {
			p.X, n.X = hi.X, 1
		}
		if i&2 != 0 {
			p.Y, n.Y = hi.Y, 1
		}
		if i&4 != 0 {
			p.Z, n.Z = hi.Z, 1
		}
		corner[i] = b.vert(p, r3.Unit(n), col)
	}
	quads := [6][4]int{
		{1, 3, 7, 5}, // +x
		{0, 4, 6, 2}, // -x
		{2, 6, 7, 3}, // +y
		{0, 1, 5, 4}, // -y
		{4, 5, 7, 6}, // +z
		{0, 2, 3, 1}, // -z
	}
	for _, q := range quads {
		a, bb, c, d := corner[q[0]], corner[q[1]], corner[q[2]], corner[q[3]]
		b.m.Tris = append(b.m.Tris, [3]int{a, bb, c}, [3]int{a, c, d})
	}
}

func solid(c Color) func(r3.Vec) Color {
	return func(r3.Vec) Color { return c }
}

// buildingColors colors a box as a building: a roof on top and walls
// everywhere else.
func buildingColors(n r3.Vec) Color {
	if n.Z > 0 {
		return roofColor
	}
	return wallColor
}

// boxBuilding returns a 10×20×4 box building with one window protruding
// 0.2 from the x=5 wall. The window's face on the wall is 4×2.
func boxBuilding() *Mesh {
	var b meshBuilder
	b.box(vec(-5, -10, 0), vec(5, 10, 4), buildingColors)
	b.solidBox(vec(5, -2, 1), vec(5.2, 2, 3), windowColor)
	return &b.m
}

func facePtrs(faces []Face) []*Face {
	out := make([]*Face, len(faces))
	for i := range faces {
		out[i] = &faces[i]
	}
	return out
}
