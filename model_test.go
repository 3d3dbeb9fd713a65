package facade

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findWall(t *testing.T, walls []*Wall, x, y, z float64) *Wall {
	t.Helper()
	for _, w := range walls {
		if w.Center == vec(x, y, z) {
			return w
		}
	}
	t.Fatalf("no wall centered at (%v, %v, %v)", x, y, z)
	return nil
}

func TestUnitCube(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(1, 1, 1), solid(wallColor))
	m, err := NewSegmentedModel(&b.m, testPalette(t))
	require.NoError(t, err)

	assert.InDelta(t, 6, ClassArea(m.Faces, ClassWall), 1e-12)
	assert.InDelta(t, 4, m.WallArea, 1e-12)
	assert.Len(t, m.Walls, 4)
	assert.Empty(t, m.Windows)
	assert.Equal(t, 0.0, m.WWR)
	for _, w := range m.Walls {
		assert.InDelta(t, 1, w.Area, 1e-12)
		assert.Equal(t, 0.0, w.WWR)
	}
}

func TestBoxBuilding(t *testing.T) {
	m, err := NewSegmentedModel(boxBuilding(), testPalette(t))
	require.NoError(t, err)

	require.Len(t, m.Windows, 1)
	assert.InDelta(t, 8, m.Windows[0].Area, 1e-9)
	require.Len(t, m.Walls, 4)

	east := findWall(t, m.Walls, 5, 0, 2)
	assert.Equal(t, 80.0, east.Area)
	assert.Equal(t, vec(1, 0, 0), east.Direction)
	assert.Equal(t, Domain{{5, 5}, {-10, 10}, {0, 4}}, east.Domain)
	assert.Equal(t, []int{0}, east.Windows)
	assert.InDelta(t, 0.1, east.WWR, 1e-12)

	west := findWall(t, m.Walls, -5, 0, 2)
	assert.Equal(t, 80.0, west.Area)
	assert.Equal(t, vec(-1, 0, 0), west.Direction)
	assert.Empty(t, west.Windows)
	assert.Equal(t, 0.0, west.WWR)

	north := findWall(t, m.Walls, 0, 10, 2)
	assert.Equal(t, 40.0, north.Area)
	assert.Equal(t, Domain{{-5, 5}, {10, 10}, {0, 4}}, north.Domain)
	south := findWall(t, m.Walls, 0, -10, 2)
	assert.Equal(t, 40.0, south.Area)

	assert.InDelta(t, 240, m.WallArea, 1e-12)
	assert.InDelta(t, 200, m.RoofArea, 1e-12)
	assert.InDelta(t, 8, m.WindowArea, 1e-9)
	assert.InDelta(t, 8.0/240, m.WWR, 1e-12)
}

func TestBackgroundIgnored(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(2, 2, 2), solid(wallColor))
	// A near-black ground plane would snap to background if it were in
	// the palette. Without it, it snaps to the closest class instead.
	b.quad(vec(-5, -5, 0), vec(5, -5, 0), vec(5, 5, 0), vec(-5, 5, 0), vec(0, 0, 1), Color{0.01, 0.01, 0.01})
	m, err := NewSegmentedModel(&b.m, testPalette(t))
	require.NoError(t, err)
	_, ok := m.Palette.Lookup(ClassBackground)
	assert.False(t, ok)
	for _, f := range m.Faces {
		assert.NotEqual(t, ClassBackground, f.Class)
	}
}

func TestMixedClassFace(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(1, 1, 1), solid(wallColor))
	b.m.Verts[1].Color = windowColor
	_, err := NewSegmentedModel(&b.m, testPalette(t))
	var ice *InconsistentClassificationError
	require.True(t, errors.As(err, &ice), "got %v", err)
	assert.Equal(t, 0, ice.Face)
	assert.Equal(t, [3]int{0, 1, 2}, ice.Verts)
	assert.Equal(t, [3]string{ClassWall, ClassWindow, ClassWall}, ice.Classes)
}

func TestVertexIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{100, -1} {
		var b meshBuilder
		b.box(vec(0, 0, 0), vec(1, 1, 1), solid(wallColor))
		b.m.Tris[3][1] = idx
		_, err := NewSegmentedModel(&b.m, testPalette(t))
		var ce *ConfigurationError
		require.True(t, errors.As(err, &ce), "got %v", err)
		assert.Contains(t, err.Error(), fmt.Sprintf("face 3 references vertex %d", idx))
	}
}

func TestUnresolvableNormal(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(1, 1, 1), solid(wallColor))
	// Point one vertex normal of the first face inward.
	b.m.Verts[1].Normal = vec(-1, 0, 0)
	_, err := NewSegmentedModel(&b.m, testPalette(t))
	var nre *NormalResolutionError
	require.True(t, errors.As(err, &nre), "got %v", err)
	assert.Equal(t, 1, nre.Count)
	assert.Equal(t, []int{0}, nre.Faces)
}

func TestEmptyPalette(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(1, 1, 1), solid(wallColor))
	_, err := NewSegmentedModel(&b.m, &Palette{})
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce), "got %v", err)
}

func TestWindowsWithoutWalls(t *testing.T) {
	var b meshBuilder
	b.box(vec(0, 0, 0), vec(1, 1, 1), solid(windowColor))
	_, err := NewSegmentedModel(&b.m, testPalette(t))
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce), "got %v", err)
}

func TestAnnotation(t *testing.T) {
	m, err := NewSegmentedModel(boxBuilding(), testPalette(t))
	require.NoError(t, err)
	a := m.Annotation()
	require.Len(t, a.Walls, len(m.Walls))
	assert.Equal(t, m.WWR, a.Overall.WWR)

	data, err := a.MarshalJSON()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"overall":{`)
	assert.Contains(t, s, `"0":{`)
	assert.Contains(t, s, `"3":{`)
	assert.Contains(t, s, `"domain":[[`)

	var back Annotation
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, *a, back)
}
