package facade

import "fmt"

// A SegmentedModel is a building mesh whose vertices are colored by
// semantic class, analyzed into walls and windows.
//
// A SegmentedModel is fully computed by NewSegmentedModel and is
// read-only afterwards, so it is safe to share between goroutines.
type SegmentedModel struct {
	Verts   []Vertex
	Faces   []Face
	Palette *Palette

	Windows []*Window
	Walls   []*Wall

	WallArea   float64 // Vertical wall area
	WindowArea float64
	RoofArea   float64 // Upward-facing roof area

	// WWR is the window-to-wall ratio of the whole building.
	WWR float64
}

// Load reads a PLY mesh and a palette file and analyzes them.
func Load(meshPath, palettePath string) (*SegmentedModel, error) {
	p, err := ReadPaletteFile(palettePath)
	if err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", palettePath, err)
	}
	m, err := ReadPLYFile(meshPath)
	if err != nil {
		return nil, err
	}
	return NewSegmentedModel(m, p)
}

// NewSegmentedModel analyzes mesh m using palette p. The background class,
// if p has one, is dropped before analysis.
//
// Vertex colors are snapped to the palette, vertices and then faces are
// classified, face normals are oriented, window faces are grouped into
// windows, wall faces are partitioned into walls, windows are assigned to
// walls, and areas are totaled. Any failure along the way aborts the
// whole analysis.
func NewSegmentedModel(m *Mesh, p *Palette) (*SegmentedModel, error) {
	p = p.Without(ClassBackground)

	colors := make([]Color, len(m.Verts))
	for i, v := range m.Verts {
		colors[i] = v.Color
	}
	colors, err := Quantize(colors, p.Colors())
	if err != nil {
		return nil, err
	}
	verts := make([]Vertex, len(m.Verts))
	for i, v := range m.Verts {
		v.Color = colors[i]
		verts[i] = v
	}
	verts = AssignClasses(verts, p)

	faces, err := AssembleFaces(m.Tris, verts)
	if err != nil {
		return nil, err
	}
	faces, err = ResolveNormals(faces)
	if err != nil {
		return nil, err
	}

	sm := &SegmentedModel{
		Verts:   verts,
		Faces:   faces,
		Palette: p,
	}
	sm.Windows = FindWindows(selectFaces(faces, ofClass(ClassWindow)))
	sm.Walls = PartitionWalls(selectFaces(faces, ofClass(ClassWall)))
	if err := AssignWindows(sm.Walls, sm.Windows); err != nil {
		return nil, err
	}

	for _, w := range sm.Walls {
		var area float64
		for _, i := range w.Windows {
			area += sm.Windows[i].Area
		}
		if w.WWR, err = ratio(area, w.Area); err != nil {
			return nil, fmt.Errorf("wall at %v: %w", w.Center, err)
		}
	}
	sm.WallArea = WallArea(faces)
	sm.WindowArea = WindowArea(sm.Windows)
	sm.RoofArea = RoofArea(faces)
	if sm.WWR, err = ratio(sm.WindowArea, sm.WallArea); err != nil {
		return nil, err
	}
	return sm, nil
}
