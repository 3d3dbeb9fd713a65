package facade

// AssignClasses labels each vertex with the class whose palette color it
// matches exactly. Vertices that match no entry are left unlabeled.
// Colors should already be quantized to p.
func AssignClasses(verts []Vertex, p *Palette) []Vertex {
	byColor := make(map[Color]string, len(p.Entries))
	for i := len(p.Entries) - 1; i >= 0; i-- {
		byColor[p.Entries[i].Color] = p.Entries[i].Name
	}
	out := make([]Vertex, len(verts))
	for i, v := range verts {
		v.Class = byColor[v.Color]
		out[i] = v
	}
	return out
}
