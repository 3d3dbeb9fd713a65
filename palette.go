package facade

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Semantic class names the analysis understands. Palettes may name other
// classes; those are classified but otherwise ignored.
const (
	ClassWall       = "wall"
	ClassWindow     = "window"
	ClassRoof       = "roof"
	ClassBackground = "background"
)

// A PaletteEntry maps a semantic class to its numeric ID and color.
type PaletteEntry struct {
	Name  string
	ID    int
	RGB   [3]int // 0-255
	Color Color  // RGB/255
}

// A Palette is an ordered class→color mapping. Order matters: when a
// color is equidistant from two entries, the earlier entry wins.
type Palette struct {
	Entries []PaletteEntry
}

// ReadPaletteFile reads a palette from the JSON or YAML file at path.
func ReadPaletteFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPalette(f)
}

// ReadPalette reads a palette of the form
//
//	{"wall": {"ID": 1, "RGB": [255, 0, 0]}, ...}
//
// Entries keep their order in the file.
func ReadPalette(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParsePalette(data)
}

// ParsePalette parses a palette from JSON or YAML text.
func ParsePalette(data []byte) (*Palette, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, configErrorf("parsing palette: %s", err)
	}
	if len(doc.Content) == 0 {
		return nil, configErrorf("palette is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, configErrorf("palette must be a mapping from class name to {ID, RGB}")
	}

	p := new(Palette)
	ids := make(map[int]string)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var raw struct {
			ID  *int  `yaml:"ID"`
			RGB []int `yaml:"RGB"`
		}
		if err := root.Content[i+1].Decode(&raw); err != nil {
			return nil, configErrorf("class %q: %s", name, err)
		}
		if raw.ID == nil {
			return nil, configErrorf("class %q has no ID", name)
		}
		if other, ok := ids[*raw.ID]; ok {
			return nil, configErrorf("classes %q and %q share ID %d", other, name, *raw.ID)
		}
		ids[*raw.ID] = name
		if len(raw.RGB) != 3 {
			return nil, configErrorf("class %q: RGB must have 3 components, got %d", name, len(raw.RGB))
		}
		e := PaletteEntry{Name: name, ID: *raw.ID}
		for c, v := range raw.RGB {
			if v < 0 || v > 255 {
				return nil, configErrorf("class %q: RGB component %d out of range", name, v)
			}
			e.RGB[c] = v
			e.Color[c] = float64(v) / 255
		}
		p.Entries = append(p.Entries, e)
	}
	if len(p.Entries) == 0 {
		return nil, configErrorf("palette is empty")
	}
	return p, nil
}

// Without returns a copy of p with the named class removed.
func (p *Palette) Without(name string) *Palette {
	out := &Palette{Entries: make([]PaletteEntry, 0, len(p.Entries))}
	for _, e := range p.Entries {
		if e.Name != name {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// Colors returns the palette's colors in entry order.
func (p *Palette) Colors() []Color {
	cs := make([]Color, len(p.Entries))
	for i, e := range p.Entries {
		cs[i] = e.Color
	}
	return cs
}

// Lookup returns the entry for the named class.
func (p *Palette) Lookup(name string) (PaletteEntry, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return PaletteEntry{}, false
}
