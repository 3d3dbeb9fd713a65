package facade

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/spatial/r3"
)

// An Annotation is the measurement record of one building, in the shape
// the dataset writer stores:
//
//	{"overall": {"wwr": ...},
//	 "0": {"center": [x,y,z], "direction": [x,y,z],
//	       "domain": [[xmin,xmax],[ymin,ymax],[zmin,zmax]],
//	       "wwr": ..., "area": ...},
//	 ...}
type Annotation struct {
	Overall OverallAnnotation
	Walls   []WallAnnotation
}

type OverallAnnotation struct {
	WWR        float64 `json:"wwr"`
	WallArea   float64 `json:"wall_area"`
	WindowArea float64 `json:"window_area"`
	RoofArea   float64 `json:"roof_area"`
}

type WallAnnotation struct {
	Center    [3]float64 `json:"center"`
	Direction [3]float64 `json:"direction"`
	Domain    Domain     `json:"domain"`
	WWR       float64    `json:"wwr"`
	Area      float64    `json:"area"`
}

// Annotation returns the measurement record of m.
func (m *SegmentedModel) Annotation() *Annotation {
	a := &Annotation{
		Overall: OverallAnnotation{
			WWR:        m.WWR,
			WallArea:   m.WallArea,
			WindowArea: m.WindowArea,
			RoofArea:   m.RoofArea,
		},
	}
	for _, w := range m.Walls {
		a.Walls = append(a.Walls, WallAnnotation{
			Center:    vecArray(w.Center),
			Direction: vecArray(w.Direction),
			Domain:    w.Domain,
			WWR:       w.WWR,
			Area:      w.Area,
		})
	}
	return a
}

func vecArray(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (a *Annotation) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Walls)+1)
	out["overall"] = a.Overall
	for i, w := range a.Walls {
		out[strconv.Itoa(i)] = w
	}
	return json.Marshal(out)
}

func (a *Annotation) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Annotation{}
	var idxs []int
	walls := make(map[int]WallAnnotation)
	for k, v := range raw {
		if k == "overall" {
			if err := json.Unmarshal(v, &a.Overall); err != nil {
				return fmt.Errorf("overall: %w", err)
			}
			continue
		}
		i, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("unexpected annotation key %q", k)
		}
		var w WallAnnotation
		if err := json.Unmarshal(v, &w); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
		walls[i] = w
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	for _, i := range idxs {
		a.Walls = append(a.Walls, walls[i])
	}
	return nil
}

// WriteJSON writes a as JSON to w.
func (a *Annotation) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}
