package facade

import "math"

// A Window is one connected group of window faces.
type Window struct {
	Component
	Domain Domain

	// Area is the area of the largest face of the window's bounding box,
	// which is the face parallel to the wall the window sits in.
	Area float64
}

func newWindow(c Component) *Window {
	w := &Window{Component: c, Domain: domainOf(c.Faces)}
	s := w.Domain.Size()
	w.Area = math.Max(s.X*s.Y, math.Max(s.X*s.Z, s.Y*s.Z))
	return w
}

// FindWindows groups window faces into windows.
func FindWindows(faces []*Face) []*Window {
	var windows []*Window
	for _, c := range ConnectedComponents(faces) {
		windows = append(windows, newWindow(c))
	}
	return windows
}

// AssignWindows records on each wall the windows that lie on it.
//
// Every edge of every window face is tested against the wall's probe
// plane. A window belongs to a wall if any of its vertices is an endpoint
// of an edge that lies on or crosses that plane. A window may be assigned
// to more than one wall.
func AssignWindows(walls []*Wall, windows []*Window) error {
	for _, wall := range walls {
		plane, err := probePlane(wall)
		if err != nil {
			return err
		}
		hit := make(map[int]bool)
		for _, win := range windows {
			for _, f := range win.Faces {
				for _, e := range f.Edges() {
					if plane.EdgeHits(e[0].Pos, e[1].Pos, wall.Domain) {
						hit[e[0].ID] = true
						hit[e[1].ID] = true
					}
				}
			}
		}
		wall.Windows = nil
		for i, win := range windows {
			for _, id := range win.Nodes {
				if hit[id] {
					wall.Windows = append(wall.Windows, i)
					break
				}
			}
		}
	}
	return nil
}
