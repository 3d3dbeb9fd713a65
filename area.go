package facade

// ClassArea returns the total area of the faces of the given class.
func ClassArea(faces []Face, class string) float64 {
	return sumArea(faces, ofClass(class))
}

// WallArea returns the area of the wall faces, excluding the horizontal
// faces that cap the building's top and bottom.
func WallArea(faces []Face) float64 {
	return sumArea(faces, isVerticalWallFace)
}

// RoofArea returns the area of the roof faces, excluding those facing
// downward.
func RoofArea(faces []Face) float64 {
	return sumArea(faces, func(f *Face) bool {
		return f.Class == ClassRoof && f.Normal.Z >= 0
	})
}

// WindowArea returns the total area of windows.
func WindowArea(windows []*Window) float64 {
	var a float64
	for _, w := range windows {
		a += w.Area
	}
	return a
}

func sumArea(faces []Face, keep func(f *Face) bool) float64 {
	var a float64
	for i := range faces {
		if keep(&faces[i]) {
			a += faces[i].Area()
		}
	}
	return a
}

// ratio returns the window-to-wall ratio. No windows is a ratio of 0
// regardless of the wall area; any windows on no wall area is an error.
func ratio(windowArea, wallArea float64) (float64, error) {
	if windowArea == 0 {
		return 0, nil
	}
	if wallArea == 0 {
		return 0, configErrorf("window area %v over zero wall area", windowArea)
	}
	return windowArea / wallArea, nil
}
