package facade

import (
	"fmt"
	"strings"
)

// A ConfigurationError reports a bad palette, a malformed mesh reference,
// or an undefined ratio.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}

// An InconsistentClassificationError reports a face whose three vertices
// carry different semantic classes. Mixed-class faces are not supported.
type InconsistentClassificationError struct {
	Face    int
	Verts   [3]int
	Classes [3]string
}

func (e *InconsistentClassificationError) Error() string {
	return fmt.Sprintf("face %d has vertices %v with mixed classes %q", e.Face, e.Verts, e.Classes)
}

// A NormalResolutionError reports faces whose geometric normal could not
// be reconciled with their vertex normals after one flip.
type NormalResolutionError struct {
	Count int
	Faces []int // The first few unresolved face IDs
}

func (e *NormalResolutionError) Error() string {
	ids := make([]string, len(e.Faces))
	for i, f := range e.Faces {
		ids[i] = fmt.Sprint(f)
	}
	return fmt.Sprintf("%d faces could not be corrected to match vertex normals (faces %s)", e.Count, strings.Join(ids, ", "))
}

// A DegeneratePlaneError reports that the three points used to build a
// plane are collinear.
type DegeneratePlaneError struct {
	Points [3][3]float64
}

func (e *DegeneratePlaneError) Error() string {
	return fmt.Sprintf("plane points %v form a line or a point", e.Points)
}
