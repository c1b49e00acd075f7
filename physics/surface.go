package physics

import (
	"github.com/meghashyamc/lumen2d/geometry"
)

type SurfaceID int

type SurfaceKind int

const (
	// SurfaceWall absorbs a beam that strikes it
	SurfaceWall SurfaceKind = iota
	// SurfaceMirror reflects a beam that strikes it
	SurfaceMirror
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceWall:
		return "wall"
	case SurfaceMirror:
		return "mirror"
	}
	return "unknown"
}

// Surface is a static piece of level geometry, represented as a line segment
type Surface struct {
	ID    SurfaceID
	Kind  SurfaceKind
	Start geometry.Vector
	End   geometry.Vector
}

// IsReflective reports whether a beam bounces off this surface rather than
// being absorbed by it
func (s Surface) IsReflective() bool {
	return s.Kind == SurfaceMirror
}

// Normal returns a unit vector perpendicular to the surface. Which of the two
// perpendiculars is returned is arbitrary; Raycast orients it against the
// incoming ray.
func (s Surface) Normal() geometry.Vector {
	along := s.End.Sub(s.Start)
	return geometry.Vector{X: -along.Y, Y: along.X}.Normalize()
}
