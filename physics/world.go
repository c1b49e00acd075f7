package physics

import (
	"github.com/meghashyamc/lumen2d/geometry"
)

// Epsilon is the minimum ray parameter for a hit to count. Hits closer than
// this to the ray origin are skipped so a ray starting on a surface (e.g. a
// reflection point) does not immediately hit that surface again.
const Epsilon = 1e-6

// Hit describes the closest obstruction found along a ray
type Hit struct {
	Point    geometry.Vector
	Normal   geometry.Vector // unit length, oriented against the incoming ray
	Surface  Surface
	Distance float64
}

// World holds the static level geometry that beams are cast against. It is not
// safe for concurrent mutation; the simulation tick owns it exclusively.
type World struct {
	surfaces   []Surface
	nextID     SurfaceID
	generation uint64
}

func NewWorld() *World {
	return &World{nextID: 1}
}

// Generation is the current geometry stamp. It changes whenever the level
// geometry changes, so cached raycast results keyed by it can be invalidated.
func (w *World) Generation() uint64 {
	return w.generation
}

// Bump marks the geometry as changed without touching any surface
func (w *World) Bump() {
	w.generation++
}

func (w *World) AddSurface(kind SurfaceKind, start, end geometry.Vector) SurfaceID {
	id := w.nextID
	w.nextID++
	w.surfaces = append(w.surfaces, Surface{ID: id, Kind: kind, Start: start, End: end})
	w.generation++
	return id
}

func (w *World) RemoveSurface(id SurfaceID) bool {
	for i, s := range w.surfaces {
		if s.ID == id {
			w.surfaces = append(w.surfaces[:i], w.surfaces[i+1:]...)
			w.generation++
			return true
		}
	}
	return false
}

func (w *World) Surfaces() []Surface {
	return w.surfaces
}

// Raycast finds the closest surface along the ray from origin in unit
// direction dir, ignoring surfaces whose IDs appear in exclude. It returns
// false if nothing is hit.
func (w *World) Raycast(origin, dir geometry.Vector, exclude map[SurfaceID]struct{}) (Hit, bool) {
	closest := Hit{Distance: -1}
	found := false

	for _, surface := range w.surfaces {
		if _, skip := exclude[surface.ID]; skip {
			continue
		}

		t, ok := intersectRaySegment(origin, dir, surface.Start, surface.End)
		if !ok || t < Epsilon {
			continue
		}
		if found && t >= closest.Distance {
			continue
		}

		normal := surface.Normal()
		// Face the normal against the incoming ray
		if normal.DotProduct(dir) > 0 {
			normal = normal.Scale(-1)
		}

		closest = Hit{
			Point:    origin.Add(dir.Scale(t)),
			Normal:   normal,
			Surface:  surface,
			Distance: t,
		}
		found = true
	}

	return closest, found
}

// intersectRaySegment solves origin + t*dir = start + u*(end-start) for
// t >= 0 and u in [0,1]. It returns the ray parameter t.
func intersectRaySegment(origin, dir, start, end geometry.Vector) (float64, bool) {
	along := end.Sub(start)
	denom := dir.X*along.Y - dir.Y*along.X
	if denom == 0 {
		// Parallel (or degenerate segment): no single crossing point
		return 0, false
	}

	toStart := start.Sub(origin)
	t := (toStart.X*along.Y - toStart.Y*along.X) / denom
	u := (toStart.X*dir.Y - toStart.Y*dir.X) / denom

	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
