package beam

import (
	"math"

	"github.com/meghashyamc/lumen2d/geometry"
	"github.com/meghashyamc/lumen2d/physics"
)

// grazingEpsilon is the incidence below which a ray is considered to run
// along the surface it hit. Reflecting such a ray with the mirror formula
// would send it straight back along the surface, so it is bounced back the
// way it came instead.
const grazingEpsilon = 1e-9

// Caster is the raycast capability the tracer needs from the physics world
type Caster interface {
	Raycast(origin, dir geometry.Vector, exclude map[physics.SurfaceID]struct{}) (physics.Hit, bool)
}

// PathSegment is one straight leg of a beam's path
type PathSegment struct {
	Seg       geometry.Segment
	Bounce    int     // 0 is the leg leaving the origin
	CumLength float64 // total path length up to this segment's end
}

// TotalLength is the length of the whole path
func TotalLength(path []PathSegment) float64 {
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1].CumLength
}

// TracePath follows a beam from its origin through every reflection and
// returns the full path as ordered segments. The path ends when the beam
// strikes an absorbing surface, spends its color's bounce budget, or travels
// maxRange without hitting anything.
func TracePath(caster Caster, origin, dir geometry.Vector, color LightColor, maxRange float64) []PathSegment {
	path := make([]PathSegment, 0, color.Bounces()+1)
	pos := origin
	heading := dir.Normalize()
	total := 0.0
	exclude := make(map[physics.SurfaceID]struct{})

	for bounce := 0; ; bounce++ {
		hit, ok := caster.Raycast(pos, heading, exclude)
		if !ok {
			total += maxRange
			path = append(path, PathSegment{
				Seg:       geometry.Segment{Start: pos, End: pos.Add(heading.Scale(maxRange))},
				Bounce:    bounce,
				CumLength: total,
			})
			return path
		}

		total += hit.Distance
		path = append(path, PathSegment{
			Seg:       geometry.Segment{Start: pos, End: hit.Point},
			Bounce:    bounce,
			CumLength: total,
		})

		if !hit.Surface.IsReflective() || bounce >= color.Bounces() {
			return path
		}

		heading = reflectOff(heading, hit.Normal)
		pos = hit.Point
		// Only the surface just struck is excluded from the next cast, so a
		// beam may legitimately return to an earlier mirror
		exclude = map[physics.SurfaceID]struct{}{hit.Surface.ID: {}}
	}
}

// reflectOff mirrors dir about the surface normal. A grazing ray, one nearly
// parallel to the surface, is sent straight back instead: its mirror image
// is indistinguishable from the incoming ray and would re-trace the surface.
func reflectOff(dir, normal geometry.Vector) geometry.Vector {
	if math.Abs(dir.DotProduct(normal)) < grazingEpsilon {
		return dir.Scale(-1)
	}
	return dir.Reflect(normal).Normalize()
}
