package physics

import (
	"math"
	"testing"

	"github.com/meghashyamc/lumen2d/geometry"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestRaycastHitsWall(t *testing.T) {
	world := NewWorld()
	world.AddSurface(SurfaceWall, geometry.Vector{X: 10, Y: -5}, geometry.Vector{X: 10, Y: 5})

	hit, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0}, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !almostEqual(hit.Point.X, 10) || !almostEqual(hit.Point.Y, 0) {
		t.Fatalf("hit point = %+v, want {10 0}", hit.Point)
	}
	if !almostEqual(hit.Distance, 10) {
		t.Fatalf("hit distance = %f, want 10", hit.Distance)
	}
	if hit.Surface.Kind != SurfaceWall {
		t.Fatalf("hit surface kind = %v, want wall", hit.Surface.Kind)
	}
}

func TestRaycastNormalFacesRay(t *testing.T) {
	world := NewWorld()
	world.AddSurface(SurfaceMirror, geometry.Vector{X: 10, Y: -5}, geometry.Vector{X: 10, Y: 5})

	// From either side the normal must point back towards the ray origin
	fromLeft, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0}, nil)
	if !ok {
		t.Fatal("expected a hit from the left")
	}
	if fromLeft.Normal.X >= 0 {
		t.Fatalf("normal from the left = %+v, want X < 0", fromLeft.Normal)
	}

	fromRight, ok := world.Raycast(geometry.Vector{X: 20, Y: 0}, geometry.Vector{X: -1, Y: 0}, nil)
	if !ok {
		t.Fatal("expected a hit from the right")
	}
	if fromRight.Normal.X <= 0 {
		t.Fatalf("normal from the right = %+v, want X > 0", fromRight.Normal)
	}

	if !almostEqual(fromLeft.Normal.Magnitude(), 1) {
		t.Fatalf("normal is not unit length: %+v", fromLeft.Normal)
	}
}

func TestRaycastReturnsClosestSurface(t *testing.T) {
	world := NewWorld()
	far := world.AddSurface(SurfaceWall, geometry.Vector{X: 30, Y: -5}, geometry.Vector{X: 30, Y: 5})
	near := world.AddSurface(SurfaceWall, geometry.Vector{X: 15, Y: -5}, geometry.Vector{X: 15, Y: 5})
	_ = far

	hit, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0}, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Surface.ID != near {
		t.Fatalf("hit surface %d, want nearest %d", hit.Surface.ID, near)
	}
}

func TestRaycastHonorsExclusions(t *testing.T) {
	world := NewWorld()
	first := world.AddSurface(SurfaceMirror, geometry.Vector{X: 10, Y: -5}, geometry.Vector{X: 10, Y: 5})
	second := world.AddSurface(SurfaceWall, geometry.Vector{X: 20, Y: -5}, geometry.Vector{X: 20, Y: 5})

	exclude := map[SurfaceID]struct{}{first: {}}
	hit, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0}, exclude)
	if !ok {
		t.Fatal("expected a hit on the second surface")
	}
	if hit.Surface.ID != second {
		t.Fatalf("hit surface %d, want %d", hit.Surface.ID, second)
	}
}

func TestRaycastMissesBehindAndParallel(t *testing.T) {
	world := NewWorld()
	world.AddSurface(SurfaceWall, geometry.Vector{X: 10, Y: -5}, geometry.Vector{X: 10, Y: 5})

	// Surface is behind the ray
	if _, ok := world.Raycast(geometry.Vector{X: 20, Y: 0}, geometry.Vector{X: 1, Y: 0}, nil); ok {
		t.Fatal("hit a surface behind the ray")
	}

	// Ray parallel to the surface
	if _, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 0, Y: 1}, nil); ok {
		t.Fatal("hit a parallel surface")
	}
}

func TestRaycastSkipsZeroDistanceHit(t *testing.T) {
	world := NewWorld()
	world.AddSurface(SurfaceMirror, geometry.Vector{X: 0, Y: -5}, geometry.Vector{X: 0, Y: 5})

	// Ray starting on the surface and leaving it must not re-hit it
	if hit, ok := world.Raycast(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0}, nil); ok {
		t.Fatalf("re-hit the surface the ray starts on: %+v", hit)
	}
}

func TestGenerationChangesWithGeometry(t *testing.T) {
	world := NewWorld()
	start := world.Generation()

	id := world.AddSurface(SurfaceWall, geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 1, Y: 0})
	afterAdd := world.Generation()
	if afterAdd == start {
		t.Fatal("generation unchanged after AddSurface")
	}

	if !world.RemoveSurface(id) {
		t.Fatal("RemoveSurface failed for existing surface")
	}
	if world.Generation() == afterAdd {
		t.Fatal("generation unchanged after RemoveSurface")
	}

	if world.RemoveSurface(id) {
		t.Fatal("RemoveSurface succeeded for missing surface")
	}

	before := world.Generation()
	world.Bump()
	if world.Generation() != before+1 {
		t.Fatalf("Bump moved generation by %d, want 1", world.Generation()-before)
	}
}
