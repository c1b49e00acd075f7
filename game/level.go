package game

import (
	"github.com/meghashyamc/lumen2d/geometry"
	"github.com/meghashyamc/lumen2d/physics"
)

// buildLevel fills the world with the demo layout: absorbing walls around the
// screen edge and a handful of mirrors to bounce beams between.
func buildLevel(world *physics.World) {
	walls := []geometry.Segment{
		{Start: geometry.Vector{X: 0, Y: 0}, End: geometry.Vector{X: screenWidth, Y: 0}},
		{Start: geometry.Vector{X: screenWidth, Y: 0}, End: geometry.Vector{X: screenWidth, Y: screenHeight}},
		{Start: geometry.Vector{X: screenWidth, Y: screenHeight}, End: geometry.Vector{X: 0, Y: screenHeight}},
		{Start: geometry.Vector{X: 0, Y: screenHeight}, End: geometry.Vector{X: 0, Y: 0}},
	}
	for _, w := range walls {
		world.AddSurface(physics.SurfaceWall, w.Start, w.End)
	}

	mirrors := []geometry.Segment{
		{Start: geometry.Vector{X: 700, Y: 150}, End: geometry.Vector{X: 900, Y: 350}},
		{Start: geometry.Vector{X: 900, Y: 500}, End: geometry.Vector{X: 700, Y: 700}},
		{Start: geometry.Vector{X: 450, Y: 380}, End: geometry.Vector{X: 550, Y: 420}},
		{Start: geometry.Vector{X: 1050, Y: 300}, End: geometry.Vector{X: 1050, Y: 550}},
	}
	for _, m := range mirrors {
		world.AddSurface(physics.SurfaceMirror, m.Start, m.End)
	}
}
