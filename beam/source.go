package beam

import (
	"fmt"

	"github.com/meghashyamc/lumen2d/geometry"
)

type SourceID int

// Phase is where a beam is in its lifetime
type Phase int

const (
	// Growing means the beam has not yet revealed its whole path
	Growing Phase = iota
	// FullyGrown means traveled distance has reached the path's total length
	FullyGrown
)

func (p Phase) String() string {
	if p == FullyGrown {
		return "fully_grown"
	}
	return "growing"
}

// Source is one traveling instance of colored light. It is created by a
// shooter action and advanced every simulation tick until it is despawned.
type Source struct {
	ID       SourceID
	Origin   geometry.Vector
	Dir      geometry.Vector // unit length
	Traveled float64
	Color    LightColor
}

func newSource(id SourceID, origin, dir geometry.Vector, color LightColor) (*Source, error) {
	if !origin.IsFinite() || !dir.IsFinite() {
		return nil, fmt.Errorf("beam %d: origin %v or direction %v is not finite", id, origin, dir)
	}
	if dir.Magnitude() == 0 {
		return nil, fmt.Errorf("beam %d: direction must not be zero-length", id)
	}

	return &Source{
		ID:     id,
		Origin: origin,
		Dir:    dir.Normalize(),
		Color:  color,
	}, nil
}
