package beam

import (
	"github.com/meghashyamc/lumen2d/geometry"
)

// VisibleSegment is one leg of a beam's path as currently revealed by the
// growing animation. Fraction is how much of the segment is visible, in
// [0,1]; the revealed endpoint is Seg.PointAt(Fraction).
type VisibleSegment struct {
	Seg      geometry.Segment
	Bounce   int
	Fraction float64
}

// playbackState remembers what a beam emitted last tick so an unchanged beam
// (fully grown, geometry untouched) is not re-walked
type playbackState struct {
	prevVisible float64
	emitted     []VisibleSegment
}

// visiblePrefix walks path and returns the segments revealed after the beam
// has traveled the given distance, clamped to the path's total length. The
// clamped distance is returned alongside. Segments wholly before the boundary
// are emitted with Fraction 1, the segment straddling it with the fraction of
// its length covered, and later segments are withheld.
func visiblePrefix(path []PathSegment, traveled float64) ([]VisibleSegment, float64) {
	if len(path) == 0 {
		return nil, 0
	}

	total := TotalLength(path)
	if traveled > total {
		traveled = total
	}
	if traveled <= 0 {
		return nil, 0
	}

	visible := make([]VisibleSegment, 0, len(path))
	prior := 0.0
	for _, segment := range path {
		if traveled >= segment.CumLength {
			visible = append(visible, VisibleSegment{Seg: segment.Seg, Bounce: segment.Bounce, Fraction: 1})
			prior = segment.CumLength
			continue
		}

		length := segment.CumLength - prior
		if length > 0 && traveled > prior {
			visible = append(visible, VisibleSegment{
				Seg:      segment.Seg,
				Bounce:   segment.Bounce,
				Fraction: (traveled - prior) / length,
			})
		}
		break
	}

	return visible, traveled
}
