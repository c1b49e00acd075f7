package beam

import (
	"testing"

	"github.com/meghashyamc/lumen2d/geometry"
)

// twoLegPath is a 20-unit path split into two 10-unit legs
func twoLegPath() []PathSegment {
	return []PathSegment{
		{Seg: geometry.Segment{Start: geometry.Vector{X: 0, Y: 0}, End: geometry.Vector{X: 10, Y: 0}}, Bounce: 0, CumLength: 10},
		{Seg: geometry.Segment{Start: geometry.Vector{X: 10, Y: 0}, End: geometry.Vector{X: 10, Y: 10}}, Bounce: 1, CumLength: 20},
	}
}

func TestVisiblePrefixGrowsTickByTick(t *testing.T) {
	path := twoLegPath()

	// Tick 1: 8 units traveled, partway through the first leg
	visible, clamped := visiblePrefix(path, 8)
	if clamped != 8 {
		t.Fatalf("clamped = %f, want 8", clamped)
	}
	if len(visible) != 1 {
		t.Fatalf("tick 1: %d segments visible, want 1", len(visible))
	}
	if !almostEqual(visible[0].Fraction, 0.8) {
		t.Fatalf("tick 1: fraction = %f, want 0.8", visible[0].Fraction)
	}

	// Tick 2: 16 units, first leg complete, second leg partial
	visible, _ = visiblePrefix(path, 16)
	if len(visible) != 2 {
		t.Fatalf("tick 2: %d segments visible, want 2", len(visible))
	}
	if visible[0].Fraction != 1 {
		t.Fatalf("tick 2: first fraction = %f, want 1", visible[0].Fraction)
	}
	if !almostEqual(visible[1].Fraction, 0.6) {
		t.Fatalf("tick 2: second fraction = %f, want 0.6", visible[1].Fraction)
	}

	// Tick 3: 24 units requested but the path is only 20 long
	visible, clamped = visiblePrefix(path, 24)
	if clamped != 20 {
		t.Fatalf("tick 3: clamped = %f, want 20", clamped)
	}
	if len(visible) != 2 {
		t.Fatalf("tick 3: %d segments visible, want 2", len(visible))
	}
	if visible[1].Fraction != 1 {
		t.Fatalf("tick 3: last fraction = %f, want 1 (clamped to total length)", visible[1].Fraction)
	}
}

func TestVisiblePrefixNeverExceedsTotal(t *testing.T) {
	path := twoLegPath()

	for _, traveled := range []float64{0, 5, 19.99, 20, 100, 1e12} {
		visible, clamped := visiblePrefix(path, traveled)
		if clamped > TotalLength(path) {
			t.Fatalf("traveled %f: clamped %f exceeds total %f", traveled, clamped, TotalLength(path))
		}

		sum := 0.0
		prior := 0.0
		for _, v := range visible {
			length := 0.0
			for _, p := range path {
				if p.Bounce == v.Bounce {
					length = p.CumLength - prior
					prior = p.CumLength
					break
				}
			}
			sum += length * v.Fraction
		}
		if sum > TotalLength(path)+tolerance {
			t.Fatalf("traveled %f: visible length %f exceeds total %f", traveled, sum, TotalLength(path))
		}
	}
}

func TestVisiblePrefixEmptyPath(t *testing.T) {
	visible, clamped := visiblePrefix(nil, 10)
	if visible != nil || clamped != 0 {
		t.Fatalf("empty path produced output: %v, %f", visible, clamped)
	}
}

func TestVisiblePrefixZeroTravel(t *testing.T) {
	visible, _ := visiblePrefix(twoLegPath(), 0)
	if len(visible) != 0 {
		t.Fatalf("zero travel revealed %d segments", len(visible))
	}
}

func TestVisiblePrefixPartialEndpoint(t *testing.T) {
	path := twoLegPath()

	visible, _ := visiblePrefix(path, 8)
	end := visible[0].Seg.PointAt(visible[0].Fraction)
	if !almostEqual(end.X, 8) || !almostEqual(end.Y, 0) {
		t.Fatalf("partial endpoint = %+v, want {8 0}", end)
	}
}
