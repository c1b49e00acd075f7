package geometry

// Segment is a directed straight line between two points
type Segment struct {
	Start Vector
	End   Vector
}

// Length calculates the length of the segment
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Magnitude()
}

// PointAt returns the point a fraction t of the way from Start to End
func (s Segment) PointAt(t float64) Vector {
	return s.Start.Lerp(s.End, t)
}

// Direction returns the unit vector from Start towards End
func (s Segment) Direction() Vector {
	return s.End.Sub(s.Start).Normalize()
}
