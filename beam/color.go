package beam

import (
	"fmt"
	"image/color"
)

// LightColor is the color a beam is fired with. The color decides how many
// times the beam reflects before terrain absorbs it.
type LightColor int

const (
	Green LightColor = iota
	Red
	White
	Blue
)

func (c LightColor) String() string {
	switch c {
	case Green:
		return "Green"
	case Red:
		return "Red"
	case White:
		return "White"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("LightColor(%d)", int(c))
}

// ParseLightColor converts a color name as it appears in level data
func ParseLightColor(s string) (LightColor, error) {
	switch s {
	case "Green":
		return Green, nil
	case "Red":
		return Red, nil
	case "White":
		return White, nil
	case "Blue":
		return Blue, nil
	}
	return Green, fmt.Errorf("%q does not name a light color", s)
}

// Bounces is the number of reflections off terrain this color permits before
// the beam is absorbed
func (c LightColor) Bounces() int {
	if c == Red {
		return 2
	}
	return 1
}

// BeamColor is the color the beam itself is drawn with
func (c LightColor) BeamColor() color.RGBA {
	switch c {
	case Red:
		return color.RGBA{255, 0, 153, 255}
	case Green:
		return color.RGBA{153, 255, 0, 255}
	case White:
		return color.RGBA{255, 255, 255, 255}
	case Blue:
		return color.RGBA{64, 128, 255, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// ButtonColor is the softer variant used for UI elements keyed to this color
func (c LightColor) ButtonColor() color.RGBA {
	switch c {
	case Red:
		return color.RGBA{255, 143, 212, 255}
	case Green:
		return color.RGBA{157, 253, 148, 255}
	case White:
		return color.RGBA{230, 230, 230, 255}
	case Blue:
		return color.RGBA{143, 225, 255, 255}
	}
	return color.RGBA{230, 230, 230, 255}
}
