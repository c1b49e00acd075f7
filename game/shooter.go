package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/lumen2d/beam"
	"github.com/meghashyamc/lumen2d/geometry"
)

// Shooter is where beams are fired from. The player aims with the mouse and
// cycles the selected color with the number keys.
type Shooter struct {
	position geometry.Vector
	selected beam.LightColor
}

func NewShooter() *Shooter {
	return &Shooter{
		position: geometry.Vector{X: 120, Y: screenHeight / 2},
		selected: beam.Green,
	}
}

var colorKeys = map[ebiten.Key]beam.LightColor{
	ebiten.Key1: beam.Green,
	ebiten.Key2: beam.Red,
	ebiten.Key3: beam.White,
	ebiten.Key4: beam.Blue,
}

// Update handles color selection and returns the aim direction when the
// player fired this frame
func (s *Shooter) Update() (geometry.Vector, bool) {
	for key, color := range colorKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.selected = color
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return geometry.Vector{}, false
	}

	mouse := getCurrentMousePosition()
	dir := mouse.Sub(s.position)
	if dir.Magnitude() == 0 {
		return geometry.Vector{}, false
	}
	return dir.Normalize(), true
}

func (s *Shooter) Position() geometry.Vector {
	return s.position
}

func (s *Shooter) Selected() beam.LightColor {
	return s.selected
}

func getCurrentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}
