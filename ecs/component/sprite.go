package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is drawn centered on the entity's Transform. Source crops Image
// when UseSource is set. Alpha scales opacity; zero means unset and draws
// opaque.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	Alpha     float64
	Hidden    bool
}

// Size returns the unscaled pixel size of what the sprite draws.
func (s *Sprite) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	if s.UseSource {
		return float64(s.Source.Dx()), float64(s.Source.Dy())
	}
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

var SpriteComponent = NewComponent[Sprite]()
