package component

import "github.com/hajimehoshi/ebiten/v2"

// Shot is a projectile owned by a character. Owner is the owning entity
// (ecs.Entity is uint64). It moves Direction × Step every Interval seconds.
type Shot struct {
	Owner     uint64
	Direction float64
	Step      float64
	Interval  float64
}

var ShotComponent = NewComponent[Shot]()

// ShotTemplate describes the projectiles a character fires. Width and
// Height are unscaled; shots inherit the owner's scale.
type ShotTemplate struct {
	Image       *ebiten.Image
	Width       float64
	Height      float64
	Interval    float64
	BaseStep    float64
	RenderLayer int
}

var ShotTemplateComponent = NewComponent[ShotTemplate]()
