package component

// Transform places an entity by its center in y-up scene space. The sign of
// ScaleX is the facing: negative faces left.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// FacingLeft reports whether the entity faces left.
func (t *Transform) FacingLeft() bool {
	return t != nil && t.ScaleX < 0
}

var TransformComponent = NewComponent[Transform]()
