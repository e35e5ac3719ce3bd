package component

// SceneBounds is the visible scene rectangle in y-up scene space. Shots that
// stop intersecting it are removed.
type SceneBounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var SceneBoundsComponent = NewComponent[SceneBounds]()
