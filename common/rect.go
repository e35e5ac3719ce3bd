package common

// Rect is an axis-aligned box anchored at its minimum corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround builds a rect of the given size centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
