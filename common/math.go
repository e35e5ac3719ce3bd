package common

import "math"

// Epsilon is the default tolerance used by the float comparison helpers.
const Epsilon = 1e-6

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(x, lo, hi float64) float64 {
	if x <= lo {
		return lo
	}
	if x >= hi {
		return hi
	}
	return x
}

// CompareEps returns 0 when a and b are within eps, 1 when a > b and -1 otherwise.
func CompareEps(a, b, eps float64) int {
	if math.Abs(a-b) <= eps {
		return 0
	}
	if a > b {
		return 1
	}
	return -1
}

func NearlyEqual(a, b float64) bool {
	return CompareEps(a, b, Epsilon) == 0
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// AngleBetween returns the unsigned angle in radians between v and o.
// A zero-length vector yields 0.
func (v Vec2) AngleBetween(o Vec2) float64 {
	l := v.Len() * o.Len()
	if l == 0 {
		return 0
	}
	return math.Acos(Clamp(v.Dot(o)/l, -1, 1))
}
