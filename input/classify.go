package input

import (
	"math"

	"github.com/milk9111/megaman/common"
)

// SampleKind tags a raw input sample.
type SampleKind int

const (
	SampleTap SampleKind = iota + 1
	SampleSwipe
	SampleJoystickButton
	SampleJoystickDrag
	SampleButtonA
	SampleButtonB
)

// Sample is one raw input observation in scene space.
type Sample struct {
	Kind SampleKind
	// Tap
	At       common.Vec2
	TapCount int
	// Swipe
	From common.Vec2
	To   common.Vec2
	// Joystick
	Direction Direction
	DX        float64
}

var horizontalAxis = common.Vec2{X: 1}

// Classify maps a raw sample to a command. Every tap count shoots at the tap
// location. A swipe is horizontal when its angle to the x axis is below 45°
// or above 135°, vertical otherwise.
func Classify(s Sample) (Command, bool) {
	switch s.Kind {
	case SampleTap:
		return Shoot(s.At), true
	case SampleSwipe:
		dir, ok := SwipeDirection(s.From, s.To)
		if !ok {
			return Command{}, false
		}
		return Swipe(dir, s.To), true
	case SampleJoystickButton:
		switch s.Direction {
		case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
			return Step(s.Direction), true
		}
		return Command{}, false
	case SampleJoystickDrag:
		switch {
		case s.DX > 0:
			return Hold(DirectionRight), true
		case s.DX < 0:
			return Hold(DirectionLeft), true
		}
		return Hold(DirectionNone), true
	case SampleButtonA:
		return ShootAhead(), true
	case SampleButtonB:
		return Jump(), true
	}
	return Command{}, false
}

// SwipeDirection classifies the swipe vector from..to. Scene space is y-up.
func SwipeDirection(from, to common.Vec2) (Direction, bool) {
	v := to.Sub(from)
	if v.Len() == 0 {
		return DirectionNone, false
	}
	angle := common.RadToDeg(horizontalAxis.AngleBetween(v))
	if angle < 45 || angle > 135 {
		if v.X < 0 {
			return DirectionLeft, true
		}
		return DirectionRight, true
	}
	if v.Y < 0 {
		return DirectionDown, true
	}
	return DirectionUp, true
}

// ClassifyAll classifies samples in order and drops the ones that carry no command.
func ClassifyAll(samples []Sample) []Command {
	out := make([]Command, 0, len(samples))
	for _, s := range samples {
		if cmd, ok := Classify(s); ok {
			out = append(out, cmd)
		}
	}
	return out
}

// AxisToDrag converts an analog stick value into a drag delta with a dead zone.
func AxisToDrag(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone {
		return 0
	}
	return v
}
