package input

import (
	"github.com/milk9111/megaman/common"
)

const (
	defaultSwipeThreshold = 24.0
	defaultTapWindow      = 18 // ticks
)

// Recognizer turns pointer presses and releases into tap and swipe samples,
// and collects joystick samples alongside them. It is fed once per tick by
// the input system and drained by it in the same tick.
type Recognizer struct {
	SwipeThreshold float64
	TapWindow      int

	pressed   bool
	start     common.Vec2
	lastTap   common.Vec2
	lastTapAt int
	tapCount  int
	dragSign  int
	pending   []Sample
}

func NewRecognizer() *Recognizer {
	return &Recognizer{
		SwipeThreshold: defaultSwipeThreshold,
		TapWindow:      defaultTapWindow,
		lastTapAt:      -1,
	}
}

// Press starts a gesture at the given scene point.
func (r *Recognizer) Press(at common.Vec2) {
	if r == nil {
		return
	}
	r.pressed = true
	r.start = at
}

// Release ends the current gesture. Short movements are taps; consecutive
// taps close in time and space raise the tap count.
func (r *Recognizer) Release(at common.Vec2, tick int) {
	if r == nil || !r.pressed {
		return
	}
	r.pressed = false

	if at.Sub(r.start).Len() >= r.SwipeThreshold {
		r.tapCount = 0
		r.pending = append(r.pending, Sample{Kind: SampleSwipe, From: r.start, To: at})
		return
	}

	if r.lastTapAt >= 0 && tick-r.lastTapAt <= r.TapWindow && at.Sub(r.lastTap).Len() < r.SwipeThreshold {
		r.tapCount++
	} else {
		r.tapCount = 1
	}
	r.lastTap = at
	r.lastTapAt = tick
	r.pending = append(r.pending, Sample{Kind: SampleTap, At: at, TapCount: r.tapCount})
}

// Pressed reports whether a gesture is in progress.
func (r *Recognizer) Pressed() bool {
	return r != nil && r.pressed
}

// Drag records the analog stick's horizontal delta. Only sign changes are
// reported so a held stick does not restart movement every tick.
func (r *Recognizer) Drag(dx float64) {
	if r == nil {
		return
	}
	sign := 0
	if dx > 0 {
		sign = 1
	} else if dx < 0 {
		sign = -1
	}
	if sign == r.dragSign {
		return
	}
	r.dragSign = sign
	r.pending = append(r.pending, Sample{Kind: SampleJoystickDrag, DX: dx})
}

// Push queues an already classified-ready sample (joystick buttons, A/B).
func (r *Recognizer) Push(s Sample) {
	if r == nil {
		return
	}
	r.pending = append(r.pending, s)
}

// Drain returns all queued samples and clears the queue.
func (r *Recognizer) Drain() []Sample {
	if r == nil || len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = nil
	return out
}
