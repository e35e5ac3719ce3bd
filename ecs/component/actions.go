package component

// StepKind tags an action step.
type StepKind int

const (
	StepAnimate StepKind = iota + 1
	StepMoveTo
	StepMoveBy
	StepWait
	StepCall
)

// Step is one timed unit of a Sequence. Animate plays the named clip from the
// entity's Animation library once; MoveTo and MoveBy tween the Transform over
// Duration; Wait idles; Call runs Fn and takes no time.
type Step struct {
	Kind     StepKind
	Clip     string
	X        float64
	Y        float64
	Duration float64
	Fn       func()
}

func Animate(clip string) Step {
	return Step{Kind: StepAnimate, Clip: clip}
}

func MoveTo(x, y, duration float64) Step {
	return Step{Kind: StepMoveTo, X: x, Y: y, Duration: duration}
}

func MoveBy(dx, dy, duration float64) Step {
	return Step{Kind: StepMoveBy, X: dx, Y: dy, Duration: duration}
}

func Wait(duration float64) Step {
	return Step{Kind: StepWait, Duration: duration}
}

func Call(fn func()) Step {
	return Step{Kind: StepCall, Fn: fn}
}

// Sequence runs its steps in order, forever when Repeat is set. OnComplete
// runs after the sequence has been removed from its Actions, so it may
// install a new sequence under the same key. Cancelled sequences never
// complete.
type Sequence struct {
	Steps      []Step
	Repeat     bool
	OnComplete func()

	Index   int
	Elapsed float64
	Started bool
	StartX  float64
	StartY  float64
}

// Actions is an entity's table of running sequences by key.
type Actions struct {
	entries map[string]*Sequence
	keys    []string
}

// Run installs seq under key, cancelling whatever ran there.
func (a *Actions) Run(key string, seq *Sequence) {
	if a == nil || seq == nil {
		return
	}
	if a.entries == nil {
		a.entries = make(map[string]*Sequence)
	}
	if _, ok := a.entries[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.entries[key] = seq
}

// Get returns the sequence under key.
func (a *Actions) Get(key string) (*Sequence, bool) {
	if a == nil {
		return nil, false
	}
	seq, ok := a.entries[key]
	return seq, ok
}

func (a *Actions) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Remove cancels the sequence under key.
func (a *Actions) Remove(key string) bool {
	if a == nil {
		return false
	}
	if _, ok := a.entries[key]; !ok {
		return false
	}
	delete(a.entries, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return true
}

// RemoveAll cancels every sequence.
func (a *Actions) RemoveAll() {
	if a == nil {
		return
	}
	a.entries = nil
	a.keys = nil
}

// Keys returns the running keys in install order.
func (a *Actions) Keys() []string {
	if a == nil || len(a.keys) == 0 {
		return nil
	}
	return append([]string(nil), a.keys...)
}

func (a *Actions) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

var ActionsComponent = NewComponent[Actions]()
